package commands

import (
	"github.com/spf13/cobra"

	"github.com/vnetops/vnetctl/cmd/vnetctl/handlers"
)

// Destroy returns the command that removes the virtual network. The shared
// project IPAM is left in place.
func Destroy() *cobra.Command {
	var opts handlers.ApplyOptions

	cmd := &cobra.Command{
		Use:   "destroy",
		Short: "Delete the virtual network",
		Long: `Delete the virtual network described by the definition file.

This reconciles the network to the inactive state regardless of the state
field in the definition. Deleting a network that does not exist is a no-op.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Destroy(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVarP(&opts.ConfigPath, "config", "c", "vnetctl.yaml", "Path to the network definition file")
	cmd.Flags().BoolVar(&opts.DryRun, "dry-run", false, "Report the intended action without mutating remote state")
	cmd.Flags().StringVarP(&opts.Output, "output", "o", "text", "Output format: text or json")

	return cmd
}
