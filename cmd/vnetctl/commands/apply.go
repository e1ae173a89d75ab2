package commands

import (
	"github.com/spf13/cobra"

	"github.com/vnetops/vnetctl/cmd/vnetctl/handlers"
)

// Apply returns the command that reconciles a network to its definition.
//
// Flags:
//
//	--config, -c: Path to the network definition YAML file (default: vnetctl.yaml)
//	--dry-run:    Report the intended action without touching the controller
//	--output, -o: Output format, text or json
//
// Environment variables:
//
//	VNC_AUTH_TOKEN: controller API token, overrides connection.token
func Apply() *cobra.Command {
	var opts handlers.ApplyOptions

	cmd := &cobra.Command{
		Use:   "apply",
		Short: "Create or update the virtual network",
		Long: `Converge the virtual network on the controller to match its definition.

The engine reads the current remote state, diffs it against the definition
and performs the minimal remediation: create, delete, an in-place route
target update, or a full redeploy when subnet topology changed.

Examples:
  # Reconcile using vnetctl.yaml in the current directory
  vnetctl apply

  # Reconcile a specific definition
  vnetctl apply -c production.yaml

  # Show what would change without touching the controller
  vnetctl apply --dry-run`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Apply(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVarP(&opts.ConfigPath, "config", "c", "vnetctl.yaml", "Path to the network definition file")
	cmd.Flags().BoolVar(&opts.DryRun, "dry-run", false, "Report the intended action without mutating remote state")
	cmd.Flags().StringVarP(&opts.Output, "output", "o", "text", "Output format: text or json")

	return cmd
}

// Plan returns the command that previews the next apply. It is apply in
// permanent dry-run mode.
func Plan() *cobra.Command {
	var opts handlers.ApplyOptions

	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Show the action the next apply would take",
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts.DryRun = true
			return handlers.Apply(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVarP(&opts.ConfigPath, "config", "c", "vnetctl.yaml", "Path to the network definition file")
	cmd.Flags().StringVarP(&opts.Output, "output", "o", "text", "Output format: text or json")

	return cmd
}
