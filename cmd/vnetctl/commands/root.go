// Package commands defines the CLI command structure and flag bindings.
//
// This package contains cobra command definitions that handle argument
// parsing and flag binding. Command execution is delegated to handler
// functions in the handlers package.
package commands

import "github.com/spf13/cobra"

// Root returns the root command for the vnetctl CLI.
func Root() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "vnetctl",
		Short: "Reconcile virtual networks on a network-virtualization controller",
	}

	cmd.AddCommand(Apply())
	cmd.AddCommand(Plan())
	cmd.AddCommand(Destroy())
	cmd.AddCommand(Watch())
	cmd.AddCommand(Version())
	cmd.AddCommand(Completion())

	return cmd
}
