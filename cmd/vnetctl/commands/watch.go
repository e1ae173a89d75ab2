package commands

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/vnetops/vnetctl/cmd/vnetctl/handlers"
)

// Watch returns the command that reconciles continuously.
func Watch() *cobra.Command {
	var opts handlers.WatchOptions

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Reconcile the network periodically and export metrics",
		Long: `Run the reconciliation pass on a fixed interval until interrupted.

Failed passes are logged and retried on the next tick. Prometheus metrics
for pass counts and durations are served on the metrics address.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Watch(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVarP(&opts.ConfigPath, "config", "c", "vnetctl.yaml", "Path to the network definition file")
	cmd.Flags().DurationVar(&opts.Interval, "interval", 60*time.Second, "Time between reconciliation passes")
	cmd.Flags().StringVar(&opts.MetricsAddr, "metrics-addr", ":9090", "Listen address for the /metrics endpoint")

	return cmd
}
