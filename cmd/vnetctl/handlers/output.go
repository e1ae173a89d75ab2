package handlers

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/vnetops/vnetctl/internal/reconcile"
)

// printOutcome renders the pass report for the user.
func printOutcome(out *reconcile.Outcome, format string) error {
	switch format {
	case "json":
		data, err := json.MarshalIndent(out, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode outcome: %w", err)
		}
		fmt.Fprintln(os.Stdout, string(data))
		return nil
	case "text", "":
		printText(out)
		return nil
	default:
		return fmt.Errorf("unknown output format %q: must be text or json", format)
	}
}

func printText(out *reconcile.Outcome) {
	fmt.Printf("Network:      %s/%s\n", out.Project, out.Network)
	fmt.Printf("State:        %s\n", out.State)
	fmt.Printf("Action:       %s\n", out.Action)
	fmt.Printf("Changed:      %t\n", out.Changed)

	if !out.IPv4.Empty() {
		fmt.Printf("IPv4 subnet:  %s/%d", out.IPv4.Prefix, out.IPv4.Length)
		if out.IPv4.PoolStart != "" {
			fmt.Printf(" (pool %s-%s)", out.IPv4.PoolStart, out.IPv4.PoolEnd)
		}
		fmt.Println()
	}
	if !out.IPv6.Empty() {
		fmt.Printf("IPv6 subnet:  %s/%d", out.IPv6.Prefix, out.IPv6.Length)
		if out.IPv6.PoolStart != "" {
			fmt.Printf(" (pool %s-%s)", out.IPv6.PoolStart, out.IPv6.PoolEnd)
		}
		fmt.Println()
	}
	if out.RouteTarget != "" {
		fmt.Printf("Route target: %s\n", out.RouteTarget)
	}
}
