// Package main is the entry point for the vnetctl CLI.
//
// vnetctl converges virtual network resources on a network-virtualization
// controller to match a declarative YAML definition: subnets, allocation
// pools and route targets are created, updated or redeployed as needed.
//
// Commands: apply, plan, destroy, watch, version.
//
// For detailed usage information, run:
//
//	vnetctl --help
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/vnetops/vnetctl/cmd/vnetctl/commands"
)

// Version information set by goreleaser at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	commands.SetVersionInfo(version, commit, date)

	// SIGINT/SIGTERM cancel the command context so long-running commands
	// (watch) can shut down cleanly.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := commands.Root().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
