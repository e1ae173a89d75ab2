// Package handlers implements the business logic for CLI commands.
//
// This package contains handler functions called by the command definitions
// in the commands package. Handlers are framework-agnostic and can be tested
// independently of the CLI framework.
package handlers

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/vnetops/vnetctl/internal/config"
	"github.com/vnetops/vnetctl/internal/platform/vnc"
	"github.com/vnetops/vnetctl/internal/reconcile"
)

// tokenEnvVar overrides connection.token from the environment so the token
// can stay out of the definition file.
const tokenEnvVar = "VNC_AUTH_TOKEN"

// Factory function variables - can be replaced in tests for dependency injection.
var (
	// loadConfigFile loads the network definition from file.
	loadConfigFile = config.LoadFile

	// newController establishes a controller session from the connection
	// parameters. The parameters are passed through opaquely.
	newController = func(ctx context.Context, cfg *config.Config) (vnc.Controller, error) {
		if cfg.Connection.Endpoint == "" {
			return nil, fmt.Errorf("connection.endpoint is required")
		}

		token := cfg.Connection.Token
		if env := os.Getenv(tokenEnvVar); env != "" {
			token = env
		}

		opts := []vnc.ClientOption{
			vnc.WithTimeout(time.Duration(cfg.Connection.TimeoutSeconds) * time.Second),
		}
		if cfg.Connection.Username != "" {
			opts = append(opts, vnc.WithBasicAuth(cfg.Connection.Username, cfg.Connection.Password))
		}
		if cfg.Connection.Insecure {
			opts = append(opts, vnc.WithInsecureTLS())
		}

		client := vnc.NewRealClient(cfg.Connection.Endpoint, token, opts...)
		if err := client.Connect(ctx); err != nil {
			return nil, &reconcile.Error{Kind: reconcile.KindConnection, Err: err}
		}
		return client, nil
	}
)

// ApplyOptions are the invocation parameters for Apply and Destroy.
type ApplyOptions struct {
	ConfigPath string
	DryRun     bool
	Output     string
}

// Apply reconciles the virtual network to its declared state.
func Apply(ctx context.Context, opts ApplyOptions) error {
	cfg, err := loadConfigFile(opts.ConfigPath)
	if err != nil {
		return err
	}
	return run(ctx, cfg, opts)
}

// Destroy reconciles the virtual network to the inactive state, removing it
// from the controller. The state field of the definition is overridden.
func Destroy(ctx context.Context, opts ApplyOptions) error {
	cfg, err := loadConfigFile(opts.ConfigPath)
	if err != nil {
		return err
	}
	cfg.State = config.StateInactive
	return run(ctx, cfg, opts)
}

// run performs one reconciliation pass and prints the outcome.
func run(ctx context.Context, cfg *config.Config, opts ApplyOptions) error {
	client, err := newController(ctx, cfg)
	if err != nil {
		return err
	}

	rec := reconcile.New(client, reconcile.WithDryRun(opts.DryRun))
	outcome, err := rec.Reconcile(ctx, cfg)
	if err != nil {
		return err
	}

	if opts.DryRun {
		log.Printf("Dry run: no remote changes were made")
	}
	return printOutcome(outcome, opts.Output)
}
