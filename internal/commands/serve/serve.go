// Copyright 2026 The Makebridge Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package serve

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/makebridge/makebridge/internal/cli"
	"github.com/makebridge/makebridge/internal/config"
	"github.com/makebridge/makebridge/internal/makeapi"
	"github.com/makebridge/makebridge/internal/mcp/server"
	"github.com/makebridge/makebridge/internal/secrets"
	"github.com/makebridge/makebridge/internal/transport"
)

// NewCommand creates the serve command
func NewCommand() *cobra.Command {
	var (
		logLevel string
		zone     string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the makebridge MCP server",
		Long: `Start the makebridge MCP (Model Context Protocol) server.

The server runs in stdio mode, which is suitable for integration with AI
assistants via their MCP configuration.

Configuration example for Claude Code (~/.config/claude/config.json):
  {
    "mcpServers": {
      "make": {
        "command": "makebridge",
        "args": ["serve"],
        "env": { "MAKE_API_KEY": "<token>", "MAKE_ZONE": "eu2" }
      }
    }
  }

The API token is resolved from MAKE_API_KEY, the config file, or the OS
keychain ('makebridge auth set'). A missing token is a fatal startup error.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			configPath, _ := cmd.Root().PersistentFlags().GetString("config")
			return runServer(configPath, logLevel, zone)
		},
	}

	cmd.Flags().StringVar(&logLevel, "log-level", "", "Logging verbosity (debug, info, warn, error)")
	cmd.Flags().StringVar(&zone, "zone", "", "Make API zone (e.g., eu1, eu2, us1)")

	return cmd
}

func runServer(configPath, logLevel, zone string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if zone != "" {
		cfg.Zone = zone
	}
	if logLevel == "" {
		logLevel = cfg.Log.Level
	}

	token, err := cfg.ResolveToken(secrets.NewTokenStore())
	if err != nil {
		return err
	}

	// Bound outbound request throughput below the platform's API limits.
	tr, err := transport.NewHTTPTransport(nil)
	if err != nil {
		return err
	}
	tr.SetRateLimiter(transport.NewTokenBucketLimiter(5, 10))

	client, err := makeapi.NewClient(makeapi.Config{
		Token:     token,
		Zone:      cfg.Zone,
		BaseURL:   cfg.BaseURL,
		Transport: tr,
	})
	if err != nil {
		return err
	}

	versionStr, _, _ := cli.GetVersion()
	srv, err := server.NewServer(server.ServerConfig{
		Name:     "makebridge",
		Version:  versionStr,
		LogLevel: logLevel,
		Client:   client,
	})
	if err != nil {
		return fmt.Errorf("failed to create MCP server: %w", err)
	}

	// Create context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Set up signal handling for graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		fmt.Fprintln(os.Stderr, "\nReceived shutdown signal, shutting down gracefully...")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer shutdownCancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			fmt.Fprintf(os.Stderr, "Error during shutdown: %v\n", err)
		}

		cancel()
	}()

	// Run the server (blocks until shutdown)
	if err := srv.Run(ctx); err != nil {
		return err
	}

	return nil
}
