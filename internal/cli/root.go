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

// Package cli holds the root command and build metadata shared by the
// makebridge subcommands.
package cli

import (
	"github.com/spf13/cobra"
)

var (
	version   = "dev"
	commit    = "unknown"
	buildDate = "unknown"
)

// SetVersion sets the version information (called from main).
func SetVersion(v, c, b string) {
	version, commit, buildDate = v, c, b
}

// GetVersion returns version information.
func GetVersion() (string, string, string) {
	return version, commit, buildDate
}

// NewRootCommand creates the root Cobra command for makebridge.
func NewRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "makebridge",
		Short: "makebridge - Make platform tools over MCP",
		Long: `makebridge exposes the Make automation platform's REST API as tools
over the Model Context Protocol (MCP), so AI assistants can list, inspect,
create, run, and delete scenarios and manage connections, webhooks, data
stores, teams, and organizations.

Run 'makebridge auth set' to store your API token, then 'makebridge serve'
to start the MCP server over stdio.`,
		SilenceUsage:  true, // Don't show usage on errors
		SilenceErrors: true, // We handle errors ourselves for proper exit codes
	}

	cmd.PersistentFlags().String("config", "", "Path to config file (default: ~/.config/makebridge/config.yaml)")

	return cmd
}
