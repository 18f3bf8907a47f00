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

package auth

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/makebridge/makebridge/internal/secrets"
)

// NewCommand creates the auth command group
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "auth",
		Short: "Manage the Make API token",
		Long: `Manage the Make API token stored in the OS keychain.

The token stored here is used when neither MAKE_API_KEY nor the config
file provides one.`,
	}

	cmd.AddCommand(newSetCommand())
	cmd.AddCommand(newShowCommand())
	cmd.AddCommand(newClearCommand())

	return cmd
}

func newSetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "set [token]",
		Short: "Store the API token in the OS keychain",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var token string
			if len(args) == 1 {
				token = args[0]
			} else {
				fmt.Fprint(os.Stderr, "API token: ")
				reader := bufio.NewReader(cmd.InOrStdin())
				line, err := reader.ReadString('\n')
				if err != nil {
					return fmt.Errorf("reading token: %w", err)
				}
				token = strings.TrimSpace(line)
			}

			if token == "" {
				return fmt.Errorf("token must not be empty")
			}

			store := secrets.NewTokenStore()
			if err := store.Set(token); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), "API token stored in keychain.")
			return nil
		},
	}
}

func newShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show whether an API token is stored",
		RunE: func(cmd *cobra.Command, args []string) error {
			store := secrets.NewTokenStore()
			token, err := store.Get()
			if err != nil {
				if errors.Is(err, secrets.ErrTokenNotFound) {
					fmt.Fprintln(cmd.OutOrStdout(), "No API token stored.")
					return nil
				}
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "API token stored (%s).\n", redact(token))
			return nil
		},
	}
}

func newClearCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Remove the stored API token",
		RunE: func(cmd *cobra.Command, args []string) error {
			store := secrets.NewTokenStore()
			if err := store.Delete(); err != nil {
				if errors.Is(err, secrets.ErrTokenNotFound) {
					fmt.Fprintln(cmd.OutOrStdout(), "No API token stored.")
					return nil
				}
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), "API token removed from keychain.")
			return nil
		},
	}
}

// redact shows just enough of a token to identify it.
func redact(token string) string {
	if len(token) <= 8 {
		return "****"
	}
	return token[:4] + "..." + token[len(token)-4:]
}
