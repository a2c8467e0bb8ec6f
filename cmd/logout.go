// Copyright (c) 2025 The dremioctl Authors
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"dremio/cli/internal/config"
)

// logoutCmd removes stored credentials. Dremio sessions are not tracked
// server-side by the CLI, so there is nothing remote to revoke.
var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Remove saved credentials",
	Long: `The logout command deletes the password and personal access token from the OS
keychain and forgets the host and account in the config file. Other settings
such as log_level and job_poll are kept. Environment variables are untouched.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		if km, err := openSecrets(); err == nil {
			if err := km.ClearAll(); err != nil {
				return fmt.Errorf("clear keychain: %w", err)
			}
		}

		cfg, err := config.Load()
		if err != nil {
			return err
		}
		cfg.Host, cfg.Username = "", ""
		if err := config.Save(cfg); err != nil {
			return err
		}

		pterm.Success.Println("All saved credentials have been removed")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(logoutCmd)
}
