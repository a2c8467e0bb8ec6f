package cmd

import (
	"errors"
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"dremio/cli/internal/auth"
)

// whoamiCmd shows which account and host commands will use, and checks that
// the credentials still work.
var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the current account and verify it can log in",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := newSession(cmd)
		if errors.Is(err, auth.ErrNotConfigured) {
			pterm.Info.Println("You're not logged in yet. Run 'dremioctl login' to get started.")
			return nil
		}
		if err != nil {
			return err
		}

		who := s.creds.Username
		if s.creds.UsesPAT() {
			who = "personal access token"
			if s.creds.Username != "" {
				who = s.creds.Username + " (personal access token)"
			}
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s @ %s (from %s)\n", who, s.client.Host(), s.creds.Source)

		if err := verify(cmd.Context(), s.client, s.creds); err != nil {
			return s.explain(err, "verifying credentials")
		}
		pterm.Success.Println("Credentials accepted")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(whoamiCmd)
}
