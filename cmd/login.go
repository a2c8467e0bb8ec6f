// Copyright (c) 2025 The dremioctl Authors
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"dremio/cli/internal/auth"
	"dremio/cli/internal/config"
	"dremio/cli/internal/httperrors"
	"dremio/cli/internal/keychain"
	"dremio/cli/internal/logging"
	"dremio/cli/internal/terminal"
	"dremio/cli/pkg/dremio"
)

var (
	loginHost string
	loginUser string
	loginPAT  bool
)

// loginCmd verifies credentials against the coordinator and stores them.
var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Save Dremio credentials after verifying them",
	Long: `The login command asks for the coordinator URL, the account name and the
password (or, with --pat, a personal access token), checks them against the
login endpoint and saves them. Host and account go to the config file; the
secret goes to the OS keychain.

Piped input is accepted for non-interactive setups:

  printf 'secret\n' | dremioctl login --host http://dremio:9047 --user automation`,

	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		in := terminal.NewPrompter(cmd.InOrStdin(), cmd.OutOrStdout())
		creds := auth.Credentials{Host: loginHost, Username: loginUser}
		if creds.Host == "" {
			if creds.Host, err = promptDefault(in, "Dremio URL", cfg.Host); err != nil {
				return err
			}
		}
		if creds.Host == "" {
			return errors.New("a Dremio URL is required")
		}
		if !loginPAT && creds.Username == "" {
			if creds.Username, err = promptDefault(in, "Username", cfg.Username); err != nil {
				return err
			}
		}

		prompt := "Password: "
		if loginPAT {
			prompt = "Personal access token: "
		}
		secret, err := in.Password(prompt)
		if err != nil {
			return err
		}
		if in.Interactive() {
			terminal.ClearPreviousLines(len(prompt))
		}
		if secret == "" {
			return errors.New("an empty secret cannot be verified")
		}
		if loginPAT {
			creds.PAT = secret
		} else {
			creds.Password = secret
		}

		client, err := auth.NewClient(creds, cfg, nil)
		if err != nil {
			return err
		}
		ctx, cancel := context.WithTimeout(cmd.Context(), time.Minute)
		defer cancel()

		stop := startInlineSpinner("Verifying credentials")
		err = verify(ctx, client, creds)
		stop()
		if err != nil {
			return httperrors.FormatNetworkError(err, client.Host(), "logging in")
		}

		km, err := openSecrets()
		if err != nil {
			return fmt.Errorf("open keychain: %w", err)
		}
		// A stored PAT outranks a password, so only one kind may remain.
		if loginPAT {
			err = km.SavePAT(creds.PAT)
			if err == nil {
				err = km.Remove(keychain.KeyPassword)
			}
		} else {
			err = km.SavePassword(creds.Password)
			if err == nil {
				err = km.Remove(keychain.KeyPAT)
			}
		}
		if err != nil {
			return errors.New(logging.PresentError("save secret", err))
		}

		cfg.Host, cfg.Username = client.Host(), creds.Username
		if err := config.Save(cfg); err != nil {
			return err
		}

		who := creds.Username
		if who == "" {
			who = "token holder"
		}
		pterm.Success.Printfln("Logged in to %s as %s", httperrors.HostOf(cfg.Host), who)
		return nil
	},
}

// verify proves the credentials work. A password is checked by the login
// exchange itself; a token only by an authenticated call.
func verify(ctx context.Context, client *dremio.Client, creds auth.Credentials) error {
	if !creds.UsesPAT() {
		_, err := client.GetToken(ctx)
		return err
	}
	_, err := client.ListCatalog(ctx)
	return err
}

func init() {
	rootCmd.AddCommand(loginCmd)
	loginCmd.Flags().StringVar(&loginHost, "host", "", "Coordinator base URL, e.g. http://localhost:9047")
	loginCmd.Flags().StringVar(&loginUser, "user", "", "Account name")
	loginCmd.Flags().BoolVar(&loginPAT, "pat", false, "Authenticate with a personal access token instead of a password")
}

// promptDefault asks for a value, showing and falling back to def.
func promptDefault(in *terminal.Prompter, label, def string) (string, error) {
	prompt := label + ": "
	if def != "" {
		prompt = fmt.Sprintf("%s [%s]: ", label, def)
	}
	v, err := in.Line(prompt)
	if err != nil {
		return "", err
	}
	if v = strings.TrimSpace(v); v == "" {
		return def, nil
	}
	return v, nil
}
