// Copyright (c) 2025 The dremioctl Authors
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"dremio/cli/internal/auth"
	"dremio/cli/internal/config"
	"dremio/cli/internal/httperrors"
	"dremio/cli/internal/keychain"
	"dremio/cli/internal/logging"
	"dremio/cli/pkg/dremio"
)

// openSecrets opens the keychain; tests swap it for an in-memory ring.
var openSecrets = func() (*keychain.Manager, error) {
	return keychain.GetManager()
}

// session bundles what a command needs to talk to Dremio.
type session struct {
	cfg    config.Config
	creds  auth.Credentials
	client *dremio.Client
}

// newSession resolves credentials and builds an API client. The keychain is
// only opened when the environment does not already supply a secret.
func newSession(cmd *cobra.Command, extra ...dremio.Option) (*session, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	var store auth.SecretStore
	if !envHasSecret() {
		if km, err := openSecrets(); err == nil {
			store = km
		}
	}
	creds, err := auth.Resolve(cfg, store)
	if err != nil {
		return nil, err
	}

	logger := logging.NewLogger(cfg.LogLevel, verbose).WithWriter(cmd.ErrOrStderr())
	client, err := auth.NewClient(creds, cfg, logger, extra...)
	if err != nil {
		return nil, err
	}
	return &session{cfg: cfg, creds: creds, client: client}, nil
}

// explain prints a network hint for transport failures and passes err on.
func (s *session) explain(err error, action string) error {
	if err == nil {
		return nil
	}
	return httperrors.FormatNetworkError(err, s.client.Host(), action)
}

func envHasSecret() bool {
	for _, k := range []string{auth.EnvPassword, auth.EnvPAT} {
		if os.Getenv(k) != "" {
			return true
		}
	}
	return false
}
