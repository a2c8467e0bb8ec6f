// Copyright (c) 2025 The dremioctl Authors
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package auth resolves Dremio credentials for the CLI and builds API clients
// from them. Host and username come from the config file, secrets from the OS
// keychain, and DREMIO_* environment variables override both.
package auth

import (
	"errors"
	"os"
	"strings"

	"github.com/pterm/pterm"

	"dremio/cli/internal/config"
	"dremio/cli/internal/keychain"
	"dremio/cli/pkg/dremio"
)

// Environment variables consulted before the keychain and config file.
const (
	EnvHost     = "DREMIO_HOST"
	EnvUser     = "DREMIO_USER"
	EnvPassword = "DREMIO_PASSWORD"
	EnvPAT      = "DREMIO_PAT"
)

// ErrNotConfigured means no host or no secret could be resolved.
var ErrNotConfigured = errors.New("not logged in: run 'dremioctl login' or set DREMIO_HOST and DREMIO_PASSWORD")

// SecretStore is the subset of the keychain used for resolution.
type SecretStore interface {
	LoadPassword() (string, error)
	LoadPAT() (string, error)
}

// Source names where a secret came from, for whoami output.
type Source string

const (
	SourceEnv      Source = "environment"
	SourceKeychain Source = "keychain"
)

// Credentials is everything needed to construct a dremio.Client.
type Credentials struct {
	Host     string
	Username string
	Password string
	PAT      string
	Source   Source
}

// UsesPAT reports whether the credentials authenticate with a token.
func (c Credentials) UsesPAT() bool { return c.PAT != "" }

// Resolve merges environment, keychain and config. store may be nil when the
// keychain is unavailable; env-only setups still resolve.
func Resolve(cfg config.Config, store SecretStore) (Credentials, error) {
	creds := Credentials{
		Host:     firstNonEmpty(os.Getenv(EnvHost), cfg.Host),
		Username: firstNonEmpty(os.Getenv(EnvUser), cfg.Username),
	}

	if pat := os.Getenv(EnvPAT); pat != "" {
		creds.PAT, creds.Source = pat, SourceEnv
	} else if pw := os.Getenv(EnvPassword); pw != "" {
		creds.Password, creds.Source = pw, SourceEnv
	} else if store != nil {
		if pat, err := store.LoadPAT(); err == nil {
			creds.PAT, creds.Source = pat, SourceKeychain
		} else if !errors.Is(err, keychain.ErrNotFound) {
			return creds, err
		} else if pw, err := store.LoadPassword(); err == nil {
			creds.Password, creds.Source = pw, SourceKeychain
		} else if !errors.Is(err, keychain.ErrNotFound) {
			return creds, err
		}
	}

	if creds.Host == "" || creds.Source == "" {
		return creds, ErrNotConfigured
	}
	if !creds.UsesPAT() && creds.Username == "" {
		return creds, ErrNotConfigured
	}
	return creds, nil
}

// NewClient builds a dremio.Client from resolved credentials and config.
func NewClient(creds Credentials, cfg config.Config, logger *pterm.Logger, extra ...dremio.Option) (*dremio.Client, error) {
	poll, err := cfg.JobPolling()
	if err != nil {
		return nil, err
	}
	opts := []dremio.Option{dremio.WithJobPolling(poll)}
	if logger != nil {
		opts = append(opts, dremio.WithLogger(logger))
	}
	if creds.UsesPAT() {
		opts = append(opts, dremio.WithPersonalAccessToken(creds.PAT))
	}
	opts = append(opts, extra...)
	return dremio.New(normalizeHost(creds.Host), creds.Username, creds.Password, opts...), nil
}

// normalizeHost adds a scheme to bare host:port input.
func normalizeHost(host string) string {
	host = strings.TrimSpace(host)
	if host != "" && !strings.Contains(host, "://") {
		return "http://" + host
	}
	return host
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}
