// Copyright (c) 2025 The dremioctl Authors
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package cmd provides the dremioctl command-line interface. Each subcommand
// maps onto one pkg/dremio operation: catalog management, SQL execution with
// job polling, virtual and physical dataset orchestration, and wiki
// documentation. Credentials are managed by login/logout and resolved from the
// environment, the OS keychain and the XDG config file.
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"dremio/cli/internal/logging"
)

var (
	showVersion bool
	verbose     bool
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "dremioctl",
	Short: "Manage Dremio spaces, datasets and documentation from the command line",
	Long: `dremioctl talks to a Dremio coordinator over its REST API. It creates spaces and
folders, runs SQL and waits for the job to finish, saves virtual datasets with
their wiki documentation and refreshes Parquet physical datasets.

Run 'dremioctl login' once, or set DREMIO_HOST, DREMIO_USER and DREMIO_PASSWORD
(or DREMIO_PAT) in the environment.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if showVersion {
			fmt.Fprintln(cmd.OutOrStdout(), versionString())
			return nil
		}
		return cmd.Help()
	},
}

// Execute runs the CLI application. Interrupts cancel the running operation,
// including any job poll in progress.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, logging.FormatAPIError(err))
		stop()
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().BoolVar(&showVersion, "version", false, "Show CLI version information")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log each API step")
}
