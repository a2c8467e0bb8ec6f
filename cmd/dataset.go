// Copyright (c) 2025 The dremioctl Authors
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"dremio/cli/pkg/dremio"
)

var (
	vdsQuery     string
	vdsQueryFile string
	vdsDocsFile  string
)

var vdsCmd = &cobra.Command{
	Use:   "vds",
	Short: "Manage virtual datasets (views)",
}

var vdsApplyCmd = &cobra.Command{
	Use:   "apply <path>",
	Short: "Create or replace a view, optionally with wiki documentation",
	Long: `Runs CREATE OR REPLACE VDS <path> AS <query> and waits for the job. When
--docs-file is given, the markdown is attached as the view's wiki afterwards.
A job that fails or is canceled is an error and no documentation is written.

  dremioctl vds apply Sales.orders_clean --query-file orders.sql --docs-file orders.md`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]
		query, err := vdsQueryText()
		if err != nil {
			return err
		}
		var docs string
		if vdsDocsFile != "" {
			b, err := readInput(vdsDocsFile)
			if err != nil {
				return err
			}
			docs = string(b)
		}

		spin := newJobSpinner("Saving view " + path)
		s, err := newSession(cmd, dremio.WithPollObserver(spin.observe))
		if err != nil {
			return err
		}
		spin.start()
		err = s.client.CreateOrReplaceVDS(cmd.Context(), path, query, docs)
		spin.finish()
		if err != nil {
			return s.explain(err, "saving view "+path)
		}

		if docs != "" {
			pterm.Success.Printfln("View %s saved with documentation", path)
		} else {
			pterm.Success.Printfln("View %s saved", path)
		}
		return nil
	},
}

func vdsQueryText() (string, error) {
	if vdsQuery != "" && vdsQueryFile != "" {
		return "", errors.New("pass --query or --query-file, not both")
	}
	q := vdsQuery
	if vdsQueryFile != "" {
		b, err := readInput(vdsQueryFile)
		if err != nil {
			return "", err
		}
		q = string(b)
	}
	q = strings.TrimRight(strings.TrimSpace(q), ";")
	if q == "" {
		return "", errors.New("a query is required (--query or --query-file)")
	}
	return q, nil
}

var pdsCmd = &cobra.Command{
	Use:   "pds",
	Short: "Manage physical datasets",
}

var pdsRefreshCmd = &cobra.Command{
	Use:   "refresh <path>...",
	Short: "Re-promote Parquet files or folders as physical datasets",
	Long: `Drops any existing promotion of each path and promotes it again as a Parquet
dataset, so schema changes in the files are picked up. Paths are processed in
order and the command stops at the first failure.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := newSession(cmd)
		if err != nil {
			return err
		}
		for _, path := range args {
			stop := startInlineSpinner("Refreshing " + path)
			id, err := s.client.RefreshParquetPDS(cmd.Context(), path)
			stop()
			if err != nil {
				return s.explain(err, "refreshing "+path)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", dremio.NormalizePath(path), id)
		}
		return nil
	},
}

func init() {
	vdsApplyCmd.Flags().StringVarP(&vdsQuery, "query", "q", "", "SELECT statement defining the view")
	vdsApplyCmd.Flags().StringVar(&vdsQueryFile, "query-file", "", "Read the query from a file ('-' for stdin)")
	vdsApplyCmd.Flags().StringVar(&vdsDocsFile, "docs-file", "", "Markdown file to attach as the view's wiki")
	vdsCmd.AddCommand(vdsApplyCmd)
	pdsCmd.AddCommand(pdsRefreshCmd)
	rootCmd.AddCommand(vdsCmd, pdsCmd)
}
