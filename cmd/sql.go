// Copyright (c) 2025 The dremioctl Authors
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"dremio/cli/pkg/dremio"
)

var sqlFile string

// sqlCmd submits one statement and waits for its job.
var sqlCmd = &cobra.Command{
	Use:   "sql [statement]",
	Short: "Run a SQL statement and wait for the job to finish",
	Long: `The sql command submits a statement, polls the resulting job until it
completes, fails or is canceled, and prints the job id and final state. Use
--file to read the statement from a file, or '-' for stdin.

A job that ends FAILED or CANCELED makes the command exit non-zero and print the
server's error message.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		stmt, err := statementFrom(args, sqlFile)
		if err != nil {
			return err
		}

		spin := newJobSpinner("Running SQL")
		s, err := newSession(cmd, dremio.WithPollObserver(spin.observe))
		if err != nil {
			return err
		}

		jobID, err := s.client.SubmitSQL(cmd.Context(), stmt)
		if err != nil {
			return s.explain(err, "submitting sql")
		}
		spin.start()
		state, err := s.client.GetRunStatus(cmd.Context(), jobID)
		spin.finish()
		if err != nil {
			return s.explain(err, "polling job "+jobID)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", jobID, state)
		if state == dremio.JobCompleted {
			return nil
		}
		msg := ""
		if js, err := s.client.GetJob(cmd.Context(), jobID); err == nil {
			msg = firstNonEmpty(js.ErrorMessage, js.CancellationReason)
		}
		if msg == "" {
			return fmt.Errorf("job %s ended %s", jobID, state)
		}
		return fmt.Errorf("job %s ended %s: %s", jobID, state, msg)
	},
}

func init() {
	rootCmd.AddCommand(sqlCmd)
	sqlCmd.Flags().StringVarP(&sqlFile, "file", "f", "", "Read the statement from a file ('-' for stdin)")
}

// statementFrom returns the single argument or the contents of file.
func statementFrom(args []string, file string) (string, error) {
	switch {
	case len(args) == 1 && file != "":
		return "", errors.New("pass a statement or --file, not both")
	case len(args) == 1:
		if stmt := strings.TrimSpace(args[0]); stmt != "" {
			return stmt, nil
		}
	case file != "":
		b, err := readInput(file)
		if err != nil {
			return "", err
		}
		if stmt := strings.TrimSpace(string(b)); stmt != "" {
			return stmt, nil
		}
	}
	return "", errors.New("a SQL statement is required")
}

// readInput reads path, or stdin when path is "-".
func readInput(path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}
