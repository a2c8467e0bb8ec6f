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
	docsFile   string
	docsByPath bool
)

var docsCmd = &cobra.Command{
	Use:   "docs",
	Short: "Read and write catalog wiki documentation",
}

var docsSetCmd = &cobra.Command{
	Use:   "set <id>",
	Short: "Replace the wiki of an element with a markdown file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if docsFile == "" {
			return errors.New("--file is required")
		}
		b, err := readInput(docsFile)
		if err != nil {
			return err
		}

		s, err := newSession(cmd)
		if err != nil {
			return err
		}
		id, err := docsTarget(cmd, s, args[0])
		if err != nil {
			return err
		}
		if err := s.client.CreateDocumentation(cmd.Context(), id, string(b)); err != nil {
			return s.explain(err, "writing documentation")
		}
		pterm.Success.Printfln("Documentation updated for %s", args[0])
		return nil
	},
}

var docsGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Print the wiki of an element",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := newSession(cmd)
		if err != nil {
			return err
		}
		id, err := docsTarget(cmd, s, args[0])
		if err != nil {
			return err
		}
		w, err := s.client.GetDocumentation(cmd.Context(), id)
		if err != nil {
			return s.explain(err, "reading documentation")
		}
		text := w.Text
		if !strings.HasSuffix(text, "\n") && text != "" {
			text += "\n"
		}
		fmt.Fprint(cmd.OutOrStdout(), text)
		return nil
	},
}

// docsTarget returns arg as an id, or resolves it when --path is set.
func docsTarget(cmd *cobra.Command, s *session, arg string) (dremio.ElementID, error) {
	if !docsByPath {
		return dremio.ElementID(arg), nil
	}
	id, err := s.client.GetElementID(cmd.Context(), arg)
	if err != nil {
		return "", s.explain(err, "looking up "+arg)
	}
	return id, nil
}

func init() {
	docsSetCmd.Flags().StringVarP(&docsFile, "file", "f", "", "Markdown file to upload ('-' for stdin)")
	docsCmd.PersistentFlags().BoolVar(&docsByPath, "path", false, "Treat the argument as a catalog path instead of an id")
	docsCmd.AddCommand(docsSetCmd, docsGetCmd)
	rootCmd.AddCommand(docsCmd)
}
