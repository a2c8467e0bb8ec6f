// Copyright (c) 2025 The dremioctl Authors
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"fmt"
	"strings"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"dremio/cli/pkg/dremio"
)

var spaceCmd = &cobra.Command{
	Use:   "space",
	Short: "Manage spaces",
}

var folderCmd = &cobra.Command{
	Use:   "folder",
	Short: "Manage folders",
}

var elementCmd = &cobra.Command{
	Use:   "element",
	Short: "Look up, list and delete catalog elements",
}

var spaceCreateCmd = &cobra.Command{
	Use:   "create <name>",
	Short: "Create a space; an existing space is left alone",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return createElement(cmd, dremio.ElementSpace, args[0])
	},
}

var folderCreateCmd = &cobra.Command{
	Use:   "create <path>",
	Short: "Create a folder at a slash or dot separated path",
	Long: `Creates a folder inside an existing space or source. The parent must exist;
create spaces first with 'dremioctl space create'.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return createElement(cmd, dremio.ElementFolder, dremio.NormalizePath(args[0]))
	},
}

func createElement(cmd *cobra.Command, kind dremio.ElementKind, name string) error {
	s, err := newSession(cmd)
	if err != nil {
		return err
	}
	id, err := s.client.CreateElement(cmd.Context(), kind, name)
	if err != nil {
		return s.explain(err, "creating "+string(kind))
	}
	if id == dremio.AlreadyExists {
		pterm.Info.Printfln("%s %s already exists", kind, name)
		return nil
	}
	fmt.Fprintln(cmd.OutOrStdout(), id)
	return nil
}

var elementIDCmd = &cobra.Command{
	Use:   "id <path>",
	Short: "Print the id of the element at path",
	Long: `Resolves a path such as space.folder.view, "my space"."view" or space/view to
its catalog id. Lookups are retried briefly while a freshly created element
becomes visible.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := newSession(cmd)
		if err != nil {
			return err
		}
		id, err := s.client.GetElementID(cmd.Context(), args[0])
		if err != nil {
			return s.explain(err, "looking up "+args[0])
		}
		fmt.Fprintln(cmd.OutOrStdout(), id)
		return nil
	},
}

var elementGetCmd = &cobra.Command{
	Use:   "get <path>",
	Short: "Show the catalog entry at path",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := newSession(cmd)
		if err != nil {
			return err
		}
		el, err := s.client.GetElement(cmd.Context(), args[0])
		if err != nil {
			return s.explain(err, "looking up "+args[0])
		}
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "id:     %s\n", el.ID)
		fmt.Fprintf(out, "entity: %s\n", el.EntityType)
		if el.Type != "" {
			fmt.Fprintf(out, "type:   %s\n", el.Type)
		}
		fmt.Fprintf(out, "path:   %s\n", strings.Join(el.Path, "/"))
		if el.Tag != "" {
			fmt.Fprintf(out, "tag:    %s\n", el.Tag)
		}
		return nil
	},
}

var elementListCmd = &cobra.Command{
	Use:   "list",
	Short: "List top-level spaces and sources",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := newSession(cmd)
		if err != nil {
			return err
		}
		els, err := s.client.ListCatalog(cmd.Context())
		if err != nil {
			return s.explain(err, "listing the catalog")
		}
		for _, el := range els {
			fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\n", el.ID, el.Type, strings.Join(el.Path, "/"))
		}
		return nil
	},
}

var elementDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a catalog element by id",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := newSession(cmd)
		if err != nil {
			return err
		}
		if err := s.client.DeleteElement(cmd.Context(), dremio.ElementID(args[0])); err != nil {
			return s.explain(err, "deleting "+args[0])
		}
		pterm.Success.Printfln("Deleted %s", args[0])
		return nil
	},
}

func init() {
	spaceCmd.AddCommand(spaceCreateCmd)
	folderCmd.AddCommand(folderCreateCmd)
	elementCmd.AddCommand(elementIDCmd, elementGetCmd, elementListCmd, elementDeleteCmd)
	rootCmd.AddCommand(spaceCmd, folderCmd, elementCmd)
}
