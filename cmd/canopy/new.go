// Package main provides the entry point for the canopy CLI.
package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/hollyoak/canopy/internal/mindmap"
	"github.com/hollyoak/canopy/internal/output"
	"github.com/hollyoak/canopy/internal/store"
)

// newNewCmd creates the new command.
func newNewCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "new <project-name>",
		Short: "Create an empty mind map",
		Long: `Create an empty mind map document for a project.

The document is written to .canopy/map.json unless --map points elsewhere.

Examples:
  canopy new "Release Planning"
  canopy new "Side Project" --map ideas.yaml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runNew(cmd, args[0])
		},
	}
}

// runNew executes the new command.
func runNew(cmd *cobra.Command, projectName string) error {
	printer := output.NewPrinter(cmd.OutOrStdout(), isJSONMode(cmd), output.IsTTY(cmd.OutOrStdout()))

	if projectName == "" {
		err := output.NewUserError("project name must not be empty")
		printer.Error(err)
		return err
	}

	path := mapPath(cmd)
	if _, statErr := os.Stat(path); statErr == nil {
		err := output.NewConflictError("map document already exists: " + path)
		printer.Error(err)
		return err
	}

	snap := &mindmap.Snapshot{
		Project: mindmap.Project{Name: projectName},
		Roots:   []*mindmap.Node{},
	}
	if err := store.Save(path, snap); err != nil {
		printer.Error(err)
		return err
	}

	return printer.Success(map[string]any{
		"message": "Created " + path,
		"path":    path,
		"project": projectName,
	})
}
