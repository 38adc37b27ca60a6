// Package main provides the entry point for the canopy CLI.
package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/hollyoak/canopy/internal/mindmap"
	"github.com/hollyoak/canopy/internal/outline"
	"github.com/hollyoak/canopy/internal/output"
	"github.com/hollyoak/canopy/internal/store"
)

// newImportCmd creates the import command.
func newImportCmd() *cobra.Command {
	var forceFlag bool

	cmd := &cobra.Command{
		Use:   "import <outline.md>",
		Short: "Import a markdown outline as a mind map",
		Long: `Import a hand-written markdown outline as the mind map document.

The outline's level-one heading names the project; nested list items
become nodes and continuation lines become descriptions. Imported nodes
get fresh ids.

Refuses to overwrite an existing map document unless --force is given.

Example outline:
  # Release Planning

  - Authentication
    Everything around login
    - Session tokens`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runImport(cmd, args[0], forceFlag)
		},
	}

	cmd.Flags().BoolVar(&forceFlag, "force", false, "Overwrite an existing map document")

	return cmd
}

// runImport executes the import command.
func runImport(cmd *cobra.Command, sourcePath string, force bool) error {
	printer := output.NewPrinter(cmd.OutOrStdout(), isJSONMode(cmd), output.IsTTY(cmd.OutOrStdout()))

	path := mapPath(cmd)
	if !force {
		if _, statErr := os.Stat(path); statErr == nil {
			err := output.NewConflictError("map document already exists: " + path + " (use --force to overwrite)")
			printer.Error(err)
			return err
		}
	}

	source, err := os.ReadFile(sourcePath)
	if err != nil {
		sysErr := output.NewSystemErrorWithCause("failed to read outline: "+sourcePath, err)
		printer.Error(sysErr)
		return sysErr
	}

	snap, err := outline.Parse(source)
	if err != nil {
		printer.Error(err)
		return err
	}

	if err := store.Save(path, snap); err != nil {
		printer.Error(err)
		return err
	}

	return printer.Success(map[string]any{
		"message": "Imported " + sourcePath + " into " + path,
		"path":    path,
		"project": snap.Project.Name,
		"nodes":   mindmap.Count(snap.Roots),
	})
}
