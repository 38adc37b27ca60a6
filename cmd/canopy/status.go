// Package main provides the entry point for the canopy CLI.
package main

import (
	"github.com/spf13/cobra"

	"github.com/hollyoak/canopy/internal/mindmap"
	"github.com/hollyoak/canopy/internal/output"
	"github.com/hollyoak/canopy/internal/store"
)

// newStatusCmd creates the status command.
func newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show mind-map state",
		Long:  `Show the project name, node count, maximum depth, and map document path.`,
		RunE:  runStatus,
	}
}

// runStatus executes the status command.
func runStatus(cmd *cobra.Command, _ []string) error {
	printer := output.NewPrinter(cmd.OutOrStdout(), isJSONMode(cmd), output.IsTTY(cmd.OutOrStdout()))

	path := mapPath(cmd)
	snap, err := store.Load(path)
	if err != nil {
		printer.Error(err)
		return err
	}

	nodes := mindmap.Count(snap.Roots)
	depth := mindmap.MaxDepth(snap.Roots)

	if isJSONMode(cmd) {
		return printer.WriteJSON(map[string]any{
			"project":   snap.Project.Name,
			"nodes":     nodes,
			"max_depth": depth,
			"map_path":  path,
		})
	}

	styles := printer.Styles()
	printer.Println(styles.Title.Render(snap.Project.Name))
	printer.Print("%s: %d\n", styles.Bold.Render("Nodes"), nodes)
	printer.Print("%s: %d\n", styles.Bold.Render("Max depth"), depth)
	printer.Print("%s: %s\n", styles.Bold.Render("Map"), path)
	return nil
}
