// Package main provides the entry point for the canopy CLI.
package main

import (
	"github.com/spf13/cobra"

	"github.com/hollyoak/canopy/internal/output"
	"github.com/hollyoak/canopy/internal/store"
)

// newAddCmd creates the add command.
func newAddCmd() *cobra.Command {
	var parentFlag string
	var descFlag string

	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Add a node to the mind map",
		Long: `Add a node to the mind map and save the document.

Without --parent the node becomes a new root. New nodes append to the
end of their parent's children; child order is preserved everywhere.

Examples:
  canopy add "Authentication"
  canopy add "Session tokens" --parent ab12 --desc "Rotate on login"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAdd(cmd, args[0], parentFlag, descFlag)
		},
	}

	cmd.Flags().StringVar(&parentFlag, "parent", "", "Parent node id (omit to add a root)")
	cmd.Flags().StringVar(&descFlag, "desc", "", "Optional longer description")

	return cmd
}

// runAdd executes the add command.
func runAdd(cmd *cobra.Command, title, parentID, description string) error {
	printer := output.NewPrinter(cmd.OutOrStdout(), isJSONMode(cmd), output.IsTTY(cmd.OutOrStdout()))

	path := mapPath(cmd)
	snap, err := store.Load(path)
	if err != nil {
		printer.Error(err)
		return err
	}

	node, err := store.AddNode(snap, parentID, title, description)
	if err != nil {
		printer.Error(err)
		return err
	}

	if err := store.Save(path, snap); err != nil {
		printer.Error(err)
		return err
	}

	return printer.Success(map[string]any{
		"message": "Added " + node.Title + " (" + node.ID + ")",
		"id":      node.ID,
		"title":   node.Title,
	})
}
