// Package main provides the entry point for the canopy CLI.
package main

import (
	"github.com/spf13/cobra"

	"github.com/hollyoak/canopy/internal/export"
	"github.com/hollyoak/canopy/internal/mindmap"
	"github.com/hollyoak/canopy/internal/output"
	"github.com/hollyoak/canopy/internal/store"
)

// newShowCmd creates the show command.
func newShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show [node-id]",
		Short: "Show the mind map as an outline",
		Long: `Show the mind map as a markdown outline.

With a node id argument, only that node's subtree is shown. An id that
does not resolve shows the whole map.

Examples:
  canopy show            # whole map
  canopy show ab12       # one subtree
  canopy show --json     # snapshot JSON instead of the outline`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			nodeID := ""
			if len(args) == 1 {
				nodeID = args[0]
			}
			return runShow(cmd, nodeID)
		},
	}
}

// runShow executes the show command.
func runShow(cmd *cobra.Command, nodeID string) error {
	printer := output.NewPrinter(cmd.OutOrStdout(), isJSONMode(cmd), output.IsTTY(cmd.OutOrStdout()))

	snap, err := store.Load(mapPath(cmd))
	if err != nil {
		printer.Error(err)
		return err
	}

	scoped := mindmap.Scoped(snap, nodeID)

	if isJSONMode(cmd) {
		encoded, err := export.EncodeJSON(scoped)
		if err != nil {
			printer.Error(err)
			return err
		}
		printer.Print("%s", encoded)
		return nil
	}

	printer.Print("%s", export.EncodeMarkdown(scoped))
	return nil
}
