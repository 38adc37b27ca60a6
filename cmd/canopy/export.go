// Package main provides the entry point for the canopy CLI.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/hollyoak/canopy/internal/export"
	"github.com/hollyoak/canopy/internal/output"
	"github.com/hollyoak/canopy/internal/store"
)

// newExportCmd creates the export command.
func newExportCmd() *cobra.Command {
	return newExportCmdInternal(nil)
}

// newExportCmdInternal creates the export command with an optional clock
// injection. If clock is nil, the current UTC time is used for naming.
func newExportCmdInternal(clock func() time.Time) *cobra.Command {
	var formatFlag string
	var scopeFlag string
	var outFlag string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the mind map to a consumable artifact",
		Long: `Export the mind map in one of three formats.

Formats:
  json          Lossless snapshot, round-trippable by canopy itself
  markdown      Human-readable outline of the full tree
  plan-feature  Planning document for a downstream workflow; --scope
                restricts it to one node's subtree

Examples:
  canopy export --format json                      # JSON snapshot to stdout
  canopy export --format markdown --out ./docs/    # Outline under a derived name
  canopy export --format plan-feature --scope ab12 # Plan for one subtree`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runExport(cmd, clock, formatFlag, scopeFlag, outFlag)
		},
	}

	cmd.Flags().StringVar(&formatFlag, "format", "json", "Output format: json, markdown, or plan-feature")
	cmd.Flags().StringVar(&scopeFlag, "scope", "", "Node id to scope a plan-feature export to")
	cmd.Flags().StringVar(&outFlag, "out", "", "Output directory (if omitted, writes to stdout)")

	return cmd
}

// runExport executes the export command.
func runExport(cmd *cobra.Command, clock func() time.Time, formatFlag, scopeFlag, outFlag string) error {
	printer := output.NewPrinter(cmd.OutOrStdout(), isJSONMode(cmd), output.IsTTY(cmd.OutOrStdout()))

	format, ok := export.ParseFormat(formatFlag)
	if !ok {
		err := output.NewUserError("--format must be 'json', 'markdown', or 'plan-feature'")
		printer.Error(err)
		return err
	}

	snap, err := store.Load(mapPath(cmd))
	if err != nil {
		printer.Error(err)
		return err
	}

	if clock == nil {
		clock = func() time.Time { return time.Now().UTC() }
	}

	artifact, err := export.Build(snap, format, scopeFlag, clock())
	if err != nil {
		printer.Error(err)
		return err
	}

	return deliverArtifact(cmd, printer, artifact, outFlag)
}

// deliverArtifact writes the artifact to stdout or into a directory.
func deliverArtifact(cmd *cobra.Command, printer *output.Printer, artifact export.Artifact, outFlag string) error {
	if outFlag == "" {
		if isJSONMode(cmd) {
			return printer.WriteJSON(artifact)
		}
		printer.Print("%s", artifact.Text)
		return nil
	}

	if err := os.MkdirAll(outFlag, 0755); err != nil {
		sysErr := output.NewSystemError(fmt.Sprintf("failed to create output directory: %v", err))
		printer.Error(sysErr)
		return sysErr
	}

	path, err := export.WriteFile(artifact, outFlag)
	if err != nil {
		printer.Error(err)
		return err
	}

	return printer.Success(map[string]any{
		"message":    fmt.Sprintf("Exported %s (%s)", path, artifact.MediaType),
		"path":       path,
		"file_name":  artifact.FileName,
		"media_type": artifact.MediaType,
	})
}
