// Package main provides the entry point for the canopy CLI.
package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/hollyoak/canopy/internal/config"
	"github.com/hollyoak/canopy/internal/envfile"
	"github.com/hollyoak/canopy/internal/output"
	"github.com/hollyoak/canopy/internal/store"
)

// Build info set via ldflags at build time by goreleaser.
// Example: go build -ldflags "-X main.version=1.0.0 -X main.commit=abc123 -X main.date=2024-01-01"
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// isJSONMode reads the --json persistent flag from the command hierarchy.
func isJSONMode(cmd *cobra.Command) bool {
	flag := cmd.Flags().Lookup("json")
	if flag == nil {
		// Walk up to root to find the persistent flag
		flag = cmd.Root().PersistentFlags().Lookup("json")
	}
	return flag != nil && flag.Value.String() == "true"
}

// mapPath resolves the map document path from the --map persistent flag,
// the CANOPY_MAP environment variable, or the default location.
func mapPath(cmd *cobra.Command) string {
	flag := cmd.Flags().Lookup("map")
	if flag == nil {
		flag = cmd.Root().PersistentFlags().Lookup("map")
	}
	value := ""
	if flag != nil {
		value = flag.Value.String()
	}
	return store.ResolvePath(value)
}

// buildVersion returns the full version string including commit and date.
func buildVersion() string {
	if commit == "none" && date == "unknown" {
		return version
	}
	shortCommit := commit
	if len(commit) > 7 {
		shortCommit = commit[:7]
	}
	return fmt.Sprintf("%s (%s, %s)", version, shortCommit, date)
}

func main() {
	code := run()
	os.Exit(code)
}

func run() int {
	cmd := newRootCmd()
	err := fang.Execute(context.Background(), cmd, fang.WithVersion(buildVersion()))
	return output.GetExitCode(err)
}

// newRootCmd creates the root command for the canopy CLI.
func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "canopy",
		Short: "A mind-map exporter for project outlines",
		Long: `Canopy - A mind-map tool that turns project outlines into consumable artifacts.

Canopy stores a project's mind map as a plain document and exports it as:
  - A lossless JSON snapshot for pipelines and round-tripping
  - A human-readable markdown outline
  - A plan-feature document that seeds a downstream planning workflow,
    optionally scoped to one node's subtree

All commands support --json for structured output.`,
		Version:       buildVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			// If --json flag is set but no subcommand, output JSON error
			if isJSONMode(cmd) {
				printer := output.NewPrinter(cmd.OutOrStdout(), true, false)
				err := output.NewUserError("no command specified. Run 'canopy --help' for usage")
				printer.Error(err)
				return err
			}
			// Otherwise show help
			return cmd.Help()
		},
	}

	// Load .env.local (then .env) for CANOPY_* overrides.
	// Environment variables always take precedence over file values.
	cmd.PersistentPreRunE = func(_ *cobra.Command, _ []string) error {
		loadEnvFiles()
		return nil
	}

	// Persistent flags available to all subcommands
	cmd.PersistentFlags().Bool("json", false, "Output in JSON format")
	cmd.PersistentFlags().String("map", "", "Path to the map document (default .canopy/map.json)")

	// Configure lipgloss for TTY detection
	lipgloss.SetHasDarkBackground(true)

	addCommandGroups(cmd)
	addCommands(cmd)

	return cmd
}

// loadEnvFiles loads env files in priority order. First match for each
// variable wins; environment variables already set always take precedence.
//
// Resolution order:
//  1. $CWD/.env.local   (per-project override, gitignored)
//  2. $CWD/.env         (per-project)
//  3. ~/.config/canopy/env (global fallback)
func loadEnvFiles() {
	_ = envfile.Load(".env.local")
	_ = envfile.Load(".env")

	if dir := config.Dir(); dir != "" {
		_ = envfile.Load(filepath.Join(dir, "env"))
	}
}

// addCommandGroups defines the command groups for help output.
func addCommandGroups(cmd *cobra.Command) {
	cmd.AddGroup(&cobra.Group{ID: "map", Title: "Map Commands:"})
	cmd.AddGroup(&cobra.Group{ID: "query", Title: "Query Commands:"})
	cmd.AddGroup(&cobra.Group{ID: "agent", Title: "Agent Commands:"})
}

// addCommands adds all subcommands with their group assignments.
func addCommands(cmd *cobra.Command) {
	// Map commands: new, add, import
	addGroupedCommand(cmd, newNewCmd(), "map")
	addGroupedCommand(cmd, newAddCmd(), "map")
	addGroupedCommand(cmd, newImportCmd(), "map")

	// Query commands: show, status, export
	addGroupedCommand(cmd, newShowCmd(), "query")
	addGroupedCommand(cmd, newStatusCmd(), "query")
	addGroupedCommand(cmd, newExportCmd(), "query")

	// Agent commands: serve
	addGroupedCommand(cmd, newServeCmd(), "agent")
}

// addGroupedCommand adds a subcommand with a group assignment.
func addGroupedCommand(parent *cobra.Command, child *cobra.Command, groupID string) {
	child.GroupID = groupID
	parent.AddCommand(child)
}
