// Package main provides the entry point for the canopy CLI.
package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/hollyoak/canopy/internal/output"
	"github.com/hollyoak/canopy/internal/store"
)

func writeOutlineFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "outline.md")
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("writing outline: %v", err)
	}
	return path
}

func TestImportCommand(t *testing.T) {
	mapFile := setMapPath(t)
	source := writeOutlineFile(t, `# Release Planning

- Authentication
  Everything around login
  - Session tokens
- Billing
`)

	cmd := newImportCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{source})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("import error: %v", err)
	}

	snap, err := store.Load(mapFile)
	if err != nil {
		t.Fatalf("loading imported map: %v", err)
	}
	if snap.Project.Name != "Release Planning" {
		t.Errorf("project name = %q", snap.Project.Name)
	}
	if len(snap.Roots) != 2 {
		t.Fatalf("roots = %d, want 2", len(snap.Roots))
	}
	auth := snap.Roots[0]
	if auth.Title != "Authentication" || auth.Description != "Everything around login" {
		t.Errorf("first root = %q / %q", auth.Title, auth.Description)
	}
	if len(auth.Children) != 1 || auth.Children[0].Title != "Session tokens" {
		t.Errorf("first root children = %v", auth.Children)
	}
	if auth.ID == "" {
		t.Error("imported node has no id")
	}
}

func TestImportCommand_ConflictWithoutForce(t *testing.T) {
	setMapPath(t)
	mustCreateMap(t, "Existing")
	source := writeOutlineFile(t, "# New Map\n\n- Item\n")

	cmd := newImportCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{source})
	err := cmd.Execute()
	if err == nil {
		t.Fatal("import over an existing map should fail")
	}
	if output.GetExitCode(err) != output.ExitConflict {
		t.Errorf("exit code = %d, want %d", output.GetExitCode(err), output.ExitConflict)
	}
}

func TestImportCommand_ForceOverwrites(t *testing.T) {
	mapFile := setMapPath(t)
	mustCreateMap(t, "Existing")
	source := writeOutlineFile(t, "# New Map\n\n- Item\n")

	cmd := newImportCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{source, "--force"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("forced import error: %v", err)
	}

	snap, err := store.Load(mapFile)
	if err != nil {
		t.Fatalf("loading map: %v", err)
	}
	if snap.Project.Name != "New Map" {
		t.Errorf("project name = %q, want New Map", snap.Project.Name)
	}
}

func TestImportCommand_MissingSource(t *testing.T) {
	setMapPath(t)

	cmd := newImportCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{filepath.Join(t.TempDir(), "missing.md")})
	err := cmd.Execute()
	if err == nil {
		t.Fatal("import of missing source should fail")
	}
	if output.GetExitCode(err) != output.ExitSystemError {
		t.Errorf("exit code = %d, want %d", output.GetExitCode(err), output.ExitSystemError)
	}
}
