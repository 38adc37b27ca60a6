package mcp

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/hollyoak/canopy/internal/mindmap"
	"github.com/hollyoak/canopy/internal/store"
)

// writeTestMap saves a map document with known ids and returns its path.
func writeTestMap(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "map.json")
	snap := &mindmap.Snapshot{
		Project: mindmap.Project{Name: "Release Planning"},
		Roots: []*mindmap.Node{
			{ID: "a", Title: "Authentication", Description: "Everything around login", Children: []*mindmap.Node{
				{ID: "b", Title: "Session tokens"},
			}},
			{ID: "c", Title: "Billing"},
		},
	}
	if err := store.Save(path, snap); err != nil {
		t.Fatalf("saving map: %v", err)
	}
	return path
}

func TestHandleExport(t *testing.T) {
	path := writeTestMap(t)
	handler := handleExport(path)

	tests := []struct {
		name     string
		input    ExportInput
		wantErr  bool
		wantText string
		wantType string
	}{
		{
			name:     "json format",
			input:    ExportInput{Format: "json"},
			wantText: `"name": "Release Planning"`,
			wantType: "application/json",
		},
		{
			name:     "markdown format",
			input:    ExportInput{Format: "markdown"},
			wantText: "- Authentication",
			wantType: "text/markdown",
		},
		{
			name:     "scoped plan",
			input:    ExportInput{Format: "plan-feature", Scope: "a"},
			wantText: "# Plan: Authentication",
			wantType: "text/markdown",
		},
		{
			name:    "unknown format",
			input:   ExportInput{Format: "xml"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, out, err := handler(context.Background(), nil, tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatal("handler should fail")
				}
				return
			}
			if err != nil {
				t.Fatalf("handler error: %v", err)
			}
			if !strings.Contains(out.Text, tt.wantText) {
				t.Errorf("artifact text missing %q:\n%s", tt.wantText, out.Text)
			}
			if out.MediaType != tt.wantType {
				t.Errorf("media type = %q, want %q", out.MediaType, tt.wantType)
			}
			if out.FileName == "" {
				t.Error("artifact has no file name")
			}
		})
	}
}

func TestHandleShow(t *testing.T) {
	path := writeTestMap(t)
	handler := handleShow(path)

	_, out, err := handler(context.Background(), nil, ShowInput{NodeID: "a"})
	if err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !strings.Contains(out.Outline, "- Authentication") {
		t.Errorf("outline missing scoped node:\n%s", out.Outline)
	}
	if strings.Contains(out.Outline, "Billing") {
		t.Errorf("scoped outline should not contain siblings:\n%s", out.Outline)
	}
}

func TestHandleStatus(t *testing.T) {
	path := writeTestMap(t)
	handler := handleStatus(path)

	_, out, err := handler(context.Background(), nil, StatusInput{})
	if err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if out.Project != "Release Planning" {
		t.Errorf("project = %q", out.Project)
	}
	if out.Nodes != 3 {
		t.Errorf("nodes = %d, want 3", out.Nodes)
	}
	if out.MaxDepth != 2 {
		t.Errorf("max depth = %d, want 2", out.MaxDepth)
	}
	if out.MapPath != path {
		t.Errorf("map path = %q, want %q", out.MapPath, path)
	}
}

func TestHandleAddNode(t *testing.T) {
	path := writeTestMap(t)
	handler := handleAddNode(path)

	_, out, err := handler(context.Background(), nil, AddNodeInput{
		ParentID: "c",
		Title:    "Invoicing",
	})
	if err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if out.ID == "" {
		t.Error("created node has no id")
	}
	if out.Nodes != 4 {
		t.Errorf("nodes = %d, want 4", out.Nodes)
	}

	snap, err := store.Load(path)
	if err != nil {
		t.Fatalf("reloading map: %v", err)
	}
	billing := mindmap.Find(snap, "c")
	if billing == nil || len(billing.Children) != 1 || billing.Children[0].Title != "Invoicing" {
		t.Errorf("node not persisted under parent: %+v", billing)
	}
}

func TestHandleAddNode_UnknownParent(t *testing.T) {
	path := writeTestMap(t)
	handler := handleAddNode(path)

	if _, _, err := handler(context.Background(), nil, AddNodeInput{ParentID: "zzz", Title: "Lost"}); err == nil {
		t.Fatal("handler should fail on unknown parent")
	}
}

func TestHandlers_MissingMap(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.json")

	if _, _, err := handleExport(path)(context.Background(), nil, ExportInput{Format: "json"}); err == nil {
		t.Error("export handler should fail without a map")
	}
	if _, _, err := handleStatus(path)(context.Background(), nil, StatusInput{}); err == nil {
		t.Error("status handler should fail without a map")
	}
}
