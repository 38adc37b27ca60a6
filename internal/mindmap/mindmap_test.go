package mindmap

import (
	"bytes"
	"testing"
)

// testSnapshot returns a snapshot with two roots and a nested child.
func testSnapshot() *Snapshot {
	return &Snapshot{
		Project: Project{Name: "Release Planning"},
		Roots: []*Node{
			{
				ID:          "a",
				Title:       "Authentication",
				Description: "Everything around login",
				Children: []*Node{
					{ID: "b", Title: "Session tokens"},
					{ID: "c", Title: "Password reset", Description: "Email flow"},
				},
			},
			{ID: "d", Title: "Billing"},
		},
	}
}

func TestJSONRoundTrip(t *testing.T) {
	snap := testSnapshot()

	data, err := snap.ToJSON()
	if err != nil {
		t.Fatalf("ToJSON() error: %v", err)
	}

	parsed, err := FromJSON(data)
	if err != nil {
		t.Fatalf("FromJSON() error: %v", err)
	}

	again, err := parsed.ToJSON()
	if err != nil {
		t.Fatalf("ToJSON() after round trip error: %v", err)
	}

	if !bytes.Equal(data, again) {
		t.Errorf("round trip not byte-identical:\nfirst:\n%s\nsecond:\n%s", data, again)
	}
}

func TestFromJSON_Invalid(t *testing.T) {
	if _, err := FromJSON([]byte("{not json")); err == nil {
		t.Error("FromJSON() with invalid JSON should return error")
	}
}

func TestClone_Independent(t *testing.T) {
	snap := testSnapshot()
	clone := snap.Clone()

	// Mutating the clone must not affect the original.
	clone.Project.Name = "changed"
	clone.Roots[0].Title = "changed"
	clone.Roots[0].Children[0].Title = "changed"

	if snap.Project.Name != "Release Planning" {
		t.Errorf("original project name changed to %q", snap.Project.Name)
	}
	if snap.Roots[0].Title != "Authentication" {
		t.Errorf("original root title changed to %q", snap.Roots[0].Title)
	}
	if snap.Roots[0].Children[0].Title != "Session tokens" {
		t.Errorf("original child title changed to %q", snap.Roots[0].Children[0].Title)
	}
}

func TestClone_Nil(t *testing.T) {
	var snap *Snapshot
	if clone := snap.Clone(); clone != nil {
		t.Errorf("Clone() of nil = %v, want nil", clone)
	}
}

func TestNewNodeID_Unique(t *testing.T) {
	seen := make(map[string]bool)
	for range 100 {
		id := NewNodeID()
		if id == "" {
			t.Fatal("NewNodeID() returned empty string")
		}
		if seen[id] {
			t.Fatalf("NewNodeID() returned duplicate id %q", id)
		}
		seen[id] = true
	}
}
