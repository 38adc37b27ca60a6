// Package mindmap provides the mind-map schema, validation, and serialization for canopy.
package mindmap

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
)

// Project identifies the mind map being exported.
// The name doubles as the basis for derived artifact file names.
type Project struct {
	Name string `json:"name" yaml:"name"`
}

// Node is one idea or task in the mind map. Children are ordered;
// the order carries meaning and is preserved by every encoder.
type Node struct {
	ID          string  `json:"id" yaml:"id"`
	Title       string  `json:"title" yaml:"title"`
	Description string  `json:"description,omitempty" yaml:"description,omitempty"`
	Children    []*Node `json:"children,omitempty" yaml:"children,omitempty"`
}

// Snapshot is an immutable point-in-time copy of a mind map.
// It is the sole input to the encoders; they never mutate it and
// never observe live state mid-encode.
type Snapshot struct {
	Project Project `json:"project" yaml:"project"`
	Roots   []*Node `json:"roots" yaml:"roots"`
}

// NewNodeID returns a fresh unique node identifier.
func NewNodeID() string {
	return uuid.NewString()
}

// Clone returns a deep copy of the snapshot.
// Callers that hold live state should hand encoders a clone so that
// concurrent mutation cannot be observed mid-encode.
func (s *Snapshot) Clone() *Snapshot {
	if s == nil {
		return nil
	}
	return &Snapshot{
		Project: s.Project,
		Roots:   cloneNodes(s.Roots),
	}
}

// cloneNodes deep-copies a node slice.
func cloneNodes(nodes []*Node) []*Node {
	if nodes == nil {
		return nil
	}
	result := make([]*Node, 0, len(nodes))
	for _, node := range nodes {
		result = append(result, &Node{
			ID:          node.ID,
			Title:       node.Title,
			Description: node.Description,
			Children:    cloneNodes(node.Children),
		})
	}
	return result
}

// FromJSON parses a snapshot from JSON data.
func FromJSON(data []byte) (*Snapshot, error) {
	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("parsing snapshot JSON: %w", err)
	}
	return &snap, nil
}

// ToJSON serializes the snapshot as indented JSON.
// Field order is fixed by the struct definitions, so the same snapshot
// always produces byte-identical output.
func (s *Snapshot) ToJSON() ([]byte, error) {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling snapshot: %w", err)
	}
	return data, nil
}
