// Package store loads and saves canopy mind-map documents.
//
// A mind map lives in a single document under the project directory,
// .canopy/map.json by default. YAML documents (.yaml/.yml) are supported
// for hand-authored maps. Every load returns a freshly materialized,
// validated snapshot, so callers always encode from a stable copy.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/hollyoak/canopy/internal/mindmap"
	"github.com/hollyoak/canopy/internal/output"
)

// SchemaVersion is the current schema version for canopy map documents.
const SchemaVersion = "canopy.map/v1"

// DefaultPath is the conventional map document location.
const DefaultPath = ".canopy/map.json"

// ErrNotCanopyMap indicates a document that parsed but does not carry
// the canopy map schema.
var ErrNotCanopyMap = errors.New("not a canopy map document")

// Document is the stored form of a mind map: the snapshot plus a schema
// marker so foreign files are rejected early.
type Document struct {
	Schema  string          `json:"schema" yaml:"schema"`
	Project mindmap.Project `json:"project" yaml:"project"`
	Roots   []*mindmap.Node `json:"roots" yaml:"roots"`
}

// ResolvePath returns the map document path: the explicit flag value if
// given, the CANOPY_MAP environment variable if set, else DefaultPath.
func ResolvePath(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	if env := os.Getenv("CANOPY_MAP"); env != "" {
		return env
	}
	return DefaultPath
}

// isYAML reports whether the path refers to a YAML document.
func isYAML(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".yaml" || ext == ".yml"
}

// Load reads, decodes, and validates the map document at path.
// Returns a user error if the document does not exist, ErrNotCanopyMap
// if it carries the wrong schema, and the validation error kinds from
// the mindmap package for malformed trees.
func Load(path string) (*mindmap.Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, output.NewUserError("map document not found: " + path)
		}
		return nil, output.NewSystemErrorWithCause("failed to read map document: "+path, err)
	}

	var doc Document
	if isYAML(path) {
		err = yaml.Unmarshal(data, &doc)
	} else {
		err = json.Unmarshal(data, &doc)
	}
	if err != nil {
		return nil, output.NewSystemErrorWithCause("failed to parse map document: "+path, err)
	}

	if doc.Schema != SchemaVersion {
		return nil, fmt.Errorf("%w: schema %q in %s", ErrNotCanopyMap, doc.Schema, path)
	}

	snap := &mindmap.Snapshot{Project: doc.Project, Roots: doc.Roots}
	if err := mindmap.Validate(snap); err != nil {
		return nil, fmt.Errorf("invalid map document %s: %w", path, err)
	}
	return snap, nil
}

// Save encodes the snapshot and writes the document at path, creating
// parent directories as needed. The encoding follows the file extension.
func Save(path string, snap *mindmap.Snapshot) error {
	doc := Document{
		Schema:  SchemaVersion,
		Project: snap.Project,
		Roots:   snap.Roots,
	}
	if doc.Roots == nil {
		doc.Roots = []*mindmap.Node{}
	}

	var data []byte
	var err error
	if isYAML(path) {
		data, err = yaml.Marshal(&doc)
	} else {
		data, err = json.MarshalIndent(&doc, "", "  ")
	}
	if err != nil {
		return output.NewSystemErrorWithCause("failed to encode map document", err)
	}
	if !isYAML(path) {
		data = append(data, '\n')
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return output.NewSystemErrorWithCause("failed to create map directory: "+dir, err)
		}
	}
	if err := os.WriteFile(path, data, 0600); err != nil {
		return output.NewSystemErrorWithCause("failed to write map document: "+path, err)
	}
	return nil
}

// AddNode appends a new node to the parent's children, or a new root if
// parentID is empty. Child order is append-only; new nodes go last.
// Returns the created node.
func AddNode(snap *mindmap.Snapshot, parentID, title, description string) (*mindmap.Node, error) {
	if title == "" {
		return nil, output.NewUserError("node title is required")
	}

	node := &mindmap.Node{
		ID:          mindmap.NewNodeID(),
		Title:       title,
		Description: description,
	}

	if parentID == "" {
		snap.Roots = append(snap.Roots, node)
		return node, nil
	}

	parent := mindmap.Find(snap, parentID)
	if parent == nil {
		return nil, output.NewUserError("parent node not found: " + parentID)
	}
	parent.Children = append(parent.Children, node)
	return node, nil
}
