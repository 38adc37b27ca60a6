package mindmap

import (
	"errors"
	"fmt"
	"strings"
)

// ErrDuplicateID indicates two nodes in the snapshot share an id.
var ErrDuplicateID = errors.New("duplicate node id")

// ErrCycle indicates the node graph is not a tree: a node is reachable
// through more than one path (a cycle or a shared child).
var ErrCycle = errors.New("node graph contains a cycle")

// ValidationError is returned when required fields are missing.
type ValidationError struct {
	Fields  []string
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Message, strings.Join(e.Fields, ", "))
}

// Validate checks that the snapshot is a well-formed tree: every node has
// an id and a title, no id appears twice, and no node is reachable through
// more than one path. Encoders assume validated input; this check belongs
// at load and import boundaries.
//
// Fails fast on the first structural problem rather than walking forever.
func Validate(s *Snapshot) error {
	seen := make(map[*Node]bool)
	ids := make(map[string]bool)
	var missing []string

	var check func(node *Node) error
	check = func(node *Node) error {
		if seen[node] {
			return fmt.Errorf("%w: reached %q twice", ErrCycle, node.ID)
		}
		seen[node] = true

		if node.ID == "" {
			missing = append(missing, "id")
		} else {
			if ids[node.ID] {
				return fmt.Errorf("%w: %q", ErrDuplicateID, node.ID)
			}
			ids[node.ID] = true
		}
		if node.Title == "" {
			missing = append(missing, "title ("+node.ID+")")
		}

		for _, child := range node.Children {
			if err := check(child); err != nil {
				return err
			}
		}
		return nil
	}

	for _, root := range s.Roots {
		if err := check(root); err != nil {
			return err
		}
	}

	if len(missing) > 0 {
		return &ValidationError{
			Fields:  missing,
			Message: "missing required fields",
		}
	}
	return nil
}
