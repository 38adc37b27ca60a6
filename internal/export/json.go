package export

import (
	"encoding/json"
	"fmt"

	"github.com/hollyoak/canopy/internal/mindmap"
)

// EncodeJSON serializes the snapshot as indented JSON with a trailing
// newline. Every project and node field is preserved, so decoding the
// output with mindmap.FromJSON and re-encoding yields identical bytes.
func EncodeJSON(snap *mindmap.Snapshot) (string, error) {
	// Normalize nil roots so an empty mind map still exports an empty
	// roots collection rather than null.
	doc := *snap
	if doc.Roots == nil {
		doc.Roots = []*mindmap.Node{}
	}

	data, err := json.MarshalIndent(&doc, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshaling snapshot: %w", err)
	}
	return string(data) + "\n", nil
}
