package export

import (
	"fmt"
	"strings"

	"github.com/hollyoak/canopy/internal/mindmap"
)

// EncodeMarkdown renders the full tree as a nested markdown outline.
// The project name becomes the document title and every node reachable
// from the roots appears as a list item, depth-first in original child
// order, indented two spaces per depth level.
func EncodeMarkdown(snap *mindmap.Snapshot) string {
	var builder strings.Builder

	fmt.Fprintf(&builder, "# %s\n", snap.Project.Name)
	if len(snap.Roots) > 0 {
		builder.WriteString("\n")
		writeOutline(&builder, snap.Roots, 0)
	}

	return builder.String()
}

// writeOutline writes nodes as nested list items starting at the given
// depth. Descriptions render as indented continuation lines under their
// node so they stay attached to the list item.
func writeOutline(builder *strings.Builder, nodes []*mindmap.Node, depth int) {
	mindmap.Walk(nodes, func(node *mindmap.Node, d int) {
		indent := strings.Repeat("  ", depth+d)
		fmt.Fprintf(builder, "%s- %s\n", indent, node.Title)
		writeDescription(builder, node.Description, indent+"  ")
	})
}

// writeDescription writes each description line under the item indent.
func writeDescription(builder *strings.Builder, description, indent string) {
	if description == "" {
		return
	}
	for _, line := range strings.Split(description, "\n") {
		fmt.Fprintf(builder, "%s%s\n", indent, line)
	}
}
