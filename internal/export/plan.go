package export

import (
	"fmt"
	"strings"

	"github.com/hollyoak/canopy/internal/mindmap"
)

// EncodePlanDocument renders a planning document for downstream
// consumption: the scoped node's title and description frame the
// problem, and its descendants form a structured breakdown.
//
// If scopeNodeID resolves to a node in the snapshot, only that node and
// its descendants are covered; ancestors and siblings are excluded. An
// empty or unresolvable id is not an error and falls back to the whole
// snapshot, with the project itself as the framing.
func EncodePlanDocument(snap *mindmap.Snapshot, scopeNodeID string) string {
	title := snap.Project.Name
	description := ""
	sections := snap.Roots

	if scope := mindmap.Find(snap, scopeNodeID); scope != nil {
		title = scope.Title
		description = scope.Description
		sections = scope.Children
	}

	var builder strings.Builder
	fmt.Fprintf(&builder, "# Plan: %s\n", title)
	writeProblem(&builder, description)
	writeBreakdown(&builder, sections)
	return builder.String()
}

// writeProblem writes the problem framing section when a description exists.
// Without one, the plan title alone frames the problem.
func writeProblem(builder *strings.Builder, description string) {
	if description == "" {
		return
	}
	builder.WriteString("\n## Problem\n\n")
	builder.WriteString(description)
	builder.WriteString("\n")
}

// writeBreakdown writes one subsection per direct child of the scope,
// with deeper descendants as nested list items beneath it.
func writeBreakdown(builder *strings.Builder, sections []*mindmap.Node) {
	if len(sections) == 0 {
		return
	}

	builder.WriteString("\n## Breakdown\n")
	for _, section := range sections {
		fmt.Fprintf(builder, "\n### %s\n", section.Title)
		if section.Description != "" {
			builder.WriteString("\n")
			builder.WriteString(section.Description)
			builder.WriteString("\n")
		}
		if len(section.Children) > 0 {
			builder.WriteString("\n")
			writeOutline(builder, section.Children, 0)
		}
	}
}
