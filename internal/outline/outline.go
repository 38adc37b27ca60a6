// Package outline parses hand-written markdown outlines into mind-map
// snapshots. It is the inverse of the markdown encoder: the level-one
// heading becomes the project name, nested list items become nodes, and
// continuation lines under an item become its description.
package outline

import (
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"

	"github.com/hollyoak/canopy/internal/mindmap"
	"github.com/hollyoak/canopy/internal/output"
)

// Parse builds a snapshot from a markdown outline. Imported nodes get
// fresh ids; the source document does not carry any. The resulting
// snapshot is validated before being returned.
func Parse(source []byte) (*mindmap.Snapshot, error) {
	doc := goldmark.New().Parser().Parse(text.NewReader(source))

	snap := &mindmap.Snapshot{}
	titled := false

	for child := doc.FirstChild(); child != nil; child = child.NextSibling() {
		switch node := child.(type) {
		case *ast.Heading:
			if node.Level == 1 && !titled {
				snap.Project.Name = string(node.Text(source))
				titled = true
			}
		case *ast.List:
			snap.Roots = append(snap.Roots, parseList(node, source)...)
		}
	}

	if !titled {
		return nil, output.NewUserError("outline must start with a level-one heading naming the project")
	}
	if err := mindmap.Validate(snap); err != nil {
		return nil, err
	}
	return snap, nil
}

// parseList converts a markdown list into sibling nodes, preserving
// item order.
func parseList(list *ast.List, source []byte) []*mindmap.Node {
	var nodes []*mindmap.Node
	for item := list.FirstChild(); item != nil; item = item.NextSibling() {
		if converted := parseItem(item, source); converted != nil {
			nodes = append(nodes, converted)
		}
	}
	return nodes
}

// parseItem converts one list item: the first text line is the title,
// further lines are the description, and a nested list holds children.
func parseItem(item ast.Node, source []byte) *mindmap.Node {
	node := &mindmap.Node{ID: mindmap.NewNodeID()}
	var description []string

	for child := item.FirstChild(); child != nil; child = child.NextSibling() {
		switch block := child.(type) {
		case *ast.List:
			node.Children = append(node.Children, parseList(block, source)...)
		default:
			for _, line := range blockLines(child, source) {
				if node.Title == "" {
					node.Title = line
					continue
				}
				description = append(description, line)
			}
		}
	}

	node.Description = strings.Join(description, "\n")
	if node.Title == "" && node.Description == "" && len(node.Children) == 0 {
		return nil
	}
	return node
}

// blockLines extracts the trimmed source lines of a text-bearing block
// (paragraph or text block, depending on list tightness).
func blockLines(block ast.Node, source []byte) []string {
	if block.Type() != ast.TypeBlock {
		return nil
	}
	lines := block.Lines()
	result := make([]string, 0, lines.Len())
	for i := 0; i < lines.Len(); i++ {
		segment := lines.At(i)
		line := strings.TrimSpace(string(segment.Value(source)))
		if line != "" {
			result = append(result, line)
		}
	}
	return result
}
