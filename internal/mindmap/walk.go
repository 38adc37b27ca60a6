package mindmap

// Walk visits every node reachable from the given roots in depth-first
// pre-order, preserving child order. The visit function receives each
// node and its depth (0 for roots).
func Walk(roots []*Node, visit func(node *Node, depth int)) {
	var walk func(node *Node, depth int)
	walk = func(node *Node, depth int) {
		visit(node, depth)
		for _, child := range node.Children {
			walk(child, depth+1)
		}
	}
	for _, root := range roots {
		walk(root, 0)
	}
}

// Find returns the node with the given id, searching all roots in
// depth-first pre-order. Returns nil if no node matches.
func Find(s *Snapshot, id string) *Node {
	if id == "" {
		return nil
	}
	var found *Node
	Walk(s.Roots, func(node *Node, _ int) {
		if found == nil && node.ID == id {
			found = node
		}
	})
	return found
}

// Scoped returns a snapshot restricted to the subtree rooted at the
// given id: the matched node becomes the sole root. An empty or
// unresolvable id returns the snapshot unchanged.
func Scoped(s *Snapshot, id string) *Snapshot {
	node := Find(s, id)
	if node == nil {
		return s
	}
	return &Snapshot{
		Project: s.Project,
		Roots:   []*Node{node},
	}
}

// Count returns the number of nodes reachable from the roots.
func Count(roots []*Node) int {
	total := 0
	Walk(roots, func(_ *Node, _ int) {
		total++
	})
	return total
}

// MaxDepth returns the depth of the deepest node, counting roots as
// depth 1. An empty tree has depth 0.
func MaxDepth(roots []*Node) int {
	deepest := 0
	Walk(roots, func(_ *Node, depth int) {
		if depth+1 > deepest {
			deepest = depth + 1
		}
	})
	return deepest
}
