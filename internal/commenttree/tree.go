// Package commenttree reconstructs the reply tree from the flat comment list
// delivered by the API and decides when a polled candidate list warrants a
// rebuild of displayed state.
package commenttree

import "github.com/sechive-dev/sechive-web/internal/domain"

// Node is a comment plus its ordered replies. Children order follows the
// iteration order of the input list, not any timestamp.
type Node struct {
	domain.Comment
	Children []*Node
}

// Build converts a flat comment list into a forest of reply trees.
//
// A comment whose parent_id is absent from the batch (parent deleted or
// paginated out) is demoted to a root, never dropped. The input is not
// mutated; ids are assumed unique within one batch.
func Build(flat []domain.Comment) []*Node {
	nodes := make(map[domain.CommentId]*Node, len(flat))
	for _, c := range flat {
		nodes[c.Id] = &Node{Comment: c}
	}

	var roots []*Node
	for _, c := range flat {
		node := nodes[c.Id]
		if c.ParentId != nil && *c.ParentId != c.Id {
			if parent, ok := nodes[*c.ParentId]; ok {
				parent.Children = append(parent.Children, node)
				continue
			}
		}
		// No parent, unresolvable parent, or self-reference: top level.
		roots = append(roots, node)
	}
	return roots
}

// Flatten walks the forest pre-order (parent before children) back into a
// flat list. Build followed by Flatten yields a permutation of the input.
func Flatten(roots []*Node) []domain.Comment {
	var flat []domain.Comment
	var walk func(n *Node)
	walk = func(n *Node) {
		flat = append(flat, n.Comment)
		for _, child := range n.Children {
			walk(child)
		}
	}
	for _, root := range roots {
		walk(root)
	}
	return flat
}

// Count returns the total number of nodes in the forest.
func Count(roots []*Node) int {
	total := 0
	for _, root := range roots {
		total++
		total += Count(root.Children)
	}
	return total
}
