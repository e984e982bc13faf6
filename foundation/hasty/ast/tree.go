// File: tree.go
// Title: Arena Tree
// Description: Tree owns every node of one parsed source. Nodes are
//              addressed by Handle; node metadata lives in side tables
//              indexed by the same handle.
// Author: msto63
// Version: v0.1.1
// Created: 2025-02-12
// Modified: 2025-03-14
//
// Change History:
// - 2025-02-12 v0.1.0: Initial implementation
// - 2025-03-14 v0.1.1: Metadata moved from slots to a meta.Store

package ast

import (
	"fmt"

	"github.com/msto63/hasty/foundation/hasty/meta"
)

type slot struct {
	node Node
}

// Tree is an arena of nodes plus the ordered list of top-level nodes.
// A Tree is not safe for concurrent mutation; passes run one after another.
// The zero Tree is not usable; call NewTree.
type Tree struct {
	slots []slot
	roots []Handle
	meta  *meta.Store
}

// NewTree creates an empty tree
func NewTree() *Tree {
	return &Tree{meta: meta.NewStore()}
}

// Add stores n and returns its handle. The node has empty metadata.
func (t *Tree) Add(n Node) Handle {
	if n == nil {
		panic("ast: Add(nil)")
	}
	t.slots = append(t.slots, slot{node: n})
	return Handle(len(t.slots) - 1)
}

// AppendRoot appends h to the top-level node sequence
func (t *Tree) AppendRoot(h Handle) {
	t.mustValid(h)
	t.roots = append(t.roots, h)
}

// Roots returns the top-level nodes in source order
func (t *Tree) Roots() []Handle {
	roots := make([]Handle, len(t.roots))
	copy(roots, t.roots)
	return roots
}

// Len returns the number of nodes in the arena
func (t *Tree) Len() int {
	return len(t.slots)
}

// Node returns the payload stored at h. It panics if h is not a handle of t.
func (t *Tree) Node(h Handle) Node {
	t.mustValid(h)
	return t.slots[h].node
}

// Set replaces the payload at h and keeps its metadata
func (t *Tree) Set(h Handle, n Node) {
	t.mustValid(h)
	if n == nil {
		panic("ast: Set(nil)")
	}
	t.slots[h].node = n
}

// Meta returns the metadata container of h for reading and writing
func (t *Tree) Meta(h Handle) meta.Container {
	t.mustValid(h)
	return t.meta.Node(int32(h))
}

// Contains reports whether h addresses a node of t
func (t *Tree) Contains(h Handle) bool {
	return h >= 0 && int(h) < len(t.slots)
}

func (t *Tree) mustValid(h Handle) {
	if !t.Contains(h) {
		panic(fmt.Sprintf("ast: handle %d out of range [0,%d)", h, len(t.slots)))
	}
}

// Validate checks the tree invariants: every child handle is in range,
// no node has more than one parent, roots have no parent and every node is
// reachable from a root.
func (t *Tree) Validate() error {
	parents := make([]int, len(t.slots))

	for i, s := range t.slots {
		for _, child := range s.node.Children() {
			if !t.Contains(child) {
				return fmt.Errorf("node %d (%s): child handle %d out of range", i, s.node.Kind(), child)
			}
			if child == Handle(i) {
				return fmt.Errorf("node %d (%s) is its own child", i, s.node.Kind())
			}
			parents[child]++
			if parents[child] > 1 {
				return fmt.Errorf("node %d (%s) has more than one parent", child, t.slots[child].node.Kind())
			}
		}
	}

	seenRoot := make(map[Handle]bool, len(t.roots))
	for _, root := range t.roots {
		if parents[root] != 0 {
			return fmt.Errorf("root %d (%s) is also a child", root, t.slots[root].node.Kind())
		}
		if seenRoot[root] {
			return fmt.Errorf("root %d listed twice", root)
		}
		seenRoot[root] = true
	}

	reached := 0
	for _, root := range t.roots {
		Inspect(t, root, func(Handle, Node) bool {
			reached++
			return true
		})
	}
	if reached != len(t.slots) {
		return fmt.Errorf("%d of %d nodes are not reachable from a root", len(t.slots)-reached, len(t.slots))
	}

	return nil
}
