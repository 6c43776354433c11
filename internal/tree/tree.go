// Package tree turns a decoded document into the display tree walked by the
// renderers.
package tree

import (
	"fmt"

	"github.com/oakwood-commons/fje/pkg/loader"
)

// RootName labels the synthetic node that wraps a whole document.
const RootName = "root"

// Node is one visual row of a rendered document. A node is a leaf exactly
// when it has no children.
type Node struct {
	Name  string
	Depth int
	// IsRoot marks the synthetic document node.
	IsRoot bool
	// IsFirst marks the first child of the root, the first node built.
	IsFirst bool
	// IsLast marks the final child in its parent's child list.
	IsLast   bool
	Children []*Node
}

// IsLeaf reports whether n has no children.
func (n *Node) IsLeaf() bool { return len(n.Children) == 0 }

// Walk visits n and its descendants in pre-order. Returning false from fn
// skips the node's children.
func (n *Node) Walk(fn func(*Node) bool) {
	if !fn(n) {
		return
	}
	for _, c := range n.Children {
		c.Walk(fn)
	}
}

// Count returns the number of nodes in the subtree rooted at n.
func (n *Node) Count() int {
	total := 0
	n.Walk(func(*Node) bool {
		total++
		return true
	})
	return total
}

// Leaves returns the number of leaves below n, or 1 if n is itself a leaf.
func (n *Node) Leaves() int {
	total := 0
	n.Walk(func(c *Node) bool {
		if c.IsLeaf() {
			total++
		}
		return true
	})
	return total
}

// MaxDepth returns the greatest depth in the subtree rooted at n.
func (n *Node) MaxDepth() int {
	deepest := n.Depth
	n.Walk(func(c *Node) bool {
		if c.Depth > deepest {
			deepest = c.Depth
		}
		return true
	})
	return deepest
}

// IndexName is the label given to an array element that is itself a container.
func IndexName(i int) string {
	return fmt.Sprintf("[%d]", i)
}

// builder carries traversal state through the recursive build. It is passed
// by value and returned so each call sees the state its predecessor left.
type builder struct {
	seeded bool
}

// Build converts v into a display tree under a synthetic root named "root".
//
// Object members become nodes named by their key. Array elements that are
// scalars become leaves named by their text, while nested containers become
// nodes named by their index. A scalar under a key becomes that node's single
// leaf child. Empty containers produce childless nodes, so an empty document
// yields a root with no children.
func Build(v loader.Value) *Node {
	root := &Node{Name: RootName, IsRoot: true, IsLast: true}
	root.Children, _ = builder{}.children(v, 1)
	return root
}

func (b builder) node(name string, depth int) (*Node, builder) {
	n := &Node{Name: name, Depth: depth, IsFirst: !b.seeded}
	b.seeded = true
	return n, b
}

// children builds the child list for value v at the given depth.
func (b builder) children(v loader.Value, depth int) ([]*Node, builder) {
	var out []*Node
	switch v.Kind() {
	case loader.KindObject:
		out = make([]*Node, 0, v.Len())
		for _, m := range v.Members() {
			var n *Node
			n, b = b.container(m.Key, m.Value, depth)
			out = append(out, n)
		}
	case loader.KindArray:
		out = make([]*Node, 0, v.Len())
		for i, item := range v.Items() {
			var n *Node
			if item.IsContainer() {
				n, b = b.container(IndexName(i), item, depth)
			} else {
				n, b = b.node(item.Text(), depth)
			}
			out = append(out, n)
		}
	default:
		var n *Node
		n, b = b.node(v.Text(), depth)
		out = append(out, n)
	}
	if len(out) > 0 {
		out[len(out)-1].IsLast = true
	}
	return out, b
}

// container builds a named node whose children come from v.
func (b builder) container(name string, v loader.Value, depth int) (*Node, builder) {
	n, b := b.node(name, depth)
	n.Children, b = b.children(v, depth+1)
	return n, b
}
