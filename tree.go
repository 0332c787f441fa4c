package showcase

import (
	"context"
	"slices"
)

// Node is a node of an ordered tree. Each node owns its children; the
// parent link is maintained by AddChild.
type Node[T any] struct {
	value    T
	parent   *Node[T]
	children []*Node[T]
}

// NewNode returns a root node holding value.
func NewNode[T any](value T) *Node[T] {
	return &Node[T]{value: value}
}

// Value returns the value held by the node.
func (n *Node[T]) Value() T {
	return n.value
}

// Parent returns the parent node, or nil for a root node.
func (n *Node[T]) Parent() *Node[T] {
	return n.parent
}

// Children returns the child nodes in insertion order.
func (n *Node[T]) Children() []*Node[T] {
	return slices.Clone(n.children)
}

// AddChild appends a new child node holding value and returns it.
func (n *Node[T]) AddChild(value T) *Node[T] {
	child := &Node[T]{value: value, parent: n}
	n.children = append(n.children, child)
	return child
}

// IsRoot reports whether the node has no parent.
func (n *Node[T]) IsRoot() bool {
	return n.parent == nil
}

// IsLeaf reports whether the node has no children.
func (n *Node[T]) IsLeaf() bool {
	return len(n.children) == 0
}

// Level returns the depth of the node; a root node is at level 0.
func (n *Node[T]) Level() int {
	level := 0
	for p := n.parent; p != nil; p = p.parent {
		level++
	}
	return level
}

// Index returns the position of the node among its siblings, or -1 for a
// root node.
func (n *Node[T]) Index() int {
	if n.parent == nil {
		return -1
	}
	return slices.Index(n.parent.children, n)
}

// Walk visits the node and its descendants in pre-order. Walking stops as
// soon as fn returns false; Walk then returns false as well.
func (n *Node[T]) Walk(fn func(*Node[T]) bool) bool {
	if !fn(n) {
		return false
	}
	for _, child := range n.children {
		if !child.Walk(fn) {
			return false
		}
	}
	return true
}

// Find returns the first node in pre-order whose value matches, or nil.
func (n *Node[T]) Find(match func(T) bool) *Node[T] {
	var found *Node[T]
	n.Walk(func(node *Node[T]) bool {
		if match(node.value) {
			found = node
			return false
		}
		return true
	})
	return found
}

// Menu is the page tree of the showcase site. The root node usually holds
// no page.
type Menu = Node[*Page]

// MenuBuilder builds the menu of the showcase site.
type MenuBuilder interface {
	BuildMenu(ctx context.Context) (*Menu, error)
}

// FindPage returns the page of menu with the given view ID, or nil.
func FindPage(menu *Menu, viewID string) *Page {
	node := menu.Find(func(p *Page) bool {
		return p != nil && p.ViewID() == viewID
	})
	if node == nil {
		return nil
	}
	return node.Value()
}

// Pages returns the pages of menu that have a template, in menu order.
func Pages(menu *Menu) []*Page {
	var pages []*Page
	menu.Walk(func(node *Menu) bool {
		if p := node.Value(); p != nil && p.Path() != "" {
			pages = append(pages, p)
		}
		return true
	})
	return pages
}
