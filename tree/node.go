package tree

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"
)

/*
We manage a tree of mutable nodes. Each node carries a payload of type parameter T.
Children are kept in an intrusive, doubly-linked list. A parent does not store its
last child. Instead, the previous-sibling link of the first child points to the
last child, while the next-sibling link of the last child is nil:

     parent
       |
       v
     first  <-->  second  <-->  last --> nil
       ^                          |
       +------ prevSibling -------+

This gives O(1) access to the last child, at the price of every splice having to
care for the "am I the first child" case.

Trees are not safe for concurrent mutation. Clients serialize access per tree.
*/

// Node is the base type our tree is built of.
type Node[T comparable] struct {
	Payload     T        // nodes may carry a payload of arbitrary type
	parent      *Node[T] // parent node of this node
	firstChild  *Node[T] // first child; its prevSibling is the last child
	prevSibling *Node[T] // previous sibling, or last sibling if this is the first child
	nextSibling *Node[T] // next sibling, nil for the last child
}

// NewNode creates a new tree node with a given payload.
func NewNode[T comparable](payload T) *Node[T] {
	return &Node[T]{Payload: payload}
}

func (node *Node[T]) String() string {
	return fmt.Sprintf("(Node #ch=%d %v)", node.ChildCount(), node.Payload)
}

// Parent returns the parent node or nil (for the root of the tree).
func (node *Node[T]) Parent() *Node[T] {
	return node.parent
}

// FirstChild returns the first child of node, or nil.
func (node *Node[T]) FirstChild() *Node[T] {
	return node.firstChild
}

// LastChild returns the last child of node, or nil. This is an O(1) operation.
func (node *Node[T]) LastChild() *Node[T] {
	if node.firstChild == nil {
		return nil
	}
	return node.firstChild.prevSibling
}

// NextSibling returns the next sibling of node, or nil.
func (node *Node[T]) NextSibling() *Node[T] {
	return node.nextSibling
}

// PreviousSibling returns the previous sibling of node. For the first child of
// a parent, PreviousSibling returns nil, hiding the wrap-around link to the
// last child.
func (node *Node[T]) PreviousSibling() *Node[T] {
	if node.parent == nil || node.parent.firstChild == node {
		return nil
	}
	return node.prevSibling
}

// HasChildren is true if node has at least one child.
func (node *Node[T]) HasChildren() bool {
	return node.firstChild != nil
}

// ChildCount returns the number of children-nodes for a node.
// This is an O(n) operation.
func (node *Node[T]) ChildCount() int {
	cnt := 0
	for ch := node.firstChild; ch != nil; ch = ch.nextSibling {
		cnt++
	}
	return cnt
}

// Child returns the n-th child of a node, if it exists.
func (node *Node[T]) Child(n int) (*Node[T], bool) {
	if n < 0 {
		return nil, false
	}
	ch := node.firstChild
	for ; ch != nil && n > 0; n-- {
		ch = ch.nextSibling
	}
	return ch, ch != nil
}

// IndexOfChild returns the index of a child within the list of children
// of its parent. If ch is not a child of node, -1 is returned.
func (node *Node[T]) IndexOfChild(ch *Node[T]) int {
	if ch == nil || ch.parent != node {
		return -1
	}
	i := 0
	for c := node.firstChild; c != nil; c = c.nextSibling {
		if c == ch {
			return i
		}
		i++
	}
	return -1
}

// IsAncestorOf is true if node is a proper ancestor of other.
func (node *Node[T]) IsAncestorOf(other *Node[T]) bool {
	if other == nil {
		return false
	}
	for p := other.parent; p != nil; p = p.parent {
		if p == node {
			return true
		}
	}
	return false
}

// Root returns the topmost ancestor of node, or node itself.
func (node *Node[T]) Root() *Node[T] {
	r := node
	for r.parent != nil {
		r = r.parent
	}
	return r
}

// Ancestors returns the chain of ancestors of node, root first, including
// node itself as the last entry.
func (node *Node[T]) Ancestors() []*Node[T] {
	depth := 0
	for n := node; n != nil; n = n.parent {
		depth++
	}
	chain := make([]*Node[T], depth)
	for n := node; n != nil; n = n.parent {
		depth--
		chain[depth] = n
	}
	return chain
}

// --- Raw link operations ---------------------------------------------------

// AppendChild links ch as the new last child of node.
// ch must not be linked into a tree. AppendChild does not check for cycles;
// callers have to make sure that ch is not an ancestor of node.
// It returns the parent node to allow for chaining.
func (node *Node[T]) AppendChild(ch *Node[T]) *Node[T] {
	assertThat(ch != nil, "cannot append nil child")
	assertThat(ch.parent == nil && ch.prevSibling == nil && ch.nextSibling == nil,
		"cannot append linked node %v", ch)
	if node.firstChild == nil {
		node.firstChild = ch
		ch.prevSibling = ch // single child: tail link points to itself
	} else {
		last := node.firstChild.prevSibling
		last.nextSibling = ch
		ch.prevSibling = last
		node.firstChild.prevSibling = ch
	}
	ch.parent = node
	return node
}

// InsertBefore links ch into the children of ref's parent, directly ahead of ref.
// ref has to be linked to a parent, ch must not be linked into a tree.
func (ref *Node[T]) InsertBefore(ch *Node[T]) {
	assertThat(ch != nil, "cannot insert nil node")
	assertThat(ref.parent != nil && ref.prevSibling != nil, "reference node %v is not linked", ref)
	assertThat(ch.parent == nil && ch.prevSibling == nil && ch.nextSibling == nil,
		"cannot insert linked node %v", ch)
	parent := ref.parent
	if parent.firstChild == ref {
		parent.firstChild = ch
	} else {
		ref.prevSibling.nextSibling = ch
	}
	ch.prevSibling = ref.prevSibling // for a new first child this is the tail
	ch.nextSibling = ref
	ref.prevSibling = ch
	ch.parent = parent
}

// Isolate removes a node from its parent, restoring the sibling links of its
// former siblings. Isolate returns the isolated node, which is the root of
// its own tree afterwards.
func (node *Node[T]) Isolate() *Node[T] {
	if node == nil || node.parent == nil {
		return node
	}
	parent := node.parent
	if parent.firstChild == node { // we are the first child
		parent.firstChild = node.nextSibling
		if node.nextSibling != nil {
			node.nextSibling.prevSibling = node.prevSibling // hand over the tail link
		}
	} else {
		node.prevSibling.nextSibling = node.nextSibling
		if node.nextSibling != nil {
			node.nextSibling.prevSibling = node.prevSibling
		} else { // we are the last child
			parent.firstChild.prevSibling = node.prevSibling
		}
	}
	node.parent = nil
	node.prevSibling = nil
	node.nextSibling = nil
	return node
}

// MoveChildrenTo moves every child of node to the end of dest's child list,
// preserving their order. If dest is a child of node, it is skipped.
func (node *Node[T]) MoveChildrenTo(dest *Node[T]) {
	ch := node.firstChild
	for ch != nil {
		next := ch.nextSibling
		if ch != dest {
			ch.Isolate()
			dest.AppendChild(ch)
		}
		ch = next
	}
}

// Verify checks the link structure of the subtree rooted at node, including
// the tail-link of every child list. It returns an error describing the first
// inconsistency found, or nil.
func (node *Node[T]) Verify() error {
	if node.firstChild == nil {
		return nil
	}
	var prev *Node[T]
	for ch := node.firstChild; ch != nil; ch = ch.nextSibling {
		if ch.parent != node {
			return fmt.Errorf("child %v has parent %v, expected %v", ch, ch.parent, node)
		}
		if prev != nil && ch.prevSibling != prev {
			return fmt.Errorf("child %v has previous sibling %v, expected %v", ch, ch.prevSibling, prev)
		}
		prev = ch
	}
	if node.firstChild.prevSibling != prev {
		return fmt.Errorf("first child of %v links to %v as last child, expected %v",
			node, node.firstChild.prevSibling, prev)
	}
	for ch := node.firstChild; ch != nil; ch = ch.nextSibling {
		if err := ch.Verify(); err != nil {
			return err
		}
	}
	return nil
}

// WithFormerParent temporarily sets the parent link of an isolated node to
// its former parent while f runs. The node is not re-linked into the children
// of parent, i.e. it is not reachable from parent. This is intended for
// notifications about removals, where receivers want to inspect the former
// context of a node.
func (node *Node[T]) WithFormerParent(parent *Node[T], f func()) {
	assertThat(node.parent == nil, "node %v is not isolated", node)
	node.parent = parent
	defer func() { node.parent = nil }()
	f()
}
