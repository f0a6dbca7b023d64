package dom

import (
	"strings"

	"github.com/npillmayer/domcore/tree"
)

// Parent returns the parent node, or nil.
func (n *Node) Parent() *Node {
	return nodeOf(n.links.Parent())
}

// FirstChild returns the first child node, or nil.
func (n *Node) FirstChild() *Node {
	return nodeOf(n.links.FirstChild())
}

// LastChild returns the last child node, or nil.
func (n *Node) LastChild() *Node {
	return nodeOf(n.links.LastChild())
}

// NextSibling returns the node's next sibling or nil if last.
func (n *Node) NextSibling() *Node {
	return nodeOf(n.links.NextSibling())
}

// PreviousSibling returns the node's previous sibling or nil if first.
func (n *Node) PreviousSibling() *Node {
	return nodeOf(n.links.PreviousSibling())
}

// HasChildNodes checks for existence of sub-nodes.
func (n *Node) HasChildNodes() bool {
	return n.links.HasChildren()
}

// ChildCount returns the number of children of n.
func (n *Node) ChildCount() int {
	return n.links.ChildCount()
}

// ChildNodes returns a slice of all children of n. The slice is a snapshot,
// i.e. it does not reflect later changes of the tree.
func (n *Node) ChildNodes() []*Node {
	var children []*Node
	for ch := n.links.FirstChild(); ch != nil; ch = ch.NextSibling() {
		children = append(children, ch.Payload)
	}
	return children
}

// Ancestors returns the ancestors of n, starting with the root. n itself is
// not included.
func (n *Node) Ancestors() []*Node {
	chain := n.links.Ancestors()
	ancestors := make([]*Node, len(chain)-1)
	for i := range ancestors {
		ancestors[i] = chain[i].Payload
	}
	return ancestors
}

// RootNode returns the root of the tree n is part of. For attached nodes
// this is the document node.
func (n *Node) RootNode() *Node {
	return n.links.Root().Payload
}

// IsAncestorOf is true if n is a proper ancestor of other.
func (n *Node) IsAncestorOf(other *Node) bool {
	if other == nil {
		return false
	}
	return n.links.IsAncestorOf(&other.links)
}

// Contains is true if other is n or one of its descendants.
func (n *Node) Contains(other *Node) bool {
	return other == n || n.IsAncestorOf(other)
}

// --- Document order --------------------------------------------------------

// Position describes the position of a node relative to another node in
// document order.
type Position = tree.Position

// Positions of a node relative to another node, see tree.Position.
const (
	Same         = tree.Same
	Disconnected = tree.Disconnected
	Preceding    = tree.Preceding
	Following    = tree.Following
	Contains     = tree.Contains
	ContainedBy  = tree.ContainedBy
)

// ComparePosition returns the position of other relative to n in document
// order, e.g. Following if other comes after n.
func (n *Node) ComparePosition(other *Node) Position {
	if other == nil {
		return Disconnected
	}
	return tree.ComparePosition(&n.links, &other.links)
}

// --- Filters ---------------------------------------------------------------

// Filter is a predicate to select nodes during descendant iteration.
// A nil Filter accepts any node.
type Filter func(*Node) bool

// AnyNode is a filter accepting all nodes.
var AnyNode Filter

// Elements is a filter accepting element nodes.
var Elements Filter = func(n *Node) bool {
	return n.kind == ElementKind
}

// KindIs creates a filter accepting nodes of the given kinds.
func KindIs(kinds ...Kind) Filter {
	return func(n *Node) bool {
		for _, k := range kinds {
			if n.kind == k {
				return true
			}
		}
		return false
	}
}

// ElementsNamed creates a filter accepting elements with a given tag name,
// compared case-insensitively.
//
// Used as a descendant filter, it prunes the subtree of every other node:
// Query(body).Filter(ElementsNamed("li")) will not find items below a <ul>.
// To find named elements at any depth, use it as a predicate with
// Walker.Matching or Select instead.
func ElementsNamed(name string) Filter {
	return func(n *Node) bool {
		return n.kind == ElementKind && strings.EqualFold(n.name, name)
	}
}

func (f Filter) treeFilter() tree.Filter[*Node] {
	if f == nil {
		return nil
	}
	return func(n *Node) bool { return f(n) }
}

// --- Iterators -------------------------------------------------------------

func remove(t *tree.Node[*Node]) {
	t.Payload.Remove()
}

// ChildIterator iterates over the children of a node.
//
//     it := n.Children()
//     for it.Next() {
//         ch := it.Node()
//     }
//
// The current child may be removed with Remove. Other changes to the list
// of children during an iteration lead to unspecified results.
type ChildIterator struct {
	it *tree.ChildIterator[*Node]
}

// Children returns an iterator over the children of n.
func (n *Node) Children() *ChildIterator {
	return &ChildIterator{it: n.links.Children()}
}

// Next advances the iterator. It returns false if there are no more children.
func (it *ChildIterator) Next() bool {
	return it.it.Next()
}

// Node returns the current child.
func (it *ChildIterator) Node() *Node {
	return nodeOf(it.it.Node())
}

// Remove removes the current child from the tree, with notifications.
func (it *ChildIterator) Remove() {
	it.it.Remove(remove)
}

// Reset restarts the iteration.
func (it *ChildIterator) Reset() {
	it.it.Reset()
}

// DescendantIterator iterates over descendants of a node in document order.
// Nodes rejected by the iterator's filter are skipped, together with their
// subtrees.
//
// The current node may be removed with Remove. Other changes to the tree
// during an iteration lead to unspecified results.
type DescendantIterator struct {
	it *tree.DescendantIterator[*Node]
}

// Descendants returns an iterator over the descendants of n accepted by
// filter. n itself is not part of the iteration.
func (n *Node) Descendants(filter Filter) *DescendantIterator {
	return &DescendantIterator{it: n.links.Descendants(filter.treeFilter())}
}

// Next advances the iterator. It returns false if there are no more descendants.
func (it *DescendantIterator) Next() bool {
	return it.it.Next()
}

// Node returns the current descendant.
func (it *DescendantIterator) Node() *Node {
	return nodeOf(it.it.Node())
}

// SkipChildren lets the iteration continue after the subtree of the current node.
func (it *DescendantIterator) SkipChildren() {
	it.it.SkipChildren()
}

// Remove removes the current node from the tree, with notifications. Its
// descendants will not be visited.
func (it *DescendantIterator) Remove() {
	it.it.Remove(remove)
}

// Reset restarts the iteration.
func (it *DescendantIterator) Reset() {
	it.it.Reset()
}
