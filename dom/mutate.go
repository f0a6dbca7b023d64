package dom

import (
	"fmt"
)

// Tree mutations check all their preconditions before touching any link.
// If an operation returns an error, the tree is unchanged.

// AppendChild appends child as the last child of n and returns child.
//
// If child is a document fragment, its children are moved to n one by one
// and the (then empty) fragment is returned. If child already has a parent,
// it is removed from there first, with notifications for both the removal
// and the insertion.
//
// Errors:
// ErrHierarchy if child is n or one of its ancestors, or if n cannot hold
// a child of child's kind;
// ErrWrongDocument if child belongs to a document other than n's.
func (n *Node) AppendChild(child *Node) (*Node, error) {
	if err := n.checkInsert(child, nil); err != nil {
		return nil, err
	}
	if child.kind == FragmentKind {
		for ch := child.FirstChild(); ch != nil; ch = child.FirstChild() {
			n.appendChecked(ch)
		}
		return child, nil
	}
	n.appendChecked(child)
	return child, nil
}

// InsertBefore inserts node as the previous sibling of n, the reference node.
// Inserting n before itself is a no-op. Document fragments are spliced in
// the same way as for AppendChild.
//
// Errors:
// ErrNotFound if n has no parent;
// ErrHierarchy and ErrWrongDocument as for AppendChild.
func (n *Node) InsertBefore(node *Node) error {
	parent := n.Parent()
	if parent == nil {
		tracer().Errorf("cannot insert %v before %v, which has no parent", node, n)
		return fmt.Errorf("%w: reference node %v has no parent", ErrNotFound, n)
	}
	if node == n {
		return nil
	}
	if err := parent.checkInsert(node, nil); err != nil {
		return err
	}
	if node.kind == FragmentKind {
		for ch := node.FirstChild(); ch != nil; ch = node.FirstChild() {
			n.insertChecked(ch)
		}
		return nil
	}
	n.insertChecked(node)
	return nil
}

// InsertChildBefore inserts newChild as a child of n, ahead of ref. If ref is
// nil, newChild is appended. It returns newChild.
//
// Errors:
// ErrNotFound if ref is not a child of n;
// ErrHierarchy and ErrWrongDocument as for AppendChild.
func (n *Node) InsertChildBefore(newChild, ref *Node) (*Node, error) {
	if ref == nil {
		return n.AppendChild(newChild)
	}
	if ref.Parent() != n {
		return nil, fmt.Errorf("%w: %v is not a child of %v", ErrNotFound, ref, n)
	}
	if err := ref.InsertBefore(newChild); err != nil {
		return nil, err
	}
	return newChild, nil
}

// Remove unlinks n from its parent and returns it. The subtree rooted at n
// is detached from the document and belongs to the caller thereafter.
// Removing a node without a parent is a no-op.
func (n *Node) Remove() *Node {
	exParent := n.Parent()
	if exParent == nil {
		return n
	}
	wasAttached := n.attached
	n.links.Isolate()
	n.detach()
	tracer().Debugf("removed %v from %v", n, exParent)
	if wasAttached {
		n.removedFromPage(exParent)
	}
	exParent.fireNodeDeleted(n)
	return n
}

// Detach is an alias for Remove.
func (n *Node) Detach() *Node {
	return n.Remove()
}

// RemoveChild removes child from n and returns it.
//
// Errors:
// ErrNotFound if child is not a child of n.
func (n *Node) RemoveChild(child *Node) (*Node, error) {
	if child == nil || child.Parent() != n {
		return nil, fmt.Errorf("%w: %v is not a child of %v", ErrNotFound, child, n)
	}
	return child.Remove(), nil
}

// Replace replaces n with node, at the position n occupied. Replacing n
// with itself is a no-op. Document fragments are spliced.
//
// Errors:
// ErrNotFound if n has no parent;
// ErrHierarchy and ErrWrongDocument as for AppendChild.
func (n *Node) Replace(node *Node) error {
	if node == n {
		return nil
	}
	parent := n.Parent()
	if parent == nil {
		return fmt.Errorf("%w: cannot replace %v, which has no parent", ErrNotFound, n)
	}
	if err := parent.checkInsert(node, n); err != nil {
		return err
	}
	next := n.NextSibling()
	if next == node {
		next = node.NextSibling()
	}
	n.Remove()
	if next == nil {
		_, err := parent.AppendChild(node)
		return err
	}
	return next.InsertBefore(node)
}

// ReplaceChild replaces oldChild, a child of n, with newChild and returns
// oldChild.
//
// Errors:
// ErrNotFound if oldChild is not a child of n;
// ErrHierarchy and ErrWrongDocument as for AppendChild.
func (n *Node) ReplaceChild(newChild, oldChild *Node) (*Node, error) {
	if oldChild == nil || oldChild.Parent() != n {
		return nil, fmt.Errorf("%w: %v is not a child of %v", ErrNotFound, oldChild, n)
	}
	if err := oldChild.Replace(newChild); err != nil {
		return nil, err
	}
	return oldChild, nil
}

// QuietlyMoveChildrenTo moves all children of n to the end of the children
// of dest, without notifying any listeners or calling lifecycle hooks.
// The attachment state of the moved subtrees is updated.
//
// This is intended for restructuring the tree internally, e.g. for error
// recovery of a parser. It is not for general use.
//
// Errors:
// ErrWrongDocument if n and dest belong to different documents;
// ErrHierarchy if a child of n is an ancestor of dest or cannot be held by dest.
func (n *Node) QuietlyMoveChildrenTo(dest *Node) error {
	if n.owner != dest.owner {
		return fmt.Errorf("%w: cannot quietly move nodes between documents", ErrWrongDocument)
	}
	for ch := n.FirstChild(); ch != nil; ch = ch.NextSibling() {
		if ch == dest {
			continue
		}
		if ch.links.IsAncestorOf(&dest.links) || !dest.kind.Accepts(ch.kind) {
			return fmt.Errorf("%w: cannot move %v to %v", ErrHierarchy, ch, dest)
		}
	}
	var moved []*Node
	for ch := n.FirstChild(); ch != nil; ch = ch.NextSibling() {
		if ch != dest {
			moved = append(moved, ch)
		}
	}
	n.links.MoveChildrenTo(&dest.links)
	for _, ch := range moved {
		if ch.attached && !dest.attached {
			ch.detach()
		} else if !ch.attached && dest.attached {
			ch.markAttached()
		}
	}
	tracer().Debugf("quietly moved %d children of %v to %v", len(moved), n, dest)
	return nil
}

// --- Internals -------------------------------------------------------------

// checkInsert checks if node may be inserted as a child of n. replaced is a
// child of n which is going to be replaced by node, or nil.
func (n *Node) checkInsert(node *Node, replaced *Node) error {
	assertThat(node != nil, "cannot insert nil node into %v", n)
	if node == n || node.links.IsAncestorOf(&n.links) {
		tracer().Errorf("cannot insert %v into its own subtree", node)
		return fmt.Errorf("%w: %v is %v or one of its ancestors", ErrHierarchy, node, n)
	}
	if foreign := foreignNode(node, n.owner); foreign != nil {
		tracer().Errorf("cannot insert %v owned by another document", foreign)
		if n.owner == nil {
			return fmt.Errorf("%w: %v belongs to a document, %v does not", ErrWrongDocument, foreign, n)
		}
		return fmt.Errorf("%w: %v belongs to another document", ErrWrongDocument, foreign)
	}
	elements := 0
	if node.kind == FragmentKind {
		for ch := node.FirstChild(); ch != nil; ch = ch.NextSibling() {
			if !n.kind.Accepts(ch.kind) {
				return fmt.Errorf("%w: %s cannot hold %v", ErrHierarchy, n.kind, ch)
			}
			if ch.kind == ElementKind {
				elements++
			}
		}
	} else {
		if !n.kind.Accepts(node.kind) {
			return fmt.Errorf("%w: %s cannot hold %v", ErrHierarchy, n.kind, node)
		}
		if node.kind == ElementKind {
			elements++
		}
	}
	if n.kind == DocumentKind {
		return n.checkDocumentChildren(node, replaced, elements)
	}
	return nil
}

// A document holds at most one element and one document type.
func (n *Node) checkDocumentChildren(node *Node, replaced *Node, elements int) error {
	for ch := n.FirstChild(); ch != nil; ch = ch.NextSibling() {
		if ch == node || ch == replaced {
			continue
		}
		if ch.kind == ElementKind {
			elements++
		}
		if ch.kind == DocumentTypeKind && node.kind == DocumentTypeKind {
			return fmt.Errorf("%w: document already has a document type", ErrHierarchy)
		}
	}
	if elements > 1 {
		return fmt.Errorf("%w: document may hold only one element", ErrHierarchy)
	}
	return nil
}

// appendChecked appends a node for which all preconditions have been checked.
func (n *Node) appendChecked(child *Node) {
	child.Remove()
	adopt(child, n.owner)
	n.links.AppendChild(&child.links)
	n.attach(child)
	n.fireNodeAdded(child)
}

// insertChecked inserts a node ahead of n, with all preconditions checked.
func (n *Node) insertChecked(node *Node) {
	node.Remove()
	parent := n.Parent()
	adopt(node, parent.owner)
	n.links.InsertBefore(&node.links)
	parent.attach(node)
	parent.fireNodeAdded(node)
}

// foreignNode returns the first node in the subtree of node which is owned by
// a document other than owner. Nodes without an owner are never foreign.
func foreignNode(node *Node, owner *Document) *Node {
	if node.owner != nil && node.owner != owner {
		return node
	}
	it := node.links.Descendants(nil)
	for it.Next() {
		if d := it.Node().Payload; d.owner != nil && d.owner != owner {
			return d
		}
	}
	return nil
}

// adopt sets the owner document for a subtree without an owner.
func adopt(n *Node, owner *Document) {
	if owner == nil {
		return
	}
	n.owner = owner
	it := n.links.Descendants(nil)
	for it.Next() {
		if d := it.Node().Payload; d.owner == nil {
			d.owner = owner
		}
	}
}

// markAttached sets the attachment flag for a subtree without calling any
// hooks.
func (n *Node) markAttached() {
	n.attached = true
	n.owner.index(n)
	it := n.links.Descendants(nil)
	for it.Next() {
		d := it.Node().Payload
		d.attached = true
		if d.kind == ElementKind {
			n.owner.index(d)
		}
	}
}
