package tree

// Filter is a predicate on node payloads, used for typed descendant iteration.
// A nil Filter accepts every node.
type Filter[T comparable] func(payload T) bool

// Remover is a function to remove a node from its tree. Clients building on
// top of Node may pass their own removal function to an iterator, e.g. to
// fire notifications. A nil Remover will isolate the node.
type Remover[T comparable] func(*Node[T])

// --- Children --------------------------------------------------------------

// ChildIterator iterates over the direct children of a node. It is lazy,
// forward-only and restartable.
//
// The current node may be removed by calling Remove. Removing any other child
// of the parent during iteration leads to undefined iteration results.
type ChildIterator[T comparable] struct {
	parent  *Node[T]
	current *Node[T]
	next    *Node[T]
	started bool
	removed bool
}

// Children returns an iterator over the children of node.
func (node *Node[T]) Children() *ChildIterator[T] {
	return &ChildIterator[T]{parent: node}
}

// Next advances the iterator. It returns false if there are no more children.
func (it *ChildIterator[T]) Next() bool {
	switch {
	case !it.started:
		it.started = true
		it.current = it.parent.firstChild
	case it.removed:
		it.current = it.next
		it.removed = false
	case it.current != nil:
		it.current = it.current.nextSibling
	}
	return it.current != nil
}

// Node returns the current child.
func (it *ChildIterator[T]) Node() *Node[T] {
	return it.current
}

// Remove removes the current child, using remover if given. Iteration will
// continue with the child following the removed one.
func (it *ChildIterator[T]) Remove(remover Remover[T]) {
	if it.current == nil || it.removed {
		return
	}
	it.next = it.current.nextSibling
	it.removed = true
	removeWith(remover, it.current)
}

// Reset restarts the iteration.
func (it *ChildIterator[T]) Reset() {
	it.current, it.next = nil, nil
	it.started, it.removed = false, false
}

// --- Descendants -----------------------------------------------------------

// DescendantIterator iterates over the descendants of a node in pre-order,
// i.e. in document order. It is lazy, finite and restartable and does not
// need a stack: the successor of a node is computed from the links alone.
// The root of the iteration is not part of the sequence.
//
// Only nodes accepted by the iterator's filter are returned. A rejected node
// is skipped including its subtree.
type DescendantIterator[T comparable] struct {
	root    *Node[T]
	accept  Filter[T]
	current *Node[T]
	pending *Node[T] // successor, pre-computed before a removal
	started bool
	skipped bool
}

// Descendants returns an iterator over the descendants of node, filtered by
// accept. If accept is nil, all descendants are returned.
func (node *Node[T]) Descendants(accept Filter[T]) *DescendantIterator[T] {
	return &DescendantIterator[T]{root: node, accept: accept}
}

// Next advances the iterator. It returns false if there are no more descendants.
func (it *DescendantIterator[T]) Next() bool {
	switch {
	case !it.started:
		it.started = true
		it.current = it.firstAcceptedChild(it.root)
	case it.skipped:
		it.current = it.pending
		it.pending, it.skipped = nil, false
	case it.current != nil:
		it.current = it.successor(it.current, true)
	}
	return it.current != nil
}

// Node returns the current descendant.
func (it *DescendantIterator[T]) Node() *Node[T] {
	return it.current
}

// SkipChildren advances past the subtree of the current node. The next call
// to Next will continue with the successor of the current node in document
// order which is not a descendant of it.
func (it *DescendantIterator[T]) SkipChildren() {
	if it.current == nil || it.skipped {
		return
	}
	it.pending = it.successor(it.current, false)
	it.skipped = true
}

// Remove removes the current node, using remover if given. The subtree of the
// current node will not be visited; iteration continues with the successor of
// the removed subtree.
func (it *DescendantIterator[T]) Remove(remover Remover[T]) {
	if it.current == nil {
		return
	}
	it.SkipChildren()
	removeWith(remover, it.current)
}

// Reset restarts the iteration.
func (it *DescendantIterator[T]) Reset() {
	it.current, it.pending = nil, nil
	it.started, it.skipped = false, false
}

func (it *DescendantIterator[T]) accepts(n *Node[T]) bool {
	return it.accept == nil || it.accept(n.Payload)
}

// successor finds the next accepted node in pre-order:
// (1) the first accepted child, if descending is allowed,
// (2) the nearest accepted next sibling,
// (3) the nearest accepted next sibling of an ancestor below the root.
func (it *DescendantIterator[T]) successor(n *Node[T], descend bool) *Node[T] {
	if descend {
		if next := it.firstAcceptedChild(n); next != nil {
			return next
		}
	}
	if n == it.root {
		return nil
	}
	if next := it.nextAcceptedSibling(n); next != nil {
		return next
	}
	for p := n.parent; p != nil && p != it.root; p = p.parent {
		if next := it.nextAcceptedSibling(p); next != nil {
			return next
		}
	}
	return nil
}

func (it *DescendantIterator[T]) firstAcceptedChild(n *Node[T]) *Node[T] {
	ch := n.firstChild
	for ch != nil && !it.accepts(ch) {
		ch = ch.nextSibling
	}
	return ch
}

func (it *DescendantIterator[T]) nextAcceptedSibling(n *Node[T]) *Node[T] {
	sibling := n.nextSibling
	for sibling != nil && !it.accepts(sibling) {
		sibling = sibling.nextSibling
	}
	return sibling
}

func removeWith[T comparable](remover Remover[T], n *Node[T]) {
	if remover == nil {
		n.Isolate()
		return
	}
	remover(n)
}
