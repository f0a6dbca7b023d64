package dom

import (
	"github.com/npillmayer/domcore/tree"
)

// Hooks are callbacks informing clients about nodes of a certain kind being
// attached to or detached from a live document. Hooks are registered per
// node kind with a document. Any of the callbacks may be nil.
type Hooks struct {
	// AddedToPage is called for a node every time it is inserted into an
	// attached parent. It is not called for the node's descendants.
	AddedToPage func(*Node)
	// FullyAttached is called once per transition from detached to attached,
	// for the inserted node and each of its descendants, children before
	// parents. For a node under construction (see Node.IsUnderConstruction)
	// it is postponed until the parser closes the node.
	FullyAttached func(*Node)
	// RemovedFromPage is called for a node which has been removed from an
	// attached parent. During the call, the node's Parent() returns the former
	// parent, although the node is no longer one of its children.
	RemovedFromPage func(*Node)
}

// RegisterHooks sets the lifecycle hooks for nodes of a kind, replacing hooks
// registered earlier.
func (doc *Document) RegisterHooks(kind Kind, hooks Hooks) {
	doc.hooks[kind] = hooks
}

// attach is called after child has been linked to n. It propagates the
// attachment state of n to the subtree of child and calls the lifecycle
// hooks.
func (n *Node) attach(child *Node) {
	if !n.attached {
		return
	}
	wasAttached := child.attached
	doc := n.owner
	assertThat(doc != nil && child.owner == doc, "attached node %v is not owned by %v's document", child, n)
	child.attached = true
	doc.index(child)
	it := child.links.Descendants(nil)
	for it.Next() {
		d := it.Node().Payload
		d.attached = true
		if d.kind == ElementKind {
			doc.index(d)
		}
	}
	tracer().Debugf("attached %v to %v", child, n)
	if h := doc.hooks[child.kind].AddedToPage; h != nil {
		h(child)
	}
	if wasAttached {
		return
	}
	if child.IsUnderConstruction() {
		child.postponed = true
	} else {
		doc.fullyAttachedSubtree(child)
	}
}

// detach clears the attachment state of a subtree which has been unlinked
// from its parent.
func (n *Node) detach() {
	if !n.attached {
		return
	}
	doc := n.owner
	n.attached = false
	n.postponed = false
	doc.unindex(n)
	it := n.links.Descendants(nil)
	for it.Next() {
		d := it.Node().Payload
		d.attached = false
		d.postponed = false
		if d.kind == ElementKind {
			doc.unindex(d)
		}
	}
	tracer().Debugf("detached %v", n)
}

// removedFromPage calls the removal hook for n while its former parent is
// visible.
func (n *Node) removedFromPage(exParent *Node) {
	if n.owner == nil {
		return
	}
	h := n.owner.hooks[n.kind].RemovedFromPage
	if h == nil {
		return
	}
	n.links.WithFormerParent(&exParent.links, func() { h(n) })
}

// fullyAttachedSubtree calls the FullyAttached hooks for n and all of its
// descendants in post-order. The set of nodes is collected in advance, thus
// hooks modifying the tree do not cause nodes to be informed twice.
func (doc *Document) fullyAttachedSubtree(n *Node) {
	var nodes []*Node
	var collect func(t *tree.Node[*Node])
	collect = func(t *tree.Node[*Node]) {
		for ch := t.FirstChild(); ch != nil; ch = ch.NextSibling() {
			collect(ch)
		}
		nodes = append(nodes, t.Payload)
	}
	collect(&n.links)
	for _, m := range nodes {
		doc.fullyAttached(m)
	}
}

func (doc *Document) fullyAttached(n *Node) {
	if h := doc.hooks[n.kind].FullyAttached; h != nil {
		h(n)
	}
}
