package dom

import (
	"errors"
	"fmt"
	"strings"
)

// Selector and XPath engines consume the tree through a narrow contract:
// candidates are enumerated as descendants of a root in document order, and
// the engine decides by a predicate which of them match. The engine does not
// need to know anything about the tree links.

// Select collects all descendants of root which are accepted by filter and
// for which matches returns true, in document order. root itself is not a
// candidate. A nil matches accepts every candidate.
func Select(root *Node, filter Filter, matches func(*Node) bool) []*Node {
	var result []*Node
	it := root.Descendants(filter)
	for it.Next() {
		if n := it.Node(); matches == nil || matches(n) {
			result = append(result, n)
		}
	}
	return result
}

// SelectFirst returns the first descendant of root in document order which
// is accepted by filter and for which matches returns true, or nil.
// Iteration stops at the first match.
func SelectFirst(root *Node, filter Filter, matches func(*Node) bool) *Node {
	it := root.Descendants(filter)
	for it.Next() {
		if n := it.Node(); matches == nil || matches(n) {
			return n
		}
	}
	return nil
}

// ErrEmptyTree is returned by a Walker if it has been created for a nil node.
var ErrEmptyTree = errors.New("cannot walk empty tree")

// Walker holds a query for descendants of a node. Clients chain calls to
// restrict the set of candidates and to add match predicates, then fetch
// the result:
//
//     w := dom.Query(body)
//     links := w.Matching(dom.ElementsNamed("a")).Matching(hasHref).All()
//
// A query will start walking the tree only when the result is requested.
// Walkers may be re-used; every call of a result function walks the tree
// again.
type Walker struct {
	root   *Node
	filter Filter
	preds  []func(*Node) bool
}

// Query creates a Walker for the descendants of root. By default it selects
// elements.
func Query(root *Node) *Walker {
	return &Walker{root: root, filter: Elements}
}

// Filter replaces the candidate filter of the walker. Subtrees of rejected
// nodes are not searched, thus a filter should accept every node a search has
// to descend into. Conditions on the selected nodes themselves belong into
// Matching.
func (w *Walker) Filter(f Filter) *Walker {
	w.filter = f
	return w
}

// Matching adds a predicate. Candidates have to satisfy all predicates.
func (w *Walker) Matching(pred func(*Node) bool) *Walker {
	if pred != nil {
		w.preds = append(w.preds, pred)
	}
	return w
}

func (w *Walker) matches(n *Node) bool {
	for _, pred := range w.preds {
		if !pred(n) {
			return false
		}
	}
	return true
}

// All returns all matching nodes in document order.
func (w *Walker) All() []*Node {
	if w.root == nil {
		return nil
	}
	return Select(w.root, w.filter, w.matches)
}

// First returns the first matching node in document order, or nil.
func (w *Walker) First() *Node {
	if w.root == nil {
		return nil
	}
	return SelectFirst(w.root, w.filter, w.matches)
}

// Promise returns a function delivering the matching nodes and an error.
// The error is ErrEmptyTree if the walker has been created for a nil root.
func (w *Walker) Promise() func() ([]*Node, error) {
	return func() ([]*Node, error) {
		if w.root == nil {
			return nil, ErrEmptyTree
		}
		return w.All(), nil
	}
}

// --- Canonical XPath -------------------------------------------------------

// CanonicalXPath returns an XPath expression which selects exactly n,
// e.g. "/html/body/div[2]/text()". Position predicates are only added if a
// node has siblings of the same name. For nodes not attached to a document,
// the path starts at the root of their tree.
func (n *Node) CanonicalXPath() string {
	var steps []string
	for m := n; m != nil && m.kind != DocumentKind; m = m.Parent() {
		steps = append(steps, m.xpathStep())
	}
	var b strings.Builder
	for i := len(steps) - 1; i >= 0; i-- {
		b.WriteByte('/')
		b.WriteString(steps[i])
	}
	if b.Len() == 0 {
		return "/"
	}
	return b.String()
}

func (n *Node) xpathStep() string {
	var step string
	switch n.kind {
	case ElementKind:
		step = strings.ToLower(n.name)
	case TextKind, CDATAKind:
		step = "text()"
	case CommentKind:
		step = "comment()"
	case ProcessingInstructionKind:
		step = "processing-instruction()"
	default:
		step = "node()"
	}
	parent := n.Parent()
	if parent == nil {
		return step
	}
	count, index := 0, 0
	for ch := parent.FirstChild(); ch != nil; ch = ch.NextSibling() {
		if ch.sameXPathStep(n) {
			count++
			if ch == n {
				index = count
			}
		}
	}
	if count > 1 {
		return fmt.Sprintf("%s[%d]", step, index)
	}
	return step
}

func (n *Node) sameXPathStep(other *Node) bool {
	switch other.kind {
	case ElementKind:
		return n.kind == ElementKind && strings.EqualFold(n.name, other.name)
	case TextKind, CDATAKind:
		return n.kind == TextKind || n.kind == CDATAKind
	}
	return n.kind == other.kind
}
