package dom

import (
	"fmt"
	"strings"
)

// TextContent returns the text of a node. For character data this is the
// data of the node itself, with the exception of comments and processing
// instructions in a subtree: for elements and fragments it is the
// concatenated text of all text and CDATA descendants. Documents and
// document types have no text content.
func (n *Node) TextContent() string {
	switch n.kind {
	case ElementKind, FragmentKind:
		var b strings.Builder
		it := n.Descendants(KindIs(ElementKind, TextKind, CDATAKind))
		for it.Next() {
			if t := it.Node(); t.kind != ElementKind {
				b.WriteString(t.data)
			}
		}
		return b.String()
	case DocumentKind, DocumentTypeKind:
		return ""
	}
	return n.data
}

// SetTextContent replaces all children of an element or fragment by a single
// text node holding s. For an empty s no text node is created. For character
// data nodes the data is set to s. For documents and document types this is
// a no-op.
func (n *Node) SetTextContent(s string) {
	switch n.kind {
	case ElementKind, FragmentKind:
		for ch := n.FirstChild(); ch != nil; ch = n.FirstChild() {
			ch.Remove()
		}
		if s == "" {
			return
		}
		var t *Node
		if n.owner != nil {
			t = n.owner.CreateTextNode(s)
		} else {
			t = NewText(s)
		}
		n.appendChecked(t)
	case DocumentKind, DocumentTypeKind:
	default:
		n.SetData(s)
	}
}

// Normalize puts the subtree of n into a normal form, where there are
// neither empty text nodes nor adjacent text nodes. Adjacent text nodes are
// merged into the first one, the others are removed.
//
// If feature FeatureNormalizeKeepsFirstText is set for the document, the
// first of a run of adjacent text nodes is kept as it is and the others are
// removed without merging their text.
func (n *Node) Normalize() {
	keepFirst := n.HasFeature(FeatureNormalizeKeepsFirstText)
	n.normalize(keepFirst)
}

func (n *Node) normalize(keepFirst bool) {
	ch := n.FirstChild()
	for ch != nil {
		if ch.kind != TextKind {
			ch.normalize(keepFirst)
			ch = ch.NextSibling()
			continue
		}
		var b strings.Builder
		b.WriteString(ch.data)
		for next := ch.NextSibling(); next != nil && next.kind == TextKind; next = ch.NextSibling() {
			b.WriteString(next.data)
			next.Remove()
		}
		next := ch.NextSibling()
		switch {
		case keepFirst && ch.data == "":
			ch.Remove()
		case keepFirst:
		case b.Len() == 0:
			ch.Remove()
		case b.String() != ch.data:
			ch.SetData(b.String())
		}
		ch = next
	}
}

// SplitText splits a text node into two at offset, counted in characters.
// n keeps the text before offset, the rest is moved to a new text node,
// which is inserted as the next sibling of n and returned.
//
// Errors:
// ErrIndexSize if offset is negative or beyond the length of the text.
func (n *Node) SplitText(offset int) (*Node, error) {
	assertThat(n.kind == TextKind || n.kind == CDATAKind, "cannot split %s node", n.kind)
	text := []rune(n.data)
	if offset < 0 || offset > len(text) {
		return nil, fmt.Errorf("%w: offset %d for text of length %d", ErrIndexSize, offset, len(text))
	}
	rest := n.Clone(false)
	rest.data = string(text[offset:])
	n.SetData(string(text[:offset]))
	parent := n.Parent()
	if parent == nil {
		return rest, nil
	}
	if next := n.NextSibling(); next != nil {
		next.insertChecked(rest)
	} else {
		parent.appendChecked(rest)
	}
	return rest, nil
}

// --- Equality --------------------------------------------------------------

// IsSameNode is true if other is n.
func (n *Node) IsSameNode(other *Node) bool {
	return n == other
}

// IsEqualNode checks if two nodes are structurally equal: they are of the
// same kind, have equal names, namespaces, data and attributes (in any
// order), and their children are pairwise equal.
func (n *Node) IsEqualNode(other *Node) bool {
	if other == nil {
		return false
	}
	if n == other {
		return true
	}
	if n.kind != other.kind || n.name != other.name || n.namespace != other.namespace ||
		n.data != other.data || len(n.attrs) != len(other.attrs) {
		return false
	}
	for _, a := range n.attrs {
		if v, ok := other.Attr(a.Key); !ok || v != a.Val {
			return false
		}
	}
	ch, och := n.FirstChild(), other.FirstChild()
	for ; ch != nil && och != nil; ch, och = ch.NextSibling(), och.NextSibling() {
		if !ch.IsEqualNode(och) {
			return false
		}
	}
	return ch == nil && och == nil
}
