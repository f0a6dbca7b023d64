/*
Package htmladapter converts between parse trees of golang.org/x/net/html
and DOM trees.

The HTML parser of x/net/html is the producer of DOM trees: Parse reads an
HTML document into a dom.Document, Build converts an existing parse tree.
In the other direction, Mirror creates a parse tree for a DOM tree, which
lets engines operating on *html.Node (e.g., CSS selector matchers) work on
DOM nodes.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package htmladapter

import (
	"fmt"
	"io"

	"github.com/npillmayer/domcore/dom"
	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// tracer traces with key 'dom.adapter'.
func tracer() tracing.Trace {
	return tracing.Select("dom.adapter")
}

// Parse reads an HTML document from r and appends its nodes to the root of
// doc. doc should be empty.
func Parse(doc *dom.Document, r io.Reader) error {
	h, err := html.Parse(r)
	if err != nil {
		tracer().Errorf("HTML parser: %v", err)
		return err
	}
	_, err = Build(doc, h)
	return err
}

// ParseFragment parses an HTML fragment in the context of an element and
// returns a document fragment holding the resulting nodes. The fragment
// belongs to the document of context.
func ParseFragment(context *dom.Node, r io.Reader) (*dom.Node, error) {
	if context.Kind() != dom.ElementKind || context.OwnerDocument() == nil {
		return nil, fmt.Errorf("%w: fragment context must be an element of a document", dom.ErrHierarchy)
	}
	h := &html.Node{
		Type:     html.ElementNode,
		Data:     context.LocalName(),
		DataAtom: context.DataAtom(),
	}
	nodes, err := html.ParseFragment(r, h)
	if err != nil {
		return nil, err
	}
	doc := context.OwnerDocument()
	frag := doc.CreateDocumentFragment()
	for _, hn := range nodes {
		n := convert(doc, hn)
		if n == nil {
			continue
		}
		if _, err := frag.AppendChild(n); err != nil {
			return nil, err
		}
	}
	return frag, nil
}

// Build converts a parse tree into DOM nodes owned by doc. If h is a document
// node, its children are appended to the root of doc and the root is
// returned. Otherwise the converted subtree is returned without being
// inserted into the document.
//
// Nodes of type html.ErrorNode are skipped.
func Build(doc *dom.Document, h *html.Node) (*dom.Node, error) {
	if h.Type != html.DocumentNode {
		n := convert(doc, h)
		if n == nil {
			return nil, fmt.Errorf("cannot convert node of type %d", h.Type)
		}
		return n, nil
	}
	root := doc.Node()
	for c := h.FirstChild; c != nil; c = c.NextSibling {
		n := convert(doc, c)
		if n == nil {
			continue
		}
		if _, err := root.AppendChild(n); err != nil {
			tracer().Errorf("cannot append %v to document: %v", n, err)
			return nil, err
		}
	}
	root.SetReadyState(dom.Complete)
	return root, nil
}

// convert creates a DOM subtree for an HTML subtree. Children are appended
// to their parent before the parent is inserted anywhere, thus no lifecycle
// hooks are triggered during conversion.
func convert(doc *dom.Document, h *html.Node) *dom.Node {
	var n *dom.Node
	switch h.Type {
	case html.ElementNode:
		if h.Namespace != "" {
			n = doc.CreateElementNS(h.Namespace, h.Data)
		} else {
			n = doc.CreateElement(h.Data)
		}
		for _, a := range h.Attr {
			key := a.Key
			if a.Namespace != "" {
				key = a.Namespace + ":" + a.Key
			}
			n.SetAttr(key, a.Val)
		}
	case html.TextNode, html.RawNode:
		n = doc.CreateTextNode(h.Data)
	case html.CommentNode:
		n = doc.CreateComment(h.Data)
	case html.DoctypeNode:
		n = doc.CreateDocumentType(h.Data)
	case html.DocumentNode:
		n = doc.CreateDocumentFragment()
	default:
		tracer().Debugf("skipping HTML node of type %d", h.Type)
		return nil
	}
	for c := h.FirstChild; c != nil; c = c.NextSibling {
		ch := convert(doc, c)
		if ch == nil {
			continue
		}
		if _, err := n.AppendChild(ch); err != nil {
			tracer().Errorf("dropping %v: %v", ch, err)
		}
	}
	n.SetReadyState(dom.Complete)
	return n
}

// --- Mirror ----------------------------------------------------------------

// MirrorTree is a parse tree of x/net/html reflecting a DOM tree. It records
// the correspondence between the nodes of both trees.
//
// A mirror is a snapshot: it does not follow subsequent changes of the DOM
// tree.
type MirrorTree struct {
	root   *html.Node
	toDOM  map[*html.Node]*dom.Node
	toHTML map[*dom.Node]*html.Node
}

// Mirror creates a parse tree for the complete tree n belongs to, i.e.
// starting at the root of n's tree. Engines will therefore see all ancestors
// and siblings of n.
func Mirror(n *dom.Node) *MirrorTree {
	m := &MirrorTree{
		toDOM:  make(map[*html.Node]*dom.Node),
		toHTML: make(map[*dom.Node]*html.Node),
	}
	m.root = m.mirror(n.RootNode())
	tracer().Debugf("mirrored %d nodes", len(m.toDOM))
	return m
}

// Root returns the root of the parse tree.
func (m *MirrorTree) Root() *html.Node {
	return m.root
}

// DOMNode returns the DOM node for an HTML node of the mirror.
func (m *MirrorTree) DOMNode(h *html.Node) *dom.Node {
	return m.toDOM[h]
}

// HTMLNode returns the HTML node mirroring a DOM node.
func (m *MirrorTree) HTMLNode(n *dom.Node) *html.Node {
	return m.toHTML[n]
}

func (m *MirrorTree) mirror(n *dom.Node) *html.Node {
	h := &html.Node{}
	switch n.Kind() {
	case dom.ElementKind:
		h.Type = html.ElementNode
		h.Data = n.NodeName()
		h.DataAtom = n.DataAtom()
		if h.DataAtom == 0 {
			h.DataAtom = atom.Lookup([]byte(h.Data))
		}
		h.Namespace = n.Namespace()
		h.Attr = n.Attrs()
	case dom.TextKind, dom.CDATAKind:
		h.Type = html.TextNode
		h.Data = n.Data()
	case dom.CommentKind:
		h.Type = html.CommentNode
		h.Data = n.Data()
	case dom.ProcessingInstructionKind:
		h.Type = html.CommentNode
		h.Data = "?" + n.NodeName() + " " + n.Data() + "?"
	case dom.DocumentTypeKind:
		h.Type = html.DoctypeNode
		h.Data = n.NodeName()
	default: // document and fragment
		h.Type = html.DocumentNode
	}
	m.toDOM[h] = n
	m.toHTML[n] = h
	for ch := n.FirstChild(); ch != nil; ch = ch.NextSibling() {
		h.AppendChild(m.mirror(ch))
	}
	return h
}

// Render writes the HTML serialization of the subtree of n to w.
func Render(w io.Writer, n *dom.Node) error {
	return html.Render(w, Mirror(n).HTMLNode(n))
}
