package dom

import (
	"strings"

	"github.com/npillmayer/domcore/tree"
)

// Document is the owner of a tree of nodes. Its root is a node of kind
// DocumentKind, which is always attached.
//
// The document holds state shared by all of its nodes: lifecycle hooks per
// node kind, feature flags and an index of element ids.
type Document struct {
	root     *Node
	hooks    map[Kind]Hooks
	features Features
	ids      map[string][]*Node
}

// NewDocument creates an empty document.
func NewDocument() *Document {
	doc := &Document{
		hooks: make(map[Kind]Hooks),
		ids:   make(map[string][]*Node),
	}
	doc.root = newNode(DocumentKind, doc)
	doc.root.attached = true
	return doc
}

// Node returns the root node of the document.
func (doc *Document) Node() *Node {
	return doc.root
}

// DocumentElement returns the top-level element of the document, or nil.
func (doc *Document) DocumentElement() *Node {
	for ch := doc.root.FirstChild(); ch != nil; ch = ch.NextSibling() {
		if ch.kind == ElementKind {
			return ch
		}
	}
	return nil
}

// --- Node factory ----------------------------------------------------------

// CreateElement creates a new element owned by doc. The element is not
// attached to the tree.
func (doc *Document) CreateElement(name string) *Node {
	n := newNode(ElementKind, doc)
	n.setName(name)
	return n
}

// CreateElementNS creates a new element with a namespace URI. name may carry
// a prefix, e.g. "svg:rect".
func (doc *Document) CreateElementNS(namespace, name string) *Node {
	n := doc.CreateElement(name)
	n.namespace = namespace
	return n
}

// CreateTextNode creates a new text node owned by doc.
func (doc *Document) CreateTextNode(text string) *Node {
	n := newNode(TextKind, doc)
	n.data = text
	return n
}

// CreateCDATASection creates a new CDATA section owned by doc.
func (doc *Document) CreateCDATASection(text string) *Node {
	n := newNode(CDATAKind, doc)
	n.data = text
	return n
}

// CreateComment creates a new comment node owned by doc.
func (doc *Document) CreateComment(text string) *Node {
	n := newNode(CommentKind, doc)
	n.data = text
	return n
}

// CreateProcessingInstruction creates a new processing instruction owned by doc.
func (doc *Document) CreateProcessingInstruction(target, data string) *Node {
	n := newNode(ProcessingInstructionKind, doc)
	n.name = target
	n.data = data
	return n
}

// CreateDocumentType creates a new document type node owned by doc.
func (doc *Document) CreateDocumentType(name string) *Node {
	n := newNode(DocumentTypeKind, doc)
	n.name = name
	return n
}

// CreateDocumentFragment creates a new, empty document fragment owned by doc.
func (doc *Document) CreateDocumentFragment() *Node {
	return newNode(FragmentKind, doc)
}

// --- Features --------------------------------------------------------------

// Features is a lookup for feature flags. Feature flags select between
// alternative, otherwise equivalent policies of tree operations.
type Features interface {
	HasFeature(name string) bool
}

// FeatureSet is a simple implementation of Features.
type FeatureSet map[string]bool

// HasFeature is part of interface Features.
func (fs FeatureSet) HasFeature(name string) bool {
	return fs[name]
}

// Feature flags consumed by this package.
const (
	// Normalize keeps the first of adjacent text nodes as it is and deletes
	// all the others, instead of merging their text.
	FeatureNormalizeKeepsFirstText = "dom.normalize.keep-first-text"
)

// SetFeatures sets the source for feature flag lookups.
func (doc *Document) SetFeatures(features Features) {
	doc.features = features
}

// HasFeature checks if a feature flag is set for this document.
func (doc *Document) HasFeature(name string) bool {
	if doc.features == nil {
		return false
	}
	return doc.features.HasFeature(name)
}

// --- Id index --------------------------------------------------------------

// ElementByID returns the first element in document order which is attached
// to the document and has an id attribute equal to id.
func (doc *Document) ElementByID(id string) *Node {
	var first *Node
	for _, n := range doc.ids[id] {
		if first == nil || tree.ComparePosition(&first.links, &n.links).Has(Preceding) {
			first = n
		}
	}
	return first
}

func (doc *Document) index(n *Node) {
	if id := strings.TrimSpace(n.ID()); id != "" {
		doc.ids[id] = append(doc.ids[id], n)
	}
}

func (doc *Document) unindex(n *Node) {
	id := strings.TrimSpace(n.ID())
	if id == "" {
		return
	}
	nodes := doc.ids[id]
	for i, m := range nodes {
		if m == n {
			nodes = append(nodes[:i], nodes[i+1:]...)
			break
		}
	}
	if len(nodes) == 0 {
		delete(doc.ids, id)
		return
	}
	doc.ids[id] = nodes
}
