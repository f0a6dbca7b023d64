package dom

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"
	"strings"

	"github.com/npillmayer/domcore/tree"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Node is the building block of the document tree.
type Node struct {
	links     tree.Node[*Node] // we build on top of general purpose tree
	kind      Kind
	name      string           // tag name, PI target or doctype name
	atom      atom.Atom        // atom of the tag name, if known
	namespace string           // namespace URI of an element
	data      string           // character data
	attrs     []html.Attribute // attributes of an element
	owner     *Document        // owning document, may be nil
	attached  bool             // reachable from the document root?
	peer      interface{}      // scriptable peer, created lazily
	hasPeer   bool             // peer factory has been called
	postponed bool             // FullyAttached waits for SetEndLocation
	span      Span             // source location
	ready     ReadyState
	userData  map[string]interface{}
	changes   *registry[ChangeListener] // structural listeners, allocated lazily
	dataChg   *registry[DataListener]   // character data listeners, allocated lazily
}

func newNode(kind Kind, owner *Document) *Node {
	n := &Node{
		kind:  kind,
		owner: owner,
		ready: Loading,
		span:  noSpan,
	}
	n.links.Payload = n // Payload will always reference the node itself
	return n
}

// nodeOf gets the DOM node from a generic tree node.
func nodeOf(t *tree.Node[*Node]) *Node {
	if t == nil {
		return nil
	}
	return t.Payload
}

// NewElement creates an element node which does not belong to any document.
// It will be adopted by the document of the tree it is inserted into.
func NewElement(name string) *Node {
	n := newNode(ElementKind, nil)
	n.setName(name)
	return n
}

// NewText creates a text node which does not belong to any document.
func NewText(text string) *Node {
	n := newNode(TextKind, nil)
	n.data = text
	return n
}

// NewComment creates a comment node which does not belong to any document.
func NewComment(text string) *Node {
	n := newNode(CommentKind, nil)
	n.data = text
	return n
}

// NewFragment creates a document fragment which does not belong to any document.
func NewFragment() *Node {
	return newNode(FragmentKind, nil)
}

func (n *Node) setName(name string) {
	n.name = name
	n.atom = atom.Lookup([]byte(strings.ToLower(name)))
}

func (n *Node) String() string {
	switch {
	case n == nil:
		return "<nil>"
	case n.kind == ElementKind:
		return fmt.Sprintf("<%s>", n.name)
	case n.kind.IsCharacterData():
		return fmt.Sprintf("%s(%q)", n.NodeName(), shorten(n.data, 16))
	}
	return n.NodeName()
}

func shorten(s string, l int) string {
	if len(s) <= l {
		return s
	}
	return s[:l] + "…"
}

// --- Properties ------------------------------------------------------------

// Kind returns the kind of the node.
func (n *Node) Kind() Kind {
	return n.kind
}

// NodeName returns the name of a node. The result depends on the kind of
// the node: elements return their tag name, processing instructions their
// target, document types their name. All other kinds return a fixed name,
// e.g. "#text".
func (n *Node) NodeName() string {
	switch n.kind {
	case ElementKind, ProcessingInstructionKind, DocumentTypeKind:
		return n.name
	}
	return kinds[n.kind].name
}

// LocalName returns the tag name of an element without a namespace prefix.
func (n *Node) LocalName() string {
	if n.kind != ElementKind {
		return ""
	}
	if i := strings.IndexByte(n.name, ':'); i >= 0 {
		return n.name[i+1:]
	}
	return n.name
}

// Prefix returns the namespace prefix of an element's tag name, if any.
func (n *Node) Prefix() string {
	if n.kind != ElementKind {
		return ""
	}
	if i := strings.IndexByte(n.name, ':'); i >= 0 {
		return n.name[:i]
	}
	return ""
}

// DataAtom returns the atom of an element's tag name, or 0 if the tag name
// is not a known HTML name.
func (n *Node) DataAtom() atom.Atom {
	return n.atom
}

// Namespace returns the namespace URI of an element.
func (n *Node) Namespace() string {
	return n.namespace
}

// NodeValue returns the character data of a node. For all kinds which do
// not carry character data, the empty string is returned.
func (n *Node) NodeValue() string {
	if n.kind.IsCharacterData() {
		return n.data
	}
	return ""
}

// SetNodeValue sets the character data of a node. For kinds which do not
// carry character data this is a no-op.
func (n *Node) SetNodeValue(value string) {
	if n.kind.IsCharacterData() {
		n.SetData(value)
	}
}

// Data returns the raw character data of a node.
func (n *Node) Data() string {
	return n.data
}

// SetData sets the character data of a node and informs data listeners of
// the node and its ancestors.
func (n *Node) SetData(data string) {
	assertThat(n.kind.IsCharacterData(), "cannot set data of %s node", n.kind)
	old := n.data
	n.data = data
	n.fireDataChanged(old)
}

// AppendData appends s to the character data of a node.
func (n *Node) AppendData(s string) {
	n.SetData(n.data + s)
}

// OwnerDocument returns the document a node belongs to, or nil.
func (n *Node) OwnerDocument() *Document {
	return n.owner
}

// Attached is true if the node is reachable from the root of its document.
func (n *Node) Attached() bool {
	return n.attached
}

// ReadyState returns the legacy ready state of the node.
func (n *Node) ReadyState() ReadyState {
	return n.ready
}

// SetReadyState sets the legacy ready state of the node.
func (n *Node) SetReadyState(state ReadyState) {
	n.ready = state
}

// HasFeature looks up a feature flag with the owner document of n.
// Nodes without a document do not have any features.
func (n *Node) HasFeature(name string) bool {
	if n.owner == nil {
		return false
	}
	return n.owner.HasFeature(name)
}

// --- Attributes ------------------------------------------------------------

// Attrs returns a copy of the attributes of an element.
func (n *Node) Attrs() []html.Attribute {
	if len(n.attrs) == 0 {
		return nil
	}
	attrs := make([]html.Attribute, len(n.attrs))
	copy(attrs, n.attrs)
	return attrs
}

// Attr returns the value of an attribute of an element.
func (n *Node) Attr(key string) (string, bool) {
	for _, a := range n.attrs {
		if a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

// HasAttributes checks for existence of attributes.
func (n *Node) HasAttributes() bool {
	return len(n.attrs) > 0
}

// SetAttr sets the value of an attribute of an element.
func (n *Node) SetAttr(key, value string) {
	assertThat(n.kind == ElementKind, "cannot set attribute of %s node", n.kind)
	if key == "id" {
		n.updateIndex(func() { n.setAttr(key, value) })
		return
	}
	n.setAttr(key, value)
}

func (n *Node) setAttr(key, value string) {
	for i := range n.attrs {
		if n.attrs[i].Key == key {
			n.attrs[i].Val = value
			return
		}
	}
	n.attrs = append(n.attrs, html.Attribute{Key: key, Val: value})
}

// RemoveAttr removes an attribute of an element, if present.
func (n *Node) RemoveAttr(key string) {
	remove := func() {
		for i, a := range n.attrs {
			if a.Key == key {
				n.attrs = append(n.attrs[:i], n.attrs[i+1:]...)
				return
			}
		}
	}
	if key == "id" {
		n.updateIndex(remove)
		return
	}
	remove()
}

// ID returns the value of the id attribute of an element.
func (n *Node) ID() string {
	id, _ := n.Attr("id")
	return id
}

// updateIndex performs a change of the id attribute and keeps the id index
// of the owner document up to date.
func (n *Node) updateIndex(change func()) {
	if n.attached && n.owner != nil {
		n.owner.unindex(n)
		change()
		n.owner.index(n)
		return
	}
	change()
}

// --- User data and scriptable peer -----------------------------------------

// SetUserData stores an arbitrary value with the node under a key and returns
// the value previously stored with key. Setting a nil value removes the key.
func (n *Node) SetUserData(key string, value interface{}) interface{} {
	old := n.userData[key]
	if value == nil {
		delete(n.userData, key)
		return old
	}
	if n.userData == nil {
		n.userData = make(map[string]interface{})
	}
	n.userData[key] = value
	return old
}

// UserData returns the value stored with the node under key, or nil.
func (n *Node) UserData(key string) interface{} {
	return n.userData[key]
}

// Peer returns the scriptable peer of the node, if it has been created.
func (n *Node) Peer() interface{} {
	return n.peer
}

// GetOrCreatePeer returns the scriptable peer of the node. factory is called
// at most once per node, even if it returns nil. The node owns the peer.
//
// Requesting a peer for a node without a document is a programming error
// and will panic.
func (n *Node) GetOrCreatePeer(factory func(*Node) interface{}) interface{} {
	assertThat(n.owner != nil, "cannot create scriptable peer for node %v without document", n)
	if !n.hasPeer {
		n.peer = factory(n)
		n.hasPeer = true
		tracer().Debugf("created scriptable peer for %v", n)
	}
	return n.peer
}

// --- Source location -------------------------------------------------------

// Span is a location in the source of a document. Unset fields are -1.
type Span struct {
	StartLine, StartColumn int
	EndLine, EndColumn     int
}

var noSpan = Span{-1, -1, -1, -1}

// Span returns the source location of the node.
func (n *Node) Span() Span {
	return n.span
}

// SetStartLocation is called by a parser when it opens a node.
func (n *Node) SetStartLocation(line, column int) {
	n.span.StartLine, n.span.StartColumn = line, column
}

// SetEndLocation is called by a parser when it closes a node. If the node has
// been attached while under construction, it will now be informed that it is
// fully attached.
func (n *Node) SetEndLocation(line, column int) {
	n.span.EndLine, n.span.EndColumn = line, column
	if n.postponed && n.attached {
		n.postponed = false
		n.owner.fullyAttached(n)
	}
}

// IsUnderConstruction is true if a parser has opened the node, but not yet
// closed it, i.e. it has a start location, but no end location.
func (n *Node) IsUnderConstruction() bool {
	return n.span.StartLine != -1 && n.span.EndLine == -1
}
