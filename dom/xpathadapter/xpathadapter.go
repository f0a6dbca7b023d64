/*
Package xpathadapter evaluates XPath expressions on DOM trees.

Evaluation is done by github.com/antchfx/xpath, which walks the tree through
a NodeNavigator. Results are collected in document order by the query
functions of package dom.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package xpathadapter

import (
	"strings"

	"github.com/antchfx/xpath"
	"github.com/npillmayer/domcore/dom"
	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/net/html"
)

// tracer traces with key 'dom.adapter'.
func tracer() tracing.Trace {
	return tracing.Select("dom.adapter")
}

// SelectNodes evaluates an XPath expression with context node ctx and returns
// all matching nodes in document order. Absolute paths are evaluated
// starting at the root of ctx's tree. Attribute nodes in the result are
// represented by their elements.
func SelectNodes(ctx *dom.Node, expr string) ([]*dom.Node, error) {
	set, err := evaluate(ctx, expr)
	if err != nil {
		return nil, err
	}
	root := ctx.RootNode()
	var result []*dom.Node
	if set[root] {
		result = append(result, root)
	}
	return append(result, dom.Select(root, dom.AnyNode, inSet(set))...), nil
}

// SelectFirst evaluates an XPath expression with context node ctx and returns
// the first matching node in document order, or nil.
func SelectFirst(ctx *dom.Node, expr string) (*dom.Node, error) {
	set, err := evaluate(ctx, expr)
	if err != nil || len(set) == 0 {
		return nil, err
	}
	root := ctx.RootNode()
	if set[root] {
		return root, nil
	}
	return dom.SelectFirst(root, dom.AnyNode, inSet(set)), nil
}

func inSet(set map[*dom.Node]bool) func(*dom.Node) bool {
	return func(n *dom.Node) bool {
		return set[n]
	}
}

func evaluate(ctx *dom.Node, expr string) (map[*dom.Node]bool, error) {
	x, err := xpath.Compile(expr)
	if err != nil {
		tracer().Errorf("invalid XPath expression %q: %v", expr, err)
		return nil, err
	}
	set := make(map[*dom.Node]bool)
	it := x.Select(CreateNavigator(ctx))
	for it.MoveNext() {
		set[it.Current().(*NodeNavigator).Current()] = true
	}
	tracer().Debugf("XPath %q selected %d nodes", expr, len(set))
	return set, nil
}

// --- Navigator -------------------------------------------------------------

// NodeNavigator implements xpath.NodeNavigator for DOM trees. Document type
// nodes are invisible to the navigator.
type NodeNavigator struct {
	root, cur *dom.Node
	attrs     []html.Attribute // attributes of cur, if positioned on an attribute
	attr      int
}

// CreateNavigator creates a NodeNavigator positioned at n.
func CreateNavigator(n *dom.Node) *NodeNavigator {
	return &NodeNavigator{root: n.RootNode(), cur: n, attr: -1}
}

// Current returns the node the navigator is positioned at. For attributes
// this is the element holding the attribute.
func (nav *NodeNavigator) Current() *dom.Node {
	return nav.cur
}

func (nav *NodeNavigator) onAttr() bool {
	return nav.attr >= 0
}

// NodeType is part of interface xpath.NodeNavigator.
func (nav *NodeNavigator) NodeType() xpath.NodeType {
	if nav.onAttr() {
		return xpath.AttributeNode
	}
	switch nav.cur.Kind() {
	case dom.ElementKind:
		return xpath.ElementNode
	case dom.TextKind, dom.CDATAKind:
		return xpath.TextNode
	case dom.CommentKind, dom.ProcessingInstructionKind:
		return xpath.CommentNode
	}
	return xpath.RootNode
}

// LocalName is part of interface xpath.NodeNavigator.
func (nav *NodeNavigator) LocalName() string {
	if nav.onAttr() {
		_, local := splitName(nav.attrs[nav.attr].Key)
		return local
	}
	return nav.cur.LocalName()
}

// Prefix is part of interface xpath.NodeNavigator.
func (nav *NodeNavigator) Prefix() string {
	if nav.onAttr() {
		prefix, _ := splitName(nav.attrs[nav.attr].Key)
		return prefix
	}
	return nav.cur.Prefix()
}

func splitName(name string) (string, string) {
	if i := strings.IndexByte(name, ':'); i >= 0 {
		return name[:i], name[i+1:]
	}
	return "", name
}

// Value is part of interface xpath.NodeNavigator. Elements and the root have
// their text content as value.
func (nav *NodeNavigator) Value() string {
	if nav.onAttr() {
		return nav.attrs[nav.attr].Val
	}
	switch nav.cur.Kind() {
	case dom.DocumentKind:
		if el := nav.cur.OwnerDocument().DocumentElement(); el != nil {
			return el.TextContent()
		}
		return ""
	}
	return nav.cur.TextContent()
}

// Copy is part of interface xpath.NodeNavigator.
func (nav *NodeNavigator) Copy() xpath.NodeNavigator {
	c := *nav
	return &c
}

// MoveToRoot is part of interface xpath.NodeNavigator.
func (nav *NodeNavigator) MoveToRoot() {
	nav.cur, nav.attrs, nav.attr = nav.root, nil, -1
}

// MoveToParent is part of interface xpath.NodeNavigator.
func (nav *NodeNavigator) MoveToParent() bool {
	if nav.onAttr() {
		nav.attrs, nav.attr = nil, -1
		return true
	}
	if p := nav.cur.Parent(); p != nil {
		nav.cur = p
		return true
	}
	return false
}

// MoveToNextAttribute is part of interface xpath.NodeNavigator.
func (nav *NodeNavigator) MoveToNextAttribute() bool {
	if nav.cur.Kind() != dom.ElementKind {
		return false
	}
	if !nav.onAttr() {
		nav.attrs = nav.cur.Attrs()
	}
	if nav.attr+1 >= len(nav.attrs) {
		return false
	}
	nav.attr++
	return true
}

// MoveToChild is part of interface xpath.NodeNavigator.
func (nav *NodeNavigator) MoveToChild() bool {
	if nav.onAttr() {
		return false
	}
	if ch := visible(nav.cur.FirstChild(), (*dom.Node).NextSibling); ch != nil {
		nav.cur = ch
		return true
	}
	return false
}

// MoveToFirst is part of interface xpath.NodeNavigator.
func (nav *NodeNavigator) MoveToFirst() bool {
	if nav.onAttr() {
		return false
	}
	p := nav.cur.Parent()
	if p == nil {
		return false
	}
	if ch := visible(p.FirstChild(), (*dom.Node).NextSibling); ch != nil {
		nav.cur = ch
		return true
	}
	return false
}

// MoveToNext is part of interface xpath.NodeNavigator.
func (nav *NodeNavigator) MoveToNext() bool {
	if nav.onAttr() || nav.cur == nav.root {
		return false
	}
	if n := visible(nav.cur.NextSibling(), (*dom.Node).NextSibling); n != nil {
		nav.cur = n
		return true
	}
	return false
}

// MoveToPrevious is part of interface xpath.NodeNavigator.
func (nav *NodeNavigator) MoveToPrevious() bool {
	if nav.onAttr() || nav.cur == nav.root {
		return false
	}
	if n := visible(nav.cur.PreviousSibling(), (*dom.Node).PreviousSibling); n != nil {
		nav.cur = n
		return true
	}
	return false
}

// MoveTo is part of interface xpath.NodeNavigator.
func (nav *NodeNavigator) MoveTo(other xpath.NodeNavigator) bool {
	o, ok := other.(*NodeNavigator)
	if !ok || o.root != nav.root {
		return false
	}
	nav.cur, nav.attrs, nav.attr = o.cur, o.attrs, o.attr
	return true
}

// visible skips document type nodes, starting at n and moving with step.
func visible(n *dom.Node, step func(*dom.Node) *dom.Node) *dom.Node {
	for n != nil && n.Kind() == dom.DocumentTypeKind {
		n = step(n)
	}
	return n
}
