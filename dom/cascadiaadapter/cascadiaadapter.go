/*
Package cascadiaadapter implements CSS selector queries for DOM trees.

Selectors are compiled and matched by github.com/andybalholm/cascadia.
Cascadia matches nodes of x/net/html parse trees, thus queries operate on a
mirror of the DOM tree (see package htmladapter). The mirror covers the
complete tree, so combinators and structural pseudo-classes see ancestors
and siblings outside of the query root.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package cascadiaadapter

import (
	"github.com/andybalholm/cascadia"
	"github.com/npillmayer/domcore/dom"
	"github.com/npillmayer/domcore/dom/htmladapter"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'dom.adapter'.
func tracer() tracing.Trace {
	return tracing.Select("dom.adapter")
}

// QuerySelectorAll returns all elements below root matching a CSS selector,
// in document order.
func QuerySelectorAll(root *dom.Node, selector string) ([]*dom.Node, error) {
	matches, err := Matcher(root, selector)
	if err != nil {
		return nil, err
	}
	return dom.Select(root, dom.Elements, matches), nil
}

// QuerySelector returns the first element below root matching a CSS selector,
// or nil.
func QuerySelector(root *dom.Node, selector string) (*dom.Node, error) {
	matches, err := Matcher(root, selector)
	if err != nil {
		return nil, err
	}
	return dom.SelectFirst(root, dom.Elements, matches), nil
}

// Matcher compiles a CSS selector into a predicate for elements of the tree
// root belongs to. The predicate operates on a snapshot of the tree taken by
// Matcher; nodes inserted later never match.
func Matcher(root *dom.Node, selector string) (func(*dom.Node) bool, error) {
	sel, err := cascadia.Compile(selector)
	if err != nil {
		tracer().Errorf("invalid selector %q: %v", selector, err)
		return nil, err
	}
	mirror := htmladapter.Mirror(root)
	return func(n *dom.Node) bool {
		h := mirror.HTMLNode(n)
		return h != nil && sel.Match(h)
	}, nil
}

// Matches checks if an element matches a CSS selector.
func Matches(n *dom.Node, selector string) (bool, error) {
	matches, err := Matcher(n, selector)
	if err != nil {
		return false, err
	}
	return n.Kind() == dom.ElementKind && matches(n), nil
}
