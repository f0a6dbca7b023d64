package cssom

import (
	"strings"

	"github.com/npillmayer/domcore/dom"
)

// StyleSheet is an interface to abstract away a stylesheet-implementation.
// Clients will have to provide a concrete implementation of this interface
// (e.g., see package douceuradapter).
//
// See interface Rule.
type StyleSheet interface {
	AppendRules(StyleSheet) // append rules from another stylesheet
	Empty() bool            // does this stylesheet contain any rules?
	Rules() []Rule          // all the rules of a stylesheet
}

// Rule is the type stylesheets consists of.
//
// See interface StyleSheet.
type Rule interface {
	Selector() string        // the prelude / selectors of the rule
	Properties() []string    // property keys, e.g. "margin-top"
	Value(string) string     // property value for key, e.g. "15px"
	IsImportant(string) bool // is property key marked as important?
}

// Extractor collects the style sheets embedded in a document tree.
type Extractor func(root *dom.Node) []StyleSheet

// IsStyleElement is true for <style> elements.
func IsStyleElement(n *dom.Node) bool {
	return n != nil && n.Kind() == dom.ElementKind && strings.EqualFold(n.LocalName(), "style")
}

// MatchingRules returns the rules of sheets whose selector matches n,
// in the order of the sheets. The selector test is delegated to
// matches, e.g. a CSS selector engine.
func MatchingRules(n *dom.Node, sheets []StyleSheet, matches func(selector string, n *dom.Node) bool) []Rule {
	var rules []Rule
	for _, sheet := range sheets {
		for _, r := range sheet.Rules() {
			if matches(r.Selector(), n) {
				rules = append(rules, r)
			}
		}
	}
	return rules
}
