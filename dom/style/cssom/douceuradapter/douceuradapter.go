/*
Package douceuradapter is a concrete implementation of interface cssom.StyleSheet.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package douceuradapter

import (
	"github.com/aymerick/douceur/css"
	"github.com/aymerick/douceur/parser"
	"github.com/npillmayer/domcore/dom"
	"github.com/npillmayer/domcore/dom/style/cssom"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'dom.style'.
func tracer() tracing.Trace {
	return tracing.Select("dom.style")
}

// CSSStyles is an adapter for interface cssom.StyleSheet.
type CSSStyles struct {
	css css.Stylesheet
}

// Wrap a douceur.css.Stylesheet into CssStyles.
// The stylesheet is now managed by the wrapper.
func Wrap(css *css.Stylesheet) *CSSStyles {
	sheet := &CSSStyles{*css}
	return sheet
}

// Parse parses CSS text into a style sheet.
func Parse(text string) (*CSSStyles, error) {
	c, err := parser.Parse(text)
	if err != nil {
		return nil, err
	}
	return Wrap(c), nil
}

// Empty checks if this stylesheet contains any rules.
//
// Interface cssom.StyleSheet
func (sheet *CSSStyles) Empty() bool {
	return len(sheet.css.Rules) == 0
}

// AppendRules appends rules from another stylesheet.
//
// Interface cssom.StyleSheet
func (sheet *CSSStyles) AppendRules(other cssom.StyleSheet) {
	if othercss, ok := other.(*CSSStyles); ok {
		sheet.css.Rules = append(sheet.css.Rules, othercss.css.Rules...)
		return
	}
	for _, r := range other.Rules() { // foreign implementation: copy declarations
		rule := css.NewRule(css.QualifiedRule)
		rule.Prelude = r.Selector()
		rule.Selectors = []string{r.Selector()}
		for _, p := range r.Properties() {
			rule.Declarations = append(rule.Declarations, &css.Declaration{
				Property:  p,
				Value:     r.Value(p),
				Important: r.IsImportant(p),
			})
		}
		sheet.css.Rules = append(sheet.css.Rules, rule)
	}
}

// Rules returns all the rules of a stylesheet.
//
// Interface cssom.StyleSheet
func (sheet *CSSStyles) Rules() []cssom.Rule {
	rules := make([]cssom.Rule, len(sheet.css.Rules))
	for i := range sheet.css.Rules {
		rules[i] = Rule(*sheet.css.Rules[i])
	}
	return rules
}

var _ cssom.StyleSheet = &CSSStyles{}

// Rule is an adapter for interface cssom.Rule.
type Rule css.Rule

// Selector returns the prelude / selectors of the rule.
func (r Rule) Selector() string {
	return r.Prelude
}

// Properties returns the property keys of a rule,
// e.g. "margin-top"
func (r Rule) Properties() []string {
	props := make([]string, 0, len(r.Declarations))
	for _, d := range r.Declarations {
		props = append(props, d.Property)
	}
	return props
}

// Value returns the property values for given key with this rule, e.g. "15px"
func (r Rule) Value(key string) string {
	for _, d := range r.Declarations {
		if d.Property == key {
			return d.Value
		}
	}
	return ""
}

// IsImportant returns true if a style key is marked as important ("!").
func (r Rule) IsImportant(key string) bool {
	for _, d := range r.Declarations {
		if d.Property == key {
			return d.Important
		}
	}
	return false
}

var _ cssom.Rule = &Rule{}

// ExtractStyleElements searches a DOM tree for <style> elements and returns
// their content as style sheets, in document order. Style elements with
// invalid CSS are skipped.
func ExtractStyleElements(root *dom.Node) []*CSSStyles {
	var sheets []*CSSStyles
	for _, st := range dom.Select(root, dom.Elements, cssom.IsStyleElement) {
		c, err := Parse(st.TextContent())
		if err != nil {
			tracer().Errorf("skipping style element: %v", err)
			continue
		}
		sheets = append(sheets, c)
	}
	return sheets
}

// Extract is an cssom.Extractor for style elements.
func Extract(root *dom.Node) []cssom.StyleSheet {
	styles := ExtractStyleElements(root)
	sheets := make([]cssom.StyleSheet, len(styles))
	for i, c := range styles {
		sheets[i] = c
	}
	return sheets
}

var _ cssom.Extractor = Extract
