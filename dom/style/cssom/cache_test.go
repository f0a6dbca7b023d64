package cssom

import (
	"testing"

	"github.com/npillmayer/domcore/dom"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

type fakeSheet struct{ text string }

func (s *fakeSheet) AppendRules(StyleSheet) {}
func (s *fakeSheet) Empty() bool            { return s.text == "" }
func (s *fakeSheet) Rules() []Rule          { return nil }

// extractor returns one fake sheet per style element and counts its calls.
func extractor(calls *int) Extractor {
	return func(root *dom.Node) []StyleSheet {
		*calls++
		var sheets []StyleSheet
		for _, st := range dom.Select(root, dom.Elements, IsStyleElement) {
			sheets = append(sheets, &fakeSheet{st.TextContent()})
		}
		return sheets
	}
}

func page(t *testing.T) (*dom.Document, *dom.Node, *dom.Node) {
	doc := dom.NewDocument()
	html := doc.CreateElement("html")
	head := doc.CreateElement("head")
	body := doc.CreateElement("body")
	for _, step := range [][2]*dom.Node{{doc.Node(), html}, {html, head}, {html, body}} {
		if _, err := step[0].AppendChild(step[1]); err != nil {
			t.Fatal(err)
		}
	}
	return doc, head, body
}

func TestCacheExtractsLazily(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "dom.style")
	defer teardown()
	//
	doc, head, body := page(t)
	calls := 0
	cache := NewCache(doc, extractor(&calls))
	defer cache.Close()
	if calls != 0 {
		t.Errorf("expected no extraction before first request")
	}
	style := doc.CreateElement("style")
	style.AppendChild(doc.CreateTextNode("p { color: red }"))
	head.AppendChild(style)
	if n := len(cache.StyleSheets()); n != 1 || calls != 1 {
		t.Fatalf("expected 1 sheet from 1 extraction, have %d from %d", n, calls)
	}
	cache.StyleSheets()
	body.AppendChild(doc.CreateElement("p"))
	cache.StyleSheets()
	if calls != 1 {
		t.Errorf("expected cached sheets to be re-used, have %d extractions", calls)
	}
}

func TestCacheInvalidation(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "dom.style")
	defer teardown()
	//
	doc, head, body := page(t)
	style := doc.CreateElement("style")
	text := doc.CreateTextNode("p { color: red }")
	style.AppendChild(text)
	head.AppendChild(style)
	calls := 0
	cache := NewCache(doc, extractor(&calls))
	cache.StyleSheets()
	//
	text.SetData("p { color: blue }")
	sheets := cache.StyleSheets()
	if calls != 2 || sheets[0].(*fakeSheet).text != "p { color: blue }" {
		t.Errorf("expected text change to invalidate sheets, have %d extractions", calls)
	}
	// a subtree containing a style element
	div := doc.CreateElement("div")
	div.AppendChild(doc.CreateElement("style"))
	body.AppendChild(div)
	if n := len(cache.StyleSheets()); n != 2 || calls != 3 {
		t.Errorf("expected 2 sheets after insertion, have %d", n)
	}
	style.Remove()
	if n := len(cache.StyleSheets()); n != 1 || calls != 4 {
		t.Errorf("expected 1 sheet after removal, have %d", n)
	}
	cache.Close()
	div.Remove()
	if len(doc.Node().ChangeListeners()) != 0 || len(doc.Node().DataListeners()) != 0 {
		t.Errorf("expected closed cache to unregister its listeners")
	}
}

func TestMatchingRules(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "dom.style")
	defer teardown()
	//
	sheets := []StyleSheet{&ruleSheet{rules: []Rule{rule("p"), rule("div"), rule("p.x")}}}
	p := dom.NewElement("p")
	rules := MatchingRules(p, sheets, func(sel string, n *dom.Node) bool {
		return sel == n.LocalName()
	})
	if len(rules) != 1 || rules[0].Selector() != "p" {
		t.Errorf("expected rule for 'p', have %v", rules)
	}
}

type rule string

func (r rule) Selector() string        { return string(r) }
func (r rule) Properties() []string    { return nil }
func (r rule) Value(string) string     { return "" }
func (r rule) IsImportant(string) bool { return false }

type ruleSheet struct{ rules []Rule }

func (s *ruleSheet) AppendRules(other StyleSheet) { s.rules = append(s.rules, other.Rules()...) }
func (s *ruleSheet) Empty() bool                  { return len(s.rules) == 0 }
func (s *ruleSheet) Rules() []Rule                { return s.rules }
