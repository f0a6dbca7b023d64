package dom

import (
	"errors"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestTextContent(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "dom.core")
	defer teardown()
	//
	doc, m := createPage(t)
	mustAppend(t, m["li1"], doc.CreateTextNode("one"))
	mustAppend(t, m["li2"], doc.CreateCDATASection("two"))
	if s := m["body"].TextContent(); s != "paraonetwo" {
		t.Errorf("expected text of <body> to be 'paraonetwo', is %q", s)
	}
	if s := m["comment"].TextContent(); s != "note" {
		t.Errorf("expected comment text 'note', is %q", s)
	}
	if s := doc.Node().TextContent(); s != "" {
		t.Errorf("expected document to have no text content, has %q", s)
	}
	m["ul"].SetTextContent("replaced")
	checkTree(t, m["ul"])
	if m["ul"].ChildCount() != 1 || m["ul"].FirstChild().Kind() != TextKind || m["li1"].Attached() {
		t.Errorf("expected children of <ul> to be replaced by a text node")
	}
	m["ul"].SetTextContent("")
	if m["ul"].HasChildNodes() {
		t.Errorf("expected empty text content to remove all children")
	}
}

func normalizeFixture(t *testing.T, doc *Document) *Node {
	p := doc.CreateElement("p")
	mustAppend(t, p, doc.CreateTextNode("a"))
	mustAppend(t, p, doc.CreateTextNode(""))
	mustAppend(t, p, doc.CreateTextNode("b"))
	em := mustAppend(t, p, doc.CreateElement("em"))
	mustAppend(t, em, doc.CreateTextNode(""))
	mustAppend(t, p, doc.CreateTextNode("c"))
	mustAppend(t, p, doc.CreateTextNode("d"))
	return p
}

func TestNormalizeMerges(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "dom.core")
	defer teardown()
	//
	doc := NewDocument()
	p := normalizeFixture(t, doc)
	var events int
	p.AddDataListener(DataListenerFunc(func(DataChangeEvent) { events++ }))
	p.Normalize()
	checkTree(t, p)
	if !equalNames(p.ChildNodes(), "#text", "em", "#text") {
		t.Fatalf("unexpected children %v", names(p.ChildNodes()))
	}
	if p.FirstChild().Data() != "ab" || p.LastChild().Data() != "cd" {
		t.Errorf("expected merged text, have %q and %q", p.FirstChild().Data(), p.LastChild().Data())
	}
	if p.FirstChild().NextSibling().HasChildNodes() {
		t.Errorf("expected empty text to be removed from <em>")
	}
	if events != 2 {
		t.Errorf("expected 2 data change events for merges, have %d", events)
	}
}

func TestNormalizeKeepsFirstText(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "dom.core")
	defer teardown()
	//
	doc := NewDocument()
	doc.SetFeatures(FeatureSet{FeatureNormalizeKeepsFirstText: true})
	p := normalizeFixture(t, doc)
	p.Normalize()
	checkTree(t, p)
	if !equalNames(p.ChildNodes(), "#text", "em", "#text") {
		t.Fatalf("unexpected children %v", names(p.ChildNodes()))
	}
	if p.FirstChild().Data() != "a" || p.LastChild().Data() != "c" {
		t.Errorf("expected first texts to be kept, have %q and %q", p.FirstChild().Data(), p.LastChild().Data())
	}
}

func TestSplitText(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "dom.core")
	defer teardown()
	//
	doc, body := newPage()
	text := mustAppend(t, body, doc.CreateTextNode("Grüße, Welt"))
	mustAppend(t, body, doc.CreateElement("hr"))
	rest, err := text.SplitText(5)
	if err != nil {
		t.Fatal(err)
	}
	checkTree(t, body)
	if text.Data() != "Grüße" || rest.Data() != ", Welt" {
		t.Errorf("unexpected split %q | %q", text.Data(), rest.Data())
	}
	if text.NextSibling() != rest || !rest.Attached() {
		t.Errorf("expected new text node to follow the split node")
	}
	if _, err := text.SplitText(99); !errors.Is(err, ErrIndexSize) {
		t.Errorf("expected ErrIndexSize, got %v", err)
	}
	orphan := NewText("abc")
	if r, err := orphan.SplitText(1); err != nil || r.Data() != "bc" || r.Parent() != nil {
		t.Errorf("expected orphan text to be split without a parent")
	}
}

func TestIsEqualNode(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "dom.core")
	defer teardown()
	//
	a := NewElement("a")
	a.SetAttr("href", "x")
	a.SetAttr("title", "y")
	b := NewElement("a")
	b.SetAttr("title", "y")
	b.SetAttr("href", "x")
	if !a.IsEqualNode(b) {
		t.Errorf("expected attribute order not to matter")
	}
	mustAppend(t, b, NewText("t"))
	if a.IsEqualNode(b) || a.IsEqualNode(nil) {
		t.Errorf("expected nodes with different children to differ")
	}
}
