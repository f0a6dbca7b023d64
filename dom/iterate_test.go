package dom

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

// createPage builds
//
//     html
//       body
//         div
//           p  "para"
//           <!-- note -->
//         ul
//           li
//           li
func createPage(t *testing.T) (*Document, map[string]*Node) {
	doc := NewDocument()
	m := make(map[string]*Node)
	el := func(parent *Node, name string) *Node {
		n := mustAppend(t, parent, doc.CreateElement(name))
		m[name] = n
		return n
	}
	html := el(doc.Node(), "html")
	body := el(html, "body")
	div := el(body, "div")
	p := el(div, "p")
	m["text"] = mustAppend(t, p, doc.CreateTextNode("para"))
	m["comment"] = mustAppend(t, div, doc.CreateComment("note"))
	ul := el(body, "ul")
	m["li1"] = mustAppend(t, ul, doc.CreateElement("li"))
	m["li2"] = mustAppend(t, ul, doc.CreateElement("li"))
	return doc, m
}

func collectNames(it *DescendantIterator) []string {
	var s []string
	for it.Next() {
		s = append(s, it.Node().NodeName())
	}
	return s
}

func equalStrings(a []string, b ...string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestNavigation(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "dom.core")
	defer teardown()
	//
	doc, m := createPage(t)
	body := m["body"]
	if body.FirstChild() != m["div"] || body.LastChild() != m["ul"] {
		t.Errorf("unexpected children of <body>")
	}
	if m["ul"].PreviousSibling() != m["div"] || m["div"].NextSibling() != m["ul"] {
		t.Errorf("unexpected sibling links")
	}
	if m["div"].PreviousSibling() != nil || m["ul"].NextSibling() != nil {
		t.Errorf("expected no siblings at the ends of the list")
	}
	if m["li2"].RootNode() != doc.Node() {
		t.Errorf("expected document node as root")
	}
	if !equalNames(m["li1"].Ancestors(), "#document", "html", "body", "ul") {
		t.Errorf("unexpected ancestors %v", names(m["li1"].Ancestors()))
	}
	if !body.Contains(body) || !body.Contains(m["text"]) || body.IsAncestorOf(body) {
		t.Errorf("unexpected containment")
	}
	if m["ul"].Contains(m["p"]) {
		t.Errorf("expected <ul> not to contain <p>")
	}
}

func TestChildIterator(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "dom.core")
	defer teardown()
	//
	_, m := createPage(t)
	it := m["div"].Children()
	var s []string
	for it.Next() {
		s = append(s, it.Node().NodeName())
	}
	if !equalStrings(s, "p", "#comment") {
		t.Errorf("unexpected children %v", s)
	}
	it.Reset()
	if !it.Next() || it.Node() != m["p"] {
		t.Errorf("expected iteration to restart")
	}
}

func TestChildIteratorRemove(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "dom.core")
	defer teardown()
	//
	doc, m := createPage(t)
	r := &recorder{}
	doc.Node().AddChangeListener(r)
	ul := m["ul"]
	it := ul.Children()
	n := 0
	for it.Next() {
		n++
		it.Remove()
	}
	checkTree(t, ul)
	if n != 2 || ul.HasChildNodes() {
		t.Errorf("expected iterator to remove all %d children", n)
	}
	if len(r.deleted) != 2 || m["li1"].Attached() {
		t.Errorf("expected removal via iterator to notify and detach")
	}
}

func TestDescendantsDocumentOrder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "dom.core")
	defer teardown()
	//
	doc, m := createPage(t)
	s := collectNames(doc.Node().Descendants(AnyNode))
	if !equalStrings(s, "html", "body", "div", "p", "#text", "#comment", "ul", "li", "li") {
		t.Errorf("unexpected order %v", s)
	}
	s = collectNames(m["body"].Descendants(Elements))
	if !equalStrings(s, "div", "p", "ul", "li", "li") {
		t.Errorf("unexpected elements %v", s)
	}
	s = collectNames(m["body"].Descendants(ElementsNamed("LI")))
	if len(s) != 0 {
		t.Errorf("expected rejected <div>, <ul> to prune their subtrees, have %v", s)
	}
	s = collectNames(m["body"].Descendants(KindIs(ElementKind, CommentKind)))
	if !equalStrings(s, "div", "p", "#comment", "ul", "li", "li") {
		t.Errorf("unexpected nodes %v", s)
	}
	if collectNames(m["li1"].Descendants(AnyNode)) != nil {
		t.Errorf("expected leaf to have no descendants")
	}
}

func TestDescendantsSkipAndRemove(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "dom.core")
	defer teardown()
	//
	doc, m := createPage(t)
	it := m["body"].Descendants(Elements)
	var s []string
	for it.Next() {
		s = append(s, it.Node().NodeName())
		if it.Node() == m["div"] {
			it.Remove()
		}
	}
	checkTree(t, doc.Node())
	if !equalStrings(s, "div", "ul", "li", "li") {
		t.Errorf("expected subtree of removed node to be skipped, have %v", s)
	}
	if m["div"].Parent() != nil || m["p"].Attached() {
		t.Errorf("expected <div> to be removed")
	}
	it.Reset()
	it.Next()
	it.SkipChildren()
	if it.Next() {
		t.Errorf("expected no more nodes after skipping <ul>, have %v", it.Node())
	}
}

func TestComparePosition(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "dom.core")
	defer teardown()
	//
	doc := NewDocument()
	p := doc.CreateElement("p")
	x := mustAppend(t, p, doc.CreateElement("x"))
	y := mustAppend(t, p, doc.CreateElement("y"))
	z := mustAppend(t, p, doc.CreateElement("z"))
	if x.ComparePosition(z) != Following {
		t.Errorf("expected z to follow x, have %v", x.ComparePosition(z))
	}
	if z.ComparePosition(x) != Preceding {
		t.Errorf("expected x to precede z, have %v", z.ComparePosition(x))
	}
	if x.ComparePosition(y) != Following || y.ComparePosition(z) != Following {
		t.Errorf("expected order x, y, z")
	}
	if p.ComparePosition(y) != ContainedBy|Following {
		t.Errorf("expected y to be contained by p, have %v", p.ComparePosition(y))
	}
	if y.ComparePosition(p) != Contains|Preceding {
		t.Errorf("expected p to contain y, have %v", y.ComparePosition(p))
	}
	if y.ComparePosition(y) != Same {
		t.Errorf("expected node to be at the same position as itself")
	}
	if y.ComparePosition(doc.CreateElement("q")) != Disconnected || y.ComparePosition(nil) != Disconnected {
		t.Errorf("expected nodes of different trees to be disconnected")
	}
}
