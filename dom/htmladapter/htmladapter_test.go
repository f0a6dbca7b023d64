package htmladapter

import (
	"bytes"
	"strings"
	"testing"

	"github.com/npillmayer/domcore/dom"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

var myhtml = `<!DOCTYPE html>
<html><head><title>Test</title></head>
<body>
  <p id="intro" class="lead">Hello <b>World</b>!</p>
  <!-- remark -->
  <svg><circle r="1"/></svg>
</body>
</html>
`

func TestParse(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "dom.adapter")
	defer teardown()
	//
	doc := dom.NewDocument()
	err := Parse(doc, strings.NewReader(myhtml))
	require.NoError(t, err)
	root := doc.Node()
	require.Equal(t, dom.DocumentTypeKind, root.FirstChild().Kind())
	top := doc.DocumentElement()
	require.NotNil(t, top)
	assert.Equal(t, atom.Html, top.DataAtom())
	p := doc.ElementByID("intro")
	require.NotNil(t, p, "expected <p id=intro> to be indexed")
	assert.True(t, p.Attached())
	assert.Equal(t, "Hello World!", p.TextContent())
	class, ok := p.Attr("class")
	assert.True(t, ok)
	assert.Equal(t, "lead", class)
	circle := dom.Query(root).Matching(func(n *dom.Node) bool {
		return n.LocalName() == "circle"
	}).First()
	require.NotNil(t, circle)
	assert.Equal(t, "svg", circle.Namespace())
	assert.Equal(t, dom.Complete, root.ReadyState())
}

func TestBuildSubtree(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "dom.adapter")
	defer teardown()
	//
	doc := dom.NewDocument()
	h := &html.Node{Type: html.ElementNode, Data: "ul", DataAtom: atom.Ul}
	h.AppendChild(&html.Node{Type: html.ElementNode, Data: "li", DataAtom: atom.Li})
	h.AppendChild(&html.Node{Type: html.TextNode, Data: "x"})
	n, err := Build(doc, h)
	require.NoError(t, err)
	assert.False(t, n.Attached())
	assert.Nil(t, n.Parent())
	assert.Equal(t, 2, n.ChildCount())
	assert.Equal(t, doc, n.OwnerDocument())
	_, err = Build(doc, &html.Node{Type: html.ErrorNode})
	assert.Error(t, err)
}

func TestParseFragment(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "dom.adapter")
	defer teardown()
	//
	doc := dom.NewDocument()
	require.NoError(t, Parse(doc, strings.NewReader(myhtml)))
	p := doc.ElementByID("intro")
	frag, err := ParseFragment(p, strings.NewReader("<i>a</i>b"))
	require.NoError(t, err)
	assert.Equal(t, dom.FragmentKind, frag.Kind())
	assert.Equal(t, 2, frag.ChildCount())
	_, err = p.AppendChild(frag)
	require.NoError(t, err)
	assert.Equal(t, "Hello World!ab", p.TextContent())
	_, err = ParseFragment(dom.NewText("x"), strings.NewReader("x"))
	assert.ErrorIs(t, err, dom.ErrHierarchy)
}

func TestMirror(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "dom.adapter")
	defer teardown()
	//
	doc := dom.NewDocument()
	require.NoError(t, Parse(doc, strings.NewReader(myhtml)))
	p := doc.ElementByID("intro")
	m := Mirror(p)
	h := m.HTMLNode(p)
	require.NotNil(t, h)
	assert.Equal(t, html.ElementNode, h.Type)
	assert.Equal(t, atom.P, h.DataAtom)
	assert.Equal(t, html.DocumentNode, m.Root().Type, "mirror should start at the document")
	assert.Equal(t, p, m.DOMNode(h))
	assert.Equal(t, p.Parent(), m.DOMNode(h.Parent))
}

func TestRender(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "dom.adapter")
	defer teardown()
	//
	doc := dom.NewDocument()
	div := doc.CreateElement("div")
	div.SetAttr("class", "x")
	b := doc.CreateElement("b")
	_, _ = b.AppendChild(doc.CreateTextNode("bold"))
	_, _ = div.AppendChild(b)
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, div))
	assert.Equal(t, `<div class="x"><b>bold</b></div>`, buf.String())
}
