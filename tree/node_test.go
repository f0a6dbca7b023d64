package tree

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

// build creates a parent with children named by payloads.
func build(payload string, children ...string) (*Node[string], []*Node[string]) {
	parent := NewNode(payload)
	var chs []*Node[string]
	for _, p := range children {
		ch := NewNode(p)
		parent.AppendChild(ch)
		chs = append(chs, ch)
	}
	return parent, chs
}

func payloads(node *Node[string]) []string {
	var s []string
	for ch := node.FirstChild(); ch != nil; ch = ch.NextSibling() {
		s = append(s, ch.Payload)
	}
	return s
}

func checkLinks(t *testing.T, node *Node[string]) {
	t.Helper()
	if err := node.Verify(); err != nil {
		t.Fatalf("link structure broken: %v", err)
	}
}

func equalStrings(a, b []string) bool {
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

func TestAppendSingleChild(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "dom.tree")
	defer teardown()
	//
	parent, chs := build("div", "span")
	checkLinks(t, parent)
	if parent.FirstChild() != chs[0] || parent.LastChild() != chs[0] {
		t.Errorf("expected single child to be first and last child, isn't")
	}
	if chs[0].prevSibling != chs[0] {
		t.Errorf("expected tail link of single child to point to itself")
	}
	if chs[0].PreviousSibling() != nil {
		t.Errorf("expected first child to have no visible previous sibling")
	}
}

func TestAppendTailLink(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "dom.tree")
	defer teardown()
	//
	parent, chs := build("div", "span", "b")
	checkLinks(t, parent)
	if parent.LastChild() != chs[1] {
		t.Errorf("expected last child to be 'b', is %v", parent.LastChild())
	}
	if chs[0].prevSibling != chs[1] || chs[1].NextSibling() != nil {
		t.Errorf("expected first child to link to last child")
	}
	chs[0].Isolate()
	checkLinks(t, parent)
	if parent.FirstChild() != chs[1] || parent.LastChild() != chs[1] {
		t.Errorf("expected 'b' to be first and last child after removal of 'span'")
	}
}

func TestInsertBefore(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "dom.tree")
	defer teardown()
	//
	parent, chs := build("p", "a", "c")
	b := NewNode("b")
	chs[1].InsertBefore(b)
	checkLinks(t, parent)
	z := NewNode("z")
	chs[0].InsertBefore(z)
	checkLinks(t, parent)
	if got := payloads(parent); !equalStrings(got, []string{"z", "a", "b", "c"}) {
		t.Errorf("expected children z a b c, have %v", got)
	}
	if z.PreviousSibling() != nil || b.PreviousSibling() != chs[0] {
		t.Errorf("previous sibling links are broken")
	}
}

func TestIsolateMiddleAndLast(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "dom.tree")
	defer teardown()
	//
	parent, chs := build("p", "a", "b", "c", "d")
	chs[1].Isolate()
	checkLinks(t, parent)
	chs[3].Isolate()
	checkLinks(t, parent)
	if got := payloads(parent); !equalStrings(got, []string{"a", "c"}) {
		t.Errorf("expected children a c, have %v", got)
	}
	if chs[1].Parent() != nil || chs[1].NextSibling() != nil || chs[1].prevSibling != nil {
		t.Errorf("expected isolated node to have no links")
	}
	chs[0].Isolate()
	chs[2].Isolate()
	if parent.HasChildren() || parent.LastChild() != nil {
		t.Errorf("expected parent to be empty")
	}
}

func TestAppendRemoveRoundTrip(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "dom.tree")
	defer teardown()
	//
	for n := 0; n < 4; n++ {
		var names []string
		for i := 0; i < n; i++ {
			names = append(names, string(rune('a'+i)))
		}
		parent, _ := build("p", names...)
		before := payloads(parent)
		x := NewNode("x")
		parent.AppendChild(x)
		x.Isolate()
		checkLinks(t, parent)
		if !equalStrings(before, payloads(parent)) {
			t.Errorf("round trip with %d children changed sequence to %v", n, payloads(parent))
		}
	}
}

func TestMoveChildrenTo(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "dom.tree")
	defer teardown()
	//
	src, _ := build("src", "a", "b")
	dst, _ := build("dst", "x")
	src.MoveChildrenTo(dst)
	checkLinks(t, src)
	checkLinks(t, dst)
	if src.HasChildren() {
		t.Errorf("expected source to be empty")
	}
	if got := payloads(dst); !equalStrings(got, []string{"x", "a", "b"}) {
		t.Errorf("expected x a b, have %v", got)
	}
}

func TestChildAccess(t *testing.T) {
	parent, chs := build("p", "a", "b", "c")
	if parent.ChildCount() != 3 {
		t.Errorf("expected 3 children, have %d", parent.ChildCount())
	}
	if ch, ok := parent.Child(2); !ok || ch != chs[2] {
		t.Errorf("expected child #2 to be 'c'")
	}
	if _, ok := parent.Child(3); ok {
		t.Errorf("did not expect child #3")
	}
	if parent.IndexOfChild(chs[1]) != 1 {
		t.Errorf("expected index of 'b' to be 1")
	}
	if parent.IndexOfChild(parent) != -1 {
		t.Errorf("expected index of non-child to be -1")
	}
}

func TestAncestry(t *testing.T) {
	root, chs := build("root", "a")
	leaf := NewNode("leaf")
	chs[0].AppendChild(leaf)
	chain := leaf.Ancestors()
	if len(chain) != 3 || chain[0] != root || chain[2] != leaf {
		t.Errorf("unexpected ancestor chain %v", chain)
	}
	if !root.IsAncestorOf(leaf) || leaf.IsAncestorOf(root) || leaf.IsAncestorOf(leaf) {
		t.Errorf("ancestor relation broken")
	}
	if leaf.Root() != root {
		t.Errorf("expected root of leaf to be root")
	}
}

func TestAppendLinkedNodePanics(t *testing.T) {
	_, chs := build("p", "a")
	other := NewNode("other")
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("expected append of linked node to panic")
		}
	}()
	other.AppendChild(chs[0])
}
