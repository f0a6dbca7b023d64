package dom

// Clone creates a copy of n. The copy is of the same kind and content as n
// and belongs to the same document, but it has no parent, no siblings and no
// scriptable peer, and it is not attached. Listeners are not copied.
// Attributes and user data are copied into containers of their own.
//
// If deep is true, all descendants of n are cloned as well and appended to
// the copy in order. Otherwise the copy has no children.
func (n *Node) Clone(deep bool) *Node {
	c := newNode(n.kind, n.owner)
	c.name = n.name
	c.atom = n.atom
	c.namespace = n.namespace
	c.data = n.data
	c.attrs = n.Attrs()
	c.span = n.span
	c.ready = n.ready
	if len(n.userData) > 0 {
		c.userData = make(map[string]interface{}, len(n.userData))
		for k, v := range n.userData {
			c.userData[k] = v
		}
	}
	if !deep {
		return c
	}
	for ch := n.FirstChild(); ch != nil; ch = ch.NextSibling() {
		_, err := c.AppendChild(ch.Clone(true))
		assertThat(err == nil, "cloning %v: %v", ch, err)
	}
	return c
}
