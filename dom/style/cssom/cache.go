package cssom

import (
	"github.com/npillmayer/domcore/dom"
)

// Cache holds the style sheets embedded in a document. It registers
// listeners with the document and drops its style sheets whenever a
// <style> element is inserted, removed or its text changes.
//
// A cache has to be closed to unregister its listeners.
type Cache struct {
	root    *dom.Node
	extract Extractor
	sheets  []StyleSheet
	valid   bool
	changes *dom.ChangeListenerFuncs
	data    dom.DataListener
}

// NewCache creates a style sheet cache for a document.
func NewCache(doc *dom.Document, extract Extractor) *Cache {
	c := &Cache{root: doc.Node(), extract: extract}
	c.changes = &dom.ChangeListenerFuncs{
		Added:   c.structureChanged,
		Deleted: c.structureChanged,
	}
	c.data = dom.DataListenerFunc(func(e dom.DataChangeEvent) {
		if IsStyleElement(e.Node.Parent()) {
			c.invalidate(e.Node)
		}
	})
	c.root.AddChangeListener(c.changes)
	c.root.AddDataListener(c.data)
	return c
}

// StyleSheets returns the style sheets of the document, extracting them if
// necessary. The slice must not be modified.
func (c *Cache) StyleSheets() []StyleSheet {
	if !c.valid {
		c.sheets = c.extract(c.root)
		c.valid = true
		tracer().Debugf("extracted %d style sheets", len(c.sheets))
	}
	return c.sheets
}

// Close unregisters the cache from the document.
func (c *Cache) Close() {
	c.root.RemoveChangeListener(c.changes)
	c.root.RemoveDataListener(c.data)
	c.sheets, c.valid = nil, false
}

func (c *Cache) structureChanged(e dom.ChangeEvent) {
	if IsStyleElement(e.Parent) || IsStyleElement(e.Node) ||
		dom.SelectFirst(e.Node, dom.Elements, IsStyleElement) != nil {
		c.invalidate(e.Node)
	}
}

func (c *Cache) invalidate(cause *dom.Node) {
	if c.valid {
		tracer().Debugf("style sheets invalidated by change of %v", cause)
	}
	c.sheets, c.valid = nil, false
}
