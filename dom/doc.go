/*
Package dom implements the document tree of our browser engine.

Status

Early draft: API may change frequently. Please stay patient.

Overview

A document tree is made of nodes of a small, closed set of kinds: elements,
character data (text, CDATA sections, comments, processing instructions),
document types, document fragments and documents. Every tree produced by
a parser or built by clients is rooted in a Document node. Higher layers
(styling, selectors, XPath, scripting) are built on top of the operations
offered here: mutation, navigation, cloning and change notification.

Tree Implementation

Styling and layout of HTML/CSS involves a lot of operations on different trees.
We implement the DOM on top of a general purpose tree type (package tree),
which links nodes intrusively and offers lazy iteration.

In a fully object oriented programming language we would subclass the tree
node type for every kind of DOM node, but in Go we resort to composition,
thus including a generic tree node in every DOM node. Kind specific behaviour
is driven by a dispatch table, not by sub-typing.

Attachment

A node is attached if it is reachable from its document's root. Inserting a
subtree into an attached parent attaches the whole subtree, removing it
detaches it. Clients may register lifecycle hooks per node kind with the
document to get informed about nodes being added to the page.

Change Notification

Nodes carry two lazily created listener registries: one for structural changes
(children added or removed) and one for changes of character data. Events
bubble from the changed node up to the root, thus a listener registered with
the document sees every change in the tree.

Concurrency

A document tree is mutated by one goroutine at a time; there is no internal
locking. Independent documents may be used concurrently, as they never share
nodes.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package dom

import (
	"fmt"

	"github.com/npillmayer/schuko/tracing"
)

// tracer will return a tracer. We are tracing to 'dom.core'
func tracer() tracing.Trace {
	return tracing.Select("dom.core")
}

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = fmt.Sprintf("dom: "+msg, msgargs...)
		tracer().Errorf(msg)
		panic(msg)
	}
}
