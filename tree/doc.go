/*
Package tree implements a general purpose tree of mutable nodes.

Nodes are linked intrusively: every node knows its parent, its first child and
its two siblings. There is no explicit last-child field. The previous-sibling
link of a first child points to the last child of the same parent, which makes
appending an O(1) operation. Clients should never have to care about this, as
the link fields are unexported and PreviousSibling hides the wrap-around.

The package offers raw link operations (AppendChild, InsertBefore, Isolate),
lazy iteration (ChildIterator, DescendantIterator) and the computation of
document order between two nodes (ComparePosition). It does not check any
higher-level constraints like node kinds; this is left to clients building
on top of Node, e.g. package dom.

Iteration

Iterators are lazy and need no auxiliary storage:

   it := node.Descendants(func(payload T) bool { return isInteresting(payload) })
   for it.Next() {
       n := it.Node()
       ...
   }

Descendant iteration is pre-order. A node rejected by the filter is skipped
together with its subtree.

Concurrency

Trees are not synchronized. A tree is mutated by one goroutine at a time;
independent trees may be used concurrently.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package tree

import (
	"fmt"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'dom.tree'.
func tracer() tracing.Trace {
	return tracing.Select("dom.tree")
}

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = fmt.Sprintf("tree: "+msg, msgargs...)
		tracer().Errorf(msg)
		panic(msg)
	}
}
