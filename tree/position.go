package tree

import "strings"

// Position describes the position of a node relative to a reference node in
// document order. Values are compatible with W3C DOM's
// Node.compareDocumentPosition bit masks. Containment is always combined with
// either Preceding or Following.
type Position uint16

// Positions of a node relative to another node.
const (
	Same         Position = 0x00
	Disconnected Position = 0x01
	Preceding    Position = 0x02
	Following    Position = 0x04
	Contains     Position = 0x08
	ContainedBy  Position = 0x10
)

// Has is true if all the bits of q are set in p.
func (p Position) Has(q Position) bool {
	return p&q == q
}

func (p Position) String() string {
	if p == Same {
		return "Same"
	}
	var parts []string
	for _, pos := range []struct {
		p    Position
		name string
	}{
		{Disconnected, "Disconnected"},
		{Preceding, "Preceding"},
		{Following, "Following"},
		{Contains, "Contains"},
		{ContainedBy, "ContainedBy"},
	} {
		if p.Has(pos.p) {
			parts = append(parts, pos.name)
		}
	}
	return strings.Join(parts, "|")
}

// ComparePosition returns the position of b relative to a in document order.
//
//     Following               b comes after a
//     Preceding               b comes before a
//     Contains|Preceding      b is an ancestor of a
//     ContainedBy|Following   b is a descendant of a
//     Disconnected            a and b live in different trees
//
// The comparison walks the ancestor chains of both nodes and is O(depth).
func ComparePosition[T comparable](a, b *Node[T]) Position {
	if a == b {
		return Same
	}
	if a == nil || b == nil {
		return Disconnected
	}
	chainA, chainB := a.Ancestors(), b.Ancestors()
	k := 0
	for k < len(chainA) && k < len(chainB) && chainA[k] == chainB[k] {
		k++
	}
	switch {
	case k == 0:
		return Disconnected
	case k == len(chainA): // a is an ancestor of b
		return ContainedBy | Following
	case k == len(chainB): // b is an ancestor of a
		return Contains | Preceding
	}
	// chainA[k] and chainB[k] are siblings with a common parent
	branchA, branchB := chainA[k], chainB[k]
	for sibling := branchB.PreviousSibling(); sibling != nil; sibling = sibling.PreviousSibling() {
		if sibling == branchA {
			return Following
		}
	}
	return Preceding
}
