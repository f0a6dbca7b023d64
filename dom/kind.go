package dom

// Kind is the type of a DOM node. The set of kinds is closed.
type Kind uint8

// Node kinds. Values are those of W3C DOM's node types.
const (
	ElementKind               Kind = 1
	TextKind                  Kind = 3
	CDATAKind                 Kind = 4
	ProcessingInstructionKind Kind = 7
	CommentKind               Kind = 8
	DocumentKind              Kind = 9
	DocumentTypeKind          Kind = 10
	FragmentKind              Kind = 11
)

func (k Kind) String() string {
	if d, ok := kinds[k]; ok {
		return d.label
	}
	return "<unknown kind>"
}

// IsCharacterData is true for kinds carrying character data as their value.
func (k Kind) IsCharacterData() bool {
	return kinds[k].charData
}

// Accepts is true if a node of kind k may hold a child of kind child.
func (k Kind) Accepts(child Kind) bool {
	return kinds[k].accepts&kindBit(child) != 0
}

// kindDescriptor is an entry of the dispatch table for node kinds.
type kindDescriptor struct {
	label    string
	name     string // fixed node name, if any
	charData bool
	accepts  uint16 // bit set of accepted child kinds
}

func kindBit(k Kind) uint16 {
	return 1 << uint16(k)
}

func kindSet(ks ...Kind) uint16 {
	var set uint16
	for _, k := range ks {
		set |= kindBit(k)
	}
	return set
}

// content is the set of kinds which may appear inside elements and fragments.
var content = kindSet(ElementKind, TextKind, CDATAKind, ProcessingInstructionKind, CommentKind)

var kinds = map[Kind]kindDescriptor{
	ElementKind:               {label: "Element", accepts: content},
	TextKind:                  {label: "Text", name: "#text", charData: true},
	CDATAKind:                 {label: "CDATA", name: "#cdata-section", charData: true},
	ProcessingInstructionKind: {label: "ProcessingInstruction", charData: true},
	CommentKind:               {label: "Comment", name: "#comment", charData: true},
	DocumentKind: {label: "Document", name: "#document",
		accepts: kindSet(ElementKind, ProcessingInstructionKind, CommentKind, DocumentTypeKind)},
	DocumentTypeKind: {label: "DocumentType"},
	FragmentKind:     {label: "DocumentFragment", name: "#document-fragment", accepts: content},
}

// ReadyState is the legacy readiness marker of a node.
type ReadyState uint8

// Ready states of a node. Nodes are created in state Loading.
const (
	Uninitialized ReadyState = iota
	Loading
	Loaded
	Interactive
	Complete
)

func (r ReadyState) String() string {
	switch r {
	case Uninitialized:
		return "uninitialized"
	case Loading:
		return "loading"
	case Loaded:
		return "loaded"
	case Interactive:
		return "interactive"
	case Complete:
		return "complete"
	}
	return "<unknown ready state>"
}
