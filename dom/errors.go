package dom

import "errors"

// Errors for tree mutations. Mutating operations either succeed or fail
// before any change to the tree is applied.
var (
	// ErrHierarchy is returned for insertions which would create a cycle or
	// place a node under a parent of a kind which cannot hold it.
	ErrHierarchy = errors.New("hierarchy request error")

	// ErrWrongDocument is returned if a node belongs to a different document
	// than the tree it is to be inserted into.
	ErrWrongDocument = errors.New("wrong document error")

	// ErrNotFound is returned if a reference node is not a child of the node
	// it is claimed to belong to.
	ErrNotFound = errors.New("not found error")

	// ErrIndexSize is returned for offsets outside of a node's character data.
	ErrIndexSize = errors.New("index size error")
)
