package expr

// This file deals with the storage of expressions.
// Lots of nodes are created and none is ever freed before the end of the search,
// so nodes are stored in big preallocated chunks, to relax the GC's work.
// A chunk is never reallocated once created, so nodes never move.

const (
	chunkBits = 16             // log2 of the # of nodes in a chunk
	chunkSize = 1 << chunkBits // How many nodes are allocated at once?
)

// An Arena is an append-only store of nodes.
// Children of a node are always added before it, so the arena is a DAG
// whose references only point backwards.
//
// Add must not be called concurrently with any other method.
// Once no more Add is in progress, all other methods are safe for concurrent use.
type Arena struct {
	chunks [][]Node
	size   int      // Total # of nodes
	names  []string // Names of the input variables
}

// NewArena returns an empty arena. names are the names of the input variables,
// used when rendering Variable nodes.
func NewArena(names []string) *Arena {
	return &Arena{names: names}
}

// Add stores n and returns its reference.
func (a *Arena) Add(n Node) Ref {
	if a.size%chunkSize == 0 {
		a.chunks = append(a.chunks, make([]Node, chunkSize))
	}
	ref := Ref(a.size)
	a.chunks[a.size>>chunkBits][a.size&(chunkSize-1)] = n
	a.size++
	return ref
}

// Get returns the node associated with r.
func (a *Arena) Get(r Ref) Node {
	if int(r) >= a.size {
		panic("invalid node reference")
	}
	return a.chunks[r>>chunkBits][r&(chunkSize-1)]
}

// Len returns the number of nodes in the arena.
func (a *Arena) Len() int {
	return a.size
}

// Names returns the names of the input variables.
func (a *Arena) Names() []string {
	return a.names
}
