package alloc

// EntryInfo describes one live allocation during a Walk: the provenance
// captured when it was created, the handle to its memory, and the
// original size triple.
type EntryInfo struct {
	Label string
	File  string
	Func  string
	Line  int
	Stamp float64
	Block *Block
	Head  int
	Count int
	Size  int
}

// VisitFunc folds an accumulator over registry entries. It receives the
// accumulator from the previous step and returns the next one.
type VisitFunc func(acc any, info EntryInfo) any
