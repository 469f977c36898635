package alloc

import "math"

// Request describes one allocation operation: the size triple, plus the
// provenance attached to it for diagnostics. Head may be zero; Count and
// Size must be non-negative.
type Request struct {
	Label string  // display label for the object, may be empty
	File  string  // originating source file
	Func  string  // originating function
	Line  int     // originating line
	Stamp float64 // seconds since the owning context started

	Head  int // header bytes preceding the array
	Count int // number of array units
	Size  int // bytes per unit
}

// Total returns the number of user bytes the request describes,
// Head + Count*Size.
func (r Request) Total() int {
	return r.Head + r.Count*r.Size
}

// valid reports whether the dimensions are non-negative and the total
// cannot overflow.
func (r Request) valid() bool {
	if r.Head < 0 || r.Count < 0 || r.Size < 0 {
		return false
	}
	if r.Size > 0 && r.Count > (math.MaxInt-r.Head)/r.Size {
		return false
	}
	return true
}

// Block is an opaque handle to memory obtained through an Allocator.
//
// A Block released through Allocate, or superseded by a moving resize,
// must not be used again; the resize returns the replacement handle.
type Block struct {
	data []byte
	ent  *entry // set by the tracking backend, nil otherwise
}

// Bytes returns the block's memory. For a block of total size
// Head + Count*Size the slice has exactly that length.
func (b *Block) Bytes() []byte { return b.data }

// Len returns the block's size in bytes.
func (b *Block) Len() int { return len(b.data) }

// Allocator is the allocation capability set. Allocate is the only
// primitive; see the package documentation for the operation selected by
// each (total, block) combination.
//
// An Allocator must outlive every block allocated through it.
type Allocator interface {
	// Allocate performs one allocate/resize/release operation.
	//
	// It returns (nil, nil) for a no-op or a release, a new handle for a
	// fresh allocation or resize, and (nil, err) on failure, in which
	// case blk remains valid and untouched.
	Allocate(req Request, blk *Block) (*Block, error)
}

// Walker is the optional enumeration capability. Backends that keep a
// registry of live allocations implement it alongside Allocator.
type Walker interface {
	// Walk traverses every live allocation in insertion order, threading
	// acc through visit, and returns the final accumulator.
	Walk(acc any, visit VisitFunc) any
}
