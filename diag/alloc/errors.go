package alloc

import "errors"

var (
	// ErrExhausted indicates the provider could not supply or resize the
	// requested memory. The original block, if any, is untouched.
	ErrExhausted = errors.New("alloc: provider out of memory")

	// ErrBadRequest indicates a negative head, count or size, or a total
	// that overflows.
	ErrBadRequest = errors.New("alloc: invalid request dimensions")

	// ErrForeignBlock indicates a block that was not produced by this
	// allocator instance.
	ErrForeignBlock = errors.New("alloc: block not owned by this allocator")

	// ErrStaleBlock indicates a block that was already released, or whose
	// handle was invalidated by a moving resize.
	ErrStaleBlock = errors.New("alloc: block already released")
)
