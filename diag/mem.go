package diag

import (
	"fmt"

	"github.com/joshuapare/diagkit/diag/alloc"
)

// request builds the allocation request for one convenience call and
// dispatches it through the active allocator.
func request(c *Context, label string, site Site, blk *alloc.Block, head, count, size int) (*alloc.Block, error) {
	return c.Allocator().Allocate(alloc.Request{
		Label: label,
		File:  site.File,
		Func:  site.Func,
		Line:  site.Line,
		Stamp: c.Timestamp(),
		Head:  head,
		Count: count,
		Size:  size,
	}, blk)
}

// Alloc allocates size bytes under the given label.
func Alloc(c *Context, label string, size int) (*alloc.Block, error) {
	return request(c, label, Caller(1), nil, size, 0, 0)
}

// Calloc allocates an array of count units of size bytes each.
func Calloc(c *Context, label string, count, size int) (*alloc.Block, error) {
	return request(c, label, Caller(1), nil, 0, count, size)
}

// HAlloc allocates head header bytes followed by an array of count
// units of size bytes each.
func HAlloc(c *Context, label string, head, count, size int) (*alloc.Block, error) {
	return request(c, label, Caller(1), nil, head, count, size)
}

// Realloc resizes blk to size bytes, allocating when blk is nil. On
// failure blk remains valid.
func Realloc(c *Context, label string, blk *alloc.Block, size int) (*alloc.Block, error) {
	return request(c, label, Caller(1), blk, size, 0, 0)
}

// Recalloc resizes blk to hold an array of count units of size bytes.
// On failure blk remains valid.
func Recalloc(c *Context, label string, blk *alloc.Block, count, size int) (*alloc.Block, error) {
	return request(c, label, Caller(1), blk, 0, count, size)
}

// Reallocf resizes blk like Recalloc but releases it when the resize
// fails, so the caller never has to clean up the original.
func Reallocf(c *Context, label string, blk *alloc.Block, count, size int) (*alloc.Block, error) {
	site := Caller(1)
	nb, err := request(c, label, site, blk, 0, count, size)
	if err != nil && blk != nil {
		_, _ = request(c, "", site, blk, 0, 0, 0)
	}
	return nb, err
}

// Free releases blk. A nil blk is a no-op.
func Free(c *Context, blk *alloc.Block) error {
	_, err := request(c, "", Caller(1), blk, 0, 0, 0)
	return err
}

// Strdup allocates a copy of s. An empty string yields a nil block.
func Strdup(c *Context, label string, s string) (*alloc.Block, error) {
	blk, err := request(c, label, Caller(1), nil, 0, len(s), 1)
	if err != nil || blk == nil {
		return blk, err
	}
	copy(blk.Bytes(), s)
	return blk, nil
}

// Sprintf formats into a freshly allocated block. An empty result
// yields a nil block.
func Sprintf(c *Context, label string, format string, args ...any) (*alloc.Block, error) {
	s := fmt.Sprintf(format, args...)
	blk, err := request(c, label, Caller(1), nil, 0, len(s), 1)
	if err != nil || blk == nil {
		return blk, err
	}
	copy(blk.Bytes(), s)
	return blk, nil
}
