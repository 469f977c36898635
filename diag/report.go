package diag

import (
	"fmt"
	"io"

	"github.com/joshuapare/diagkit/diag/alloc"
)

// DumpAllocations writes one line per live allocation to w, in
// insertion order, and returns how many were reported. A context whose
// allocator keeps no registry reports zero; an empty report means no
// leaks.
func DumpAllocations(c *Context, w io.Writer) (int, error) {
	walker, ok := c.Allocator().(alloc.Walker)
	if !ok {
		return 0, nil
	}

	type report struct {
		n   int
		err error
	}
	res := walker.Walk(&report{}, func(acc any, info alloc.EntryInfo) any {
		r := acc.(*report)
		if r.err != nil {
			return r
		}
		label := info.Label
		if label == "" {
			label = "-"
		}
		_, r.err = fmt.Fprintf(w, "%12.6f %s:%d [%s] %s %d+%d*%d (%d bytes live)\n",
			info.Stamp, info.File, info.Line, info.Func, label,
			info.Head, info.Count, info.Size, info.Block.Len())
		r.n++
		return r
	}).(*report)

	return res.n, res.err
}
