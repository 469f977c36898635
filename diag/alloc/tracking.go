package alloc

import "sync"

// Tracking implements Allocator with full provenance bookkeeping: every
// live allocation has a registry entry recording where it came from and
// the size triple it was created with. The registry is per-instance;
// independent trackers never share state.
type Tracking struct {
	prov Provider

	// mu guards the registry on every mutation path, including resize
	// failure. Walk holds the read side.
	mu    sync.RWMutex
	reg   registry
	stats Stats
}

// Stats holds counters for testing and instrumentation.
type Stats struct {
	AllocCalls  int // fresh allocations performed
	FreeCalls   int // releases performed
	ResizeCalls int // successful resizes
	ResizeMoves int // resizes that moved the block
}

// NewTracking returns a debug tracking backend over p, or over
// DefaultProvider when p is nil.
func NewTracking(p Provider) *Tracking {
	if p == nil {
		p = DefaultProvider
	}
	return &Tracking{prov: p}
}

// Allocate implements Allocator.
func (t *Tracking) Allocate(req Request, blk *Block) (*Block, error) {
	if !req.valid() {
		return nil, ErrBadRequest
	}
	total := req.Total()

	t.mu.Lock()
	defer t.mu.Unlock()

	switch {
	case total == 0 && blk == nil:
		return nil, nil

	case total == 0:
		e, err := t.owned(blk)
		if err != nil {
			return nil, err
		}
		t.reg.unlink(e)
		t.prov.Free(e.data)
		e.data = nil
		t.stats.FreeCalls++
		return nil, nil

	case blk == nil:
		data := t.prov.Alloc(total)
		if data == nil {
			return nil, ErrExhausted
		}
		e := &entry{
			owner: t,
			label: req.Label,
			file:  req.File,
			fn:    req.Func,
			line:  req.Line,
			stamp: req.Stamp,
			head:  req.Head,
			count: req.Count,
			size:  req.Size,
			data:  data,
		}
		t.reg.link(e)
		t.stats.AllocCalls++
		return &Block{data: data, ent: e}, nil

	default:
		e, err := t.owned(blk)
		if err != nil {
			return nil, err
		}
		old := e.data
		data := t.prov.Resize(old, total)
		if data == nil {
			// Entry, links and block all untouched.
			return nil, ErrExhausted
		}
		t.stats.ResizeCalls++
		if len(data) > 0 && len(old) > 0 && &data[0] == &old[0] {
			// In place: same record, same links.
			e.data = data
			return &Block{data: data, ent: e}, nil
		}
		// The block moved. The replacement record inherits the old one's
		// links and bookkeeping, then the neighbors are repaired to point
		// at it. Its traversal position is preserved.
		ne := &entry{
			prev:  e.prev,
			next:  e.next,
			owner: t,
			label: e.label,
			file:  e.file,
			fn:    e.fn,
			line:  e.line,
			stamp: e.stamp,
			head:  e.head,
			count: e.count,
			size:  e.size,
			data:  data,
		}
		t.reg.relink(ne)
		e.prev, e.next = nil, nil
		e.live = false
		t.stats.ResizeMoves++
		return &Block{data: data, ent: ne}, nil
	}
}

// Walk implements Walker: it traverses the registry from first to last,
// invoking visit for every live entry and threading the accumulator
// through. Each call starts a fresh traversal. The visitor must not
// allocate or release through this tracker.
func (t *Tracking) Walk(acc any, visit VisitFunc) any {
	t.mu.RLock()
	defer t.mu.RUnlock()
	for e := t.reg.first; e != nil; e = e.next {
		acc = visit(acc, EntryInfo{
			Label: e.label,
			File:  e.file,
			Func:  e.fn,
			Line:  e.line,
			Stamp: e.stamp,
			Block: &Block{data: e.data, ent: e},
			Head:  e.head,
			Count: e.count,
			Size:  e.size,
		})
	}
	return acc
}

// Live returns the number of allocations currently tracked.
func (t *Tracking) Live() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.reg.n
}

// Stats returns a snapshot of the operation counters.
func (t *Tracking) Stats() Stats {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.stats
}

// owned resolves blk to its registry entry, rejecting handles from
// other allocators and handles invalidated by a release or a moving
// resize. Callers hold t.mu.
func (t *Tracking) owned(blk *Block) (*entry, error) {
	if blk == nil || blk.ent == nil || blk.ent.owner != t {
		return nil, ErrForeignBlock
	}
	if !blk.ent.live {
		return nil, ErrStaleBlock
	}
	return blk.ent, nil
}
