package alloc

// entry is the bookkeeping record for one live allocation. Entries form
// a doubly linked list in insertion order; the order is never changed by
// later resizes.
type entry struct {
	prev, next *entry

	owner *Tracking
	live  bool // linked into the registry

	// Provenance and the original size triple from the first allocation.
	// A resize does not rewrite these; they describe where and how the
	// block was born.
	label string
	file  string
	fn    string
	line  int
	stamp float64
	head  int
	count int
	size  int

	data []byte
}

// registry is the control block: the list ends plus a live count. It is
// mutated only by link, unlink and relink, always under the owning
// tracker's lock.
type registry struct {
	first, last *entry
	n           int
}

// link appends e at the tail.
func (r *registry) link(e *entry) {
	e.next = nil
	e.prev = r.last
	if r.last != nil {
		r.last.next = e
	} else {
		r.first = e
	}
	r.last = e
	e.live = true
	r.n++
}

// unlink removes e from the list.
func (r *registry) unlink(e *entry) {
	if e.prev != nil {
		e.prev.next = e.next
	} else {
		r.first = e.next
	}
	if e.next != nil {
		e.next.prev = e.prev
	} else {
		r.last = e.prev
	}
	e.prev, e.next = nil, nil
	e.live = false
	r.n--
}

// relink repairs the list after an entry moved: e carries correct prev
// and next values copied from its predecessor record, but the neighbors
// (or the list ends) still point at the old record. Only their view of e
// changes; the traversal position is preserved and the count is
// unaffected.
func (r *registry) relink(e *entry) {
	if e.prev != nil {
		e.prev.next = e
	} else {
		r.first = e
	}
	if e.next != nil {
		e.next.prev = e
	} else {
		r.last = e
	}
	e.live = true
}
