package alloc

// Passthrough forwards every request directly to its Provider with no
// bookkeeping. All provenance, label and timestamp fields are accepted
// and ignored. It is exactly as thread-safe as its Provider.
type Passthrough struct {
	prov Provider
}

// NewPassthrough returns a pass-through backend over p, or over
// DefaultProvider when p is nil.
func NewPassthrough(p Provider) *Passthrough {
	if p == nil {
		p = DefaultProvider
	}
	return &Passthrough{prov: p}
}

// Allocate implements Allocator.
func (a *Passthrough) Allocate(req Request, blk *Block) (*Block, error) {
	if !req.valid() {
		return nil, ErrBadRequest
	}
	total := req.Total()
	switch {
	case total == 0 && blk == nil:
		return nil, nil
	case total == 0:
		a.prov.Free(blk.data)
		return nil, nil
	case blk == nil:
		data := a.prov.Alloc(total)
		if data == nil {
			return nil, ErrExhausted
		}
		return &Block{data: data}, nil
	default:
		data := a.prov.Resize(blk.data, total)
		if data == nil {
			return nil, ErrExhausted
		}
		return &Block{data: data}, nil
	}
}
