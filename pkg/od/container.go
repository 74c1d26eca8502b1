package od

// Container is an ordered, named collection of Entries describing one SDO
// index. Field order equals wire order; disabled entries are absent from
// both the descriptor and the decoded bytes.
type Container struct {
	Kind    string
	Entries []*Entry
}

// NewContainer returns an empty container of the given kind, ready to have
// entries appended by a Template factory.
func NewContainer(kind string) *Container {
	return &Container{Kind: kind}
}

// Add appends an entry in declaration order and returns the container for chaining.
func (c *Container) Add(e *Entry) *Container {
	c.Entries = append(c.Entries, e)
	return c
}

// Clone returns a copy with every Entry copied, so names, sizes and enable
// flags of the clone change independently. Slice Values are shared with the
// original, not copied.
func (c *Container) Clone() *Container {
	clone := &Container{Kind: c.Kind, Entries: make([]*Entry, len(c.Entries))}
	for i, e := range c.Entries {
		cp := *e
		clone.Entries[i] = &cp
	}
	return clone
}

// EnabledEntries returns the entries with Enable set, in declaration order.
func (c *Container) EnabledEntries() []*Entry {
	out := make([]*Entry, 0, len(c.Entries))
	for _, e := range c.Entries {
		if e.Enable {
			out = append(out, e)
		}
	}
	return out
}

// GetBySubindex returns the entry with the given sub-index, if any.
func (c *Container) GetBySubindex(sub uint8) (*Entry, bool) {
	for _, e := range c.Entries {
		if e.SubIndex == sub {
			return e, true
		}
	}
	return nil, false
}

// GetByName returns the entry with the given name, if any.
func (c *Container) GetByName(name string) (*Entry, bool) {
	for _, e := range c.Entries {
		if e.Name == name {
			return e, true
		}
	}
	return nil, false
}

// SetBySubindex replaces discovery-filled metadata (name, size, enable) on
// the entry at sub. It never touches Value: writes are not exposed by this
// client (see DESIGN.md on the source's set_value ambiguity).
func (c *Container) SetBySubindex(sub uint8, name string, size uint32, enable bool) bool {
	e, ok := c.GetBySubindex(sub)
	if !ok {
		return false
	}
	e.Name = name
	e.Size = size
	e.Enable = enable
	return true
}

// UnpackDescriptor walks the enabled entries in order and returns the
// sequence of primitive codes needed to decode a matching payload, including
// the one-byte FormatPad fillers inserted by the alignment rule: after
// tentatively appending a piece P to the accumulated descriptor R, P is
// appended as-is if size_of(R) or size_of(R+P) is even, otherwise a pad byte
// precedes P.
func (c *Container) UnpackDescriptor() []FormatCode {
	var r []FormatCode
	for _, e := range c.Entries {
		if !e.Enable {
			continue
		}
		mult := e.multiplicity()
		piece := make([]FormatCode, mult)
		for i := range piece {
			piece[i] = e.FormatCode
		}
		sizeR := descriptorSize(r)
		sizeRP := sizeR + descriptorSize(piece)
		if sizeR%2 == 0 || sizeRP%2 == 0 {
			r = append(r, piece...)
		} else {
			r = append(r, FormatPad)
			r = append(r, piece...)
		}
	}
	return r
}

func descriptorSize(d []FormatCode) int {
	total := 0
	for _, c := range d {
		total += primitiveSize(c)
	}
	return total
}

// TotalSize is defined as the decoded byte length of UnpackDescriptor, so it
// cannot diverge from it by construction (see DESIGN.md, Open Questions).
func (c *Container) TotalSize() uint32 {
	return uint32(descriptorSize(c.UnpackDescriptor()))
}

// lastEnabledEntry returns the last entry in declaration order with Enable set.
func (c *Container) lastEnabledEntry() *Entry {
	var last *Entry
	for _, e := range c.Entries {
		if e.Enable {
			last = e
		}
	}
	return last
}
