package layout

// Row is an ordered horizontal band of entries. A component and its label
// share one index in the row.
type Row struct {
	le          *LayoutEngine
	entries     []EntryID
	above       *LabelRow // labels with top orientation, created on first use
	below       *LabelRow // labels with bottom orientation, created on first use
	orientation RowOrientation
	spacing     int

	// Resolved by the last layout pass.
	width  int
	height int
}

// Len returns the number of entries in the row.
func (r *Row) Len() int {
	return len(r.entries)
}

// Orientation returns the row's horizontal alignment.
func (r *Row) Orientation() RowOrientation {
	return r.orientation
}

// SetOrientation sets the row's horizontal alignment.
func (r *Row) SetOrientation(o RowOrientation) *Row {
	r.orientation = o
	return r
}

// Spacing returns the extra horizontal space inserted between entries.
func (r *Row) Spacing() int {
	return r.spacing
}

// SetSpacing sets the extra horizontal space inserted between entries, on
// top of the pairwise gap. Negative values are treated as zero.
func (r *Row) SetSpacing(space int) *Row {
	r.spacing = max(0, space)
	return r
}

// Width and Height are the row's size from the last layout pass.
func (r *Row) Width() int  { return r.width }
func (r *Row) Height() int { return r.height }

// Above returns the label row above this row, or nil.
func (r *Row) Above() *LabelRow { return r.above }

// Below returns the label row below this row, or nil.
func (r *Row) Below() *LabelRow { return r.below }

// EntryAt returns the handle at index, or InvalidEntry.
func (r *Row) EntryAt(index int) EntryID {
	if index < 0 || index >= len(r.entries) {
		return InvalidEntry
	}
	return r.entries[index]
}

// ComponentAt returns the component at index, or nil.
func (r *Row) ComponentAt(index int) Component {
	en := r.le.entries.get(r.EntryAt(index))
	if en == nil {
		return nil
	}
	return en.component
}

// LabelAt returns the label at index, or nil if there is none.
func (r *Row) LabelAt(index int) Label {
	en := r.le.entries.get(r.EntryAt(index))
	if en == nil {
		return nil
	}
	return en.label
}

// Add appends a component without a label.
func (r *Row) Add(c Component, cons Constraints) *Row {
	r.add(nil, c, cons)
	return r
}

// AddLabeled appends a component paired with a label. A nil label is the
// same as Add.
func (r *Row) AddLabeled(l Label, c Component, cons Constraints) *Row {
	r.add(l, c, cons)
	return r
}

func (r *Row) add(l Label, c Component, cons Constraints) EntryID {
	le := r.le
	en := &entry{component: c, label: l, constraints: cons, row: r}
	id := le.entries.alloc(en)
	r.entries = append(r.entries, id)

	if l != nil {
		switch cons.LabelOrientation {
		case LabelTop:
			if r.above == nil {
				r.above = &LabelRow{}
			}
			r.above.add(id)
		case LabelBottom:
			if r.below == nil {
				r.below = &LabelRow{}
			}
			r.below.add(id)
		}
		le.groups.Add(cons.LabelSizeGroup, LabelRole, id)
	}
	le.groups.Add(cons.SizeGroup, ComponentRole, id)

	if l != nil {
		le.attach(l)
	}
	le.attach(c)
	return id
}

// RemoveAt removes the entry at index from the row, its label row and its
// size groups. Out-of-range indexes are ignored.
func (r *Row) RemoveAt(index int) {
	id := r.EntryAt(index)
	en := r.le.entries.get(id)
	if en == nil {
		return
	}
	r.entries = append(r.entries[:index], r.entries[index+1:]...)

	if en.hasLabel() {
		switch en.constraints.LabelOrientation {
		case LabelTop:
			r.above.remove(id)
		case LabelBottom:
			r.below.remove(id)
		}
		r.le.groups.Remove(en.constraints.LabelSizeGroup, LabelRole, id)
	}
	r.le.groups.Remove(en.constraints.SizeGroup, ComponentRole, id)
	r.le.detach(en)
	r.le.entries.free(id)
}

// RemoveAll removes every entry from the row. The components themselves
// belong to the client and are left alone.
func (r *Row) RemoveAll() {
	for i := len(r.entries) - 1; i >= 0; i-- {
		r.RemoveAt(i)
	}
}

func (r *Row) indexOf(c Component) int {
	for i, id := range r.entries {
		if en := r.le.entries.get(id); en != nil && en.component == c {
			return i
		}
	}
	return -1
}
