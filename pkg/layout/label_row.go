package layout

// LabelRow holds the entries of one row whose labels are laid out above
// (top orientation) or below (bottom orientation) the row instead of inside
// it. It adds height to the row and has no horizontal placement of its own.
//
//	+---------+
//	|  Label  |   label row above
//	+---------+
//	+---------+
//	|  Field  |   row
//	+---------+
type LabelRow struct {
	entries []EntryID
}

// Len returns the number of labels in the row.
func (lr *LabelRow) Len() int {
	return len(lr.entries)
}

// Entries returns the handles of the entries whose labels are in this row.
func (lr *LabelRow) Entries() []EntryID {
	out := make([]EntryID, len(lr.entries))
	copy(out, lr.entries)
	return out
}

func (lr *LabelRow) add(id EntryID) {
	lr.entries = append(lr.entries, id)
}

func (lr *LabelRow) remove(id EntryID) {
	for i, e := range lr.entries {
		if e == id {
			lr.entries = append(lr.entries[:i], lr.entries[i+1:]...)
			return
		}
	}
}

// maxLabelHeight is the tallest resolved label height in the row.
func (lr *LabelRow) maxLabelHeight(geom []Geometry) int {
	if lr == nil {
		return 0
	}
	tallest := 0
	for _, id := range lr.entries {
		tallest = max(tallest, geom[id].LabelHeight)
	}
	return tallest
}
