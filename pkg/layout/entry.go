package layout

// entry pairs one primary component with an optional label and the
// constraints it was added with. Resolved geometry is kept per pass, not here.
type entry struct {
	component   Component
	label       Label
	constraints Constraints
	row         *Row
}

func (en *entry) hasLabel() bool {
	return en.label != nil
}

// entryArena owns every entry of a layout. Rows, label rows and size groups
// refer to entries by EntryID only.
type entryArena struct {
	slots []*entry
	live  int
}

func (a *entryArena) alloc(en *entry) EntryID {
	a.slots = append(a.slots, en)
	a.live++
	return EntryID(len(a.slots) - 1)
}

// get returns nil for removed or out-of-range handles.
func (a *entryArena) get(id EntryID) *entry {
	if id < 0 || int(id) >= len(a.slots) {
		return nil
	}
	return a.slots[id]
}

func (a *entryArena) free(id EntryID) {
	if a.get(id) == nil {
		return
	}
	a.slots[id] = nil
	a.live--
}

// size is the number of handles ever issued, which bounds every valid id.
func (a *entryArena) size() int {
	return len(a.slots)
}

func (a *entryArena) reset() {
	a.slots = nil
	a.live = 0
}
