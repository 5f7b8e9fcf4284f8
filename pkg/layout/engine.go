package layout

// LayoutEngine arranges components into rows. It is not safe for concurrent
// use: mutations and layout passes must be serialized by the caller, and a
// pass must not be started from inside another pass.
type LayoutEngine struct {
	metrics   Metrics
	container Container
	attached  map[Component]struct{}

	entries entryArena
	rows    []*Row
	current *Row
	groups  *SizeGroupIndex

	verticalSpace int

	// resolved is the geometry of the last committed pass.
	resolved *pass
}

var _ Layouter = (*LayoutEngine)(nil)

// NewLayoutEngine creates an engine for container. Components and labels are
// handed to the container when they join the layout. The container may be nil and
// set later with SetContainer. If metrics is omitted, DefaultMetrics is used.
func NewLayoutEngine(container Container, metrics ...Metrics) *LayoutEngine {
	m := DefaultMetrics()
	if len(metrics) > 0 {
		m = metrics[0]
	}
	return &LayoutEngine{
		metrics:       m,
		container:     container,
		attached:      make(map[Component]struct{}),
		groups:        NewSizeGroupIndex(),
		verticalSpace: Unspecified,
	}
}

// Metrics returns the engine's default distances.
func (le *LayoutEngine) Metrics() Metrics {
	return le.metrics
}

// SetContainer binds the engine to a container and hands it every
// component and label already in the layout.
func (le *LayoutEngine) SetContainer(c Container) {
	le.container = c
	le.attached = make(map[Component]struct{})
	le.eachEntry(func(_ EntryID, en *entry) {
		if en.label != nil {
			le.attach(en.label)
		}
		le.attach(en.component)
	})
}

func (le *LayoutEngine) attach(c Component) {
	if le.container == nil {
		return
	}
	if _, ok := le.attached[c]; ok {
		return
	}
	le.attached[c] = struct{}{}
	le.container.AddComponent(c)
}

// detach ends the association of an entry's objects with the layout, so
// adding them again hands them to the container again.
func (le *LayoutEngine) detach(en *entry) {
	if en.label != nil {
		delete(le.attached, en.label)
	}
	delete(le.attached, en.component)
}

// AddRow starts a new row. Later calls to Add and AddLabeled go to it.
func (le *LayoutEngine) AddRow() *Row {
	le.current = &Row{le: le}
	le.rows = append(le.rows, le.current)
	return le.current
}

func (le *LayoutEngine) currentRow() *Row {
	if le.current == nil {
		return le.AddRow()
	}
	return le.current
}

// Add appends a component to the current row, creating the first row if
// there is none, and returns that row.
//
// The engine does not guard against adding the same component twice.
func (le *LayoutEngine) Add(c Component, cons Constraints) *Row {
	return le.currentRow().Add(c, cons)
}

// AddLabeled appends a component with its label to the current row.
func (le *LayoutEngine) AddLabeled(l Label, c Component, cons Constraints) *Row {
	return le.currentRow().AddLabeled(l, c, cons)
}

// Remove removes the first entry whose primary component is c. Removing a
// component that is not in the layout does nothing.
func (le *LayoutEngine) Remove(c Component) {
	for _, row := range le.rows {
		if i := row.indexOf(c); i >= 0 {
			row.RemoveAt(i)
			return
		}
	}
}

// RemoveAll removes every entry and size group. Rows are kept.
func (le *LayoutEngine) RemoveAll() {
	for i := len(le.rows) - 1; i >= 0; i-- {
		le.rows[i].RemoveAll()
	}
	le.groups.Clear()
}

// Close tears the layout down: every row, label row, entry and size group is
// dropped. Components and labels are owned by the client and left alone.
func (le *LayoutEngine) Close() {
	for i := len(le.rows) - 1; i >= 0; i-- {
		row := le.rows[i]
		row.RemoveAll()
		row.above = nil
		row.below = nil
	}
	le.rows = nil
	le.current = nil
	le.groups.Clear()
	le.entries.reset()
	le.resolved = nil
}

// RowCount returns the number of rows.
func (le *LayoutEngine) RowCount() int {
	return len(le.rows)
}

// Row returns the row at index, or nil.
func (le *LayoutEngine) Row(index int) *Row {
	if index < 0 || index >= len(le.rows) {
		return nil
	}
	return le.rows[index]
}

// ComponentCount returns the number of entries across all rows.
func (le *LayoutEngine) ComponentCount() int {
	total := 0
	for _, row := range le.rows {
		total += row.Len()
	}
	return total
}

// ComponentCountAtRow returns the number of entries in a row, or 0 for an
// invalid row.
func (le *LayoutEngine) ComponentCountAtRow(row int) int {
	if r := le.Row(row); r != nil {
		return r.Len()
	}
	return 0
}

// ComponentAtRow returns the component at (row, index), or nil.
func (le *LayoutEngine) ComponentAtRow(row, index int) Component {
	if r := le.Row(row); r != nil {
		return r.ComponentAt(index)
	}
	return nil
}

// LabelAtRow returns the label at (row, index), or nil.
func (le *LayoutEngine) LabelAtRow(row, index int) Label {
	if r := le.Row(row); r != nil {
		return r.LabelAt(index)
	}
	return nil
}

// HorizontalSpaceBetweenComponents returns a row's entry spacing, or 0 for an
// invalid row.
func (le *LayoutEngine) HorizontalSpaceBetweenComponents(row int) int {
	if r := le.Row(row); r != nil {
		return r.Spacing()
	}
	return 0
}

// VerticalSpaceBetweenRows returns the configured row spacing; negative means
// Metrics.VerticalRowSpace is used.
func (le *LayoutEngine) VerticalSpaceBetweenRows() int {
	return le.verticalSpace
}

// SetVerticalSpaceBetweenRows sets the space between rows. A negative value
// restores the platform default.
func (le *LayoutEngine) SetVerticalSpaceBetweenRows(space int) {
	le.verticalSpace = space
}

func (le *LayoutEngine) rowSpace() int {
	if le.verticalSpace < 0 {
		return le.metrics.VerticalRowSpace
	}
	return le.verticalSpace
}

// SizeGroups returns the engine's size group index.
func (le *LayoutEngine) SizeGroups() *SizeGroupIndex {
	return le.groups
}

// Entry returns the handle of the entry holding component c.
func (le *LayoutEngine) Entry(c Component) (EntryID, bool) {
	for _, row := range le.rows {
		if i := row.indexOf(c); i >= 0 {
			return row.entries[i], true
		}
	}
	return InvalidEntry, false
}

// Geometry returns the geometry resolved for an entry by the last layout pass.
func (le *LayoutEngine) Geometry(id EntryID) (Geometry, bool) {
	if le.resolved == nil || le.entries.get(id) == nil || int(id) >= len(le.resolved.geom) {
		return Geometry{}, false
	}
	return le.resolved.geom[id], true
}

// eachEntry visits every entry, top to bottom and in index order.
func (le *LayoutEngine) eachEntry(fn func(id EntryID, en *entry)) {
	for _, row := range le.rows {
		for _, id := range row.entries {
			fn(id, le.entries.get(id))
		}
	}
}

// ExecuteLayout runs a full layout pass for c and applies the result.
// Drawing is disabled on every component for the duration and re-enabled on
// every exit path.
func (le *LayoutEngine) ExecuteLayout(c Container) {
	le.setDrawingEnabled(false)
	defer le.setDrawingEnabled(true)

	p := le.compute(c)
	c.SetPreferredSize(p.preferred.Width, p.preferred.Height)
	le.applySizes(p)
	le.applyLocations(p)
	le.commit(p)
}

// PreferredSize runs the measure and place phases for c without touching any
// component or the container, and returns the size the container would be
// asked to take.
func (le *LayoutEngine) PreferredSize(c Container) Size {
	return le.compute(c).preferred
}

// compute runs every phase that does not write to the outside world.
func (le *LayoutEngine) compute(c Container) *pass {
	p := le.newPass()
	le.measure(p)
	le.groups.resize(p.geom)
	le.reconcileLabelRows(p)
	le.place(p, c)
	return p
}

func (le *LayoutEngine) setDrawingEnabled(enabled bool) {
	le.eachEntry(func(_ EntryID, en *entry) {
		if en.label != nil {
			if enabled {
				en.label.EnableDrawing()
			} else {
				en.label.DisableDrawing()
			}
		}
		if enabled {
			en.component.EnableDrawing()
		} else {
			en.component.DisableDrawing()
		}
	})
}

func (le *LayoutEngine) applySizes(p *pass) {
	le.eachEntry(func(id EntryID, en *entry) {
		g := p.geom[id]
		if en.label != nil {
			en.label.SetSize(g.LabelWidth, g.LabelHeight)
		}
		en.component.SetSize(g.Width, g.Height)
	})
}

func (le *LayoutEngine) applyLocations(p *pass) {
	le.eachEntry(func(id EntryID, en *entry) {
		g := p.geom[id]
		if en.label != nil {
			en.label.SetLocation(g.LabelX, g.LabelY)
		}
		en.component.SetLocation(g.X, g.Y)
	})
}

// commit swaps the pass in as the layout's resolved state.
func (le *LayoutEngine) commit(p *pass) {
	for i, row := range le.rows {
		row.width = p.rows[i].width
		row.height = p.rows[i].height
	}
	le.resolved = p
}
