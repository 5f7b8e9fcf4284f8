// Package fynerow lets fyne containers be arranged by the row layout engine.
//
//	l := fynerow.New(layout.Padding{Left: 8, Right: 8, Top: 8, Bottom: 8})
//	l.AddLabeled(widget.NewLabel("Name:"), widget.NewEntry(), layout.DefaultConstraints())
//	l.AddRow()
//	l.Add(widget.NewButton("OK", nil), layout.DefaultConstraints())
//	w.SetContent(l.Container())
package fynerow

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"

	"rowkit/pkg/layout"
)

// Layout is a fyne.Layout backed by a layout.LayoutEngine. Objects are added
// through the Layout, which hands them to its container; objects added to
// the container directly are ignored.
type Layout struct {
	engine  *layout.LayoutEngine
	host    *host
	objects map[fyne.CanvasObject]*object
}

var _ fyne.Layout = (*Layout)(nil)

// New creates a row layout with the given container padding. If metrics is
// omitted, layout.DefaultMetrics is used.
func New(padding layout.Padding, metrics ...layout.Metrics) *Layout {
	h := &host{padding: padding}
	return &Layout{
		engine:  layout.NewLayoutEngine(nil, metrics...),
		host:    h,
		objects: make(map[fyne.CanvasObject]*object),
	}
}

// Container returns the fyne container arranged by this layout, creating it
// on first use. Objects added before the call are moved into it.
func (l *Layout) Container() *fyne.Container {
	if l.host.container == nil {
		l.host.container = container.New(l)
		l.engine.SetContainer(l.host)
	}
	return l.host.container
}

// Engine exposes the underlying engine for queries and row settings.
func (l *Layout) Engine() *layout.LayoutEngine {
	return l.engine
}

func (l *Layout) wrap(o fyne.CanvasObject) *object {
	if w, ok := l.objects[o]; ok {
		return w
	}
	w := newObject(o)
	l.objects[o] = w
	return w
}

// AddRow starts a new row; later Add calls go to it.
func (l *Layout) AddRow() *layout.Row {
	return l.engine.AddRow()
}

// Add appends obj to the current row.
func (l *Layout) Add(obj fyne.CanvasObject, cons layout.Constraints) *layout.Row {
	return l.engine.Add(l.wrap(obj), cons)
}

// AddLabeled appends obj with its label to the current row.
func (l *Layout) AddLabeled(label, obj fyne.CanvasObject, cons layout.Constraints) *layout.Row {
	if label == nil {
		return l.Add(obj, cons)
	}
	return l.engine.AddLabeled(l.wrap(label), l.wrap(obj), cons)
}

// Remove takes obj and its label out of the layout and the container.
func (l *Layout) Remove(obj fyne.CanvasObject) {
	w, ok := l.objects[obj]
	if !ok {
		return
	}
	id, ok := l.engine.Entry(w)
	if !ok {
		return
	}
	row, index := l.locate(id)
	label, _ := row.LabelAt(index).(*object)
	l.engine.Remove(w)

	delete(l.objects, obj)
	l.removeFromContainer(obj)
	if label != nil {
		delete(l.objects, label.CanvasObject)
		l.removeFromContainer(label.CanvasObject)
	}
}

func (l *Layout) locate(id layout.EntryID) (*layout.Row, int) {
	for r := 0; r < l.engine.RowCount(); r++ {
		row := l.engine.Row(r)
		for i := 0; i < row.Len(); i++ {
			if row.EntryAt(i) == id {
				return row, i
			}
		}
	}
	return nil, -1
}

func (l *Layout) removeFromContainer(o fyne.CanvasObject) {
	if l.host.container != nil {
		l.host.container.Remove(o)
	}
}

// Layout is called by fyne when the container is resized or refreshed.
func (l *Layout) Layout(_ []fyne.CanvasObject, size fyne.Size) {
	l.host.size = size
	l.engine.ExecuteLayout(l.host)
}

// MinSize is the size the rows need with no room to grow.
func (l *Layout) MinSize(_ []fyne.CanvasObject) fyne.Size {
	s := l.engine.PreferredSize(l.host)
	return fyne.NewSize(float32(s.Width), float32(s.Height))
}
