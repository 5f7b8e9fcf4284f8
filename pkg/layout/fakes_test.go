package layout

import "fmt"

// fakeComponent records everything the engine does to it.
type fakeComponent struct {
	name         string
	prefW, prefH int
	w, h         int
	x, y         int
	drawing      bool
	disableCalls int
	enableCalls  int
	prefQueries  int
	log          *[]string
}

func newFake(name string, w, h int) *fakeComponent {
	return &fakeComponent{name: name, prefW: w, prefH: h, drawing: true}
}

func (f *fakeComponent) record(format string, args ...interface{}) {
	if f.log != nil {
		*f.log = append(*f.log, fmt.Sprintf(format, args...))
	}
}

func (f *fakeComponent) PreferredWidth() int {
	f.prefQueries++
	return f.prefW
}

func (f *fakeComponent) PreferredHeight() int {
	return f.prefH
}

func (f *fakeComponent) SetSize(w, h int) {
	f.w, f.h = w, h
	f.record("size %s", f.name)
}

func (f *fakeComponent) SetLocation(x, y int) {
	f.x, f.y = x, y
	f.record("move %s", f.name)
}

func (f *fakeComponent) EnableDrawing() {
	f.drawing = true
	f.enableCalls++
	f.record("enable %s", f.name)
}

func (f *fakeComponent) DisableDrawing() {
	f.drawing = false
	f.disableCalls++
	f.record("disable %s", f.name)
}

type fakeContainer struct {
	pad       Padding
	width     int
	height    int
	prefW     int
	prefH     int
	prefCalls int
	added     []Component
}

func newContainer(width, height int) *fakeContainer {
	return &fakeContainer{width: width, height: height}
}

func (c *fakeContainer) Padding() Padding  { return c.pad }
func (c *fakeContainer) ClientWidth() int  { return c.width }
func (c *fakeContainer) ClientHeight() int { return c.height }

func (c *fakeContainer) AddComponent(x Component) {
	c.added = append(c.added, x)
}

func (c *fakeContainer) SetPreferredSize(w, h int) {
	c.prefW, c.prefH = w, h
	c.prefCalls++
}

// bounds is the applied geometry of a fake as x, y, w, h.
func bounds(f *fakeComponent) [4]int {
	return [4]int{f.x, f.y, f.w, f.h}
}
