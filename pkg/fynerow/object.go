package fynerow

import (
	"math"

	"fyne.io/fyne/v2"

	"rowkit/pkg/layout"
)

// object adapts a fyne.CanvasObject to layout.Component. Its preferred size
// is the object's MinSize rounded up to whole pixels.
type object struct {
	fyne.CanvasObject
	drawing bool
}

func newObject(o fyne.CanvasObject) *object {
	return &object{CanvasObject: o, drawing: true}
}

func (o *object) PreferredWidth() int {
	return int(math.Ceil(float64(o.MinSize().Width)))
}

func (o *object) PreferredHeight() int {
	return int(math.Ceil(float64(o.MinSize().Height)))
}

func (o *object) SetSize(width, height int) {
	o.Resize(fyne.NewSize(float32(width), float32(height)))
}

func (o *object) SetLocation(x, y int) {
	o.Move(fyne.NewPos(float32(x), float32(y)))
}

// EnableDrawing ends a layout pass. The object is refreshed once so fyne
// repaints it at its new bounds.
func (o *object) EnableDrawing() {
	if o.drawing {
		return
	}
	o.drawing = true
	o.Refresh()
}

func (o *object) DisableDrawing() { o.drawing = false }

// host is the layout.Container view of a *fyne.Container. The client size is
// the size fyne passes to the most recent Layout call.
type host struct {
	container *fyne.Container
	padding   layout.Padding
	size      fyne.Size
}

func (h *host) Padding() layout.Padding { return h.padding }

func (h *host) ClientWidth() int {
	return int(h.size.Width)
}

func (h *host) ClientHeight() int {
	return int(h.size.Height)
}

// SetPreferredSize is a no-op: fyne reads the preferred size through
// Layout.MinSize.
func (h *host) SetPreferredSize(width, height int) {}

func (h *host) AddComponent(c layout.Component) {
	if h.container == nil {
		return
	}
	if o, ok := c.(*object); ok {
		h.container.Add(o.CanvasObject)
	}
}
