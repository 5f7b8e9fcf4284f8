package script

import (
	"fmt"
	"io"

	"rowkit/pkg/layout"
)

// Box is a named rectangle in a scene. It stands in for a widget: the layout
// engine sizes and places it like any other component.
type Box struct {
	Name string
	Text string
	Role layout.Role

	// Label is the box's label, if it has one.
	Label *Box

	PrefWidth  int
	PrefHeight int

	X, Y          int
	Width, Height int

	drawing bool
}

var _ layout.Label = (*Box)(nil)

func newBox(name, text string, role layout.Role, w, h int) *Box {
	return &Box{Name: name, Text: text, Role: role, PrefWidth: w, PrefHeight: h, drawing: true}
}

func (b *Box) PreferredWidth() int  { return b.PrefWidth }
func (b *Box) PreferredHeight() int { return b.PrefHeight }

func (b *Box) SetSize(width, height int) {
	b.Width, b.Height = width, height
}

func (b *Box) SetLocation(x, y int) {
	b.X, b.Y = x, y
}

func (b *Box) EnableDrawing()  { b.drawing = true }
func (b *Box) DisableDrawing() { b.drawing = false }

// Drawing reports whether the box may currently be painted.
func (b *Box) Drawing() bool { return b.drawing }

func (b *Box) String() string {
	return fmt.Sprintf("%s %s (%d,%d) %dx%d", b.Role, b.Name, b.X, b.Y, b.Width, b.Height)
}

// Panel is the container a scene is laid out in. Width and Height are the
// full client size including padding.
type Panel struct {
	Pad    layout.Padding
	Width  int
	Height int

	PrefWidth  int
	PrefHeight int

	// Children lists boxes in the order the layout handed them over.
	Children []*Box
}

var _ layout.Container = (*Panel)(nil)

func (p *Panel) Padding() layout.Padding { return p.Pad }
func (p *Panel) ClientWidth() int        { return p.Width }
func (p *Panel) ClientHeight() int       { return p.Height }

func (p *Panel) SetPreferredSize(width, height int) {
	p.PrefWidth, p.PrefHeight = width, height
}

func (p *Panel) AddComponent(c layout.Component) {
	if b, ok := c.(*Box); ok {
		p.Children = append(p.Children, b)
	}
}

func (p *Panel) remove(b *Box) {
	for i, child := range p.Children {
		if child == b {
			p.Children = append(p.Children[:i], p.Children[i+1:]...)
			return
		}
	}
}

// Dump writes one line per child with its resolved geometry.
func (p *Panel) Dump(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "panel %dx%d preferred %dx%d\n", p.Width, p.Height, p.PrefWidth, p.PrefHeight); err != nil {
		return err
	}
	for _, b := range p.Children {
		if _, err := fmt.Fprintln(w, b); err != nil {
			return err
		}
	}
	return nil
}
