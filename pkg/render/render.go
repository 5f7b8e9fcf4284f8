package render

import (
	"image"
	"image/color"

	"github.com/fogleman/gg"

	"rowkit/pkg/layout"
	"rowkit/pkg/script"
	"rowkit/pkg/text"
)

// Colors used when painting a panel.
var (
	Background    = color.RGBA{255, 255, 255, 255}
	PaddingFrame  = color.RGBA{200, 200, 200, 255}
	ComponentFill = color.RGBA{221, 232, 245, 255}
	ComponentEdge = color.RGBA{74, 111, 165, 255}
	ComponentText = color.RGBA{40, 40, 40, 255}
	LabelText     = color.RGBA{0, 0, 0, 255}
)

type Renderer struct {
	context *gg.Context
}

// NewRenderer creates a width x height canvas. Text is drawn with fonts[0]
// when given and with gg's built-in face otherwise.
func NewRenderer(width, height int, fonts ...text.FontConfig) *Renderer {
	r := &Renderer{context: gg.NewContext(width, height)}
	if len(fonts) > 0 {
		fonts[0].Apply(r.context, false)
	}
	return r
}

// RenderPanel draws p on a canvas of the panel's client size.
func RenderPanel(p *script.Panel, fonts text.FontConfig) *Renderer {
	r := NewRenderer(p.Width, p.Height, fonts)
	r.Render(p)
	return r
}

func (r *Renderer) Render(p *script.Panel) {
	r.context.SetColor(Background)
	r.context.Clear()

	r.drawPaddingFrame(p)
	for _, b := range p.Children {
		if !b.Drawing() {
			continue
		}
		if b.Role == layout.LabelRole {
			r.drawLabel(b)
		} else {
			r.drawComponent(b)
		}
	}
}

// drawPaddingFrame outlines the area inside the panel's padding.
func (r *Renderer) drawPaddingFrame(p *script.Panel) {
	pad := p.Pad
	if pad == (layout.Padding{}) {
		return
	}
	w := float64(p.Width - pad.Left - pad.Right)
	h := float64(p.Height - pad.Top - pad.Bottom)
	if w <= 1 || h <= 1 {
		return
	}
	r.context.SetColor(PaddingFrame)
	r.context.SetLineWidth(1)
	r.context.DrawRectangle(float64(pad.Left)+0.5, float64(pad.Top)+0.5, w-1, h-1)
	r.context.Stroke()
}

func (r *Renderer) drawComponent(b *script.Box) {
	if b.Width <= 0 || b.Height <= 0 {
		return
	}
	x, y := float64(b.X), float64(b.Y)
	w, h := float64(b.Width), float64(b.Height)

	r.context.SetColor(ComponentFill)
	r.context.DrawRectangle(x, y, w, h)
	r.context.Fill()

	if w > 1 && h > 1 {
		r.context.SetColor(ComponentEdge)
		r.context.SetLineWidth(1)
		r.context.DrawRectangle(x+0.5, y+0.5, w-1, h-1)
		r.context.Stroke()
	}

	if b.Text != "" {
		r.context.SetColor(ComponentText)
		r.context.DrawStringAnchored(b.Text, x+w/2, y+h/2, 0.5, 0.5)
	}
}

// drawLabel draws the label's text from its top-left corner.
func (r *Renderer) drawLabel(b *script.Box) {
	if b.Text == "" {
		return
	}
	r.context.SetColor(LabelText)
	r.context.DrawStringAnchored(b.Text, float64(b.X), float64(b.Y), 0, 1)
}

// Image returns the rendered canvas.
func (r *Renderer) Image() image.Image {
	return r.context.Image()
}

// SavePNG saves the rendered image to a file
func (r *Renderer) SavePNG(filename string) error {
	return r.context.SavePNG(filename)
}
