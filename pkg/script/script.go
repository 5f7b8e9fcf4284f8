// Package script evaluates scene descriptions written in JavaScript. A scene
// script builds rows of named boxes through a global "layout" object; the
// result is a Panel laid out by the row layout engine.
//
//	layout.add({name: "name", label: "Name:", width: 120, height: 23, growX: true})
//	layout.addRow().setOrientation("right")
//	layout.button("ok")
//	layout.button("cancel")
package script

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/dop251/goja"

	"rowkit/pkg/layout"
	"rowkit/pkg/text"
)

// Options configures how a scene is evaluated and laid out.
type Options struct {
	// Width and Height are the panel's client size. Zero uses the
	// preferred size.
	Width, Height int
	Padding       layout.Padding

	// Metrics defaults to layout.DefaultMetrics when zero.
	Metrics layout.Metrics

	// Fonts measures label text. The zero value measures with gg's
	// built-in face.
	Fonts text.FontConfig

	// Stdout and Stderr receive console output. They default to the
	// process's standard streams.
	Stdout io.Writer
	Stderr io.Writer
}

// Scene is the result of evaluating a scene script.
type Scene struct {
	Panel  *Panel
	Engine *layout.LayoutEngine

	boxes map[string]*Box
	fonts text.FontConfig
}

func newScene(opts Options) *Scene {
	m := opts.Metrics
	if m == (layout.Metrics{}) {
		m = layout.DefaultMetrics()
	}
	panel := &Panel{Pad: opts.Padding}
	return &Scene{
		Panel:  panel,
		Engine: layout.NewLayoutEngine(panel, m),
		boxes:  make(map[string]*Box),
		fonts:  opts.Fonts,
	}
}

// Run evaluates src and lays the resulting scene out. name is used in
// script error messages.
func Run(name, src string, opts Options) (*Scene, error) {
	s := newScene(opts)

	vm := goja.New()
	c := &consoleAPI{out: opts.Stdout, errOut: opts.Stderr}
	if c.out == nil {
		c.out = os.Stdout
	}
	if c.errOut == nil {
		c.errOut = os.Stderr
	}
	c.register(vm)
	s.register(vm)

	if _, err := vm.RunScript(name, src); err != nil {
		return nil, fmt.Errorf("scene %s: %w", name, err)
	}

	s.Layout(opts.Width, opts.Height)
	return s, nil
}

// RunFile reads a scene script from path and runs it.
func RunFile(path string, opts Options) (*Scene, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scene: %w", err)
	}
	return Run(filepath.Base(path), string(src), opts)
}

// Layout sizes the panel and runs a layout pass. A width or height of zero
// or less uses the preferred size in that direction.
func (s *Scene) Layout(width, height int) {
	if width <= 0 || height <= 0 {
		pref := s.Engine.PreferredSize(s.Panel)
		if width <= 0 {
			width = pref.Width
		}
		if height <= 0 {
			height = pref.Height
		}
	}
	s.Panel.Width, s.Panel.Height = width, height
	s.Engine.ExecuteLayout(s.Panel)
}

// Box returns the component box with the given name, or nil.
func (s *Scene) Box(name string) *Box {
	return s.boxes[name]
}

// Fonts returns the font configuration labels were measured with.
func (s *Scene) Fonts() text.FontConfig {
	return s.fonts
}

// Remove takes the named box and its label out of the scene. It reports
// whether the box existed.
func (s *Scene) Remove(name string) bool {
	b, ok := s.boxes[name]
	if !ok {
		return false
	}
	s.Engine.Remove(b)
	s.Panel.remove(b)
	if b.Label != nil {
		s.Panel.remove(b.Label)
	}
	delete(s.boxes, name)
	return true
}
