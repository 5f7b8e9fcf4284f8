package script

import (
	"github.com/dop251/goja"

	"rowkit/pkg/layout"
)

// register installs the global layout object.
func (s *Scene) register(vm *goja.Runtime) {
	obj := vm.NewObject()

	obj.Set("addRow", func(call goja.FunctionCall) goja.Value {
		return s.rowObject(vm, s.Engine.AddRow())
	})

	obj.Set("add", func(call goja.FunctionCall) goja.Value {
		comp, label, cons := s.parseBox(vm, "layout.add", call.Argument(0))
		return s.rowObject(vm, s.Engine.AddLabeled(labelOrNil(label), comp, cons))
	})

	obj.Set("button", func(call goja.FunctionCall) goja.Value {
		b := s.button(vm, "layout.button", call)
		return s.rowObject(vm, s.Engine.Add(b, layout.DefaultConstraints()))
	})

	obj.Set("remove", func(call goja.FunctionCall) goja.Value {
		return vm.ToValue(s.Remove(call.Argument(0).String()))
	})

	obj.Set("setVerticalSpaceBetweenRows", func(call goja.FunctionCall) goja.Value {
		s.Engine.SetVerticalSpaceBetweenRows(int(call.Argument(0).ToInteger()))
		return goja.Undefined()
	})

	obj.Set("rowCount", func(call goja.FunctionCall) goja.Value {
		return vm.ToValue(s.Engine.RowCount())
	})

	obj.Set("componentCount", func(call goja.FunctionCall) goja.Value {
		return vm.ToValue(s.Engine.ComponentCount())
	})

	vm.Set("layout", obj)
}

// rowObject wraps a row for scripts. Setters return the row for chaining.
func (s *Scene) rowObject(vm *goja.Runtime, row *layout.Row) goja.Value {
	obj := vm.NewObject()

	obj.Set("add", func(call goja.FunctionCall) goja.Value {
		comp, label, cons := s.parseBox(vm, "row.add", call.Argument(0))
		row.AddLabeled(labelOrNil(label), comp, cons)
		return obj
	})

	obj.Set("button", func(call goja.FunctionCall) goja.Value {
		row.Add(s.button(vm, "row.button", call), layout.DefaultConstraints())
		return obj
	})

	obj.Set("setOrientation", func(call goja.FunctionCall) goja.Value {
		o, err := layout.ParseRowOrientation(call.Argument(0).String())
		if err != nil {
			panic(vm.NewTypeError("row.setOrientation: %v", err))
		}
		row.SetOrientation(o)
		return obj
	})

	obj.Set("setSpacing", func(call goja.FunctionCall) goja.Value {
		row.SetSpacing(int(call.Argument(0).ToInteger()))
		return obj
	})

	obj.Set("length", func(call goja.FunctionCall) goja.Value {
		return vm.ToValue(row.Len())
	})

	return obj
}

// labelOrNil keeps a nil *Box from becoming a non-nil layout.Label.
func labelOrNil(b *Box) layout.Label {
	if b == nil {
		return nil
	}
	return b
}

func (s *Scene) claim(vm *goja.Runtime, fn, name string) {
	if name == "" {
		panic(vm.NewTypeError("%s: component needs a name", fn))
	}
	if _, dup := s.boxes[name]; dup {
		panic(vm.NewTypeError("%s: duplicate component name %q", fn, name))
	}
}

// button creates a box with the platform button size.
func (s *Scene) button(vm *goja.Runtime, fn string, call goja.FunctionCall) *Box {
	name := ""
	if v := call.Argument(0); !goja.IsUndefined(v) && !goja.IsNull(v) {
		name = v.String()
	}
	s.claim(vm, fn, name)

	label := name
	if v := call.Argument(1); !goja.IsUndefined(v) && !goja.IsNull(v) {
		label = v.String()
	}
	size := s.Engine.Metrics().ButtonSize()
	b := newBox(name, label, layout.ComponentRole, size.Width, size.Height)
	s.boxes[name] = b
	return b
}

// parseBox turns a component description into a box, its optional label and
// constraints. Invalid descriptions raise a TypeError in the script.
func (s *Scene) parseBox(vm *goja.Runtime, fn string, arg goja.Value) (*Box, *Box, layout.Constraints) {
	if goja.IsUndefined(arg) || goja.IsNull(arg) {
		panic(vm.NewTypeError("%s: expected a component description", fn))
	}
	obj := arg.ToObject(vm)

	name := stringField(obj, "name", "")
	s.claim(vm, fn, name)

	width := intField(obj, "width", 0)
	height := intField(obj, "height", 0)
	if width < 0 || height < 0 {
		panic(vm.NewTypeError("%s: %s has a negative size", fn, name))
	}
	comp := newBox(name, stringField(obj, "text", ""), layout.ComponentRole, width, height)

	cons := layout.DefaultConstraints()
	cons.SizeGroup = intField(obj, "sizeGroup", layout.NoGroup)
	cons.LabelSizeGroup = intField(obj, "labelSizeGroup", layout.NoGroup)
	cons.GapLeft = intField(obj, "gapLeft", layout.Unspecified)
	cons.GapRight = intField(obj, "gapRight", layout.Unspecified)
	cons.GrowX = boolField(obj, "growX")
	cons.GrowY = boolField(obj, "growY")

	if v := stringField(obj, "labelOrientation", ""); v != "" {
		o, err := layout.ParseLabelOrientation(v)
		if err != nil {
			panic(vm.NewTypeError("%s: %v", fn, err))
		}
		cons.LabelOrientation = o
	}
	if v := stringField(obj, "labelAlignment", ""); v != "" {
		a, err := layout.ParseLabelVerticalAlignment(v)
		if err != nil {
			panic(vm.NewTypeError("%s: %v", fn, err))
		}
		cons.LabelAlignment = a
	}

	var label *Box
	if caption := stringField(obj, "label", ""); caption != "" {
		lw, lh := s.fonts.Measure(caption, false)
		lw = intField(obj, "labelWidth", lw)
		lh = intField(obj, "labelHeight", lh)
		if lw < 0 || lh < 0 {
			panic(vm.NewTypeError("%s: %s has a negative label size", fn, name))
		}
		label = newBox(name+".label", caption, layout.LabelRole, lw, lh)
		comp.Label = label
	}

	s.boxes[name] = comp
	return comp, label, cons
}

func field(obj *goja.Object, key string) goja.Value {
	v := obj.Get(key)
	if v == nil || goja.IsUndefined(v) || goja.IsNull(v) {
		return nil
	}
	return v
}

func stringField(obj *goja.Object, key, def string) string {
	if v := field(obj, key); v != nil {
		return v.String()
	}
	return def
}

func intField(obj *goja.Object, key string, def int) int {
	if v := field(obj, key); v != nil {
		return int(v.ToInteger())
	}
	return def
}

func boolField(obj *goja.Object, key string) bool {
	if v := field(obj, key); v != nil {
		return v.ToBoolean()
	}
	return false
}
