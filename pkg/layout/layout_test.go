package layout

import (
	"strings"
	"testing"
)

func TestLayoutEngine_TwoComponentsDefaultGap(t *testing.T) {
	c := newContainer(200, 100)
	le := NewLayoutEngine(c)
	a := newFake("a", 50, 20)
	b := newFake("b", 80, 30)
	le.Add(a, DefaultConstraints())
	le.Add(b, DefaultConstraints())

	le.ExecuteLayout(c)

	gap := DefaultMetrics().HorizontalGap
	if a.x != 0 || a.y != 0 {
		t.Errorf("a: expected (0,0), got (%d,%d)", a.x, a.y)
	}
	if b.x != 50+gap || b.y != 0 {
		t.Errorf("b: expected (%d,0), got (%d,%d)", 50+gap, b.x, b.y)
	}
	if a.w != 50 || a.h != 20 || b.w != 80 || b.h != 30 {
		t.Errorf("sizes: got a=%dx%d b=%dx%d", a.w, a.h, b.w, b.h)
	}
	row := le.Row(0)
	if row.Width() != 50+gap+80 {
		t.Errorf("row width: expected %d, got %d", 50+gap+80, row.Width())
	}
	if row.Height() != 30 {
		t.Errorf("row height: expected 30, got %d", row.Height())
	}
	if c.prefW != 137 || c.prefH != 30 {
		t.Errorf("preferred size: expected 137x30, got %dx%d", c.prefW, c.prefH)
	}
}

func TestLayoutEngine_LeftLabelMiddleAlignment(t *testing.T) {
	c := newContainer(200, 100)
	le := NewLayoutEngine(c)
	label := newFake("label", 40, 10)
	field := newFake("field", 60, 30)
	cons := DefaultConstraints()
	cons.LabelAlignment = AlignMiddle
	le.AddLabeled(label, field, cons)

	le.ExecuteLayout(c)

	if label.x != 0 || label.y != 10 {
		t.Errorf("label: expected (0,10), got (%d,%d)", label.x, label.y)
	}
	if field.x != 40 || field.y != 0 {
		t.Errorf("field: expected (40,0), got (%d,%d)", field.x, field.y)
	}
	if w := le.Row(0).Width(); w != 100 {
		t.Errorf("row width: expected 100, got %d", w)
	}
}

func TestLayoutEngine_SideLabelAlignment(t *testing.T) {
	tests := []struct {
		name        string
		orientation LabelOrientation
		alignment   LabelVerticalAlignment
		labelH      int
		fieldH      int
		wantLabel   [2]int
		wantField   [2]int
	}{
		{"left top", LabelLeft, AlignTop, 10, 30, [2]int{0, 0}, [2]int{20, 0}},
		{"left bottom", LabelLeft, AlignBottom, 10, 30, [2]int{0, 20}, [2]int{20, 0}},
		{"left middle tall label", LabelLeft, AlignMiddle, 30, 10, [2]int{0, 0}, [2]int{20, 10}},
		{"left bottom tall label", LabelLeft, AlignBottom, 30, 10, [2]int{0, 0}, [2]int{20, 20}},
		{"right middle", LabelRight, AlignMiddle, 10, 30, [2]int{40, 10}, [2]int{0, 0}},
		{"right bottom", LabelRight, AlignBottom, 10, 30, [2]int{40, 20}, [2]int{0, 0}},
		{"right middle tall label", LabelRight, AlignMiddle, 30, 10, [2]int{40, 0}, [2]int{0, 10}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newContainer(300, 100)
			le := NewLayoutEngine(c)
			label := newFake("label", 20, tt.labelH)
			field := newFake("field", 40, tt.fieldH)
			cons := DefaultConstraints()
			cons.LabelOrientation = tt.orientation
			cons.LabelAlignment = tt.alignment
			le.AddLabeled(label, field, cons)

			le.ExecuteLayout(c)

			if got := [2]int{label.x, label.y}; got != tt.wantLabel {
				t.Errorf("label: expected %v, got %v", tt.wantLabel, got)
			}
			if got := [2]int{field.x, field.y}; got != tt.wantField {
				t.Errorf("field: expected %v, got %v", tt.wantField, got)
			}
			if w := le.Row(0).Width(); w != 60 {
				t.Errorf("row width: expected 60, got %d", w)
			}
		})
	}
}

func TestLayoutEngine_GapResolution(t *testing.T) {
	gap := DefaultMetrics().HorizontalGap
	tests := []struct {
		name      string
		prevRight int
		currLeft  int
		want      int
	}{
		{"both unspecified", Unspecified, Unspecified, gap},
		{"prev specified smaller", 3, Unspecified, gap},
		{"prev specified larger", 20, Unspecified, 20},
		{"curr specified larger", Unspecified, 12, 12},
		{"curr specified smaller", Unspecified, 2, gap},
		{"both specified", 10, 4, 10},
		{"both zero", 0, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newContainer(400, 100)
			le := NewLayoutEngine(c)
			a := newFake("a", 50, 20)
			b := newFake("b", 30, 20)
			ca := DefaultConstraints()
			ca.GapRight = tt.prevRight
			cb := DefaultConstraints()
			cb.GapLeft = tt.currLeft
			le.Add(a, ca)
			le.Add(b, cb)

			le.ExecuteLayout(c)

			if b.x != 50+tt.want {
				t.Errorf("expected gap %d (b.x=%d), got b.x=%d", tt.want, 50+tt.want, b.x)
			}
		})
	}
}

func TestLayoutEngine_RowSpacingAddsToGap(t *testing.T) {
	c := newContainer(400, 100)
	le := NewLayoutEngine(c)
	a := newFake("a", 50, 20)
	b := newFake("b", 30, 20)
	le.AddRow().SetSpacing(5).Add(a, DefaultConstraints()).Add(b, DefaultConstraints())

	le.ExecuteLayout(c)

	if b.x != 50+5+7 {
		t.Errorf("expected b.x=62, got %d", b.x)
	}
	if got := le.HorizontalSpaceBetweenComponents(0); got != 5 {
		t.Errorf("expected spacing 5, got %d", got)
	}
}

func TestLayoutEngine_SizeGroup(t *testing.T) {
	c := newContainer(300, 100)
	le := NewLayoutEngine(c)
	a := newFake("a", 40, 20)
	b := newFake("b", 70, 25)
	cons := DefaultConstraints()
	cons.SizeGroup = 3
	le.Add(a, cons)
	le.AddRow()
	le.Add(b, cons)

	le.ExecuteLayout(c)

	for _, f := range []*fakeComponent{a, b} {
		if f.w != 70 || f.h != 25 {
			t.Errorf("%s: expected 70x25, got %dx%d", f.name, f.w, f.h)
		}
	}
	members := le.SizeGroups().Members(3)
	if len(members) != 2 || members[0].Role != ComponentRole {
		t.Errorf("unexpected members %v", members)
	}
}

func TestLayoutEngine_LabelSizeGroup(t *testing.T) {
	c := newContainer(300, 200)
	le := NewLayoutEngine(c)
	shortLabel := newFake("short", 30, 10)
	longLabel := newFake("long", 55, 12)
	f1 := newFake("f1", 100, 20)
	f2 := newFake("f2", 100, 20)
	cons := DefaultConstraints()
	cons.LabelSizeGroup = 1
	le.AddLabeled(shortLabel, f1, cons)
	le.AddRow()
	le.AddLabeled(longLabel, f2, cons)

	le.ExecuteLayout(c)

	if shortLabel.w != 55 || shortLabel.h != 12 {
		t.Errorf("short label: expected 55x12, got %dx%d", shortLabel.w, shortLabel.h)
	}
	if f1.x != 55 || f2.x != 55 {
		t.Errorf("fields should line up at x=55, got %d and %d", f1.x, f2.x)
	}
	if f1.w != 100 {
		t.Errorf("component should keep its own size, got width %d", f1.w)
	}
}

func TestLayoutEngine_RowOrientation(t *testing.T) {
	tests := []struct {
		name        string
		orientation RowOrientation
		pad         Padding
		wantX       int
	}{
		{"left", RowLeft, Padding{}, 0},
		{"center", RowCenter, Padding{}, 50},
		{"right", RowRight, Padding{}, 100},
		{"center padded", RowCenter, Padding{Left: 10, Right: 10}, 50},
		{"right padded", RowRight, Padding{Left: 10, Right: 20}, 80},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newContainer(200, 100)
			c.pad = tt.pad
			le := NewLayoutEngine(c)
			label := newFake("label", 20, 10)
			field := newFake("field", 80, 20)
			le.AddRow().SetOrientation(tt.orientation).AddLabeled(label, field, DefaultConstraints())

			le.ExecuteLayout(c)

			if label.x != tt.wantX {
				t.Errorf("label: expected x=%d, got %d", tt.wantX, label.x)
			}
			if field.x != tt.wantX+20 {
				t.Errorf("field: expected x=%d, got %d", tt.wantX+20, field.x)
			}
		})
	}
}

func TestLayoutEngine_OrientationWithoutRoom(t *testing.T) {
	c := newContainer(50, 100)
	le := NewLayoutEngine(c)
	a := newFake("a", 80, 20)
	le.AddRow().SetOrientation(RowRight).Add(a, DefaultConstraints())

	le.ExecuteLayout(c)

	if a.x != 0 {
		t.Errorf("expected no shift, got x=%d", a.x)
	}
}

func TestLayoutEngine_RowsAndPadding(t *testing.T) {
	c := newContainer(200, 50)
	c.pad = Padding{Left: 4, Right: 6, Top: 5, Bottom: 5}
	le := NewLayoutEngine(c)
	a := newFake("a", 50, 20)
	b := newFake("b", 70, 30)
	le.Add(a, DefaultConstraints())
	le.AddRow()
	le.Add(b, DefaultConstraints())

	le.ExecuteLayout(c)

	if a.x != 4 || a.y != 5 {
		t.Errorf("a: expected (4,5), got (%d,%d)", a.x, a.y)
	}
	if b.x != 4 || b.y != 5+20+11 {
		t.Errorf("b: expected (4,36), got (%d,%d)", b.x, b.y)
	}
	if h := le.Row(1).Height(); h != 41 {
		t.Errorf("second row height includes row space: expected 41, got %d", h)
	}
	if c.prefW != 4+6+70 || c.prefH != 10+20+41 {
		t.Errorf("preferred size: expected 80x71, got %dx%d", c.prefW, c.prefH)
	}
}

func TestLayoutEngine_VerticalSpaceBetweenRows(t *testing.T) {
	c := newContainer(200, 50)
	le := NewLayoutEngine(c)
	if le.VerticalSpaceBetweenRows() != Unspecified {
		t.Fatalf("expected unspecified row space, got %d", le.VerticalSpaceBetweenRows())
	}
	a := newFake("a", 50, 20)
	b := newFake("b", 50, 20)
	le.Add(a, DefaultConstraints())
	le.AddRow().Add(b, DefaultConstraints())
	le.SetVerticalSpaceBetweenRows(0)

	le.ExecuteLayout(c)

	if b.y != 20 {
		t.Errorf("expected b.y=20, got %d", b.y)
	}

	custom := DefaultMetrics()
	custom.VerticalRowSpace = 3
	le2 := NewLayoutEngine(c, custom)
	le2.Add(a, DefaultConstraints())
	le2.AddRow().Add(b, DefaultConstraints())
	le2.ExecuteLayout(c)
	if b.y != 23 {
		t.Errorf("expected metrics row space 3 (b.y=23), got %d", b.y)
	}
}

func TestLayoutEngine_TopLabelRow(t *testing.T) {
	c := newContainer(300, 40)
	le := NewLayoutEngine(c)
	label := newFake("label", 30, 12)
	field := newFake("field", 60, 20)
	plain := newFake("plain", 40, 20)
	next := newFake("next", 40, 20)
	cons := DefaultConstraints()
	cons.LabelOrientation = LabelTop
	le.AddLabeled(label, field, cons)
	le.Add(plain, DefaultConstraints())
	le.AddRow().Add(next, DefaultConstraints())

	le.ExecuteLayout(c)

	if label.x != 0 || label.y != 0 {
		t.Errorf("label: expected (0,0), got (%d,%d)", label.x, label.y)
	}
	if field.x != 0 || field.y != 12 {
		t.Errorf("field: expected (0,12), got (%d,%d)", field.x, field.y)
	}
	if plain.x != 67 || plain.y != 12 {
		t.Errorf("plain: expected (67,12) below the label row, got (%d,%d)", plain.x, plain.y)
	}
	if h := le.Row(0).Height(); h != 32 {
		t.Errorf("row height: expected 32, got %d", h)
	}
	if next.y != 32+11 {
		t.Errorf("next row: expected y=43, got %d", next.y)
	}
	if le.Row(0).Above().Len() != 1 || le.Row(0).Below() != nil {
		t.Errorf("expected one label row above and none below")
	}
}

func TestLayoutEngine_BottomLabelRow(t *testing.T) {
	c := newContainer(300, 40)
	le := NewLayoutEngine(c)
	label := newFake("label", 30, 12)
	field := newFake("field", 60, 20)
	cons := DefaultConstraints()
	cons.LabelOrientation = LabelBottom
	le.AddLabeled(label, field, cons)

	le.ExecuteLayout(c)

	if field.x != 0 || field.y != 0 {
		t.Errorf("field: expected (0,0), got (%d,%d)", field.x, field.y)
	}
	if label.x != 0 || label.y != 20 {
		t.Errorf("label: expected (0,20), got (%d,%d)", label.x, label.y)
	}
	if h := le.Row(0).Height(); h != 32 {
		t.Errorf("row height: expected 32, got %d", h)
	}
	if w := le.Row(0).Width(); w != 60 {
		t.Errorf("bottom label must not widen the row, got %d", w)
	}
}

func TestLayoutEngine_LabelRowFollowsSizeGroup(t *testing.T) {
	c := newContainer(300, 200)
	le := NewLayoutEngine(c)
	top := newFake("top", 30, 10)
	field := newFake("field", 60, 20)
	side := newFake("side", 20, 18)
	other := newFake("other", 60, 20)

	topCons := DefaultConstraints()
	topCons.LabelOrientation = LabelTop
	topCons.LabelSizeGroup = 1
	le.AddLabeled(top, field, topCons)

	sideCons := DefaultConstraints()
	sideCons.LabelSizeGroup = 1
	le.AddRow().AddLabeled(side, other, sideCons)

	le.ExecuteLayout(c)

	if top.h != 18 {
		t.Errorf("top label: expected grouped height 18, got %d", top.h)
	}
	if field.y != 18 {
		t.Errorf("field: expected y=18 below the grouped label row, got %d", field.y)
	}
}

func TestLayoutEngine_GrowX(t *testing.T) {
	c := newContainer(200, 20)
	le := NewLayoutEngine(c)
	a := newFake("a", 50, 20)
	b := newFake("b", 30, 20)
	d := newFake("d", 30, 20)
	grow := DefaultConstraints()
	grow.GrowX = true
	le.Add(a, grow)
	le.Add(b, grow)
	le.Add(d, DefaultConstraints())

	le.ExecuteLayout(c)

	// row width = 50+7+30+7+30 = 124, remaining 76
	if a.w != 126 {
		t.Errorf("a: expected width 126, got %d", a.w)
	}
	if b.w != 30 {
		t.Errorf("b: only the first grower absorbs slack, got width %d", b.w)
	}
	if b.x != 57+76 || d.x != 94+76 {
		t.Errorf("expected later entries shifted by 76, got b.x=%d d.x=%d", b.x, d.x)
	}
}

func TestLayoutEngine_GrowXMovesLabels(t *testing.T) {
	c := newContainer(200, 20)
	le := NewLayoutEngine(c)
	a := newFake("a", 50, 20)
	label := newFake("label", 20, 20)
	b := newFake("b", 30, 20)
	grow := DefaultConstraints()
	grow.GrowX = true
	le.Add(a, grow)
	le.AddLabeled(label, b, DefaultConstraints())

	le.ExecuteLayout(c)

	// row width = 50+7+20+30 = 107, remaining 93
	if label.x != 57+93 || b.x != 77+93 {
		t.Errorf("expected label and component shifted by 93, got label.x=%d b.x=%d", label.x, b.x)
	}
}

func TestLayoutEngine_GrowY(t *testing.T) {
	c := newContainer(200, 200)
	le := NewLayoutEngine(c)
	a := newFake("a", 50, 20)
	b := newFake("b", 50, 30)
	side := newFake("side", 40, 10)
	grow := DefaultConstraints()
	grow.GrowY = true
	le.Add(a, grow)
	le.AddRow().Add(b, grow).Add(side, DefaultConstraints())

	le.ExecuteLayout(c)

	// rows: 20 and 11+30=41, container 61, slack 139
	if a.h != 20+139 {
		t.Errorf("a: expected height 159, got %d", a.h)
	}
	if b.y != 31+139 || side.y != 31+139 {
		t.Errorf("expected second row pushed down by 139, got b.y=%d side.y=%d", b.y, side.y)
	}
	if b.h != 41 {
		t.Errorf("b: expected to fill its row (41) and nothing more, got %d", b.h)
	}
}

func TestLayoutEngine_GrowXMovesOwnRightLabel(t *testing.T) {
	c := newContainer(200, 20)
	le := NewLayoutEngine(c)
	a := newFake("a", 50, 20)
	label := newFake("label", 20, 20)
	grow := DefaultConstraints()
	grow.GrowX = true
	grow.LabelOrientation = LabelRight
	le.AddLabeled(label, a, grow)

	le.ExecuteLayout(c)

	// row width = 50+20 = 70, remaining 130
	if bounds(a) != [4]int{0, 0, 180, 20} {
		t.Errorf("a: expected (0,0) 180x20, got %v", bounds(a))
	}
	if label.x != 180 {
		t.Errorf("expected right label to follow the grown edge to x=180, got %d", label.x)
	}
}

func TestLayoutEngine_GrowYMovesOwnBottomLabel(t *testing.T) {
	c := newContainer(200, 100)
	le := NewLayoutEngine(c)
	a := newFake("a", 50, 20)
	label := newFake("label", 20, 10)
	grow := DefaultConstraints()
	grow.GrowY = true
	grow.LabelOrientation = LabelBottom
	le.AddLabeled(label, a, grow)

	le.ExecuteLayout(c)

	// row height = 20 + 10 below = 30, slack 70
	if bounds(a) != [4]int{0, 0, 50, 90} {
		t.Errorf("a: expected (0,0) 50x90, got %v", bounds(a))
	}
	if label.y != 90 {
		t.Errorf("expected bottom label below the grown component at y=90, got %d", label.y)
	}
	if label.y+label.h != c.height {
		t.Errorf("expected bottom label to end at the container edge, got %d", label.y+label.h)
	}
}

func TestLayoutEngine_NoSlackNoGrowth(t *testing.T) {
	c := newContainer(40, 10)
	le := NewLayoutEngine(c)
	a := newFake("a", 50, 20)
	grow := DefaultConstraints()
	grow.GrowX = true
	grow.GrowY = true
	le.Add(a, grow)

	le.ExecuteLayout(c)

	if a.w != 50 || a.h != 20 {
		t.Errorf("expected 50x20 without slack, got %dx%d", a.w, a.h)
	}
}

func TestLayoutEngine_Idempotent(t *testing.T) {
	c := newContainer(320, 240)
	c.pad = Padding{Left: 3, Right: 3, Top: 2, Bottom: 2}
	le := NewLayoutEngine(c)
	var all []*fakeComponent
	mk := func(name string, w, h int) *fakeComponent {
		f := newFake(name, w, h)
		all = append(all, f)
		return f
	}

	top := DefaultConstraints()
	top.LabelOrientation = LabelTop
	top.LabelSizeGroup = 2
	growX := DefaultConstraints()
	growX.GrowX = true
	growX.SizeGroup = 1
	middle := DefaultConstraints()
	middle.LabelAlignment = AlignMiddle
	bottom := DefaultConstraints()
	bottom.LabelOrientation = LabelBottom
	bottom.GrowY = true
	button := DefaultConstraints()
	button.SizeGroup = 1

	le.AddLabeled(mk("name", 40, 12), mk("nameField", 100, 22), top)
	le.Add(mk("stretch", 30, 20), growX)
	le.AddRow().SetOrientation(RowCenter).AddLabeled(mk("mid", 25, 9), mk("midField", 80, 25), middle)
	le.AddRow().AddLabeled(mk("foot", 35, 14), mk("area", 90, 40), bottom)
	le.AddRow().SetOrientation(RowRight).Add(mk("ok", 75, 23), button)

	le.ExecuteLayout(c)
	first := make([][4]int, len(all))
	for i, f := range all {
		first[i] = bounds(f)
	}
	prefW, prefH := c.prefW, c.prefH

	le.ExecuteLayout(c)
	for i, f := range all {
		if got := bounds(f); got != first[i] {
			t.Errorf("%s: second pass %v differs from first %v", f.name, got, first[i])
		}
	}
	if c.prefW != prefW || c.prefH != prefH {
		t.Errorf("preferred size changed: %dx%d then %dx%d", prefW, prefH, c.prefW, c.prefH)
	}
}

func TestLayoutEngine_DrawingBracket(t *testing.T) {
	c := newContainer(200, 100)
	le := NewLayoutEngine(c)
	var log []string
	label := newFake("label", 20, 10)
	field := newFake("field", 40, 10)
	other := newFake("other", 40, 10)
	for _, f := range []*fakeComponent{label, field, other} {
		f.log = &log
	}
	le.AddLabeled(label, field, DefaultConstraints())
	le.Add(other, DefaultConstraints())

	le.ExecuteLayout(c)

	want := []string{
		"disable label", "disable field", "disable other",
		"size label", "size field", "size other",
		"move label", "move field", "move other",
		"enable label", "enable field", "enable other",
	}
	if strings.Join(log, ",") != strings.Join(want, ",") {
		t.Errorf("unexpected call order:\n got %v\nwant %v", log, want)
	}
	for _, f := range []*fakeComponent{label, field, other} {
		if !f.drawing || f.disableCalls != 1 || f.enableCalls != 1 {
			t.Errorf("%s: drawing=%v disable=%d enable=%d", f.name, f.drawing, f.disableCalls, f.enableCalls)
		}
	}
}

// panicky panics when measured, to check drawing is restored on a failed pass.
type panicky struct{ *fakeComponent }

func (p panicky) PreferredWidth() int { panic("measure failed") }

func TestLayoutEngine_DrawingRestoredOnPanic(t *testing.T) {
	c := newContainer(200, 100)
	le := NewLayoutEngine(c)
	good := newFake("good", 10, 10)
	bad := panicky{newFake("bad", 10, 10)}
	le.Add(good, DefaultConstraints())
	le.Add(bad, DefaultConstraints())

	func() {
		defer func() {
			if recover() == nil {
				t.Fatal("expected panic")
			}
		}()
		le.ExecuteLayout(c)
	}()

	if !good.drawing || !bad.drawing {
		t.Errorf("drawing must be re-enabled after a failed pass")
	}
}

func TestLayoutEngine_PreferredSizeHasNoSideEffects(t *testing.T) {
	c := newContainer(200, 100)
	le := NewLayoutEngine(c)
	a := newFake("a", 50, 20)
	b := newFake("b", 80, 30)
	le.Add(a, DefaultConstraints()).Add(b, DefaultConstraints())

	size := le.PreferredSize(c)

	if size != (Size{Width: 137, Height: 30}) {
		t.Errorf("expected 137x30, got %v", size)
	}
	if c.prefCalls != 0 || a.w != 0 || a.disableCalls != 0 {
		t.Errorf("PreferredSize must not touch the container or components")
	}
	if _, ok := le.Geometry(0); ok {
		t.Errorf("PreferredSize must not commit geometry")
	}
}

func TestLayoutEngine_Geometry(t *testing.T) {
	c := newContainer(200, 100)
	le := NewLayoutEngine(c)
	label := newFake("label", 20, 10)
	field := newFake("field", 40, 30)
	cons := DefaultConstraints()
	cons.LabelAlignment = AlignBottom
	le.AddLabeled(label, field, cons)
	le.ExecuteLayout(c)

	id, ok := le.Entry(field)
	if !ok {
		t.Fatal("entry not found")
	}
	g, ok := le.Geometry(id)
	if !ok {
		t.Fatal("geometry not found")
	}
	want := Geometry{
		LabelWidth: 20, LabelHeight: 10, LabelX: 0, LabelY: 20,
		Width: 40, Height: 30, X: 20, Y: 0,
		GapLeft: Unspecified, GapRight: Unspecified,
	}
	if g != want {
		t.Errorf("expected %+v, got %+v", want, g)
	}
}

func TestLayoutEngine_PreferredSizeQueriedEachPass(t *testing.T) {
	c := newContainer(200, 100)
	le := NewLayoutEngine(c)
	a := newFake("a", 50, 20)
	le.Add(a, DefaultConstraints())

	le.ExecuteLayout(c)
	a.prefW = 90
	le.ExecuteLayout(c)

	if a.w != 90 || a.prefQueries != 2 {
		t.Errorf("expected fresh measurement each pass, got width %d after %d queries", a.w, a.prefQueries)
	}
}
