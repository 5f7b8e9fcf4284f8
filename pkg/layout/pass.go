package layout

// pass is the resolved state of one layout pass. It is built from scratch on
// every pass so phases never see values left over from an earlier one.
type pass struct {
	geom      []Geometry // indexed by EntryID
	rows      []rowGeometry
	preferred Size
}

type rowGeometry struct {
	width  int
	height int
	above  int // tallest label in the label row above
	below  int // tallest label in the label row below
}

func (le *LayoutEngine) newPass() *pass {
	p := &pass{
		geom: make([]Geometry, le.entries.size()),
		rows: make([]rowGeometry, len(le.rows)),
	}
	for i := range p.geom {
		p.geom[i].GapLeft = Unspecified
		p.geom[i].GapRight = Unspecified
	}
	return p
}

// measure refreshes preferred sizes from the components and resolves gaps
// the constraints leave unspecified. Gaps are only resolved here, never
// applied.
func (le *LayoutEngine) measure(p *pass) {
	for _, row := range le.rows {
		for i, id := range row.entries {
			en := le.entries.get(id)
			g := &p.geom[id]
			if en.label != nil {
				g.LabelWidth = en.label.PreferredWidth()
				g.LabelHeight = en.label.PreferredHeight()
			}
			g.Width = en.component.PreferredWidth()
			g.Height = en.component.PreferredHeight()

			if i == 0 {
				continue
			}
			prevID := row.entries[i-1]
			if le.entries.get(prevID).constraints.GapRight < 0 {
				p.geom[prevID].GapRight = le.metrics.HorizontalGap
			}
			if en.constraints.GapLeft < 0 {
				g.GapLeft = le.metrics.HorizontalGap
			}
		}
		le.reconcileLabelRows(p)
	}
}

// reconcileLabelRows recomputes the height of every label row from the
// resolved label heights.
func (le *LayoutEngine) reconcileLabelRows(p *pass) {
	for i, row := range le.rows {
		p.rows[i].above = row.above.maxLabelHeight(p.geom)
		p.rows[i].below = row.below.maxLabelHeight(p.geom)
	}
}

// gap is the space between two adjacent entries: the larger of the previous
// entry's right gap and the current entry's left gap, each taken from the
// constraints when specified and from the resolved defaults otherwise.
func (le *LayoutEngine) gap(p *pass, prev, curr EntryID) int {
	right := le.entries.get(prev).constraints.GapRight
	if right < 0 {
		right = p.geom[prev].GapRight
	}
	left := le.entries.get(curr).constraints.GapLeft
	if left < 0 {
		left = p.geom[curr].GapLeft
	}
	return max(right, left)
}

// place turns resolved sizes into positions, sets the preferred container
// size, and applies row orientation and growth.
func (le *LayoutEngine) place(p *pass, c Container) {
	pad := c.Padding()

	y := pad.Top
	rowStart := pad.Top
	height := pad.Top + pad.Bottom
	widest := 0

	for ri, row := range le.rows {
		rg := &p.rows[ri]
		x := pad.Left
		if ri > 0 {
			y = rowStart + le.rowSpace()
		}

		tallest := 0
		for i, id := range row.entries {
			if i > 0 {
				x += row.spacing
				x += le.gap(p, row.entries[i-1], id)
			}
			x, tallest = le.placeEntry(p, *rg, id, x, y, tallest)
		}

		y += rg.above + rg.below

		rg.width = x - pad.Left
		rg.height = (y + tallest) - rowStart
		rowStart += rg.height
		height += rg.height
		widest = max(widest, rg.width)
	}

	p.preferred = Size{Width: pad.Left + pad.Right + widest, Height: height}

	le.alignRows(p, c)
	le.grow(p, c)
}

// placeEntry positions one entry starting at (x, y) and returns the x just
// past it and the updated tallest part height of the row.
func (le *LayoutEngine) placeEntry(p *pass, rg rowGeometry, id EntryID, x, y, tallest int) (int, int) {
	en := le.entries.get(id)
	g := &p.geom[id]
	orientation := en.constraints.LabelOrientation
	advance := 0

	// Labels above sit in the label row and do not advance x.
	if en.hasLabel() && orientation == LabelTop {
		g.LabelX = x
		g.LabelY = y
	}

	labelOffset, componentOffset := 0, 0
	if en.hasLabel() && (orientation == LabelLeft || orientation == LabelRight) {
		labelOffset, componentOffset = alignmentOffsets(en.constraints.LabelAlignment, g.LabelHeight, g.Height)
	}

	if en.hasLabel() && orientation == LabelLeft {
		g.LabelX = x
		g.LabelY = y + labelOffset + rg.above
		advance += g.LabelWidth
		tallest = max(tallest, g.LabelHeight)
	}

	g.X = x + advance
	g.Y = y + componentOffset + rg.above
	advance += g.Width
	tallest = max(tallest, g.Height)

	if en.hasLabel() && orientation == LabelRight {
		g.LabelX = x + advance
		g.LabelY = y + labelOffset + rg.above
		advance += g.LabelWidth
		tallest = max(tallest, g.LabelHeight)
	}

	if en.hasLabel() && orientation == LabelBottom {
		g.LabelX = x
		g.LabelY = y + rg.above + g.Height
		tallest = max(tallest, g.LabelHeight)
	}

	return x + advance, tallest
}

// alignmentOffsets returns how far down to move a side label and its
// component so the shorter of the two is aligned with the taller one.
func alignmentOffsets(a LabelVerticalAlignment, labelHeight, componentHeight int) (label, component int) {
	diff := componentHeight - labelHeight
	switch a {
	case AlignMiddle:
		diff /= 2
	case AlignBottom:
	default:
		return 0, 0
	}
	if diff > 0 {
		return diff, 0
	}
	return 0, -diff
}

// alignRows shifts right and center oriented rows into the free space of the
// container's client area.
func (le *LayoutEngine) alignRows(p *pass, c Container) {
	pad := c.Padding()
	for ri, row := range le.rows {
		free := c.ClientWidth() - p.rows[ri].width - pad.Left - pad.Right
		switch row.orientation {
		case RowRight:
		case RowCenter:
			free /= 2
		default:
			continue
		}
		if free > 0 {
			le.shiftRight(p, row.entries, free)
		}
	}
}

// grow hands leftover space to entries that asked for it. Only the first
// entry in a row that grows horizontally gets the row's free width, and only
// the first entry in the layout that grows vertically gets the container's
// free height. A grown entry's own right or bottom label moves with the edge
// it sits against.
func (le *LayoutEngine) grow(p *pass, c Container) {
	pad := c.Padding()
	remainingHeight := c.ClientHeight() - p.preferred.Height

	for ri, row := range le.rows {
		remainingWidth := c.ClientWidth() - p.rows[ri].width - pad.Left - pad.Right

		for i, id := range row.entries {
			en := le.entries.get(id)
			cons := en.constraints
			g := &p.geom[id]
			orientation := LabelLeft
			if en.hasLabel() {
				orientation = cons.LabelOrientation
			}

			if cons.GrowX && remainingWidth > 0 {
				g.Width += remainingWidth
				if orientation == LabelRight {
					g.LabelX += remainingWidth
				}
				le.shiftRight(p, row.entries[i+1:], remainingWidth)
				remainingWidth = 0
			}

			if cons.GrowY {
				before := g.Height

				// A bottom label is part of the entry's height in the row.
				height := g.Height
				if orientation == LabelBottom {
					height += g.LabelHeight
				}
				if inRow := p.rows[ri].height - height; inRow > 0 {
					g.Height += inRow
				}
				if remainingHeight > 0 {
					g.Height += remainingHeight
					for _, below := range le.rows[ri+1:] {
						le.shiftDown(p, below.entries, remainingHeight)
					}
					remainingHeight = 0
				}

				if orientation == LabelBottom {
					g.LabelY += g.Height - before
				}
			}
		}
	}
}

func (le *LayoutEngine) shiftRight(p *pass, ids []EntryID, dx int) {
	for _, id := range ids {
		g := &p.geom[id]
		g.X += dx
		if le.entries.get(id).hasLabel() {
			g.LabelX += dx
		}
	}
}

func (le *LayoutEngine) shiftDown(p *pass, ids []EntryID, dy int) {
	for _, id := range ids {
		g := &p.geom[id]
		g.Y += dy
		if le.entries.get(id).hasLabel() {
			g.LabelY += dy
		}
	}
}
