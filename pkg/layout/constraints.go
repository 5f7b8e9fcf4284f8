package layout

import "fmt"

// NoGroup marks a component or label that is not in any size group.
const NoGroup = -1

// Unspecified marks a gap the engine should resolve from Metrics.
const Unspecified = -1

// LabelOrientation is where a label sits relative to its component.
type LabelOrientation int

const (
	LabelLeft LabelOrientation = iota
	LabelRight
	LabelTop
	LabelBottom
)

var labelOrientationNames = map[LabelOrientation]string{
	LabelLeft:   "left",
	LabelRight:  "right",
	LabelTop:    "top",
	LabelBottom: "bottom",
}

func (o LabelOrientation) String() string {
	if name, ok := labelOrientationNames[o]; ok {
		return name
	}
	return fmt.Sprintf("LabelOrientation(%d)", int(o))
}

// ParseLabelOrientation parses "left", "right", "top" or "bottom".
func ParseLabelOrientation(s string) (LabelOrientation, error) {
	for o, name := range labelOrientationNames {
		if name == s {
			return o, nil
		}
	}
	return LabelLeft, fmt.Errorf("unknown label orientation %q", s)
}

// LabelVerticalAlignment aligns a left or right label with its component.
type LabelVerticalAlignment int

const (
	AlignTop LabelVerticalAlignment = iota
	AlignMiddle
	AlignBottom
)

var alignmentNames = map[LabelVerticalAlignment]string{
	AlignTop:    "top",
	AlignMiddle: "middle",
	AlignBottom: "bottom",
}

func (a LabelVerticalAlignment) String() string {
	if name, ok := alignmentNames[a]; ok {
		return name
	}
	return fmt.Sprintf("LabelVerticalAlignment(%d)", int(a))
}

// ParseLabelVerticalAlignment parses "top", "middle" or "bottom".
func ParseLabelVerticalAlignment(s string) (LabelVerticalAlignment, error) {
	for a, name := range alignmentNames {
		if name == s {
			return a, nil
		}
	}
	return AlignTop, fmt.Errorf("unknown label alignment %q", s)
}

// RowOrientation aligns all entries of a row within the container.
type RowOrientation int

const (
	RowLeft RowOrientation = iota
	RowCenter
	RowRight
)

var rowOrientationNames = map[RowOrientation]string{
	RowLeft:   "left",
	RowCenter: "center",
	RowRight:  "right",
}

func (o RowOrientation) String() string {
	if name, ok := rowOrientationNames[o]; ok {
		return name
	}
	return fmt.Sprintf("RowOrientation(%d)", int(o))
}

// ParseRowOrientation parses "left", "center" or "right".
func ParseRowOrientation(s string) (RowOrientation, error) {
	for o, name := range rowOrientationNames {
		if name == s {
			return o, nil
		}
	}
	return RowLeft, fmt.Errorf("unknown row orientation %q", s)
}

// Constraints are the user-supplied rules for one entry. They are copied
// when the entry is added and never changed by the engine.
//
// The zero value is not the default: group ids and gaps use -1 as "none".
// Start from DefaultConstraints.
type Constraints struct {
	SizeGroup      int
	LabelSizeGroup int

	// GapLeft and GapRight override the gap to the neighbouring entry.
	// Negative means unspecified; 0 is an explicit "no gap".
	GapLeft  int
	GapRight int

	LabelOrientation LabelOrientation
	LabelAlignment   LabelVerticalAlignment

	GrowX bool
	GrowY bool
}

// DefaultConstraints returns constraints with no groups, unspecified gaps,
// a left top-aligned label and no growth.
func DefaultConstraints() Constraints {
	return Constraints{
		SizeGroup:        NoGroup,
		LabelSizeGroup:   NoGroup,
		GapLeft:          Unspecified,
		GapRight:         Unspecified,
		LabelOrientation: LabelLeft,
		LabelAlignment:   AlignTop,
	}
}
