package layout

// Component is an externally owned visual object whose geometry is
// commanded by the layout engine. Preferred sizes are queried once per
// entry per pass and must be cheap and side-effect free.
type Component interface {
	PreferredWidth() int
	PreferredHeight() int
	SetSize(width, height int)
	SetLocation(x, y int)
	EnableDrawing()
	DisableDrawing()
}

// Label is a component that may be paired with exactly one primary component.
type Label interface {
	Component
}

// Padding is the inset between a container's edge and its content.
type Padding struct {
	Left   int
	Right  int
	Top    int
	Bottom int
}

// Container hosts the components arranged by a layout. It owns its children;
// the engine only sets their size and location.
type Container interface {
	Padding() Padding
	ClientWidth() int
	ClientHeight() int
	SetPreferredSize(width, height int)

	// AddComponent is called once per component or label the first time it
	// is associated with the layout.
	AddComponent(c Component)
}

// Layouter executes a layout pass for a container.
type Layouter interface {
	ExecuteLayout(c Container)
}

// EntryID is a stable handle to an entry in a layout. Removing the entry
// invalidates the handle; handles are never reused.
type EntryID int

// InvalidEntry is returned where no entry exists.
const InvalidEntry EntryID = -1

// Role says which half of an entry takes part in a size group.
type Role uint8

const (
	ComponentRole Role = iota
	LabelRole
)

func (r Role) String() string {
	if r == LabelRole {
		return "label"
	}
	return "component"
}

// Geometry is the resolved geometry of one entry for one layout pass.
type Geometry struct {
	LabelWidth  int
	LabelHeight int
	LabelX      int
	LabelY      int

	Width  int
	Height int
	X      int
	Y      int

	// Gaps resolved from Metrics when the constraint left them unspecified.
	GapLeft  int
	GapRight int
}

// Size is a width and height in pixels.
type Size struct {
	Width  int
	Height int
}
