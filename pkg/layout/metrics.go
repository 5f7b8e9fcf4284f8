package layout

// Metrics are the platform-dependent default distances used when a layout
// leaves spacing unspecified.
type Metrics struct {
	// HorizontalGap is the gap between adjacent entries whose constraints
	// leave the gap unspecified.
	HorizontalGap int

	// VerticalRowSpace is the space between rows when the layout does not
	// set one.
	VerticalRowSpace int

	// ButtonWidth and ButtonHeight are the platform's standard push button size.
	ButtonWidth  int
	ButtonHeight int
}

// DefaultMetrics returns the Windows desktop metrics in pixels.
func DefaultMetrics() Metrics {
	return Metrics{
		HorizontalGap:    7,
		VerticalRowSpace: 11,
		ButtonWidth:      75,
		ButtonHeight:     23,
	}
}

// ButtonSize returns the standard button size.
func (m Metrics) ButtonSize() Size {
	return Size{Width: m.ButtonWidth, Height: m.ButtonHeight}
}
