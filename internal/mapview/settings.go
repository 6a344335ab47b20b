// Package mapview renders a frozen catalogue to an SVG map using a fixed,
// four-pass z-order: polylines, bus labels, stop circles, stop labels.
package mapview

import "transitcatalogue/internal/svg"

// Offset is a label's (dx, dy) text offset from its anchor point.
type Offset struct {
	X float64
	Y float64
}

// Settings is the complete canvas/label/palette geometry captured
// verbatim from the input document during make_base.
type Settings struct {
	Width  float64
	Height float64
	Padding float64

	LineWidth  float64
	StopRadius float64

	BusLabelFontSize int
	BusLabelOffset   Offset

	StopLabelFontSize int
	StopLabelOffset   Offset

	UnderlayerColor  svg.Color
	UnderlayerWidth  float64

	ColorPalette []svg.Color
}
