// Package svg provides the minimal set of settable-style shape primitives
// the map renderer targets: polylines, circles, and text runs, each able
// to render itself to a text stream. It stands in for the general-purpose
// SVG primitive library the specification places outside the engine's
// core (§1); nothing here carries statistical or routing invariants.
package svg

import (
	"fmt"
	"io"
	"strings"
)

// Point is a single vertex of a Polyline, in canvas coordinates.
type Point struct {
	X float64
	Y float64
}

// Polyline is an unfilled, stroked multi-segment line.
type Polyline struct {
	Points      []Point
	Stroke      Color
	StrokeWidth float64
}

// WriteTo renders the polyline as a single <polyline> element.
func (p Polyline) WriteTo(w io.Writer) (int64, error) {
	var b strings.Builder
	b.WriteString(`<polyline points="`)
	for i, pt := range p.Points {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%g,%g", pt.X, pt.Y)
	}
	b.WriteString(`" fill="none" stroke="`)
	b.WriteString(p.Stroke.String())
	fmt.Fprintf(&b, `" stroke-width="%g" stroke-linecap="round" stroke-linejoin="round"/>`, p.StrokeWidth)
	n, err := io.WriteString(w, b.String())
	return int64(n), err
}

// Circle is a filled, unstroked disc.
type Circle struct {
	Center Point
	Radius float64
	Fill   Color
}

// WriteTo renders the circle as a single <circle> element.
func (c Circle) WriteTo(w io.Writer) (int64, error) {
	s := fmt.Sprintf(`<circle cx="%g" cy="%g" r="%g" fill="%s"/>`,
		c.Center.X, c.Center.Y, c.Radius, c.Fill.String())
	n, err := io.WriteString(w, s)
	return int64(n), err
}

// Text is a single text run, optionally stroked (for an underlayer halo)
// as well as filled.
type Text struct {
	Position   Point
	OffsetX    float64
	OffsetY    float64
	FontSize   int
	FontFamily string
	FontWeight string // empty means unset
	Fill       Color
	Stroke     Color // None means no stroke attribute is useful, but callers still set Stroke==Fill for underlayer copies
	StrokeWidth float64
	HasStroke  bool
	Data       string
}

// WriteTo renders the text run as a single <text> element.
func (t Text) WriteTo(w io.Writer) (int64, error) {
	var b strings.Builder
	fmt.Fprintf(&b, `<text x="%g" y="%g" dx="%g" dy="%g" font-family="%s" font-size="%d"`,
		t.Position.X, t.Position.Y, t.OffsetX, t.OffsetY, t.FontFamily, t.FontSize)
	if t.FontWeight != "" {
		fmt.Fprintf(&b, ` font-weight="%s"`, t.FontWeight)
	}
	if t.HasStroke {
		fmt.Fprintf(&b, ` stroke="%s" stroke-width="%g" stroke-linecap="round" stroke-linejoin="round"`,
			t.Stroke.String(), t.StrokeWidth)
	}
	fmt.Fprintf(&b, ` fill="%s">%s</text>`, t.Fill.String(), escapeText(t.Data))
	n, err := io.WriteString(w, b.String())
	return int64(n), err
}

// escapeText escapes the handful of characters that are meaningful inside
// SVG text content.
func escapeText(s string) string {
	r := strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
		`"`, "&quot;",
	)
	return r.Replace(s)
}
