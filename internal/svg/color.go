package svg

import (
	"bytes"
	"encoding/gob"
	"fmt"

	json "github.com/goccy/go-json"
)

// colorKind tags which representation a Color holds.
type colorKind int

const (
	colorNone colorKind = iota
	colorNamed
	colorRGB
	colorRGBA
)

// Color is the tagged union of {named string, RGB triple, RGBA quadruple}
// used throughout render settings and the shapes below.
type Color struct {
	kind colorKind
	name string
	r, g, b uint8
	a float64
}

// None is the absence of a color (renders as the literal "none").
var None = Color{kind: colorNone}

// Named constructs a Color from a CSS/SVG color name (e.g. "black",
// "green").
func Named(name string) Color { return Color{kind: colorNamed, name: name} }

// RGB constructs a Color from an 8-bit-per-channel triple.
func RGB(r, g, b uint8) Color { return Color{kind: colorRGB, r: r, g: g, b: b} }

// RGBA constructs a Color from an 8-bit-per-channel triple plus an alpha
// in [0, 1].
func RGBA(r, g, b uint8, a float64) Color { return Color{kind: colorRGBA, r: r, g: g, b: b, a: a} }

// String renders the Color as an SVG color attribute value.
func (c Color) String() string {
	switch c.kind {
	case colorNamed:
		return c.name
	case colorRGB:
		return fmt.Sprintf("rgb(%d,%d,%d)", c.r, c.g, c.b)
	case colorRGBA:
		return fmt.Sprintf("rgba(%d,%d,%d,%g)", c.r, c.g, c.b, c.a)
	default:
		return "none"
	}
}

// colorWire is Color's exported-field mirror, the only shape gob can see
// since Color's own fields are unexported to keep the tagged union closed
// to outside construction.
type colorWire struct {
	Kind    colorKind
	Name    string
	R, G, B uint8
	A       float64
}

// GobEncode implements gob.GobEncoder.
func (c Color) GobEncode() ([]byte, error) {
	var buf bytes.Buffer
	wire := colorWire{Kind: c.kind, Name: c.name, R: c.r, G: c.g, B: c.b, A: c.a}
	if err := gob.NewEncoder(&buf).Encode(wire); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// GobDecode implements gob.GobDecoder.
func (c *Color) GobDecode(data []byte) error {
	var wire colorWire
	if err := gob.NewDecoder(bytes.NewReader(data)).Decode(&wire); err != nil {
		return err
	}
	c.kind, c.name, c.r, c.g, c.b, c.a = wire.Kind, wire.Name, wire.R, wire.G, wire.B, wire.A
	return nil
}

// UnmarshalJSON accepts a color literal in any of the three document forms:
// a named string, a 3-element [r,g,b] array, or a 4-element [r,g,b,a]
// array.
func (c *Color) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err == nil {
		*c = Named(name)
		return nil
	}

	var channels []float64
	if err := json.Unmarshal(data, &channels); err != nil {
		return fmt.Errorf("svg: invalid color literal: %w", err)
	}

	switch len(channels) {
	case 3:
		*c = RGB(uint8(channels[0]), uint8(channels[1]), uint8(channels[2]))
	case 4:
		*c = RGBA(uint8(channels[0]), uint8(channels[1]), uint8(channels[2]), channels[3])
	default:
		return fmt.Errorf("svg: color array must have 3 or 4 elements, got %d", len(channels))
	}
	return nil
}

// MarshalJSON renders the Color back into whichever of the three document
// forms matches its kind.
func (c Color) MarshalJSON() ([]byte, error) {
	switch c.kind {
	case colorNamed:
		return json.Marshal(c.name)
	case colorRGB:
		return json.Marshal([]int{int(c.r), int(c.g), int(c.b)})
	case colorRGBA:
		return json.Marshal([]float64{float64(c.r), float64(c.g), float64(c.b), c.a})
	default:
		return json.Marshal(nil)
	}
}
