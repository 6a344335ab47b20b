package mapview

import (
	"sort"
	"strings"

	"transitcatalogue/internal/catalogue"
	"transitcatalogue/internal/geo"
	"transitcatalogue/internal/mapproj"
	"transitcatalogue/internal/svg"
)

const svgHeader = `<?xml version="1.0" encoding="UTF-8" ?>` + "\n" +
	`<svg xmlns="http://www.w3.org/2000/svg" version="1.1">` + "\n"

const svgFooter = `</svg>`

// Render produces the SVG document for every non-empty bus in cat, in the
// fixed four-pass z-order the specification mandates: polylines, bus
// labels, stop circles, stop labels. Two catalogues built from identical
// inputs with identical settings render byte-identical output.
//
// Complexity: O(S log S + B log B + sum of per-bus stop counts), where S
// is the number of referenced stops and B the number of non-empty buses.
func Render(cat *catalogue.Catalogue, settings Settings) string {
	buses := nonEmptyBuses(cat.BusesSorted())
	stops := referencedStops(buses)

	proj := mapproj.New(coordsOf(stops), settings.Width, settings.Height, settings.Padding)

	var b strings.Builder
	b.WriteString(svgHeader)

	renderPolylines(&b, buses, settings, proj)
	renderBusLabels(&b, buses, settings, proj)
	renderStopCircles(&b, stops, settings, proj)
	renderStopLabels(&b, stops, settings, proj)

	b.WriteString(svgFooter)
	return b.String()
}

func nonEmptyBuses(buses []*catalogue.Bus) []*catalogue.Bus {
	out := make([]*catalogue.Bus, 0, len(buses))
	for _, bus := range buses {
		if len(bus.Stops) > 0 {
			out = append(out, bus)
		}
	}
	return out
}

// referencedStops collects every stop referenced by any non-empty bus, in
// lexicographic name order.
func referencedStops(buses []*catalogue.Bus) []*catalogue.Stop {
	seen := make(map[string]*catalogue.Stop)
	for _, bus := range buses {
		for _, s := range bus.Stops {
			seen[s.Name] = s
		}
	}

	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)

	out := make([]*catalogue.Stop, len(names))
	for i, name := range names {
		out[i] = seen[name]
	}
	return out
}

func coordsOf(stops []*catalogue.Stop) []geo.Coordinates {
	out := make([]geo.Coordinates, len(stops))
	for i, s := range stops {
		out[i] = s.Coord
	}
	return out
}

func renderPolylines(b *strings.Builder, buses []*catalogue.Bus, settings Settings, proj mapproj.Projector) {
	paletteIdx := 0
	for _, bus := range buses {
		seq := bus.Materialized()
		points := make([]svg.Point, len(seq))
		for i, s := range seq {
			p := proj.Project(s.Coord)
			points[i] = svg.Point{X: p.X, Y: p.Y}
		}

		line := svg.Polyline{
			Points:      points,
			Stroke:      settings.ColorPalette[paletteIdx%len(settings.ColorPalette)],
			StrokeWidth: settings.LineWidth,
		}
		line.WriteTo(b)
		b.WriteByte('\n')
		paletteIdx++
	}
}

func renderBusLabels(b *strings.Builder, buses []*catalogue.Bus, settings Settings, proj mapproj.Projector) {
	paletteIdx := 0
	for _, bus := range buses {
		color := settings.ColorPalette[paletteIdx%len(settings.ColorPalette)]
		paletteIdx++

		first := bus.Stops[0]
		writeBusLabelPair(b, bus.Number, first.Coord, settings, proj, color)

		if !bus.Circular {
			terminal := bus.Terminal()
			if terminal.Name != first.Name {
				writeBusLabelPair(b, bus.Number, terminal.Coord, settings, proj, color)
			}
		}
	}
}

func writeBusLabelPair(b *strings.Builder, label string, coord geo.Coordinates, settings Settings, proj mapproj.Projector, color svg.Color) {
	p := proj.Project(coord)
	pt := svg.Point{X: p.X, Y: p.Y}

	underlayer := svg.Text{
		Position:    pt,
		OffsetX:     settings.BusLabelOffset.X,
		OffsetY:     settings.BusLabelOffset.Y,
		FontSize:    settings.BusLabelFontSize,
		FontFamily:  "Verdana",
		FontWeight:  "bold",
		Fill:        settings.UnderlayerColor,
		Stroke:      settings.UnderlayerColor,
		StrokeWidth: settings.UnderlayerWidth,
		HasStroke:   true,
		Data:        label,
	}
	underlayer.WriteTo(b)
	b.WriteByte('\n')

	fill := svg.Text{
		Position:   pt,
		OffsetX:    settings.BusLabelOffset.X,
		OffsetY:    settings.BusLabelOffset.Y,
		FontSize:   settings.BusLabelFontSize,
		FontFamily: "Verdana",
		FontWeight: "bold",
		Fill:       color,
		Data:       label,
	}
	fill.WriteTo(b)
	b.WriteByte('\n')
}

func renderStopCircles(b *strings.Builder, stops []*catalogue.Stop, settings Settings, proj mapproj.Projector) {
	for _, s := range stops {
		p := proj.Project(s.Coord)
		circle := svg.Circle{
			Center: svg.Point{X: p.X, Y: p.Y},
			Radius: settings.StopRadius,
			Fill:   svg.Named("white"),
		}
		circle.WriteTo(b)
		b.WriteByte('\n')
	}
}

func renderStopLabels(b *strings.Builder, stops []*catalogue.Stop, settings Settings, proj mapproj.Projector) {
	for _, s := range stops {
		p := proj.Project(s.Coord)
		pt := svg.Point{X: p.X, Y: p.Y}

		underlayer := svg.Text{
			Position:    pt,
			OffsetX:     settings.StopLabelOffset.X,
			OffsetY:     settings.StopLabelOffset.Y,
			FontSize:    settings.StopLabelFontSize,
			FontFamily:  "Verdana",
			Fill:        settings.UnderlayerColor,
			Stroke:      settings.UnderlayerColor,
			StrokeWidth: settings.UnderlayerWidth,
			HasStroke:   true,
			Data:        s.Name,
		}
		underlayer.WriteTo(b)
		b.WriteByte('\n')

		fill := svg.Text{
			Position:   pt,
			OffsetX:    settings.StopLabelOffset.X,
			OffsetY:    settings.StopLabelOffset.Y,
			FontSize:   settings.StopLabelFontSize,
			FontFamily: "Verdana",
			Fill:       svg.Named("black"),
			Data:       s.Name,
		}
		fill.WriteTo(b)
		b.WriteByte('\n')
	}
}
