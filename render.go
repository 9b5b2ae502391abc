// seehuhn.de/go/menuicon - a morphing three-bar menu icon
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package menuicon implements a three-bar menu icon which morphs between
// a burger, an arrow, a cross and a check mark.
//
// An [Icon] holds the state machine.  Hosts feed it time through
// [Icon.Tick] (or [Run]) and receive one [Frame] per update, which
// [Draw] paints onto any [Surface].
package menuicon

//go:generate go run ./testcases/export
//go:generate go run ./testcases/genpdf

import (
	"image/color"
	"math"

	"seehuhn.de/go/geom/vec"
)

// Surface is a drawing target for icon frames.  Coordinates are canvas
// pixels with the y axis pointing down.
type Surface interface {
	// Line draws a straight segment from a to b with butt caps.
	Line(a, b vec.Vec2, width float64, c color.NRGBA)

	// Circle draws a filled disc.
	Circle(center vec.Vec2, radius float64, c color.NRGBA)
}

// Draw paints a frame onto s: first the visible strokes, then the accent.
// Nothing is drawn for invisible frames.
func Draw(s Surface, f *Frame) {
	if !f.Visible || f.StrokeWidth <= 0 {
		return
	}
	for b := range f.Lines {
		opacity := f.Lines[b].Opacity
		if !(opacity > 0) {
			continue
		}
		p, q := f.Segment(Bar(b))
		s.Line(p, q, f.StrokeWidth, fade(f.Color, opacity))
	}
	if f.Accent.Active && f.Accent.Radius > 0 && f.Accent.Opacity > 0 {
		s.Circle(f.AccentCenter(), f.Accent.Radius, fade(f.Color, f.Accent.Opacity))
	}
}

// fade multiplies the alpha channel of c by opacity.
func fade(c color.NRGBA, opacity float64) color.NRGBA {
	c.A = uint8(math.Round(float64(c.A) * clamp(opacity, 0, 1)))
	return c
}
