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

package menuicon

import (
	"image/color"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// Frame is a snapshot of everything needed to paint the icon once.
// Frames are independent of the icon which produced them.
type Frame struct {
	Width, Height int
	StrokeWidth   float64
	Color         color.NRGBA
	Visible       bool

	// CTM maps icon coordinates to canvas coordinates.  It is the identity,
	// or a horizontal mirror for right-to-left layouts.
	CTM matrix.Matrix

	Lines  [numBars]Line
	Accent Accent

	// The state which produced the frame.
	Shape    Shape
	Pair     Pair
	Progress float64
}

// Accent describes the circular highlight drawn behind the strokes.
type Accent struct {
	Center  vec.Vec2
	Radius  float64
	Opacity float64
	Active  bool
}

// NewFrame computes a frame for the given pose, using default colour and
// visibility.  This is useful for rendering poses without an [Icon].
func NewFrame(m *Metrics, p Pair, progress float64, rtl bool) *Frame {
	return &Frame{
		Width:       m.Width,
		Height:      m.Height,
		StrokeWidth: m.StrokeWidth,
		Color:       defaultColor,
		Visible:     true,
		CTM:         mirror(m, rtl),
		Lines:       Strokes(m, p, progress),
		Shape:       classify(p, progress),
		Pair:        p,
		Progress:    progress,
	}
}

// SetAccent fills in the accent for the given radius.
func (f *Frame) SetAccent(m *Metrics, radius float64) {
	if !(radius > 0) {
		f.Accent = Accent{}
		return
	}
	maxR := m.MaxAccentRadius()
	radius = min(radius, maxR)
	f.Accent = Accent{
		Center:  vec.Vec2{X: m.centerX(), Y: m.centerY()},
		Radius:  radius,
		Opacity: accentAlpha * (1 - radius/maxR),
		Active:  true,
	}
}

// Segment returns the end points of stroke b in canvas coordinates.
func (f *Frame) Segment(b Bar) (vec.Vec2, vec.Vec2) {
	p, q := f.Lines[b].Endpoints()
	return transform(f.CTM, p), transform(f.CTM, q)
}

// Path returns stroke b as a path in canvas coordinates.
func (f *Frame) Path(b Bar) path.Path {
	p, q := f.Segment(b)
	return segmentPath(p, q)
}

// AccentCenter returns the centre of the accent in canvas coordinates.
func (f *Frame) AccentCenter() vec.Vec2 {
	return transform(f.CTM, f.Accent.Center)
}

func mirror(m *Metrics, rtl bool) matrix.Matrix {
	if !rtl {
		return matrix.Identity
	}
	return matrix.Matrix{-1, 0, 0, 1, float64(m.Width), 0}
}

// classify returns the shape a resting icon with the given pose is
// considered to show.
func classify(p Pair, progress float64) Shape {
	if progress < progressMid || progress == progressEnd {
		return p.First()
	}
	return p.Second()
}

var defaultColor = color.NRGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
