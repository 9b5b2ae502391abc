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

package raster

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// canvas collects coverage values into a dense buffer.
type canvas struct {
	w, h int
	pix  []float32
}

func newCanvas(w, h int) *canvas {
	return &canvas{w: w, h: h, pix: make([]float32, w*h)}
}

func (c *canvas) emit(y, xMin int, coverage []float32) {
	copy(c.pix[y*c.w+xMin:], coverage)
}

func (c *canvas) at(x, y int) float32 {
	return c.pix[y*c.w+x]
}

func (c *canvas) total() float64 {
	var sum float64
	for _, v := range c.pix {
		sum += float64(v)
	}
	return sum
}

func (c *canvas) clip() rect.Rect {
	return rect.Rect{URx: float64(c.w), URy: float64(c.h)}
}

func polyline(pts ...vec.Vec2) path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		if !yield(path.CmdMoveTo, pts[:1]) {
			return
		}
		for i := 1; i < len(pts); i++ {
			if !yield(path.CmdLineTo, pts[i:i+1]) {
				return
			}
		}
	}
}

func TestFillPixelAligned(t *testing.T) {
	c := newCanvas(4, 4)
	r := NewRasterizer(c.clip())
	r.Fill(polyline(
		vec.Vec2{X: 1, Y: 1}, vec.Vec2{X: 3, Y: 1},
		vec.Vec2{X: 3, Y: 3}, vec.Vec2{X: 1, Y: 3},
	), c.emit)

	want := []float32{
		0, 0, 0, 0,
		0, 1, 1, 0,
		0, 1, 1, 0,
		0, 0, 0, 0,
	}
	if d := cmp.Diff(want, c.pix, cmpopts.EquateApprox(0, 1e-6)); d != "" {
		t.Errorf("coverage (-want +got):\n%s", d)
	}
}

func TestFillHalfPixel(t *testing.T) {
	c := newCanvas(3, 1)
	r := NewRasterizer(c.clip())
	r.Fill(polyline(
		vec.Vec2{X: 0.5, Y: 0}, vec.Vec2{X: 2.25, Y: 0},
		vec.Vec2{X: 2.25, Y: 1}, vec.Vec2{X: 0.5, Y: 1},
	), c.emit)

	want := []float32{0.5, 1, 0.25}
	if d := cmp.Diff(want, c.pix, cmpopts.EquateApprox(0, 1e-6)); d != "" {
		t.Errorf("coverage (-want +got):\n%s", d)
	}
}

func TestFillWindingIndependent(t *testing.T) {
	square := []vec.Vec2{{X: 2, Y: 2}, {X: 8, Y: 3}, {X: 7, Y: 8}, {X: 1, Y: 7}}
	reversed := []vec.Vec2{square[3], square[2], square[1], square[0]}

	a := newCanvas(10, 10)
	NewRasterizer(a.clip()).Fill(polyline(square...), a.emit)
	b := newCanvas(10, 10)
	NewRasterizer(b.clip()).Fill(polyline(reversed...), b.emit)

	if d := cmp.Diff(a.pix, b.pix, cmpopts.EquateApprox(0, 1e-5)); d != "" {
		t.Errorf("orientation changes coverage (-cw +ccw):\n%s", d)
	}
}

func TestFillClipped(t *testing.T) {
	c := newCanvas(4, 4)
	r := NewRasterizer(c.clip())
	r.Fill(polyline(
		vec.Vec2{X: -10, Y: -10}, vec.Vec2{X: 2, Y: -10},
		vec.Vec2{X: 2, Y: 20}, vec.Vec2{X: -10, Y: 20},
	), c.emit)

	for y := range 4 {
		for x := range 4 {
			want := float32(0)
			if x < 2 {
				want = 1
			}
			if got := c.at(x, y); math.Abs(float64(got-want)) > 1e-6 {
				t.Errorf("pixel (%d,%d): got %g, want %g", x, y, got, want)
			}
		}
	}
}

func TestStrokeButtArea(t *testing.T) {
	c := newCanvas(40, 40)
	r := NewRasterizer(c.clip())
	r.Width = 2
	r.Stroke(polyline(vec.Vec2{X: 10, Y: 20.5}, vec.Vec2{X: 30, Y: 20.5}), c.emit)

	if got := c.total(); math.Abs(got-40) > 1e-3 {
		t.Errorf("area: got %g, want 40", got)
	}
	if got := c.at(20, 20); got != 1 {
		t.Errorf("centre pixel: got %g", got)
	}
	if got := c.at(9, 20); got != 0 {
		t.Errorf("butt cap covers pixel left of start: %g", got)
	}
}

// Segments are stroked independently: the inner corner is covered once,
// the outer corner stays empty.
func TestStrokeCorner(t *testing.T) {
	c := newCanvas(40, 40)
	r := NewRasterizer(c.clip())
	r.Width = 2
	r.Stroke(polyline(
		vec.Vec2{X: 5, Y: 5}, vec.Vec2{X: 30, Y: 5}, vec.Vec2{X: 30, Y: 30},
	), c.emit)

	for i, v := range c.pix {
		if v < 0 || v > 1 {
			t.Fatalf("pixel %d: coverage %g out of range", i, v)
		}
	}
	if got := c.at(29, 5); got != 1 {
		t.Errorf("inner corner: got %g", got)
	}
	if got := c.at(30, 4); got != 0 {
		t.Errorf("outer corner: got %g", got)
	}
	// two legs of 25×2, minus the unit square covered by both
	if got := c.total(); math.Abs(got-99) > 1e-3 {
		t.Errorf("area: got %g, want 99", got)
	}
}

func TestStrokeClosed(t *testing.T) {
	c := newCanvas(30, 30)
	r := NewRasterizer(c.clip())
	r.Width = 2
	p := func(yield func(path.Command, []vec.Vec2) bool) {
		pts := []vec.Vec2{{X: 5, Y: 5}, {X: 25, Y: 5}, {X: 25, Y: 25}, {X: 5, Y: 25}}
		_ = yield(path.CmdMoveTo, pts[0:1]) &&
			yield(path.CmdLineTo, pts[1:2]) &&
			yield(path.CmdLineTo, pts[2:3]) &&
			yield(path.CmdLineTo, pts[3:4]) &&
			yield(path.CmdClose, nil)
	}
	r.Stroke(p, c.emit)

	// the closing segment is drawn
	if got := c.at(5, 15); got != 1 {
		t.Errorf("closing segment: got %g", got)
	}
	// the interior stays empty
	if got := c.at(15, 15); got != 0 {
		t.Errorf("interior: got %g", got)
	}
}

func TestStrokeZeroLength(t *testing.T) {
	pt := vec.Vec2{X: 10, Y: 10}
	c := newCanvas(20, 20)
	r := NewRasterizer(c.clip())
	r.Width = 4
	r.Stroke(polyline(pt, pt), c.emit)
	if c.total() != 0 {
		t.Error("zero-length segment painted pixels")
	}

	// a lone MoveTo draws nothing
	r.Stroke(polyline(pt), c.emit)
	if c.total() != 0 {
		t.Error("lone MoveTo painted pixels")
	}
}

// TestFillCurves checks the area of filled quadratic and cubic curves.
func TestFillCurves(t *testing.T) {
	// parabolic segment between (2,2) and (22,2), 5 units high
	quad := func(yield func(path.Command, []vec.Vec2) bool) {
		_ = yield(path.CmdMoveTo, []vec.Vec2{{X: 2, Y: 2}}) &&
			yield(path.CmdQuadTo, []vec.Vec2{{X: 12, Y: 12}, {X: 22, Y: 2}}) &&
			yield(path.CmdClose, nil)
	}
	c := newCanvas(24, 10)
	r := NewRasterizer(c.clip())
	r.Flatness = 0.01
	r.Fill(quad, c.emit)
	if got, want := c.total(), 2.0/3*20*5; math.Abs(got-want) > 0.2 {
		t.Errorf("parabola: area %g, want %g", got, want)
	}

	c = newCanvas(64, 64)
	r = NewRasterizer(c.clip())
	r.Flatness = 0.01
	r.Fill(ringPath(32, 32, 28, 18), c.emit)
	if got, want := c.total(), math.Pi*(28*28-18*18); math.Abs(got-want)/want > 0.002 {
		t.Errorf("ring: area %g, want %g", got, want)
	}
	if c.at(32, 32) > 1e-4 || c.at(32, 9) < 0.999 {
		t.Error("wrong coverage in the hole or on the ring")
	}
}

func TestCTM(t *testing.T) {
	c := newCanvas(40, 40)
	r := NewRasterizer(c.clip())
	r.CTM = matrix.Scale(2, 2)
	r.Width = 1
	r.Stroke(polyline(vec.Vec2{X: 5, Y: 10.25}, vec.Vec2{X: 15, Y: 10.25}), c.emit)

	// 10×1 user units, scaled by 2 in both directions
	if got := c.total(); math.Abs(got-40) > 1e-3 {
		t.Errorf("area: got %g, want 40", got)
	}

	// a mirrored CTM flips the orientation of all polygons at once
	m := newCanvas(40, 40)
	r = NewRasterizer(m.clip())
	r.CTM = matrix.Matrix{-1, 0, 0, 1, 40, 0}
	r.Width = 3
	r.Stroke(polyline(vec.Vec2{X: 5, Y: 5}, vec.Vec2{X: 20, Y: 20}, vec.Vec2{X: 35, Y: 5}), m.emit)
	for i, v := range m.pix {
		if v < 0 || v > 1 {
			t.Fatalf("pixel %d: coverage %g out of range", i, v)
		}
	}
	if m.total() == 0 {
		t.Error("mirrored stroke is empty")
	}
}

func TestTrimZeros(t *testing.T) {
	cases := []struct {
		in     []float32
		want   []float32
		offset int
	}{
		{[]float32{0, 0, 0}, nil, 0},
		{[]float32{0, 0.5, 1, 0}, []float32{0.5, 1}, 1},
		{[]float32{1}, []float32{1}, 0},
	}
	for _, tc := range cases {
		got, off := trimZeros(tc.in)
		if d := cmp.Diff(tc.want, got); d != "" || off != tc.offset {
			t.Errorf("trimZeros(%v): offset %d, diff:\n%s", tc.in, off, d)
		}
	}
}
