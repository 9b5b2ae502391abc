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


package canvas

import (
	"image"
	"image/color"
	"math"

	"golang.org/x/image/draw"
	"golang.org/x/image/vector"

	"seehuhn.de/go/geom/vec"
)

// vectorFlatness is the largest distance, in pixels, between a circle and
// the polygon used to draw it.
const vectorFlatness = 0.02

// Vector paints frames into a raster image using golang.org/x/image/vector.
// It gives an independent rendering which tests use to cross-check [Image].
type Vector struct {
	Dst draw.Image

	origin vec.Vec2
	r      *vector.Rasterizer
}

var _ Sheet = (*Vector)(nil)

// NewVector returns a surface which draws into dst.
func NewVector(dst draw.Image) *Vector {
	b := dst.Bounds()
	return &Vector{
		Dst: dst,
		r:   vector.NewRasterizer(b.Dx(), b.Dy()),
	}
}

// SetOrigin implements the [Sheet] interface.
func (c *Vector) SetOrigin(x, y float64) {
	c.origin = vec.Vec2{X: x, Y: y}
}

// Background implements the [Sheet] interface.
func (c *Vector) Background(col color.NRGBA) {
	draw.Draw(c.Dst, c.Dst.Bounds(), image.NewUniform(col), image.Point{}, draw.Src)
}

// Line implements the [menuicon.Surface] interface.
func (c *Vector) Line(a, b vec.Vec2, width float64, col color.NRGBA) {
	d := b.Sub(a)
	l := d.Length()
	if l == 0 || width <= 0 {
		return
	}
	n := vec.Vec2{X: -d.Y, Y: d.X}.Mul(width / (2 * l))

	c.reset()
	c.moveTo(a.Add(n))
	c.lineTo(b.Add(n))
	c.lineTo(b.Sub(n))
	c.lineTo(a.Sub(n))
	c.r.ClosePath()
	c.draw(col)
}

// Circle implements the [menuicon.Surface] interface.
//
// The circle is drawn as a polygon.  The cubic curves of x/image/vector
// are flattened too coarsely for the large accent circle.
func (c *Vector) Circle(center vec.Vec2, radius float64, col color.NRGBA) {
	if radius <= 0 {
		return
	}
	n := 8
	if radius > vectorFlatness {
		step := 2 * math.Acos(1-vectorFlatness/radius)
		n = max(n, int(math.Ceil(2*math.Pi/step)))
	}

	c.reset()
	for i := range n {
		s, co := math.Sincos(2 * math.Pi * float64(i) / float64(n))
		p := vec.Vec2{X: center.X + radius*co, Y: center.Y + radius*s}
		if i == 0 {
			c.moveTo(p)
		} else {
			c.lineTo(p)
		}
	}
	c.r.ClosePath()
	c.draw(col)
}

func (c *Vector) reset() {
	b := c.Dst.Bounds()
	c.r.Reset(b.Dx(), b.Dy())
	c.r.DrawOp = draw.Over
}

func (c *Vector) offset(p vec.Vec2) [2]float32 {
	b := c.Dst.Bounds()
	return [2]float32{
		float32(p.X + c.origin.X - float64(b.Min.X)),
		float32(p.Y + c.origin.Y - float64(b.Min.Y)),
	}
}

func (c *Vector) moveTo(p vec.Vec2) {
	q := c.offset(p)
	c.r.MoveTo(q[0], q[1])
}

func (c *Vector) lineTo(p vec.Vec2) {
	q := c.offset(p)
	c.r.LineTo(q[0], q[1])
}

func (c *Vector) draw(col color.NRGBA) {
	b := c.Dst.Bounds()
	c.r.Draw(c.Dst, b, image.NewUniform(col), image.Point{})
}
