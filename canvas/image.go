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

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/menuicon/raster"
)

// imageFlatness is the largest distance, in pixels, between the curves of
// the accent circle and their polygon approximation.
const imageFlatness = 0.02

// Image paints frames into a raster image, using the anti-aliasing
// rasterizer from package raster.
type Image struct {
	Dst draw.Image

	origin vec.Vec2
	r      *raster.Rasterizer
	mask   *image.Alpha
	dirty  image.Rectangle
}

var _ Sheet = (*Image)(nil)

// NewImage returns a surface which draws into dst.
func NewImage(dst draw.Image) *Image {
	b := dst.Bounds()
	clip := rect.Rect{
		LLx: float64(b.Min.X),
		LLy: float64(b.Min.Y),
		URx: float64(b.Max.X),
		URy: float64(b.Max.Y),
	}
	r := raster.NewRasterizer(clip)
	r.Flatness = imageFlatness
	return &Image{
		Dst:  dst,
		r:    r,
		mask: image.NewAlpha(b),
	}
}

// NewNRGBA allocates an image of the given size and returns a surface for
// it.
func NewNRGBA(width, height int) *Image {
	return NewImage(image.NewNRGBA(image.Rect(0, 0, width, height)))
}

// SetOrigin implements the [Sheet] interface.
func (c *Image) SetOrigin(x, y float64) {
	c.origin = vec.Vec2{X: x, Y: y}
}

// Background implements the [Sheet] interface.
func (c *Image) Background(col color.NRGBA) {
	draw.Draw(c.Dst, c.Dst.Bounds(), image.NewUniform(col), image.Point{}, draw.Src)
}

// Line implements the [menuicon.Surface] interface.
func (c *Image) Line(a, b vec.Vec2, width float64, col color.NRGBA) {
	c.r.CTM = matrix.Translate(c.origin.X, c.origin.Y)
	c.r.Width = width
	c.r.Stroke(segmentPath(a, b), c.collect)
	c.paint(col)
}

// Circle implements the [menuicon.Surface] interface.
func (c *Image) Circle(center vec.Vec2, radius float64, col color.NRGBA) {
	c.r.CTM = matrix.Translate(c.origin.X, c.origin.Y)
	if radius <= 0 {
		return
	}
	c.r.Fill(circlePath(center, radius), c.collect)
	c.paint(col)
}

// collect stores one row of coverage values in the mask.
func (c *Image) collect(y, xMin int, coverage []float32) {
	off := c.mask.PixOffset(xMin, y)
	row := c.mask.Pix[off : off+len(coverage)]
	for i, v := range coverage {
		row[i] = uint8(v*255 + 0.5)
	}
	c.dirty = c.dirty.Union(image.Rect(xMin, y, xMin+len(coverage), y+1))
}

// paint composites col through the mask and clears the mask again.
func (c *Image) paint(col color.NRGBA) {
	if c.dirty.Empty() {
		return
	}
	draw.DrawMask(c.Dst, c.dirty, image.NewUniform(col), image.Point{}, c.mask, c.dirty.Min, draw.Over)
	for y := c.dirty.Min.Y; y < c.dirty.Max.Y; y++ {
		off := c.mask.PixOffset(c.dirty.Min.X, y)
		clear(c.mask.Pix[off : off+c.dirty.Dx()])
	}
	c.dirty = image.Rectangle{}
}

func segmentPath(a, b vec.Vec2) path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		_ = yield(path.CmdMoveTo, []vec.Vec2{a}) &&
			yield(path.CmdLineTo, []vec.Vec2{b})
	}
}

// circlePath approximates a circle by four cubic Bézier arcs.  The radial
// error is below 0.03% of the radius.
func circlePath(center vec.Vec2, radius float64) path.Path {
	k := 4 * (math.Sqrt2 - 1) / 3 * radius
	return func(yield func(path.Command, []vec.Vec2) bool) {
		var buf [3]vec.Vec2
		p0 := vec.Vec2{X: center.X + radius, Y: center.Y}
		t0 := vec.Vec2{X: 0, Y: k}
		buf[0] = p0
		if !yield(path.CmdMoveTo, buf[:1]) {
			return
		}
		for i := 1; i <= 4; i++ {
			s, co := math.Sincos(float64(i) * math.Pi / 2)
			p1 := vec.Vec2{X: center.X + radius*co, Y: center.Y + radius*s}
			t1 := vec.Vec2{X: -s * k, Y: co * k}
			buf[0], buf[1], buf[2] = p0.Add(t0), p1.Sub(t1), p1
			if !yield(path.CmdCubeTo, buf[:3]) {
				return
			}
			p0, t0 = p1, t1
		}
		yield(path.CmdClose, nil)
	}
}

// Enlarge scales img up by an integer factor without smoothing, so that
// individual pixels stay visible.
func Enlarge(img image.Image, factor int) *image.NRGBA {
	b := img.Bounds()
	factor = max(factor, 1)
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx()*factor, b.Dy()*factor))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return dst
}
