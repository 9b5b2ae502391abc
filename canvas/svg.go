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
	"fmt"
	"image/color"
	"io"
	"math"

	svg "github.com/ajstarks/svgo"

	"seehuhn.de/go/geom/vec"
)

// svgUnit is the number of SVG user units per frame pixel.  svgo only
// takes integer coordinates, so the view box is scaled up to keep
// fractional pixel positions.
const svgUnit = 100

// SVG draws frames into an SVG document.
type SVG struct {
	c             *svg.SVG
	out           *errWriter
	width, height int
	origin        vec.Vec2
}

var _ Sheet = (*SVG)(nil)

// NewSVG starts an SVG document of the given size in pixels, written to w.
// The document is complete after [SVG.Close] has been called.
func NewSVG(w io.Writer, width, height int, title string) *SVG {
	out := &errWriter{w: w}
	c := svg.New(out)
	c.Startview(width, height, 0, 0, width*svgUnit, height*svgUnit)
	if title != "" {
		c.Title(title)
	}
	return &SVG{c: c, out: out, width: width, height: height}
}

// SetOrigin implements the [Sheet] interface.
func (s *SVG) SetOrigin(x, y float64) {
	s.origin = vec.Vec2{X: x, Y: y}
}

// Background implements the [Sheet] interface.
func (s *SVG) Background(c color.NRGBA) {
	s.c.Rect(0, 0, s.width*svgUnit, s.height*svgUnit, "fill:"+svgPaint(c, "fill"))
}

// Line implements the [menuicon.Surface] interface.
func (s *SVG) Line(a, b vec.Vec2, width float64, c color.NRGBA) {
	a = a.Add(s.origin)
	b = b.Add(s.origin)
	style := fmt.Sprintf("stroke:%s;stroke-width:%d;stroke-linecap:butt",
		svgPaint(c, "stroke"), units(width))
	s.c.Line(units(a.X), units(a.Y), units(b.X), units(b.Y), style)
}

// Circle implements the [menuicon.Surface] interface.
func (s *SVG) Circle(center vec.Vec2, radius float64, c color.NRGBA) {
	center = center.Add(s.origin)
	s.c.Circle(units(center.X), units(center.Y), units(radius), "fill:"+svgPaint(c, "fill"))
}

// Close ends the SVG document.  It returns the first error encountered
// while writing.
func (s *SVG) Close() error {
	s.c.End()
	return s.out.err
}

// errWriter remembers the first write error and discards all output
// after it.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(p []byte) (int, error) {
	if e.err != nil {
		return 0, e.err
	}
	n, err := e.w.Write(p)
	e.err = err
	return n, err
}

func units(x float64) int {
	return int(math.Round(x * svgUnit))
}

// svgPaint formats c as a colour, followed by an opacity property if c is
// not opaque.
func svgPaint(c color.NRGBA, prop string) string {
	res := fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
	if c.A != 255 {
		res += fmt.Sprintf(";%s-opacity:%.3f", prop, float64(c.A)/255)
	}
	return res
}
