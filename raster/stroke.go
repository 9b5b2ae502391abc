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
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// Stroking builds the outline as a union of rectangles, one per segment.
// Ends are cut off square at the end points (butt caps) and corners are
// not joined.  All rectangles have the same orientation, so the nonzero
// rule merges them where they overlap.

// Stroke rasterizes the outline of the path, using r.Width.  Curves are
// flattened first; the pieces of a flattened curve meet at angles too
// small for the missing joins to show.  Zero-length segments draw nothing.
func (r *Rasterizer) Stroke(p path.Path, emit EmitFunc) {
	r.resetEdges()

	d := r.Width / 2
	if d > 0 {
		var current, start vec.Vec2
		segment := func(a, b vec.Vec2) {
			r.addBand(a, b, d)
		}
		for cmd, pts := range p.ToCubic() {
			switch cmd {
			case path.CmdMoveTo:
				current = pts[0]
				start = current
			case path.CmdLineTo:
				segment(current, pts[0])
				current = pts[0]
			case path.CmdCubeTo:
				r.flattenCubic(current, pts[0], pts[1], pts[2], segment)
				current = pts[2]
			case path.CmdClose:
				segment(current, start)
				current = start
			}
		}
	}

	r.fillEdges(emit)
}

// addBand adds the rectangle of half-width d around the segment from a to b.
func (r *Rasterizer) addBand(a, b vec.Vec2, d float64) {
	v := b.Sub(a)
	l := v.Length()
	if l <= zeroLengthThreshold {
		return
	}
	n := vec.Vec2{X: -v.Y, Y: v.X}.Mul(d / l)
	p0, p1, p2, p3 := a.Add(n), b.Add(n), b.Sub(n), a.Sub(n)
	r.addEdge(p0, p1)
	r.addEdge(p1, p2)
	r.addEdge(p2, p3)
	r.addEdge(p3, p0)
}
