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
	"fmt"
	"image"
	"image/color"
	"math"
	"testing"

	"golang.org/x/image/vector"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// ringPath returns a ring with the given radii.  The inner circle runs in
// the opposite direction, so that the nonzero rule leaves a hole.
func ringPath(cx, cy, outerR, innerR float64) path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		_ = circlePath(yield, cx, cy, outerR, false) &&
			circlePath(yield, cx, cy, innerR, true)
	}
}

// circlePath emits a circle made of four cubic Bézier curves.
func circlePath(yield func(path.Command, []vec.Vec2) bool, cx, cy, r float64, clockwise bool) bool {
	const k = 0.5522847498
	dir := 1.0
	if clockwise {
		dir = -1
	}
	point := func(phi float64) vec.Vec2 {
		return vec.Vec2{X: cx + r*math.Cos(phi), Y: cy + r*math.Sin(phi)}
	}
	tangent := func(phi float64) vec.Vec2 {
		return vec.Vec2{X: -math.Sin(phi), Y: math.Cos(phi)}.Mul(dir * k * r)
	}

	var buf [3]vec.Vec2
	buf[0] = point(0)
	if !yield(path.CmdMoveTo, buf[:1]) {
		return false
	}
	for i := range 4 {
		phi0 := dir * float64(i) * math.Pi / 2
		phi1 := dir * float64(i+1) * math.Pi / 2
		buf[0] = point(phi0).Add(tangent(phi0))
		buf[1] = point(phi1).Sub(tangent(phi1))
		buf[2] = point(phi1)
		if !yield(path.CmdCubeTo, buf[:3]) {
			return false
		}
	}
	return yield(path.CmdClose, nil)
}

func circleToVector(r *vector.Rasterizer, cx, cy, radius float32, clockwise bool) {
	const k = float32(0.5522847498)
	kr := k * radius
	if clockwise {
		r.MoveTo(cx, cy-radius)
		r.CubeTo(cx-kr, cy-radius, cx-radius, cy-kr, cx-radius, cy)
		r.CubeTo(cx-radius, cy+kr, cx-kr, cy+radius, cx, cy+radius)
		r.CubeTo(cx+kr, cy+radius, cx+radius, cy+kr, cx+radius, cy)
		r.CubeTo(cx+radius, cy-kr, cx+kr, cy-radius, cx, cy-radius)
	} else {
		r.MoveTo(cx, cy-radius)
		r.CubeTo(cx+kr, cy-radius, cx+radius, cy-kr, cx+radius, cy)
		r.CubeTo(cx+radius, cy+kr, cx+kr, cy+radius, cx, cy+radius)
		r.CubeTo(cx-kr, cy+radius, cx-radius, cy+kr, cx-radius, cy)
		r.CubeTo(cx-radius, cy-kr, cx-kr, cy-radius, cx, cy-radius)
	}
	r.ClosePath()
}

// threeBars are the strokes of a resting menu icon on a 40×40 canvas.
var threeBars = [][2]vec.Vec2{
	{{X: 10, Y: 14.5}, {X: 30, Y: 14.5}},
	{{X: 10, Y: 20}, {X: 30, Y: 20}},
	{{X: 10, Y: 25.5}, {X: 30, Y: 25.5}},
}

// insideBand reports whether (x, y) lies in the butt-capped stroke of
// width w from a to b.
func insideBand(x, y float64, a, b vec.Vec2, w float64) bool {
	d := b.Sub(a)
	l := d.Length()
	u := d.Mul(1 / l)
	px, py := x-a.X, y-a.Y
	along := px*u.X + py*u.Y
	across := px*u.Y - py*u.X
	return along >= 0 && along <= l && math.Abs(across) <= w/2
}

// supersample estimates the coverage of every pixel from n×n sample points
// per pixel.
func supersample(size, n int, inside func(x, y float64) bool) []float64 {
	res := make([]float64, size*size)
	for py := range size {
		for px := range size {
			count := 0
			for j := range n {
				y := float64(py) + (float64(j)+0.5)/float64(n)
				for i := range n {
					x := float64(px) + (float64(i)+0.5)/float64(n)
					if inside(x, y) {
						count++
					}
				}
			}
			res[py*size+px] = float64(count) / float64(n*n)
		}
	}
	return res
}

// TestAgainstSupersampled compares our coverage values with a
// supersampled rendering of the exact shapes.
func TestAgainstSupersampled(t *testing.T) {
	const size = 64
	const samples = 32

	diagA := vec.Vec2{X: 8.3, Y: 50.1}
	diagB := vec.Vec2{X: 55.7, Y: 9.2}

	type drawFuncs struct {
		ours   func(r *Rasterizer, emit EmitFunc)
		inside func(x, y float64) bool
		tol    float64 // our ring is made of flattened Bézier curves
	}
	cases := map[string]drawFuncs{
		"ring": {
			ours: func(r *Rasterizer, emit EmitFunc) {
				r.Flatness = 0.02
				r.Fill(ringPath(32, 32, 28, 18), emit)
			},
			inside: func(x, y float64) bool {
				d := math.Hypot(x-32, y-32)
				return d >= 18 && d <= 28
			},
			tol: 0.04,
		},
		"bars": {
			ours: func(r *Rasterizer, emit EmitFunc) {
				r.Width = 2.5
				for _, s := range threeBars {
					r.Stroke(polyline(s[0], s[1]), emit)
				}
			},
			inside: func(x, y float64) bool {
				for _, s := range threeBars {
					if insideBand(x, y, s[0], s[1], 2.5) {
						return true
					}
				}
				return false
			},
			tol: 0.02,
		},
		"diagonal": {
			ours: func(r *Rasterizer, emit EmitFunc) {
				r.Width = 3
				r.Stroke(polyline(diagA, diagB), emit)
			},
			inside: func(x, y float64) bool {
				return insideBand(x, y, diagA, diagB, 3)
			},
			tol: 0.02,
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			got := make([]float64, size*size)
			r := NewRasterizer(rect.Rect{URx: size, URy: size})
			tc.ours(r, func(y, xMin int, coverage []float32) {
				row := got[y*size+xMin:]
				for i, c := range coverage {
					row[i] = max(row[i], float64(c))
				}
			})

			want := supersample(size, samples, tc.inside)

			var maxDiff float64
			worst := 0
			for i := range got {
				if d := math.Abs(got[i] - want[i]); d > maxDiff {
					maxDiff, worst = d, i
				}
			}
			if maxDiff > tc.tol {
				t.Errorf("pixel (%d,%d): got %.4f, want %.4f",
					worst%size, worst/size, got[worst], want[worst])
			}
		})
	}
}

func BenchmarkRasterizerRing(b *testing.B) {
	for _, size := range []int{24, 48, 192} {
		b.Run(fmt.Sprintf("%dx%d", size, size), func(b *testing.B) {
			clip := rect.Rect{URx: float64(size), URy: float64(size)}
			r := NewRasterizer(clip)
			dst := image.NewAlpha(image.Rect(0, 0, size, size))

			c := float64(size) / 2
			ring := ringPath(c, c, float64(size)*0.45, float64(size)*0.30)

			b.ReportAllocs()
			for b.Loop() {
				r.Fill(ring, func(y, xMin int, coverage []float32) {
					row := dst.Pix[y*dst.Stride+xMin:]
					for i, c := range coverage {
						row[i] = uint8(c * 255)
					}
				})
			}
		})
	}
}

func BenchmarkVectorRing(b *testing.B) {
	for _, size := range []int{24, 48, 192} {
		b.Run(fmt.Sprintf("%dx%d", size, size), func(b *testing.B) {
			r := vector.NewRasterizer(size, size)
			dst := image.NewAlpha(image.Rect(0, 0, size, size))
			src := image.NewUniform(color.Alpha{A: 255})

			c := float32(size) / 2
			b.ReportAllocs()
			for b.Loop() {
				r.Reset(size, size)
				circleToVector(r, c, c, float32(size)*0.45, false)
				circleToVector(r, c, c, float32(size)*0.30, true)
				r.Draw(dst, dst.Bounds(), src, image.Point{})
			}
		})
	}
}

func BenchmarkStrokeBars(b *testing.B) {
	r := NewRasterizer(rect.Rect{URx: 40, URy: 40})
	r.Width = 2.5
	dst := image.NewAlpha(image.Rect(0, 0, 40, 40))
	emit := func(y, xMin int, coverage []float32) {
		row := dst.Pix[y*dst.Stride+xMin:]
		for i, c := range coverage {
			row[i] = uint8(c * 255)
		}
	}
	b.ReportAllocs()
	for b.Loop() {
		for _, s := range threeBars {
			r.Stroke(polyline(s[0], s[1]), emit)
		}
	}
}
