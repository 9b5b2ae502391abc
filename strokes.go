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
	"fmt"
	"math"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// Bar identifies one of the three strokes of the icon.
type Bar int

// The three strokes, from top to bottom in the burger shape.
const (
	BarTop Bar = iota
	BarMiddle
	BarBottom

	numBars = iota
)

func (b Bar) String() string {
	switch b {
	case BarTop:
		return "top"
	case BarMiddle:
		return "middle"
	case BarBottom:
		return "bottom"
	default:
		return fmt.Sprintf("Bar(%d)", int(b))
	}
}

// Rotation angles in degrees.  Positive angles turn clockwise on screen.
const (
	arrowMiddleAngle = 180
	arrowTopAngle    = 135
	arrowBottomAngle = 225
	xTopAngle        = 44
	xBottomAngle     = -44
	xRotationAngle   = 90
	checkMiddleAngle = 135
	checkBottomAngle = -90
)

// Line describes the pose of one stroke in icon coordinates, where the y
// axis points down.  The stroke runs from Start to End, after rotating by
// Rotation2 degrees about Pivot2 and then by Rotation degrees about Pivot.
type Line struct {
	Start, End vec.Vec2

	Rotation float64
	Pivot    vec.Vec2

	// Rotation2 turns the stroke about its own centre.
	Rotation2 float64
	Pivot2    vec.Vec2

	// Opacity is a multiplier in [0, 1] for the stroke colour.
	Opacity float64
}

// Transform returns the matrix which maps the unrotated stroke to its pose.
func (l *Line) Transform() matrix.Matrix {
	return rotateAbout(l.Rotation2, l.Pivot2).Mul(rotateAbout(l.Rotation, l.Pivot))
}

// Endpoints returns the two ends of the stroke after rotation.
func (l *Line) Endpoints() (a, b vec.Vec2) {
	M := l.Transform()
	return transform(M, l.Start), transform(M, l.End)
}

// Path returns the stroke as a path with a single line segment.
func (l *Line) Path() path.Path {
	a, b := l.Endpoints()
	return segmentPath(a, b)
}

func segmentPath(a, b vec.Vec2) path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		if !yield(path.CmdMoveTo, []vec.Vec2{a}) {
			return
		}
		yield(path.CmdLineTo, []vec.Vec2{b})
	}
}

// rotateAbout returns a clockwise rotation by deg degrees about p.
func rotateAbout(deg float64, p vec.Vec2) matrix.Matrix {
	if deg == 0 {
		return matrix.Identity
	}
	sin, cos := math.Sincos(deg * math.Pi / 180)
	rot := matrix.Matrix{cos, sin, -sin, cos, 0, 0}
	return matrix.Translate(-p.X, -p.Y).Mul(rot).Mul(matrix.Translate(p.X, p.Y))
}

// transform applies M to the point v.
func transform(M matrix.Matrix, v vec.Vec2) vec.Vec2 {
	return vec.Vec2{
		X: M[0]*v.X + M[2]*v.Y + M[4],
		Y: M[1]*v.X + M[3]*v.Y + M[5],
	}
}

// Strokes computes the pose of the three strokes for the given transition
// pair and progress.  Progress values outside [0, 2] are clamped.
//
// Progress up to 1 uses the forward formulas with ratio = progress.
// Progress above 1 uses the backward formulas with ratio = 2 - progress,
// which for some strokes take a different route back to the first shape.
func Strokes(m *Metrics, p Pair, progress float64) [3]Line {
	if !p.Valid() {
		panic(fmt.Sprintf("menuicon: invalid transition pair %d", int(p)))
	}
	if math.IsNaN(progress) {
		progress = progressStart
	}
	progress = clamp(progress, progressStart, progressEnd)

	ratio := progress
	if progress > progressMid {
		ratio = progressEnd - progress
	}
	forward := progress <= progressMid

	lines := [3]Line{
		BarTop:    topRest(m),
		BarMiddle: middleRest(m),
		BarBottom: bottomRest(m),
	}
	for b := range lines {
		formulas[p][b](&lines[b], m, ratio, forward)
	}
	return lines
}

func topRest(m *Metrics) Line {
	y := m.TopPadding + m.dip2
	return Line{
		Start:   vec.Vec2{X: m.SidePadding, Y: y},
		End:     vec.Vec2{X: float64(m.Width) - m.SidePadding, Y: y},
		Pivot2:  vec.Vec2{X: m.centerX() + m.dip3/2, Y: y},
		Opacity: 1,
	}
}

func middleRest(m *Metrics) Line {
	y := m.TopPadding + m.dip3/2*5
	return Line{
		Start: vec.Vec2{X: m.SidePadding, Y: y},
		End:   vec.Vec2{X: float64(m.Width) - m.SidePadding, Y: y},
		// The middle stroke pivots on the diagonal of the square canvas.
		Pivot:   vec.Vec2{X: m.centerX(), Y: m.centerX()},
		Opacity: 1,
	}
}

func bottomRest(m *Metrics) Line {
	y := float64(m.Height) - m.TopPadding - m.dip2
	return Line{
		Start:   vec.Vec2{X: m.SidePadding, Y: y},
		End:     vec.Vec2{X: float64(m.Width) - m.SidePadding, Y: y},
		Pivot2:  vec.Vec2{X: m.centerX() + m.dip3/2, Y: y},
		Opacity: 1,
	}
}

// A formula modifies the rest pose of one stroke for the given ratio in
// [0, 1].  Forward is false while progress is in the reverse lap (1, 2].
type formula func(l *Line, m *Metrics, ratio float64, forward bool)

// formulas holds the geometry of every stroke in every transition pair.
// At ratio 0 each entry shows the first shape of the pair and at ratio 1
// the second shape, and all entries for the same shape agree.
var formulas = [numPairs][numBars]formula{
	BurgerArrow: {
		BarTop: func(l *Line, m *Metrics, ratio float64, forward bool) {
			if forward {
				l.Rotation = ratio * arrowBottomAngle
			} else {
				// keep turning, to complete a full circle
				l.Rotation = arrowBottomAngle + (1-ratio)*arrowTopAngle
			}
			l.Pivot = vec.Vec2{X: m.centerX(), Y: m.centerY()}
			l.End.X -= m.strokeModifier(BurgerArrow, ratio)
			l.Start.X += m.dip3 * ratio
		},
		BarMiddle: func(l *Line, m *Metrics, ratio float64, forward bool) {
			if forward {
				l.Rotation = ratio * arrowMiddleAngle
			} else {
				l.Rotation = arrowMiddleAngle + (1-ratio)*arrowMiddleAngle
			}
			l.End.X -= ratio * m.strokeModifier(BurgerArrow, ratio) / 2
		},
		BarBottom: func(l *Line, m *Metrics, ratio float64, forward bool) {
			if forward {
				l.Rotation = arrowTopAngle * ratio
			} else {
				l.Rotation = arrowTopAngle + (1-ratio)*arrowBottomAngle
			}
			l.Pivot = vec.Vec2{X: m.centerX(), Y: m.centerY()}
			l.End.X = float64(m.Width) - m.SidePadding - m.strokeModifier(BurgerArrow, ratio)
			l.Start.X = m.SidePadding + m.dip3*ratio
		},
	},

	BurgerX: {
		BarTop: func(l *Line, m *Metrics, ratio float64, forward bool) {
			l.Rotation = xTopAngle * ratio
			l.Rotation2 = xRotationAngle * ratio
			l.Pivot = vec.Vec2{X: m.SidePadding + m.dip4, Y: m.TopPadding + m.dip3}
			l.Start.X += m.dip3 * ratio
		},
		BarMiddle: func(l *Line, m *Metrics, ratio float64, forward bool) {
			l.Opacity = 1 - ratio
		},
		BarBottom: func(l *Line, m *Metrics, ratio float64, forward bool) {
			if forward {
				l.Rotation2 = -xRotationAngle * ratio
			} else {
				l.Rotation2 = xRotationAngle * ratio
			}
			l.Rotation = xBottomAngle * ratio
			l.Pivot = vec.Vec2{X: m.SidePadding + m.dip4, Y: float64(m.Height) - m.TopPadding - m.dip3}
			l.Start.X += m.dip3 * ratio
		},
	},

	ArrowX: {
		BarTop: func(l *Line, m *Metrics, ratio float64, forward bool) {
			l.Rotation = arrowBottomAngle + (xTopAngle-arrowBottomAngle)*ratio
			l.Rotation2 = xRotationAngle * ratio
			// move the pivot from the arrow centre to the X pivot
			l.Pivot = vec.Vec2{
				X: m.centerX() + (m.SidePadding+m.dip4-m.centerX())*ratio,
				Y: m.centerY() + (m.TopPadding+m.dip3-m.centerY())*ratio,
			}
			l.End.X -= m.strokeModifier(ArrowX, ratio)
			l.Start.X += m.dip3
		},
		BarMiddle: func(l *Line, m *Metrics, ratio float64, forward bool) {
			l.Opacity = 1 - ratio
			// arrowMiddleInset instead of a fixed dip2, so the ARROW pose
			// matches BURGER_ARROW at every stroke weight
			l.Start.X += (1 - ratio) * m.arrowMiddleInset()
		},
		BarBottom: func(l *Line, m *Metrics, ratio float64, forward bool) {
			l.Rotation = arrowTopAngle + (360+xBottomAngle-arrowTopAngle)*ratio
			l.Rotation2 = -xRotationAngle * ratio
			l.Pivot = vec.Vec2{
				X: m.centerX() + (m.SidePadding+m.dip4-m.centerX())*ratio,
				Y: m.centerY() + (m.centerY()-m.TopPadding-m.dip3)*ratio,
			}
			l.End.X -= m.strokeModifier(ArrowX, ratio)
			l.Start.X += m.dip3
		},
	},

	ArrowCheck: {
		BarTop: func(l *Line, m *Metrics, ratio float64, forward bool) {
			l.Opacity = 1 - ratio
			// hold the arrow pose while fading out
			l.Rotation = arrowBottomAngle
			l.Pivot = vec.Vec2{X: m.centerX(), Y: m.centerY()}
			l.End.X -= m.strokeModifier(ArrowCheck, 1)
			l.Start.X += m.dip3
		},
		BarMiddle: func(l *Line, m *Metrics, ratio float64, forward bool) {
			if forward {
				l.Rotation = ratio * checkMiddleAngle
			} else {
				l.Rotation = checkMiddleAngle - checkMiddleAngle*(1-ratio)
			}
			// starts from arrowMiddleInset instead of a fixed dip2, so the
			// ARROW pose matches BURGER_ARROW at every stroke weight
			inset := m.dip3/2 + m.dip4
			l.Start.X += inset - (1-ratio)*(inset-m.arrowMiddleInset())
			l.End.X += ratio * m.dip1
			l.Pivot.X = m.centerX() + m.dip3 + m.diph
		},
		BarBottom: func(l *Line, m *Metrics, ratio float64, forward bool) {
			l.Rotation = arrowTopAngle + ratio*checkBottomAngle
			l.Pivot = vec.Vec2{X: m.centerX() + m.dip3*ratio, Y: m.centerY() - m.dip3*ratio}
			l.End.X -= m.strokeModifier(ArrowCheck, 1)
			l.Start.X += m.dip3 + (m.dip4+m.dip1)*ratio
		},
	},

	BurgerCheck: {
		BarTop: func(l *Line, m *Metrics, ratio float64, forward bool) {
			l.Opacity = 1 - ratio
		},
		BarMiddle: func(l *Line, m *Metrics, ratio float64, forward bool) {
			l.Rotation = ratio * checkMiddleAngle
			l.Start.X += ratio * (m.dip4 + m.dip3/2)
			l.End.X += ratio * m.dip1
			l.Pivot.X = m.centerX() + m.dip3 + m.diph
		},
		BarBottom: func(l *Line, m *Metrics, ratio float64, forward bool) {
			l.Rotation = ratio * (checkBottomAngle + arrowTopAngle)
			l.Pivot = vec.Vec2{X: m.centerX() + m.dip3*ratio, Y: m.centerY() - m.dip3*ratio}
			l.Start.X += m.dip8 * ratio
			l.End.X -= m.strokeModifier(BurgerCheck, ratio)
		},
	},

	XCheck: {
		BarTop: func(l *Line, m *Metrics, ratio float64, forward bool) {
			// hold the X pose while fading out
			l.Rotation = xTopAngle
			l.Rotation2 = xRotationAngle
			l.Pivot = vec.Vec2{X: m.SidePadding + m.dip4, Y: m.TopPadding + m.dip3}
			l.End.X += m.dip3 - m.dip3*(1-ratio)
			l.Start.X += m.dip3
			l.Opacity = 1 - ratio
		},
		BarMiddle: func(l *Line, m *Metrics, ratio float64, forward bool) {
			l.Opacity = ratio
			l.Rotation = ratio * checkMiddleAngle
			l.Start.X += ratio * (m.dip4 + m.dip3/2)
			l.End.X += ratio * m.dip1
			l.Pivot.X = m.centerX() + m.dip3 + m.diph
		},
		BarBottom: func(l *Line, m *Metrics, ratio float64, forward bool) {
			l.Rotation2 = -xRotationAngle * (1 - ratio)
			l.Rotation = xBottomAngle + (checkBottomAngle+arrowTopAngle-xBottomAngle)*ratio
			l.Pivot = vec.Vec2{
				X: m.SidePadding + m.dip4 + (m.centerX()+m.dip3-m.SidePadding-m.dip4)*ratio,
				Y: float64(m.Height) - m.TopPadding - m.dip3 + (m.TopPadding+m.centerY()-float64(m.Height))*ratio,
			}
			l.Start.X += m.dip8 - (m.dip4+m.dip1)*(1-ratio)
			l.End.X -= m.strokeModifier(XCheck, 1-ratio)
		},
	},
}
