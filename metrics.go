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
	"strings"

	"golang.org/x/exp/constraints"
)

// Weight selects the stroke width of the icon, in dip.
type Weight int

// The supported stroke weights.  The zero value selects [WeightThin].
const (
	WeightExtraThin Weight = 1
	WeightThin      Weight = 2
	WeightRegular   Weight = 3
)

// normalize maps unsupported values to WeightThin.
func (w Weight) normalize() Weight {
	switch w {
	case WeightExtraThin, WeightThin, WeightRegular:
		return w
	default:
		return WeightThin
	}
}

func (w Weight) String() string {
	switch w {
	case WeightExtraThin:
		return "extra_thin"
	case WeightThin:
		return "thin"
	case WeightRegular:
		return "regular"
	default:
		return fmt.Sprintf("Weight(%d)", int(w))
	}
}

// ParseWeight converts "regular", "thin" or "extra_thin" to a Weight.
// The empty string selects [WeightThin].
func ParseWeight(name string) (Weight, error) {
	switch strings.ToLower(strings.ReplaceAll(name, "-", "_")) {
	case "regular":
		return WeightRegular, nil
	case "thin", "":
		return WeightThin, nil
	case "extra_thin", "extrathin":
		return WeightExtraThin, nil
	}
	return 0, fmt.Errorf("unknown stroke weight %q (valid: regular, thin, extra_thin)", name)
}

// Base dimensions of the icon, in dip.
const (
	baseCanvasWidth  = 40
	baseCanvasHeight = 40
	baseIconWidth    = 20
	baseCircleRadius = 18

	// accentGrowth is the ratio between the largest accent radius and the
	// accent circle radius.
	accentGrowth = 1.22

	// accentAlpha is the opacity of the accent at radius zero.
	accentAlpha = 200.0 / 255.0
)

// Metrics holds the pixel dimensions of an icon.  All lengths are in device
// pixels.  Use [NewMetrics] to obtain a consistent set of values.
type Metrics struct {
	Weight Weight

	// Width and Height give the size of the canvas.  The canvas is
	// square, and all pivots derive from its exact centre, also for odd
	// sizes.
	Width, Height int

	IconWidth    float64
	CircleRadius float64
	StrokeWidth  float64
	SidePadding  float64
	TopPadding   float64

	// dip lengths, pre-multiplied by density and scale
	diph, dip1, dip2, dip3, dip4, dip6, dip8 float64
}

// NewMetrics computes the dimensions of an icon.  Density gives the number
// of pixels per dip and scale is an additional size multiplier.  Invalid
// values are clamped: density and scale fall back to 1 when not positive,
// and the canvas is at least one pixel wide.
func NewMetrics(w Weight, density, scale float64) *Metrics {
	if !(density > 0) || math.IsInf(density, 0) {
		density = 1
	}
	if !(scale > 0) || math.IsInf(scale, 0) {
		scale = 1
	}
	w = w.normalize()
	unit := density * scale

	m := &Metrics{
		Weight: w,

		dip1: unit,
		dip2: 2 * unit,
		dip3: 3 * unit,
		dip4: 4 * unit,
		dip6: 6 * unit,
		dip8: 8 * unit,

		Width:        max(int(baseCanvasWidth*unit), 1),
		Height:       max(int(baseCanvasHeight*unit), 1),
		IconWidth:    baseIconWidth * unit,
		CircleRadius: baseCircleRadius * unit,
		StrokeWidth:  float64(w) * unit,
	}
	m.diph = m.dip1 / 2
	m.SidePadding = (float64(m.Width) - m.IconWidth) / 2
	m.TopPadding = (float64(m.Height) - 5*m.dip3) / 2
	return m
}

// centerX returns the horizontal centre of the canvas.
func (m *Metrics) centerX() float64 {
	return float64(m.Width) / 2
}

// centerY returns the vertical centre of the canvas.
func (m *Metrics) centerY() float64 {
	return float64(m.Height) / 2
}

// MaxAccentRadius returns the radius at which the accent sweep ends.
func (m *Metrics) MaxAccentRadius() float64 {
	return m.CircleRadius * accentGrowth
}

// strokeModifier returns how much the outer end of a stroke is pulled in
// at the given ratio.  The amount depends on the stroke weight so that the
// tips of the arrow meet cleanly.  For transitions into X (ArrowX and XCheck)
// the direction of the modifier is inverted.
func (m *Metrics) strokeModifier(p Pair, ratio float64) float64 {
	inverted := p == ArrowX || p == XCheck
	switch m.Weight {
	case WeightRegular:
		if inverted {
			return m.dip3 - m.dip3*ratio
		}
		return ratio * m.dip3
	case WeightThin:
		if inverted {
			return m.dip3 + m.diph - (m.dip3+m.diph)*ratio
		}
		return ratio * (m.dip3 + m.diph)
	case WeightExtraThin:
		if inverted {
			return m.dip4 - (m.dip3+m.dip1)*ratio
		}
		return ratio * m.dip4
	}
	return 0
}

// arrowMiddleInset is the amount by which the middle stroke of the resting
// arrow is shortened at its tail.
func (m *Metrics) arrowMiddleInset() float64 {
	return m.strokeModifier(BurgerArrow, 1) / 2
}

// clamp limits x to the interval [lo, hi].
func clamp[T constraints.Integer | constraints.Float](x, lo, hi T) T {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
