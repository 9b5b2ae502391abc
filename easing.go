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

import "math"

// Easing maps the elapsed fraction t ∈ [0, 1] of a sweep to the fraction of
// the distance covered.  An easing must map 0 to 0 and 1 to 1.
type Easing func(t float64) float64

// Linear covers the distance at constant speed.
func Linear(t float64) float64 {
	return t
}

// Decelerate returns an easing which starts fast and slows down towards the
// end.  The curve is 1 - (1-t)^(2·factor); larger factors settle more
// slowly.  Factors which are not positive are replaced by 1.
func Decelerate(factor float64) Easing {
	if !(factor > 0) || factor == 1 {
		return func(t float64) float64 {
			u := 1 - t
			return 1 - u*u
		}
	}
	e := 2 * factor
	return func(t float64) float64 {
		return 1 - math.Pow(1-t, e)
	}
}

// Default easing curves.
var (
	morphEasing  = Decelerate(3)
	accentEasing = Decelerate(1)
)
