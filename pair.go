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
	"strings"
)

// Pair identifies one of the six transitions the icon can interpolate.
// Each pair has a fixed first and second shape.  Progress 0 (and 2)
// shows the first shape, progress 1 shows the second shape.
type Pair int

// The six transition pairs.
const (
	BurgerArrow Pair = iota
	BurgerX
	ArrowX
	ArrowCheck
	BurgerCheck
	XCheck

	numPairs = iota
)

var pairShapes = [numPairs][2]Shape{
	BurgerArrow: {Burger, Arrow},
	BurgerX:     {Burger, X},
	ArrowX:      {Arrow, X},
	ArrowCheck:  {Arrow, Check},
	BurgerCheck: {Burger, Check},
	XCheck:      {X, Check},
}

var pairNames = [numPairs]string{
	"BURGER_ARROW", "BURGER_X", "ARROW_X", "ARROW_CHECK", "BURGER_CHECK", "X_CHECK",
}

// Pairs lists all transition pairs in declaration order.
var Pairs = []Pair{BurgerArrow, BurgerX, ArrowX, ArrowCheck, BurgerCheck, XCheck}

// First returns the shape shown at progress 0 and 2.
func (p Pair) First() Shape {
	return pairShapes[p][0]
}

// Second returns the shape shown at progress 1.
func (p Pair) Second() Shape {
	return pairShapes[p][1]
}

// Contains reports whether s is one of the two shapes of the pair.
func (p Pair) Contains(s Shape) bool {
	return p.Valid() && (pairShapes[p][0] == s || pairShapes[p][1] == s)
}

// Valid reports whether p is one of the six defined pairs.
func (p Pair) Valid() bool {
	return p >= 0 && p < numPairs
}

func (p Pair) String() string {
	if !p.Valid() {
		return fmt.Sprintf("Pair(%d)", int(p))
	}
	return pairNames[p]
}

// ParsePair converts a pair name like "ARROW_X" to a Pair.
// Matching is case-insensitive.
func ParsePair(name string) (Pair, error) {
	for i, n := range pairNames {
		if strings.EqualFold(name, n) {
			return Pair(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownPair, name)
}

// Resolve finds the transition pair which connects current to target.
// If forward is true, current is the first shape of the pair and the morph
// sweeps progress from 0 to 1.  Otherwise current is the second shape and
// progress sweeps from 1 to 2.
//
// The two shapes must differ; callers treat equal shapes as a no-op.
func Resolve(current, target Shape) (pair Pair, forward bool, err error) {
	if current != target {
		for p, shapes := range pairShapes {
			switch {
			case shapes[0] == current && shapes[1] == target:
				return Pair(p), true, nil
			case shapes[1] == current && shapes[0] == target:
				return Pair(p), false, nil
			}
		}
	}
	return 0, false, fmt.Errorf("%w: from %s to %s", ErrUnsupportedTransition, current, target)
}

// restPose returns the pair and progress used to show s at rest
// after [Icon.SetShape].
func restPose(s Shape) (Pair, float64) {
	switch s {
	case Arrow:
		return BurgerArrow, progressMid
	case X:
		return BurgerX, progressMid
	case Check:
		return BurgerCheck, progressMid
	default:
		return BurgerArrow, progressStart
	}
}

// Progress landmarks.
const (
	progressStart = 0.0
	progressMid   = 1.0
	progressEnd   = 2.0
)
