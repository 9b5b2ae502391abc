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

// Shape is one of the four resting appearances of the icon.
type Shape int

// The shapes an icon can rest in.
const (
	Burger Shape = iota // three parallel bars
	Arrow               // left-pointing arrow
	X                   // two crossed diagonals
	Check               // check mark

	numShapes = iota
)

var shapeNames = [numShapes]string{"BURGER", "ARROW", "X", "CHECK"}

// String returns the upper-case name of the shape, e.g. "BURGER".
func (s Shape) String() string {
	if s < 0 || s >= numShapes {
		return fmt.Sprintf("Shape(%d)", int(s))
	}
	return shapeNames[s]
}

// Valid reports whether s is one of the four defined shapes.
func (s Shape) Valid() bool {
	return s >= 0 && s < numShapes
}

// ParseShape converts a shape name to a Shape.  Matching is case-insensitive.
func ParseShape(name string) (Shape, error) {
	for i, n := range shapeNames {
		if strings.EqualFold(name, n) {
			return Shape(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownShape, name)
}

// MarshalText implements the [encoding.TextMarshaler] interface.
func (s Shape) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownShape, int(s))
	}
	return []byte(shapeNames[s]), nil
}

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
// An empty input decodes to [Burger].
func (s *Shape) UnmarshalText(text []byte) error {
	if len(text) == 0 {
		*s = Burger
		return nil
	}
	v, err := ParseShape(string(text))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// Next returns the shape following s in the order
// BURGER, ARROW, X, CHECK, BURGER, ...
func (s Shape) Next() Shape {
	if !s.Valid() {
		return Burger
	}
	return (s + 1) % numShapes
}
