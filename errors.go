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

import "errors"

var (
	// ErrUnsupportedTransition is returned when no transition pair connects
	// two shapes.  With the four fixed shapes this indicates a programming
	// error, for example an invalid Shape value.
	ErrUnsupportedTransition = errors.New("unsupported transition")

	// ErrOutOfRange is returned by [Icon.SetOffset] for progress values
	// outside [0, 2].
	ErrOutOfRange = errors.New("progress out of range")

	// ErrUnknownShape is returned when a shape name cannot be parsed.
	ErrUnknownShape = errors.New("unknown shape")

	// ErrUnknownPair is returned when a transition pair name cannot be parsed.
	ErrUnknownPair = errors.New("unknown transition pair")
)
