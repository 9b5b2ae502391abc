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


// Package testcases lists named icon poses, used by the tests of the
// rendering packages and by the tools which generate reference output.
package testcases

import (
	"seehuhn.de/go/menuicon"
)

// TestCase describes one icon pose.
type TestCase struct {
	Name     string // lowercase a-z, 0-9 and _ only
	Pair     menuicon.Pair
	Progress float64
	Weight   menuicon.Weight
	Density  float64 // pixels per dip, zero means 1
	Scale    float64 // zero means 1
	RTL      bool
	Accent   float64 // accent radius in pixels, zero for none
}

// Metrics returns the icon dimensions for the test case.
func (tc TestCase) Metrics() *menuicon.Metrics {
	return menuicon.NewMetrics(tc.Weight, tc.Density, tc.Scale)
}

// Frame computes the frame showing the pose.
func (tc TestCase) Frame() *menuicon.Frame {
	m := tc.Metrics()
	f := menuicon.NewFrame(m, tc.Pair, tc.Progress, tc.RTL)
	f.SetAccent(m, tc.Accent)
	return f
}
