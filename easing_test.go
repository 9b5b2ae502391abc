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
	"math"
	"testing"
	"time"
)

func TestEasingEndpoints(t *testing.T) {
	easings := map[string]Easing{
		"linear":        Linear,
		"decelerate(1)": Decelerate(1),
		"decelerate(3)": Decelerate(3),
		"decelerate(0)": Decelerate(0),
	}
	for name, e := range easings {
		if e(0) != 0 || e(1) != 1 {
			t.Errorf("%s: e(0) = %g, e(1) = %g", name, e(0), e(1))
		}
		last := 0.0
		for i := 1; i <= 100; i++ {
			v := e(float64(i) / 100)
			if v < last {
				t.Errorf("%s: not monotonic at %d", name, i)
			}
			last = v
		}
	}
}

func TestDecelerate(t *testing.T) {
	if got := Decelerate(1)(0.5); got != 0.75 {
		t.Errorf("Decelerate(1)(0.5) = %g", got)
	}
	if got, want := Decelerate(3)(0.5), 1-math.Pow(0.5, 6); math.Abs(got-want) > 1e-15 {
		t.Errorf("Decelerate(3)(0.5) = %g, want %g", got, want)
	}
}

func TestSweep(t *testing.T) {
	var s sweep
	s.start(1, 2, 100*time.Millisecond, Linear)
	if v, done := s.advance(25 * time.Millisecond); done || v != 1.25 {
		t.Errorf("got %g, %t", v, done)
	}
	if v, done := s.advance(-time.Second); done || v != 1.25 {
		t.Errorf("negative step: got %g, %t", v, done)
	}
	if v, done := s.advance(time.Second); !done || v != 2 {
		t.Errorf("got %g, %t", v, done)
	}
	s.cancel() // no-op after completion
	if s.running {
		t.Error("sweep still running")
	}

	s.start(0.5, 0, 0, nil)
	if v := s.value(); v != 0.5 {
		t.Errorf("zero duration sweep starts at %g", v)
	}
	if v, done := s.advance(0); !done || v != 0 {
		t.Errorf("got %g, %t", v, done)
	}
}

func TestScaleDuration(t *testing.T) {
	if got := scaleDuration(800*time.Millisecond, 0.25); got != 200*time.Millisecond {
		t.Errorf("got %s", got)
	}
	if got := scaleDuration(-1, 0.25); got != -1 {
		t.Errorf("got %s", got)
	}
}
