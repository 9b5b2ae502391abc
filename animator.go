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

import "time"

// sweep moves a value from one end point to another over a fixed duration.
// Time only advances through calls to advance.
type sweep struct {
	from, to float64
	duration time.Duration
	elapsed  time.Duration
	ease     Easing
	running  bool
}

// start begins a new sweep.  A duration which is not positive completes
// the sweep on the next call to advance.
func (s *sweep) start(from, to float64, d time.Duration, ease Easing) {
	if ease == nil {
		ease = Linear
	}
	s.from = from
	s.to = to
	s.duration = d
	s.elapsed = 0
	s.ease = ease
	s.running = true
}

// advance moves the sweep forward by dt and returns the new value.
// Once done is true, the value equals the end point exactly.
func (s *sweep) advance(dt time.Duration) (value float64, done bool) {
	if !s.running {
		return s.to, true
	}
	if dt > 0 {
		s.elapsed += dt
	}
	if s.duration <= 0 || s.elapsed >= s.duration {
		s.running = false
		return s.to, true
	}
	return s.value(), false
}

// value returns the current value without advancing time.
func (s *sweep) value() float64 {
	if !s.running {
		return s.to
	}
	if s.duration <= 0 {
		return s.from
	}
	t := float64(s.elapsed) / float64(s.duration)
	return s.from + (s.to-s.from)*clamp(s.ease(clamp(t, 0, 1)), 0, 1)
}

// cancel stops the sweep where it is.  Cancelling a finished sweep has no
// effect.
func (s *sweep) cancel() {
	s.running = false
}

// scaleDuration returns the part of full which corresponds to covering
// distance out of a total distance of 1.
func scaleDuration(full time.Duration, distance float64) time.Duration {
	if full <= 0 {
		return full
	}
	return time.Duration(float64(full) * clamp(distance, 0, 1))
}
