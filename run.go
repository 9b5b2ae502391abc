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
	"context"
	"time"
)

// DefaultTickInterval is the tick interval used by [Run] when none is given.
const DefaultTickInterval = time.Second / 60

// Run drives ic from a ticker until ctx is cancelled.  Each tick passes the
// wall-clock time since the previous tick to [Icon.Tick].
func Run(ctx context.Context, ic *Icon, interval time.Duration) error {
	if interval <= 0 {
		interval = DefaultTickInterval
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	last := time.Now()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case now := <-ticker.C:
			ic.Tick(now.Sub(last))
			last = now
		}
	}
}

// Host is implemented by user interfaces which display an icon.
type Host interface {
	// Surface returns the surface for the next frame.
	Surface() Surface

	// OnClick registers fn to be called when the user activates the icon.
	OnClick(fn func())
}

// Attach connects ic to h.  Frames are drawn onto the host surface, and
// clicks morph the icon to next(current shape) with the accent.  If next
// is nil, clicks cycle through the shapes with [Shape.Next].  Invalid
// shapes returned by next are logged and leave the icon unchanged.
func Attach(ic *Icon, h Host, next func(Shape) Shape) {
	if next == nil {
		next = Shape.Next
	}
	ic.SetFrameHandler(func(f *Frame) {
		if s := h.Surface(); s != nil {
			Draw(s, f)
		}
	})
	h.OnClick(func() {
		if err := ic.AnimateTo(next(ic.Shape()), true); err != nil {
			ic.log.Error("click ignored", "error", err)
		}
	})
}
