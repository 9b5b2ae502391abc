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
	"image/color"
	"io"
	"math"
	"sync"
	"time"

	"golang.org/x/exp/slog"
)

// Default durations.
const (
	DefaultMorphDuration  = 800 * time.Millisecond
	DefaultAccentDuration = 400 * time.Millisecond
)

// Options control the construction of an [Icon].
// The zero value (or a nil pointer) selects the defaults.
type Options struct {
	// Weight selects the stroke width.  The default is [WeightThin].
	Weight Weight

	// Density is the number of pixels per dip.  The default is 1.
	Density float64

	// Scale multiplies all dimensions.  The default is 1.
	Scale float64

	// Color is the colour of strokes and accent.  The default is white.
	Color color.Color

	// MorphDuration and AccentDuration give the length of a full sweep.
	// Zero selects the defaults, negative values complete sweeps on the
	// next tick.
	MorphDuration  time.Duration
	AccentDuration time.Duration

	// Easing and AccentEasing shape the sweeps.  The defaults are
	// Decelerate(3) and Decelerate(1).
	Easing       Easing
	AccentEasing Easing

	// Shape is the initial shape.
	Shape Shape

	RTL      bool
	Hidden   bool
	NoAccent bool

	// OnFrame is called with a new frame after every visible change.
	OnFrame func(*Frame)

	Listener Listener

	// Logger receives debug messages about the state machine.  The
	// default discards all output.
	Logger *slog.Logger
}

// Listener is notified about morphs driven by [Icon.AnimateTo].
type Listener interface {
	MorphStarted(from, to Shape)
	MorphFinished(s Shape)
}

// State is a snapshot of the state machine.
type State struct {
	// Shape is the shape the icon rests in, or the shape a running morph
	// started from.
	Shape Shape

	// Target is the shape a running morph is heading to.  At rest it is
	// the other shape of the active pair.
	Target Shape

	Pair      Pair
	Progress  float64
	Animating bool

	AccentRadius float64
	AccentActive bool
}

// Icon is a morphing menu icon.  All methods are safe for concurrent use,
// but time only advances through [Icon.Tick].
type Icon struct {
	mu sync.Mutex

	m   *Metrics
	log *slog.Logger

	current, target Shape
	pair            Pair
	progress        float64
	animating       bool
	morph           sweep

	accent       sweep
	accentRadius float64

	color                         color.NRGBA
	morphDuration, accentDuration time.Duration
	easing, accentEasing          Easing
	rtl, visible, accentEnabled   bool

	onFrame  func(*Frame)
	listener Listener
}

// New allocates a new icon resting in opt.Shape.
func New(opt *Options) *Icon {
	if opt == nil {
		opt = &Options{}
	}

	ic := &Icon{
		m:              NewMetrics(opt.Weight, opt.Density, opt.Scale),
		log:            opt.Logger,
		color:          defaultColor,
		morphDuration:  opt.MorphDuration,
		accentDuration: opt.AccentDuration,
		easing:         opt.Easing,
		accentEasing:   opt.AccentEasing,
		rtl:            opt.RTL,
		visible:        !opt.Hidden,
		accentEnabled:  !opt.NoAccent,
		onFrame:        opt.OnFrame,
		listener:       opt.Listener,
	}
	if ic.log == nil {
		ic.log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if opt.Color != nil {
		ic.color = color.NRGBAModel.Convert(opt.Color).(color.NRGBA)
	}
	if ic.morphDuration == 0 {
		ic.morphDuration = DefaultMorphDuration
	}
	if ic.accentDuration == 0 {
		ic.accentDuration = DefaultAccentDuration
	}
	if ic.easing == nil {
		ic.easing = morphEasing
	}
	if ic.accentEasing == nil {
		ic.accentEasing = accentEasing
	}

	s := opt.Shape
	if !s.Valid() {
		s = Burger
	}
	ic.setRestLocked(s)
	return ic
}

// Metrics returns the dimensions of the icon.
func (ic *Icon) Metrics() Metrics {
	return *ic.m
}

// Shape returns the current shape.  While a morph is running, this is the
// shape the morph started from.
func (ic *Icon) Shape() Shape {
	ic.mu.Lock()
	defer ic.mu.Unlock()
	return ic.current
}

// State returns a snapshot of the state machine.
func (ic *Icon) State() State {
	ic.mu.Lock()
	defer ic.mu.Unlock()
	return State{
		Shape:        ic.current,
		Target:       ic.target,
		Pair:         ic.pair,
		Progress:     ic.progress,
		Animating:    ic.animating,
		AccentRadius: ic.accentRadius,
		AccentActive: ic.accent.running,
	}
}

// Frame returns the current frame.
func (ic *Icon) Frame() *Frame {
	ic.mu.Lock()
	defer ic.mu.Unlock()
	return ic.frameLocked()
}

// SetShape shows s at rest.  A running morph is cancelled without
// completing; a running accent continues.
func (ic *Icon) SetShape(s Shape) error {
	if !s.Valid() {
		return fmt.Errorf("%w: %d", ErrUnknownShape, int(s))
	}

	ic.mu.Lock()
	var ev events
	if ic.animating {
		ic.log.Debug("morph cancelled",
			"from", ic.current, "to", ic.target, "progress", ic.progress)
	}
	ic.setRestLocked(s)
	ev.frame = ic.frameLocked()
	ic.unlock(&ev)
	return nil
}

// setRestLocked puts the icon into the canonical rest pose for s.
func (ic *Icon) setRestLocked(s Shape) {
	ic.morph.cancel()
	ic.animating = false
	ic.current = s
	ic.pair, ic.progress = restPose(s)
	if ic.pair.First() == s {
		ic.target = ic.pair.Second()
	} else {
		ic.target = ic.pair.First()
	}
}

// AnimateTo starts a morph from the current shape to s.  If withAccent is
// set and the accent is enabled, the accent sweep starts as well.
//
// Calls are ignored if the icon already shows s at rest or is already
// morphing towards s.  Asking for the start shape of a running morph
// reverses the morph in place.  Asking for any other shape completes the
// running morph first.
func (ic *Icon) AnimateTo(s Shape, withAccent bool) error {
	if !s.Valid() {
		return fmt.Errorf("%w: %d", ErrUnknownShape, int(s))
	}

	ic.mu.Lock()
	var ev events

	switch {
	case ic.animating && s == ic.target:
		ic.mu.Unlock()
		return nil

	case ic.animating && s == ic.current:
		// Turn back towards the other end of the lap the sweep runs in.
		lo, hi := progressStart, progressMid
		if ic.progress > progressMid || ic.morph.to == progressEnd {
			lo, hi = progressMid, progressEnd
		}
		origin := lo
		if ic.morph.to == lo {
			origin = hi
		}
		ic.log.Debug("morph reversed",
			"from", ic.target, "to", ic.current, "progress", ic.progress)
		ic.current, ic.target = ic.target, ic.current
		ic.morph.start(ic.progress, origin,
			scaleDuration(ic.morphDuration, math.Abs(origin-ic.progress)), ic.easing)
		ev.started = true
		ev.from, ev.to = ic.current, ic.target

	case !ic.animating && s == ic.current:
		ic.mu.Unlock()
		return nil

	default:
		if ic.animating {
			ic.log.Debug("morph forced to finish",
				"from", ic.current, "to", ic.target, "next", s)
			ic.finishLocked(&ev)
		}
		pair, forward, err := Resolve(ic.current, s)
		if err != nil {
			ic.unlock(&ev)
			return err
		}
		from, to := progressMid, progressEnd
		if forward {
			from, to = progressStart, progressMid
		}
		if pair == ic.pair && ic.progress > from && ic.progress < to {
			from = ic.progress
		}
		ic.pair = pair
		ic.progress = from
		ic.target = s
		ic.animating = true
		ic.morph.start(from, to, scaleDuration(ic.morphDuration, to-from), ic.easing)
		ic.log.Debug("morph started",
			"from", ic.current, "to", s, "pair", pair, "progress", from)
		ev.started = true
		ev.from, ev.to = ic.current, s
	}

	if withAccent && ic.accentEnabled {
		ic.accent.start(ic.accentRadius, ic.m.MaxAccentRadius(),
			ic.accentDuration, ic.accentEasing)
	}
	ev.frame = ic.frameLocked()
	ic.unlock(&ev)
	return nil
}

// SetOffset shows the pose at the given progress of pair p directly,
// without animation.  The result is the shape the icon is now considered
// to rest in: the first shape of the pair for progress below 1 or equal
// to 2, and the second shape otherwise.
//
// Progress outside [0, 2] gives [ErrOutOfRange] and leaves the icon
// unchanged.  A running morph is cancelled.
func (ic *Icon) SetOffset(p Pair, progress float64) (Shape, error) {
	if !p.Valid() {
		return 0, fmt.Errorf("%w: %d", ErrUnknownPair, int(p))
	}
	if math.IsNaN(progress) || progress < progressStart || progress > progressEnd {
		return 0, fmt.Errorf("%w: %g", ErrOutOfRange, progress)
	}

	ic.mu.Lock()
	var ev events
	ic.morph.cancel()
	ic.animating = false
	ic.pair = p
	ic.progress = progress
	ic.current = classify(p, progress)
	if ic.current == p.First() {
		ic.target = p.Second()
	} else {
		ic.target = p.First()
	}
	s := ic.current
	ev.frame = ic.frameLocked()
	ic.unlock(&ev)
	return s, nil
}

// Stop completes a running morph at its target and removes the accent.
// Stop has no effect on an idle icon.
func (ic *Icon) Stop() {
	ic.mu.Lock()
	var ev events
	if !ic.animating && !ic.accent.running {
		ic.mu.Unlock()
		return
	}
	if ic.animating {
		ic.finishLocked(&ev)
	}
	ic.accent.cancel()
	ic.accentRadius = 0
	ev.frame = ic.frameLocked()
	ic.unlock(&ev)
}

// Tick advances the morph and the accent by dt.  If anything was running,
// a new frame is emitted.  The return value reports whether a further tick
// is needed.
func (ic *Icon) Tick(dt time.Duration) bool {
	ic.mu.Lock()
	if !ic.animating && !ic.accent.running {
		ic.mu.Unlock()
		return false
	}

	var ev events
	if ic.animating {
		var done bool
		ic.progress, done = ic.morph.advance(dt)
		if done {
			ic.finishLocked(&ev)
		}
	}
	if ic.accent.running {
		r, done := ic.accent.advance(dt)
		if done {
			r = 0
		}
		ic.accentRadius = r
	}
	running := ic.animating || ic.accent.running
	ev.frame = ic.frameLocked()
	ic.unlock(&ev)
	return running
}

// finishLocked commits the target of the running morph.
func (ic *Icon) finishLocked(ev *events) {
	ic.morph.cancel()
	ic.animating = false
	ic.progress = ic.morph.to
	if ic.progress == progressEnd {
		ic.progress = progressStart
	}
	ic.current, ic.target = ic.target, ic.current
	ic.log.Debug("morph finished", "shape", ic.current, "pair", ic.pair)
	ev.finished = true
	ev.shape = ic.current
}

// SetColor changes the colour of strokes and accent.
func (ic *Icon) SetColor(c color.Color) {
	ic.mu.Lock()
	ic.color = color.NRGBAModel.Convert(c).(color.NRGBA)
	ic.unlock(&events{frame: ic.frameLocked()})
}

// SetMorphDuration sets the duration of a full morph.  The new value
// applies to morphs started later.
func (ic *Icon) SetMorphDuration(d time.Duration) {
	ic.mu.Lock()
	defer ic.mu.Unlock()
	ic.morphDuration = d
}

// SetAccentDuration sets the duration of a full accent sweep.
func (ic *Icon) SetAccentDuration(d time.Duration) {
	ic.mu.Lock()
	defer ic.mu.Unlock()
	ic.accentDuration = d
}

// SetEasing sets the easing curve of later morphs.  Nil restores the
// default.
func (ic *Icon) SetEasing(e Easing) {
	if e == nil {
		e = morphEasing
	}
	ic.mu.Lock()
	defer ic.mu.Unlock()
	ic.easing = e
}

// SetAccentEasing sets the easing curve of later accent sweeps.
func (ic *Icon) SetAccentEasing(e Easing) {
	if e == nil {
		e = accentEasing
	}
	ic.mu.Lock()
	defer ic.mu.Unlock()
	ic.accentEasing = e
}

// SetRTL mirrors the icon horizontally.
func (ic *Icon) SetRTL(rtl bool) {
	ic.mu.Lock()
	ic.rtl = rtl
	ic.unlock(&events{frame: ic.frameLocked()})
}

// SetVisible shows or hides the icon.  Hidden icons keep animating.
func (ic *Icon) SetVisible(visible bool) {
	ic.mu.Lock()
	ic.visible = visible
	ic.unlock(&events{frame: ic.frameLocked()})
}

// SetAccentEnabled controls whether [Icon.AnimateTo] may show the accent.
// Disabling removes a running accent.
func (ic *Icon) SetAccentEnabled(enabled bool) {
	ic.mu.Lock()
	ic.accentEnabled = enabled
	if enabled || !ic.accent.running {
		ic.mu.Unlock()
		return
	}
	ic.accent.cancel()
	ic.accentRadius = 0
	ic.unlock(&events{frame: ic.frameLocked()})
}

// SetFrameHandler installs the function which receives new frames.
func (ic *Icon) SetFrameHandler(fn func(*Frame)) {
	ic.mu.Lock()
	defer ic.mu.Unlock()
	ic.onFrame = fn
}

// SetListener installs the morph listener.
func (ic *Icon) SetListener(l Listener) {
	ic.mu.Lock()
	defer ic.mu.Unlock()
	ic.listener = l
}

// Snapshot returns the name of the current shape, for persisting the
// icon state.
func (ic *Icon) Snapshot() string {
	return ic.Shape().String()
}

// Restore shows the named shape at rest.  An empty name restores
// [Burger].  Unknown names give [ErrUnknownShape] and leave the icon
// unchanged.
func (ic *Icon) Restore(name string) error {
	var s Shape
	if err := s.UnmarshalText([]byte(name)); err != nil {
		ic.log.Warn("cannot restore icon state", "name", name, "error", err)
		return err
	}
	return ic.SetShape(s)
}

func (ic *Icon) frameLocked() *Frame {
	f := NewFrame(ic.m, ic.pair, ic.progress, ic.rtl)
	f.Color = ic.color
	f.Visible = ic.visible
	f.Shape = ic.current
	if ic.accent.running {
		f.SetAccent(ic.m, ic.accentRadius)
	}
	return f
}

// events collects the notifications of one operation.  They are delivered
// after the lock is released, so that callbacks may call back into the
// icon.
type events struct {
	frame *Frame

	finished bool
	shape    Shape

	started  bool
	from, to Shape
}

// unlock releases the icon lock and delivers ev.
func (ic *Icon) unlock(ev *events) {
	onFrame := ic.onFrame
	l := ic.listener
	ic.mu.Unlock()

	if l != nil {
		if ev.finished {
			l.MorphFinished(ev.shape)
		}
		if ev.started {
			l.MorphStarted(ev.from, ev.to)
		}
	}
	if onFrame != nil && ev.frame != nil {
		onFrame(ev.frame)
	}
}
