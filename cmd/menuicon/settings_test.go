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


package main

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/kelseyhightower/envconfig"

	"seehuhn.de/go/menuicon"
)

func TestEnvironmentOverrides(t *testing.T) {
	t.Setenv("MENUICON_COLOR", "#ff0000")
	t.Setenv("MENUICON_DENSITY", "2.5")
	t.Setenv("MENUICON_MORPH_DURATION", "250ms")
	t.Setenv("MENUICON_RTL", "true")

	var env environment
	if err := envconfig.Process("menuicon", &env); err != nil {
		t.Fatal(err)
	}
	cfg := menuicon.DefaultConfig()
	env.applyTo(cfg)

	want := menuicon.DefaultConfig()
	want.Color = "#ff0000"
	want.Density = 2.5
	want.MorphDuration = 250 * time.Millisecond
	want.RTL = true
	if d := cmp.Diff(want, cfg); d != "" {
		t.Errorf("config (-want +got):\n%s", d)
	}
}

func TestEnvironmentUnset(t *testing.T) {
	var env environment
	if err := envconfig.Process("menuicon_test_unset", &env); err != nil {
		t.Fatal(err)
	}
	cfg := menuicon.DefaultConfig()
	env.applyTo(cfg)
	if d := cmp.Diff(menuicon.DefaultConfig(), cfg); d != "" {
		t.Errorf("unset environment changed the config (-want +got):\n%s", d)
	}
}

func TestMorphFrames(t *testing.T) {
	opt := &menuicon.Options{Shape: menuicon.Burger}
	frames, err := morphFrames(opt, menuicon.X, 5, true)
	if err != nil {
		t.Fatal(err)
	}
	if len(frames) != 5 {
		t.Fatalf("got %d frames", len(frames))
	}
	if frames[0].Shape != menuicon.Burger || frames[0].Accent.Active {
		t.Errorf("first frame: shape %s, accent %t", frames[0].Shape, frames[0].Accent.Active)
	}
	last := frames[len(frames)-1]
	if last.Shape != menuicon.X || last.Accent.Active {
		t.Errorf("last frame: shape %s, accent %t", last.Shape, last.Accent.Active)
	}
	if !frames[1].Accent.Active {
		t.Error("accent not shown during the morph")
	}
	for i := 1; i < len(frames); i++ {
		if frames[i].Progress == frames[i-1].Progress && i < len(frames)-1 {
			t.Errorf("frame %d does not advance", i)
		}
	}
}

func TestMorphLength(t *testing.T) {
	cases := []struct {
		in, want time.Duration
	}{
		{0, menuicon.DefaultMorphDuration},
		{-1, 0},
		{time.Second, time.Second},
	}
	for _, tc := range cases {
		if got := morphLength(tc.in); got != tc.want {
			t.Errorf("morphLength(%v) = %v, want %v", tc.in, got, tc.want)
		}
	}
}
