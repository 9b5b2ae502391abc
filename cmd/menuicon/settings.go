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
	"flag"
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"

	"seehuhn.de/go/menuicon"
)

// environment holds the settings which can be overridden through
// MENUICON_* environment variables.  Nil pointers mean "not set".
type environment struct {
	Color          string         `envconfig:"COLOR"`
	Weight         string         `envconfig:"WEIGHT"`
	Shape          string         `envconfig:"SHAPE"`
	Density        *float64       `envconfig:"DENSITY"`
	Scale          *float64       `envconfig:"SCALE"`
	MorphDuration  *time.Duration `envconfig:"MORPH_DURATION"`
	AccentDuration *time.Duration `envconfig:"ACCENT_DURATION"`
	RTL            *bool          `envconfig:"RTL"`
	Accent         *bool          `envconfig:"ACCENT"`
}

// loadSettings merges the configuration file, the environment and the
// command line flags, in this order.
func loadSettings() (*menuicon.Config, error) {
	cfg, err := menuicon.LoadConfig(*configArg)
	if err != nil {
		return nil, err
	}

	var env environment
	if err := envconfig.Process("menuicon", &env); err != nil {
		return nil, fmt.Errorf("failed to load settings from environment: %w", err)
	}
	env.applyTo(cfg)
	applyFlags(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (env *environment) applyTo(cfg *menuicon.Config) {
	if env.Color != "" {
		cfg.Color = env.Color
	}
	if env.Weight != "" {
		cfg.Weight = env.Weight
	}
	if env.Shape != "" {
		cfg.Shape = env.Shape
	}
	if env.Density != nil {
		cfg.Density = *env.Density
	}
	if env.Scale != nil {
		cfg.Scale = *env.Scale
	}
	if env.MorphDuration != nil {
		cfg.MorphDuration = *env.MorphDuration
	}
	if env.AccentDuration != nil {
		cfg.AccentDuration = *env.AccentDuration
	}
	if env.RTL != nil {
		cfg.RTL = *env.RTL
	}
	if env.Accent != nil {
		cfg.Accent = *env.Accent
	}
}

// applyFlags copies the flags given on the command line into cfg.
func applyFlags(cfg *menuicon.Config) {
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "color":
			cfg.Color = *colorArg
		case "weight":
			cfg.Weight = *weightArg
		case "density":
			cfg.Density = *densityArg
		case "rtl":
			cfg.RTL = *rtlArg
		case "accent":
			cfg.Accent = *accentArg
		}
	})
}
