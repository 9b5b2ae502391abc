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
	"bytes"
	"errors"
	"fmt"
	"image/color"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// validate is the shared validator instance
var validate = validator.New()

// Config is the file representation of the icon options.
type Config struct {
	Color          string        `yaml:"color"` // "#rgb", "#rrggbb" or "#rrggbbaa"
	Weight         string        `yaml:"weight"`
	Density        float64       `yaml:"density" validate:"gte=0"`
	Scale          float64       `yaml:"scale" validate:"gte=0"`
	MorphDuration  time.Duration `yaml:"morph_duration" validate:"gte=0s"`
	AccentDuration time.Duration `yaml:"accent_duration" validate:"gte=0s"`
	Shape          string        `yaml:"shape"`
	RTL            bool          `yaml:"rtl"`
	Visible        bool          `yaml:"visible"`
	Accent         bool          `yaml:"accent"`
}

// DefaultConfig returns the configuration of an icon with default options.
func DefaultConfig() *Config {
	return &Config{
		Color:          "#ffffff",
		Weight:         WeightThin.String(),
		Density:        1,
		Scale:          1,
		MorphDuration:  DefaultMorphDuration,
		AccentDuration: DefaultAccentDuration,
		Shape:          Burger.String(),
		Visible:        true,
		Accent:         true,
	}
}

// LoadConfig reads a YAML configuration file.  Keys missing from the file
// keep their default values, and a missing file gives the default
// configuration.  Unknown keys are an error.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return DefaultConfig(), nil
	} else if err != nil {
		return nil, err
	}
	return ReadConfig(bytes.NewReader(data))
}

// ReadConfig decodes a YAML configuration from r.
func ReadConfig(r io.Reader) (*Config, error) {
	cfg := DefaultConfig()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && err != io.EOF {
		return nil, fmt.Errorf("config parse error: %w", err)
	}
	return cfg, nil
}

// Validate checks all fields and reports every problem found.
func (c *Config) Validate() error {
	var errs []string

	if _, err := ParseColor(c.Color); err != nil {
		errs = append(errs, "color: "+err.Error())
	}
	if _, err := ParseWeight(c.Weight); err != nil {
		errs = append(errs, "weight: "+err.Error())
	}
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return err
		}
		for _, e := range verrs {
			switch e.Field() {
			case "Density", "Scale":
				errs = append(errs, fmt.Sprintf("%s: must not be negative (got %v)",
					strings.ToLower(e.Field()), e.Value()))
			case "MorphDuration", "AccentDuration":
				errs = append(errs, fmt.Sprintf("%s: must not be negative (got %v)",
					yamlName(e.Field()), e.Value()))
			default:
				errs = append(errs, fmt.Sprintf("%s: %s", e.Field(), e.Tag()))
			}
		}
	}
	if c.Shape != "" {
		if _, err := ParseShape(c.Shape); err != nil {
			errs = append(errs, "shape: "+err.Error())
		}
	}

	if len(errs) == 0 {
		return nil
	}
	var sb strings.Builder
	sb.WriteString("config validation failed:\n")
	for i, e := range errs {
		fmt.Fprintf(&sb, "  %d. %s\n", i+1, e)
	}
	return errors.New(sb.String())
}

func yamlName(field string) string {
	switch field {
	case "MorphDuration":
		return "morph_duration"
	case "AccentDuration":
		return "accent_duration"
	}
	return strings.ToLower(field)
}

// Options converts the configuration into icon options.
func (c *Config) Options() (*Options, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	col, _ := ParseColor(c.Color)
	w, _ := ParseWeight(c.Weight)
	var s Shape
	if err := s.UnmarshalText([]byte(c.Shape)); err != nil {
		return nil, err
	}

	opt := &Options{
		Weight:         w,
		Density:        c.Density,
		Scale:          c.Scale,
		Color:          col,
		MorphDuration:  c.MorphDuration,
		AccentDuration: c.AccentDuration,
		Shape:          s,
		RTL:            c.RTL,
		Hidden:         !c.Visible,
		NoAccent:       !c.Accent,
	}
	// In the file, zero means "no animation".
	if opt.MorphDuration == 0 {
		opt.MorphDuration = -1
	}
	if opt.AccentDuration == 0 {
		opt.AccentDuration = -1
	}
	return opt, nil
}

// ParseColor parses a colour in hexadecimal notation, with or without
// the leading '#'.
func ParseColor(s string) (color.NRGBA, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	switch len(hex) {
	case 3:
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]}) + "ff"
	case 6:
		hex += "ff"
	case 8:
		// pass
	default:
		return color.NRGBA{}, fmt.Errorf("invalid colour %q", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("invalid colour %q", s)
	}
	return color.NRGBA{
		R: uint8(v >> 24),
		G: uint8(v >> 16),
		B: uint8(v >> 8),
		A: uint8(v),
	}, nil
}
