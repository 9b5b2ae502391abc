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


// Command menuicon renders the morph between two icon shapes, as a PNG
// strip, an SVG file or a PDF page.
//
// Settings are taken from a YAML configuration file, then from MENUICON_*
// environment variables, then from the command line.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/exp/slog"
)

var (
	configArg   = flag.String("config", "menuicon.yaml", "configuration file")
	outArg      = flag.String("o", "morph.png", "output file (.png, .svg or .pdf)")
	framesArg   = flag.Int("n", 9, "number of frames")
	colsArg     = flag.Int("cols", 0, "frames per row (0 = all in one row)")
	zoomArg     = flag.Int("zoom", 1, "enlarge PNG output by this factor")
	bgArg       = flag.String("bg", "#212121", "background colour")
	colorArg    = flag.String("color", "", "stroke colour")
	weightArg   = flag.String("weight", "", "stroke weight (regular, thin or extra_thin)")
	densityArg  = flag.Float64("density", 0, "pixels per dip")
	rtlArg      = flag.Bool("rtl", false, "mirror for right-to-left layouts")
	accentArg   = flag.Bool("accent", true, "show the touch accent")
	logLevelArg = flag.String("log-level", "warn", "log level (debug, info, warn or error)")
)

func main() {
	flag.CommandLine.Usage = func() {
		out := flag.CommandLine.Output()
		fmt.Fprintf(out, "Usage: %s [options] <from> <to>\n",
			filepath.Base(os.Args[0]))
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Renders the morph from one shape (BURGER, ARROW, X or CHECK)")
		fmt.Fprintln(out, "to another.")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Options:")
		flag.PrintDefaults()
	}
	flag.Parse()
	args := flag.Args()
	if len(args) != 2 {
		flag.CommandLine.Usage()
		os.Exit(1)
	}

	logger, err := newLogger(*logLevelArg)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	err = run(logger, args[0], args[1])
	if err != nil {
		logger.Error("rendering failed", "error", err)
		os.Exit(1)
	}
}

func newLogger(level string) (*slog.Logger, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("invalid log level %q", level)
	}
	h := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: l})
	return slog.New(h), nil
}
