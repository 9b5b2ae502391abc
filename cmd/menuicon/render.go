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
	"errors"
	"fmt"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/exp/slog"

	"seehuhn.de/go/menuicon"
	"seehuhn.de/go/menuicon/canvas"
)

const gap = 4

var errSameShape = errors.New("start and end shape are the same")

func run(logger *slog.Logger, fromName, toName string) error {
	from, err := menuicon.ParseShape(fromName)
	if err != nil {
		return err
	}
	to, err := menuicon.ParseShape(toName)
	if err != nil {
		return err
	}
	if from == to {
		return fmt.Errorf("%s: %w", from, errSameShape)
	}

	cfg, err := loadSettings()
	if err != nil {
		return err
	}
	opt, err := cfg.Options()
	if err != nil {
		return err
	}
	opt.Logger = logger
	opt.Shape = from

	bg, err := menuicon.ParseColor(*bgArg)
	if err != nil {
		return err
	}

	frames, err := morphFrames(opt, to, *framesArg, cfg.Accent)
	if err != nil {
		return err
	}
	cols := *colsArg
	if cols <= 0 {
		cols = len(frames)
	}
	g := canvas.GridFor(frames, cols, gap)

	switch ext := strings.ToLower(filepath.Ext(*outArg)); ext {
	case ".png":
		err = writePNG(*outArg, g, frames, bg, *zoomArg)
	case ".svg":
		title := fmt.Sprintf("%s to %s", from, to)
		err = writeSVG(*outArg, g, frames, bg, title)
	case ".pdf":
		err = writePDF(*outArg, g, frames, bg)
	default:
		err = fmt.Errorf("unsupported output format %q", ext)
	}
	if err != nil {
		return err
	}

	logger.Info("output written", "file", *outArg, "frames", len(frames))
	return nil
}

// morphFrames runs an icon through the morph to the target shape and
// samples n evenly spaced frames, including the first and the last one.
func morphFrames(opt *menuicon.Options, to menuicon.Shape, n int, accent bool) ([]*menuicon.Frame, error) {
	n = max(n, 2)

	ic := menuicon.New(opt)
	frames := []*menuicon.Frame{ic.Frame()}
	if err := ic.AnimateTo(to, accent); err != nil {
		return nil, err
	}

	total := morphLength(opt.MorphDuration)
	if accent {
		total = max(total, morphLength(opt.AccentDuration))
	}
	dt := total / time.Duration(n-1)
	for range n - 1 {
		ic.Tick(dt)
		frames = append(frames, ic.Frame())
	}
	// make sure that the last frame shows the target at rest
	ic.Stop()
	frames[len(frames)-1] = ic.Frame()
	return frames, nil
}

// morphLength returns the duration an icon uses for a sweep configured
// with d.
func morphLength(d time.Duration) time.Duration {
	switch {
	case d == 0:
		return menuicon.DefaultMorphDuration
	case d < 0:
		return 0
	default:
		return d
	}
}

func writePNG(fileName string, g canvas.Grid, frames []*menuicon.Frame, bg color.NRGBA, zoom int) error {
	w, h := g.Size(len(frames))
	img := canvas.NewNRGBA(w, h)
	canvas.DrawSheet(img, g, frames, bg)

	out, err := os.Create(fileName)
	if err != nil {
		return err
	}
	if err := png.Encode(out, canvas.Enlarge(img.Dst, zoom)); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

func writeSVG(fileName string, g canvas.Grid, frames []*menuicon.Frame, bg color.NRGBA, title string) error {
	w, h := g.Size(len(frames))
	out, err := os.Create(fileName)
	if err != nil {
		return err
	}
	s := canvas.NewSVG(out, w, h, title)
	canvas.DrawSheet(s, g, frames, bg)
	if err := s.Close(); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

func writePDF(fileName string, g canvas.Grid, frames []*menuicon.Frame, bg color.NRGBA) error {
	w, h := g.Size(len(frames))
	page, err := canvas.CreatePDF(fileName, float64(w), float64(h))
	if err != nil {
		return err
	}
	canvas.DrawSheet(page, g, frames, bg)
	return page.Close()
}
