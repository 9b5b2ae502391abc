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


package canvas

import (
	"bytes"
	"errors"
	"image/color"
	"strings"
	"testing"

	pdfcolor "seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/menuicon"
)

func testFrames() []*menuicon.Frame {
	m := menuicon.NewMetrics(menuicon.WeightThin, 1, 1)
	burger := menuicon.NewFrame(m, menuicon.BurgerArrow, 0, false)
	touched := menuicon.NewFrame(m, menuicon.BurgerArrow, 0.5, false)
	touched.SetAccent(m, 8)
	return []*menuicon.Frame{burger, touched}
}

func TestPDF(t *testing.T) {
	frames := testFrames()
	g := GridFor(frames, 2, 4)
	w, h := g.Size(len(frames))

	buf := &bytes.Buffer{}
	p, err := NewPDF(buf, float64(w), float64(h))
	if err != nil {
		t.Fatal(err)
	}
	DrawSheet(p, g, frames, color.NRGBA{R: 0x20, G: 0x20, B: 0x20, A: 255})
	if err := p.Close(); err != nil {
		t.Fatal(err)
	}

	out := buf.Bytes()
	if !bytes.HasPrefix(out, []byte("%PDF-")) {
		t.Errorf("missing PDF header: %q", out[:min(len(out), 16)])
	}
	if !bytes.Contains(out, []byte("%%EOF")) {
		t.Error("missing end of file marker")
	}
}

func TestDeviceRGB(t *testing.T) {
	got := deviceRGB(color.NRGBA{R: 255, G: 0, B: 51, A: 128})
	want := pdfcolor.DeviceRGB{1, 0, 0.2}
	if got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestSVG(t *testing.T) {
	frames := testFrames()
	g := GridFor(frames, 2, 0)
	w, h := g.Size(len(frames))

	buf := &strings.Builder{}
	s := NewSVG(buf, w, h, "menu icon")
	DrawSheet(s, g, frames, color.NRGBA{})
	if err := s.Close(); err != nil {
		t.Fatal(err)
	}
	out := buf.String()

	if n := strings.Count(out, "<line"); n != 6 {
		t.Errorf("got %d lines, want 6", n)
	}
	if n := strings.Count(out, "<circle"); n != 1 {
		t.Errorf("got %d circles, want 1", n)
	}
	for _, want := range []string{
		`viewBox="0 0 8000 4000"`,
		"<title>menu icon</title>",
		"stroke-width:200",
		"stroke:#ffffff",
		"fill-opacity:",
		// top bar of the first frame, from x=10 to x=30 at y=14.5
		`x1="1000" y1="1450" x2="3000" y2="1450"`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output does not contain %q", want)
		}
	}
	if strings.Contains(out, "<rect") {
		t.Error("transparent background was drawn")
	}
}

func TestSVGPaint(t *testing.T) {
	cases := []struct {
		c    color.NRGBA
		want string
	}{
		{color.NRGBA{R: 255, G: 128, B: 1, A: 255}, "#ff8001"},
		{color.NRGBA{R: 0, G: 0, B: 0, A: 0}, "#000000;fill-opacity:0.000"},
		{color.NRGBA{R: 1, G: 2, B: 3, A: 51}, "#010203;fill-opacity:0.200"},
	}
	for _, tc := range cases {
		if got := svgPaint(tc.c, "fill"); got != tc.want {
			t.Errorf("svgPaint(%v) = %q, want %q", tc.c, got, tc.want)
		}
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errDiskFull
}

var errDiskFull = errors.New("disk full")

func TestSVGWriteError(t *testing.T) {
	s := NewSVG(failingWriter{}, 40, 40, "")
	DrawSheet(s, GridFor(testFrames(), 1, 0), testFrames(), color.NRGBA{A: 255})
	if err := s.Close(); !errors.Is(err, errDiskFull) {
		t.Errorf("got error %v, want %v", err, errDiskFull)
	}
}
