// Command genpdf writes reference sheets of all test cases: one PDF and
// one PNG per category, in testdata/reference/.
// Run from the menuicon module root directory.
package main

import (
	"fmt"
	"image/color"
	"image/png"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"seehuhn.de/go/menuicon"
	"seehuhn.de/go/menuicon/canvas"
	"seehuhn.de/go/menuicon/testcases"
)

const (
	refDir  = "testdata/reference"
	columns = 6
	gap     = 4
)

// The icon is white by default, so the sheets use a dark background.
var background = color.NRGBA{R: 0x21, G: 0x21, B: 0x21, A: 0xff}

func main() {
	if err := os.MkdirAll(refDir, 0755); err != nil {
		panic(err)
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		var frames []*menuicon.Frame
		for _, tc := range testcases.All[category] {
			frames = append(frames, tc.Frame())
		}
		g := canvas.GridFor(frames, columns, gap)

		pdfPath := filepath.Join(refDir, category+".pdf")
		if err := writePDF(pdfPath, g, frames); err != nil {
			panic(fmt.Errorf("%s: %w", category, err))
		}
		pngPath := filepath.Join(refDir, category+".png")
		if err := writePNG(pngPath, g, frames); err != nil {
			panic(fmt.Errorf("%s: %w", category, err))
		}
	}
}

func writePDF(pdfPath string, g canvas.Grid, frames []*menuicon.Frame) error {
	w, h := g.Size(len(frames))
	page, err := canvas.CreatePDF(pdfPath, float64(w), float64(h))
	if err != nil {
		return err
	}
	canvas.DrawSheet(page, g, frames, background)
	return page.Close()
}

func writePNG(pngPath string, g canvas.Grid, frames []*menuicon.Frame) error {
	w, h := g.Size(len(frames))
	img := canvas.NewNRGBA(w, h)
	canvas.DrawSheet(img, g, frames, background)

	f, err := os.Create(pngPath)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img.Dst); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
