// Command export writes the stroke geometry of all test cases to JSON,
// for comparison with other implementations of the icon.
// Run from the menuicon module root directory.
package main

import (
	"encoding/json"
	"maps"
	"os"
	"slices"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/menuicon"
	"seehuhn.de/go/menuicon/testcases"
)

func main() {
	var out struct {
		TestCases []jsonTestCase `json:"testcases"`
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			out.TestCases = append(out.TestCases, toJSON(category, tc))
		}
	}

	if err := os.MkdirAll("testdata", 0755); err != nil {
		panic(err)
	}
	f, err := os.Create("testdata/geometry.json")
	if err != nil {
		panic(err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		panic(err)
	}
}

type jsonTestCase struct {
	Name        string       `json:"name"`
	Pair        string       `json:"pair"`
	Progress    float64      `json:"progress"`
	Shape       string       `json:"shape"`
	Width       int          `json:"width"`
	Height      int          `json:"height"`
	StrokeWidth float64      `json:"stroke_width"`
	RTL         bool         `json:"rtl,omitempty"`
	Strokes     []jsonStroke `json:"strokes"`
	Accent      *jsonAccent  `json:"accent,omitempty"`
}

type jsonStroke struct {
	Bar     string        `json:"bar"`
	Opacity float64       `json:"opacity"`
	Path    []jsonSegment `json:"path"`
}

type jsonAccent struct {
	Center  []float64 `json:"center"`
	Radius  float64   `json:"radius"`
	Opacity float64   `json:"opacity"`
}

type jsonSegment struct {
	Cmd string      `json:"cmd"`
	Pts [][]float64 `json:"pts"`
}

func toJSON(category string, tc testcases.TestCase) jsonTestCase {
	f := tc.Frame()
	jtc := jsonTestCase{
		Name:        category + "_" + tc.Name,
		Pair:        tc.Pair.String(),
		Progress:    tc.Progress,
		Shape:       f.Shape.String(),
		Width:       f.Width,
		Height:      f.Height,
		StrokeWidth: f.StrokeWidth,
		RTL:         tc.RTL,
	}

	for b := range f.Lines {
		bar := menuicon.Bar(b)
		jtc.Strokes = append(jtc.Strokes, jsonStroke{
			Bar:     bar.String(),
			Opacity: f.Lines[b].Opacity,
			Path:    pathToJSON(f.Path(bar)),
		})
	}

	if f.Accent.Active {
		center := f.AccentCenter()
		jtc.Accent = &jsonAccent{
			Center:  []float64{center.X, center.Y},
			Radius:  f.Accent.Radius,
			Opacity: f.Accent.Opacity,
		}
	}
	return jtc
}

func pathToJSON(p path.Path) []jsonSegment {
	var segs []jsonSegment
	for cmd, pts := range p {
		seg := jsonSegment{Pts: make([][]float64, len(pts))}
		switch cmd {
		case path.CmdMoveTo:
			seg.Cmd = "M"
		case path.CmdLineTo:
			seg.Cmd = "L"
		case path.CmdQuadTo:
			seg.Cmd = "Q"
		case path.CmdCubeTo:
			seg.Cmd = "C"
		case path.CmdClose:
			seg.Cmd = "Z"
		}
		for i, pt := range pts {
			seg.Pts[i] = []float64{pt.X, pt.Y}
		}
		segs = append(segs, seg)
	}
	return segs
}
