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


// Package canvas provides drawing surfaces for menu icon frames: raster
// images, PDF pages and SVG documents.
//
// All surfaces implement [menuicon.Surface].  The [Sheet] surfaces can in
// addition place several frames side by side, see [DrawSheet].
package canvas

import (
	"image/color"

	"seehuhn.de/go/menuicon"
)

// Sheet is a surface which can hold several frames.
type Sheet interface {
	menuicon.Surface

	// SetOrigin moves the top-left corner of the frame drawn next.
	SetOrigin(x, y float64)

	// Background fills the whole sheet with c.
	Background(c color.NRGBA)
}

// Grid arranges equally sized cells in rows.
type Grid struct {
	Cols       int // cells per row, at least 1
	CellWidth  int
	CellHeight int
	Gap        int // space between and around cells
}

// Size returns the size of a sheet holding n cells.
func (g Grid) Size(n int) (width, height int) {
	cols := max(g.Cols, 1)
	rows := max((n+cols-1)/cols, 1)
	cols = min(cols, max(n, 1))
	width = cols*g.CellWidth + (cols+1)*g.Gap
	height = rows*g.CellHeight + (rows+1)*g.Gap
	return width, height
}

// Origin returns the top-left corner of cell i.
func (g Grid) Origin(i int) (x, y int) {
	cols := max(g.Cols, 1)
	row, col := i/cols, i%cols
	x = g.Gap + col*(g.CellWidth+g.Gap)
	y = g.Gap + row*(g.CellHeight+g.Gap)
	return x, y
}

// GridFor returns a grid with cells large enough for the given frames.
func GridFor(frames []*menuicon.Frame, cols, gap int) Grid {
	g := Grid{Cols: cols, Gap: gap}
	for _, f := range frames {
		g.CellWidth = max(g.CellWidth, f.Width)
		g.CellHeight = max(g.CellHeight, f.Height)
	}
	return g
}

// DrawSheet draws the frames into consecutive grid cells.  If bg has
// non-zero alpha, the sheet is filled with bg first.
func DrawSheet(s Sheet, g Grid, frames []*menuicon.Frame, bg color.NRGBA) {
	if bg.A > 0 {
		s.Background(bg)
	}
	for i, f := range frames {
		x, y := g.Origin(i)
		s.SetOrigin(float64(x), float64(y))
		menuicon.Draw(s, f)
	}
	s.SetOrigin(0, 0)
}
