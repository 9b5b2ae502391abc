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
	"image/color"
	"io"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics"
	pdfcolor "seehuhn.de/go/pdf/graphics/color"
	"seehuhn.de/go/pdf/graphics/extgstate"
)

// PDF draws frames onto a single PDF page.  One pixel of the frame
// corresponds to one PDF point.
type PDF struct {
	page          *document.Page
	width, height float64
	origin        vec.Vec2
}

var _ Sheet = (*PDF)(nil)

// NewPDF starts a PDF file of the given page size, written to w.
// The file is complete after [PDF.Close] has been called.
func NewPDF(w io.Writer, width, height float64) (*PDF, error) {
	paper := &pdf.Rectangle{URx: width, URy: height}
	page, err := document.WriteSinglePage(w, paper, pdf.V1_7, nil)
	if err != nil {
		return nil, err
	}
	return newPDF(page, width, height), nil
}

// CreatePDF is like [NewPDF], but writes to the named file.
func CreatePDF(fileName string, width, height float64) (*PDF, error) {
	paper := &pdf.Rectangle{URx: width, URy: height}
	page, err := document.CreateSinglePage(fileName, paper, pdf.V1_7, nil)
	if err != nil {
		return nil, err
	}
	return newPDF(page, width, height), nil
}

func newPDF(page *document.Page, width, height float64) *PDF {
	// PDF origin is bottom-left; frames use top-left.
	page.Transform(matrix.Matrix{1, 0, 0, -1, 0, height})
	return &PDF{page: page, width: width, height: height}
}

// SetOrigin implements the [Sheet] interface.
func (p *PDF) SetOrigin(x, y float64) {
	p.origin = vec.Vec2{X: x, Y: y}
}

// Background implements the [Sheet] interface.
func (p *PDF) Background(c color.NRGBA) {
	p.page.PushGraphicsState()
	p.setAlpha(c.A)
	p.page.SetFillColor(deviceRGB(c))
	p.page.Rectangle(0, 0, p.width, p.height)
	p.page.Fill()
	p.page.PopGraphicsState()
}

// Line implements the [menuicon.Surface] interface.
func (p *PDF) Line(a, b vec.Vec2, width float64, c color.NRGBA) {
	a = a.Add(p.origin)
	b = b.Add(p.origin)

	p.page.PushGraphicsState()
	p.setAlpha(c.A)
	p.page.SetStrokeColor(deviceRGB(c))
	p.page.SetLineWidth(width)
	p.page.SetLineCap(graphics.LineCapButt)
	p.page.MoveTo(a.X, a.Y)
	p.page.LineTo(b.X, b.Y)
	p.page.Stroke()
	p.page.PopGraphicsState()
}

// Circle implements the [menuicon.Surface] interface.
func (p *PDF) Circle(center vec.Vec2, radius float64, c color.NRGBA) {
	center = center.Add(p.origin)

	p.page.PushGraphicsState()
	p.setAlpha(c.A)
	p.page.SetFillColor(deviceRGB(c))
	p.page.Circle(center.X, center.Y, radius)
	p.page.Fill()
	p.page.PopGraphicsState()
}

// Close finishes the page and the PDF file.
func (p *PDF) Close() error {
	return p.page.Close()
}

func (p *PDF) setAlpha(a uint8) {
	if a == 255 {
		return
	}
	alpha := float64(a) / 255
	p.page.SetExtGState(&extgstate.ExtGState{
		Set:         graphics.StateStrokeAlpha | graphics.StateFillAlpha,
		StrokeAlpha: alpha,
		FillAlpha:   alpha,
	})
}

func deviceRGB(c color.NRGBA) pdfcolor.Color {
	return pdfcolor.DeviceRGB{float64(c.R) / 255, float64(c.G) / 255, float64(c.B) / 255}
}
