// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package glyph

import (
	"image"

	"github.com/gogpu/txt2png/layout"
)

// Geometry maps grid cells to pixel positions.
type Geometry struct {
	// Margin is the blank border around the text, in pixels.
	Margin int

	// CharWidth is the horizontal pitch of a cell: 8, or 9 in bold mode.
	CharWidth int

	// CharHeight is the vertical pitch of a row: 16 plus any extra spacing.
	CharHeight int
}

// NewGeometry returns the geometry for the given margin, bold mode and
// extra row spacing.
func NewGeometry(margin int, bold bool, extraHeight int) Geometry {
	g := Geometry{
		Margin:     margin,
		CharWidth:  CellWidth,
		CharHeight: CellHeight + extraHeight,
	}
	if bold {
		g.CharWidth++
	}
	return g
}

// Origin returns the top-left pixel of cell c.
func (g Geometry) Origin(c layout.Cell) image.Point {
	return image.Pt(g.Margin+c.Column*g.CharWidth, g.Margin+c.Row*g.CharHeight)
}

// PageSize returns the pixel size of a page of columns x rows cells.
func (g Geometry) PageSize(columns, rows int) (width, height int) {
	return g.CharWidth*columns + 2*g.Margin, g.CharHeight*rows + 2*g.Margin
}

// Rasterizer draws layout placements through pixel functions.
type Rasterizer struct {
	Geometry

	// Half and Full are the half-width and full-width atlases.
	Half *Atlas
	Full *Atlas

	// Put sets a pixel; Erase clears one. Use Nop as Erase to draw over
	// a prepared background, or both to count without drawing.
	Put   PixelFunc
	Erase PixelFunc

	Underline bool
	Overline  bool
}

// Draw renders one placement.
//
// The halves of a full-width glyph whose cells are adjacent on one row are
// drawn 8 pixels apart, so the glyph stays whole when bold mode widens the
// cell pitch. A glyph split by a wrap uses the origin of each cell.
func (r *Rasterizer) Draw(p layout.Placement) {
	o0 := r.Origin(p.Cells[0])
	if !p.Wide {
		DrawSingle(r.Half, o0, byte(p.Code), r.Put, r.Erase, r.Underline, r.Overline)
		return
	}
	if p.Clipped {
		DrawHalf(r.Full, o0, p.Code, false, r.Put, r.Erase, r.Underline, r.Overline)
		return
	}
	o1 := r.Origin(p.Cells[1])
	if p.Cells[1].Row == p.Cells[0].Row && p.Cells[1].Column == p.Cells[0].Column+1 {
		o1 = o0.Add(image.Pt(CellWidth, 0))
	}
	DrawDouble(r.Full, o0, o1, p.Code, r.Put, r.Erase, r.Underline, r.Overline)
}
