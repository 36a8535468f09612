// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package glyph

import (
	"image"

	"github.com/gogpu/txt2png/sjis"
)

// Glyph cell size in pixels.
const (
	CellWidth  = 8
	CellHeight = 16
)

// PixelFunc writes or erases one pixel of the target.
type PixelFunc func(x, y int)

// Nop is an eraser that leaves the target untouched.
func Nop(int, int) {}

// Bold widens put so that every stroke covers two adjacent columns.
func Bold(put PixelFunc) PixelFunc {
	return func(x, y int) {
		put(x, y)
		put(x+1, y)
	}
}

// DrawSingle draws the half-width glyph code of atlas a with its top-left
// corner at origin. Set pixels go to put, clear ones to erase. Underline
// forces the bottom row on, overline the top row.
func DrawSingle(a *Atlas, origin image.Point, code byte, put, erase PixelFunc, underline, overline bool) {
	sx := int(code&0xF) * CellWidth
	sy := int(code>>4) * CellHeight
	drawBlock(a, origin, sx, sy, put, erase, underline, overline)
}

// DrawDouble draws the full-width glyph of JIS code jis. The left half is
// placed at o0 and the right half at o1, which are independent so that a
// glyph split by a line wrap can continue on the next row.
func DrawDouble(a *Atlas, o0, o1 image.Point, jis uint16, put, erase PixelFunc, underline, overline bool) {
	DrawHalf(a, o0, jis, false, put, erase, underline, overline)
	DrawHalf(a, o1, jis, true, put, erase, underline, overline)
}

// DrawHalf draws the left or right 8x16 half of a full-width glyph.
func DrawHalf(a *Atlas, origin image.Point, jis uint16, right bool, put, erase PixelFunc, underline, overline bool) {
	sx := (int(sjis.Low(jis)) - 0x21) * 2 * CellWidth
	sy := (int(sjis.High(jis)) - 0x21) * CellHeight
	if right {
		sx += CellWidth
	}
	drawBlock(a, origin, sx, sy, put, erase, underline, overline)
}

func drawBlock(a *Atlas, origin image.Point, sx, sy int, put, erase PixelFunc, underline, overline bool) {
	for dy := 0; dy < CellHeight; dy++ {
		line := (overline && dy == 0) || (underline && dy == CellHeight-1)
		for dx := 0; dx < CellWidth; dx++ {
			if line || a.Bit(sx+dx, sy+dy) {
				put(origin.X+dx, origin.Y+dy)
			} else {
				erase(origin.X+dx, origin.Y+dy)
			}
		}
	}
}
