// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package glyph

import (
	"errors"
	"fmt"
)

// Atlas geometry.
const (
	// HalfWidthAtlasWidth and HalfWidthAtlasHeight are the size of a
	// half-width atlas: 16x16 glyphs of 8x16 pixels.
	HalfWidthAtlasWidth  = 128
	HalfWidthAtlasHeight = 256

	// FullWidthAtlasSize is the width and height of the full-width atlas:
	// 94x94 JIS cells of 16x16 pixels.
	FullWidthAtlasSize = 94 * 16
)

// Sentinel errors for atlases.
var (
	// ErrAtlasSize is returned when atlas dimensions are not positive.
	ErrAtlasSize = errors.New("glyph: atlas dimensions must be positive")

	// ErrShortData is returned when the bitmap holds fewer bytes than its
	// dimensions require.
	ErrShortData = errors.New("glyph: bitmap data too short")
)

// Atlas is an immutable monochrome bitmap holding a table of glyphs.
//
// Rows are packed into bytes with the leftmost pixel in the least
// significant bit, the layout used by XBM files. Each row starts on a byte
// boundary.
type Atlas struct {
	width  int
	height int
	stride int
	bits   []byte
}

// NewAtlas wraps bits as a width x height atlas. The slice is copied.
func NewAtlas(width, height int, bits []byte) (*Atlas, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrAtlasSize
	}
	stride := (width + 7) / 8
	if len(bits) < stride*height {
		return nil, fmt.Errorf("%w: have %d bytes, need %d", ErrShortData, len(bits), stride*height)
	}
	a := newBlankAtlas(width, height)
	copy(a.bits, bits)
	return a, nil
}

func newBlankAtlas(width, height int) *Atlas {
	stride := (width + 7) / 8
	return &Atlas{
		width:  width,
		height: height,
		stride: stride,
		bits:   make([]byte, stride*height),
	}
}

// Width returns the atlas width in pixels.
func (a *Atlas) Width() int { return a.width }

// Height returns the atlas height in pixels.
func (a *Atlas) Height() int { return a.height }

// Bit reports whether the pixel at x, y is set.
// Coordinates outside the atlas are unset.
func (a *Atlas) Bit(x, y int) bool {
	if x < 0 || y < 0 || x >= a.width || y >= a.height {
		return false
	}
	return a.bits[y*a.stride+x/8]>>(x%8)&1 != 0
}

// set is used while an atlas is being built.
func (a *Atlas) set(x, y int) {
	if x < 0 || y < 0 || x >= a.width || y >= a.height {
		return
	}
	a.bits[y*a.stride+x/8] |= 1 << (x % 8)
}
