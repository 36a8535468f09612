// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import (
	"image"
	"image/color"
)

// Monochrome is the palette of PalettedSurface: index 0 is white paper,
// index 1 is black ink.
var Monochrome = color.Palette{color.White, color.Black}

// PalettedSurface is a two-color surface backed by an *image.Paletted.
// Colors are snapped to the nearest of black and white, which keeps pages
// small when encoded.
type PalettedSurface struct {
	img    *image.Paletted
	closed bool
}

// NewPalettedSurface creates a white surface with the given dimensions.
func NewPalettedSurface(width, height int) (*PalettedSurface, error) {
	if err := (Options{Width: width, Height: height}).validate(); err != nil {
		return nil, err
	}
	return &PalettedSurface{
		img: image.NewPaletted(image.Rect(0, 0, width, height), Monochrome),
	}, nil
}

// Width returns the surface width.
func (s *PalettedSurface) Width() int { return s.img.Rect.Dx() }

// Height returns the surface height.
func (s *PalettedSurface) Height() int { return s.img.Rect.Dy() }

// Clear fills the surface with the palette entry nearest to c.
func (s *PalettedSurface) Clear(c color.Color) {
	if s.closed {
		return
	}
	idx := uint8(Monochrome.Index(c))
	for i := range s.img.Pix {
		s.img.Pix[i] = idx
	}
}

// SetPixel sets one pixel to the palette entry nearest to c.
func (s *PalettedSurface) SetPixel(x, y int, c color.Color) {
	if s.closed {
		return
	}
	if !(image.Point{x, y}.In(s.img.Rect)) {
		return
	}
	s.img.SetColorIndex(x, y, uint8(Monochrome.Index(c)))
}

// Snapshot returns a copy of the current contents.
func (s *PalettedSurface) Snapshot() image.Image {
	if s.closed {
		return image.NewPaletted(image.Rectangle{}, Monochrome)
	}
	out := image.NewPaletted(s.img.Rect, Monochrome)
	copy(out.Pix, s.img.Pix)
	return out
}

// Close releases the pixel buffer.
func (s *PalettedSurface) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	s.img = &image.Paletted{Rect: s.img.Rect, Palette: Monochrome}
	return nil
}
