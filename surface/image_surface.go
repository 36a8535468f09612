// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import (
	"image"
	"image/color"
	"image/draw"
)

// ImageSurface is a CPU surface backed by an *image.RGBA.
//
// Example:
//
//	s, err := surface.NewImageSurface(800, 600)
//	if err != nil {
//		return err
//	}
//	defer s.Close()
//
//	s.Clear(color.White)
//	s.SetPixel(10, 10, color.Black)
//	img := s.Snapshot()
type ImageSurface struct {
	img *image.RGBA

	// closed tracks if Close has been called
	closed bool
}

// NewImageSurface creates a transparent surface with the given dimensions.
func NewImageSurface(width, height int) (*ImageSurface, error) {
	if err := (Options{Width: width, Height: height}).validate(); err != nil {
		return nil, err
	}
	return &ImageSurface{
		img: image.NewRGBA(image.Rect(0, 0, width, height)),
	}, nil
}

// Width returns the surface width.
func (s *ImageSurface) Width() int {
	return s.img.Bounds().Dx()
}

// Height returns the surface height.
func (s *ImageSurface) Height() int {
	return s.img.Bounds().Dy()
}

// Clear fills the surface with a color.
func (s *ImageSurface) Clear(c color.Color) {
	if s.closed {
		return
	}
	draw.Draw(s.img, s.img.Bounds(), image.NewUniform(c), image.Point{}, draw.Src)
}

// SetPixel sets one pixel.
func (s *ImageSurface) SetPixel(x, y int, c color.Color) {
	if s.closed {
		return
	}
	s.img.Set(s.img.Rect.Min.X+x, s.img.Rect.Min.Y+y, c)
}

// Snapshot returns a copy of the current contents.
func (s *ImageSurface) Snapshot() image.Image {
	if s.closed {
		return image.NewRGBA(image.Rectangle{})
	}
	b := s.img.Bounds()
	out := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(out, out.Bounds(), s.img, b.Min, draw.Src)
	return out
}

// Close releases the pixel buffer.
func (s *ImageSurface) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	s.img = &image.RGBA{Rect: s.img.Rect}
	return nil
}
