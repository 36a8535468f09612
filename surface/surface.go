// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import (
	"errors"
	"fmt"
	"image"
	"image/color"
)

// Surface is a 2D pixel canvas.
//
// Surfaces are NOT thread-safe. Each surface should be used from a single
// goroutine.
type Surface interface {
	// Width returns the surface width in pixels.
	Width() int

	// Height returns the surface height in pixels.
	Height() int

	// Clear fills the entire surface with the given color.
	Clear(c color.Color)

	// SetPixel sets one pixel. Coordinates outside the surface are ignored.
	SetPixel(x, y int, c color.Color)

	// Snapshot returns the current contents. The returned image is a copy.
	Snapshot() image.Image

	// Close releases all resources associated with the surface.
	// After Close, drawing is ignored and Snapshot returns an empty image.
	// Close is idempotent; multiple calls are safe.
	Close() error
}

// MaxPixels bounds the size of a surface. Larger requests fail with
// ErrTooLarge instead of attempting the allocation.
const MaxPixels = 1 << 28

// Errors.
var (
	// ErrInvalidSize is returned when a surface dimension is not positive.
	ErrInvalidSize = errors.New("surface: width and height must be positive")

	// ErrTooLarge is returned when a surface would exceed MaxPixels.
	ErrTooLarge = errors.New("surface: too large")
)

// Options configures surface creation.
type Options struct {
	// Width is the surface width in pixels.
	Width int

	// Height is the surface height in pixels.
	Height int

	// Background is the initial color. Nil leaves the backend default:
	// transparent for ImageSurface, white for PalettedSurface.
	Background color.Color
}

// validate checks the requested dimensions.
func (o Options) validate() error {
	if o.Width <= 0 || o.Height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidSize, o.Width, o.Height)
	}
	if o.Width > MaxPixels/o.Height {
		return fmt.Errorf("%w: %dx%d", ErrTooLarge, o.Width, o.Height)
	}
	return nil
}
