// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package surface provides the pixel surfaces pages are rendered onto.
//
// A Surface is a scoped resource: it is created for one page, written one
// pixel at a time, and released with Close on every exit path.
//
// # Surface Types
//
//   - ImageSurface: 32-bit RGBA, the default ("image" backend)
//   - PalettedSurface: two-color black and white ("paletted" backend)
//
// # Registry
//
// Backends are registered by name with a priority, the same way the gg
// surface registry does it:
//
//	surface.Register("mine", 20, factory, nil)
//	s, err := surface.NewSurfaceByName("mine", 800, 600)
//
// # Saving
//
// Save looks up an encoder by MIME type (image/png, image/bmp, image/tiff)
// and writes through a temporary file, so a failed save never leaves a
// partial file behind:
//
//	s, err := surface.NewSurface(976, 1632)
//	if err != nil {
//		return err
//	}
//	defer s.Close()
//	s.Clear(color.White)
//	s.SetPixel(10, 10, color.Black)
//	err = surface.Save(s, "output-1.png", surface.MIMEPNG)
package surface
