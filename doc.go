// Package txt2png renders Shift_JIS text as paginated monochrome images
// in the style of the NEC PC-9801 and PC-8801 text screens.
//
// # Overview
//
// Every byte of the input becomes a fixed-size cell: ASCII and half-width
// kana take one 8x16 cell, double-byte characters take two. Text flows
// left to right, wraps at the column limit, and breaks into a new page
// when the row limit is reached. CR is ignored, LF starts a new row, and
// the Kanji-In/Kanji-Out markers (ESC K, ESC H) take no space; every other
// byte, control bytes included, is drawn from the font.
//
// # Quick Start
//
//	import "github.com/gogpu/txt2png"
//
//	c, err := txt2png.New()
//	if err != nil {
//		return err
//	}
//	n, err := c.Convert(text, func(page int, s surface.Surface) error {
//		return surface.Save(s, txt2png.OutputName(page), surface.MIMEPNG)
//	})
//
// # Architecture
//
// The library is organized into:
//   - sjis: byte classification, SJIS and JIS conversion
//   - kstring: character counting and indexing over SJIS and JIS strings
//   - layout: the pagination state machine
//   - glyph: font atlases and glyph drawing through pixel functions
//   - surface: pixel surfaces, backends and image encoders
//
// # Coordinate System
//
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//   - Pages are numbered from 1
package txt2png

// Version information
const (
	// Version is the current version of the library
	Version = "0.3.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 3

	// VersionPatch is the patch version
	VersionPatch = 0
)
