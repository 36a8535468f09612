// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package glyph

import (
	"image"
	"sync"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
	"golang.org/x/text/width"

	"github.com/gogpu/txt2png/sjis"
)

// Style selects the look of the half-width characters.
type Style uint8

const (
	// StylePC98 imitates the PC-9801 character generator.
	StylePC98 Style = iota

	// StylePC88 imitates the PC-8801 character generator.
	StylePC88
)

// String returns the style name.
func (s Style) String() string {
	switch s {
	case StylePC98:
		return "pc98"
	case StylePC88:
		return "pc88"
	default:
		return "unknown"
	}
}

// inkThreshold is the coverage at which an antialiased font pixel becomes
// a set bit.
const inkThreshold = 0x80

// Built-in atlases are rendered on first use.
var (
	pc98Image = sync.OnceValue(func() *image.Alpha {
		face, covers := pc98Face()
		return renderHalfWidth(face, covers, 13)
	})
	pc88Image = sync.OnceValue(func() *image.Alpha {
		return renderHalfWidth(basicfont.Face7x13, faceCovers(basicfont.Face7x13), 13)
	})

	pc98Atlas = sync.OnceValue(func() *Atlas { return pack(pc98Image()) })
	pc88Atlas = sync.OnceValue(func() *Atlas { return pack(pc88Image()) })
	fullAtlas = sync.OnceValue(func() *Atlas { return pack(renderFullWidth(pc98Image())) })
)

// HalfWidth returns the built-in half-width atlas of style s.
//
// The built-in atlases are drawn from Go Mono (PC-98) and the basicfont
// 7x13 face (PC-88) and cover the printable ASCII range. Load the original
// character generator images with ParseXBM for the graphic characters and
// half-width kana.
func HalfWidth(s Style) *Atlas {
	if s == StylePC88 {
		return pc88Atlas()
	}
	return pc98Atlas()
}

// FullWidth returns the built-in full-width atlas. JIS cells whose
// character has a half-width form in the half-width atlas are drawn as
// that glyph stretched to double width; all other cells are blank.
func FullWidth() *Atlas {
	return fullAtlas()
}

// pc98Face returns Go Mono at 13px and a coverage test that rejects runes
// the font would draw as .notdef.
func pc98Face() (font.Face, func(rune) bool) {
	f, err := opentype.Parse(gomono.TTF)
	if err != nil {
		return basicfont.Face7x13, faceCovers(basicfont.Face7x13)
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    13,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return basicfont.Face7x13, faceCovers(basicfont.Face7x13)
	}
	var buf sfnt.Buffer
	return face, func(r rune) bool {
		x, err := f.GlyphIndex(&buf, r)
		return err == nil && x != 0
	}
}

func faceCovers(face font.Face) func(rune) bool {
	return func(r rune) bool {
		_, _, ok := face.GlyphBounds(r)
		return ok
	}
}

// halfWidthRune maps a character-generator code to the rune drawn for it.
// Both machines show a yen sign at 0x5C.
func halfWidthRune(code int) (rune, bool) {
	switch {
	case code == 0x5C:
		return '¥', true
	case 0x21 <= code && code <= 0x7E:
		return rune(code), true
	case sjis.IsHalfWidthKana(byte(code)):
		return rune(0xFF61 + code - 0xA1), true
	}
	return 0, false
}

// renderHalfWidth draws all 256 codes of face into a 128x256 coverage
// image, with the baseline at the given row of each 8x16 cell.
func renderHalfWidth(face font.Face, covers func(rune) bool, baseline int) *image.Alpha {
	dst := image.NewAlpha(image.Rect(0, 0, HalfWidthAtlasWidth, HalfWidthAtlasHeight))
	for code := 0; code < 256; code++ {
		r, ok := halfWidthRune(code)
		if !ok {
			continue
		}
		if !covers(r) {
			continue
		}
		cell := image.Rect(0, 0, CellWidth, CellHeight).
			Add(image.Pt((code&0xF)*CellWidth, (code>>4)*CellHeight))
		d := font.Drawer{
			Dst:  dst.SubImage(cell).(*image.Alpha),
			Src:  image.Opaque,
			Face: face,
			Dot:  fixed.P(cell.Min.X, cell.Min.Y+baseline),
		}
		d.DrawString(string(r))
	}
	return dst
}

// renderFullWidth builds the full-width coverage image from a half-width
// one by mapping every JIS cell to Unicode and folding it to its narrow
// form.
func renderFullWidth(half *image.Alpha) *image.Alpha {
	dst := image.NewAlpha(image.Rect(0, 0, FullWidthAtlasSize, FullWidthAtlasSize))
	for hi := 0x21; hi <= 0x7E; hi++ {
		for lo := 0x21; lo <= 0x7E; lo++ {
			code, ok := narrowCode(byte(hi), byte(lo))
			if !ok {
				continue
			}
			src := image.Rect(0, 0, CellWidth, CellHeight).
				Add(image.Pt((code&0xF)*CellWidth, (code>>4)*CellHeight))
			dr := image.Rect(0, 0, 2*CellWidth, CellHeight).
				Add(image.Pt((lo-0x21)*2*CellWidth, (hi-0x21)*CellHeight))
			draw.NearestNeighbor.Scale(dst, dr, half, src, draw.Src, nil)
		}
	}
	return dst
}

// narrowCode returns the half-width character-generator code of the JIS
// character hi, lo, if it has one.
func narrowCode(hi, lo byte) (int, bool) {
	w := sjis.FromJIS(hi, lo)
	r, ok := sjis.Rune([]byte{sjis.High(w), sjis.Low(w)})
	if !ok {
		return 0, false
	}
	n := width.LookupRune(r).Narrow()
	if n == 0 {
		return 0, false
	}
	switch {
	case n == '¥':
		return 0x5C, true
	case 0x21 <= n && n <= 0x7E && n != 0x5C:
		return int(n), true
	case 0xFF61 <= n && n <= 0xFF9F:
		return int(n-0xFF61) + 0xA1, true
	}
	return 0, false
}

// pack thresholds a coverage image into an atlas.
func pack(img *image.Alpha) *Atlas {
	b := img.Bounds()
	a := newBlankAtlas(b.Dx(), b.Dy())
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if img.AlphaAt(x, y).A >= inkThreshold {
				a.set(x-b.Min.X, y-b.Min.Y)
			}
		}
	}
	return a
}
