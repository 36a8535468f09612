// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package glyph draws character-generator glyphs from monochrome font
// atlases.
//
// Three atlases are used: two half-width tables (PC-9801 and PC-8801 look)
// of 256 glyphs of 8x16 pixels laid out 16 per row, and one full-width
// table of 94x94 JIS cells of 16x16 pixels. A half-width code c is found at
// ((c&0xF)*8, (c>>4)*16); a JIS code hi, lo at ((lo-0x21)*16, (hi-0x21)*16).
//
// Drawing never touches a surface directly. The caller passes a put and an
// erase function, so the same loop serves black-on-white output, bold
// output (see [Bold]) and counting passes that draw nothing (see [Nop]).
package glyph
