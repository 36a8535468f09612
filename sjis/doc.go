// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package sjis classifies Shift_JIS bytes and converts between Shift_JIS
// and 7-bit JIS.
//
// Shift_JIS is the display encoding of the PC-9801 and PC-8801 text screens.
// Characters are either one byte (ASCII, half-width katakana) or a lead byte
// followed by a trail byte. JIS is the interchange form: the same double-byte
// characters expressed as two bytes in the printable range 0x21..0x7E,
// bracketed by the Kanji-In (ESC K) and Kanji-Out (ESC H) markers.
//
// All conversions are total. Invalid input is never rejected; callers that
// need validation use [Classify] and [IsPair] first.
//
// # Byte Ranges
//
//	lead           0x81..0x9F, 0xE0..0xEF
//	trail          0x40..0x7E, 0x80..0xFC
//	half-width kana 0xA1..0xDF
//
// The ranges overlap, so a byte's meaning depends on its position. [Classify]
// reports the class a byte takes when it starts a character.
package sjis
