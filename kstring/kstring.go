// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package kstring implements the character-counting string functions of
// N88-BASIC (KLEN, KTYPE, KPOS, KEXT$) over Shift_JIS and JIS strings.
//
// A valid lead/trail pair counts as one full-width character. Every other
// byte, including a lead byte without a valid trail, is one half-width
// character. Nothing here returns an error: indices and offsets past either
// end are clamped.
package kstring

import "github.com/gogpu/txt2png/sjis"

// Filter selects which characters Len counts.
type Filter uint8

const (
	// All counts every character.
	All Filter = iota

	// HalfWidth counts single-byte characters only.
	HalfWidth

	// FullWidth counts double-byte characters only.
	FullWidth
)

// Kind describes the width classes present in a string.
type Kind uint8

const (
	// AllHalfWidth means no full-width character is present.
	// The empty string is AllHalfWidth.
	AllHalfWidth Kind = iota

	// Mixed means both classes are present.
	Mixed

	// AllFullWidth means every character is full-width.
	AllFullWidth
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case AllHalfWidth:
		return "AllHalfWidth"
	case Mixed:
		return "Mixed"
	case AllFullWidth:
		return "AllFullWidth"
	default:
		return "Unknown"
	}
}

// charSize returns the byte length of the character at s[i].
func charSize(s []byte, i int) int {
	if i+1 < len(s) && sjis.IsPair(s[i], s[i+1]) {
		return 2
	}
	return 1
}

func (f Filter) match(size int) bool {
	switch f {
	case HalfWidth:
		return size == 1
	case FullWidth:
		return size == 2
	}
	return true
}

// Len returns the number of characters in s selected by f.
func Len(s []byte, f Filter) int {
	n := 0
	for i := 0; i < len(s); {
		size := charSize(s, i)
		if f.match(size) {
			n++
		}
		i += size
	}
	return n
}

// TypeOf reports whether s holds half-width characters, full-width
// characters, or both.
func TypeOf(s []byte) Kind {
	half, full := false, false
	for i := 0; i < len(s); {
		size := charSize(s, i)
		if size == 2 {
			full = true
		} else {
			half = true
		}
		i += size
	}
	return kindOf(half, full)
}

func kindOf(half, full bool) Kind {
	switch {
	case full && half:
		return Mixed
	case full:
		return AllFullWidth
	}
	return AllHalfWidth
}

// ByteOffset returns the byte offset of character n of s.
// n past the last character gives len(s).
func ByteOffset(s []byte, n int) int {
	i := 0
	for k := 0; k < n && i < len(s); k++ {
		i += charSize(s, i)
	}
	return i
}

// CharIndex returns the index of the character containing byte off.
// An offset inside a double-byte character maps to that character;
// an offset at or past len(s) gives the character count.
func CharIndex(s []byte, off int) int {
	n := 0
	for i := 0; i < len(s); n++ {
		size := charSize(s, i)
		if off < i+size {
			return n
		}
		i += size
	}
	return n
}

// Extract returns the characters of s of one width class, in order.
// Kanji-In and Kanji-Out markers are dropped.
func Extract(s []byte, fullWidth bool) []byte {
	s = sjis.StripMarkers(s)
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); {
		size := charSize(s, i)
		if (size == 2) == fullWidth {
			out = append(out, s[i:i+size]...)
		}
		i += size
	}
	return out
}
