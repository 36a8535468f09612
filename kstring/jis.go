// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package kstring

import "github.com/gogpu/txt2png/sjis"

// jisScanner walks a JIS string, tracking the Kanji-In state.
// Markers are zero-width: skip consumes them before each character.
type jisScanner struct {
	s     []byte
	i     int
	kanji bool
}

func (sc *jisScanner) skip() {
	for m := sjis.MarkerAt(sc.s, sc.i); m != 0; m = sjis.MarkerAt(sc.s, sc.i) {
		sc.kanji = m == sjis.KI
		sc.i += 2
	}
}

// next returns the byte size of the character at the cursor and whether it
// is full-width. Call skip first.
func (sc *jisScanner) next() (size int, full bool) {
	if !sc.kanji || sc.i+1 >= len(sc.s) || sc.s[sc.i] < 0x21 {
		return 1, false
	}
	return 2, !sjis.IsJISHalfWidth(sc.s[sc.i], sc.s[sc.i+1])
}

func (sc *jisScanner) done() bool {
	sc.skip()
	return sc.i >= len(sc.s)
}

// JISLen is Len for a JIS string that starts outside a kanji section.
func JISLen(s []byte, f Filter) int {
	sc := jisScanner{s: s}
	n := 0
	for !sc.done() {
		size, full := sc.next()
		if f == All || (f == FullWidth) == full {
			n++
		}
		sc.i += size
	}
	return n
}

// JISTypeOf is TypeOf for a JIS string.
func JISTypeOf(s []byte) Kind {
	sc := jisScanner{s: s}
	half, full := false, false
	for !sc.done() {
		size, f := sc.next()
		if f {
			full = true
		} else {
			half = true
		}
		sc.i += size
	}
	return kindOf(half, full)
}

// JISByteOffset returns the byte offset of character n of a JIS string and
// whether that position is inside a kanji section.
//
// Markers in front of character n are consumed first, so the offset points
// at the character itself and kanjiIn reflects the markers just passed.
// n past the end gives len(s) and the final state.
func JISByteOffset(s []byte, n int) (off int, kanjiIn bool) {
	sc := jisScanner{s: s}
	for k := 0; !sc.done() && k < n; k++ {
		size, _ := sc.next()
		sc.i += size
	}
	return sc.i, sc.kanji
}
