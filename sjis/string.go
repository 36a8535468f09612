// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package sjis

// EncodeJIS converts a Shift_JIS string to JIS.
//
// Every run of double-byte characters is wrapped in Kanji-In / Kanji-Out
// markers and each pair is converted with [ToJIS]. Single-byte runs,
// including half-width kana and lone lead bytes, are copied unchanged.
func EncodeJIS(src []byte) []byte {
	dst := make([]byte, 0, len(src)+len(src)/2)
	kanji := false
	for i := 0; i < len(src); {
		if i+1 < len(src) && IsPair(src[i], src[i+1]) {
			if !kanji {
				dst = append(dst, KanjiIn...)
				kanji = true
			}
			w := ToJIS(src[i], src[i+1])
			dst = append(dst, High(w), Low(w))
			i += 2
			continue
		}
		if kanji {
			dst = append(dst, KanjiOut...)
			kanji = false
		}
		dst = append(dst, src[i])
		i++
	}
	if kanji {
		dst = append(dst, KanjiOut...)
	}
	return dst
}

// DecodeJIS converts a JIS string to Shift_JIS. kanjiIn tells whether the
// text starts inside a Kanji-In section.
//
// Markers switch the mode and are dropped. Inside a kanji section bytes are
// taken in pairs: a 0x8E pair yields the half-width kana byte, any other pair
// is converted with [FromJIS]. Bytes below 0x21 and an unpaired final byte
// are copied as they are.
func DecodeJIS(src []byte, kanjiIn bool) []byte {
	dst := make([]byte, 0, len(src))
	for i := 0; i < len(src); {
		if n := MarkerAt(src, i); n != 0 {
			kanjiIn = n == KI
			i += 2
			continue
		}
		b := src[i]
		if !kanjiIn || i+1 >= len(src) || b < 0x21 {
			dst = append(dst, b)
			i++
			continue
		}
		lo := src[i+1]
		if IsJISHalfWidth(b, lo) {
			dst = append(dst, lo)
		} else {
			w := FromJIS(b, lo)
			dst = append(dst, High(w), Low(w))
		}
		i += 2
	}
	return dst
}

// StripMarkers removes every Kanji-In and Kanji-Out marker from b.
// The result never contains a marker, even where removing one brings an
// ESC next to a K or H.
func StripMarkers(b []byte) []byte {
	dst := make([]byte, 0, len(b))
	for _, c := range b {
		if n := len(dst); n > 0 && dst[n-1] == ESC && (c == KI || c == KO) {
			dst = dst[:n-1]
			continue
		}
		dst = append(dst, c)
	}
	return dst
}

// MarkerAt reports the marker starting at b[i]: KI, KO, or 0.
func MarkerAt(b []byte, i int) byte {
	if i >= 0 && i+1 < len(b) && b[i] == ESC && (b[i+1] == KI || b[i+1] == KO) {
		return b[i+1]
	}
	return 0
}
