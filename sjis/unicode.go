// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package sjis

import (
	"unicode/utf8"

	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/transform"
	"golang.org/x/text/width"
)

// ToUTF8 decodes a Shift_JIS string.
func ToUTF8(src []byte) (string, error) {
	s, _, err := transform.Bytes(japanese.ShiftJIS.NewDecoder(), src)
	if err != nil {
		return "", err
	}
	return string(s), nil
}

// FromUTF8 encodes s as Shift_JIS. Runes without a Shift_JIS form are an
// error.
func FromUTF8(s string) ([]byte, error) {
	b, _, err := transform.Bytes(japanese.ShiftJIS.NewEncoder(), []byte(s))
	if err != nil {
		return nil, err
	}
	return b, nil
}

// Rune decodes a single Shift_JIS character. ok is false when the bytes do
// not map to a Unicode character.
func Rune(b []byte) (r rune, ok bool) {
	out, _, err := transform.Bytes(japanese.ShiftJIS.NewDecoder(), b)
	if err != nil || len(out) == 0 {
		return utf8.RuneError, false
	}
	r, n := utf8.DecodeRune(out)
	if r == utf8.RuneError || n != len(out) {
		return utf8.RuneError, false
	}
	return r, true
}

// ToFullWidth converts half-width characters (ASCII, half-width kana) to
// their full-width double-byte forms.
func ToFullWidth(src []byte) []byte {
	return convertWidth(src, width.Widen)
}

// ToHalfWidth converts full-width characters to their half-width forms
// where Shift_JIS has one.
func ToHalfWidth(src []byte) []byte {
	return convertWidth(src, width.Narrow)
}

// convertWidth applies t character by character. A character whose
// converted form does not encode back to Shift_JIS is kept as it was.
func convertWidth(src []byte, t width.Transformer) []byte {
	dst := make([]byte, 0, len(src))
	enc := japanese.ShiftJIS.NewEncoder()
	for i := 0; i < len(src); {
		n := 1
		if i+1 < len(src) && IsPair(src[i], src[i+1]) {
			n = 2
		}
		ch := src[i : i+n]
		i += n

		r, ok := Rune(ch)
		if !ok || r < 0x20 {
			dst = append(dst, ch...)
			continue
		}
		conv := t.String(string(r))
		b, _, err := transform.Bytes(enc, []byte(conv))
		if err != nil || len(b) == 0 {
			dst = append(dst, ch...)
			continue
		}
		dst = append(dst, b...)
	}
	return dst
}
