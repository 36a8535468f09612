// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package sjis

// Class is the role a byte takes at the start of a character.
type Class uint8

const (
	// ASCII is a printable single-byte character 0x20..0x7E.
	ASCII Class = iota

	// Lead starts a double-byte character.
	Lead

	// Trail can only appear as the second byte of a pair.
	Trail

	// HalfWidthKana is a single-byte katakana 0xA1..0xDF.
	HalfWidthKana

	// Control is a C0 control, DEL, or a byte outside every other range.
	Control
)

// String returns the class name.
func (c Class) String() string {
	switch c {
	case ASCII:
		return "ASCII"
	case Lead:
		return "Lead"
	case Trail:
		return "Trail"
	case HalfWidthKana:
		return "HalfWidthKana"
	case Control:
		return "Control"
	default:
		return "Unknown"
	}
}

// Kanji-In and Kanji-Out markers of the JIS family.
const (
	ESC = 0x1B

	// KI is the second byte of the Kanji-In marker (ESC K).
	KI = 0x4B

	// KO is the second byte of the Kanji-Out marker (ESC H).
	KO = 0x48
)

// Marker sequences as they appear in a byte stream.
var (
	KanjiIn  = []byte{ESC, KI}
	KanjiOut = []byte{ESC, KO}
)

// IsLead reports whether b is in the lead byte range.
func IsLead(b byte) bool {
	return (0x81 <= b && b <= 0x9F) || (0xE0 <= b && b <= 0xEF)
}

// IsTrail reports whether b is in the trail byte range.
func IsTrail(b byte) bool {
	return (0x40 <= b && b <= 0x7E) || (0x80 <= b && b <= 0xFC)
}

// IsHalfWidthKana reports whether b is a half-width katakana byte.
func IsHalfWidthKana(b byte) bool {
	return 0xA1 <= b && b <= 0xDF
}

// IsPair reports whether lead and trail form a double-byte character.
func IsPair(lead, trail byte) bool {
	return IsLead(lead) && IsTrail(trail)
}

// Classify returns the class of b when it starts a character.
func Classify(b byte) Class {
	switch {
	case b < 0x20 || b == 0x7F:
		return Control
	case IsLead(b):
		return Lead
	case IsHalfWidthKana(b):
		return HalfWidthKana
	case b <= 0x7E:
		return ASCII
	case IsTrail(b):
		return Trail
	}
	return Control
}

// IsJISByte reports whether b is in the JIS printable range 0x21..0x7E.
func IsJISByte(b byte) bool {
	return 0x21 <= b && b <= 0x7E
}

// IsJISCode reports whether both bytes of w are JIS printable bytes.
func IsJISCode(w uint16) bool {
	return IsJISByte(High(w)) && IsJISByte(Low(w))
}

// IsJISHalfWidth reports whether high, low is the two-byte JIS form of a
// half-width katakana (0x8E followed by the kana byte).
func IsJISHalfWidth(high, low byte) bool {
	return high == 0x8E && IsHalfWidthKana(low)
}

// User-defined character ranges of the JIS table.
const (
	userDefinedStart0 = 0x7621
	userDefinedEnd0   = 0x767E
	userDefinedStart1 = 0x7721
	userDefinedEnd1   = 0x777E
)

// UserDefined reports which user-defined block jis belongs to:
// 1 for 0x7621..0x767E, 2 for 0x7721..0x777E, 0 otherwise.
func UserDefined(jis uint16) int {
	switch {
	case userDefinedStart0 <= jis && jis <= userDefinedEnd0:
		return 1
	case userDefinedStart1 <= jis && jis <= userDefinedEnd1:
		return 2
	}
	return 0
}

// Word packs high and low into a 16-bit code, high byte first.
func Word(high, low byte) uint16 {
	return uint16(high)<<8 | uint16(low)
}

// High returns the first byte of w.
func High(w uint16) byte { return byte(w >> 8) }

// Low returns the second byte of w.
func Low(w uint16) byte { return byte(w) }

// ToJIS converts a Shift_JIS pair to its JIS code.
//
// The arithmetic is carried out on bytes and wraps at 8 bits, so
// out-of-range input still yields a deterministic value.
func ToJIS(high, low byte) uint16 {
	high <<= 1
	if low < 0x9F {
		if high < 0x3F {
			high += 0x1F
		} else {
			high -= 0x61
		}
		if low > 0x7E {
			low -= 0x20
		} else {
			low -= 0x1F
		}
	} else {
		if high < 0x3F {
			high += 0x20
		} else {
			high -= 0x60
		}
		low -= 0x7E
	}
	return Word(high, low)
}

// FromJIS converts a JIS code to its Shift_JIS pair. It is the inverse of
// [ToJIS] for every valid pair.
func FromJIS(high, low byte) uint16 {
	if high&1 != 0 {
		low += 0x1F
		if low >= 0x7F {
			low++
		}
	} else {
		low += 0x7E
	}
	high = (high+1)>>1 + 0x70
	if high > 0x9F {
		high += 0x40
	}
	return Word(high, low)
}
