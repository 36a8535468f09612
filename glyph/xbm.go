// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package glyph

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ErrInvalidXBM is returned when XBM source cannot be parsed.
var ErrInvalidXBM = errors.New("glyph: invalid XBM data")

// ParseXBM reads an X BitMap, the C source form in which the original
// PC-9801, PC-8801 and kanji font images are distributed:
//
//	#define name_width 128
//	#define name_height 256
//	static unsigned char name_bits[] = { 0x00, 0x18, ... };
func ParseXBM(r io.Reader) (*Atlas, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	text := string(src)

	var width, height int
	for _, line := range strings.Split(text, "\n") {
		fields := strings.Fields(line)
		if len(fields) != 3 || fields[0] != "#define" {
			continue
		}
		v, err := strconv.Atoi(fields[2])
		if err != nil {
			continue
		}
		switch {
		case strings.HasSuffix(fields[1], "_width"):
			width = v
		case strings.HasSuffix(fields[1], "_height"):
			height = v
		}
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: missing width or height", ErrInvalidXBM)
	}

	open := strings.IndexByte(text, '{')
	end := strings.LastIndexByte(text, '}')
	if open < 0 || end < open {
		return nil, fmt.Errorf("%w: missing bitmap data", ErrInvalidXBM)
	}
	tokens := strings.Split(text[open+1:end], ",")
	bits := make([]byte, 0, len(tokens))
	for _, tok := range tokens {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			continue
		}
		v, err := strconv.ParseUint(tok, 0, 8)
		if err != nil {
			return nil, fmt.Errorf("%w: bad byte %q", ErrInvalidXBM, tok)
		}
		bits = append(bits, byte(v))
	}
	return NewAtlas(width, height, bits)
}

// WriteXBM writes a as XBM source using name as the identifier prefix.
func WriteXBM(w io.Writer, name string, a *Atlas) error {
	var sb strings.Builder
	fmt.Fprintf(&sb, "#define %s_width %d\n", name, a.width)
	fmt.Fprintf(&sb, "#define %s_height %d\n", name, a.height)
	fmt.Fprintf(&sb, "static unsigned char %s_bits[] = {", name)
	for i, b := range a.bits {
		if i%12 == 0 {
			sb.WriteString("\n  ")
		} else {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "0x%02x", b)
		if i != len(a.bits)-1 {
			sb.WriteByte(',')
		}
	}
	sb.WriteString("};\n")
	_, err := io.WriteString(w, sb.String())
	return err
}
