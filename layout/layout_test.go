// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package layout

import (
	"bytes"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func single(code byte, col, row, page int) Placement {
	return Placement{Code: uint16(code), Cells: [2]Cell{{col, row}}, Page: page}
}

func wide(code uint16, c0, c1 Cell, page int) Placement {
	return Placement{Code: code, Wide: true, Cells: [2]Cell{c0, c1}, Page: page}
}

func TestRunSingleByte(t *testing.T) {
	got, res := Collect([]byte{0x41}, Config{Columns: 10, Rows: 5})
	want := []Placement{single(0x41, 0, 0, 1)}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("placements mismatch (-want +got):\n%s", diff)
	}
	if res.Pages != 1 {
		t.Errorf("Pages = %d, want 1", res.Pages)
	}
}

func TestRunDoubleByte(t *testing.T) {
	got, _ := Collect([]byte{0x82, 0xA0}, Config{Columns: 10, Rows: 5})
	want := []Placement{wide(0x2422, Cell{0, 0}, Cell{1, 0}, 1)}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("placements mismatch (-want +got):\n%s", diff)
	}
}

func TestRunLoneLeadAtEnd(t *testing.T) {
	got, res := Collect([]byte{0x82}, Config{Columns: 10, Rows: 5})
	want := []Placement{single(0x82, 0, 0, 1)}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("placements mismatch (-want +got):\n%s", diff)
	}
	if res.Flushed != 1 {
		t.Errorf("Flushed = %d, want 1", res.Flushed)
	}
}

func TestRunLeadBeforeNewline(t *testing.T) {
	got, _ := Collect([]byte{0x82, '\n', 'a'}, Config{Columns: 10, Rows: 5})
	want := []Placement{single(0x82, 0, 0, 1), single('a', 0, 1, 1)}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("placements mismatch (-want +got):\n%s", diff)
	}
}

func TestRunLeadInvalidTrailReprocessed(t *testing.T) {
	got, res := Collect([]byte{0x82, ' ', 0x88, 0x9F}, Config{Columns: 10, Rows: 5})
	want := []Placement{
		single(0x82, 0, 0, 1),
		single(' ', 1, 0, 1),
		wide(0x3021, Cell{2, 0}, Cell{3, 0}, 1),
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("placements mismatch (-want +got):\n%s", diff)
	}
	if res.Flushed != 1 {
		t.Errorf("Flushed = %d, want 1", res.Flushed)
	}
}

func TestRunCarriageReturnIgnored(t *testing.T) {
	got, _ := Collect([]byte("a\r\nb"), Config{Columns: 10, Rows: 5})
	want := []Placement{single('a', 0, 0, 1), single('b', 0, 1, 1)}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("placements mismatch (-want +got):\n%s", diff)
	}
}

func TestRunColumnWrap(t *testing.T) {
	got, _ := Collect([]byte("abcd"), Config{Columns: 3, Rows: 5})
	want := []Placement{
		single('a', 0, 0, 1),
		single('b', 1, 0, 1),
		single('c', 2, 0, 1),
		single('d', 0, 1, 1),
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("placements mismatch (-want +got):\n%s", diff)
	}
}

// A full row followed by a newline does not leave an empty row: the wrap is
// only taken before the next visible character.
func TestRunFullRowThenNewline(t *testing.T) {
	got, _ := Collect([]byte("abc\nd"), Config{Columns: 3, Rows: 5})
	if last := got[len(got)-1]; last != single('d', 0, 1, 1) {
		t.Errorf("last placement = %+v, want d at (0,1)", last)
	}
}

func TestRunSplitDoubleByte(t *testing.T) {
	got, _ := Collect([]byte{'a', 'b', 0x82, 0xA0, 'c'}, Config{Columns: 3, Rows: 5})
	want := []Placement{
		single('a', 0, 0, 1),
		single('b', 1, 0, 1),
		wide(0x2422, Cell{2, 0}, Cell{0, 1}, 1),
		single('c', 1, 1, 1),
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("placements mismatch (-want +got):\n%s", diff)
	}
}

func TestRunSplitAcrossPage(t *testing.T) {
	text := []byte{'a', 0x82, 0xA0, 'b'}
	cfg := Config{Columns: 2, Rows: 1}

	got, res := Collect(text, cfg)
	clipped := wide(0x2422, Cell{1, 0}, Cell{0, 0}, 1)
	clipped.Clipped = true
	want := []Placement{single('a', 0, 0, 1), clipped, single('b', 1, 0, 2)}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("dry run mismatch (-want +got):\n%s", diff)
	}
	if res.Pages != 2 {
		t.Errorf("Pages = %d, want 2", res.Pages)
	}

	cfg.Page = 1
	got, res = Collect(text, cfg)
	if diff := cmp.Diff(want[:2], got); diff != "" {
		t.Errorf("page 1 mismatch (-want +got):\n%s", diff)
	}
	if !res.Stopped {
		t.Error("page 1 run did not stop at the end of the page")
	}
}

// Seen from the target page, the second half of a split that would open
// the next page stays on the grid.
func TestRunSplitAcrossTargetPage(t *testing.T) {
	got, res := Collect([]byte{'a', 0x82, 0xA0, 'b'}, Config{Columns: 2, Rows: 1, Page: 1})
	clipped := wide(0x2422, Cell{1, 0}, Cell{0, 0}, 1)
	clipped.Clipped = true
	want := []Placement{single('a', 0, 0, 1), clipped}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("placements mismatch (-want +got):\n%s", diff)
	}
	if !res.Stopped {
		t.Error("Stopped = false, want true")
	}
}

func TestRunMarkersTakeNoCell(t *testing.T) {
	text := []byte{'A', 0x1B, 'K', 'B', 0x1B, 'H'}
	got, res := Collect(text, Config{Columns: 10, Rows: 5})
	want := []Placement{single('A', 0, 0, 1), single('B', 1, 0, 1)}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("placements mismatch (-want +got):\n%s", diff)
	}
	if res.Placements != 2 {
		t.Errorf("Placements = %d, want 2", res.Placements)
	}
}

func TestRunLoneEscape(t *testing.T) {
	tests := []struct {
		name string
		text []byte
		want []Placement
	}{
		{
			name: "followed by other byte",
			text: []byte{0x1B, 'B'},
			want: []Placement{single(0x1B, 0, 0, 1), single('B', 1, 0, 1)},
		},
		{
			name: "at end",
			text: []byte{'A', 0x1B},
			want: []Placement{single('A', 0, 0, 1), single(0x1B, 1, 0, 1)},
		},
		{
			name: "twice before marker",
			text: []byte{0x1B, 0x1B, 'K', 'C'},
			want: []Placement{single(0x1B, 0, 0, 1), single('C', 1, 0, 1)},
		},
		{
			name: "after lead",
			text: []byte{0x82, 0x1B, 'H', 'D'},
			want: []Placement{single(0x82, 0, 0, 1), single('D', 1, 0, 1)},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, _ := Collect(tt.text, Config{Columns: 10, Rows: 5})
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("placements mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestRunPageBreak(t *testing.T) {
	const rows = 4
	text := bytes.Repeat([]byte("x\n"), rows)
	if got := CountPages(text, 5, rows); got != 2 {
		t.Errorf("CountPages() = %d, want 2", got)
	}
	if got := CountPages(text[:len(text)-1], 5, rows); got != 1 {
		t.Errorf("CountPages(without last newline) = %d, want 1", got)
	}
}

func TestRunWrapOverflowBreaksPage(t *testing.T) {
	// Two rows of two columns hold four characters; the fifth starts page 2.
	got, res := Collect([]byte("abcde"), Config{Columns: 2, Rows: 2})
	if res.Pages != 2 {
		t.Errorf("Pages = %d, want 2", res.Pages)
	}
	if last := got[len(got)-1]; last != single('e', 0, 0, 2) {
		t.Errorf("last placement = %+v, want e at (0,0) page 2", last)
	}
	for _, p := range got {
		if p.Cells[0].Row >= 2 || p.Cells[0].Column >= 2 {
			t.Errorf("placement %+v outside the grid", p)
		}
	}
}

func TestRunTargetStopsAtPageEnd(t *testing.T) {
	text := []byte("a\nb\nc\nd\n")
	got, res := Collect(text, Config{Columns: 4, Rows: 2, Page: 1})
	want := []Placement{single('a', 0, 0, 1), single('b', 0, 1, 1)}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("placements mismatch (-want +got):\n%s", diff)
	}
	if !res.Stopped {
		t.Error("Stopped = false, want true")
	}
}

func TestRunEmpty(t *testing.T) {
	got, res := Collect(nil, Config{Columns: 4, Rows: 2})
	if len(got) != 0 || res.Pages != 1 {
		t.Errorf("Collect(nil) = %v, %+v; want no placements and 1 page", got, res)
	}
}

func TestDryRunRenderAgreement(t *testing.T) {
	var text []byte
	for i := 0; i < 40; i++ {
		text = append(text, "ab"...)
		text = append(text, 0x82, 0xA0)
		if i%3 == 0 {
			text = append(text, '\r', '\n')
		}
		if i%7 == 0 {
			text = append(text, 0x88, '\n')
		}
		text = append(text, 0x88, 0x9F, 'z')
		if i%5 == 0 {
			text = append(text, 0x1B, 'K', 0x1B, 'x', 0x1B, 'H')
		}
	}
	cfg := Config{Columns: 7, Rows: 3}

	// Move to the top of a fresh page, fill it up to its last cell, and
	// split a wide character across the page break.
	l := New(cfg)
	l.Run(text, nil)
	_, row, _ := l.Cursor()
	text = append(text, bytes.Repeat([]byte{'\n'}, cfg.Rows-row)...)
	text = append(text, bytes.Repeat([]byte{'q'}, cfg.Columns*cfg.Rows-1)...)
	text = append(text, 0x82, 0xA0, 'e')

	dry, res := Collect(text, cfg)
	if res.Pages < 3 {
		t.Fatalf("Pages = %d, want a multi-page input", res.Pages)
	}
	clipped := 0
	for _, p := range dry {
		if p.Clipped {
			clipped++
		}
	}
	if clipped == 0 {
		t.Fatal("input has no wide character split across a page")
	}

	overflows := 0
	for page := 1; page <= res.Pages; page++ {
		var want []Placement
		for _, p := range dry {
			if p.Page == page {
				want = append(want, p)
			}
		}
		cfg.Page = page
		got, r := Collect(text, cfg)
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("page %d mismatch (-dry +render):\n%s", page, diff)
		}
		if r.Stopped {
			overflows++
		}
	}
	if res.Pages != overflows+1 {
		t.Errorf("Pages = %d, want overflows+1 = %d", res.Pages, overflows+1)
	}
}

func TestCursorAndState(t *testing.T) {
	l := New(Config{Columns: 0, Rows: 0})
	if l.State() != Scanning {
		t.Errorf("State() = %v, want Scanning", l.State())
	}
	if c, r, p := l.Cursor(); c != 0 || r != 0 || p != 1 {
		t.Errorf("Cursor() = %d,%d,%d, want 0,0,1", c, r, p)
	}
	l.Run([]byte("ab"), nil)
	if l.State() != Done {
		t.Errorf("State() after Run = %v, want Done", l.State())
	}
	// One column and one row: each character is a new page.
	if _, _, p := l.Cursor(); p != 2 {
		t.Errorf("page after Run = %d, want 2", p)
	}
}

func TestStateString(t *testing.T) {
	if LeadPending.String() != "LeadPending" {
		t.Errorf("LeadPending.String() = %q", LeadPending.String())
	}
}
