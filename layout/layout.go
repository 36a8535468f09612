// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package layout places Shift_JIS text on a fixed grid of character cells
// and splits it into pages.
//
// A Layout consumes the byte stream once, left to right, and emits one
// Placement per visible character. Half-width characters take one cell,
// double-byte characters take two. Lines wrap when the column limit is
// reached and pages break when the row limit is reached. The Kanji-In and
// Kanji-Out markers (ESC K, ESC H) take no cell; any other ESC is drawn.
//
// Rendering is done in two passes. A dry run (Config.Page == 0) reports the
// number of pages and emits every placement tagged with its page. A targeted
// run emits only the placements of one page and stops as soon as that page
// is full. Both passes share the same state machine, so the placements of a
// targeted run are exactly the dry-run placements of that page.
package layout

import "github.com/gogpu/txt2png/sjis"

// State is the state of the layout machine.
type State uint8

const (
	// Scanning waits for the next character.
	Scanning State = iota

	// LeadPending holds a lead byte and waits for its trail byte.
	LeadPending

	// Done means the input is exhausted or the target page is complete.
	Done
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case Scanning:
		return "Scanning"
	case LeadPending:
		return "LeadPending"
	case Done:
		return "Done"
	default:
		return "Unknown"
	}
}

// Config bounds the character grid.
type Config struct {
	// Columns is the number of half-width cells per row.
	Columns int

	// Rows is the number of rows per page.
	Rows int

	// Page selects the page to emit, starting at 1.
	// 0 requests a dry run that emits every page.
	Page int
}

// Cell is a grid position on a page.
type Cell struct {
	Column int
	Row    int
}

// Placement is one visible character assigned to the grid.
type Placement struct {
	// Code is the byte value of a half-width character or the JIS code of
	// a full-width character.
	Code uint16

	// Wide marks a full-width character.
	Wide bool

	// Cells holds the cell of the character. A full-width character uses
	// both entries: the left half in Cells[0] and the right half in
	// Cells[1]. The halves are on different rows when the line wrapped
	// between them.
	Cells [2]Cell

	// Clipped marks a full-width character whose right half fell past the
	// end of the page. Only the left half is shown.
	Clipped bool

	// Page is the page of Cells[0].
	Page int
}

// Result summarizes a run.
type Result struct {
	// Pages is the page number of the cursor when the run stopped.
	// After a dry run it is the total number of pages.
	Pages int

	// Placements counts the emitted placements.
	Placements int

	// Flushed counts lead bytes drawn as half-width characters because no
	// valid trail byte followed.
	Flushed int

	// Stopped reports that a targeted run ended because its page was
	// full rather than because the input ran out.
	Stopped bool
}

// Layout is the pagination state machine. A Layout is used for one run.
type Layout struct {
	cfg   Config
	emit  func(Placement)
	state State

	col, row, page int

	lead     byte
	leadCell Cell
	leadPage int

	// esc holds an ESC that may start a KI/KO marker.
	esc bool

	res Result
}

// New returns a Layout with its cursor at column 0, row 0, page 1.
// Columns and rows below 1 are raised to 1; a negative page is a dry run.
func New(cfg Config) *Layout {
	if cfg.Columns < 1 {
		cfg.Columns = 1
	}
	if cfg.Rows < 1 {
		cfg.Rows = 1
	}
	if cfg.Page < 0 {
		cfg.Page = 0
	}
	return &Layout{cfg: cfg, page: 1}
}

// State returns the current state.
func (l *Layout) State() State { return l.state }

// Cursor returns the current column, row and page.
func (l *Layout) Cursor() (column, row, page int) { return l.col, l.row, l.page }

// Run lays out text, calling emit for every placement in order.
// emit may be nil when only the result is needed.
func (l *Layout) Run(text []byte, emit func(Placement)) Result {
	l.emit = emit
	for _, b := range text {
		if l.state == Done {
			break
		}
		l.step(b)
	}
	if l.esc && l.state != Done {
		l.esc = false
		l.visible(sjis.ESC)
	}
	if l.state == LeadPending {
		l.flushLead()
	}
	if l.state == Done {
		l.res.Stopped = true
	}
	l.state = Done
	l.res.Pages = l.page
	return l.res
}

func (l *Layout) step(b byte) {
	if l.esc {
		l.esc = false
		if b == sjis.KI || b == sjis.KO {
			return
		}
		l.visible(sjis.ESC)
		if l.state == Done {
			return
		}
	}
	if l.state == LeadPending {
		if sjis.IsPair(l.lead, b) {
			l.trail(b)
			return
		}
		l.flushLead()
	}

	switch {
	case b == sjis.ESC:
		l.esc = true
	case b == '\r':
	case b == '\n':
		l.col = 0
		l.nextRow()
	case sjis.IsLead(b):
		if !l.wrap() {
			return
		}
		l.lead = b
		l.leadCell = Cell{l.col, l.row}
		l.leadPage = l.page
		l.col++
		l.state = LeadPending
	default:
		l.visible(b)
	}
}

// visible places b in the next single cell.
func (l *Layout) visible(b byte) {
	if !l.wrap() {
		return
	}
	l.place(Placement{
		Code:  uint16(b),
		Cells: [2]Cell{{l.col, l.row}},
		Page:  l.page,
	})
	l.col++
}

// trail completes the pending double-byte character.
func (l *Layout) trail(b byte) {
	p := Placement{
		Code:  sjis.ToJIS(l.lead, b),
		Wide:  true,
		Page:  l.leadPage,
		Cells: [2]Cell{l.leadCell},
	}
	l.state = Scanning

	if l.col >= l.cfg.Columns {
		l.col = 0
		l.nextRow()
		if l.state == Done || l.page != p.Page {
			// The second half would open the next page.
			p.Clipped = true
			p.Cells[1] = Cell{0, 0}
			l.place(p)
			if l.state != Done {
				l.col++
			}
			return
		}
	}
	p.Cells[1] = Cell{l.col, l.row}
	l.place(p)
	l.col++
}

// flushLead draws a pending lead byte as a half-width character in the
// cell reserved for it.
func (l *Layout) flushLead() {
	l.res.Flushed++
	l.place(Placement{
		Code:  uint16(l.lead),
		Cells: [2]Cell{l.leadCell},
		Page:  l.leadPage,
	})
	l.state = Scanning
}

// wrap moves the cursor to the next row when the current row is full.
// It returns false when the run is over.
func (l *Layout) wrap() bool {
	if l.col < l.cfg.Columns {
		return true
	}
	l.col = 0
	l.nextRow()
	return l.state != Done
}

// nextRow advances the row and breaks the page on overflow. On the target
// page the overflow ends the run instead.
func (l *Layout) nextRow() {
	l.row++
	if l.row < l.cfg.Rows {
		return
	}
	if l.cfg.Page > 0 && l.page == l.cfg.Page {
		l.state = Done
		return
	}
	l.row = 0
	l.page++
}

func (l *Layout) place(p Placement) {
	if l.cfg.Page > 0 && p.Page != l.cfg.Page {
		return
	}
	l.res.Placements++
	if l.emit != nil {
		l.emit(p)
	}
}

// CountPages returns the number of pages text occupies.
func CountPages(text []byte, columns, rows int) int {
	return New(Config{Columns: columns, Rows: rows}).Run(text, nil).Pages
}

// Collect runs a layout and returns its placements.
func Collect(text []byte, cfg Config) ([]Placement, Result) {
	var out []Placement
	res := New(cfg).Run(text, func(p Placement) {
		out = append(out, p)
	})
	return out, res
}
