package txt2png

import (
	"fmt"

	"github.com/gogpu/txt2png/glyph"
)

// Default configuration, matching the PC-9801 text screen the output
// imitates.
const (
	DefaultColumns     = 120
	DefaultRows        = 80
	DefaultMargin      = 16
	DefaultExtraHeight = 4
	DefaultBackend     = "image"
)

// Option configures a Converter during creation.
//
// Example:
//
//	// Default PC-98 pages
//	c, err := txt2png.New()
//
//	// Bold PC-88 pages of 80x25 characters
//	c, err := txt2png.New(
//		txt2png.WithStyle(glyph.StylePC88),
//		txt2png.WithColumns(80),
//		txt2png.WithRows(25),
//		txt2png.WithBold(true),
//	)
type Option func(*options)

// options holds the Converter configuration.
type options struct {
	columns     int
	rows        int
	margin      int
	extraHeight int
	style       glyph.Style
	bold        bool
	underline   bool
	overline    bool
	backend     string
	half, full  *glyph.Atlas
}

// defaultOptions returns the default converter options.
func defaultOptions() options {
	return options{
		columns:     DefaultColumns,
		rows:        DefaultRows,
		margin:      DefaultMargin,
		extraHeight: DefaultExtraHeight,
		style:       glyph.StylePC98,
		backend:     DefaultBackend,
	}
}

// validate reports the first invalid setting.
func (o *options) validate() error {
	switch {
	case o.columns < 1:
		return fmt.Errorf("%w: columns %d", ErrInvalidConfig, o.columns)
	case o.rows < 1:
		return fmt.Errorf("%w: rows %d", ErrInvalidConfig, o.rows)
	case o.margin < 0:
		return fmt.Errorf("%w: margin %d", ErrInvalidConfig, o.margin)
	case o.extraHeight < 0:
		return fmt.Errorf("%w: extra height %d", ErrInvalidConfig, o.extraHeight)
	case o.backend == "":
		return fmt.Errorf("%w: empty backend name", ErrInvalidConfig)
	}
	if o.half != nil && (o.half.Width() < glyph.HalfWidthAtlasWidth || o.half.Height() < glyph.HalfWidthAtlasHeight) {
		return fmt.Errorf("%w: half-width atlas is %dx%d", ErrInvalidConfig, o.half.Width(), o.half.Height())
	}
	if o.full != nil && (o.full.Width() < glyph.FullWidthAtlasSize || o.full.Height() < glyph.FullWidthAtlasSize) {
		return fmt.Errorf("%w: full-width atlas is %dx%d", ErrInvalidConfig, o.full.Width(), o.full.Height())
	}
	return nil
}

// WithColumns sets the number of character columns per row.
func WithColumns(n int) Option {
	return func(o *options) { o.columns = n }
}

// WithRows sets the number of rows per page.
func WithRows(n int) Option {
	return func(o *options) { o.rows = n }
}

// WithMargin sets the blank border around the text, in pixels.
func WithMargin(px int) Option {
	return func(o *options) { o.margin = px }
}

// WithExtraHeight sets the blank pixel rows added below every text row.
func WithExtraHeight(px int) Option {
	return func(o *options) { o.extraHeight = px }
}

// WithStyle selects the built-in half-width font.
func WithStyle(s glyph.Style) Option {
	return func(o *options) { o.style = s }
}

// WithBold widens the cell pitch to 9 pixels and draws every ink pixel
// twice, one pixel apart.
func WithBold(bold bool) Option {
	return func(o *options) { o.bold = bold }
}

// WithUnderline draws a line on the last pixel row of every glyph.
func WithUnderline(on bool) Option {
	return func(o *options) { o.underline = on }
}

// WithOverline draws a line on the first pixel row of every glyph.
func WithOverline(on bool) Option {
	return func(o *options) { o.overline = on }
}

// WithBackend selects the surface backend by registry name.
//
// Example:
//
//	c, err := txt2png.New(txt2png.WithBackend("paletted"))
func WithBackend(name string) Option {
	return func(o *options) { o.backend = name }
}

// WithAtlases replaces the built-in fonts, typically with character
// generator images loaded by glyph.ParseXBM. A nil atlas keeps the
// built-in one.
func WithAtlases(half, full *glyph.Atlas) Option {
	return func(o *options) {
		o.half = half
		o.full = full
	}
}
