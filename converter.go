package txt2png

import (
	"fmt"
	"image/color"
	"strconv"

	"github.com/gogpu/txt2png/glyph"
	"github.com/gogpu/txt2png/layout"
	"github.com/gogpu/txt2png/surface"
)

// Converter renders Shift_JIS text as pages of glyph images.
//
// Each page is produced by two passes over the text: a dry run that counts
// the pages, then a targeted run that draws only the requested one.
// A Converter holds no per-text state and may be reused.
type Converter struct {
	opts options
	geom glyph.Geometry
	half *glyph.Atlas
	full *glyph.Atlas
}

// New creates a Converter.
//
// Example:
//
//	c, err := txt2png.New(txt2png.WithColumns(80), txt2png.WithRows(25))
//	if err != nil {
//		return err
//	}
//	n, err := c.Convert(text, func(page int, s surface.Surface) error {
//		return surface.Save(s, txt2png.OutputName(page), surface.MIMEPNG)
//	})
func New(opts ...Option) (*Converter, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err := o.validate(); err != nil {
		return nil, err
	}

	c := &Converter{
		opts: o,
		geom: glyph.NewGeometry(o.margin, o.bold, o.extraHeight),
		half: o.half,
		full: o.full,
	}
	if c.half == nil {
		c.half = glyph.HalfWidth(o.style)
	}
	if c.full == nil {
		c.full = glyph.FullWidth()
	}
	return c, nil
}

// PageSize returns the pixel size of every page.
func (c *Converter) PageSize() (width, height int) {
	return c.geom.PageSize(c.opts.columns, c.opts.rows)
}

// CountPages returns the number of pages text occupies. Empty text
// occupies one blank page.
func (c *Converter) CountPages(text []byte) int {
	res := layout.New(layout.Config{
		Columns: c.opts.columns,
		Rows:    c.opts.rows,
	}).Run(text, nil)
	if res.Flushed > 0 {
		Logger().Warn("txt2png: lead bytes without trail byte",
			"count", res.Flushed)
	}
	Logger().Debug("txt2png: counted pages",
		"pages", res.Pages, "glyphs", res.Placements, "bytes", len(text))
	return res.Pages
}

// RenderPage draws one page of text onto a new white surface.
// The caller owns the surface and must close it.
// A page outside [1, CountPages(text)] gives a *PageRangeError.
func (c *Converter) RenderPage(text []byte, page int) (surface.Surface, error) {
	if n := c.CountPages(text); page < 1 || page > n {
		return nil, &PageRangeError{Page: page, Pages: n}
	}
	return c.render(text, page)
}

// Convert renders every page of text in order and hands each surface to
// fn, closing it after fn returns. It stops at the first error and
// returns the number of pages fn accepted.
func (c *Converter) Convert(text []byte, fn func(page int, s surface.Surface) error) (int, error) {
	n := c.CountPages(text)
	for page := 1; page <= n; page++ {
		s, err := c.render(text, page)
		if err != nil {
			return page - 1, err
		}
		err = fn(page, s)
		if cerr := s.Close(); err == nil && cerr != nil {
			err = cerr
		}
		if err != nil {
			return page - 1, fmt.Errorf("txt2png: page %d: %w", page, err)
		}
		Logger().Info("txt2png: page done", "page", page, "of", n)
	}
	return n, nil
}

// render runs the targeted layout for page and rasterizes it.
func (c *Converter) render(text []byte, page int) (surface.Surface, error) {
	w, h := c.PageSize()
	s, err := surface.Open(c.opts.backend, surface.Options{
		Width:      w,
		Height:     h,
		Background: color.White,
	})
	if err != nil {
		return nil, fmt.Errorf("txt2png: page %d: %w", page, err)
	}
	put := glyph.PixelFunc(func(x, y int) { s.SetPixel(x, y, color.Black) })
	if c.opts.bold {
		put = glyph.Bold(put)
	}
	rz := glyph.Rasterizer{
		Geometry:  c.geom,
		Half:      c.half,
		Full:      c.full,
		Put:       put,
		Erase:     glyph.Nop,
		Underline: c.opts.underline,
		Overline:  c.opts.overline,
	}
	res := layout.New(layout.Config{
		Columns: c.opts.columns,
		Rows:    c.opts.rows,
		Page:    page,
	}).Run(text, rz.Draw)

	Logger().Debug("txt2png: rendered page",
		"page", page, "glyphs", res.Placements, "stopped", res.Stopped,
		"width", w, "height", h)
	return s, nil
}

// OutputName returns the file name of a page: output-<page>.png.
func OutputName(page int) string {
	return "output-" + strconv.Itoa(page) + ".png"
}
