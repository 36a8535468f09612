package txt2png

import (
	"errors"
	"testing"

	"github.com/gogpu/txt2png/glyph"
)

// TestNewDefault tests that New applies the default options.
func TestNewDefault(t *testing.T) {
	c, err := New()
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	o := c.opts
	if o.columns != 120 || o.rows != 80 || o.margin != 16 || o.extraHeight != 4 {
		t.Errorf("defaults = %+v", o)
	}
	if o.style != glyph.StylePC98 || o.backend != "image" || o.bold {
		t.Errorf("defaults = %+v", o)
	}
	if c.half != glyph.HalfWidth(glyph.StylePC98) {
		t.Error("default half-width atlas is not the PC-98 built-in")
	}

	w, h := c.PageSize()
	if w != 8*120+32 || h != 20*80+32 {
		t.Errorf("PageSize() = %dx%d, want 992x1632", w, h)
	}
}

// TestNewWithOptions tests that every option reaches the converter.
func TestNewWithOptions(t *testing.T) {
	half, _ := glyph.NewAtlas(glyph.HalfWidthAtlasWidth, glyph.HalfWidthAtlasHeight,
		make([]byte, glyph.HalfWidthAtlasWidth/8*glyph.HalfWidthAtlasHeight))

	c, err := New(
		WithColumns(80),
		WithRows(25),
		WithMargin(0),
		WithExtraHeight(0),
		WithStyle(glyph.StylePC88),
		WithBold(true),
		WithUnderline(true),
		WithOverline(true),
		WithBackend("paletted"),
		WithAtlases(half, nil),
	)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	o := c.opts
	if o.columns != 80 || o.rows != 25 || o.margin != 0 || o.extraHeight != 0 {
		t.Errorf("sizes = %+v", o)
	}
	if o.style != glyph.StylePC88 || !o.bold || !o.underline || !o.overline || o.backend != "paletted" {
		t.Errorf("flags = %+v", o)
	}
	if c.half != half {
		t.Error("WithAtlases half-width atlas not used")
	}
	if c.full != glyph.FullWidth() {
		t.Error("nil full-width atlas should keep the built-in")
	}
	if w, h := c.PageSize(); w != 9*80 || h != 16*25 {
		t.Errorf("PageSize() = %dx%d, want 720x400", w, h)
	}
}

// TestNewInvalidConfig tests option validation.
func TestNewInvalidConfig(t *testing.T) {
	small, _ := glyph.NewAtlas(8, 8, make([]byte, 8))
	tests := []struct {
		name string
		opt  Option
	}{
		{"zero columns", WithColumns(0)},
		{"negative rows", WithRows(-1)},
		{"negative margin", WithMargin(-1)},
		{"negative extra height", WithExtraHeight(-2)},
		{"empty backend", WithBackend("")},
		{"small half atlas", WithAtlases(small, nil)},
		{"small full atlas", WithAtlases(nil, small)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := New(tt.opt); !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("New() error = %v, want ErrInvalidConfig", err)
			}
		})
	}
}
