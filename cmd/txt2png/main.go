// Command txt2png renders a Shift_JIS text file as PNG pages in the style
// of the PC-9801 and PC-8801 text screens.
//
// Usage:
//
//	txt2png [options] -i your_list.bas
//
// Output files are output-1.png, output-2.png and so on.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/term"

	"github.com/gogpu/txt2png"
	"github.com/gogpu/txt2png/glyph"
	"github.com/gogpu/txt2png/sjis"
	"github.com/gogpu/txt2png/surface"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// config holds the parsed command line.
type config struct {
	input       string
	outDir      string
	format      string
	backend     string
	columns     int
	rows        int
	margin      int
	extraHeight int
	pc88        bool
	bold        bool
	underline   bool
	overline    bool
	utf8        bool
	halfFont    string
	fullFont    string
	exportFonts string
	version     bool
	verbose     bool
}

func newFlagSet(cfg *config, stderr io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet("txt2png", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&cfg.input, "i", "", "input file (program list or text)")
	fs.StringVar(&cfg.outDir, "o", ".", "output directory")
	fs.StringVar(&cfg.format, "format", "png", "output format: "+strings.Join(surface.Formats(), ", "))
	fs.StringVar(&cfg.backend, "backend", txt2png.DefaultBackend, "surface backend: "+strings.Join(surface.Names(), ", "))
	fs.IntVar(&cfg.columns, "max-x", txt2png.DefaultColumns, "column count")
	fs.IntVar(&cfg.rows, "max-y", txt2png.DefaultRows, "row count")
	fs.IntVar(&cfg.margin, "margin", txt2png.DefaultMargin, "margin in pixels")
	fs.IntVar(&cfg.extraHeight, "line-gap", txt2png.DefaultExtraHeight, "blank pixel rows below each text row")
	fs.BoolVar(&cfg.pc88, "8801", false, "use the 8801 font")
	fs.BoolVar(&cfg.bold, "bold", false, "use bold font")
	fs.BoolVar(&cfg.underline, "underline", false, "underline every character")
	fs.BoolVar(&cfg.overline, "overline", false, "overline every character")
	fs.BoolVar(&cfg.utf8, "utf8", false, "input is UTF-8; convert it to Shift_JIS first")
	fs.StringVar(&cfg.halfFont, "half-font", "", "half-width font image (XBM, 128x256)")
	fs.StringVar(&cfg.fullFont, "full-font", "", "full-width font image (XBM, 1504x1504)")
	fs.StringVar(&cfg.exportFonts, "export-fonts", "", "write the built-in fonts as XBM files into `dir` and exit")
	fs.BoolVar(&cfg.version, "version", false, "show version information")
	fs.BoolVar(&cfg.verbose, "v", false, "log progress to stderr")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: txt2png [options] -i your_list.bas\n\nOptions:\n")
		fs.PrintDefaults()
		fmt.Fprintf(stderr, "\nOutput files will be output-1.png, output-2.png etc.\n")
	}
	return fs
}

func run(args []string, stdout, stderr io.Writer) int {
	var cfg config
	fs := newFlagSet(&cfg, stderr)
	if len(args) == 0 {
		fs.Usage()
		return 0
	}
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 1
	}
	if fs.NArg() > 0 {
		fmt.Fprintf(stderr, "txt2png: invalid argument %q\n", fs.Arg(0))
		return 1
	}
	if cfg.version {
		fmt.Fprintf(stdout, "txt2png version %s\n", txt2png.Version)
		return 0
	}
	if cfg.verbose {
		txt2png.SetLogger(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	var err error
	if cfg.exportFonts != "" {
		err = exportFonts(cfg.exportFonts)
	} else {
		err = convert(&cfg, stdout)
	}
	if err != nil {
		fmt.Fprintf(stderr, "txt2png: %v\n", err)
		return 1
	}
	return 0
}

func convert(cfg *config, stdout io.Writer) error {
	if cfg.input == "" {
		return errors.New("no input file specified")
	}
	mime, err := surface.MIMEType(cfg.format)
	if err != nil {
		return err
	}
	opts, err := cfg.options()
	if err != nil {
		return err
	}
	c, err := txt2png.New(opts...)
	if err != nil {
		return err
	}

	text, err := os.ReadFile(cfg.input)
	if err != nil {
		return err
	}
	if cfg.utf8 {
		if text, err = sjis.FromUTF8(string(text)); err != nil {
			return fmt.Errorf("%s: %w", cfg.input, err)
		}
	}

	progress := isTerminal(stdout)
	total, err := c.Convert(text, func(page int, s surface.Surface) error {
		name := fileName(page, cfg.format)
		if err := surface.Save(s, filepath.Join(cfg.outDir, name), mime); err != nil {
			return err
		}
		txt2png.Logger().Info("wrote page", "file", name)
		if progress {
			fmt.Fprintf(stdout, "Generated %s.\n", name)
		}
		return nil
	})
	if err != nil {
		return err
	}
	fmt.Fprintf(stdout, "total %d pages\n", total)
	return nil
}

// options maps the command line onto converter options.
func (cfg *config) options() ([]txt2png.Option, error) {
	style := glyph.StylePC98
	if cfg.pc88 {
		style = glyph.StylePC88
	}
	half, err := loadFont(cfg.halfFont)
	if err != nil {
		return nil, err
	}
	full, err := loadFont(cfg.fullFont)
	if err != nil {
		return nil, err
	}
	return []txt2png.Option{
		txt2png.WithColumns(cfg.columns),
		txt2png.WithRows(cfg.rows),
		txt2png.WithMargin(cfg.margin),
		txt2png.WithExtraHeight(cfg.extraHeight),
		txt2png.WithStyle(style),
		txt2png.WithBold(cfg.bold),
		txt2png.WithUnderline(cfg.underline),
		txt2png.WithOverline(cfg.overline),
		txt2png.WithBackend(cfg.backend),
		txt2png.WithAtlases(half, full),
	}, nil
}

// fileName returns output-<page>.<format>.
func fileName(page int, format string) string {
	name := txt2png.OutputName(page)
	if format == "png" {
		return name
	}
	return strings.TrimSuffix(name, ".png") + "." + strings.ToLower(format)
}

func loadFont(path string) (*glyph.Atlas, error) {
	if path == "" {
		return nil, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	a, err := glyph.ParseXBM(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return a, nil
}

func exportFonts(dir string) error {
	fonts := []struct {
		name  string
		atlas *glyph.Atlas
	}{
		{"pc98", glyph.HalfWidth(glyph.StylePC98)},
		{"pc88", glyph.HalfWidth(glyph.StylePC88)},
		{"kanji", glyph.FullWidth()},
	}
	for _, f := range fonts {
		if err := writeFont(filepath.Join(dir, f.name+".xbm"), f.name, f.atlas); err != nil {
			return err
		}
	}
	return nil
}

func writeFont(path, name string, a *glyph.Atlas) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return glyph.WriteXBM(f, name, a)
}

// isTerminal reports whether w is a terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
