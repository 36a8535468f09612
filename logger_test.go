package txt2png

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"sync"
	"testing"
)

func TestNopHandler(t *testing.T) {
	var h slog.Handler = nopHandler{}
	for _, level := range []slog.Level{slog.LevelDebug, slog.LevelInfo, slog.LevelWarn, slog.LevelError} {
		if h.Enabled(context.Background(), level) {
			t.Errorf("Enabled(%v) = true, want false", level)
		}
	}
	if err := h.Handle(context.Background(), slog.Record{}); err != nil {
		t.Errorf("Handle() = %v, want nil", err)
	}
	if _, ok := h.WithAttrs([]slog.Attr{slog.Int("page", 1)}).(nopHandler); !ok {
		t.Error("WithAttrs() did not stay a nopHandler")
	}
	if _, ok := h.WithGroup("layout").(nopHandler); !ok {
		t.Error("WithGroup() did not stay a nopHandler")
	}
}

// captureLogs routes the package logger into a buffer for one test.
func captureLogs(t *testing.T, level slog.Level) *bytes.Buffer {
	t.Helper()
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: level})))
	return &buf
}

func TestCountPagesWarnsOnFlushedLeads(t *testing.T) {
	buf := captureLogs(t, slog.LevelWarn)
	c := newTestConverter(t)

	// Two lead bytes followed by bytes that cannot be trail bytes.
	c.CountPages([]byte{0x82, '\n', 0x88})

	out := buf.String()
	if !strings.Contains(out, "level=WARN") || !strings.Contains(out, "count=2") {
		t.Errorf("log output = %q, want a warning with count=2", out)
	}
	if strings.Contains(out, "counted pages") {
		t.Error("debug record written at warn level")
	}
}

func TestCountPagesCleanInputDoesNotWarn(t *testing.T) {
	buf := captureLogs(t, slog.LevelWarn)
	c := newTestConverter(t)
	c.CountPages([]byte{'A', 0x82, 0xA0})
	if buf.Len() != 0 {
		t.Errorf("log output = %q, want none", buf.String())
	}
}

func TestRenderPageDebugRecord(t *testing.T) {
	buf := captureLogs(t, slog.LevelDebug)
	c := newTestConverter(t)
	s, err := c.RenderPage([]byte("ABC"), 1)
	if err != nil {
		t.Fatalf("RenderPage() error = %v", err)
	}
	_ = s.Close()
	out := buf.String()
	for _, want := range []string{"rendered page", "page=1", "glyphs=2", "stopped=true"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output lacks %q:\n%s", want, out)
		}
	}
}

func TestLoggerDefaultSilent(t *testing.T) {
	l := Logger()
	if l == nil {
		t.Fatal("Logger() returned nil")
	}
	if l.Enabled(context.Background(), slog.LevelWarn) {
		t.Error("default logger should be disabled")
	}
}

func TestSetLoggerNilRestoresSilent(t *testing.T) {
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })

	custom := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
	SetLogger(custom)
	if Logger() != custom {
		t.Error("Logger() did not return the logger set via SetLogger")
	}
	SetLogger(nil)
	if Logger().Enabled(context.Background(), slog.LevelError) {
		t.Error("SetLogger(nil) should produce a disabled logger")
	}
}

// Conversions may log while another goroutine swaps the logger.
func TestLoggerSwapDuringConversion(t *testing.T) {
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })

	c := newTestConverter(t)
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			c.CountPages([]byte{'A', 0x81})
		}()
		go func() {
			defer wg.Done()
			SetLogger(slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil)))
			SetLogger(nil)
		}()
	}
	wg.Wait()
}
