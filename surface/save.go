// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// Supported MIME types.
const (
	MIMEPNG  = "image/png"
	MIMEBMP  = "image/bmp"
	MIMETIFF = "image/tiff"
)

// Encoder writes an image in one file format.
type Encoder func(w io.Writer, img image.Image) error

var encoders = map[string]Encoder{
	MIMEPNG: func(w io.Writer, img image.Image) error {
		e := png.Encoder{CompressionLevel: png.BestCompression}
		return e.Encode(w, img)
	},
	MIMEBMP: bmp.Encode,
	MIMETIFF: func(w io.Writer, img image.Image) error {
		return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	},
}

var formatNames = map[string]string{
	"png":  MIMEPNG,
	"bmp":  MIMEBMP,
	"tiff": MIMETIFF,
	"tif":  MIMETIFF,
}

// UnknownFormatError is returned for a MIME type or format name with no
// encoder.
type UnknownFormatError struct {
	Format string
}

func (e *UnknownFormatError) Error() string {
	return "surface: unknown image format: " + e.Format
}

// EncoderFor returns the encoder for a MIME type.
func EncoderFor(mime string) (Encoder, error) {
	enc, ok := encoders[mime]
	if !ok {
		return nil, &UnknownFormatError{Format: mime}
	}
	return enc, nil
}

// MIMEType maps a short format name such as "png" or "tiff" to its MIME
// type.
func MIMEType(format string) (string, error) {
	mime, ok := formatNames[strings.ToLower(format)]
	if !ok {
		return "", &UnknownFormatError{Format: format}
	}
	return mime, nil
}

// Formats returns the supported short format names, sorted.
func Formats() []string {
	names := make([]string, 0, len(formatNames))
	for n := range formatNames {
		names = append(names, n)
	}
	slices.Sort(names)
	return names
}

// Encode writes the contents of s to w.
func Encode(w io.Writer, s Surface, mime string) error {
	enc, err := EncoderFor(mime)
	if err != nil {
		return err
	}
	return enc(w, s.Snapshot())
}

// Save writes the contents of s to path. The image is written to a
// temporary file in the same directory and renamed into place.
func Save(s Surface, path, mime string) (err error) {
	enc, err := EncoderFor(mime)
	if err != nil {
		return err
	}

	f, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("surface: save %s: %w", path, err)
	}
	tmp := f.Name()
	defer func() {
		if err != nil {
			_ = os.Remove(tmp)
		}
	}()

	if err = enc(f, s.Snapshot()); err != nil {
		_ = f.Close()
		return fmt.Errorf("surface: encode %s: %w", path, err)
	}
	if err = f.Close(); err != nil {
		return fmt.Errorf("surface: save %s: %w", path, err)
	}
	if err = os.Chmod(tmp, 0o644); err != nil {
		return fmt.Errorf("surface: save %s: %w", path, err)
	}
	if err = os.Rename(tmp, path); err != nil {
		return fmt.Errorf("surface: save %s: %w", path, err)
	}
	return nil
}
