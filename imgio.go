// Copyright 2023 Nick White.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

package flirenhance

import (
	"errors"
	"fmt"
	"image"
	"image/draw"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
)

// DefaultExt is the extension used when saving to a path without one
const DefaultExt = ".jpg"

const jpegQuality = 95

// ImageExts are the image file extensions which can be read and written
var ImageExts = []string{".jpg", ".jpeg", ".png", ".bmp"}

// ErrUnknownFormat is returned when asked to save an image with an
// extension that has no encoder
var ErrUnknownFormat = errors.New("unknown image format")

// Decode reads a JPEG, PNG or BMP image and converts it to grayscale,
// with its bounds starting at 0, 0
func Decode(r io.Reader) (*image.Gray, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("Could not decode image: %v", err)
	}
	b := img.Bounds()
	gray := image.NewGray(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(gray, gray.Bounds(), img, b.Min, draw.Src)
	return gray, nil
}

// Load opens and decodes an image file as grayscale
func Load(path string) (*image.Gray, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("Could not open file %s: %v", path, err)
	}
	defer f.Close()
	return Decode(f)
}

// WithDefaultExt adds DefaultExt to a path if it has no extension
func WithDefaultExt(path string) string {
	if filepath.Ext(path) == "" {
		return path + DefaultExt
	}
	return path
}

// Encode writes an image in the format corresponding to ext, which
// should include the leading '.'
func Encode(w io.Writer, img image.Image, ext string) error {
	switch strings.ToLower(ext) {
	case ".jpg", ".jpeg":
		return jpeg.Encode(w, img, &jpeg.Options{Quality: jpegQuality})
	case ".png":
		return png.Encode(w, img)
	case ".bmp":
		return bmp.Encode(w, img)
	}
	return fmt.Errorf("Can't encode %s: %w", ext, ErrUnknownFormat)
}

// Save writes an image to path, choosing the format from the
// extension. If path has no extension DefaultExt is added. The path
// actually written to is returned.
func Save(img image.Image, path string) (string, error) {
	path = WithDefaultExt(path)
	f, err := os.Create(path)
	if err != nil {
		return path, fmt.Errorf("Could not create file %s: %v", path, err)
	}
	err = Encode(f, img, filepath.Ext(path))
	if err != nil {
		f.Close()
		_ = os.Remove(path)
		return path, fmt.Errorf("Could not encode image %s: %w", path, err)
	}
	return path, f.Close()
}
