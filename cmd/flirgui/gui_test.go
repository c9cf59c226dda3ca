// Copyright 2022 Nick White.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"log"
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/storage"

	"rescribe.xyz/flirenhance/internal/pipeline"
)

func TestPreviewSize(t *testing.T) {
	cases := []struct {
		w, h   int
		pw, ph float32
	}{
		{320, 240, 320, 240},
		{1024, 768, 1024, 768},
		{2048, 768, 1024, 384},
		{640, 1536, 320, 768},
		{4096, 4096, 768, 768},
	}

	for _, c := range cases {
		t.Run(fmt.Sprintf("%dx%d", c.w, c.h), func(t *testing.T) {
			got := previewSize(image.Rect(0, 0, c.w, c.h))
			want := fyne.NewSize(c.pw, c.ph)
			if got != want {
				t.Fatalf("Expected %v, got %v", want, got)
			}
		})
	}
}

// uriReader is a fyne.URIReadCloser reading from memory
type uriReader struct {
	io.Reader
	uri    fyne.URI
	closed bool
}

func (r *uriReader) Close() error {
	r.closed = true
	return nil
}

func (r *uriReader) URI() fyne.URI {
	return r.uri
}

func TestEnhanceFile(t *testing.T) {
	var n pipeline.NullWriter
	logger := log.New(n, "", 0)

	img := image.NewGray(image.Rect(0, 0, 20, 10))
	for y := 0; y < 10; y++ {
		for x := 0; x < 20; x++ {
			img.SetGray(x, y, color.Gray{uint8(x * 10)})
		}
	}
	var buf bytes.Buffer
	err := png.Encode(&buf, img)
	if err != nil {
		t.Fatalf("Could not encode test image: %v", err)
	}

	cases := []struct {
		name string
		data []byte
		ok   bool
	}{
		{"good", buf.Bytes(), true},
		{"garbage", []byte("not an image"), false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			r := &uriReader{Reader: bytes.NewReader(c.data), uri: storage.NewFileURI("/tmp/" + c.name + ".png")}
			out, err := enhanceFile(logger, r)
			if !r.closed {
				t.Errorf("Reader was not closed")
			}
			if c.ok && err != nil {
				t.Fatalf("Expected no error, got %v", err)
			}
			if !c.ok {
				if err == nil {
					t.Fatalf("Expected an error, got none")
				}
				return
			}
			if !out.Bounds().Eq(img.Bounds()) {
				t.Fatalf("Expected bounds %v, got %v", img.Bounds(), out.Bounds())
			}
		})
	}
}
