// Copyright 2023 Nick White.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

package flirenhance

import (
	"errors"
	"image"
	"testing"
)

func TestEnhanceUniform(t *testing.T) {
	img := uniform(5, 5, 128)
	r, err := EnhanceAll(img)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	border := func(v, inner uint8) *image.Gray {
		return fromRows([][]uint8{
			{v, v, v, v, v},
			{v, inner, inner, inner, v},
			{v, inner, inner, inner, v},
			{v, inner, inner, inner, v},
			{v, v, v, v, v},
		})
	}

	if !imgsequal(r.Filtered, border(0, 128)) {
		t.Errorf("Unexpected filtered image %v", r.Filtered.Pix)
	}
	if r.Hist[0] != 16 || r.Hist[128] != 9 {
		t.Errorf("Expected histogram of 16 at 0 and 9 at 128, got %d and %d", r.Hist[0], r.Hist[128])
	}
	if r.Threshold != 64 {
		t.Errorf("Expected threshold 64, got %d", r.Threshold)
	}
	if r.Clipped != r.Hist {
		t.Errorf("Expected no bins to be clipped")
	}
	for i, v := range r.Table {
		want := uint8(255 * 16 / 25)
		if i >= 128 {
			want = 255
		}
		if v != want {
			t.Fatalf("Expected table[%d] to be %d, got %d", i, want, v)
		}
	}
	if !imgsequal(r.Enhanced, border(163, 255)) {
		t.Errorf("Unexpected enhanced image %v", r.Enhanced.Pix)
	}
	if !imgsequal(r.Sharpened, border(163, 255)) {
		t.Errorf("Unexpected sharpened image %v", r.Sharpened.Pix)
	}
	if !imgsequal(r.Output, border(92, 0)) {
		t.Errorf("Unexpected output image %v", r.Output.Pix)
	}

	out, err := Enhance(img)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !imgsequal(out, r.Output) {
		t.Errorf("Enhance and EnhanceAll differ")
	}
}

func TestEnhanceStages(t *testing.T) {
	for seed := int64(10); seed < 14; seed++ {
		img := noise(37, 29, seed)
		r, err := EnhanceAll(img)
		if err != nil {
			t.Fatalf("Seed %d: unexpected error: %v", seed, err)
		}
		for _, s := range []*image.Gray{r.Filtered, r.Enhanced, r.Sharpened, r.Output} {
			if !s.Bounds().Eq(img.Bounds()) {
				t.Fatalf("Seed %d: stage bounds %v differ to %v", seed, s.Bounds(), img.Bounds())
			}
		}
		if !imgsequal(r.Filtered, AdaptiveMedian(img)) {
			t.Fatalf("Seed %d: filtered image differs", seed)
		}
		if !imgsequal(r.Enhanced, Remap(r.Filtered, r.Table)) {
			t.Fatalf("Seed %d: enhanced image differs", seed)
		}
		if !imgsequal(r.Sharpened, Sharpen(r.Enhanced)) {
			t.Fatalf("Seed %d: sharpened image differs", seed)
		}
		if !imgsequal(r.Output, Invert(r.Sharpened)) {
			t.Fatalf("Seed %d: output image differs", seed)
		}
	}
}

func TestEnhanceErrors(t *testing.T) {
	cases := []struct {
		name string
		img  *image.Gray
		err  error
	}{
		{"empty", image.NewGray(image.Rect(0, 0, 0, 0)), ErrEmptyImage},
		{"nowidth", image.NewGray(image.Rect(0, 0, 0, 10)), ErrEmptyImage},
		{"black", uniform(6, 6, 0), ErrFlatHistogram},
		{"tiny", uniform(2, 2, 90), ErrFlatHistogram},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			out, err := Enhance(c.img)
			if !errors.Is(err, c.err) {
				t.Fatalf("Expected %v, got %v", c.err, err)
			}
			if out != nil {
				t.Fatalf("Expected no output image on error")
			}
		})
	}
}
