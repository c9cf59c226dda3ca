// Copyright 2023 Nick White.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

package flirenhance

import (
	"image"
	"testing"
)

func TestInvert(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 16, 16))
	for i := range img.Pix {
		img.Pix[i] = uint8(i)
	}

	inv := Invert(img)
	for i := range img.Pix {
		if inv.Pix[i] != 255-img.Pix[i] {
			t.Fatalf("Expected %d to invert to %d, got %d", img.Pix[i], 255-img.Pix[i], inv.Pix[i])
		}
	}

	if !imgsequal(img, Invert(inv)) {
		t.Fatalf("Inverting twice did not give the original image")
	}
}

func FuzzInvert(f *testing.F) {
	f.Add([]byte{0, 1, 127, 128, 254, 255})

	f.Fuzz(func(t *testing.T, pix []byte) {
		img := image.NewGray(image.Rect(0, 0, len(pix), 1))
		copy(img.Pix, pix)
		if !imgsequal(img, Invert(Invert(img))) {
			t.Fatalf("Inverting twice changed %v", pix)
		}
	})
}
