// Copyright 2023 Nick White.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

package flirenhance

import (
	"image"
)

// Invert flips the palette of an image, so hot areas which were
// white become black and vice versa
func Invert(img *image.Gray) *image.Gray {
	b := img.Bounds()
	new := image.NewGray(b)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			new.Pix[new.PixOffset(x, y)] = ^img.GrayAt(x, y).Y
		}
	}
	return new
}
