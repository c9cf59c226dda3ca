// Copyright 2023 Nick White.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

package flirenhance

import (
	"image"
)

// gaussianTaps is the 5 tap gaussian kernel used when the sigma is
// derived from the kernel size (0.3*((5-1)*0.5-1)+0.8 = 1.1), in
// sixteenths. It is applied horizontally and then vertically, so a
// full 2D sum is in 256ths.
var gaussianTaps = [5]int{1, 4, 6, 4, 1}

// reflect101 maps an out of range index back into 0..n-1, mirroring
// around the edge pixel without repeating it (dcb|abcd|cba).
func reflect101(i int, n int) int {
	if n == 1 {
		return 0
	}
	for i < 0 || i >= n {
		if i < 0 {
			i = -i
		}
		if i >= n {
			i = 2*(n-1) - i
		}
	}
	return i
}

// GaussianBlur blurs an image with a 5x5 gaussian kernel
func GaussianBlur(img *image.Gray) *image.Gray {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	new := image.NewGray(b)
	if w == 0 || h == 0 {
		return new
	}

	step := len(gaussianTaps) / 2

	// horizontal pass, kept unnormalised to avoid rounding twice
	rows := make([]int, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			sum := 0
			for k, t := range gaussianTaps {
				xi := reflect101(x+k-step, w)
				sum += t * int(img.GrayAt(b.Min.X+xi, b.Min.Y+y).Y)
			}
			rows[y*w+x] = sum
		}
	}

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			sum := 0
			for k, t := range gaussianTaps {
				yi := reflect101(y+k-step, h)
				sum += t * rows[yi*w+x]
			}
			new.Pix[new.PixOffset(b.Min.X+x, b.Min.Y+y)] = uint8((sum + 128) >> 8)
		}
	}

	return new
}

// SubSat subtracts each pixel of b from a, stopping at 0
func SubSat(a *image.Gray, b *image.Gray) *image.Gray {
	r := a.Bounds()
	new := image.NewGray(r)
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			v0, v1 := a.GrayAt(x, y).Y, b.GrayAt(x, y).Y
			if v1 < v0 {
				new.Pix[new.PixOffset(x, y)] = v0 - v1
			}
		}
	}
	return new
}

// AddSat adds each pixel of b to a, stopping at 255
func AddSat(a *image.Gray, b *image.Gray) *image.Gray {
	r := a.Bounds()
	new := image.NewGray(r)
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			sum := int(a.GrayAt(x, y).Y) + int(b.GrayAt(x, y).Y)
			if sum > 255 {
				sum = 255
			}
			new.Pix[new.PixOffset(x, y)] = uint8(sum)
		}
	}
	return new
}

// Sharpen sharpens edges in an image with an unsharp mask; the
// difference between the image and a blurred copy is added back
// to the image.
func Sharpen(img *image.Gray) *image.Gray {
	blurred := GaussianBlur(img)
	return AddSat(img, SubSat(img, blurred))
}
