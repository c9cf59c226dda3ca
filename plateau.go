// Copyright 2023 Nick White.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

package flirenhance

import (
	"errors"
	"image"
)

// ErrFlatHistogram is returned when the plateau-clipped histogram
// of an image sums to zero, so no remap table can be made from it.
// This happens for empty images, and for images with no histogram
// peaks between 1 and 254, such as an all black image.
var ErrFlatHistogram = errors.New("plateau histogram is empty")

// Histogram counts the number of pixels at each intensity
func Histogram(img *image.Gray) [256]int {
	var hist [256]int
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			hist[img.GrayAt(x, y).Y]++
		}
	}
	return hist
}

// PlateauThreshold finds the plateau level for a histogram, which
// is half the sum of the intensities of each local peak. Only bins
// 1 to 254 are considered, as the end bins lack a neighbour.
func PlateauThreshold(hist [256]int) int {
	threshold := 0
	for i := 1; i < 255; i++ {
		if hist[i-1] < hist[i] && hist[i] > hist[i+1] {
			threshold += i
		}
	}
	return threshold / 2
}

// Clip limits every bin of a histogram to threshold
func Clip(hist [256]int, threshold int) [256]int {
	var clipped [256]int
	for i, n := range hist {
		if n > threshold {
			clipped[i] = threshold
		} else {
			clipped[i] = n
		}
	}
	return clipped
}

// Table builds a remap table from the cumulative sum of a clipped
// histogram, scaled so the final bin maps to 255.
func Table(clipped [256]int) ([256]uint8, error) {
	var table [256]uint8
	var ft [256]int

	sum := 0
	for i, n := range clipped {
		sum += n
		ft[i] = sum
	}
	if ft[255] == 0 {
		return table, ErrFlatHistogram
	}

	for i := range ft {
		table[i] = uint8(255 * ft[i] / ft[255])
	}
	return table, nil
}

// PlateauTable computes the plateau histogram equalisation remap
// table for an image.
func PlateauTable(img *image.Gray) ([256]uint8, error) {
	hist := Histogram(img)
	return Table(Clip(hist, PlateauThreshold(hist)))
}

// Remap creates a new image by looking up each pixel in table
func Remap(img *image.Gray, table [256]uint8) *image.Gray {
	b := img.Bounds()
	new := image.NewGray(b)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			new.Pix[new.PixOffset(x, y)] = table[img.Pix[img.PixOffset(x, y)]]
		}
	}
	return new
}

// PlateauEqualise enhances the contrast of an image with plateau
// histogram equalisation. The table only depends on the image as a
// whole, so it is built once and then applied to every pixel.
func PlateauEqualise(img *image.Gray) (*image.Gray, error) {
	table, err := PlateauTable(img)
	if err != nil {
		return nil, err
	}
	return Remap(img, table), nil
}
