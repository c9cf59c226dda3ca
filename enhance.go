// Copyright 2023 Nick White.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

package flirenhance

import (
	"errors"
	"fmt"
	"image"
)

// ErrEmptyImage is returned when an image with no pixels is given
// to the pipeline
var ErrEmptyImage = errors.New("image has no pixels")

// Result holds the output of each stage of the pipeline, along
// with the histogram data used to enhance the contrast
type Result struct {
	Filtered, Enhanced, Sharpened, Output *image.Gray

	Hist, Clipped [256]int
	Threshold     int
	Table         [256]uint8
}

// EnhanceAll runs the full enhancement pipeline on an image,
// keeping every intermediate image. Either all four stages complete
// or an error is returned before the first one is started.
func EnhanceAll(img *image.Gray) (Result, error) {
	var r Result

	if img.Bounds().Empty() {
		return r, ErrEmptyImage
	}

	r.Filtered = AdaptiveMedian(img)

	r.Hist = Histogram(r.Filtered)
	r.Threshold = PlateauThreshold(r.Hist)
	r.Clipped = Clip(r.Hist, r.Threshold)
	table, err := Table(r.Clipped)
	if err != nil {
		return Result{}, fmt.Errorf("Error building plateau histogram table: %w", err)
	}
	r.Table = table
	r.Enhanced = Remap(r.Filtered, r.Table)

	r.Sharpened = Sharpen(r.Enhanced)
	r.Output = Invert(r.Sharpened)

	return r, nil
}

// Enhance runs the full enhancement pipeline on an image; adaptive
// median filtering, plateau histogram equalisation, edge sharpening
// and palette inversion.
func Enhance(img *image.Gray) (*image.Gray, error) {
	r, err := EnhanceAll(img)
	if err != nil {
		return nil, err
	}
	return r.Output, nil
}
