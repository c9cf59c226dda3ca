// Copyright 2020 Nick White.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

/*
The flirenhance package contains functions and tools to improve the
contrast and sharpness of thermal (FLIR) images, which are often low
contrast and noisy straight out of the camera.

Introduction

Images are processed in grayscale, as *image.Gray, by four stages
run one after the other:

  1. An adaptive median filter (AdaptiveMedian)
  2. Plateau histogram equalisation (PlateauEqualise)
  3. Edge sharpening with an unsharp mask (Sharpen)
  4. Palette inversion (Invert)

Each stage creates a new image of the same size, and leaves its
input alone. Enhance runs the whole pipeline, and EnhanceAll does
the same while keeping every intermediate image and the histogram
data, which can be graphed with Graph or put into a PDF report with
Fpdf.

Presuming you have the go tools installed, you can install the
tools with this command:
  go install rescribe.xyz/flirenhance/cmd/...

Adaptive median filter

Each pixel which isn't on the edge of the image is compared with
the 3x3 window around it, and replaced with the median of that
window if it is outside the window's range. The pixels around the
edge of the image are set to black.

Plateau histogram equalisation

A histogram of the filtered image is made, and the plateau
threshold is set to half the sum of the intensities of every peak
in it (ignoring the first and last bins). Every bin is clipped to
the threshold, and the cumulative sum of the clipped histogram,
scaled to 0-255, is used as a table to remap each pixel. This
stretches the contrast without letting a large area of a single
temperature, like the sky, take over the whole range.

An image which has no peaks can't be equalised, and gives
ErrFlatHistogram.

Edge sharpening

The image is blurred with a 5x5 gaussian kernel, the blurred image
is subtracted from the original, and the difference is added back
to the original. All arithmetic saturates at 0 and 255.

Palette inversion

Each pixel is flipped, so v becomes 255-v.

Tools

flirenhance enhances an image from the command line:
  flirenhance -g graph.png -r report.pdf flir0001.jpg

flirgui does the same thing graphically, asking for the image to
process, showing the result, and offering to save it.

Both can be run with '-h' to show their options.

Storage

Results can be stored with either LocalConn, which copies them into
a local directory, or AwsConn, which uploads them to S3. The bucket
name and AWS region are set in cloudsettings.go.
*/
package flirenhance
