// Copyright 2019 Nick White.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

package flirenhance

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"io"

	"github.com/nickjwhite/gofpdf"
)

const pageWidth = 5 // pageWidth in inches
const captionHeight = 24

// pxToPt converts a pixel value into a pt value (72 pts per inch)
// This uses pageWidth to determine the appropriate value
func pxToPt(i int) float64 {
	return float64(i) / pageWidth
}

// Fpdf is a report showing an image at each stage of enhancement
type Fpdf struct {
	fpdf   *gofpdf.Fpdf
	images int
}

// Setup creates a new PDF with appropriate settings and fonts
func (p *Fpdf) Setup() error {
	p.fpdf = gofpdf.New("P", "pt", "A4", "")
	p.fpdf.SetFont("Helvetica", "", 10)
	p.fpdf.SetAutoPageBreak(false, float64(0))
	return p.fpdf.Error()
}

// AddImage adds a page to the pdf with an image and a caption
// above it. The page is sized to fit the image.
func (p *Fpdf) AddImage(caption string, img image.Image) error {
	var buf bytes.Buffer
	err := png.Encode(&buf, img)
	if err != nil {
		return fmt.Errorf("Could not encode image for %s: %v", caption, err)
	}
	return p.addPNG(caption, img.Bounds(), &buf)
}

// AddGraph adds a page to the pdf with an already rendered PNG,
// such as a graph made by Graph
func (p *Fpdf) AddGraph(caption string, graph []byte) error {
	cfg, err := png.DecodeConfig(bytes.NewReader(graph))
	if err != nil {
		return fmt.Errorf("Could not read graph for %s: %v", caption, err)
	}
	return p.addPNG(caption, image.Rect(0, 0, cfg.Width, cfg.Height), bytes.NewReader(graph))
}

func (p *Fpdf) addPNG(caption string, b image.Rectangle, r io.Reader) error {
	p.images++
	name := fmt.Sprintf("img%d", p.images)
	w, h := pxToPt(b.Dx()), pxToPt(b.Dy())

	p.fpdf.AddPageFormat("P", gofpdf.SizeType{Wd: w, Ht: h + captionHeight})
	p.fpdf.SetXY(0, 0)
	p.fpdf.CellFormat(w, captionHeight, caption, "", 0, "C", false, 0, "")

	opts := gofpdf.ImageOptions{ImageType: "PNG"}
	_ = p.fpdf.RegisterImageOptionsReader(name, opts, r)
	p.fpdf.ImageOptions(name, 0, captionHeight, w, h, false, opts, 0, "")

	return p.fpdf.Error()
}

// Report adds a page for each stage of a pipeline result
func (p *Fpdf) Report(r Result, orig *image.Gray) error {
	pages := []struct {
		caption string
		img     *image.Gray
	}{
		{"Original", orig},
		{"Adaptive median filter", r.Filtered},
		{fmt.Sprintf("Plateau histogram (threshold %d)", r.Threshold), r.Enhanced},
		{"Edge sharpening", r.Sharpened},
		{"Palette optimisation", r.Output},
	}
	for _, pg := range pages {
		if pg.img == nil {
			continue
		}
		err := p.AddImage(pg.caption, pg.img)
		if err != nil {
			return err
		}
	}
	return nil
}

// Save saves the PDF to the file at path
func (p *Fpdf) Save(path string) error {
	return p.fpdf.OutputFileAndClose(path)
}
