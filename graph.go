// Copyright 2019 Nick White.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

package flirenhance

import (
	"fmt"
	"io"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

const xtickevery = 16

// createLine creates a horizontal line with a particular y value for
// a graph
func createLine(xvalues []float64, y float64, c drawing.Color) chart.ContinuousSeries {
	var yvalues []float64
	for range xvalues {
		yvalues = append(yvalues, y)
	}
	return chart.ContinuousSeries{
		Name:    fmt.Sprintf("Plateau threshold (%.0f)", y),
		XValues: xvalues,
		YValues: yvalues,
		Style: chart.Style{
			StrokeColor:     c,
			StrokeDashArray: []float64{5.0, 5.0},
		},
	}
}

// Graph creates a graph of the histogram of the filtered image, how
// it was clipped, and the remap table built from it
func Graph(r Result, title string, w io.Writer) error {
	var xvalues, histvalues, clippedvalues, tablevalues []float64
	var ticks []chart.Tick
	maxcount := float64(r.Threshold)

	for i := 0; i < 256; i++ {
		xvalues = append(xvalues, float64(i))
		histvalues = append(histvalues, float64(r.Hist[i]))
		clippedvalues = append(clippedvalues, float64(r.Clipped[i]))
		tablevalues = append(tablevalues, float64(r.Table[i]))
		if float64(r.Hist[i]) > maxcount {
			maxcount = float64(r.Hist[i])
		}
		if i%xtickevery == 0 {
			ticks = append(ticks, chart.Tick{Value: float64(i), Label: fmt.Sprintf("%d", i)})
		}
	}
	ticks = append(ticks, chart.Tick{Value: 255, Label: "255"})

	// a flat range can't be drawn
	if maxcount == 0 {
		maxcount = 1
	}

	histSeries := chart.ContinuousSeries{
		Name: "Histogram",
		Style: chart.Style{
			StrokeColor: chart.ColorBlue,
			FillColor:   chart.ColorAlternateBlue,
		},
		XValues: xvalues,
		YValues: histvalues,
	}

	clippedSeries := chart.ContinuousSeries{
		Name: "Clipped histogram",
		Style: chart.Style{
			StrokeColor: chart.ColorOrange,
		},
		XValues: xvalues,
		YValues: clippedvalues,
	}

	tableSeries := chart.ContinuousSeries{
		Name:  "Remap table",
		YAxis: chart.YAxisSecondary,
		Style: chart.Style{
			StrokeColor: chart.ColorAlternateGreen,
			StrokeWidth: 3,
		},
		XValues: xvalues,
		YValues: tablevalues,
	}

	thresholdSeries := createLine(xvalues, float64(r.Threshold), chart.ColorRed)

	graph := chart.Chart{
		Title:  title,
		Width:  1920,
		Height: 1080,
		Background: chart.Style{
			Padding: chart.Box{Top: 50, Left: 20, Right: 20, Bottom: 20},
		},
		XAxis: chart.XAxis{
			Name: "Intensity",
			Range: &chart.ContinuousRange{
				Min: 0.0,
				Max: 255.0,
			},
			Ticks: ticks,
		},
		YAxis: chart.YAxis{
			Name: "Pixels",
			Range: &chart.ContinuousRange{
				Min: 0.0,
				Max: maxcount,
			},
		},
		YAxisSecondary: chart.YAxis{
			Name: "Output intensity",
			Range: &chart.ContinuousRange{
				Min: 0.0,
				Max: 255.0,
			},
		},
		Series: []chart.Series{
			histSeries,
			clippedSeries,
			thresholdSeries,
			tableSeries,
		},
	}
	graph.Elements = []chart.Renderable{chart.Legend(&graph)}

	return graph.Render(chart.PNG, w)
}
