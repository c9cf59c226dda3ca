// Copyright 2023 Nick White.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

// flirenhance improves the contrast and sharpness of a thermal
// (FLIR) image.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"rescribe.xyz/flirenhance"
	"rescribe.xyz/flirenhance/internal/pipeline"
)

const usage = `Usage: flirenhance [-v] [-g graph.png] [-r report.pdf] [-c conn] [-f] [-u] inimg [outimg]

Enhances a thermal (FLIR) image, converting it to grayscale and then
running an adaptive median filter, plateau histogram equalisation,
edge sharpening and palette inversion over it.

The image can be a JPEG, PNG or BMP file. If outimg is not given
it is saved next to inimg with an _enhanced suffix. If outimg has
no extension, .jpg is used.

With -f, inimg is fetched from the storage bucket set in
cloudsettings.go rather than read from the local disk, and the
output is saved in the current directory by default.

With -u, the output image, and any graph and report, are stored
in the storage bucket set in cloudsettings.go.
`

func main() {
	verbose := flag.Bool("v", false, "verbose")
	graph := flag.String("g", "", "save a graph of the image histogram to this path")
	report := flag.String("r", "", "save a PDF report showing each stage to this path")
	conntype := flag.String("c", "local", "connection type ('local' or 'aws')")
	fetch := flag.Bool("f", false, "fetch inimg from storage")
	upload := flag.Bool("u", false, "upload results to storage")

	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), usage)
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() < 1 || flag.NArg() > 2 {
		flag.Usage()
		os.Exit(1)
	}

	var verboselog *log.Logger
	if *verbose {
		verboselog = log.New(os.Stdout, "", 0)
	} else {
		var n pipeline.NullWriter
		verboselog = log.New(n, "", 0)
	}

	var conn pipeline.Storer
	switch *conntype {
	case "local":
		conn = &flirenhance.LocalConn{Logger: verboselog}
	case "aws":
		conn = &flirenhance.AwsConn{Logger: verboselog}
	default:
		log.Fatalln("Unknown connection type")
	}

	if *fetch || *upload {
		conn.Log("Setting up storage")
		err := conn.Init()
		if err != nil {
			log.Fatalln("Error setting up connection:", err)
		}
	}

	o := pipeline.Options{
		In:     flag.Arg(0),
		Out:    flag.Arg(1),
		Graph:  *graph,
		Report: *report,
		Fetch:  *fetch,
		Upload: *upload,
	}

	if !o.Fetch {
		err := pipeline.CheckImage(o.In)
		if err != nil {
			log.Fatalln(err)
		}
	}

	_, err := pipeline.Run(conn, o)
	if err != nil {
		log.Fatalln(err)
	}
}
