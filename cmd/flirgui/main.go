// Copyright 2021 Nick White.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

// flirgui is a graphical version of flirenhance, which asks for a
// thermal image to enhance, shows the result, and offers to save it.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"rescribe.xyz/flirenhance/internal/pipeline"
)

const usage = `Usage: flirgui [-v]

Choose a thermal (FLIR) image, enhance it, and optionally save the
result.
`

func main() {
	verbose := flag.Bool("v", false, "verbose")

	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), usage)
		flag.PrintDefaults()
	}
	flag.Parse()

	var verboselog *log.Logger
	if *verbose {
		verboselog = log.New(os.Stdout, "", 0)
	} else {
		var n pipeline.NullWriter
		verboselog = log.New(n, "", 0)
	}

	startGui(verboselog)
}
