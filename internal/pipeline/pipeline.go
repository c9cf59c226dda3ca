// Copyright 2020 Nick White.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

// pipeline is a package used by the flirenhance commands, which
// handles loading an image, running it through the enhancement
// stages, and saving and storing the results. Note that it is
// considered an "internal" package, not intended for external use,
// and no guarantee is made of the stability of any interfaces
// provided.
package pipeline

import (
	"bytes"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strings"

	"rescribe.xyz/flirenhance"
)

// null writer to enable non-verbose logging to be discarded
type NullWriter bool

func (w NullWriter) Write(p []byte) (n int, err error) {
	return len(p), nil
}

type Storer interface {
	Download(bucket string, key string, path string) error
	Init() error
	Log(v ...interface{})
	StorageId() string
	Upload(bucket string, key string, path string) error
}

// Options control what Run reads and writes. Graph and Report are
// only written if set. If Fetch is set, In is a key in the storage
// bucket rather than a local path.
type Options struct {
	In, Out       string
	Graph, Report string
	Fetch, Upload bool
}

// OutPath returns the default output path for an input image, which
// is the input path with "_enhanced" and DefaultExt in place of its
// extension
func OutPath(in string) string {
	base := strings.TrimSuffix(in, filepath.Ext(in))
	return base + "_enhanced" + flirenhance.DefaultExt
}

// CheckImage checks that a file has a supported image extension and
// that it can be decoded
func CheckImage(path string) error {
	lsuffix := strings.ToLower(filepath.Ext(path))
	ok := false
	for _, e := range flirenhance.ImageExts {
		if lsuffix == e {
			ok = true
		}
	}
	if !ok {
		return fmt.Errorf("%s is not a supported image type, need one of %s", path, strings.Join(flirenhance.ImageExts, " "))
	}
	_, err := flirenhance.Load(path)
	if err != nil {
		return fmt.Errorf("Decoding image %s failed: %v", path, err)
	}
	return nil
}

// Run loads the image at o.In, enhances it, and saves it to o.Out,
// along with the graph and report if requested. If o.Upload is set
// each file written is also uploaded to the storage of conn, under
// a prefix named after the input image.
func Run(conn Storer, o Options) (flirenhance.Result, error) {
	var r flirenhance.Result

	if o.Out == "" && o.Fetch {
		o.Out = OutPath(filepath.Base(o.In))
	} else if o.Out == "" {
		o.Out = OutPath(o.In)
	}

	inpath := o.In
	if o.Fetch {
		dir, err := os.MkdirTemp("", "flirenhance")
		if err != nil {
			return r, fmt.Errorf("Error creating temporary directory: %v", err)
		}
		defer os.RemoveAll(dir)
		inpath = filepath.Join(dir, filepath.Base(o.In))
		conn.Log("Downloading", o.In)
		err = conn.Download(conn.StorageId(), o.In, inpath)
		if err != nil {
			return r, fmt.Errorf("Error downloading %s: %v", o.In, err)
		}
	}

	conn.Log("Loading", inpath)
	img, err := flirenhance.Load(inpath)
	if err != nil {
		return r, err
	}
	b := img.Bounds()
	conn.Log(fmt.Sprintf("Enhancing %dx%d image", b.Dx(), b.Dy()))
	r, err = flirenhance.EnhanceAll(img)
	if err != nil {
		return r, fmt.Errorf("Error enhancing %s: %w", o.In, err)
	}
	conn.Log("Plateau threshold", r.Threshold)

	var written []string
	out, err := flirenhance.Save(r.Output, o.Out)
	if err != nil {
		return r, err
	}
	conn.Log("Saved", out)
	written = append(written, out)

	if o.Graph != "" {
		err = writeGraph(r, filepath.Base(o.In), o.Graph)
		if err != nil {
			return r, err
		}
		conn.Log("Saved graph", o.Graph)
		written = append(written, o.Graph)
	}

	if o.Report != "" {
		err = writeReport(r, img, filepath.Base(o.In), o.Report)
		if err != nil {
			return r, err
		}
		conn.Log("Saved report", o.Report)
		written = append(written, o.Report)
	}

	if !o.Upload {
		return r, nil
	}

	prefix := strings.TrimSuffix(filepath.Base(o.In), filepath.Ext(o.In))
	for _, path := range written {
		key := prefix + "/" + filepath.Base(path)
		conn.Log("Uploading", key)
		err = conn.Upload(conn.StorageId(), key, path)
		if err != nil {
			return r, fmt.Errorf("Error uploading %s: %v", path, err)
		}
	}

	return r, nil
}

func writeGraph(r flirenhance.Result, title string, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("Could not create file %s: %v", path, err)
	}
	err = flirenhance.Graph(r, title, f)
	if err != nil {
		f.Close()
		return fmt.Errorf("Error rendering graph: %v", err)
	}
	return f.Close()
}

func writeReport(r flirenhance.Result, orig *image.Gray, title string, path string) error {
	var p flirenhance.Fpdf
	err := p.Setup()
	if err != nil {
		return fmt.Errorf("Error setting up PDF: %v", err)
	}
	err = p.Report(r, orig)
	if err != nil {
		return fmt.Errorf("Error adding pages to PDF: %v", err)
	}

	var graph bytes.Buffer
	err = flirenhance.Graph(r, title, &graph)
	if err != nil {
		return fmt.Errorf("Error rendering graph: %v", err)
	}
	err = p.AddGraph("Histogram of "+title, graph.Bytes())
	if err != nil {
		return fmt.Errorf("Error adding graph to PDF: %v", err)
	}

	err = p.Save(path)
	if err != nil {
		return fmt.Errorf("Error saving PDF %s: %v", path, err)
	}
	return nil
}
