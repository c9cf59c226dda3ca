// Copyright 2023 Nick White.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

package flirenhance

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

func TestReport(t *testing.T) {
	img := noise(64, 48, 13)
	r, err := EnhanceAll(img)
	if err != nil {
		t.Fatalf("Error enhancing image: %v", err)
	}

	var graph bytes.Buffer
	err = Graph(r, "noise", &graph)
	if err != nil {
		t.Fatalf("Error creating graph: %v", err)
	}

	var p Fpdf
	err = p.Setup()
	if err != nil {
		t.Fatalf("Error setting up PDF: %v", err)
	}
	err = p.Report(r, img)
	if err != nil {
		t.Fatalf("Error adding report pages: %v", err)
	}
	err = p.AddGraph("Histogram", graph.Bytes())
	if err != nil {
		t.Fatalf("Error adding graph: %v", err)
	}
	if p.images != 6 {
		t.Fatalf("Expected 6 images in report, got %d", p.images)
	}

	path := filepath.Join(t.TempDir(), "report.pdf")
	err = p.Save(path)
	if err != nil {
		t.Fatalf("Error saving PDF: %v", err)
	}
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Could not read %s: %v", path, err)
	}
	if !bytes.HasPrefix(b, []byte("%PDF-")) {
		t.Fatalf("Saved report is not a PDF")
	}
}

func TestAddGraphInvalid(t *testing.T) {
	var p Fpdf
	err := p.Setup()
	if err != nil {
		t.Fatalf("Error setting up PDF: %v", err)
	}
	err = p.AddGraph("broken", []byte("not a png"))
	if err == nil {
		t.Fatalf("Expected an error adding an invalid graph")
	}
}
