// Copyright 2021 Nick White.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"fmt"
	"image"
	"log"
	"os"
	"path/filepath"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"

	"rescribe.xyz/flirenhance"
)

const maxPreviewW = 1024
const maxPreviewH = 768

var errNoImage = errors.New("No image selected. Exiting program.")

// previewSize scales image bounds down to fit within the maximum
// preview size, keeping the aspect ratio. Small images are shown
// at their actual size.
func previewSize(b image.Rectangle) fyne.Size {
	w, h := float32(b.Dx()), float32(b.Dy())
	scale := float32(1)
	if w*scale > maxPreviewW {
		scale = maxPreviewW / w
	}
	if h*scale > maxPreviewH {
		scale = maxPreviewH / h
	}
	return fyne.NewSize(w*scale, h*scale)
}

// fatal shows an error dialog, and quits once it is dismissed
func fatal(a fyne.App, w fyne.Window, err error) {
	d := dialog.NewError(err, w)
	d.SetOnClosed(a.Quit)
	d.Show()
}

// enhanceFile runs the pipeline over the chosen image
func enhanceFile(logger *log.Logger, r fyne.URIReadCloser) (*image.Gray, error) {
	defer r.Close()
	logger.Println("Loading", r.URI().Path())
	img, err := flirenhance.Decode(r)
	if err != nil {
		return nil, err
	}
	logger.Println("Enhancing image")
	return flirenhance.Enhance(img)
}

// save writes img to the path chosen in the save dialog, adding
// the default extension if none was given
func save(logger *log.Logger, img *image.Gray, wr fyne.URIWriteCloser) (string, error) {
	path := wr.URI().Path()
	wr.Close()
	if filepath.Ext(path) == "" {
		// the dialog already created an empty file without the extension
		_ = os.Remove(path)
	}
	logger.Println("Saving", path)
	return flirenhance.Save(img, path)
}

// askSave asks whether to save the output, and if so where
func askSave(logger *log.Logger, a fyne.App, w fyne.Window, img *image.Gray) {
	dialog.ShowConfirm("Save Image", "Do you want to save the output image?", func(yes bool) {
		if !yes {
			a.Quit()
			return
		}
		d := dialog.NewFileSave(func(wr fyne.URIWriteCloser, err error) {
			if err != nil {
				fatal(a, w, err)
				return
			}
			if wr == nil {
				a.Quit()
				return
			}
			saved, err := save(logger, img, wr)
			if err != nil {
				fatal(a, w, err)
				return
			}
			info := dialog.NewInformation("Image Saved", fmt.Sprintf("The output image has been saved as %s", saved), w)
			info.SetOnClosed(a.Quit)
			info.Show()
		}, w)
		d.SetFileName("output" + flirenhance.DefaultExt)
		d.Show()
	}, w)
}

// showPreview displays the enhanced image until a key is pressed,
// then asks about saving it
func showPreview(logger *log.Logger, a fyne.App, w fyne.Window, img *image.Gray) {
	preview := canvas.NewImageFromImage(img)
	preview.FillMode = canvas.ImageFillContain
	preview.SetMinSize(previewSize(img.Bounds()))

	label := widget.NewLabel("Press any key to continue")
	w.SetContent(container.NewBorder(nil, label, nil, nil, preview))
	w.Resize(preview.MinSize())

	w.Canvas().SetOnTypedKey(func(*fyne.KeyEvent) {
		w.Canvas().SetOnTypedKey(nil)
		label.SetText("")
		askSave(logger, a, w, img)
	})
}

// startGui starts the gui process
func startGui(logger *log.Logger) {
	myApp := app.New()
	myWindow := myApp.NewWindow("Output FLIR Image")
	myWindow.Resize(fyne.NewSize(640, 480))

	open := dialog.NewFileOpen(func(r fyne.URIReadCloser, err error) {
		if err != nil {
			fatal(myApp, myWindow, err)
			return
		}
		if r == nil {
			fatal(myApp, myWindow, errNoImage)
			return
		}
		out, err := enhanceFile(logger, r)
		if err != nil {
			fatal(myApp, myWindow, err)
			return
		}
		showPreview(logger, myApp, myWindow, out)
	}, myWindow)
	open.SetFilter(storage.NewExtensionFileFilter(flirenhance.ImageExts))
	open.Show()

	myWindow.ShowAndRun()
}
