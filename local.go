// Copyright 2020 Nick White.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

package flirenhance

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
)

// LocalConn is a simple implementation of the storage interface
// that doesn't rely on any "cloud" services, instead copying files
// into a directory on the local machine. This is particularly
// useful for testing.
type LocalConn struct {
	// these should be set before running Init(), or left to defaults
	TempDir string
	Logger  *log.Logger
}

// Init creates the storage directory if needed
func (a *LocalConn) Init() error {
	if a.TempDir == "" {
		a.TempDir = filepath.Join(os.TempDir(), "flirenhance")
	}
	err := os.MkdirAll(filepath.Join(a.TempDir, storageBucket), 0700)
	if err != nil {
		return fmt.Errorf("Error creating storage directory: %v", err)
	}

	if a.Logger == nil {
		a.Logger = log.New(os.Stdout, "", 0)
	}

	return nil
}

func (a *LocalConn) StorageId() string {
	return storageBucket
}

func copyFile(dst string, src string) error {
	fin, err := os.Open(src)
	if err != nil {
		return err
	}
	defer fin.Close()

	f, err := os.Create(dst)
	if err != nil {
		return err
	}
	_, err = io.Copy(f, fin)
	if err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// Download just copies the file from TempDir/bucket/key to path
func (a *LocalConn) Download(bucket string, key string, path string) error {
	return copyFile(path, filepath.Join(a.TempDir, bucket, key))
}

// Upload just copies the file from path to TempDir/bucket/key
func (a *LocalConn) Upload(bucket string, key string, path string) error {
	d := filepath.Join(a.TempDir, bucket, filepath.Dir(key))
	err := os.MkdirAll(d, 0700)
	if err != nil {
		return fmt.Errorf("Error creating storage directory: %v", err)
	}
	return copyFile(filepath.Join(a.TempDir, bucket, key), path)
}

// Log records an item in the with the Logger. Arguments are handled
// as with fmt.Println.
func (a *LocalConn) Log(v ...interface{}) {
	a.Logger.Println(v...)
}
