// Package snapshot writes single frames to disk and to the clipboard.
package snapshot

import (
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"os"
	"path/filepath"
	"time"

	"philipredstone/camviewer/pkg/frame"
)

const (
	filePrefix     = "camera_frame_"
	fileExt        = ".jpg"
	stampLayout    = "20060102_150405"
	defaultQuality = 95
)

// Clipboard receives a copy of every saved image.
type Clipboard interface {
	WriteImage(img image.Image) error
}

// FileName returns the snapshot name for t, e.g.
// camera_frame_20251019_154102.jpg.
func FileName(t time.Time) string {
	return filePrefix + t.Format(stampLayout) + fileExt
}

// Result describes a finished save. ClipboardErr is set when the file was
// written but the clipboard copy failed.
type Result struct {
	Path         string
	ClipboardErr error
}

func (r Result) FileName() string {
	return filepath.Base(r.Path)
}

type Exporter struct {
	Dir       string
	Quality   int
	Clipboard Clipboard
	Now       func() time.Time
}

func NewExporter(dir string, quality int, cb Clipboard) *Exporter {
	return &Exporter{
		Dir:       dir,
		Quality:   quality,
		Clipboard: cb,
		Now:       time.Now,
	}
}

// Save encodes f as JPEG into the exporter's directory and then places the
// same image on the clipboard. Only the file write decides the returned
// error.
func (e *Exporter) Save(f frame.Frame) (Result, error) {
	img, err := f.ToRGBA()
	if err != nil {
		return Result{}, fmt.Errorf("convert frame: %w", err)
	}

	now := time.Now
	if e.Now != nil {
		now = e.Now
	}
	path := filepath.Join(e.Dir, FileName(now()))
	if err := writeJPEG(path, img, e.quality()); err != nil {
		return Result{}, err
	}

	res := Result{Path: path}
	if e.Clipboard == nil {
		res.ClipboardErr = errors.New("no clipboard")
	} else if err := e.Clipboard.WriteImage(img); err != nil {
		res.ClipboardErr = err
	}
	return res, nil
}

func (e *Exporter) quality() int {
	if e.Quality < 1 || e.Quality > 100 {
		return defaultQuality
	}
	return e.Quality
}

func writeJPEG(path string, img image.Image, quality int) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := jpeg.Encode(file, img, &jpeg.Options{Quality: quality}); err != nil {
		file.Close()
		os.Remove(path)
		return fmt.Errorf("encode %s: %w", path, err)
	}
	if err := file.Close(); err != nil {
		os.Remove(path)
		return fmt.Errorf("close %s: %w", path, err)
	}
	return nil
}
