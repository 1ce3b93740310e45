// Package cvcam opens capture devices through OpenCV. It is the only
// package that needs cgo; everything else works against camera.Opener.
package cvcam

import (
	"fmt"

	"gocv.io/x/gocv"

	"philipredstone/camviewer/pkg/camera"
	"philipredstone/camviewer/pkg/frame"
)

// Opener opens devices through OpenCV.
type Opener struct{}

var _ camera.Opener = (*Opener)(nil)

func NewOpener() *Opener {
	return &Opener{}
}

func (o *Opener) Open(index int, cfg camera.StreamConfig) (camera.Source, error) {
	vc, err := gocv.VideoCaptureDevice(index)
	if err != nil {
		return nil, fmt.Errorf("%w: device %d: %v", camera.ErrNotOpened, index, err)
	}
	if !vc.IsOpened() {
		vc.Close()
		return nil, fmt.Errorf("%w: device %d", camera.ErrNotOpened, index)
	}

	if cfg.Width > 0 && cfg.Height > 0 {
		vc.Set(gocv.VideoCaptureFrameWidth, float64(cfg.Width))
		vc.Set(gocv.VideoCaptureFrameHeight, float64(cfg.Height))
	}
	if cfg.Framerate > 0 {
		vc.Set(gocv.VideoCaptureFPS, float64(cfg.Framerate))
	}

	return &cvSource{
		index: index,
		vc:    vc,
		mat:   gocv.NewMat(),
		conv:  gocv.NewMat(),
	}, nil
}

func (o *Opener) Probe(index int) bool {
	vc, err := gocv.VideoCaptureDevice(index)
	if err != nil {
		return false
	}
	defer vc.Close()
	if !vc.IsOpened() {
		return false
	}

	mat := gocv.NewMat()
	defer mat.Close()
	return vc.Read(&mat) && !mat.Empty()
}

type cvSource struct {
	index  int
	vc     *gocv.VideoCapture
	mat    gocv.Mat // reused between reads
	conv   gocv.Mat
	closed bool
}

func (s *cvSource) IsOpened() bool {
	return !s.closed && s.vc.IsOpened()
}

func (s *cvSource) Read() (frame.Frame, error) {
	if !s.IsOpened() {
		return frame.Frame{}, fmt.Errorf("%w: device %d", camera.ErrNotOpened, s.index)
	}
	if ok := s.vc.Read(&s.mat); !ok || s.mat.Empty() {
		return frame.Frame{}, fmt.Errorf("%w: device %d", camera.ErrReadFailed, s.index)
	}

	src := s.mat
	switch s.mat.Channels() {
	case 3:
	case 4:
		gocv.CvtColor(s.mat, &s.conv, gocv.ColorBGRAToBGR)
		src = s.conv
	case 1:
		gocv.CvtColor(s.mat, &s.conv, gocv.ColorGrayToBGR)
		src = s.conv
	default:
		return frame.Frame{}, fmt.Errorf("%w: device %d: %d channels", camera.ErrReadFailed, s.index, s.mat.Channels())
	}

	// ToBytes copies out of the Mat, so the frame stays valid after the
	// next Read reuses the buffer.
	return frame.Frame{
		Width:  src.Cols(),
		Height: src.Rows(),
		Format: frame.BGR24,
		Data:   src.ToBytes(),
	}, nil
}

func (s *cvSource) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	s.mat.Close()
	s.conv.Close()
	return s.vc.Close()
}
