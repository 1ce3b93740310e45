// Package frame holds the raster type passed between the camera, the
// viewer and the exporters, plus the pure pixel operations applied to it.
package frame

import (
	"errors"
	"fmt"
	"image"
)

// PixelFormat is the byte layout of a Frame.
type PixelFormat int

const (
	// BGR24 is three bytes per pixel in blue, green, red order. This is
	// what OpenCV capture devices deliver.
	BGR24 PixelFormat = iota
	// RGB24 is three bytes per pixel in red, green, blue order.
	RGB24
)

func (p PixelFormat) String() string {
	switch p {
	case BGR24:
		return "BGR24"
	case RGB24:
		return "RGB24"
	default:
		return fmt.Sprintf("PixelFormat(%d)", int(p))
	}
}

// BytesPerPixel is the same for every supported format.
const BytesPerPixel = 3

var ErrInvalidFrame = errors.New("invalid frame")

// Frame is one captured raster image. A Frame is never modified after it
// is produced; operations return new frames.
type Frame struct {
	Width  int
	Height int
	Format PixelFormat
	Data   []byte
}

// Empty reports whether f carries no usable pixels.
func (f Frame) Empty() bool {
	return f.Width <= 0 || f.Height <= 0 || len(f.Data) == 0
}

// Validate checks that the buffer size matches the dimensions.
func (f Frame) Validate() error {
	if f.Empty() {
		return fmt.Errorf("%w: empty %dx%d", ErrInvalidFrame, f.Width, f.Height)
	}
	if f.Format != BGR24 && f.Format != RGB24 {
		return fmt.Errorf("%w: unsupported format %s", ErrInvalidFrame, f.Format)
	}
	if want := f.Width * f.Height * BytesPerPixel; len(f.Data) != want {
		return fmt.Errorf("%w: %dx%d needs %d bytes, got %d", ErrInvalidFrame, f.Width, f.Height, want, len(f.Data))
	}
	return nil
}

// Clone returns a deep copy of f.
func (f Frame) Clone() Frame {
	c := f
	if f.Data != nil {
		c.Data = make([]byte, len(f.Data))
		copy(c.Data, f.Data)
	}
	return c
}

// Equal compares dimensions, format and pixels.
func (f Frame) Equal(o Frame) bool {
	if f.Width != o.Width || f.Height != o.Height || f.Format != o.Format || len(f.Data) != len(o.Data) {
		return false
	}
	for i := range f.Data {
		if f.Data[i] != o.Data[i] {
			return false
		}
	}
	return true
}

func (f Frame) stride() int {
	return f.Width * BytesPerPixel
}

// ToRGBA converts f into display pixel order.
func (f Frame) ToRGBA() (*image.RGBA, error) {
	if err := f.Validate(); err != nil {
		return nil, err
	}
	img := image.NewRGBA(image.Rect(0, 0, f.Width, f.Height))
	ri, bi := 0, 2
	if f.Format == BGR24 {
		ri, bi = 2, 0
	}
	src := f.Data
	dst := img.Pix
	for s, d := 0, 0; s < len(src); s, d = s+BytesPerPixel, d+4 {
		dst[d+0] = src[s+ri]
		dst[d+1] = src[s+1]
		dst[d+2] = src[s+bi]
		dst[d+3] = 0xff
	}
	return img, nil
}
