package config

import (
	"fmt"
	"time"
)

// CaptureConfig is what the viewer asks the device for after opening it.
type CaptureConfig struct {
	Width  int
	Height int
	FPS    int
}

// Config holds every tunable of the viewer. There is no config file; the
// values come from Default and tests build variants of it.
type Config struct {
	// Device indices probed during enumeration, [ProbeFirst, ProbeLast].
	ProbeFirst int
	ProbeLast  int

	Capture CaptureConfig

	TickInterval time.Duration
	OverlayIdle  time.Duration

	OverlayWidth        float32
	OverlayHeight       float32
	OverlayBottomMargin float32

	WindowWidth  float32
	WindowHeight float32

	OutputDir   string
	JPEGQuality int
}

func Default() Config {
	return Config{
		ProbeFirst: 0,
		ProbeLast:  5,
		Capture: CaptureConfig{
			Width:  1280,
			Height: 720,
			FPS:    30,
		},
		TickInterval:        33 * time.Millisecond,
		OverlayIdle:         3 * time.Second,
		OverlayWidth:        500,
		OverlayHeight:       60,
		OverlayBottomMargin: 50,
		WindowWidth:         900,
		WindowHeight:        700,
		OutputDir:           ".",
		JPEGQuality:         95,
	}
}

// Validate reports the first setting that cannot work.
func (c Config) Validate() error {
	if c.ProbeFirst < 0 || c.ProbeLast < c.ProbeFirst {
		return fmt.Errorf("invalid probe range %d..%d", c.ProbeFirst, c.ProbeLast)
	}
	if c.Capture.Width <= 0 || c.Capture.Height <= 0 {
		return fmt.Errorf("invalid capture size %dx%d", c.Capture.Width, c.Capture.Height)
	}
	if c.Capture.FPS <= 0 {
		return fmt.Errorf("invalid capture fps %d", c.Capture.FPS)
	}
	if c.TickInterval <= 0 {
		return fmt.Errorf("tick interval must be positive, got %s", c.TickInterval)
	}
	if c.OverlayIdle <= 0 {
		return fmt.Errorf("overlay idle delay must be positive, got %s", c.OverlayIdle)
	}
	if c.JPEGQuality < 1 || c.JPEGQuality > 100 {
		return fmt.Errorf("jpeg quality must be within 1..100, got %d", c.JPEGQuality)
	}
	if c.OutputDir == "" {
		return fmt.Errorf("output directory must not be empty")
	}
	return nil
}
