package config

import (
	"testing"
	"time"
)

func TestDefaultIsValid(t *testing.T) {
	c := Default()
	if err := c.Validate(); err != nil {
		t.Fatalf("Default config invalid: %v", err)
	}
	if c.ProbeLast-c.ProbeFirst+1 != 6 {
		t.Errorf("Expected 6 probed indices, got %d", c.ProbeLast-c.ProbeFirst+1)
	}
	if c.Capture.Width != 1280 || c.Capture.Height != 720 || c.Capture.FPS != 30 {
		t.Errorf("Unexpected capture config %+v", c.Capture)
	}
	if c.TickInterval != 33*time.Millisecond {
		t.Errorf("Expected 33ms tick, got %s", c.TickInterval)
	}
	if c.OverlayIdle != 3*time.Second {
		t.Errorf("Expected 3s overlay idle, got %s", c.OverlayIdle)
	}
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"negative probe", func(c *Config) { c.ProbeFirst = -1 }},
		{"inverted probe range", func(c *Config) { c.ProbeFirst, c.ProbeLast = 4, 2 }},
		{"zero width", func(c *Config) { c.Capture.Width = 0 }},
		{"zero fps", func(c *Config) { c.Capture.FPS = 0 }},
		{"zero tick", func(c *Config) { c.TickInterval = 0 }},
		{"zero idle", func(c *Config) { c.OverlayIdle = 0 }},
		{"quality too high", func(c *Config) { c.JPEGQuality = 101 }},
		{"empty output dir", func(c *Config) { c.OutputDir = "" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Default()
			tt.mutate(&c)
			if err := c.Validate(); err == nil {
				t.Error("Expected validation error, got nil")
			}
		})
	}
}
