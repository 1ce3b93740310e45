package cvcam

import (
	"errors"
	"testing"

	"philipredstone/camviewer/pkg/camera"
)

// Indices this high are not backed by a device on any test machine.
const missingDevice = 97

func TestOpenMissingDevice(t *testing.T) {
	src, err := NewOpener().Open(missingDevice, camera.StreamConfig{Width: 640, Height: 480, Framerate: 30})
	if err == nil {
		src.Close()
		t.Fatal("Expected an error for a missing device")
	}
	if !errors.Is(err, camera.ErrNotOpened) {
		t.Errorf("Expected ErrNotOpened, got %v", err)
	}
}

func TestMissingDeviceNotListed(t *testing.T) {
	if NewOpener().Probe(missingDevice) {
		t.Error("Missing device should not be reported")
	}
	if got := camera.ScanDevices(NewOpener(), missingDevice, missingDevice); len(got) != 0 {
		t.Errorf("Expected no devices, got %v", got)
	}
}
