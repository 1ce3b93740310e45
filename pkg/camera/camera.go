// pkg/camera/camera.go
package camera

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"philipredstone/camviewer/pkg/frame"
)

var (
	ErrNotOpened  = errors.New("camera not opened")
	ErrReadFailed = errors.New("camera read failed")
)

const labelPrefix = "Camera "

// Device identifies a capture device by its index.
type Device struct {
	Index int
}

// Label is the human readable name shown in the selector.
func (d Device) Label() string {
	return labelPrefix + strconv.Itoa(d.Index)
}

// ParseLabel extracts the device index from a selector label such as
// "Camera 2". Anything else is rejected.
func ParseLabel(label string) (int, error) {
	rest, ok := strings.CutPrefix(strings.TrimSpace(label), labelPrefix)
	if !ok {
		return 0, fmt.Errorf("not a camera label: %q", label)
	}
	idx, err := strconv.Atoi(rest)
	if err != nil || idx < 0 {
		return 0, fmt.Errorf("not a camera label: %q", label)
	}
	return idx, nil
}

type StreamConfig struct {
	Width     int
	Height    int
	Framerate int
}

// Source is an opened device. It is owned by a single caller for as long
// as it stays open.
type Source interface {
	IsOpened() bool
	// Read blocks until the device produces a frame.
	Read() (frame.Frame, error)
	Close() error
}

// Opener gives access to devices by index.
type Opener interface {
	Open(index int, cfg StreamConfig) (Source, error)
	// Probe opens the device, tries a single read and releases it again.
	Probe(index int) bool
}

// ScanDevices probes every index in [first, last] and returns those that
// answered with a frame.
func ScanDevices(o Opener, first, last int) []Device {
	var found []Device
	for i := first; i <= last; i++ {
		if o.Probe(i) {
			found = append(found, Device{Index: i})
		}
	}
	return found
}
