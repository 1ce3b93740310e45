package viewer

import "errors"

var (
	// ErrDeviceUnavailable means no camera answered or the chosen one
	// failed to open.
	ErrDeviceUnavailable = errors.New("camera unavailable")
	// ErrDeviceLost means a read failed after a successful connect.
	ErrDeviceLost = errors.New("camera lost")
	// ErrEncodeFailure means a snapshot could not be written.
	ErrEncodeFailure = errors.New("failed to save frame")
	// ErrNothingToSave means a save was requested before any frame.
	ErrNothingToSave = errors.New("no frame to save")
	// ErrInvalidSelection means the selector holds no device.
	ErrInvalidSelection = errors.New("no camera selected")
	// ErrNoFrame means fullscreen was requested before any frame.
	ErrNoFrame = errors.New("no frame captured yet")
)
