package viewer

import (
	"fmt"
	"io"
	"log"
	"time"

	"philipredstone/camviewer/internal/config"
	"philipredstone/camviewer/internal/render"
	"philipredstone/camviewer/internal/snapshot"
	"philipredstone/camviewer/pkg/camera"
	"philipredstone/camviewer/pkg/frame"
)

// NoCamerasLabel is the selector placeholder shown when probing found
// nothing.
const NoCamerasLabel = "No cameras found"

const (
	ReadyStatus      = "Ready to connect to camera | F11: Fullscreen | Space: Freeze | Ctrl+S: Save"
	NoCameraText     = "No camera connected"
	connectionLost   = "Camera connection lost. Please reconnect."
	feedUnavailable  = "Camera feed unavailable. Please reconnect."
	disconnectedText = "Disconnected from camera"
	frozenStatus     = "Image frozen - click Unfreeze to resume"
	fullscreenInfo   = "Connect to a camera first to use fullscreen mode."
	clipboardMissing = " (clipboard unavailable)"
)

type NoticeKind int

const (
	NoticeInfo NoticeKind = iota
	NoticeWarning
	NoticeError
)

// View is what the controller drives in the window. All calls happen on
// the UI thread.
type View interface {
	OverlayView

	SetStatus(text string)
	SetControls(c Controls)
	SetCameras(labels []string)
	Notify(kind NoticeKind, title, message string)
	EnterFullscreen()
	ExitFullscreen()
}

// Sink draws frames into the viewport.
type Sink interface {
	ShowFrame(f frame.Frame, badge string)
	Clear(placeholder string)
}

// Exporter saves a frame, see snapshot.Exporter.
type Exporter interface {
	Save(f frame.Frame) (snapshot.Result, error)
}

type Options struct {
	Config   config.Config
	Opener   camera.Opener
	Exporter Exporter
	View     View
	Sink     Sink
	Logger   *log.Logger

	// Dispatch runs f on the UI thread and waits for it. Nil runs f in
	// place, which is only correct when the caller already is the UI
	// thread.
	Dispatch func(f func())
	// NewTicker builds the frame pump. Defaults to a Pump using Dispatch.
	NewTicker func(interval time.Duration, tick func()) Ticker
	// AfterFunc drives the overlay idle timer. Defaults to time.AfterFunc
	// with the callback sent through Dispatch.
	AfterFunc AfterFunc
	Now       func() time.Time
}

// Controller owns the view state and maps every user action to one
// transition. It is not safe for concurrent use; all methods must run on
// the UI thread.
type Controller struct {
	cfg      config.Config
	opener   camera.Opener
	exporter Exporter
	view     View
	sink     Sink
	log      *log.Logger
	now      func() time.Time

	state   State
	source  camera.Source
	cameras []camera.Device
	pump    Ticker
	overlay *Overlay
	fps     render.FPSMeter
}

func NewController(opts Options) *Controller {
	c := &Controller{
		cfg:      opts.Config,
		opener:   opts.Opener,
		exporter: opts.Exporter,
		view:     opts.View,
		sink:     opts.Sink,
		log:      opts.Logger,
		now:      opts.Now,
	}
	if c.log == nil {
		c.log = log.New(io.Discard, "", 0)
	}
	if c.now == nil {
		c.now = time.Now
	}

	dispatch := opts.Dispatch
	if dispatch == nil {
		dispatch = func(f func()) { f() }
	}
	if opts.NewTicker != nil {
		c.pump = opts.NewTicker(c.cfg.TickInterval, c.Tick)
	} else {
		c.pump = NewPump(c.cfg.TickInterval, dispatch, c.Tick)
	}

	after := opts.AfterFunc
	if after == nil {
		after = func(d time.Duration, f func()) Timer {
			return time.AfterFunc(d, func() { dispatch(f) })
		}
	}
	c.overlay = NewOverlay(c.cfg.OverlayIdle, after, c.view)
	return c
}

// State returns a copy of the current view state.
func (c *Controller) State() State {
	return c.state
}

func (c *Controller) Overlay() *Overlay {
	return c.overlay
}

// Start publishes the initial status and probes for cameras.
func (c *Controller) Start() {
	c.sink.Clear(NoCameraText)
	c.view.SetStatus(ReadyStatus)
	c.RefreshCameras()
}

// RefreshCameras probes the configured index range and repopulates the
// selector.
func (c *Controller) RefreshCameras() {
	if c.state.Connection == Connected {
		return
	}
	c.cameras = camera.ScanDevices(c.opener, c.cfg.ProbeFirst, c.cfg.ProbeLast)

	labels := make([]string, 0, len(c.cameras))
	for _, d := range c.cameras {
		labels = append(labels, d.Label())
	}
	if len(labels) == 0 {
		c.log.Printf("no cameras found in %d..%d", c.cfg.ProbeFirst, c.cfg.ProbeLast)
		c.view.SetCameras([]string{NoCamerasLabel})
		c.view.SetStatus("No cameras detected")
	} else {
		c.log.Printf("found cameras: %v", labels)
		c.view.SetCameras(labels)
		c.view.SetStatus(fmt.Sprintf("Found %d camera(s)", len(labels)))
	}
	c.publish()
}

// Connect opens the device named by label and starts the pump.
func (c *Controller) Connect(label string) error {
	if c.state.Connection == Connected {
		return nil
	}
	if len(c.cameras) == 0 || label == "" || label == NoCamerasLabel {
		c.view.Notify(NoticeWarning, "Warning", "No cameras available!")
		return ErrInvalidSelection
	}
	index, err := camera.ParseLabel(label)
	if err != nil {
		c.view.Notify(NoticeWarning, "Warning", "No cameras available!")
		return fmt.Errorf("%w: %v", ErrInvalidSelection, err)
	}

	src, err := c.opener.Open(index, camera.StreamConfig{
		Width:     c.cfg.Capture.Width,
		Height:    c.cfg.Capture.Height,
		Framerate: c.cfg.Capture.FPS,
	})
	if err == nil && !src.IsOpened() {
		src.Close()
		err = camera.ErrNotOpened
	}
	if err != nil {
		c.log.Printf("open camera %d: %v", index, err)
		c.view.Notify(NoticeError, "Error", fmt.Sprintf("Failed to open camera %d", index))
		return fmt.Errorf("%w: %v", ErrDeviceUnavailable, err)
	}

	c.source = src
	c.state.connect(label)
	c.fps.Reset()
	c.pump.Start()
	c.log.Printf("connected to %s", label)
	c.view.SetStatus("Connected to " + label)
	c.publish()
	return nil
}

// Disconnect releases the device and resets the state.
func (c *Controller) Disconnect() {
	c.disconnect(disconnectedText)
}

func (c *Controller) disconnect(status string) {
	c.pump.Stop()
	if c.state.Display == Fullscreen {
		c.exitFullscreen()
	}
	if c.source != nil {
		if err := c.source.Close(); err != nil {
			c.log.Printf("close camera: %v", err)
		}
		c.source = nil
	}
	was := c.state.Device
	c.state.disconnect()
	c.fps.Reset()
	c.sink.Clear(NoCameraText)
	if was != "" {
		c.log.Printf("disconnected from %s: %s", was, status)
	}
	c.view.SetStatus(status)
	c.publish()
}

// Tick is one pump step.
func (c *Controller) Tick() {
	if c.state.Connection != Connected || c.source == nil || !c.source.IsOpened() {
		if c.state.Connection == Connected || c.source != nil {
			c.log.Printf("tick: %v", ErrDeviceLost)
			c.disconnect(connectionLost)
		}
		return
	}

	// The snapshot was drawn once by ToggleFreeze and the viewport keeps
	// it; frozen ticks only watch the device.
	if c.state.Freeze == Frozen {
		return
	}

	raw, err := c.source.Read()
	if err == nil {
		err = raw.Validate()
	}
	if err != nil {
		c.log.Printf("tick: %v: %v", ErrDeviceLost, err)
		c.disconnect(feedUnavailable)
		return
	}

	processed, err := frame.Flip(raw, c.state.Flip.Horizontal, c.state.Flip.Vertical)
	if err != nil {
		c.log.Printf("flip: %v", err)
		processed = raw
	}
	c.fps.Mark(c.now())
	c.state.setCurrent(processed)
	c.sink.ShowFrame(processed, fmt.Sprintf("LIVE %.1f fps", c.fps.FPS()))
}

// ToggleFreeze switches between live and frozen. The pump is paused
// around the switch so no tick runs halfway through it.
func (c *Controller) ToggleFreeze() {
	if c.state.Connection != Connected {
		return
	}
	c.pump.Stop()
	defer c.pump.Start()

	if c.state.Freeze == Live {
		if !c.state.freeze() {
			c.view.SetStatus("Nothing to freeze yet")
			return
		}
		if f, ok := c.state.FrozenFrame(); ok {
			c.sink.ShowFrame(f, "FROZEN")
		}
		c.log.Printf("frozen")
		c.view.SetStatus(frozenStatus)
	} else {
		c.state.unfreeze()
		c.log.Printf("live")
		c.view.SetStatus("Connected to " + c.state.Device + " - live view")
	}
	c.publish()
}

// Save writes the displayed frame and copies it to the clipboard.
func (c *Controller) Save() error {
	f, ok := c.state.Displayed()
	if !ok {
		c.view.Notify(NoticeWarning, "Warning", "No frame to save!")
		return ErrNothingToSave
	}

	res, err := c.exporter.Save(f)
	if err != nil {
		c.log.Printf("save frame: %v", err)
		c.view.Notify(NoticeError, "Error", "Failed to save frame!")
		return fmt.Errorf("%w: %v", ErrEncodeFailure, err)
	}

	status := fmt.Sprintf("Frame saved as %s and copied to clipboard", res.FileName())
	if res.ClipboardErr != nil {
		c.log.Printf("clipboard: %v", res.ClipboardErr)
		status = fmt.Sprintf("Frame saved as %s", res.FileName()) + clipboardMissing
	}
	c.log.Printf("saved %s", res.Path)
	c.view.SetStatus(status)
	return nil
}

func (c *Controller) SetFlipHorizontal(on bool) {
	if c.state.Connection != Connected || c.state.Flip.Horizontal == on {
		return
	}
	c.state.Flip.Horizontal = on
	c.publish()
}

func (c *Controller) SetFlipVertical(on bool) {
	if c.state.Connection != Connected || c.state.Flip.Vertical == on {
		return
	}
	c.state.Flip.Vertical = on
	c.publish()
}

func (c *Controller) ToggleFlipHorizontal() {
	c.SetFlipHorizontal(!c.state.Flip.Horizontal)
}

func (c *Controller) ToggleFlipVertical() {
	c.SetFlipVertical(!c.state.Flip.Vertical)
}

// ToggleFullscreen enters or leaves fullscreen.
func (c *Controller) ToggleFullscreen() error {
	if c.state.Display == Fullscreen {
		c.ExitFullscreen()
		return nil
	}
	return c.EnterFullscreen()
}

func (c *Controller) EnterFullscreen() error {
	if c.state.Display == Fullscreen {
		return nil
	}
	if !c.state.canEnterFullscreen() {
		c.view.Notify(NoticeInfo, "Info", fullscreenInfo)
		return ErrNoFrame
	}
	c.state.Display = Fullscreen
	c.view.EnterFullscreen()
	c.overlay.Enter()
	c.publish()
	return nil
}

// ExitFullscreen leaves fullscreen. It never enters it.
func (c *Controller) ExitFullscreen() {
	if c.state.Display != Fullscreen {
		return
	}
	c.exitFullscreen()
	c.publish()
}

func (c *Controller) exitFullscreen() {
	c.overlay.Exit()
	c.state.Display = Windowed
	c.view.ExitFullscreen()
}

// PointerMoved is called for every pointer move over the window.
func (c *Controller) PointerMoved() {
	c.overlay.PointerMoved()
}

// Close tears everything down when the window goes away.
func (c *Controller) Close() {
	if c.state.Connection == Connected || c.source != nil {
		c.disconnect(disconnectedText)
		return
	}
	c.pump.Stop()
	c.overlay.Exit()
}

func (c *Controller) publish() {
	c.view.SetControls(c.state.Controls(len(c.cameras) > 0))
}
