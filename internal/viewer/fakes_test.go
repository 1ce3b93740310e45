package viewer

import (
	"errors"
	"image"
	"time"

	"philipredstone/camviewer/internal/config"
	"philipredstone/camviewer/internal/snapshot"
	"philipredstone/camviewer/pkg/camera"
	"philipredstone/camviewer/pkg/frame"
)

// fakeSource yields 4x2 frames whose first byte is the read number.
type fakeSource struct {
	reads  int
	failAt int // read number that fails, 0 for never
	opened bool
	closed bool
}

func (s *fakeSource) IsOpened() bool { return s.opened && !s.closed }

func (s *fakeSource) Read() (frame.Frame, error) {
	s.reads++
	if s.failAt != 0 && s.reads >= s.failAt {
		return frame.Frame{}, camera.ErrReadFailed
	}
	return numberedFrame(s.reads), nil
}

func (s *fakeSource) Close() error {
	s.closed = true
	return nil
}

func numberedFrame(n int) frame.Frame {
	data := make([]byte, 4*2*3)
	for i := range data {
		data[i] = byte(i)
	}
	data[0] = byte(n)
	return frame.Frame{Width: 4, Height: 2, Format: frame.BGR24, Data: data}
}

type fakeOpener struct {
	live    map[int]bool
	sources map[int]*fakeSource
	opened  []int
}

func newFakeOpener(indices ...int) *fakeOpener {
	o := &fakeOpener{live: map[int]bool{}, sources: map[int]*fakeSource{}}
	for _, i := range indices {
		o.live[i] = true
		o.sources[i] = &fakeSource{opened: true}
	}
	return o
}

func (o *fakeOpener) Probe(i int) bool { return o.live[i] }

func (o *fakeOpener) Open(i int, _ camera.StreamConfig) (camera.Source, error) {
	s, ok := o.sources[i]
	if !ok {
		return nil, camera.ErrNotOpened
	}
	o.opened = append(o.opened, i)
	return s, nil
}

type notice struct {
	kind    NoticeKind
	message string
}

type fakeView struct {
	status       string
	controls     Controls
	cameras      []string
	notices      []notice
	fullscreen   bool
	overlay      bool
	cursorHidden bool
}

func (v *fakeView) SetStatus(text string)      { v.status = text }
func (v *fakeView) SetControls(c Controls)     { v.controls = c }
func (v *fakeView) SetCameras(labels []string) { v.cameras = labels }
func (v *fakeView) EnterFullscreen()           { v.fullscreen = true }
func (v *fakeView) ExitFullscreen()            { v.fullscreen = false }
func (v *fakeView) ShowOverlay()               { v.overlay = true }
func (v *fakeView) HideOverlay()               { v.overlay = false }
func (v *fakeView) SetCursorHidden(h bool)     { v.cursorHidden = h }

func (v *fakeView) Notify(kind NoticeKind, _, message string) {
	v.notices = append(v.notices, notice{kind, message})
}

type fakeSink struct {
	shown       []frame.Frame
	badges      []string
	placeholder string
}

func (s *fakeSink) ShowFrame(f frame.Frame, badge string) {
	s.shown = append(s.shown, f)
	s.badges = append(s.badges, badge)
}

func (s *fakeSink) Clear(placeholder string) {
	s.placeholder = placeholder
}

func (s *fakeSink) last() frame.Frame {
	return s.shown[len(s.shown)-1]
}

type fakeTicker struct {
	running bool
	starts  int
	stops   int
}

func (t *fakeTicker) Start() {
	t.starts++
	t.running = true
}

func (t *fakeTicker) Stop() {
	t.stops++
	t.running = false
}

type fakeTimer struct {
	f       func()
	stopped bool
}

func (t *fakeTimer) Stop() bool {
	was := !t.stopped
	t.stopped = true
	return was
}

// fakeClock hands out timers that only fire through fire().
type fakeClock struct {
	timers []*fakeTimer
}

func (c *fakeClock) after(_ time.Duration, f func()) Timer {
	t := &fakeTimer{f: f}
	c.timers = append(c.timers, t)
	return t
}

// fire runs the newest timer even if it was stopped, like a timer whose
// callback was already queued.
func (c *fakeClock) fire() {
	if len(c.timers) == 0 {
		return
	}
	c.timers[len(c.timers)-1].f()
}

func (c *fakeClock) fireAt(i int) {
	c.timers[i].f()
}

type fakeClipboard struct {
	images []image.Image
}

func (c *fakeClipboard) WriteImage(img image.Image) error {
	c.images = append(c.images, img)
	return nil
}

type failingExporter struct{}

func (failingExporter) Save(frame.Frame) (snapshot.Result, error) {
	return snapshot.Result{}, errors.New("disk full")
}

type harness struct {
	c      *Controller
	opener *fakeOpener
	view   *fakeView
	sink   *fakeSink
	ticker *fakeTicker
	clock  *fakeClock
	clip   *fakeClipboard
	dir    string
}

func newHarness(dir string, indices ...int) *harness {
	h := &harness{
		opener: newFakeOpener(indices...),
		view:   &fakeView{},
		sink:   &fakeSink{},
		ticker: &fakeTicker{},
		clock:  &fakeClock{},
		clip:   &fakeClipboard{},
		dir:    dir,
	}
	exp := snapshot.NewExporter(dir, 90, h.clip)
	exp.Now = func() time.Time { return time.Date(2025, 10, 19, 12, 0, 0, 0, time.Local) }
	h.c = NewController(Options{
		Config:    config.Default(),
		Opener:    h.opener,
		Exporter:  exp,
		View:      h.view,
		Sink:      h.sink,
		NewTicker: func(time.Duration, func()) Ticker { return h.ticker },
		AfterFunc: h.clock.after,
	})
	h.c.Start()
	return h
}

func (h *harness) ticks(n int) {
	for i := 0; i < n; i++ {
		h.c.Tick()
	}
}
