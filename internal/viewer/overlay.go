package viewer

import "time"

// Timer is a one shot timer that can be cancelled.
type Timer interface {
	Stop() bool
}

// AfterFunc schedules f after d. Implementations used by the window run f
// on the UI thread.
type AfterFunc func(d time.Duration, f func()) Timer

// OverlayView is the part of the window that shows the fullscreen
// controls and the pointer.
type OverlayView interface {
	ShowOverlay()
	HideOverlay()
	SetCursorHidden(hidden bool)
}

// Overlay hides the fullscreen controls and the pointer after a period
// without pointer movement.
type Overlay struct {
	idle  time.Duration
	after AfterFunc
	view  OverlayView

	active  bool
	visible bool
	timer   Timer
	gen     uint64
}

func NewOverlay(idle time.Duration, after AfterFunc, view OverlayView) *Overlay {
	if after == nil {
		after = func(d time.Duration, f func()) Timer { return time.AfterFunc(d, f) }
	}
	return &Overlay{idle: idle, after: after, view: view}
}

func (o *Overlay) Active() bool  { return o.active }
func (o *Overlay) Visible() bool { return o.visible }

// Enter shows the overlay and starts the idle countdown.
func (o *Overlay) Enter() {
	o.active = true
	o.show()
	o.arm()
}

// Exit cancels the countdown and restores the pointer. Calling it when
// not active is harmless.
func (o *Overlay) Exit() {
	o.disarm()
	if !o.active {
		return
	}
	o.active = false
	o.visible = false
	o.view.HideOverlay()
	o.view.SetCursorHidden(false)
}

// PointerMoved re-shows the overlay and restarts the countdown.
func (o *Overlay) PointerMoved() {
	if !o.active {
		return
	}
	o.show()
	o.arm()
}

func (o *Overlay) show() {
	o.visible = true
	o.view.ShowOverlay()
	o.view.SetCursorHidden(false)
}

func (o *Overlay) arm() {
	o.disarm()
	gen := o.gen
	o.timer = o.after(o.idle, func() {
		o.expire(gen)
	})
}

func (o *Overlay) disarm() {
	o.gen++
	if o.timer != nil {
		o.timer.Stop()
		o.timer = nil
	}
}

// expire runs when the idle period passes. A timer that fired after it
// was superseded carries an old generation and is ignored.
func (o *Overlay) expire(gen uint64) {
	if !o.active || gen != o.gen {
		return
	}
	o.visible = false
	o.view.HideOverlay()
	o.view.SetCursorHidden(true)
}
