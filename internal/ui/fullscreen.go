package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"
)

// overlayButton is a button on the fullscreen overlay. The button takes
// hover events away from the viewport, so it reports them itself and the
// overlay stays up while the pointer moves over it.
type overlayButton struct {
	widget.Button
	onMoved func()
}

var _ desktop.Hoverable = (*overlayButton)(nil)

func newOverlayButton(label string, tapped, moved func()) *overlayButton {
	b := &overlayButton{onMoved: moved}
	b.Text = label
	b.OnTapped = tapped
	b.ExtendBaseWidget(b)
	return b
}

func (b *overlayButton) MouseIn(ev *desktop.MouseEvent) {
	b.Button.MouseIn(ev)
	b.onMoved()
}

func (b *overlayButton) MouseMoved(ev *desktop.MouseEvent) {
	b.Button.MouseMoved(ev)
	b.onMoved()
}

// fullscreenOverlay carries the controls shown over the image while the
// window is fullscreen. It exists only between enter and exit.
type fullscreenOverlay struct {
	root    fyne.CanvasObject
	freeze  *overlayButton
	buttons []*overlayButton
}

func (v *ViewerApp) newFullscreenOverlay() *fullscreenOverlay {
	moved := func() { v.controller.PointerMoved() }
	button := func(label string, tapped func()) *overlayButton {
		return newOverlayButton(label, v.act(tapped), moved)
	}

	o := &fullscreenOverlay{}
	o.freeze = button(v.freezeButton.Text, func() { v.controller.ToggleFreeze() })
	o.buttons = []*overlayButton{
		o.freeze,
		button("Save (Ctrl+S)", func() { v.controller.Save() }),
		button("Flip H (Ctrl+H)", func() { v.controller.ToggleFlipHorizontal() }),
		button("Flip V (Ctrl+V)", func() { v.controller.ToggleFlipVertical() }),
		button("Exit (Esc)", func() { v.controller.ExitFullscreen() }),
	}
	buttons := container.NewHBox()
	for _, b := range o.buttons {
		buttons.Add(b)
	}

	background := canvas.NewRectangle(color.NRGBA{A: 180})
	background.CornerRadius = 10
	o.root = container.NewStack(background, container.NewCenter(buttons))
	return o
}

func (o *fullscreenOverlay) setFreezeLabel(label string) {
	o.freeze.SetText(label)
}

// EnterFullscreen hides the control bars, goes fullscreen and creates
// the overlay.
func (v *ViewerApp) EnterFullscreen() {
	v.normalSize = v.window.Canvas().Size()
	for _, obj := range v.primary {
		obj.Hide()
	}
	v.window.SetFullScreen(true)

	v.overlay = v.newFullscreenOverlay()
	v.viewport.SetOverlay(v.overlay.root,
		fyne.NewSize(v.cfg.OverlayWidth, v.cfg.OverlayHeight),
		v.cfg.OverlayBottomMargin)
}

// ExitFullscreen destroys the overlay and restores the window.
func (v *ViewerApp) ExitFullscreen() {
	v.viewport.SetOverlay(nil, fyne.Size{}, 0)
	v.overlay = nil
	v.viewport.SetCursorHidden(false)

	v.window.SetFullScreen(false)
	for _, obj := range v.primary {
		obj.Show()
	}
	if !v.normalSize.IsZero() {
		v.window.Resize(v.normalSize)
	}
}

func (v *ViewerApp) ShowOverlay() {
	v.viewport.ShowOverlay()
}

func (v *ViewerApp) HideOverlay() {
	v.viewport.HideOverlay()
}

func (v *ViewerApp) SetCursorHidden(hidden bool) {
	v.viewport.SetCursorHidden(hidden)
}
