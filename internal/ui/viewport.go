package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"philipredstone/camviewer/internal/render"
	"philipredstone/camviewer/pkg/frame"
)

// Viewport shows the camera image on black, a placeholder text when there
// is no image, and optionally a floating overlay anchored near its bottom
// edge. It reports pointer movement and records when the pointer should be
// hidden.
type Viewport struct {
	widget.BaseWidget

	background   *canvas.Rectangle
	image        *canvas.Image
	placeholder  *canvas.Text
	overlayLayer *fyne.Container

	overlay             fyne.CanvasObject
	overlaySize         fyne.Size
	overlayBottomMargin float32
	cursorHidden        bool
	minSize             fyne.Size

	onMoved func()
}

var _ desktop.Hoverable = (*Viewport)(nil)

func NewViewport(minSize fyne.Size, onMoved func()) *Viewport {
	v := &Viewport{
		background:   canvas.NewRectangle(color.Black),
		image:        canvas.NewImageFromImage(nil),
		placeholder:  canvas.NewText("", color.Gray{Y: 0xc0}),
		overlayLayer: container.NewWithoutLayout(),
		minSize:      minSize,
		onMoved:      onMoved,
	}
	v.image.FillMode = canvas.ImageFillContain
	v.image.ScaleMode = canvas.ImageScaleSmooth
	v.placeholder.Alignment = fyne.TextAlignCenter
	v.ExtendBaseWidget(v)
	return v
}

func (v *Viewport) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(container.NewStack(
		v.background,
		container.NewCenter(v.placeholder),
		v.image,
		v.overlayLayer,
	))
}

func (v *Viewport) MinSize() fyne.Size {
	return v.minSize
}

func (v *Viewport) Resize(size fyne.Size) {
	v.BaseWidget.Resize(size)
	v.positionOverlay()
}

// ShowFrame implements the render sink. The frame is handed over at its
// native size and the image scales it on the GPU.
func (v *Viewport) ShowFrame(f frame.Frame, badge string) {
	img := render.Frame(f)
	if img == nil {
		return
	}
	render.DrawBadge(img, badge)

	v.placeholder.Hide()
	v.image.Image = img
	v.image.Refresh()
}

// Clear drops the image and shows the placeholder text.
func (v *Viewport) Clear(placeholder string) {
	v.image.Image = nil
	v.image.Refresh()
	v.placeholder.Text = placeholder
	v.placeholder.Show()
	v.placeholder.Refresh()
}

// SetOverlay places obj as the floating overlay, replacing the previous
// one. Nil removes it.
func (v *Viewport) SetOverlay(obj fyne.CanvasObject, size fyne.Size, bottomMargin float32) {
	v.overlayLayer.RemoveAll()
	v.overlay = obj
	v.overlaySize = size
	v.overlayBottomMargin = bottomMargin
	if obj != nil {
		obj.Resize(size)
		v.overlayLayer.Add(obj)
		v.positionOverlay()
	}
	v.overlayLayer.Refresh()
}

func (v *Viewport) HasOverlay() bool {
	return v.overlay != nil
}

// OverlayPosition centers the overlay horizontally and anchors it
// bottomMargin above the bottom edge.
func OverlayPosition(viewport, overlay fyne.Size, bottomMargin float32) fyne.Position {
	return fyne.NewPos(
		(viewport.Width-overlay.Width)/2,
		viewport.Height-overlay.Height-bottomMargin,
	)
}

func (v *Viewport) positionOverlay() {
	if v.overlay == nil {
		return
	}
	v.overlay.Move(OverlayPosition(v.Size(), v.overlaySize, v.overlayBottomMargin))
}

func (v *Viewport) ShowOverlay() {
	if v.overlay != nil {
		v.positionOverlay()
		v.overlay.Show()
	}
}

func (v *Viewport) HideOverlay() {
	if v.overlay != nil {
		v.overlay.Hide()
	}
}

// SetCursorHidden records the overlay's pointer request. The glfw driver
// only asks a widget for its cursor while the pointer is moving, and any
// movement must show the pointer, so the request is never turned into
// desktop.HiddenCursor.
func (v *Viewport) SetCursorHidden(hidden bool) {
	v.cursorHidden = hidden
}

func (v *Viewport) CursorHidden() bool {
	return v.cursorHidden
}

func (v *Viewport) MouseIn(*desktop.MouseEvent) {
	v.moved()
}

func (v *Viewport) MouseMoved(*desktop.MouseEvent) {
	v.moved()
}

func (v *Viewport) MouseOut() {}

func (v *Viewport) moved() {
	if v.onMoved != nil {
		v.onMoved()
	}
}
