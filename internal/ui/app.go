package ui

import (
	"errors"
	"fmt"
	"io"
	"log"
	"strings"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"

	"philipredstone/camviewer/internal/config"
	"philipredstone/camviewer/internal/viewer"
	"philipredstone/camviewer/pkg/camera"
)

const maxLogLines = 200

// Deps are the collaborators of the window. NewTicker is optional and
// replaces the frame pump, tests use it to drive ticks by hand.
type Deps struct {
	Config    config.Config
	Opener    camera.Opener
	Exporter  viewer.Exporter
	Logger    *log.Logger
	NewTicker func(interval time.Duration, tick func()) viewer.Ticker
	AfterFunc viewer.AfterFunc
}

// ViewerApp is the main window. Every method runs on the fyne UI thread.
type ViewerApp struct {
	fyneApp fyne.App
	window  fyne.Window
	cfg     config.Config
	logger  *log.Logger

	// UI Elements
	cameraSelect     *widget.Select
	refreshButton    *widget.Button
	connectButton    *widget.Button
	disconnectButton *widget.Button
	freezeButton     *widget.Button
	saveButton       *widget.Button
	fullscreenButton *widget.Button
	flipHCheck       *widget.Check
	flipVCheck       *widget.Check
	viewport         *Viewport
	statusLabel      *widget.Label
	logArea          *widget.Entry
	logScroller      *container.Scroll

	// Everything hidden while fullscreen.
	primary []fyne.CanvasObject

	overlay        *fullscreenOverlay
	normalSize     fyne.Size
	logLines       []string
	syncingControl bool
	closed         bool

	controller *viewer.Controller
}

// NewViewerApp builds the window on the given application. The fyne app
// is created once per process by the caller and outlives the window.
func NewViewerApp(a fyne.App, deps Deps) *ViewerApp {
	w := a.NewWindow("USB Camera Viewer with Freeze")
	if deps.Logger == nil {
		deps.Logger = log.New(io.Discard, "", 0)
	}

	v := &ViewerApp{
		fyneApp: a,
		window:  w,
		cfg:     deps.Config,
		logger:  deps.Logger,
	}

	v.initUI()
	w.SetContent(v.createContent())
	w.SetMainMenu(v.createMenu())
	w.Resize(fyne.NewSize(v.cfg.WindowWidth, v.cfg.WindowHeight))
	w.SetOnClosed(v.onClosing)

	v.controller = viewer.NewController(viewer.Options{
		Config:    deps.Config,
		Opener:    deps.Opener,
		Exporter:  deps.Exporter,
		View:      v,
		Sink:      v.viewport,
		Logger:    deps.Logger,
		Dispatch:  fyne.DoAndWait,
		NewTicker: deps.NewTicker,
		AfterFunc: deps.AfterFunc,
	})
	v.setupShortcuts()
	v.controller.Start()

	return v
}

func (v *ViewerApp) Window() fyne.Window {
	return v.window
}

func (v *ViewerApp) Controller() *viewer.Controller {
	return v.controller
}

func (v *ViewerApp) initUI() {
	v.cameraSelect = widget.NewSelect(nil, func(string) { v.releaseFocus() })
	v.refreshButton = widget.NewButton("Refresh", v.act(func() { v.controller.RefreshCameras() }))
	v.connectButton = widget.NewButton("Connect (Ctrl+O)", v.act(v.connect))

	v.flipHCheck = widget.NewCheck("Flip Horizontally (Ctrl+H)", func(on bool) {
		if !v.syncingControl {
			v.controller.SetFlipHorizontal(on)
			v.releaseFocus()
		}
	})
	v.flipVCheck = widget.NewCheck("Flip Vertically (Ctrl+V)", func(on bool) {
		if !v.syncingControl {
			v.controller.SetFlipVertical(on)
			v.releaseFocus()
		}
	})

	v.freezeButton = widget.NewButton("Freeze (Space)", v.act(func() { v.controller.ToggleFreeze() }))
	v.saveButton = widget.NewButton("Save Frame (Ctrl+S)", v.act(func() { v.controller.Save() }))
	v.fullscreenButton = widget.NewButton("Fullscreen (F11)", v.act(func() { v.controller.ToggleFullscreen() }))
	v.disconnectButton = widget.NewButton("Disconnect (Ctrl+D)", v.act(func() { v.controller.Disconnect() }))

	v.viewport = NewViewport(fyne.NewSize(640, 480), func() { v.controller.PointerMoved() })

	v.statusLabel = widget.NewLabel("")
	v.statusLabel.Wrapping = fyne.TextTruncate

	v.logArea = widget.NewMultiLineEntry()
	v.logArea.Disable() // Read-only
	v.logArea.Wrapping = fyne.TextWrapWord
	v.logScroller = container.NewScroll(v.logArea)
	v.logScroller.SetMinSize(fyne.NewSize(0, 80))
}

func (v *ViewerApp) createContent() fyne.CanvasObject {
	cameraRow := container.NewHBox(
		widget.NewLabel("Camera:"),
		container.NewGridWrap(fyne.NewSize(200, v.cameraSelect.MinSize().Height), v.cameraSelect),
		v.refreshButton,
		v.connectButton,
		layout.NewSpacer(),
	)
	flipRow := container.NewHBox(v.flipHCheck, v.flipVCheck, layout.NewSpacer())
	buttonRow := container.NewHBox(
		v.freezeButton,
		v.saveButton,
		v.fullscreenButton,
		layout.NewSpacer(),
		v.disconnectButton,
	)
	logGroup := widget.NewCard("Log", "", v.logScroller)

	top := cameraRow
	bottom := container.NewVBox(flipRow, buttonRow, v.statusLabel, logGroup)
	v.primary = []fyne.CanvasObject{top, bottom}

	return container.NewBorder(top, bottom, nil, nil, v.viewport)
}

// act wraps a control callback so the control gives up keyboard focus
// afterwards. Plain keys only reach the window when nothing is focused.
func (v *ViewerApp) act(f func()) func() {
	return func() {
		f()
		v.releaseFocus()
	}
}

func (v *ViewerApp) releaseFocus() {
	if c := v.window.Canvas(); c.Focused() != nil {
		c.Unfocus()
	}
}

func (v *ViewerApp) connect() {
	v.controller.Connect(v.cameraSelect.Selected)
}

func (v *ViewerApp) onClosing() {
	v.closed = true
	v.logger.Printf("application closing")
	v.controller.Close()
}

// ErrDisplayUnavailable is returned by Run when the event loop ended
// without the window ever being closed. The desktop driver logs a failed
// display or window initialisation and quits instead of panicking.
var ErrDisplayUnavailable = errors.New("display unavailable")

// Run shows the window and blocks in the fyne event loop.
func (v *ViewerApp) Run() error {
	return v.runLoop(v.window.ShowAndRun)
}

func (v *ViewerApp) runLoop(run func()) error {
	run()
	if !v.closed {
		return ErrDisplayUnavailable
	}
	return nil
}

// SetStatus updates the status bar and prepends the text to the log area.
func (v *ViewerApp) SetStatus(text string) {
	v.statusLabel.SetText(text)
	v.appendLog(text)
}

func (v *ViewerApp) appendLog(message string) {
	line := fmt.Sprintf("[%s] %s", time.Now().Format("15:04:05"), message)
	v.logLines = append([]string{line}, v.logLines...)
	if len(v.logLines) > maxLogLines {
		v.logLines = v.logLines[:maxLogLines]
	}
	v.logArea.SetText(strings.Join(v.logLines, "\n"))
}

func (v *ViewerApp) SetCameras(labels []string) {
	v.cameraSelect.Options = labels
	v.cameraSelect.Refresh()
	if len(labels) > 0 {
		v.cameraSelect.SetSelectedIndex(0)
	} else {
		v.cameraSelect.ClearSelected()
	}
}

func (v *ViewerApp) SetControls(c viewer.Controls) {
	setEnabled(v.cameraSelect, c.Select)
	setEnabled(v.refreshButton, c.Refresh)
	setEnabled(v.connectButton, c.Connect)
	setEnabled(v.disconnectButton, c.Disconnect)
	setEnabled(v.freezeButton, c.Freeze)
	setEnabled(v.saveButton, c.Save)
	setEnabled(v.fullscreenButton, c.Fullscreen)
	setEnabled(v.flipHCheck, c.FlipH)
	setEnabled(v.flipVCheck, c.FlipV)

	v.freezeButton.SetText(c.FreezeLabel)
	if v.overlay != nil {
		v.overlay.setFreezeLabel(c.FreezeLabel)
	}

	v.syncingControl = true
	v.flipHCheck.SetChecked(c.Flip.Horizontal)
	v.flipVCheck.SetChecked(c.Flip.Vertical)
	v.syncingControl = false
}

type disableable interface {
	Enable()
	Disable()
}

func setEnabled(w disableable, on bool) {
	if on {
		w.Enable()
	} else {
		w.Disable()
	}
}

func (v *ViewerApp) Notify(kind viewer.NoticeKind, title, message string) {
	v.appendLog(title + ": " + message)
	switch kind {
	case viewer.NoticeError:
		dialog.ShowError(errors.New(message), v.window)
	default:
		dialog.ShowInformation(title, message, v.window)
	}
}
