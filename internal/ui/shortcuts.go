package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
)

// binding ties a keyboard shortcut to an action.
type binding struct {
	shortcut fyne.Shortcut
	action   func()
}

func ctrl(key fyne.KeyName) fyne.Shortcut {
	return &desktop.CustomShortcut{KeyName: key, Modifier: fyne.KeyModifierControl}
}

func (v *ViewerApp) shortcutBindings() []binding {
	c := v.controller
	flipV := func() { c.ToggleFlipVertical() }
	return []binding{
		{ctrl(fyne.KeyS), func() { c.Save() }},
		{ctrl(fyne.KeyO), v.connect},
		{ctrl(fyne.KeyD), c.Disconnect},
		{ctrl(fyne.KeyH), c.ToggleFlipHorizontal},
		{ctrl(fyne.KeyV), flipV},
		// The desktop driver turns Ctrl+V into the paste shortcut on
		// platforms where Control is the default modifier.
		{&fyne.ShortcutPaste{}, flipV},
	}
}

// keyActions are plain keys without modifiers.
func (v *ViewerApp) keyActions() map[fyne.KeyName]func() {
	c := v.controller
	return map[fyne.KeyName]func(){
		fyne.KeySpace:  c.ToggleFreeze,
		fyne.KeyF11:    func() { c.ToggleFullscreen() },
		fyne.KeyEscape: c.ExitFullscreen,
	}
}

func (v *ViewerApp) setupShortcuts() {
	cnv := v.window.Canvas()
	for _, b := range v.shortcutBindings() {
		action := b.action
		cnv.AddShortcut(b.shortcut, func(fyne.Shortcut) { action() })
	}

	keys := v.keyActions()
	cnv.SetOnTypedKey(func(ev *fyne.KeyEvent) {
		if action, ok := keys[ev.Name]; ok {
			action()
		}
	})
}
