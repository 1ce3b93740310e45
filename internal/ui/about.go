package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
)

const aboutText = `### Camera Viewer with Freeze

This application allows you to:

* Connect to available cameras
* Freeze and unfreeze the live feed
* Flip the video horizontally or vertically
* Save frames and copy them to the clipboard
* Enter fullscreen mode with overlay controls
`

func (v *ViewerApp) createMenu() *fyne.MainMenu {
	return fyne.NewMainMenu(
		fyne.NewMenu("Help", fyne.NewMenuItem("About", v.showAbout)),
	)
}

func (v *ViewerApp) showAbout() {
	content := widget.NewRichTextFromMarkdown(aboutText)
	dialog.ShowCustom("About Camera Viewer", "Close", content, v.window)
}
