// cmd/camviewer/main.go
package main

import (
	"fmt"
	"log"
	"os"

	"fyne.io/fyne/v2/app"

	"philipredstone/camviewer/internal/config"
	"philipredstone/camviewer/internal/logging"
	"philipredstone/camviewer/internal/snapshot"
	"philipredstone/camviewer/internal/ui"
	"philipredstone/camviewer/pkg/camera/cvcam"
)

func main() {
	logger := logging.Logger
	cfg := config.Default()
	if err := cfg.Validate(); err != nil {
		logger.Fatalf("invalid configuration: %v", err)
	}

	// The only fatal error: the windowing system could not be brought up.
	// Depending on where the driver fails that surfaces as a panic or as
	// Run returning ErrDisplayUnavailable.
	defer func() {
		if r := recover(); r != nil {
			displayFailed(logger, r)
		}
	}()

	a := app.NewWithID("com.philipredstone.camviewer")
	viewerApp := ui.NewViewerApp(a, ui.Deps{
		Config:   cfg,
		Opener:   cvcam.NewOpener(),
		Exporter: snapshot.NewExporter(cfg.OutputDir, cfg.JPEGQuality, snapshot.NewSystemClipboard()),
		Logger:   logger,
	})
	logger.Printf("starting")
	if err := viewerApp.Run(); err != nil {
		displayFailed(logger, err)
	}
}

func displayFailed(logger *log.Logger, cause any) {
	logger.Printf("display initialization failed: %v", cause)
	fmt.Fprintf(os.Stderr, "camviewer: cannot start the display: %v\n", cause)
	os.Exit(1)
}
