package logging

import (
	"io"
	"log"
	"os"
)

var Logger = New(os.Stderr)

// New returns a logger with the application prefix writing to w.
func New(w io.Writer) *log.Logger {
	return log.New(w, "[camviewer] ", log.LstdFlags|log.Lshortfile)
}
