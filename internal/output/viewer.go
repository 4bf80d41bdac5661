/*
PURPOSE:
  Shows the rendered graph to the user after it is saved.

REQUIREMENTS:
  User-specified:
  - The PNG is displayed once written, unless show is disabled.

  Implementation-discovered:
  - Headless hosts (CI, ssh sessions) have no display; opening must fail fast
    there instead of spawning an opener that cannot run.
  - The opener's own output must not leak into ours.

ARCHITECTURE INTEGRATION:
  - Called by: internal/output/graph.go (GraphWriter.Viewer)
  - Injected by: internal/cli/root.go, internal/engine/runner.go

ERROR HANDLING:
  - Returns ErrNoDisplay on Unix-like hosts without DISPLAY or WAYLAND_DISPLAY.
  - Callers treat every Open error as non-fatal.

USAGE:
  err := output.SystemViewer{}.Open("analysis/throughput_analysis.png")
*/

package output

import (
	"errors"
	"io"
	"os"
	"runtime"

	"github.com/pkg/browser"
)

var ErrNoDisplay = errors.New("no display available")

func init() {
	browser.Stdout = io.Discard
	browser.Stderr = io.Discard
}

// Viewer presents a rendered file to the user.
type Viewer interface {
	Open(path string) error
}

// SystemViewer opens files with the platform's default application.
type SystemViewer struct{}

// Open hands path to the platform opener.
func (SystemViewer) Open(path string) error {
	if !hasDisplay() {
		return ErrNoDisplay
	}
	return browser.OpenFile(path)
}

func hasDisplay() bool {
	switch runtime.GOOS {
	case "darwin", "windows":
		return true
	}
	return os.Getenv("DISPLAY") != "" || os.Getenv("WAYLAND_DISPLAY") != ""
}
