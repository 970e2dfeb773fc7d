// Package backend implements the SVG-to-PNG conversion strategies tried
// by iconset.Generate: rsvg-convert, Quick Look + sips, and an in-process
// rasterizer.
package backend

import (
	"fmt"
	"os/exec"
	"strings"
)

// Runner executes an external command and returns its combined output.
type Runner func(name string, args ...string) ([]byte, error)

// ExecRunner runs the command with os/exec and blocks until it exits.
func ExecRunner(name string, args ...string) ([]byte, error) {
	return exec.Command(name, args...).CombinedOutput()
}

// run invokes r and folds the command's output into the error.
func run(r Runner, name string, args ...string) error {
	if r == nil {
		r = ExecRunner
	}
	if out, err := r(name, args...); err != nil {
		msg := strings.TrimSpace(string(out))
		if msg == "" {
			return fmt.Errorf("%s: %w", name, err)
		}
		return fmt.Errorf("%s: %w\n%s", name, err, msg)
	}
	return nil
}
