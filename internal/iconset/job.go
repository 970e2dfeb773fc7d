package iconset

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
)

var (
	// ErrSVGNotFound is returned by Generate when the source SVG is absent.
	ErrSVGNotFound = errors.New("SVG file not found")
	// ErrUnavailable is wrapped by converters whose tool or library cannot
	// be used on this host.
	ErrUnavailable = errors.New("backend unavailable")
	// ErrAllFailed is returned by Generate when no converter succeeded.
	ErrAllFailed = errors.New("could not generate icons")
)

// Job describes one conversion run.
type Job struct {
	Dir   string    // icon-asset directory, receives every output
	SVG   string    // source SVG path
	Sizes []Size    // outputs to produce, in order
	Out   io.Writer // per-file progress lines; nil discards
	Errs  io.Writer // warnings; nil discards
}

// Dest returns the output path for s.
func (j Job) Dest(s Size) string {
	return filepath.Join(j.Dir, s.Filename)
}

// Progress prints a "Generated <file>" line for s.
func (j Job) Progress(s Size) {
	if j.Out != nil {
		fmt.Fprintf(j.Out, "Generated %s\n", s.Filename)
	}
}

func (j Job) warnf(format string, args ...any) {
	if j.Errs != nil {
		fmt.Fprintf(j.Errs, format, args...)
	}
}

// Converter is one backend strategy. Convert returns nil on success, an
// error wrapping ErrUnavailable if the backend cannot run here, or any
// other error if it started and failed part-way.
type Converter interface {
	Name() string
	Convert(job Job) error
}

// Unavailable wraps reason so that errors.Is(err, ErrUnavailable) holds.
func Unavailable(reason string) error {
	return fmt.Errorf("%w: %s", ErrUnavailable, reason)
}
