package backend

import (
	"strconv"

	"github.com/Mavwarf/iconset/internal/iconset"
)

// RSVG renders each size with rsvg-convert from librsvg.
type RSVG struct {
	// Paths are the candidate install locations, in priority order.
	Paths []string
	Run   Runner
}

func (RSVG) Name() string { return "rsvg-convert" }

// Binary returns the first candidate path that is executable.
func (b RSVG) Binary() (string, bool) {
	for _, p := range b.Paths {
		if executable(p) {
			return p, true
		}
	}
	return "", false
}

// Convert invokes rsvg-convert once per size. The first non-zero exit
// aborts the backend.
func (b RSVG) Convert(job iconset.Job) error {
	bin, ok := b.Binary()
	if !ok {
		return iconset.Unavailable("rsvg-convert not installed")
	}
	for _, s := range job.Sizes {
		err := run(b.Run, bin,
			"-w", strconv.Itoa(s.Width),
			"-h", strconv.Itoa(s.Height),
			job.SVG,
			"-o", job.Dest(s),
		)
		if err != nil {
			return err
		}
		job.Progress(s)
	}
	return nil
}
