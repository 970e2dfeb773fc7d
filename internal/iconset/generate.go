package iconset

import (
	"errors"
	"fmt"
	"image"
	_ "image/png"
	"os"
	"time"
)

// Result describes a successful run.
type Result struct {
	Backend  string
	Files    []string
	Duration time.Duration
}

// Generate checks that the source SVG exists, then tries each converter
// in order. The first converter whose outputs pass Verify wins.
// Unavailable converters are skipped silently; failed ones produce a
// single warning line.
func Generate(job Job, converters ...Converter) (Result, error) {
	start := time.Now()
	if _, err := os.Stat(job.SVG); err != nil {
		return Result{}, fmt.Errorf("%w at %s", ErrSVGNotFound, job.SVG)
	}

	for _, c := range converters {
		err := c.Convert(job)
		if err == nil {
			err = Verify(job)
		}
		if err != nil {
			if !errors.Is(err, ErrUnavailable) {
				job.warnf("warning: %s: %v\n", c.Name(), err)
			}
			continue
		}

		files := make([]string, len(job.Sizes))
		for i, s := range job.Sizes {
			files[i] = job.Dest(s)
		}
		return Result{Backend: c.Name(), Files: files, Duration: time.Since(start)}, nil
	}
	return Result{Duration: time.Since(start)}, ErrAllFailed
}

// Verify checks that every output in job exists and decodes to its
// required pixel dimensions.
func Verify(job Job) error {
	for _, s := range job.Sizes {
		w, h, err := decodeSize(job.Dest(s))
		if err != nil {
			return fmt.Errorf("verify %s: %w", s.Filename, err)
		}
		if w != s.Width || h != s.Height {
			return fmt.Errorf("verify %s: got %dx%d, want %s", s.Filename, w, h, s)
		}
	}
	return nil
}

func decodeSize(path string) (int, int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, 0, err
	}
	defer f.Close()
	cfg, _, err := image.DecodeConfig(f)
	if err != nil {
		return 0, 0, err
	}
	return cfg.Width, cfg.Height, nil
}
