package backend

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"os"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"

	"github.com/Mavwarf/iconset/internal/iconset"
	"github.com/Mavwarf/iconset/internal/paths"
)

// Raster renders the SVG in-process with oksvg/rasterx.
type Raster struct{}

func (Raster) Name() string { return "raster" }

// Convert reads the SVG once and renders every size directly from the
// in-memory bytes. An SVG the parser cannot read makes the backend
// unavailable rather than failed.
func (Raster) Convert(job iconset.Job) error {
	data, err := os.ReadFile(job.SVG)
	if err != nil {
		return iconset.Unavailable(err.Error())
	}
	if _, err := oksvg.ReadIconStream(bytes.NewReader(data)); err != nil {
		return iconset.Unavailable("svg parse: " + err.Error())
	}

	for _, s := range job.Sizes {
		out, err := Rasterize(data, s.Width, s.Height)
		if err != nil {
			return fmt.Errorf("%s: %w", s.Filename, err)
		}
		if err := paths.AtomicWrite(job.Dest(s), out); err != nil {
			return fmt.Errorf("%s: %w", s.Filename, err)
		}
		job.Progress(s)
	}
	return nil
}

// Rasterize renders svg to a w×h PNG. The drawing is stretched to fill
// the target, matching rsvg-convert -w/-h.
func Rasterize(svg []byte, w, h int) ([]byte, error) {
	// SetTarget mutates the icon's transform, so parse per size.
	icon, err := oksvg.ReadIconStream(bytes.NewReader(svg))
	if err != nil {
		return nil, err
	}
	icon.SetTarget(0, 0, float64(w), float64(h))

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	scanner := rasterx.NewScannerGV(w, h, img, img.Bounds())
	raster := rasterx.NewDasher(w, h, scanner)
	icon.Draw(raster, 1.0)

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
