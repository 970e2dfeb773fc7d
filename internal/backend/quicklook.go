package backend

import (
	"os"
	"os/exec"
	"path/filepath"
	"strconv"

	"github.com/Mavwarf/iconset/internal/iconset"
)

const (
	// ThumbnailSize is the edge length requested from qlmanage.
	ThumbnailSize = 1024
	// TempName is the intermediate bitmap kept in the icon directory while
	// sips downsamples it.
	TempName = "temp_1024.png"
)

// QuickLook renders one large thumbnail with qlmanage and downsamples it
// to every size with sips. Both tools ship with macOS.
type QuickLook struct {
	Run Runner
	// LookPath resolves tool names; nil uses exec.LookPath.
	LookPath func(string) (string, error)
}

func (QuickLook) Name() string { return "quicklook" }

func (b QuickLook) lookPath(name string) error {
	lp := b.LookPath
	if lp == nil {
		lp = exec.LookPath
	}
	_, err := lp(name)
	return err
}

// Convert runs the thumbnail → rename → resize sequence. Problems before
// the intermediate bitmap exists report the backend as unavailable; a
// resize failure is a backend failure. The intermediate is removed on
// every path once it has been created.
func (b QuickLook) Convert(job iconset.Job) error {
	for _, tool := range []string{"qlmanage", "sips"} {
		if err := b.lookPath(tool); err != nil {
			return iconset.Unavailable(tool + " not found on PATH")
		}
	}

	size := strconv.Itoa(ThumbnailSize)
	if err := run(b.Run, "qlmanage", "-t", "-s", size, "-o", job.Dir, job.SVG); err != nil {
		return iconset.Unavailable(err.Error())
	}

	// qlmanage names its output after the input file plus ".png".
	thumb := filepath.Join(job.Dir, filepath.Base(job.SVG)+".png")
	if _, err := os.Stat(thumb); err != nil {
		return iconset.Unavailable("qlmanage produced no thumbnail")
	}

	temp := filepath.Join(job.Dir, TempName)
	if err := os.Rename(thumb, temp); err != nil {
		os.Remove(thumb)
		return iconset.Unavailable(err.Error())
	}
	defer os.Remove(temp)

	for _, s := range job.Sizes {
		err := run(b.Run, "sips",
			"-z", strconv.Itoa(s.Height), strconv.Itoa(s.Width),
			temp,
			"--out", job.Dest(s),
		)
		if err != nil {
			return err
		}
		job.Progress(s)
	}
	return nil
}
