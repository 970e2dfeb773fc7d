package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/Mavwarf/iconset/internal/backend"
	"github.com/Mavwarf/iconset/internal/config"
	"github.com/Mavwarf/iconset/internal/eventlog"
	"github.com/Mavwarf/iconset/internal/iconset"
	"github.com/Mavwarf/iconset/internal/paths"
)

var (
	version   = "dev"
	buildDate = "unknown"
)

func main() {
	args := os.Args[1:]
	configPath := ""

	// Parse flags
	filtered := args[:0]
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "--config", "-c":
			if i+1 < len(args) {
				configPath = args[i+1]
				i++
			} else {
				fmt.Fprintf(os.Stderr, "Error: --config requires a file path\n")
				os.Exit(1)
			}
		default:
			filtered = append(filtered, args[i])
		}
	}

	if len(filtered) == 0 {
		os.Exit(runGenerate(configPath))
	}

	switch filtered[0] {
	case "help", "-h", "--help":
		printUsage()
	case "version", "-V", "--version":
		printVersion()
	case "history":
		historyCmd(filtered[1:])
	default:
		fmt.Fprintf(os.Stderr, "Error: unknown command %q\n", filtered[0])
		fmt.Fprintf(os.Stderr, "Run 'iconset help' for usage.\n")
		os.Exit(1)
	}
}

func runGenerate(configPath string) int {
	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	entry, code := generate(cfg, converters(cfg), os.Stdout, os.Stderr, colorEnabled(os.Stdout))
	if cfg.History {
		eventlog.Record(paths.HistoryPath(), entry)
	}
	return code
}

// converters returns the backends in priority order.
func converters(cfg config.Config) []iconset.Converter {
	return []iconset.Converter{
		backend.RSVG{Paths: cfg.RSVGPaths},
		backend.QuickLook{},
		backend.Raster{},
	}
}

// generate runs the conversion, prints the outcome and returns the history
// entry together with the process exit code.
func generate(cfg config.Config, convs []iconset.Converter, stdout, stderr io.Writer, color bool) (eventlog.Entry, int) {
	svg := cfg.SVGPath()
	job := iconset.Job{
		Dir:   cfg.IconDir,
		SVG:   svg,
		Sizes: iconset.Sizes(),
		Out:   stdout,
		Errs:  stderr,
	}
	entry := eventlog.Entry{SVG: svg}

	if !paths.Exists(svg) {
		fmt.Fprintf(stderr, "Error: SVG file not found at %s\n", svg)
		entry.Outcome = eventlog.OutcomeMissingSVG
		return entry, 1
	}

	fmt.Fprintln(stdout, "Attempting to generate app icons...")
	res, err := iconset.Generate(job, convs...)
	entry.Duration = res.Duration

	switch {
	case err == nil:
		fmt.Fprintln(stdout)
		fmt.Fprintln(stdout, successBanner(res.Backend, color))
		entry.Outcome = eventlog.OutcomeOK
		entry.Backend = res.Backend
		entry.Files = len(res.Files)
		return entry, 0
	case errors.Is(err, iconset.ErrSVGNotFound):
		// Removed between the check above and Generate.
		fmt.Fprintf(stderr, "Error: %v\n", err)
		entry.Outcome = eventlog.OutcomeMissingSVG
		return entry, 1
	default:
		printRemediation(stdout, job, color)
		entry.Outcome = eventlog.OutcomeFailed
		return entry, 1
	}
}

// printRemediation tells the user how to get the icons made by hand.
func printRemediation(w io.Writer, job iconset.Job, color bool) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, paint(color, ansiYellow, "⚠ Could not generate icons automatically."))
	fmt.Fprintln(w, "\nPlease install one of these tools:")
	fmt.Fprintln(w, "  brew install librsvg")
	fmt.Fprintln(w, "\nOr manually create PNG files from the SVG in these sizes:")
	for _, s := range job.Sizes {
		fmt.Fprintf(w, "  %s\n", s)
	}
	fmt.Fprintf(w, "\nSVG file is at: %s\n", job.SVG)
}

func printVersion() {
	fmt.Printf("iconset %s (%s) %s/%s\n", version, buildDate, runtime.GOOS, runtime.GOARCH)
}

func printUsage() {
	fmt.Printf("iconset %s - Generate macOS app icon PNGs from an SVG\n", version)
	fmt.Println(`
Usage:
  iconset [options]                  Generate all icon sizes
  iconset history [count]            Show recent runs (default 10)
  iconset history clean <days>       Remove runs older than N days
  iconset history clear              Remove all recorded runs

Options:
  --config, -c <path>    Path to iconset-config.json

Commands:
  history                Show run history (enable with "history": true)
  version, -V            Show version and build date
  help, -h, --help       Show this help message

Backends, tried in order:
  1. rsvg-convert   (/opt/homebrew/bin, /usr/local/bin)
  2. qlmanage + sips (macOS built-in)
  3. built-in rasterizer

Config resolution:
  1. --config <path>                        (explicit)
  2. iconset-config.json next to binary     (portable)
  3. ~/.config/iconset/iconset-config.json  (user default)
  4. built-in defaults

Environment:
  ICONSET_DIR          Icon-asset directory
  ICONSET_SVG          Source SVG file name inside the directory
  ICONSET_RSVG_PATHS   Comma-separated rsvg-convert candidates
  ICONSET_HISTORY      Record runs in the history database (true/false)`)
}
