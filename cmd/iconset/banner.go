package main

import (
	"os"

	"golang.org/x/term"
)

const (
	ansiGreen  = "\033[32m"
	ansiYellow = "\033[33m"
	ansiReset  = "\033[0m"
)

// backendLabels maps converter names to the wording used in the success
// banner.
var backendLabels = map[string]string{
	"rsvg-convert": "rsvg-convert",
	"quicklook":    "macOS built-in tools",
	"raster":       "the built-in rasterizer",
}

// colorEnabled reports whether f is a terminal that should get ANSI colour.
func colorEnabled(f *os.File) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

func paint(color bool, code, s string) string {
	if !color {
		return s
	}
	return code + s + ansiReset
}

func successBanner(backendName string, color bool) string {
	label, ok := backendLabels[backendName]
	if !ok {
		label = backendName
	}
	return paint(color, ansiGreen, "✓ Icons generated successfully using "+label+"!")
}
