package main

import (
	"bytes"
	"errors"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/Mavwarf/iconset/internal/backend"
	"github.com/Mavwarf/iconset/internal/config"
	"github.com/Mavwarf/iconset/internal/eventlog"
	"github.com/Mavwarf/iconset/internal/iconset"
)

const testSVG = `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 64 64">
  <circle cx="32" cy="32" r="28" fill="#ff8800"/>
</svg>`

func testConfig(t *testing.T, svg string) config.Config {
	t.Helper()
	cfg := config.Default()
	cfg.IconDir = t.TempDir()
	cfg.RSVGPaths = []string{filepath.Join(t.TempDir(), "rsvg-convert")}
	if svg != "" {
		if err := os.WriteFile(cfg.SVGPath(), []byte(svg), 0644); err != nil {
			t.Fatal(err)
		}
	}
	return cfg
}

// spy counts Convert calls on a wrapped converter.
type spy struct {
	iconset.Converter
	calls int
}

func (s *spy) Convert(job iconset.Job) error {
	s.calls++
	return s.Converter.Convert(job)
}

// rsvgStub imitates rsvg-convert -w W -h H src -o dst.
type rsvgStub struct {
	calls [][]string
}

func (r *rsvgStub) run(name string, args ...string) ([]byte, error) {
	r.calls = append(r.calls, append([]string{name}, args...))
	w, _ := strconv.Atoi(args[1])
	h, _ := strconv.Atoi(args[3])
	var buf bytes.Buffer
	png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, w, h)))
	return nil, os.WriteFile(args[6], buf.Bytes(), 0644)
}

func noTools(string) (string, error) { return "", errors.New("not found") }

func pngNames(t *testing.T, dir string) []string {
	t.Helper()
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	var names []string
	for _, e := range entries {
		if strings.HasSuffix(e.Name(), ".png") {
			names = append(names, e.Name())
		}
	}
	return names
}

func TestGenerateMissingSVG(t *testing.T) {
	cfg := testConfig(t, "")
	rsvg := &spy{Converter: backend.RSVG{Paths: cfg.RSVGPaths}}
	raster := &spy{Converter: backend.Raster{}}
	var stdout, stderr bytes.Buffer

	entry, code := generate(cfg, []iconset.Converter{rsvg, raster}, &stdout, &stderr, false)
	if code != 1 {
		t.Errorf("exit code = %d, want 1", code)
	}
	if !strings.Contains(stderr.String(), "Error: SVG file not found at "+cfg.SVGPath()) {
		t.Errorf("stderr = %q", stderr.String())
	}
	if rsvg.calls != 0 || raster.calls != 0 {
		t.Errorf("backends called: rsvg=%d raster=%d", rsvg.calls, raster.calls)
	}
	if names := pngNames(t, cfg.IconDir); len(names) != 0 {
		t.Errorf("outputs created: %v", names)
	}
	if entry.Outcome != eventlog.OutcomeMissingSVG {
		t.Errorf("Outcome = %q", entry.Outcome)
	}
}

func TestGenerateWithRSVG(t *testing.T) {
	cfg := testConfig(t, testSVG)
	bin := filepath.Join(t.TempDir(), "rsvg-convert")
	os.WriteFile(bin, []byte("#!/bin/sh\n"), 0755)
	cfg.RSVGPaths = []string{bin}

	stub := &rsvgStub{}
	ql := &spy{Converter: backend.QuickLook{LookPath: noTools}}
	raster := &spy{Converter: backend.Raster{}}
	convs := []iconset.Converter{backend.RSVG{Paths: cfg.RSVGPaths, Run: stub.run}, ql, raster}
	var stdout, stderr bytes.Buffer

	entry, code := generate(cfg, convs, &stdout, &stderr, false)
	if code != 0 {
		t.Fatalf("exit code = %d, stderr = %s", code, stderr.String())
	}
	if len(stub.calls) != 10 {
		t.Errorf("rsvg-convert invocations = %d, want 10", len(stub.calls))
	}
	for i, s := range iconset.Sizes() {
		if i < len(stub.calls) && stub.calls[i][2] != strconv.Itoa(s.Width) {
			t.Errorf("call %d width = %s, want %d", i, stub.calls[i][2], s.Width)
		}
	}
	if ql.calls != 0 || raster.calls != 0 {
		t.Errorf("fallbacks attempted after success: quicklook=%d raster=%d", ql.calls, raster.calls)
	}
	if !strings.Contains(stdout.String(), "✓ Icons generated successfully using rsvg-convert!") {
		t.Errorf("stdout = %q", stdout.String())
	}
	if entry.Outcome != eventlog.OutcomeOK || entry.Backend != "rsvg-convert" || entry.Files != 10 {
		t.Errorf("entry = %+v", entry)
	}
}

func TestGenerateFallsThroughToRaster(t *testing.T) {
	cfg := testConfig(t, testSVG)
	ql := &spy{Converter: backend.QuickLook{
		LookPath: func(n string) (string, error) { return "/usr/bin/" + n, nil },
		Run: func(name string, args ...string) ([]byte, error) {
			return []byte("qlmanage: no generator"), errors.New("exit status 1")
		},
	}}
	raster := &spy{Converter: backend.Raster{}}
	convs := []iconset.Converter{backend.RSVG{Paths: cfg.RSVGPaths}, ql, raster}
	var stdout, stderr bytes.Buffer

	_, code := generate(cfg, convs, &stdout, &stderr, false)
	if code != 0 {
		t.Fatalf("exit code = %d, stderr = %s", code, stderr.String())
	}
	if ql.calls != 1 || raster.calls != 1 {
		t.Errorf("quicklook=%d raster=%d, want 1 and 1", ql.calls, raster.calls)
	}
	if stderr.Len() != 0 {
		t.Errorf("unavailable quicklook should be silent, stderr = %q", stderr.String())
	}
	if !strings.Contains(stdout.String(), "using the built-in rasterizer!") {
		t.Errorf("stdout = %q", stdout.String())
	}

	names := pngNames(t, cfg.IconDir)
	if len(names) != 10 {
		t.Errorf("png outputs = %v, want exactly 10", names)
	}
	job := iconset.Job{Dir: cfg.IconDir, Sizes: iconset.Sizes()}
	if err := iconset.Verify(job); err != nil {
		t.Errorf("Verify: %v", err)
	}
}

func TestGenerateAllUnavailable(t *testing.T) {
	cfg := testConfig(t, `<svg><g></svg>`)
	convs := []iconset.Converter{
		backend.RSVG{Paths: cfg.RSVGPaths},
		backend.QuickLook{LookPath: noTools},
		backend.Raster{},
	}
	var stdout, stderr bytes.Buffer

	entry, code := generate(cfg, convs, &stdout, &stderr, false)
	if code != 1 {
		t.Errorf("exit code = %d, want 1", code)
	}
	out := stdout.String()
	for _, want := range []string{
		"⚠ Could not generate icons automatically.",
		"brew install librsvg",
		"SVG file is at: " + cfg.SVGPath(),
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	var pairs []string
	for _, line := range strings.Split(out, "\n") {
		if strings.HasPrefix(line, "  ") && strings.Contains(line, "x") && !strings.Contains(line, "brew") {
			pairs = append(pairs, strings.TrimSpace(line))
		}
	}
	want := []string{"16x16", "32x32", "32x32", "64x64", "128x128", "256x256", "256x256", "512x512", "512x512", "1024x1024"}
	if strings.Join(pairs, ",") != strings.Join(want, ",") {
		t.Errorf("size list = %v, want %v", pairs, want)
	}
	if entry.Outcome != eventlog.OutcomeFailed {
		t.Errorf("Outcome = %q", entry.Outcome)
	}
}

func TestConvertersOrder(t *testing.T) {
	cfg := config.Default()
	got := converters(cfg)
	want := []string{"rsvg-convert", "quicklook", "raster"}
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}
	for i, c := range got {
		if c.Name() != want[i] {
			t.Errorf("converters[%d] = %q, want %q", i, c.Name(), want[i])
		}
	}
	rsvg := got[0].(backend.RSVG)
	if rsvg.Paths[0] != "/opt/homebrew/bin/rsvg-convert" {
		t.Errorf("rsvg paths = %v", rsvg.Paths)
	}
}

func TestSuccessBanner(t *testing.T) {
	tests := []struct {
		backend, want string
	}{
		{"rsvg-convert", "✓ Icons generated successfully using rsvg-convert!"},
		{"quicklook", "✓ Icons generated successfully using macOS built-in tools!"},
		{"raster", "✓ Icons generated successfully using the built-in rasterizer!"},
		{"other", "✓ Icons generated successfully using other!"},
	}
	for _, tt := range tests {
		if got := successBanner(tt.backend, false); got != tt.want {
			t.Errorf("successBanner(%q) = %q, want %q", tt.backend, got, tt.want)
		}
	}
	colored := successBanner("raster", true)
	if !strings.HasPrefix(colored, ansiGreen) || !strings.HasSuffix(colored, ansiReset) {
		t.Errorf("colored banner = %q", colored)
	}
}

func TestColorEnabledNoColor(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	if colorEnabled(os.Stdout) {
		t.Error("NO_COLOR should disable colour")
	}
}
