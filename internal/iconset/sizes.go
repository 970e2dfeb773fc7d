// Package iconset defines the macOS app icon size table and the
// orchestration that tries conversion backends in priority order.
package iconset

import "fmt"

// Size is one required PNG output.
type Size struct {
	Filename string
	Width    int
	Height   int
}

func (s Size) String() string {
	return fmt.Sprintf("%dx%d", s.Width, s.Height)
}

// required lists the 1x/2x variants of the 16/32/128/256/512 point sizes
// an AppIcon.appiconset expects.
var required = [...]Size{
	{"icon_16x16.png", 16, 16},
	{"icon_16x16@2x.png", 32, 32},
	{"icon_32x32.png", 32, 32},
	{"icon_32x32@2x.png", 64, 64},
	{"icon_128x128.png", 128, 128},
	{"icon_128x128@2x.png", 256, 256},
	{"icon_256x256.png", 256, 256},
	{"icon_256x256@2x.png", 512, 512},
	{"icon_512x512.png", 512, 512},
	{"icon_512x512@2x.png", 1024, 1024},
}

// Sizes returns a copy of the required sizes table.
func Sizes() []Size {
	out := make([]Size, len(required))
	copy(out, required[:])
	return out
}
