// mkicon renders a single square PNG from an SVG with the built-in rasterizer.
// Usage: go run ./cmd/mkicon <input.svg> <size> <output.png>
package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/Mavwarf/iconset/internal/backend"
	"github.com/Mavwarf/iconset/internal/paths"
)

func main() {
	if len(os.Args) < 4 {
		fmt.Fprintf(os.Stderr, "Usage: mkicon <input.svg> <size> <output.png>\n")
		os.Exit(1)
	}
	size, err := strconv.Atoi(os.Args[2])
	if err != nil || size <= 0 {
		fmt.Fprintf(os.Stderr, "Error: size must be a positive integer\n")
		os.Exit(1)
	}
	svg, err := os.ReadFile(os.Args[1])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	data, err := backend.Rasterize(svg, size, size)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := paths.AtomicWrite(os.Args[3], data); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
