package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"golang.org/x/term"

	"github.com/Mavwarf/iconset/internal/eventlog"
	"github.com/Mavwarf/iconset/internal/paths"
)

func historyCmd(args []string) {
	path := paths.HistoryPath()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		fmt.Println("No history found. Enable it with \"history\": true in config or ICONSET_HISTORY=true.")
		return
	}

	store, err := eventlog.NewSQLiteStore(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if len(args) > 0 {
		switch args[0] {
		case "clear":
			if err := store.Clear(); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(1)
			}
			fmt.Println("History cleared.")
			return
		case "clean":
			historyClean(store, args[1:])
			return
		}
	}

	count := 10
	if len(args) > 0 {
		n, err := strconv.Atoi(args[0])
		if err != nil || n <= 0 {
			fmt.Fprintf(os.Stderr, "Error: count must be a positive integer\n")
			os.Exit(1)
		}
		count = n
	}

	entries, err := store.Entries(count)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if len(entries) == 0 {
		fmt.Println("History is empty.")
		return
	}
	printHistory(os.Stdout, entries, terminalWidth())
}

func historyClean(store eventlog.Store, args []string) {
	if len(args) < 1 {
		fmt.Fprintf(os.Stderr, "Error: 'history clean' requires a number of days\n")
		os.Exit(1)
	}
	days, err := strconv.Atoi(args[0])
	if err != nil || days <= 0 {
		fmt.Fprintf(os.Stderr, "Error: days must be a positive integer\n")
		os.Exit(1)
	}
	n, err := store.Clean(days)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Removed %d entries older than %d days.\n", n, days)
}

// terminalWidth returns the stdout width, or 0 when stdout is not a terminal.
func terminalWidth() int {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return 0
	}
	w, _, err := term.GetSize(fd)
	if err != nil {
		return 0
	}
	return w
}

// printHistory writes one line per entry. With width > 0 the SVG column is
// truncated from the left so each line fits.
func printHistory(w io.Writer, entries []eventlog.Entry, width int) {
	for _, e := range entries {
		backend := e.Backend
		if backend == "" {
			backend = "-"
		}
		prefix := fmt.Sprintf("%s  %-11s  %-12s  %2d files  %6s  ",
			e.Time.Local().Format("2006-01-02 15:04:05"), e.Outcome, backend, e.Files,
			formatDuration(e.Duration))
		fmt.Fprintln(w, prefix+truncateLeft(e.SVG, width-len(prefix)))
	}
}

// truncateLeft shortens s to at most n runes by dropping leading runes and
// prefixing "…". n <= 0 disables truncation.
func truncateLeft(s string, n int) string {
	r := []rune(s)
	if n <= 0 || len(r) <= n {
		return s
	}
	if n == 1 {
		return "…"
	}
	return "…" + string(r[len(r)-n+1:])
}

// formatDuration returns a compact duration string (e.g. "850ms", "3s").
func formatDuration(d time.Duration) string {
	if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	return d.Round(time.Second).String()
}
