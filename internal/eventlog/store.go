// Package eventlog records one history entry per icon generation run.
package eventlog

import "time"

// Outcome classifies how a run ended.
type Outcome string

const (
	OutcomeOK         Outcome = "ok"
	OutcomeFailed     Outcome = "failed"
	OutcomeMissingSVG Outcome = "missing_svg"
)

// Entry is one recorded run.
type Entry struct {
	Time     time.Time
	SVG      string
	Backend  string // empty unless Outcome is OutcomeOK
	Outcome  Outcome
	Files    int
	Duration time.Duration
}

// Store abstracts run history storage.
type Store interface {
	Log(e Entry) error
	Entries(limit int) ([]Entry, error) // newest first, 0 = all
	Clean(days int) (int, error)        // remove entries older than days, return removed count
	Clear() error
	Path() string
	Close() error
}

// DayCutoff returns midnight local time, days-1 days before today.
// DayCutoff(1) is the start of today.
func DayCutoff(days int) time.Time {
	now := time.Now()
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return midnight.AddDate(0, 0, -(days - 1))
}
