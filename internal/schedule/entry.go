// Package schedule defines the Borealis schedule entry model: the entry
// value itself, its validating constructor, the one-line text codec, and
// the total order used for sorting and diff rendering.
package schedule

import (
	"slices"
	"strconv"
	"strings"
	"time"
)

// Year bounds accepted for a schedule entry timestamp.
const (
	MinYear = 2000
	MaxYear = 2050
)

// MaxPriority is the highest allowed entry priority.
const MaxPriority = 20

// Mode is the execution class of a schedule entry.
type Mode string

const (
	ModeCommon        Mode = "common"
	ModeDiscretionary Mode = "discretionary"
	ModeSpecial       Mode = "special"
)

// Modes returns the scheduling modes in canonical order.
func Modes() []Mode {
	return []Mode{ModeCommon, ModeDiscretionary, ModeSpecial}
}

// ParseMode parses a mode token. Only the exact lowercase names are valid.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case ModeCommon, ModeDiscretionary, ModeSpecial:
		return Mode(s), nil
	}
	return "", newError(KindInvalidMode, FieldMode, "unknown scheduling mode %q", s)
}

// Duration is how long an entry runs: a whole number of minutes, or
// infinite (runs until superseded).
type Duration struct {
	Minutes  int
	Infinite bool
}

// String renders the duration as its schedule-file token.
func (d Duration) String() string {
	if d.Infinite {
		return "-"
	}
	return strconv.Itoa(d.Minutes)
}

func compareDuration(a, b Duration) int {
	// An infinite duration carries zero minutes, so it orders before any
	// finite duration (minimum one minute).
	am, bm := a.Minutes, b.Minutes
	if a.Infinite {
		am = 0
	}
	if b.Infinite {
		bm = 0
	}
	return am - bm
}

// Entry is one scheduled experiment activation.
type Entry struct {
	Timestamp  time.Time // UTC, minute resolution
	Duration   Duration
	Priority   int
	Experiment string
	Mode       Mode
	Kwargs     []string
}

// Compare orders entries lexicographically by
// (timestamp, duration, priority, experiment, mode, kwargs).
func Compare(a, b Entry) int {
	if c := a.Timestamp.Compare(b.Timestamp); c != 0 {
		return c
	}
	if c := compareDuration(a.Duration, b.Duration); c != 0 {
		return c
	}
	if c := a.Priority - b.Priority; c != 0 {
		return c
	}
	if c := strings.Compare(a.Experiment, b.Experiment); c != 0 {
		return c
	}
	if c := strings.Compare(string(a.Mode), string(b.Mode)); c != 0 {
		return c
	}
	return slices.Compare(a.Kwargs, b.Kwargs)
}

// SortAscending sorts entries in place by the total order (oldest first),
// matching the on-disk convention.
func SortAscending(entries []Entry) {
	slices.SortFunc(entries, Compare)
}

// SortDescending sorts entries in place most-recent-first, the in-memory
// and display convention: sorted ascending, then reversed.
func SortDescending(entries []Entry) {
	SortAscending(entries)
	slices.Reverse(entries)
}

// Draft holds the raw field text an entry is built from, either tokenized
// from a schedule line or accumulated in the editor's buffers.
type Draft struct {
	Year     string
	Month    string
	Day      string
	Hour     string
	Minute   string
	Duration string
	Priority string

	Experiment string
	Mode       string
	Kwargs     []string
}

// Build validates the draft and constructs an Entry. Rules are applied
// fail-fast: year, month, day, hour, minute, calendar validity of the
// combined date, duration (finite positivity or the infinite-requires-
// priority-zero rule), priority range, experiment membership, mode, kwargs.
// The first violated rule's error is returned with its Field tag set.
//
// known is the set of valid experiment names. An empty set skips the
// membership check (decoding an existing file must not fail because an
// experiment module was since removed).
func (d Draft) Build(known []string) (Entry, error) {
	year, err := parseBounded(d.Year, MinYear, MaxYear, KindInvalidDate, FieldYear)
	if err != nil {
		return Entry{}, err
	}
	month, err := parseBounded(d.Month, 1, 12, KindInvalidDate, FieldMonth)
	if err != nil {
		return Entry{}, err
	}
	day, err := parseBounded(d.Day, 1, 31, KindInvalidDate, FieldDay)
	if err != nil {
		return Entry{}, err
	}
	hour, err := parseBounded(d.Hour, 0, 23, KindInvalidTime, FieldHour)
	if err != nil {
		return Entry{}, err
	}
	minute, err := parseBounded(d.Minute, 0, 59, KindInvalidTime, FieldMinute)
	if err != nil {
		return Entry{}, err
	}

	ts := time.Date(year, time.Month(month), day, hour, minute, 0, 0, time.UTC)
	if ts.Day() != day || ts.Month() != time.Month(month) || ts.Year() != year {
		return Entry{}, newError(KindInvalidDate, FieldDay,
			"%04d-%02d-%02d is not a calendar date", year, month, day)
	}

	var dur Duration
	if d.Duration == "-" {
		dur = Duration{Infinite: true}
	} else {
		minutes, err := strconv.Atoi(d.Duration)
		if err != nil {
			return Entry{}, newError(KindInvalidDuration, FieldDuration,
				"duration %q is not a whole number of minutes", d.Duration)
		}
		if minutes < 1 {
			return Entry{}, newError(KindInvalidDuration, FieldDuration,
				"duration %d must be at least one minute", minutes)
		}
		dur = Duration{Minutes: minutes}
	}

	priority, err := strconv.Atoi(d.Priority)
	if err != nil {
		return Entry{}, newError(KindInvalidPriority, FieldPriority,
			"priority %q is not an integer", d.Priority)
	}
	if dur.Infinite && priority != 0 {
		return Entry{}, newError(KindInvalidPriority, FieldPriority,
			"infinite duration requires priority 0, got %d", priority)
	}
	if priority < 0 || priority > MaxPriority {
		return Entry{}, newError(KindInvalidPriority, FieldPriority,
			"%d > %d", priority, MaxPriority)
	}

	if d.Experiment == "" {
		return Entry{}, newError(KindInvalidExperiment, FieldExperiment,
			"no experiment selected")
	}
	if len(known) > 0 && !slices.Contains(known, d.Experiment) {
		return Entry{}, newError(KindInvalidExperiment, FieldExperiment,
			"unknown experiment %q", d.Experiment)
	}

	mode, err := ParseMode(d.Mode)
	if err != nil {
		return Entry{}, err
	}

	for _, kw := range d.Kwargs {
		if kw == "" || strings.ContainsAny(kw, " \t") {
			return Entry{}, newError(KindInvalidKwargs, FieldKwargs,
				"kwarg %q is not a single token", kw)
		}
	}
	var kwargs []string
	if len(d.Kwargs) > 0 {
		kwargs = slices.Clone(d.Kwargs)
	}

	return Entry{
		Timestamp:  ts,
		Duration:   dur,
		Priority:   priority,
		Experiment: d.Experiment,
		Mode:       mode,
		Kwargs:     kwargs,
	}, nil
}

func parseBounded(s string, lo, hi int, kind Kind, field Field) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, newError(kind, field, "%s %q is not an integer", field, s)
	}
	if n < lo || n > hi {
		return 0, newError(kind, field, "%s %d out of range %d..%d", field, n, lo, hi)
	}
	return n, nil
}
