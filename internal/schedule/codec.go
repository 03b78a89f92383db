package schedule

import (
	"fmt"
	"strings"
)

// Decode parses one schedule-file line into an Entry. The line is
// whitespace-tokenized, so both the padded on-disk form and plain
// single-space separation are accepted. All construction invariants are
// re-applied; a well-formed line that violates one is still rejected.
func Decode(line string) (Entry, error) {
	fields := strings.Fields(line)
	if len(fields) < 6 {
		return Entry{}, newError(KindMissingFields, FieldYear,
			"expected at least 6 fields, got %d", len(fields))
	}

	date, clock := fields[0], fields[1]
	if len(date) != 8 {
		return Entry{}, newError(KindInvalidDate, FieldYear,
			"date %q is not in YYYYMMDD form", date)
	}
	hour, minute, ok := strings.Cut(clock, ":")
	if !ok {
		return Entry{}, newError(KindInvalidTime, FieldHour,
			"time %q is not in HH:MM form", clock)
	}

	d := Draft{
		Year:       date[:4],
		Month:      date[4:6],
		Day:        date[6:8],
		Hour:       hour,
		Minute:     minute,
		Duration:   fields[2],
		Priority:   fields[3],
		Experiment: fields[4],
		Mode:       fields[5],
		Kwargs:     fields[6:],
	}
	return d.Build(nil)
}

// Encode renders an Entry as its schedule-file line. The combined date and
// time token is left-padded to column 14; each kwarg is preceded by one
// space. Encode and Decode round-trip for every valid entry.
func Encode(e Entry) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%-14s %s %d %s %s",
		e.Timestamp.UTC().Format("20060102 15:04"),
		e.Duration, e.Priority, e.Experiment, e.Mode)
	for _, kw := range e.Kwargs {
		b.WriteByte(' ')
		b.WriteString(kw)
	}
	return b.String()
}
