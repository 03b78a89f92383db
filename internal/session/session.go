// Package session holds the single mutable editing session: the live
// schedule list, the option pickers, the per-field input buffers with their
// cyclic field cursor, and the additions/deletions ledgers shown before a
// write is confirmed. It performs no I/O; the TUI feeds it commands and
// renders its state.
package session

import (
	"strings"

	"github.com/nordlys/scdmod/internal/schedule"
	"github.com/nordlys/scdmod/internal/selection"
)

// Session is the one aggregate of editor state, passed by pointer into
// every transition.
type Session struct {
	// Entries is the live schedule, kept in descending order.
	Entries selection.List[schedule.Entry]
	// Experiments and Modes back the two pickers.
	Experiments selection.List[string]
	Modes       selection.List[schedule.Mode]

	year     string
	month    string
	day      string
	hour     string
	minute   string
	duration string
	priority string
	kwargs   string

	editing Field
	active  bool
	lastErr *schedule.Error

	additions []schedule.Entry
	deletions []schedule.Entry
}

// New builds a session over already-loaded entries (descending order) and
// the pre-sorted experiment names.
func New(entries []schedule.Entry, experiments []string) *Session {
	return &Session{
		Entries:     selection.New(entries),
		Experiments: selection.New(experiments),
		Modes:       selection.New(schedule.Modes()),
	}
}

// Editing returns the current field and whether an add is in progress.
func (s *Session) Editing() (Field, bool) {
	return s.editing, s.active
}

// LastError returns the error recorded by the most recent failed submit,
// or nil.
func (s *Session) LastError() *schedule.Error {
	return s.lastErr
}

// Buffer returns the text buffer for a field. Picker fields report the
// current selection; Done is always empty.
func (s *Session) Buffer(f Field) string {
	switch f {
	case FieldYear:
		return s.year
	case FieldMonth:
		return s.month
	case FieldDay:
		return s.day
	case FieldHour:
		return s.hour
	case FieldMinute:
		return s.minute
	case FieldDuration:
		return s.duration
	case FieldPriority:
		return s.priority
	case FieldKwargs:
		return s.kwargs
	case FieldExperiment:
		exp, _ := s.Experiments.Selected()
		return exp
	case FieldMode:
		mode, ok := s.Modes.Selected()
		if !ok {
			return ""
		}
		return string(mode)
	}
	return ""
}

// StartAdd begins a new entry at the year field.
func (s *Session) StartAdd() {
	s.active = true
	s.editing = FieldYear
	s.lastErr = nil
}

// Forward advances to the next field in the cycle.
func (s *Session) Forward() {
	if s.active {
		s.editing = s.editing.Next()
	}
}

// Backward moves to the previous field in the cycle.
func (s *Session) Backward() {
	if s.active {
		s.editing = s.editing.Prev()
	}
}

// JumpToDone moves straight to the confirm stop.
func (s *Session) JumpToDone() {
	if s.active {
		s.editing = FieldDone
	}
}

// ClearError drops the recorded error without touching anything else.
func (s *Session) ClearError() {
	s.lastErr = nil
}

// TypeRune appends r to the current field's buffer. Picker fields and Done
// ignore typed input.
func (s *Session) TypeRune(r rune) {
	if !s.active || !s.editing.IsText() {
		return
	}
	buf := s.buffer(s.editing)
	*buf += string(r)
}

// Backspace removes the final character of the current field's buffer.
func (s *Session) Backspace() {
	if !s.active || !s.editing.IsText() {
		return
	}
	buf := s.buffer(s.editing)
	if len(*buf) > 0 {
		*buf = (*buf)[:len(*buf)-1]
	}
}

func (s *Session) buffer(f Field) *string {
	switch f {
	case FieldYear:
		return &s.year
	case FieldMonth:
		return &s.month
	case FieldDay:
		return &s.day
	case FieldHour:
		return &s.hour
	case FieldMinute:
		return &s.minute
	case FieldDuration:
		return &s.duration
	case FieldPriority:
		return &s.priority
	case FieldKwargs:
		return &s.kwargs
	}
	panic("session: no buffer for field " + f.String())
}

// Submit builds an entry from the buffers and picker selections. It is only
// meaningful at the Done stop; elsewhere it is a no-op.
//
// On success the entry joins the live list (re-sorted descending) and the
// additions ledger, the buffers are cleared and editing ends. On failure
// every buffer is left as typed, the error is recorded, and the field cursor
// moves to the field tagged in the error so only the bad field needs
// re-entry.
func (s *Session) Submit() error {
	if !s.active || s.editing != FieldDone {
		return nil
	}

	draft := schedule.Draft{
		Year:       s.year,
		Month:      s.month,
		Day:        s.day,
		Hour:       s.hour,
		Minute:     s.minute,
		Duration:   s.duration,
		Priority:   s.priority,
		Experiment: s.Buffer(FieldExperiment),
		Mode:       s.Buffer(FieldMode),
		Kwargs:     strings.Fields(s.kwargs),
	}

	entry, err := draft.Build(s.Experiments.Items)
	if err != nil {
		serr := err.(*schedule.Error)
		s.lastErr = serr
		s.editing = fieldFor(serr.Field)
		return err
	}

	s.Entries.Items = append(s.Entries.Items, entry)
	schedule.SortDescending(s.Entries.Items)
	s.additions = append(s.additions, entry)
	s.reset()
	return nil
}

// Cancel abandons the entry in progress without touching the live list.
func (s *Session) Cancel() {
	s.reset()
}

func (s *Session) reset() {
	s.year = ""
	s.month = ""
	s.day = ""
	s.hour = ""
	s.minute = ""
	s.duration = ""
	s.priority = ""
	s.kwargs = ""
	s.lastErr = nil
	s.active = false
	s.editing = FieldYear
}

// RemoveSelected moves the entry under the schedule cursor from the live
// list into the deletions ledger.
func (s *Session) RemoveSelected() (schedule.Entry, bool) {
	i := s.Entries.Index()
	if i < 0 {
		return schedule.Entry{}, false
	}
	removed := s.Entries.Items[i]
	s.Entries.Items = append(s.Entries.Items[:i], s.Entries.Items[i+1:]...)
	s.deletions = append(s.deletions, removed)
	if i >= len(s.Entries.Items) {
		s.Entries.Last()
	}
	return removed, true
}

// Additions returns a copy of the additions ledger in descending order,
// ready for the exit diff.
func (s *Session) Additions() []schedule.Entry {
	return sortedCopy(s.additions)
}

// Deletions returns a copy of the deletions ledger in descending order.
func (s *Session) Deletions() []schedule.Entry {
	return sortedCopy(s.deletions)
}

// Dirty reports whether the session holds net changes worth writing.
func (s *Session) Dirty() bool {
	return len(s.additions) > 0 || len(s.deletions) > 0
}

func sortedCopy(entries []schedule.Entry) []schedule.Entry {
	out := make([]schedule.Entry, len(entries))
	copy(out, entries)
	schedule.SortDescending(out)
	return out
}

// fieldFor maps a validation error's field tag onto the editor field to
// refocus.
func fieldFor(f schedule.Field) Field {
	switch f {
	case schedule.FieldYear:
		return FieldYear
	case schedule.FieldMonth:
		return FieldMonth
	case schedule.FieldDay:
		return FieldDay
	case schedule.FieldHour:
		return FieldHour
	case schedule.FieldMinute:
		return FieldMinute
	case schedule.FieldDuration:
		return FieldDuration
	case schedule.FieldPriority:
		return FieldPriority
	case schedule.FieldExperiment:
		return FieldExperiment
	case schedule.FieldMode:
		return FieldMode
	case schedule.FieldKwargs:
		return FieldKwargs
	}
	return FieldYear
}
