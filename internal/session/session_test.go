package session

import (
	"testing"

	"github.com/nordlys/scdmod/internal/schedule"
)

func decodeAll(t *testing.T, lines ...string) []schedule.Entry {
	t.Helper()
	entries := make([]schedule.Entry, 0, len(lines))
	for _, line := range lines {
		e, err := schedule.Decode(line)
		if err != nil {
			t.Fatalf("Decode(%q) error = %v", line, err)
		}
		entries = append(entries, e)
	}
	schedule.SortDescending(entries)
	return entries
}

func typeString(s *Session, text string) {
	for _, r := range text {
		s.TypeRune(r)
	}
}

// fillValidDraft walks the form typing a valid entry, selecting the first
// experiment and the common mode, and stops at Done.
func fillValidDraft(s *Session) {
	s.StartAdd()
	for _, field := range []string{"2024", "6", "1", "12", "30", "60", "5"} {
		typeString(s, field)
		s.Forward()
	}
	s.Experiments.First() // Experiment
	s.Forward()
	s.Modes.First() // Scheduling Mode
	s.Forward()
	s.Forward() // skip Kwargs
}

func TestStartAdd(t *testing.T) {
	s := New(nil, nil)
	if _, active := s.Editing(); active {
		t.Error("new session is active")
	}
	s.StartAdd()
	field, active := s.Editing()
	if !active || field != FieldYear {
		t.Errorf("Editing() = %v, %v; want FieldYear, true", field, active)
	}
}

func TestTypeRune_RoutesToCurrentField(t *testing.T) {
	s := New(nil, nil)
	s.StartAdd()
	typeString(s, "2024")
	s.Forward()
	typeString(s, "11")

	if got := s.Buffer(FieldYear); got != "2024" {
		t.Errorf("year buffer = %q, want %q", got, "2024")
	}
	if got := s.Buffer(FieldMonth); got != "11" {
		t.Errorf("month buffer = %q, want %q", got, "11")
	}
}

func TestTypeRune_IgnoredWhenInactive(t *testing.T) {
	s := New(nil, nil)
	typeString(s, "2024")
	if got := s.Buffer(FieldYear); got != "" {
		t.Errorf("year buffer = %q, want empty", got)
	}
}

func TestTypeRune_IgnoredOnPickerFields(t *testing.T) {
	s := New(nil, []string{"normalscan"})
	s.StartAdd()
	s.JumpToDone()
	s.TypeRune('x') // Done swallows input
	s.Backward()    // Kwargs
	s.Backward()    // Scheduling Mode
	s.TypeRune('x')
	s.Backward() // Experiment
	s.TypeRune('x')

	for _, f := range []Field{FieldYear, FieldKwargs} {
		if got := s.Buffer(f); got != "" {
			t.Errorf("%v buffer = %q, want empty", f, got)
		}
	}
}

func TestBackspace(t *testing.T) {
	s := New(nil, nil)
	s.StartAdd()
	typeString(s, "2025")
	s.Backspace()
	if got := s.Buffer(FieldYear); got != "202" {
		t.Errorf("year buffer = %q, want %q", got, "202")
	}
	s.Backspace()
	s.Backspace()
	s.Backspace()
	s.Backspace() // empty buffer is a no-op
	if got := s.Buffer(FieldYear); got != "" {
		t.Errorf("year buffer = %q, want empty", got)
	}
}

func TestSubmit_Success(t *testing.T) {
	existing := decodeAll(t, "20200101 00:00 60 0 normalscan common")
	s := New(existing, []string{"normalscan", "twofsound"})

	fillValidDraft(s)
	if field, _ := s.Editing(); field != FieldDone {
		t.Fatalf("field before submit = %v, want FieldDone", field)
	}
	if err := s.Submit(); err != nil {
		t.Fatalf("Submit() error = %v", err)
	}

	if s.Entries.Len() != 2 {
		t.Fatalf("Entries.Len() = %d, want 2", s.Entries.Len())
	}
	// Descending order puts the 2024 entry first.
	if y := s.Entries.Items[0].Timestamp.Year(); y != 2024 {
		t.Errorf("first entry year = %d, want 2024", y)
	}
	if _, active := s.Editing(); active {
		t.Error("session still active after successful submit")
	}
	if got := s.Buffer(FieldYear); got != "" {
		t.Errorf("year buffer = %q after submit, want empty", got)
	}
	if len(s.Additions()) != 1 {
		t.Errorf("Additions() length = %d, want 1", len(s.Additions()))
	}
	if !s.Dirty() {
		t.Error("Dirty() = false after an addition")
	}
}

func TestSubmit_FailureKeepsBuffersAndRoutesField(t *testing.T) {
	s := New(nil, []string{"normalscan"})
	s.StartAdd()
	typeString(s, "2024")
	s.Forward()
	typeString(s, "6")
	s.Forward()
	typeString(s, "1")
	s.Forward()
	typeString(s, "12")
	s.Forward()
	typeString(s, "30")
	s.Forward()
	typeString(s, "60")
	s.Forward()
	typeString(s, "25") // priority over the maximum
	s.Experiments.First()
	s.Modes.First()
	s.JumpToDone()

	if err := s.Submit(); err == nil {
		t.Fatal("Submit() error = nil, want error")
	}

	field, active := s.Editing()
	if !active || field != FieldPriority {
		t.Errorf("Editing() = %v, %v; want FieldPriority, true", field, active)
	}
	if s.LastError() == nil {
		t.Error("LastError() = nil after failed submit")
	}
	// Every buffer survives so only the bad field needs re-entry.
	if got := s.Buffer(FieldYear); got != "2024" {
		t.Errorf("year buffer = %q, want preserved %q", got, "2024")
	}
	if got := s.Buffer(FieldPriority); got != "25" {
		t.Errorf("priority buffer = %q, want preserved %q", got, "25")
	}
	if s.Entries.Len() != 0 {
		t.Errorf("Entries.Len() = %d after failed submit, want 0", s.Entries.Len())
	}
	if s.Dirty() {
		t.Error("Dirty() = true after failed submit")
	}

	// Fixing the one field makes the retry succeed.
	s.Backspace()
	s.Backspace()
	typeString(s, "5")
	s.JumpToDone()
	if err := s.Submit(); err != nil {
		t.Fatalf("retry Submit() error = %v", err)
	}
	if s.LastError() != nil {
		t.Errorf("LastError() = %v after success, want nil", s.LastError())
	}
}

func TestSubmit_ValidatesExperimentMembership(t *testing.T) {
	s := New(nil, []string{"normalscan", "twofsound"})
	fillValidDraft(s)
	s.Experiments.ClearSelection() // nothing picked

	if err := s.Submit(); err == nil {
		t.Fatal("Submit() error = nil, want error")
	}
	if field, _ := s.Editing(); field != FieldExperiment {
		t.Errorf("field after failure = %v, want FieldExperiment", field)
	}
}

func TestSubmit_NoOpOffDoneStop(t *testing.T) {
	s := New(nil, nil)
	s.StartAdd()
	if err := s.Submit(); err != nil {
		t.Errorf("Submit() off Done = %v, want nil no-op", err)
	}
	if field, active := s.Editing(); !active || field != FieldYear {
		t.Errorf("Editing() = %v, %v; want FieldYear, true", field, active)
	}
}

func TestSubmit_SplitsKwargs(t *testing.T) {
	s := New(nil, []string{"normalscan"})
	fillValidDraft(s)
	s.Backward() // back to Kwargs
	typeString(s, "freq=10500 beam=7")
	s.JumpToDone()

	if err := s.Submit(); err != nil {
		t.Fatalf("Submit() error = %v", err)
	}
	kwargs := s.Entries.Items[0].Kwargs
	if len(kwargs) != 2 || kwargs[0] != "freq=10500" || kwargs[1] != "beam=7" {
		t.Errorf("Kwargs = %v, want [freq=10500 beam=7]", kwargs)
	}
}

func TestCancel_DropsDraft(t *testing.T) {
	s := New(nil, nil)
	s.StartAdd()
	typeString(s, "2024")
	s.Cancel()

	if _, active := s.Editing(); active {
		t.Error("session active after Cancel")
	}
	if got := s.Buffer(FieldYear); got != "" {
		t.Errorf("year buffer = %q after Cancel, want empty", got)
	}
	if s.Dirty() {
		t.Error("Dirty() = true after Cancel")
	}
}

func TestRemoveSelected(t *testing.T) {
	entries := decodeAll(t,
		"20200101 00:00 60 0 normalscan common",
		"20220101 00:00 60 0 twofsound common",
		"20240101 00:00 60 0 politescan common",
	)
	s := New(entries, nil)

	if _, ok := s.RemoveSelected(); ok {
		t.Error("RemoveSelected() with no cursor = true, want false")
	}

	s.Entries.First()
	removed, ok := s.RemoveSelected()
	if !ok {
		t.Fatal("RemoveSelected() = false, want true")
	}
	if removed.Timestamp.Year() != 2024 {
		t.Errorf("removed year = %d, want 2024", removed.Timestamp.Year())
	}
	if s.Entries.Len() != 2 {
		t.Errorf("Entries.Len() = %d, want 2", s.Entries.Len())
	}
	if len(s.Deletions()) != 1 {
		t.Errorf("Deletions() length = %d, want 1", len(s.Deletions()))
	}
	if !s.Dirty() {
		t.Error("Dirty() = false after a deletion")
	}
}

func TestRemoveSelected_LastEntryClampsCursor(t *testing.T) {
	entries := decodeAll(t,
		"20200101 00:00 60 0 normalscan common",
		"20220101 00:00 60 0 twofsound common",
	)
	s := New(entries, nil)
	s.Entries.Last()

	if _, ok := s.RemoveSelected(); !ok {
		t.Fatal("RemoveSelected() = false, want true")
	}
	if s.Entries.Index() != 0 {
		t.Errorf("cursor = %d after removing last entry, want 0", s.Entries.Index())
	}

	if _, ok := s.RemoveSelected(); !ok {
		t.Fatal("second RemoveSelected() = false, want true")
	}
	if s.Entries.Len() != 0 {
		t.Errorf("Entries.Len() = %d, want 0", s.Entries.Len())
	}
	if s.Entries.Index() != -1 {
		t.Errorf("cursor = %d on empty list, want -1", s.Entries.Index())
	}
}

func TestLedgers_SortedDescending(t *testing.T) {
	entries := decodeAll(t,
		"20200101 00:00 60 0 normalscan common",
		"20240101 00:00 60 0 twofsound common",
	)
	s := New(entries, nil)
	s.Entries.Last() // oldest
	s.RemoveSelected()
	s.Entries.First()
	s.RemoveSelected()

	deletions := s.Deletions()
	if len(deletions) != 2 {
		t.Fatalf("Deletions() length = %d, want 2", len(deletions))
	}
	if deletions[0].Timestamp.Year() != 2024 || deletions[1].Timestamp.Year() != 2020 {
		t.Errorf("deletions order = %d, %d; want 2024, 2020",
			deletions[0].Timestamp.Year(), deletions[1].Timestamp.Year())
	}
}

func TestBuffer_PickerFieldsReportSelection(t *testing.T) {
	s := New(nil, []string{"normalscan", "twofsound"})
	if got := s.Buffer(FieldExperiment); got != "" {
		t.Errorf("experiment buffer = %q with no selection, want empty", got)
	}
	s.Experiments.Next()
	s.Experiments.Next()
	if got := s.Buffer(FieldExperiment); got != "twofsound" {
		t.Errorf("experiment buffer = %q, want %q", got, "twofsound")
	}
	s.Modes.First()
	if got := s.Buffer(FieldMode); got != "common" {
		t.Errorf("mode buffer = %q, want %q", got, "common")
	}
}
