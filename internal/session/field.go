package session

// Field is one stop in the editor's fixed cyclic field order. FieldDone is
// the confirm stop; the cycle wraps from FieldDone back to FieldYear.
type Field int

const (
	FieldYear Field = iota
	FieldMonth
	FieldDay
	FieldHour
	FieldMinute
	FieldDuration
	FieldPriority
	FieldExperiment
	FieldMode
	FieldKwargs
	FieldDone
)

// The cycle is a lookup table rather than conditionals so it is obviously
// exhaustive and testable on its own.
var nextField = [...]Field{
	FieldYear:       FieldMonth,
	FieldMonth:      FieldDay,
	FieldDay:        FieldHour,
	FieldHour:       FieldMinute,
	FieldMinute:     FieldDuration,
	FieldDuration:   FieldPriority,
	FieldPriority:   FieldExperiment,
	FieldExperiment: FieldMode,
	FieldMode:       FieldKwargs,
	FieldKwargs:     FieldDone,
	FieldDone:       FieldYear,
}

var prevField = [...]Field{
	FieldYear:       FieldDone,
	FieldMonth:      FieldYear,
	FieldDay:        FieldMonth,
	FieldHour:       FieldDay,
	FieldMinute:     FieldHour,
	FieldDuration:   FieldMinute,
	FieldPriority:   FieldDuration,
	FieldExperiment: FieldPriority,
	FieldMode:       FieldExperiment,
	FieldKwargs:     FieldMode,
	FieldDone:       FieldKwargs,
}

// Next returns the following field in the cycle.
func (f Field) Next() Field { return nextField[f] }

// Prev returns the preceding field in the cycle.
func (f Field) Prev() Field { return prevField[f] }

var fieldLabels = [...]string{
	FieldYear:       "Year",
	FieldMonth:      "Month",
	FieldDay:        "Day",
	FieldHour:       "Hour",
	FieldMinute:     "Minute",
	FieldDuration:   "Duration",
	FieldPriority:   "Priority",
	FieldExperiment: "Experiment",
	FieldMode:       "Scheduling Mode",
	FieldKwargs:     "Kwargs",
	FieldDone:       "Done",
}

func (f Field) String() string {
	if int(f) < len(fieldLabels) {
		return fieldLabels[f]
	}
	return "unknown"
}

// IsText reports whether the field is typed into a buffer. Experiment and
// scheduling mode are chosen from pickers, and Done is a confirm stop.
func (f Field) IsText() bool {
	switch f {
	case FieldExperiment, FieldMode, FieldDone:
		return false
	}
	return true
}
