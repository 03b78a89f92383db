package schedule

import "fmt"

// Kind classifies a schedule validation error.
type Kind int

const (
	KindInvalidDate Kind = iota
	KindInvalidTime
	KindInvalidDuration
	KindInvalidPriority
	KindInvalidExperiment
	KindInvalidMode
	KindInvalidKwargs
	KindMissingFields
)

var kindNames = [...]string{
	KindInvalidDate:       "invalid date",
	KindInvalidTime:       "invalid time",
	KindInvalidDuration:   "invalid duration",
	KindInvalidPriority:   "invalid priority",
	KindInvalidExperiment: "invalid experiment",
	KindInvalidMode:       "invalid scheduling mode",
	KindInvalidKwargs:     "invalid kwargs",
	KindMissingFields:     "missing fields",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// Field identifies which entry field an error was raised for.
// Focus routing in the editor switches on this tag, never on message text.
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
)

var fieldNames = [...]string{
	FieldYear:       "year",
	FieldMonth:      "month",
	FieldDay:        "day",
	FieldHour:       "hour",
	FieldMinute:     "minute",
	FieldDuration:   "duration",
	FieldPriority:   "priority",
	FieldExperiment: "experiment",
	FieldMode:       "scheduling mode",
	FieldKwargs:     "kwargs",
}

func (f Field) String() string {
	if int(f) < len(fieldNames) {
		return fieldNames[f]
	}
	return "unknown"
}

// Error is a schedule entry validation failure. Kind gives the error
// category and Field the offending field; Message names the bad value.
type Error struct {
	Kind    Kind
	Field   Field
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func newError(kind Kind, field Field, format string, args ...any) *Error {
	return &Error{Kind: kind, Field: field, Message: fmt.Sprintf(format, args...)}
}
