package session

import "testing"

var cycleOrder = []Field{
	FieldYear, FieldMonth, FieldDay, FieldHour, FieldMinute,
	FieldDuration, FieldPriority, FieldExperiment, FieldMode,
	FieldKwargs, FieldDone,
}

func TestFieldCycle_ForwardVisitsEveryStopAndWraps(t *testing.T) {
	f := FieldYear
	for i := 1; i <= len(cycleOrder); i++ {
		f = f.Next()
		want := cycleOrder[i%len(cycleOrder)]
		if f != want {
			t.Fatalf("step %d: Next() = %v, want %v", i, f, want)
		}
	}
	if f != FieldYear {
		t.Errorf("full cycle ends at %v, want FieldYear", f)
	}
}

func TestFieldCycle_PrevIsInverseOfNext(t *testing.T) {
	for _, f := range cycleOrder {
		if got := f.Next().Prev(); got != f {
			t.Errorf("%v.Next().Prev() = %v", f, got)
		}
		if got := f.Prev().Next(); got != f {
			t.Errorf("%v.Prev().Next() = %v", f, got)
		}
	}
}

func TestField_IsText(t *testing.T) {
	nonText := map[Field]bool{FieldExperiment: true, FieldMode: true, FieldDone: true}
	for _, f := range cycleOrder {
		if got := f.IsText(); got == nonText[f] {
			t.Errorf("%v.IsText() = %v", f, got)
		}
	}
}

func TestField_String(t *testing.T) {
	if got := FieldMode.String(); got != "Scheduling Mode" {
		t.Errorf("FieldMode.String() = %q", got)
	}
	if got := FieldDone.String(); got != "Done" {
		t.Errorf("FieldDone.String() = %q", got)
	}
}
