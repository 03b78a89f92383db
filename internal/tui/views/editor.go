package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/nordlys/scdmod/internal/session"
	"github.com/nordlys/scdmod/internal/tui/ui"
)

// editorFields is the render order of the form, matching the field cycle.
var editorFields = []session.Field{
	session.FieldYear,
	session.FieldMonth,
	session.FieldDay,
	session.FieldHour,
	session.FieldMinute,
	session.FieldDuration,
	session.FieldPriority,
	session.FieldExperiment,
	session.FieldMode,
	session.FieldKwargs,
	session.FieldDone,
}

// restrictions are the per-field input hints shown next to the form.
var restrictions = map[session.Field]string{
	session.FieldYear:       "2000 <= year <= 2050",
	session.FieldMonth:      "1 <= month <= 12",
	session.FieldDay:        "1 <= day <= 31",
	session.FieldHour:       "0 <= hour <= 23",
	session.FieldMinute:     "0 <= minute <= 59",
	session.FieldDuration:   "in minutes, > 0, or - for infinite",
	session.FieldPriority:   "0 <= priority <= 20",
	session.FieldKwargs:     "space-separated tokens",
	session.FieldExperiment: "pick with →",
	session.FieldMode:       "pick with →",
	session.FieldDone:       "press enter to submit",
}

// RenderEditor renders the entry form beside its context panel: the picker
// when one is open, the last error when a submit failed, and the current
// field's restriction otherwise.
func RenderEditor(sess *session.Session, styles ui.Styles, picking bool) string {
	current, _ := sess.Editing()

	var form strings.Builder
	form.WriteString(styles.EditorTitle.Render("Create a schedule entry"))
	form.WriteString("\n")
	for _, f := range editorFields {
		label := f.String()
		if f == session.FieldDone {
			label = "Enter"
		} else {
			label = fmt.Sprintf("%s: %s", label, sess.Buffer(f))
		}
		if f == current {
			form.WriteString(styles.FieldActive.Render(label))
		} else {
			form.WriteString(styles.FieldLabel.Render(label))
		}
		form.WriteString("\n")
	}

	return lipgloss.JoinHorizontal(lipgloss.Top,
		form.String(),
		"   ",
		renderContext(sess, styles, current, picking),
	)
}

func renderContext(sess *session.Session, styles ui.Styles, current session.Field, picking bool) string {
	if err := sess.LastError(); err != nil && !picking {
		return styles.EditorTitle.Render("Error") + "\n" +
			styles.ErrorBox.Render(err.Error())
	}

	if picking {
		switch current {
		case session.FieldExperiment:
			return renderPicker("Possible Experiments", sess.Experiments.Items, sess.Experiments.Index(), styles)
		case session.FieldMode:
			items := make([]string, sess.Modes.Len())
			for i, m := range sess.Modes.Items {
				items[i] = string(m)
			}
			return renderPicker("Scheduling Modes", items, sess.Modes.Index(), styles)
		}
	}

	return styles.EditorTitle.Render("Restrictions") + "\n" +
		styles.Restriction.Render(restrictions[current])
}

func renderPicker(title string, items []string, cursor int, styles ui.Styles) string {
	var b strings.Builder
	b.WriteString(styles.PickerTitle.Render(title))
	b.WriteString("\n")
	for i, item := range items {
		switch {
		case i == cursor:
			b.WriteString(styles.PickerSelected.Render("> " + item))
		case i%2 == 1:
			b.WriteString(styles.PickerItemAlt.Render("  " + item))
		default:
			b.WriteString(styles.PickerItem.Render("  " + item))
		}
		b.WriteString("\n")
	}
	return b.String()
}
