// Package views renders the schedule editor screens from session state.
package views

import (
	"fmt"
	"strings"

	"github.com/nordlys/scdmod/internal/schedule"
	"github.com/nordlys/scdmod/internal/session"
	"github.com/nordlys/scdmod/internal/tui/ui"
)

// RenderSchedule renders the live schedule list with the cursor row
// highlighted. offset is the viewport's first visible row; it is owned by
// the caller and survives selection clearing.
func RenderSchedule(sess *session.Session, styles ui.Styles, height, offset int) string {
	var b strings.Builder
	b.WriteString(styles.ListTitle.Render("Schedule Lines"))
	b.WriteString("\n")

	items := sess.Entries.Items
	if len(items) == 0 {
		b.WriteString(styles.FooterIdle.Render("(empty schedule)"))
		b.WriteString("\n")
		return b.String()
	}

	if height < 1 {
		height = 1
	}
	end := offset + height
	if end > len(items) {
		end = len(items)
	}
	if offset > end {
		offset = end
	}

	cursor := sess.Entries.Index()
	for i := offset; i < end; i++ {
		line := schedule.Encode(items[i])
		if i == cursor {
			b.WriteString(styles.LineSelected.Render("> " + line))
		} else {
			b.WriteString(styles.LineNormal.Render("  " + line))
		}
		b.WriteString("\n")
	}

	if end < len(items) {
		b.WriteString(styles.FooterIdle.Render(fmt.Sprintf("… %d more", len(items)-end)))
		b.WriteString("\n")
	}

	return b.String()
}
