package planner

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"github.com/pkordes/tripmate/internal/domain"
)

// cellWidth is two digits, a marker column, and a separating space.
const cellWidth = 4

const busyMarker = "•"

var (
	titleColor    = color.New(color.FgWhite, color.Bold)
	headerColor   = color.New(color.Faint, color.FgWhite)
	busyColor     = color.New(color.FgHiBlue, color.Bold)
	todayColor    = color.New(color.BgBlue, color.FgHiWhite)
	selectedColor = color.New(color.Underline, color.Bold)
)

// RenderMonth writes m as a 7-column grid. Days with activities carry a dot;
// today and the selected day are highlighted when colour is enabled.
func RenderMonth(w io.Writer, m Month) error {
	width := 7*cellWidth - 1
	pad := max((width-len(m.Title))/2, 0)
	if _, err := titleColor.Fprintln(w, strings.Repeat(" ", pad)+m.Title); err != nil {
		return err
	}
	if _, err := headerColor.Fprintln(w, "Su  Mo  Tu  We  Th  Fr  Sa"); err != nil {
		return err
	}

	var b strings.Builder
	b.WriteString(strings.Repeat(" ", m.Offset*cellWidth))
	col := m.Offset
	for _, d := range m.Days {
		b.WriteString(dayCell(d))
		col++
		if col == 7 {
			b.WriteString("\n")
			col = 0
			continue
		}
		b.WriteString(" ")
	}
	out := strings.TrimRight(b.String(), " \n")
	_, err := fmt.Fprintln(w, trimLines(out))
	return err
}

func dayCell(d Day) string {
	num := fmt.Sprintf("%2d", d.Day)
	switch {
	case d.IsSelected:
		num = selectedColor.Sprint(num)
	case d.IsToday:
		num = todayColor.Sprint(num)
	}
	marker := " "
	if d.HasActivities {
		marker = busyColor.Sprint(busyMarker)
	}
	return num + marker
}

// trimLines drops trailing blanks from every line of s.
func trimLines(s string) string {
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimRight(l, " ")
	}
	return strings.Join(lines, "\n")
}

// RenderDay writes day's heading followed by one row per activity:
// start time, title, duration and description, in the order given.
func RenderDay(w io.Writer, day time.Time, activities []domain.Activity) error {
	if _, err := titleColor.Fprintln(w, domain.FormatDate(day)); err != nil {
		return err
	}
	if len(activities) == 0 {
		_, err := headerColor.Fprintln(w, "  No activities")
		return err
	}

	tbl := uitable.New()
	tbl.Separator = "  "
	for _, a := range activities {
		tbl.AddRow(a.StartTime, a.Title, fmt.Sprintf("%d min", a.Duration), a.Description)
	}
	tbl.RightAlign(2)
	_, err := fmt.Fprintln(w, tbl)
	return err
}
