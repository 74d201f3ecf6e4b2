package printers

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"
)

const width = len("11 12 13 14 15 16 17") // an example week

// Month prints a calendar of then's month. Days with an entry are bold,
// today is underlined.
func (pp *PrettyPrint) Month(then, today time.Time, entries []time.Time) {
	count := make([]int, DaysIn(then))
	for _, e := range entries {
		if e.Year() == then.Year() && e.Month() == then.Month() {
			count[e.Day()-1]++
		}
	}
	pp.PrintMonthCount(then, today, count)
}

func (pp *PrettyPrint) PrintMonthCount(then, today time.Time, count []int) {
	out := pp.out()
	d := StartDay(then)
	tf := color.New(color.Italic)

	m := fmt.Sprintf("%s %d", then.Month(), then.Year())
	mid := (width - len(m)) / 2
	if mid < 0 {
		mid = 0
	}
	_, _ = tf.Fprintf(out, "%s%s\n", strings.Repeat(" ", mid), m)
	_, _ = fmt.Fprintln(out, "Su Mo Tu We Th Fr Sa")

	// Pad out the start of the month.
	_, _ = fmt.Fprint(out, strings.Repeat("   ", int(d)))

	l1 := color.New(color.Faint)
	l2 := color.New(color.Bold)
	sameMonth := today.Year() == then.Year() && today.Month() == then.Month()

	days := DaysIn(then)
	for i := 0; i < days; i++ {
		printer := l1
		if i < len(count) && count[i] > 0 {
			printer = l2
		}
		if sameMonth && today.Day() == i+1 {
			printer = color.New(color.Bold, color.Underline)
		}
		_, _ = printer.Fprintf(out, "%2d", i+1)
		_, _ = fmt.Fprint(out, " ")

		d++
		if d > time.Saturday {
			d = time.Sunday
			_, _ = fmt.Fprint(out, "\n")
		}
	}
	_, _ = fmt.Fprint(out, "\n\n")
}

func DaysIn(then time.Time) int {
	return time.Date(then.Year(), then.Month()+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func StartDay(then time.Time) time.Weekday {
	return time.Date(then.Year(), then.Month(), 1, 0, 0, 0, 0, time.UTC).Weekday()
}
