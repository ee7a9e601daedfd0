package dates

import (
	"time"

	"recurrent/internal/normalize"
)

// Duration resolves "[up to] [the] [next] [N] days|weeks|months|years" into
// the date that ends the span when it starts at anchor. N defaults to 1.
func Duration(toks []normalize.Token, anchor time.Time) (time.Time, bool) {
	c := normalize.NewCursor(toks)
	if c.Word("up") && !c.Word("to") {
		return time.Time{}, false
	}
	c.Word("the")
	c.Word("next")
	n := 1
	switch t := c.Peek(0); {
	case t.Kind == normalize.Number:
		n = t.Value
		c.Next()
	case t.Is("a", "an"):
		c.Next()
	}
	unit, ok := c.Next().Unit()
	if !ok || !c.Done() || n < 1 {
		return time.Time{}, false
	}
	base := dayOf(anchor)
	switch unit {
	case "day":
		return base.AddDate(0, 0, n), true
	case "week":
		return base.AddDate(0, 0, 7*n), true
	case "month":
		return AddCalendar(base, 0, n), true
	case "year":
		return AddCalendar(base, n, 0), true
	}
	return time.Time{}, false
}

// AddCalendar adds years and months. When the day does not exist in the
// target month the result moves forward to the 1st of the following month,
// so 2012-02-29 plus one year is 2013-03-01.
func AddCalendar(t time.Time, years, months int) time.Time {
	first := time.Date(t.Year()+years, t.Month()+time.Month(months), 1, t.Hour(), t.Minute(), t.Second(), 0, t.Location())
	last := first.AddDate(0, 1, -1).Day()
	if t.Day() > last {
		return first.AddDate(0, 1, 0)
	}
	return first.AddDate(0, 0, t.Day()-1)
}
