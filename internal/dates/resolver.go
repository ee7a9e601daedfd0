// Package dates resolves single-point date and time fragments against a
// reference clock, and converts "for N weeks" style durations into an end
// date. Literal and relative forms are handled here; anything else may be
// handed to a Fallback collaborator.
package dates

import (
	"time"

	"recurrent/internal/normalize"
)

// Moment is a resolved point in time.
type Moment struct {
	Time time.Time
	// Clock is set when the expression named a time of day.
	Clock bool
	// Relative is set for day terms such as "tomorrow" or "next tuesday".
	Relative bool
}

// Fallback resolves expressions the built-in grammar does not know. It must
// only succeed when its match covers the whole text.
type Fallback interface {
	Resolve(text string, ref time.Time) (time.Time, bool)
}

// Resolver anchors every expression at Ref. Ref is a naive wall-clock time.
type Resolver struct {
	Ref      time.Time
	Fallback Fallback
}

// ImpliedHour is the clock given to relative day terms with no explicit time.
const ImpliedHour = 9

// Absolute resolves a complete standalone expression. Relative day terms
// without a clock get ImpliedHour. text is the original phrase for the
// fallback collaborator.
func (r Resolver) Absolute(toks []normalize.Token, text string) (Moment, bool) {
	if m, ok := r.Moment(toks); ok {
		if m.Relative && !m.Clock {
			m.Time = atClock(m.Time, ImpliedHour, 0, 0)
			m.Clock = true
		}
		return m, true
	}
	if r.Fallback == nil || len(toks) == 0 {
		return Moment{}, false
	}
	t, ok := r.Fallback.Resolve(text, r.Ref)
	if !ok {
		return Moment{}, false
	}
	t = time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), 0, time.UTC)
	return Moment{Time: t, Clock: true}, true
}

// Moment resolves a date with an optional time of day, or a bare time of day
// on the reference date. Year-less dates roll forward past Ref.
func (r Resolver) Moment(toks []normalize.Token) (Moment, bool) {
	return r.momentFrom(toks, r.Ref)
}

// Start resolves a DTSTART fragment. A bare month means the first of the next
// such month, the current one included.
func (r Resolver) Start(toks []normalize.Token) (Moment, bool) {
	if m, y, ok := monthOnly(toks); ok {
		if y == 0 {
			y = r.Ref.Year()
			if m < r.Ref.Month() {
				y++
			}
		}
		return Moment{Time: date(y, m, 1)}, true
	}
	return r.momentFrom(toks, r.Ref)
}

// Until resolves an UNTIL fragment relative to anchor, which is the rule's
// DTSTART when one was given. A bare month lands strictly after anchor's month.
func (r Resolver) Until(toks []normalize.Token, anchor time.Time) (Moment, bool) {
	if m, y, ok := monthOnly(toks); ok {
		if y == 0 {
			y = anchor.Year()
			if m <= anchor.Month() {
				y++
			}
		}
		return Moment{Time: date(y, m, 1)}, true
	}
	if base := dayOf(anchor); base.After(dayOf(r.Ref)) {
		return r.momentFrom(toks, base)
	}
	return r.momentFrom(toks, r.Ref)
}

// MonthYear resolves a whole-month exclusion such as "may" or "march 2011".
// Without a year the month is taken in anchor's year unless it is already
// behind anchor's month.
func (r Resolver) MonthYear(toks []normalize.Token, anchor time.Time) (time.Month, int, bool) {
	m, y, ok := monthOnly(toks)
	if !ok {
		return 0, 0, false
	}
	if y == 0 {
		y = anchor.Year()
		if m < anchor.Month() {
			y++
		}
	}
	return m, y, true
}

func (r Resolver) momentFrom(toks []normalize.Token, base time.Time) (Moment, bool) {
	if len(toks) == 0 {
		return Moment{}, false
	}
	c := normalize.NewCursor(toks)

	// Leading time of day: "at 9am on the 2nd fri in feb", "10:00 on 8/1/2100".
	h, mi, s, lead := clock(c)
	if lead {
		c.Word("on")
		if c.Done() {
			return Moment{Time: atClock(r.Ref, h, mi, s), Clock: true}, true
		}
	}
	start := c.Mark()
	for _, alt := range []func(*normalize.Cursor, time.Time) (Moment, bool){
		r.relative,
		r.nthWeekday,
		r.dayOfYear,
		r.ordinalPeriod,
		r.literal,
	} {
		c.Reset(start)
		m, ok := alt(c, base)
		if !ok {
			continue
		}
		th, tmi, ts, trail := 0, 0, 0, false
		if !lead {
			th, tmi, ts, trail = clock(c)
		}
		if !c.Done() {
			continue
		}
		switch {
		case lead:
			m.Time, m.Clock = atClock(m.Time, h, mi, s), true
		case trail:
			m.Time, m.Clock = atClock(m.Time, th, tmi, ts), true
		}
		return m, true
	}
	return Moment{}, false
}

// clock consumes "at <time>" or a bare clock token and returns 24h fields.
func clock(c *normalize.Cursor) (int, int, int, bool) {
	mark := c.Mark()
	at := c.Word("at")
	t := c.Next()
	switch {
	case t.Kind == normalize.Clock:
		if h, mi, s, ok := ClockOf(t); ok {
			return h, mi, s, true
		}
	case t.Kind == normalize.Number && at && t.Value <= 23:
		if h, mi, s, ok := ClockOf(normalize.Token{Kind: normalize.Clock, Hour: t.Value}); ok {
			return h, mi, s, true
		}
	}
	c.Reset(mark)
	return 0, 0, 0, false
}

// ClockOf converts a clock token into 24h fields. Without am/pm, hours 1..7
// are read as afternoon.
func ClockOf(t normalize.Token) (hour, minute, second int, ok bool) {
	if t.Minute > 59 || t.Second > 59 {
		return 0, 0, 0, false
	}
	h := t.Hour
	switch t.Meridiem {
	case normalize.AM:
		if h < 1 || h > 12 {
			return 0, 0, 0, false
		}
		if h == 12 {
			h = 0
		}
	case normalize.PM:
		if h < 1 || h > 12 {
			return 0, 0, 0, false
		}
		if h < 12 {
			h += 12
		}
	default:
		if h > 23 {
			return 0, 0, 0, false
		}
		if h >= 1 && h <= 7 {
			h += 12
		}
	}
	return h, t.Minute, t.Second, true
}

// literal handles calendar dates, optionally prefixed by a weekday name:
// "march 3rd", "mar 2 2012", "2nd of feb", "3 march", "8/1/2100", "2010-03-04".
func (r Resolver) literal(c *normalize.Cursor, base time.Time) (Moment, bool) {
	c.Kind(normalize.Weekday)
	c.Word("the")

	var (
		m    time.Month
		d, y int
	)
	t := c.Next()
	switch t.Kind {
	case normalize.Slash:
		m, d, y = t.Month(), t.Day, t.Year
	case normalize.Month:
		m = t.Month()
		n, ok := dayNumber(c.Next())
		if !ok {
			return Moment{}, false
		}
		d = n
		y = year(c)
	case normalize.Ordinal, normalize.Number:
		n, ok := dayNumber(t)
		if !ok {
			return Moment{}, false
		}
		c.Word("of")
		mt, ok := c.Kind(normalize.Month)
		if !ok {
			return Moment{}, false
		}
		m, d, y = mt.Month(), n, year(c)
	default:
		return Moment{}, false
	}
	if m < time.January || m > time.December || d > daysIn(y, m, base) {
		return Moment{}, false
	}
	if y != 0 {
		return Moment{Time: date(y, m, d)}, true
	}
	t0 := date(base.Year(), m, d)
	if t0.Before(dayOf(base)) {
		t0 = date(base.Year()+1, m, d)
	}
	return Moment{Time: t0}, true
}

// nthWeekday handles "2nd fri in feb", "last friday of february 2011".
func (r Resolver) nthWeekday(c *normalize.Cursor, _ time.Time) (Moment, bool) {
	c.Word("the")
	ord, ok := c.Kind(normalize.Ordinal)
	if !ok || ord.Value == 0 {
		return Moment{}, false
	}
	wd, ok := c.Kind(normalize.Weekday)
	if !ok || !c.Word("in", "of") {
		return Moment{}, false
	}
	mt, ok := c.Kind(normalize.Month)
	if !ok {
		return Moment{}, false
	}
	y := year(c)
	if y == 0 {
		y = r.Ref.Year()
	}
	t, ok := NthWeekday(y, mt.Month(), wd.Weekday(), ord.Value)
	return Moment{Time: t}, ok
}

// dayOfYear handles "35th day", "36th day of 2011", "40th day in 2020".
func (r Resolver) dayOfYear(c *normalize.Cursor, _ time.Time) (Moment, bool) {
	c.Word("the")
	ord, ok := c.Kind(normalize.Ordinal)
	if !ok || ord.Value < 1 || !c.Word("day") {
		return Moment{}, false
	}
	y := r.Ref.Year()
	mark := c.Mark()
	if c.Word("in", "of") {
		if y = year(c); y == 0 {
			c.Reset(mark)
			y = r.Ref.Year()
		}
	}
	t, ok := DayOfYear(y, ord.Value)
	return Moment{Time: t}, ok
}

// ordinalPeriod handles "2nd week", the Monday starting that week of the
// reference year, and "2nd month", that day of the reference month.
func (r Resolver) ordinalPeriod(c *normalize.Cursor, _ time.Time) (Moment, bool) {
	c.Word("the")
	ord, ok := c.Kind(normalize.Ordinal)
	if !ok || ord.Value < 1 {
		return Moment{}, false
	}
	switch {
	case c.Word("week"):
		t, ok := WeekOfYear(r.Ref.Year(), ord.Value)
		return Moment{Time: t}, ok
	case c.Word("month"):
		if ord.Value > daysIn(r.Ref.Year(), r.Ref.Month(), r.Ref) {
			return Moment{}, false
		}
		return Moment{Time: date(r.Ref.Year(), r.Ref.Month(), ord.Value)}, true
	}
	return Moment{}, false
}

// relative handles today/tomorrow, weekday names and offsets such as
// "in 15 mins" or "2 hours from now".
func (r Resolver) relative(c *normalize.Cursor, _ time.Time) (Moment, bool) {
	today := dayOf(r.Ref)
	switch {
	case c.Word("now"):
		return Moment{Time: r.Ref, Clock: true}, true
	case c.Word("today"):
		return Moment{Time: today, Relative: true}, true
	case c.Word("tomorrow"):
		return Moment{Time: today.AddDate(0, 0, 1), Relative: true}, true
	case c.Word("yesterday"):
		return Moment{Time: today.AddDate(0, 0, -1), Relative: true}, true
	case c.Word("next"):
		if wd, ok := c.Kind(normalize.Weekday); ok {
			ahead := daysAhead(today, wd.Weekday())
			if ahead == 0 {
				ahead = 7
			}
			return Moment{Time: today.AddDate(0, 0, ahead), Relative: true}, true
		}
		if unit, ok := c.Peek(0).Unit(); ok {
			c.Next()
			switch unit {
			case "week":
				return Moment{Time: today.AddDate(0, 0, 7), Relative: true}, true
			case "month":
				return Moment{Time: date(today.Year(), today.Month()+1, 1)}, true
			case "year":
				return Moment{Time: date(today.Year()+1, time.January, 1)}, true
			}
		}
		return Moment{}, false
	case c.Word("in"):
		n, unit, ok := quantity(c)
		if !ok {
			return Moment{}, false
		}
		return offset(r.Ref, n, unit)
	}

	c.Word("this")
	if wd, ok := c.Kind(normalize.Weekday); ok && !wd.Plural {
		return Moment{Time: today.AddDate(0, 0, daysAhead(today, wd.Weekday())), Relative: true}, true
	}

	n, unit, ok := quantity(c)
	if !ok {
		return Moment{}, false
	}
	switch {
	case c.Word("from") && c.Word("now"):
		return offset(r.Ref, n, unit)
	case c.Word("ago"):
		return offset(r.Ref, -n, unit)
	}
	return Moment{}, false
}

// quantity consumes "15 mins", "an hour", "three weeks".
func quantity(c *normalize.Cursor) (int, string, bool) {
	n := 1
	switch t := c.Peek(0); {
	case t.Kind == normalize.Number:
		n = t.Value
		c.Next()
	case t.Is("a", "an"):
		c.Next()
	default:
		return 0, "", false
	}
	unit, ok := c.Next().Unit()
	return n, unit, ok
}

func offset(ref time.Time, n int, unit string) (Moment, bool) {
	switch unit {
	case "second":
		return Moment{Time: ref.Add(time.Duration(n) * time.Second), Clock: true}, true
	case "minute":
		return Moment{Time: ref.Add(time.Duration(n) * time.Minute), Clock: true}, true
	case "hour":
		return Moment{Time: ref.Add(time.Duration(n) * time.Hour), Clock: true}, true
	case "day":
		return Moment{Time: dayOf(ref).AddDate(0, 0, n), Relative: true}, true
	case "week":
		return Moment{Time: dayOf(ref).AddDate(0, 0, 7*n), Relative: true}, true
	case "month":
		return Moment{Time: AddCalendar(dayOf(ref), 0, n), Relative: true}, true
	case "year":
		return Moment{Time: AddCalendar(dayOf(ref), n, 0), Relative: true}, true
	}
	return Moment{}, false
}

// monthOnly matches "[in] <month> [year]" covering all tokens.
func monthOnly(toks []normalize.Token) (time.Month, int, bool) {
	c := normalize.NewCursor(toks)
	c.Word("in")
	mt, ok := c.Kind(normalize.Month)
	if !ok {
		return 0, 0, false
	}
	y := year(c)
	if !c.Done() {
		return 0, 0, false
	}
	return mt.Month(), y, true
}

// year consumes a four-digit year when one follows.
func year(c *normalize.Cursor) int {
	if t := c.Peek(0); t.Kind == normalize.Number && t.Value >= 1000 && t.Value <= 9999 {
		c.Next()
		return t.Value
	}
	return 0
}

func dayNumber(t normalize.Token) (int, bool) {
	if (t.Kind == normalize.Number || t.Kind == normalize.Ordinal) && t.Value >= 1 && t.Value <= 31 {
		return t.Value, true
	}
	return 0, false
}

// NthWeekday finds the n-th wd of the month, counting from the end when n is
// negative.
func NthWeekday(y int, m time.Month, wd time.Weekday, n int) (time.Time, bool) {
	if n > 0 {
		first := date(y, m, 1)
		t := first.AddDate(0, 0, (int(wd)-int(first.Weekday())+7)%7+7*(n-1))
		return t, t.Month() == m
	}
	if n < 0 {
		last := date(y, m+1, 0)
		t := last.AddDate(0, 0, -((int(last.Weekday())-int(wd)+7)%7 + 7*(-n-1)))
		return t, t.Month() == m
	}
	return time.Time{}, false
}

// WeekOfYear returns the first day of the n-th week of year y. Weeks start on
// Monday and the first one is the week holding January 1st.
func WeekOfYear(y, n int) (time.Time, bool) {
	jan1 := date(y, time.January, 1)
	t := jan1.AddDate(0, 0, 7*(n-1)-(int(jan1.Weekday())+6)%7)
	if t.Before(jan1) {
		t = jan1
	}
	return t, n >= 1 && t.Year() == y
}

// DayOfYear returns the n-th (1-based) day of year y.
func DayOfYear(y, n int) (time.Time, bool) {
	t := date(y, time.January, n)
	return t, n >= 1 && t.Year() == y
}

func daysAhead(from time.Time, wd time.Weekday) int {
	return (int(wd) - int(from.Weekday()) + 7) % 7
}

func daysIn(y int, m time.Month, base time.Time) int {
	if y == 0 {
		y = base.Year()
	}
	return date(y, m+1, 0).Day()
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func dayOf(t time.Time) time.Time {
	return date(t.Year(), t.Month(), t.Day())
}

func atClock(t time.Time, h, m, s int) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), h, m, s, 0, time.UTC)
}
