package grammar

import (
	"sort"

	nz "recurrent/internal/normalize"
	"recurrent/internal/rule"
)

// interval consumes the quantifier after "every": "other", "3", "3rd".
func interval(c *nz.Cursor) (int, bool) {
	t := c.Peek(0)
	switch {
	case t.Is("other"):
		c.Next()
		return 2, true
	case t.Kind == nz.Number && t.Value > 0:
		c.Next()
		return t.Value, true
	case t.Kind == nz.Ordinal && t.Value > 0:
		c.Next()
		return t.Value, true
	}
	return 0, false
}

// every consumes "every" then runs rest, first with the default interval and
// then, if that fails, after consuming an explicit interval. rest must consume
// every remaining token to succeed.
func every(c *nz.Cursor, rest func(n int) bool) bool {
	if !c.Word("every") {
		return false
	}
	mark := c.Mark()
	if rest(1) && c.Done() {
		return true
	}
	c.Reset(mark)
	n, ok := interval(c)
	if !ok {
		return false
	}
	return rest(n) && c.Done()
}

var weekdayRange = []rule.Weekday{rule.MO, rule.TU, rule.WE, rule.TH, rule.FR, rule.SA, rule.SU}

// daySet is a parsed weekday set such as "mon and tue and weekend" or
// "saturday through tuesday".
type daySet struct {
	days []rule.Day
	// plural is set when a weekday was written in the plural.
	plural bool
	// named is set when "weekend" or "weekday" appeared.
	named bool
}

// dayset consumes weekday items joined by "and".
func dayset(c *nz.Cursor) (daySet, bool) {
	var (
		set  daySet
		seen = make(map[rule.Weekday]bool)
	)
	add := func(wds ...rule.Weekday) {
		for _, wd := range wds {
			if !seen[wd] {
				seen[wd] = true
				set.days = append(set.days, rule.Day{Weekday: wd})
			}
		}
	}
	for {
		t := c.Peek(0)
		switch {
		case t.Is("weekend"):
			c.Next()
			set.named = true
			add(rule.SA, rule.SU)
		case t.Is("weekday"):
			c.Next()
			set.named = true
			add(rule.MO, rule.TU, rule.WE, rule.TH, rule.FR)
		case t.Kind == nz.Weekday:
			c.Next()
			set.plural = set.plural || t.Plural
			from := rule.WeekdayOf(t.Weekday())
			mark := c.Mark()
			if c.Word("through") {
				end, ok := c.Kind(nz.Weekday)
				if !ok {
					c.Reset(mark)
					add(from)
					break
				}
				set.plural = set.plural || end.Plural
				add(span(from, rule.WeekdayOf(end.Weekday()))...)
				break
			}
			add(from)
		default:
			return set, false
		}
		mark := c.Mark()
		if !c.Word("and") || !startsDay(c.Peek(0)) {
			c.Reset(mark)
			break
		}
	}
	if set.plural {
		sort.SliceStable(set.days, func(i, j int) bool { return set.days[i].Weekday < set.days[j].Weekday })
	}
	return set, len(set.days) > 0
}

func startsDay(t nz.Token) bool {
	return t.Kind == nz.Weekday || t.Is("weekend", "weekday")
}

// span lists weekdays from a to b inclusive, wrapping past Sunday.
func span(a, b rule.Weekday) []rule.Weekday {
	var out []rule.Weekday
	for d := a; ; d = (d + 1) % 7 {
		out = append(out, weekdayRange[d])
		if d == b {
			return out
		}
	}
}

// ordinals consumes "1st", "first and last", "2nd and 2nd to the last".
func ordinals(c *nz.Cursor) ([]int, bool) {
	var out []int
	for {
		t, ok := c.Kind(nz.Ordinal)
		if !ok || t.Value == 0 {
			return out, false
		}
		out = append(out, t.Value)
		mark := c.Mark()
		if !c.Word("and") || c.Peek(0).Kind != nz.Ordinal {
			c.Reset(mark)
			return out, true
		}
	}
}

// numbers consumes day or week numbers such as "20 and 30" or "20th and 30th".
func numbers(c *nz.Cursor, ordinalsToo bool) ([]int, bool) {
	var out []int
	for {
		t := c.Peek(0)
		if t.Kind != nz.Number && !(ordinalsToo && t.Kind == nz.Ordinal) || t.Value <= 0 {
			return out, false
		}
		c.Next()
		out = append(out, t.Value)
		mark := c.Mark()
		if !c.Word("and") {
			return out, true
		}
		if n := c.Peek(0); n.Kind != nz.Number && !(ordinalsToo && n.Kind == nz.Ordinal) {
			c.Reset(mark)
			return out, true
		}
	}
}

// ordinalDays consumes "1st and 3rd friday and 2nd tuesday".
func ordinalDays(c *nz.Cursor) ([]rule.Day, bool) {
	var out []rule.Day
	for {
		ords, ok := ordinals(c)
		if !ok {
			return nil, false
		}
		wd, ok := c.Kind(nz.Weekday)
		if !ok {
			return nil, false
		}
		for _, n := range ords {
			out = append(out, rule.Day{N: n, Weekday: rule.WeekdayOf(wd.Weekday())})
		}
		mark := c.Mark()
		if !c.Word("and") || c.Peek(0).Kind != nz.Ordinal {
			c.Reset(mark)
			return out, true
		}
	}
}

// months consumes "march" or "july and sept".
func months(c *nz.Cursor) ([]int, bool) {
	var out []int
	for {
		t, ok := c.Kind(nz.Month)
		if !ok {
			return nil, false
		}
		out = append(out, t.Value)
		mark := c.Mark()
		if !c.Word("and") || c.Peek(0).Kind != nz.Month {
			c.Reset(mark)
			return out, true
		}
	}
}

// ofMonth consumes "of the month", "of every month", "of every 3rd month" and
// returns the interval.
func ofMonth(c *nz.Cursor) (int, bool) {
	if !c.Word("of") {
		return 0, false
	}
	if c.Word("the") {
		return 1, c.Word("month")
	}
	if !c.Word("every") {
		return 0, false
	}
	if c.Word("month") {
		return 1, true
	}
	n, ok := interval(c)
	return n, ok && c.Word("month")
}
