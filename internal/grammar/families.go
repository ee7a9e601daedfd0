package grammar

import (
	"github.com/samber/mo"

	nz "recurrent/internal/normalize"
	"recurrent/internal/rule"
)

// family matches one shape of recurrence core. A match must consume every
// token of the core.
type family struct {
	name  string
	match func(c *nz.Cursor) (rule.Rule, bool)
}

// families is tried in order; the first full match wins.
var families = []family{
	{"unit", unitFamily},
	{"weekly on days", weekOnDays},
	{"weekly on nth day", weekOnNthDay},
	{"every days", everyDays},
	{"bare days", bareDays},
	{"monthly of", monthlyOf},
	{"monthly on", monthlyOn},
	{"yearly weekday", yearlyWeekday},
	{"yearly date", yearlyDate},
	{"yearly day number", yearlyDayNumber},
	{"yearly week number", yearlyWeekNumber},
}

func newRule(f rule.Frequency, n int) rule.Rule {
	r := rule.New(f)
	r.Interval = mo.Some(n)
	return r
}

var unitFreq = map[string]rule.Frequency{
	"second": rule.Secondly,
	"minute": rule.Minutely,
	"hour":   rule.Hourly,
	"day":    rule.Daily,
	"week":   rule.Weekly,
	"month":  rule.Monthly,
	"year":   rule.Yearly,
}

// unitFamily: "every day", "every 3 hours", "every other week", "every second".
func unitFamily(c *nz.Cursor) (rule.Rule, bool) {
	var r rule.Rule
	ok := every(c, func(n int) bool {
		unit, ok := c.Next().Unit()
		if !ok {
			return false
		}
		r = newRule(unitFreq[unit], n)
		return true
	})
	return r, ok
}

// weekOnDays: "every week on tuesday-saturday", "every 4 weeks on weekend".
func weekOnDays(c *nz.Cursor) (rule.Rule, bool) {
	var r rule.Rule
	ok := every(c, func(n int) bool {
		if !c.Word("week") {
			return false
		}
		c.Word("on")
		c.Word("the")
		set, ok := dayset(c)
		if !ok {
			return false
		}
		r = newRule(rule.Weekly, n)
		r.ByDay = set.days
		return true
	})
	return r, ok
}

// weekOnNthDay: "every week on the 4th day", counting Sunday as the first.
func weekOnNthDay(c *nz.Cursor) (rule.Rule, bool) {
	var r rule.Rule
	ok := every(c, func(n int) bool {
		if !c.Word("week") || !c.Word("on") {
			return false
		}
		c.Word("the")
		ord, ok := c.Kind(nz.Ordinal)
		if !ok || ord.Value < 1 || ord.Value > 7 || !c.Word("day") {
			return false
		}
		r = newRule(rule.Weekly, n)
		r.ByDay = []rule.Day{{Weekday: weekdayRange[(ord.Value+5)%7]}}
		return true
	})
	return r, ok
}

// everyDays: "every tuesday and thursday", "every 5th fri", "every weekday".
func everyDays(c *nz.Cursor) (rule.Rule, bool) {
	var r rule.Rule
	ok := every(c, func(n int) bool {
		set, ok := dayset(c)
		if !ok {
			return false
		}
		r = newRule(rule.Weekly, n)
		r.ByDay = set.days
		return true
	})
	return r, ok
}

// bareDays: "tuesdays", "on weekends", "mon and tue and weekend". A single
// singular weekday names a date, not a recurrence.
func bareDays(c *nz.Cursor) (rule.Rule, bool) {
	c.Word("on")
	set, ok := dayset(c)
	if !ok || !(set.plural || set.named) {
		return rule.Rule{}, false
	}
	r := newRule(rule.Weekly, 1)
	r.ByDay = set.days
	return r, true
}

// monthDays fills the monthly day selector shared by the monthly and yearly
// families: "4th and 10th", "1st fri", "first and last instance of tue and
// fri", "end".
func monthDays(c *nz.Cursor, r *rule.Rule) bool {
	mark := c.Mark()

	c.Word("the")
	switch {
	case c.Word("start"):
		r.ByMonthDay = []int{1}
		return true
	case c.Word("end"):
		r.ByMonthDay = []int{-1}
		return true
	}
	c.Reset(mark)

	c.Word("for")
	c.Word("the")
	if ords, ok := ordinals(c); ok && c.Word("instance") && c.Word("of") {
		if set, ok := dayset(c); ok {
			r.ByDay = set.days
			r.BySetPos = ords
			return true
		}
	}
	c.Reset(mark)

	c.Word("the")
	inner := c.Mark()
	if days, ok := ordinalDays(c); ok {
		r.ByDay = days
		return true
	}
	c.Reset(inner)
	if ords, ok := ordinals(c); ok {
		c.Word("day")
		r.ByMonthDay = ords
		return true
	}
	c.Reset(inner)
	if set, ok := dayset(c); ok {
		r.ByDay = set.days
		return true
	}
	c.Reset(mark)
	return false
}

// monthlyOf: "2nd of every month", "every 4th of the month", "last fri of
// every 3rd month", "the end of the month".
func monthlyOf(c *nz.Cursor) (rule.Rule, bool) {
	c.Word("on")
	c.Word("every")
	c.Word("the")
	var r rule.Rule
	if !monthDays(c, &r) {
		return r, false
	}
	n, ok := ofMonth(c)
	if !ok {
		return r, false
	}
	r.Freq = mo.Some(rule.Monthly)
	r.Interval = mo.Some(n)
	return r, true
}

// monthlyOn: "every month on the 4th", "every other month on 1st fri",
// "every month at the end".
func monthlyOn(c *nz.Cursor) (rule.Rule, bool) {
	var r rule.Rule
	ok := every(c, func(n int) bool {
		if !c.Word("month") {
			return false
		}
		c.Word("on", "at", "in")
		r = newRule(rule.Monthly, n)
		return monthDays(c, &r)
	})
	return r, ok
}

// yearlyWeekday: "every 4th thu in nov", "every year on the first and third
// mon of june", "every 3 years on the last fri in march and sept".
func yearlyWeekday(c *nz.Cursor) (rule.Rule, bool) {
	var r rule.Rule
	ok := every(c, func(n int) bool {
		if c.Word("year") && !c.Word("on", "in") {
			return false
		}
		c.Word("the")
		mark := c.Mark()
		days, ok := ordinalDays(c)
		if !ok {
			c.Reset(mark)
			set, ok := dayset(c)
			if !ok {
				return false
			}
			days = set.days
		}
		if !c.Word("in", "of") {
			return false
		}
		ms, ok := months(c)
		if !ok {
			return false
		}
		r = newRule(rule.Yearly, n)
		r.ByDay = days
		r.ByMonth = ms
		return true
	})
	return r, ok
}

// yearlyDate: "every dec 25th", "every year on july 4th", "every aug 20 and
// 30", "every aug on day 20 and 30", "every 20th and 30th of aug".
func yearlyDate(c *nz.Cursor) (rule.Rule, bool) {
	var r rule.Rule
	ok := every(c, func(n int) bool {
		if c.Word("year") {
			if !c.Word("on", "in") {
				return false
			}
			c.Word("the")
		}
		var (
			month int
			days  []int
		)
		if mt, ok := c.Kind(nz.Month); ok {
			month = mt.Value
			if c.Word("on") {
				c.Word("the")
				if !c.Word("day") {
					return false
				}
			}
			if days, ok = numbers(c, true); !ok {
				return false
			}
		} else {
			c.Word("the")
			if days, ok = numbers(c, true); !ok || !c.Word("of") {
				return false
			}
			mt, ok := c.Kind(nz.Month)
			if !ok {
				return false
			}
			month = mt.Value
		}
		r = newRule(rule.Yearly, n)
		r.ByMonth = []int{month}
		r.ByMonthDay = days
		return true
	})
	return r, ok
}

// yearlyDayNumber: "every year on the 31st day", "every year on the day 31",
// "the 31st day of every year".
func yearlyDayNumber(c *nz.Cursor) (rule.Rule, bool) {
	var r rule.Rule
	mark := c.Mark()
	ok := every(c, func(n int) bool {
		if !c.Word("year") || !c.Word("on") {
			return false
		}
		c.Word("the")
		var days []int
		if c.Word("day") {
			ds, ok := numbers(c, true)
			if !ok {
				return false
			}
			days = ds
		} else {
			ds, ok := ordinals(c)
			if !ok {
				return false
			}
			c.Word("day")
			days = ds
		}
		r = newRule(rule.Yearly, n)
		r.ByYearDay = days
		return true
	})
	if ok {
		return r, true
	}

	c.Reset(mark)
	c.Word("on")
	c.Word("the")
	days, ok := ordinals(c)
	if !ok {
		return r, false
	}
	c.Word("day")
	if !c.Word("of") {
		return r, false
	}
	ok = every(c, func(n int) bool {
		if !c.Word("year") {
			return false
		}
		r = newRule(rule.Yearly, n)
		r.ByYearDay = days
		return true
	})
	return r, ok
}

// yearlyWeekNumber: "every year in week 12", "every 3 years on fri in week
// 12", "every tue and fri in week 12 and 14".
func yearlyWeekNumber(c *nz.Cursor) (rule.Rule, bool) {
	var r rule.Rule
	ok := every(c, func(n int) bool {
		var days []rule.Day
		if c.Word("year") {
			if c.Word("on") {
				set, ok := dayset(c)
				if !ok {
					return false
				}
				days = set.days
			}
		} else {
			set, ok := dayset(c)
			if !ok {
				return false
			}
			days = set.days
		}
		if !c.Word("in") || !c.Word("week") {
			return false
		}
		weeks, ok := numbers(c, false)
		if !ok {
			return false
		}
		r = newRule(rule.Yearly, n)
		r.ByDay = days
		r.ByWeekNo = weeks
		return true
	})
	return r, ok
}
