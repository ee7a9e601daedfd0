package format

import (
	"fmt"
	"strconv"
	"strings"

	"recurrent/internal/rule"
)

var dayNames = [...]string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

var monthNames = [...]string{"", "Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}

var unitNames = map[rule.Frequency]string{
	rule.Secondly: "second",
	rule.Minutely: "minute",
	rule.Hourly:   "hour",
	rule.Daily:    "day",
}

// basePhrase renders frequency, interval and the BY* selectors.
func basePhrase(r rule.Rule) (string, bool) {
	n := r.Every()
	switch f := r.Frequency(); f {
	case rule.Secondly, rule.Minutely, rule.Hourly, rule.Daily:
		out := unitPhrase(n, unitNames[f])
		if len(r.ByDay) > 0 {
			out += " on " + dayPhrase(r.ByDay)
		}
		return out, true
	case rule.Weekly:
		return weeklyPhrase(r, n)
	case rule.Monthly:
		return monthlyPhrase(r, n)
	case rule.Yearly:
		return yearlyPhrase(r, n)
	}
	return "", false
}

func unitPhrase(n int, unit string) string {
	switch {
	case n == 1 && unit == "day":
		return "daily"
	case n == 1:
		return "every " + unit
	case n == 2:
		return "every other " + unit
	}
	return fmt.Sprintf("every %d %ss", n, unit)
}

func weeklyPhrase(r rule.Rule, n int) (string, bool) {
	if len(r.ByDay) == 0 {
		return "", false
	}
	for _, d := range r.ByDay {
		// an ordinal has no meaning inside a weekly period
		if d.N != 0 {
			return "", false
		}
	}
	days := dayPhrase(r.ByDay)
	switch {
	case n == 1 && sameDays(r.ByDay, rule.SA, rule.SU):
		return "weekends", true
	case n == 1 && sameDays(r.ByDay, rule.MO, rule.TU, rule.WE, rule.TH, rule.FR):
		return "weekdays", true
	case n == 1:
		return "every " + days, true
	case n == 2:
		return "every other week on " + days, true
	}
	return fmt.Sprintf("every %d weeks on %s", n, days), true
}

func monthlyPhrase(r rule.Rule, n int) (string, bool) {
	of := "of every month"
	switch {
	case n == 2:
		of = "of every other month"
	case n > 2:
		of = fmt.Sprintf("of every %d months", n)
	}
	switch {
	case len(r.BySetPos) > 0 && len(r.ByDay) > 0:
		return "for the " + ordinalList(r.BySetPos) + " instance of " + dayPhrase(r.ByDay) + " " + of, true
	case len(r.ByDay) > 0:
		return ordinalDays(r.ByDay) + " " + of, true
	case len(r.ByMonthDay) > 0:
		return ordinalList(r.ByMonthDay) + " " + of, true
	}
	return "", false
}

func yearlyPhrase(r rule.Rule, n int) (string, bool) {
	switch {
	case len(r.ByWeekNo) > 0:
		weeks := "in week " + joinInts(r.ByWeekNo)
		if n == 1 && len(r.ByDay) > 0 {
			return "every " + dayPhrase(r.ByDay) + " " + weeks, true
		}
		out := yearEvery(n)
		if len(r.ByDay) > 0 {
			out += " on " + dayPhrase(r.ByDay)
		}
		return out + " " + weeks, true

	case len(r.ByYearDay) > 0:
		return yearEvery(n) + " on the " + ordinalList(r.ByYearDay) + " day", true

	case len(r.ByDay) > 0:
		days := ordinalDays(r.ByDay)
		if len(r.ByMonth) > 0 {
			days += " in " + monthList(r.ByMonth)
		}
		return yearlyPrefix(n) + days, true

	case len(r.ByMonth) > 0 && len(r.ByMonthDay) > 0:
		return yearlyPrefix(n) + monthList(r.ByMonth) + " " + ordinalList(r.ByMonthDay), true

	case len(r.ByMonth) > 0:
		return yearEvery(n) + " in " + monthList(r.ByMonth), true

	case len(r.ByMonthDay) > 0:
		return yearEvery(n) + " on the " + ordinalList(r.ByMonthDay), true
	}
	return "", false
}

// yearlyPrefix leads a yearly selector: "every ", "every other ",
// "every 3 years on the ".
func yearlyPrefix(n int) string {
	switch n {
	case 1:
		return "every "
	case 2:
		return "every other "
	}
	return fmt.Sprintf("every %d years on the ", n)
}

func yearEvery(n int) string {
	switch n {
	case 1:
		return "every year"
	case 2:
		return "every other year"
	}
	return fmt.Sprintf("every %d years", n)
}

func sameDays(days []rule.Day, want ...rule.Weekday) bool {
	if len(days) != len(want) {
		return false
	}
	for i, d := range days {
		if d.N != 0 || d.Weekday != want[i] {
			return false
		}
	}
	return true
}

// dayPhrase joins weekday names with "and", folding an adjacent Sat, Sun into
// "weekend" and a Mon..Fri run into "weekdays". A full week is listed day by
// day and ordinal entries keep their ordinal.
func dayPhrase(days []rule.Day) string {
	for _, d := range days {
		if d.N != 0 {
			return ordinalDays(days)
		}
	}
	fold := !sameDays(days, rule.MO, rule.TU, rule.WE, rule.TH, rule.FR, rule.SA, rule.SU)
	var out []string
	for i := 0; i < len(days); {
		switch {
		case !fold:
			out = append(out, dayNames[days[i].Weekday])
			i++
		case i+5 <= len(days) && sameDays(days[i:i+5], rule.MO, rule.TU, rule.WE, rule.TH, rule.FR):
			out = append(out, "weekdays")
			i += 5
		case i+2 <= len(days) && sameDays(days[i:i+2], rule.SA, rule.SU):
			out = append(out, "weekend")
			i += 2
		default:
			out = append(out, dayNames[days[i].Weekday])
			i++
		}
	}
	return strings.Join(out, " and ")
}

// ordinalDays renders "1st and 3rd Fri and 2nd Tue", grouping consecutive
// entries that share a weekday.
func ordinalDays(days []rule.Day) string {
	var out []string
	for i := 0; i < len(days); {
		j := i
		var ords []int
		for j < len(days) && days[j].Weekday == days[i].Weekday && days[j].N != 0 {
			ords = append(ords, days[j].N)
			j++
		}
		if len(ords) == 0 {
			out = append(out, dayNames[days[i].Weekday])
			i++
			continue
		}
		out = append(out, ordinalList(ords)+" "+dayNames[days[i].Weekday])
		i = j
	}
	return strings.Join(out, " and ")
}

func ordinalList(vals []int) string {
	s := make([]string, len(vals))
	for i, v := range vals {
		s[i] = ordinal(v)
	}
	return strings.Join(s, " and ")
}

// ordinal renders 1 as "1st", -1 as "last" and -2 as "2nd to the last".
func ordinal(n int) string {
	switch {
	case n == -1:
		return "last"
	case n < 0:
		return ordinal(-n) + " to the last"
	}
	suffix := "th"
	if n%100 < 11 || n%100 > 13 {
		switch n % 10 {
		case 1:
			suffix = "st"
		case 2:
			suffix = "nd"
		case 3:
			suffix = "rd"
		}
	}
	return strconv.Itoa(n) + suffix
}

func monthList(vals []int) string {
	s := make([]string, 0, len(vals))
	for _, v := range vals {
		if v >= 1 && v <= 12 {
			s = append(s, monthNames[v])
		}
	}
	return strings.Join(s, " and ")
}

func joinInts(vals []int) string {
	s := make([]string, len(vals))
	for i, v := range vals {
		s[i] = strconv.Itoa(v)
	}
	return strings.Join(s, " and ")
}
