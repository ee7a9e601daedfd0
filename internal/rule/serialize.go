package rule

import (
	"strconv"
	"strings"
)

// Body renders the RRULE value: every set field as KEY=VALUE joined by ';'.
func (r Rule) Body() string {
	var parts []string
	add := func(key, val string) {
		if val != "" {
			parts = append(parts, key+"="+val)
		}
	}
	add("FREQ", string(r.Frequency()))
	if n, ok := r.Interval.Get(); ok {
		add("INTERVAL", strconv.Itoa(n))
	}
	add("BYDAY", joinDays(r.ByDay))
	add("BYMONTHDAY", joinInts(r.ByMonthDay))
	add("BYSETPOS", joinInts(r.BySetPos))
	add("BYWEEKNO", joinInts(r.ByWeekNo))
	add("BYMONTH", joinInts(r.ByMonth))
	add("BYYEARDAY", joinInts(r.ByYearDay))
	add("BYHOUR", optInt(r.ByHour.Get()))
	add("BYMINUTE", optInt(r.ByMinute.Get()))
	add("COUNT", optInt(r.Count.Get()))
	if u, ok := r.Until.Get(); ok {
		add("UNTIL", u.String())
	}
	return strings.Join(parts, ";")
}

// String renders the full block: an optional DTSTART line, the RRULE line and
// EXDATE/EXRULE lines when exclusions are present.
func (r Rule) String() string {
	var lines []string
	if d, ok := r.Dtstart.Get(); ok {
		lines = append(lines, "DTSTART:"+d.String())
	}
	lines = append(lines, "RRULE:"+r.Body())
	if ex := r.wireExDates(); len(ex) > 0 {
		lines = append(lines, "EXDATE:"+strings.Join(ex, ","))
	}
	if r.ExRule != nil {
		lines = append(lines, "EXRULE:"+r.ExRule.Body())
	}
	return strings.Join(lines, "\n")
}

// wireExDates serializes exclusions. Hourly rules turn a plain date into every
// instance falling on that day.
func (r Rule) wireExDates() []string {
	out := make([]string, 0, len(r.ExDates))
	seen := make(map[string]bool)
	push := func(s string) {
		if !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}
	for _, e := range r.ExDates {
		if r.Frequency() == Hourly && !e.IsMonth() && !e.Stamp.Clock {
			push(e.String())
			for _, t := range r.DayInstances(e.Stamp.Time) {
				if t.Hour() != 0 || t.Minute() != 0 {
					push(ClockStamp(t).String())
				}
			}
			continue
		}
		push(e.String())
	}
	return out
}

// Params reports every field by its lower-case key. Unset fields map to "".
func (r Rule) Params() map[string]string {
	p := map[string]string{
		"freq":       strings.ToLower(string(r.Frequency())),
		"interval":   optInt(r.Interval.Get()),
		"byday":      joinDays(r.ByDay),
		"bymonthday": joinInts(r.ByMonthDay),
		"bysetpos":   joinInts(r.BySetPos),
		"byweekno":   joinInts(r.ByWeekNo),
		"bymonth":    joinInts(r.ByMonth),
		"byyearday":  joinInts(r.ByYearDay),
		"byhour":     optInt(r.ByHour.Get()),
		"byminute":   optInt(r.ByMinute.Get()),
		"count":      optInt(r.Count.Get()),
		"until":      "",
		"dtstart":    "",
		"exdate":     "",
		"exrule":     "",
	}
	if u, ok := r.Until.Get(); ok {
		p["until"] = u.String()
	}
	if d, ok := r.Dtstart.Get(); ok {
		p["dtstart"] = d.String()
	}
	if len(r.ExDates) > 0 {
		ex := make([]string, len(r.ExDates))
		for i, e := range r.ExDates {
			ex[i] = e.String()
		}
		p["exdate"] = strings.Join(ex, ",")
	}
	if r.ExRule != nil {
		p["exrule"] = r.ExRule.Body()
	}
	return p
}

func joinDays(days []Day) string {
	s := make([]string, len(days))
	for i, d := range days {
		s[i] = d.String()
	}
	return strings.Join(s, ",")
}

func joinInts(vals []int) string {
	s := make([]string, len(vals))
	for i, v := range vals {
		s[i] = strconv.Itoa(v)
	}
	return strings.Join(s, ",")
}

func optInt(v int, ok bool) string {
	if !ok {
		return ""
	}
	return strconv.Itoa(v)
}
