// Package format renders recurrence rules and timestamps as canonical
// English. Rendering fails closed: input it cannot fully describe comes back
// unchanged.
package format

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	appLog "recurrent/internal/log"
	"recurrent/internal/rule"
)

// Formatter renders against Ref, which decides whether a start date is worth
// mentioning and whether a month exclusion needs its year.
type Formatter struct {
	Ref time.Time
}

// Format renders a DTSTART/RRULE/EXDATE/EXRULE block. Text that is not a
// describable rule is returned as is.
func (f Formatter) Format(text string) string {
	r, err := rule.Read(text)
	if err != nil {
		appLog.Debug("format passthrough", "err", err)
		return text
	}
	out, ok := f.Rule(r)
	if !ok {
		return text
	}
	return out
}

// Rule renders r, reporting false when r lacks the fields its frequency
// needs to be described.
func (f Formatter) Rule(r rule.Rule) (string, bool) {
	parts := []string{}
	base, ok := basePhrase(r)
	if !ok {
		return "", false
	}
	parts = append(parts, base)

	if h, ok := r.ByHour.Get(); ok {
		parts = append(parts, "at "+clockPhrase(h, r.ByMinute.OrEmpty(), 0))
	}
	if rng := f.rangePhrase(r); rng != "" {
		parts = append(parts, rng)
	}
	if n, ok := r.Count.Get(); ok {
		if n == 2 {
			parts = append(parts, "twice")
		} else {
			parts = append(parts, fmt.Sprintf("for %d times", n))
		}
	}
	if ex := f.exDatePhrase(r.ExDates); ex != "" {
		parts = append(parts, ex)
	}
	if r.ExRule != nil {
		ex, ok := basePhrase(*r.ExRule)
		if !ok {
			return "", false
		}
		if h, ok := r.ExRule.ByHour.Get(); ok {
			ex += " at " + clockPhrase(h, r.ExRule.ByMinute.OrEmpty(), 0)
		}
		parts = append(parts, "except "+ex)
	}
	return strings.Join(parts, " "), true
}

// Time renders "Sun Jan 2, 2000 3:04:05am". The time of day is left out at
// midnight.
func Time(t time.Time) string {
	s := t.Format("Mon Jan 2, 2006")
	if t.Hour() == 0 && t.Minute() == 0 && t.Second() == 0 {
		return s
	}
	return s + " " + clockPhrase(t.Hour(), t.Minute(), t.Second())
}

func clockPhrase(h, m, s int) string {
	suffix := "am"
	if h >= 12 {
		suffix = "pm"
	}
	h12 := h % 12
	if h12 == 0 {
		h12 = 12
	}
	out := strconv.Itoa(h12)
	if m != 0 || s != 0 {
		out += fmt.Sprintf(":%02d", m)
	}
	if s != 0 {
		out += fmt.Sprintf(":%02d", s)
	}
	return out + suffix
}

func (f Formatter) rangePhrase(r rule.Rule) string {
	start, hasStart := r.Dtstart.Get()
	if hasStart && !f.startMatters(r, start) {
		hasStart = false
	}
	until, hasUntil := r.Until.Get()
	switch {
	case hasStart && hasUntil:
		return "from " + Time(start.Time) + " to " + Time(until.Time)
	case hasStart:
		return "starting " + Time(start.Time)
	case hasUntil:
		return "until " + Time(until.Time)
	}
	return ""
}

// startMatters reports whether start falls after the first occurrence the
// rule would have anyway.
func (f Formatter) startMatters(r rule.Rule, start rule.Stamp) bool {
	first, ok := r.FirstAfter(f.Ref)
	if !ok {
		return true
	}
	return dayOf(start.Time).After(dayOf(first))
}

func (f Formatter) exDatePhrase(ex []rule.ExDate) string {
	var days, months []string
	for _, e := range ex {
		if e.IsMonth() {
			m := e.Month.String()[:3]
			if e.Year != f.Ref.Year() {
				m += " " + strconv.Itoa(e.Year)
			}
			months = append(months, m)
			continue
		}
		days = append(days, Time(e.Stamp.Time))
	}
	var groups []string
	if len(days) > 0 {
		groups = append(groups, "on "+strings.Join(days, " and "))
	}
	if len(months) > 0 {
		groups = append(groups, "in "+strings.Join(months, " and "))
	}
	if len(groups) == 0 {
		return ""
	}
	return "except " + strings.Join(groups, " and ")
}

func dayOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
