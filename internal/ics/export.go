package ics

import (
	"time"

	ical "github.com/arran4/golang-ical"
	"github.com/google/uuid"
	"github.com/samber/mo"

	"recurrent/internal/rule"
)

const productID = "-//recurrent//recurrence rules//EN"

// vevent is a rule laid out the way iCalendar wants it: an explicit start,
// and exclusions as concrete instances.
type vevent struct {
	uid     string
	summary string
	allDay  bool
	start   rule.Stamp
	rule    rule.Rule
	exdates []rule.Stamp
}

// newVEvent anchors r. Without its own DTSTART the first instance at or after
// ref becomes the start. Date and month exclusions expand to the instances
// they remove, since EXDATE can only name instances.
func newVEvent(r rule.Rule, summary string, ref time.Time) vevent {
	ev := vevent{
		uid:     uuid.NewString() + "@recurrent",
		summary: summary,
		allDay:  allDayRule(r),
	}
	anchor := ref
	if ev.allDay {
		anchor = startOfDay(ref)
	}
	if d, ok := r.Dtstart.Get(); ok {
		ev.start = d
	} else if t, ok := r.FirstAfter(anchor); ok {
		ev.start = rule.Stamp{Time: t, Clock: !ev.allDay}
	} else {
		ev.start = rule.Stamp{Time: anchor, Clock: !ev.allDay}
	}
	if !ev.allDay && !ev.start.Clock {
		ev.start.Clock = true
	}

	core := r
	core.Dtstart = mo.Some(ev.start)
	core.ExDates = nil
	core.ExRule = nil
	// UNTIL must share DTSTART's value type.
	if u, ok := core.Until.Get(); ok && ev.start.Clock && !u.Clock {
		core.Until = mo.Some(rule.ClockStamp(u.Time.Add(24*time.Hour - time.Second)))
	}
	ev.rule = core

	for _, e := range r.ExDates {
		switch {
		case e.IsMonth():
			from := time.Date(e.Year, e.Month, 1, 0, 0, 0, 0, time.UTC)
			ev.exdates = append(ev.exdates, ev.between(from, from.AddDate(0, 1, 0))...)
		case e.Stamp.Clock:
			if ev.allDay && !e.Stamp.Time.Equal(startOfDay(e.Stamp.Time)) {
				continue
			}
			ev.exdates = append(ev.exdates, rule.Stamp{Time: e.Stamp.Time, Clock: !ev.allDay})
		case ev.allDay:
			ev.exdates = append(ev.exdates, e.Stamp)
		default:
			ev.exdates = append(ev.exdates, ev.between(e.Stamp.Time, e.Stamp.Time.AddDate(0, 0, 1))...)
		}
	}
	return ev
}

// between lists the instances in [from, to).
func (ev vevent) between(from, to time.Time) []rule.Stamp {
	rr, err := ev.rule.ToRRule(ev.start.Time)
	if err != nil {
		return nil
	}
	var out []rule.Stamp
	for _, t := range rr.Between(from, to.Add(-time.Second), true) {
		out = append(out, rule.Stamp{Time: t, Clock: !ev.allDay})
	}
	return out
}

// Export renders r as a single-event VCALENDAR. ref anchors rules that carry
// no start date of their own.
func Export(r rule.Rule, summary string, ref time.Time) string {
	ev := newVEvent(r, summary, ref)

	cal := ical.NewCalendar()
	cal.SetProductId(productID)
	cal.SetMethod(ical.MethodPublish)

	event := cal.AddEvent(ev.uid)
	event.SetDtStampTime(time.Now().UTC())
	if ev.summary != "" {
		event.SetSummary(ev.summary)
	}
	var params []ical.PropertyParameter
	if ev.allDay {
		params = append(params, ical.WithValue(string(ical.ValueDataTypeDate)))
	}
	event.SetProperty(ical.ComponentPropertyDtStart, ev.start.String(), params...)
	event.AddProperty(ical.ComponentPropertyRrule, ev.rule.Body())
	for _, s := range ev.exdates {
		event.AddProperty(ical.ComponentPropertyExdate, s.String(), params...)
	}
	if r.ExRule != nil {
		event.AddProperty(ical.ComponentProperty("EXRULE"), r.ExRule.Body())
	}
	return cal.Serialize()
}

// ExportAt renders a one-off event starting at start.
func ExportAt(start rule.Stamp, summary string) string {
	cal := ical.NewCalendar()
	cal.SetProductId(productID)
	cal.SetMethod(ical.MethodPublish)

	event := cal.AddEvent(uuid.NewString() + "@recurrent")
	event.SetDtStampTime(time.Now().UTC())
	if summary != "" {
		event.SetSummary(summary)
	}
	if start.Clock {
		event.SetProperty(ical.ComponentPropertyDtStart, start.String())
	} else {
		event.SetProperty(ical.ComponentPropertyDtStart, start.String(), ical.WithValue(string(ical.ValueDataTypeDate)))
	}
	return cal.Serialize()
}
