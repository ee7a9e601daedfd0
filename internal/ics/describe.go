// Package ics moves recurrence rules in and out of iCalendar: it describes the
// events of an imported calendar in English, exports rules as VEVENTs or
// xCal, and previews upcoming instances.
package ics

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	ical "github.com/arran4/golang-ical"

	"recurrent/internal/format"
	appLog "recurrent/internal/log"
	"recurrent/internal/model"
	"recurrent/internal/rule"
)

// Describe reads every VEVENT in body and renders its recurrence with f.
// Events without an RRULE get their start time rendered instead. Events
// missing a UID or a readable DTSTART are skipped.
func Describe(body []byte, f format.Formatter) ([]model.Event, error) {
	cal, err := ical.ParseCalendar(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("parse calendar: %w", err)
	}
	var out []model.Event
	for _, ve := range cal.Events() {
		ev, err := describeEvent(ve, f)
		if err != nil {
			appLog.Warn("skipping event", "err", err)
			continue
		}
		out = append(out, ev)
	}
	return out, nil
}

func describeEvent(ve *ical.VEvent, f format.Formatter) (model.Event, error) {
	var ev model.Event
	uid := ve.GetProperty(ical.ComponentPropertyUniqueId)
	if uid == nil || uid.Value == "" {
		return ev, errors.New("missing UID")
	}
	ev.UID = uid.Value
	if p := ve.GetProperty(ical.ComponentPropertySummary); p != nil {
		ev.Summary = p.Value
	}

	dt := ve.GetProperty(ical.ComponentPropertyDtStart)
	if dt == nil {
		return ev, fmt.Errorf("%s: missing DTSTART", ev.UID)
	}
	start, ok := rule.ParseStamp(dt.Value)
	if !ok {
		return ev, fmt.Errorf("%s: bad DTSTART %q", ev.UID, dt.Value)
	}
	if vs := dt.ICalParameters["VALUE"]; len(vs) > 0 && strings.EqualFold(vs[0], "DATE") {
		start = rule.DateStamp(start.Time.Date())
	}
	ev.Start = start.Time
	ev.AllDay = !start.Clock

	rr := ve.GetProperty(ical.ComponentPropertyRrule)
	if rr == nil {
		ev.Text = format.Time(ev.Start)
		return ev, nil
	}

	lines := []string{"DTSTART:" + start.String(), "RRULE:" + rr.Value}
	var ex []string
	for _, p := range ve.GetProperties(ical.ComponentPropertyExdate) {
		for _, v := range strings.Split(p.Value, ",") {
			if s, ok := rule.ParseStamp(v); ok {
				ex = append(ex, s.String())
			}
		}
	}
	if len(ex) > 0 {
		lines = append(lines, "EXDATE:"+strings.Join(ex, ","))
	}
	if p := ve.GetProperty(ical.ComponentProperty("EXRULE")); p != nil {
		lines = append(lines, "EXRULE:"+p.Value)
	}
	ev.RRule = strings.Join(lines, "\n")
	ev.Text = f.Format(ev.RRule)
	return ev, nil
}
