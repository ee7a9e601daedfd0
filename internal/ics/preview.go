package ics

import (
	"errors"
	"time"

	"recurrent/internal/format"
	appLog "recurrent/internal/log"
	"recurrent/internal/model"
	"recurrent/internal/rule"
)

const defaultMaxOccurrences = 500

// Preview lists up to n instances of r at or after ref. n is capped at limit
// (defaultMaxOccurrences when limit <= 0).
func Preview(r rule.Rule, ref time.Time, n, limit int) ([]model.Occurrence, error) {
	if n <= 0 {
		return nil, errors.New("preview: n must be positive")
	}
	if limit <= 0 {
		limit = defaultMaxOccurrences
	}
	if n > limit {
		appLog.Warn("preview truncated", "requested", n, "max", limit)
		n = limit
	}
	allDay := allDayRule(r)
	if allDay {
		ref = startOfDay(ref)
	}
	times, err := r.Next(ref, n)
	if err != nil {
		return nil, err
	}
	out := make([]model.Occurrence, 0, len(times))
	for _, t := range times {
		out = append(out, model.Occurrence{Start: t, AllDay: allDay, Label: format.Time(t)})
	}
	return out, nil
}

// allDayRule reports whether instances of r carry no meaningful time of day.
func allDayRule(r rule.Rule) bool {
	if r.Frequency().SubDaily() || r.ByHour.IsPresent() || r.ByMinute.IsPresent() {
		return false
	}
	if d, ok := r.Dtstart.Get(); ok && d.Clock {
		return false
	}
	return true
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
