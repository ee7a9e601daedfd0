package model

import "time"

// Event is a VEVENT read from an imported calendar, with its recurrence
// rendered in English.
type Event struct {
	UID     string
	Summary string

	// Start is the event's DTSTART as wall-clock time; TZID is ignored.
	Start  time.Time
	AllDay bool

	// RRule is the DTSTART/RRULE/EXDATE/EXRULE block rebuilt from the
	// event, or "" for a one-off event.
	RRule string
	Text  string
}

// Occurrence is one concrete instance of a rule.
type Occurrence struct {
	Start  time.Time
	AllDay bool
	Label  string
}
