// Package recurrent is the parse/format facade. A Session fixes the
// reference clock, turns English into a serialized recurrence rule or a
// timestamp, and renders either back into English.
//
// A Session keeps the last parsed rule for Params and RFCRule, so it must
// not be shared between goroutines without external locking.
package recurrent

import (
	"context"
	"errors"
	"time"

	"recurrent/internal/cronspec"
	"recurrent/internal/dates"
	"recurrent/internal/format"
	"recurrent/internal/grammar"
	appLog "recurrent/internal/log"
	"recurrent/internal/normalize"
	"recurrent/internal/rule"
	"recurrent/internal/translate"
)

// ErrNoMatch reports that nothing in the input was recognized.
var ErrNoMatch = errors.New("no recurrence or date recognized")

type Kind = grammar.Kind

const (
	None      = grammar.None
	Recurring = grammar.Recurring
	Absolute  = grammar.Absolute
)

// Outcome is the result of one parse. Rule is set for Recurring; Time and
// Clock for Absolute.
type Outcome struct {
	Kind  Kind
	Rule  rule.Rule
	Time  time.Time
	Clock bool
}

// String returns the serialized rule block, or the timestamp as
// YYYYMMDD[THHMMSS], or "" for None.
func (o Outcome) String() string {
	switch o.Kind {
	case Recurring:
		return o.Rule.String()
	case Absolute:
		return o.Stamp().String()
	}
	return ""
}

// Stamp is the Absolute result as a date or datetime stamp.
func (o Outcome) Stamp() rule.Stamp {
	if o.Clock {
		return rule.ClockStamp(o.Time)
	}
	return rule.DateStamp(o.Time.Date())
}

type Option func(*Session)

// WithReference fixes the reference clock. Only the wall-clock fields of t
// are kept.
func WithReference(t time.Time) Option {
	return func(s *Session) {
		s.ref = naive(t)
	}
}

// WithFallback replaces the calendar-arithmetic collaborator consulted for
// dates the built-in grammar does not know. nil disables it.
func WithFallback(f dates.Fallback) Option {
	return func(s *Session) {
		s.fallback = f
	}
}

type Session struct {
	ref      time.Time
	fallback dates.Fallback
	last     rule.Rule
}

// New returns a session anchored at the current local time unless
// WithReference says otherwise.
func New(opts ...Option) *Session {
	s := &Session{
		ref:      naive(time.Now()),
		fallback: dates.NewWhenFallback(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Session) Reference() time.Time { return s.ref }

func (s *Session) matcher() grammar.Matcher {
	return grammar.Matcher{Resolver: dates.Resolver{Ref: s.ref, Fallback: s.fallback}}
}

// Formatter renders against the session's reference clock.
func (s *Session) Formatter() format.Formatter {
	return format.Formatter{Ref: s.ref}
}

// Parse recognizes text. Unrecognized input yields an Outcome of Kind None.
func (s *Session) Parse(text string) Outcome {
	s.last = rule.Rule{}
	m := s.matcher()
	for _, candidate := range normalize.Candidates(text) {
		res := m.Match(candidate)
		switch res.Kind {
		case grammar.Recurring:
			s.last = res.Rule
			return Outcome{Kind: Recurring, Rule: res.Rule}
		case grammar.Absolute:
			return Outcome{Kind: Absolute, Time: res.Moment.Time, Clock: res.Moment.Clock}
		}
	}
	appLog.Debug("parse found nothing", "text", text)
	return Outcome{}
}

// Must is Parse with ErrNoMatch for unrecognized input.
func (s *Session) Must(text string) (Outcome, error) {
	o := s.Parse(text)
	if o.Kind == None {
		return o, ErrNoMatch
	}
	return o, nil
}

// ParseCron converts a cron spec and records it as the last parsed rule.
func (s *Session) ParseCron(spec string) (Outcome, error) {
	s.last = rule.Rule{}
	r, err := cronspec.ToRule(spec)
	if err != nil {
		return Outcome{}, err
	}
	s.last = r
	return Outcome{Kind: Recurring, Rule: r}, nil
}

// Format renders an outcome in English. None renders as "".
func (s *Session) Format(o Outcome) string {
	switch o.Kind {
	case Recurring:
		return s.Formatter().Format(o.Rule.String())
	case Absolute:
		return format.Time(o.Time)
	}
	return ""
}

// FormatText renders serialized rule text. Text that does not describe a
// complete rule is returned unchanged.
func (s *Session) FormatText(text string) string {
	r, err := rule.Read(text)
	if err == nil {
		s.last = r
	}
	return s.Formatter().Format(text)
}

func (s *Session) FormatTime(t time.Time) string {
	return format.Time(t)
}

// Params reports the fields of the last parsed rule. Unset fields are "".
func (s *Session) Params() map[string]string {
	return s.last.Params()
}

// RFCRule returns the DTSTART/RRULE block of the last parsed rule, or "".
func (s *Session) RFCRule() string {
	if !s.last.Freq.IsPresent() {
		return ""
	}
	return s.last.String()
}

// Auto translates Russian input before parsing it with Session.
type Auto struct {
	Session    *Session
	Translator translate.Translator
}

func (a Auto) Parse(ctx context.Context, text string) (Outcome, error) {
	if a.Translator != nil && translate.IsRussian(text) {
		en, err := a.Translator.Translate(ctx, text)
		if err != nil {
			return Outcome{}, err
		}
		appLog.Debug("translated input", "from", text, "to", en)
		text = en
	}
	return a.Session.Parse(text), nil
}

func naive(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), 0, time.UTC)
}
