// Package grammar turns a normalized English phrase into either a recurrence
// rule or a single point in time. A phrase is split into a core ("every 2nd
// friday of the month") and modifier clauses ("starting ...", "until ...",
// "for 3 times", "at 9am", "except ..."); the core is matched against an
// ordered table of rule families.
package grammar

import (
	"github.com/samber/mo"

	"recurrent/internal/dates"
	appLog "recurrent/internal/log"
	nz "recurrent/internal/normalize"
	"recurrent/internal/rule"
)

type Kind int

const (
	None Kind = iota
	Recurring
	Absolute
)

func (k Kind) String() string {
	switch k {
	case Recurring:
		return "recurring"
	case Absolute:
		return "absolute"
	}
	return "none"
}

// Result is what a phrase resolved to. Rule is set for Recurring, Moment for
// Absolute.
type Result struct {
	Kind   Kind
	Rule   rule.Rule
	Moment dates.Moment
}

// Matcher resolves phrases against Resolver.Ref.
type Matcher struct {
	Resolver dates.Resolver
}

// Match tries the phrase as a recurrence, then as an absolute date.
func (m Matcher) Match(text string) Result {
	toks := nz.Tokenize(text)
	if len(toks) == 0 {
		return Result{}
	}
	if r, ok := m.recurrence(toks, false); ok {
		appLog.Debug("matched recurrence", "text", text, "rrule", r.Body())
		return Result{Kind: Recurring, Rule: r}
	}
	if st, ok := m.Resolver.Absolute(toks, text); ok {
		appLog.Debug("matched date", "text", text, "time", st.Time)
		return Result{Kind: Absolute, Moment: st}
	}
	// "starting 3/1" with nothing to repeat is read as the start date itself.
	if toks[0].Is("starting") {
		if st, ok := m.Resolver.Start(toks[1:]); ok {
			return Result{Kind: Absolute, Moment: st}
		}
	}
	appLog.Debug("no match", "text", text, "tokens", nz.Join(toks))
	return Result{}
}

// MatchRule matches a phrase that must be a recurrence, such as the body of
// an exception clause.
func (m Matcher) MatchRule(text string) (rule.Rule, bool) {
	return m.recurrence(nz.Tokenize(text), true)
}

func (m Matcher) recurrence(toks []nz.Token, nested bool) (rule.Rule, bool) {
	cl, ok := m.extract(toks)
	if !ok || len(cl.core) == 0 || (nested && cl.except != nil) {
		return rule.Rule{}, false
	}
	r, ok := matchCore(cl.core)
	if !ok {
		return rule.Rule{}, false
	}

	anchor := m.Resolver.Ref
	if cl.start != nil {
		st, ok := m.Resolver.Start(cl.start)
		if !ok {
			return rule.Rule{}, false
		}
		r.Dtstart = mo.Some(stampOf(st))
		anchor = st.Time
	}
	if cl.until != nil {
		st, ok := m.Resolver.Until(cl.until, anchor)
		if !ok {
			return rule.Rule{}, false
		}
		r.Until = mo.Some(stampOf(st))
	}
	if cl.duration != nil {
		end, ok := dates.Duration(cl.duration, anchor)
		if !ok || r.Until.IsPresent() {
			return rule.Rule{}, false
		}
		r.Until = mo.Some(rule.DateStamp(end.Date()))
	}
	r.Count = cl.count
	if cl.clock {
		if r.Frequency().SubDaily() {
			return rule.Rule{}, false
		}
		r.ByHour = mo.Some(cl.hour)
		r.ByMinute = mo.Some(cl.minute)
	}
	if cl.except != nil && !m.exceptions(cl.except, anchor, &r) {
		return rule.Rule{}, false
	}
	if err := r.Validate(); err != nil {
		appLog.Debug("rejected rule", "err", err)
		return rule.Rule{}, false
	}
	return r, true
}

func matchCore(toks []nz.Token) (rule.Rule, bool) {
	for _, f := range families {
		c := nz.NewCursor(toks)
		if r, ok := f.match(c); ok && c.Done() {
			appLog.Debug("core matched", "family", f.name, "tokens", nz.Join(toks))
			return r, true
		}
	}
	return rule.Rule{}, false
}

func stampOf(st dates.Moment) rule.Stamp {
	if st.Clock {
		return rule.ClockStamp(st.Time)
	}
	return rule.DateStamp(st.Time.Date())
}
