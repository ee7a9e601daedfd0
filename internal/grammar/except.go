package grammar

import (
	"time"

	nz "recurrent/internal/normalize"
	"recurrent/internal/rule"
)

// exceptions applies an "except ..." clause to r. The clause is either a
// recurrence of its own ("except on weekends", "except every 2nd monday in
// march") or a list of dates and months joined by "and". Months without a
// year are taken relative to anchor.
func (m Matcher) exceptions(toks []nz.Token, anchor time.Time, r *rule.Rule) bool {
	if toks[0].Is("for", "on") {
		toks = toks[1:]
	}
	if len(toks) == 0 {
		return false
	}
	if ex, ok := m.recurrence(toks, true); ok {
		r.ExRule = &ex
		return true
	}

	for _, item := range splitAnd(toks) {
		if len(item) > 0 && item[0].Is("on") {
			item = item[1:]
		}
		if len(item) == 0 {
			return false
		}
		if month, year, ok := m.Resolver.MonthYear(item, anchor); ok {
			r.ExDates = append(r.ExDates, rule.MonthExclusion(month, year))
			continue
		}
		st, ok := m.Resolver.Moment(item)
		if !ok {
			return false
		}
		r.ExDates = append(r.ExDates, rule.ExDate{Stamp: stampOf(st)})
	}
	return true
}

func splitAnd(toks []nz.Token) [][]nz.Token {
	var (
		out [][]nz.Token
		cur []nz.Token
	)
	for _, t := range toks {
		if t.Is("and") {
			out = append(out, cur)
			cur = nil
			continue
		}
		cur = append(cur, t)
	}
	return append(out, cur)
}
