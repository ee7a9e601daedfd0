package grammar

import (
	"time"

	"github.com/samber/mo"

	"recurrent/internal/dates"
	nz "recurrent/internal/normalize"
)

// clauses is a phrase split into its recurrence core and modifiers. Date
// spans are kept as tokens until the core is known.
type clauses struct {
	core     []nz.Token
	start    []nz.Token
	until    []nz.Token
	duration []nz.Token
	except   []nz.Token

	count        mo.Option[int]
	clock        bool
	hour, minute int
}

// stop tokens end a date span.
func stop(t nz.Token) bool {
	return t.Kind == nz.Count || t.Is("for", "until", "except", "starting", "from")
}

func (m Matcher) extract(toks []nz.Token) (clauses, bool) {
	var cl clauses
	for i, t := range toks {
		if t.Is("except") {
			cl.except = toks[i+1:]
			if len(cl.except) == 0 {
				return cl, false
			}
			toks = toks[:i]
			break
		}
	}

	for i := 0; i < len(toks); {
		t := toks[i]
		rest := toks[i+1:]
		switch {
		case t.Is("starting"):
			n, ok := longest(rest, m.starts)
			if !ok || cl.start != nil {
				return cl, false
			}
			cl.start = rest[:n]
			i += 1 + n

		case t.Is("from"):
			if cl.start != nil {
				return cl, false
			}
			if a, b, ok := m.fromTo(rest); ok {
				if cl.until != nil {
					return cl, false
				}
				cl.start, cl.until = rest[:a], rest[a+1:a+1+b]
				i += 2 + a + b
				break
			}
			n, ok := longest(rest, m.starts)
			if !ok {
				return cl, false
			}
			cl.start = rest[:n]
			i += 1 + n

		case t.Is("until"):
			n, ok := longest(rest, m.untils)
			if !ok || cl.until != nil {
				return cl, false
			}
			cl.until = rest[:n]
			i += 1 + n

		case isCount(toks[i:]):
			v, n, _ := countAt(toks[i:])
			// A leading count ("twice weekly") is not a recurrence.
			if i == 0 || cl.count.IsPresent() {
				return cl, false
			}
			cl.count = mo.Some(v)
			i += n

		case t.Is("for") || (t.Is("up") && len(rest) > 0 && rest[0].Is("to")):
			span := rest
			if t.Is("up") {
				span = toks[i:]
			}
			n, ok := longest(span, durations)
			if !ok {
				cl.core = append(cl.core, t)
				i++
				break
			}
			if cl.duration != nil {
				return cl, false
			}
			cl.duration = span[:n]
			i += n
			if t.Is("for") {
				i++
			}

		case t.Is("at") && len(rest) > 0 && isClock(rest[0], true):
			if !m.setClock(&cl, rest[0]) {
				return cl, false
			}
			i += 2

		case t.Kind == nz.Clock:
			if !m.setClock(&cl, t) {
				return cl, false
			}
			i++

		default:
			cl.core = append(cl.core, t)
			i++
		}
	}
	return cl, true
}

func (m Matcher) starts(toks []nz.Token) bool {
	_, ok := m.Resolver.Start(toks)
	return ok
}

func (m Matcher) untils(toks []nz.Token) bool {
	_, ok := m.Resolver.Until(toks, m.Resolver.Ref)
	return ok
}

func durations(toks []nz.Token) bool {
	_, ok := dates.Duration(toks, time.Time{})
	return ok
}

// longest returns the length of the longest prefix of toks, ending before
// the first stop token, that accept takes.
func longest(toks []nz.Token, accept func([]nz.Token) bool) (int, bool) {
	end := len(toks)
	for i, t := range toks {
		if stop(t) {
			end = i
			break
		}
	}
	for n := end; n > 0; n-- {
		if accept(toks[:n]) {
			return n, true
		}
	}
	return 0, false
}

// fromTo splits "A to|until|through B" into the lengths of A and B.
func (m Matcher) fromTo(toks []nz.Token) (int, int, bool) {
	for k := 1; k < len(toks)-1; k++ {
		if !toks[k].Is("to", "until", "through") {
			continue
		}
		st, ok := m.Resolver.Start(toks[:k])
		if !ok {
			continue
		}
		rest := toks[k+1:]
		n, ok := longest(rest, func(span []nz.Token) bool {
			_, ok := m.Resolver.Until(span, st.Time)
			return ok
		})
		if ok {
			return k, n, true
		}
	}
	return 0, 0, false
}

func isCount(toks []nz.Token) bool {
	_, _, ok := countAt(toks)
	return ok
}

// countAt reads "3x", "twice", "3 times", "for 3 times", "up to 7x" and
// returns the count and the tokens consumed.
func countAt(toks []nz.Token) (int, int, bool) {
	if len(toks) == 0 {
		return 0, 0, false
	}
	t := toks[0]
	switch {
	case t.Kind == nz.Count:
		return t.Value, 1, true
	case t.Kind == nz.Number && len(toks) > 1 && toks[1].Is("times"):
		return t.Value, 2, true
	case t.Is("for"):
		v, n, ok := countAt(toks[1:])
		return v, n + 1, ok
	case t.Is("up") && len(toks) > 1 && toks[1].Is("to"):
		v, n, ok := countAt(toks[2:])
		return v, n + 2, ok
	}
	return 0, 0, false
}

func isClock(t nz.Token, afterAt bool) bool {
	return t.Kind == nz.Clock || (afterAt && t.Kind == nz.Number && t.Value <= 23)
}

func (m Matcher) setClock(cl *clauses, t nz.Token) bool {
	if cl.clock {
		return false
	}
	if t.Kind == nz.Number {
		t = nz.Token{Kind: nz.Clock, Hour: t.Value}
	}
	h, mi, _, ok := dates.ClockOf(t)
	if !ok {
		return false
	}
	cl.clock, cl.hour, cl.minute = true, h, mi
	return true
}
