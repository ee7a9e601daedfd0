package rule

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/samber/mo"
)

var (
	ErrNoRRule = errors.New("no RRULE line")
	ErrNoFreq  = errors.New("no FREQ")
)

// Read scans an RRULE block line by line. DTSTART, RRULE, EXDATE and EXRULE
// lines are understood; anything else is skipped. Unknown RRULE keys are
// ignored, but an unknown frequency or BYDAY token is an error.
func Read(text string) (Rule, error) {
	var (
		r     Rule
		found bool
	)
	for _, line := range strings.FieldsFunc(text, func(c rune) bool { return c == '\n' || c == '\r' }) {
		name, value, ok := strings.Cut(strings.TrimSpace(line), ":")
		if !ok {
			continue
		}
		switch strings.ToUpper(name) {
		case "DTSTART":
			s, ok := ParseStamp(value)
			if !ok {
				return Rule{}, fmt.Errorf("bad DTSTART %q", value)
			}
			r.Dtstart = mo.Some(s)
		case "RRULE":
			if err := r.readBody(value); err != nil {
				return Rule{}, err
			}
			found = true
		case "EXDATE":
			for _, v := range strings.Split(value, ",") {
				e, ok := ParseExDate(v)
				if !ok {
					return Rule{}, fmt.Errorf("bad EXDATE %q", v)
				}
				r.ExDates = append(r.ExDates, e)
			}
		case "EXRULE":
			var ex Rule
			if err := ex.readBody(value); err != nil {
				return Rule{}, fmt.Errorf("exrule: %w", err)
			}
			r.ExRule = &ex
		}
	}
	if !found {
		return Rule{}, ErrNoRRule
	}
	return r, nil
}

// ReadBody parses a bare RRULE value such as "FREQ=DAILY;INTERVAL=2".
func ReadBody(body string) (Rule, error) {
	var r Rule
	err := r.readBody(body)
	return r, err
}

func (r *Rule) readBody(body string) error {
	for _, field := range strings.Split(body, ";") {
		key, val, ok := strings.Cut(strings.TrimSpace(field), "=")
		if !ok {
			continue
		}
		var err error
		switch strings.ToUpper(key) {
		case "FREQ":
			f, ok := ParseFrequency(val)
			if !ok {
				return fmt.Errorf("unknown FREQ %q", val)
			}
			r.Freq = mo.Some(f)
		case "INTERVAL":
			r.Interval, err = readOpt(val)
		case "COUNT":
			r.Count, err = readOpt(val)
		case "BYHOUR":
			r.ByHour, err = readOpt(firstOf(val))
		case "BYMINUTE":
			r.ByMinute, err = readOpt(firstOf(val))
		case "BYMONTHDAY":
			r.ByMonthDay, err = readInts(val)
		case "BYSETPOS":
			r.BySetPos, err = readInts(val)
		case "BYWEEKNO":
			r.ByWeekNo, err = readInts(val)
		case "BYMONTH":
			r.ByMonth, err = readInts(val)
		case "BYYEARDAY":
			r.ByYearDay, err = readInts(val)
		case "BYDAY":
			for _, tok := range strings.Split(val, ",") {
				d, ok := ParseDay(tok)
				if !ok {
					return fmt.Errorf("unknown BYDAY %q", tok)
				}
				r.ByDay = append(r.ByDay, d)
			}
		case "UNTIL":
			s, ok := ParseStamp(val)
			if !ok {
				return fmt.Errorf("bad UNTIL %q", val)
			}
			r.Until = mo.Some(s)
		case "DTSTART":
			s, ok := ParseStamp(val)
			if !ok {
				return fmt.Errorf("bad DTSTART %q", val)
			}
			r.Dtstart = mo.Some(s)
		}
		if err != nil {
			return fmt.Errorf("%s: %w", key, err)
		}
	}
	if !r.Freq.IsPresent() {
		return ErrNoFreq
	}
	return nil
}

func firstOf(list string) string {
	first, _, _ := strings.Cut(list, ",")
	return first
}

func readOpt(v string) (mo.Option[int], error) {
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return mo.None[int](), err
	}
	return mo.Some(n), nil
}

func readInts(v string) ([]int, error) {
	var out []int
	for _, s := range strings.Split(v, ",") {
		n, err := strconv.Atoi(strings.TrimPrefix(strings.TrimSpace(s), "+"))
		if err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, nil
}
