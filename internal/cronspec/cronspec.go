// Package cronspec converts cron schedules into recurrence rules.
package cronspec

import (
	"errors"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/samber/mo"

	"recurrent/internal/rule"
)

// ErrUnsupported is returned for schedules with no exact RRULE equivalent.
var ErrUnsupported = errors.New("cron schedule has no rrule equivalent")

// starBit marks a field written as "*" or "?" in a parsed SpecSchedule.
const starBit = 1 << 63

// ToRule parses a standard five-field spec or a descriptor ("@daily",
// "@every 90m") into a rule.
func ToRule(spec string) (rule.Rule, error) {
	sched, err := cron.ParseStandard(spec)
	if err != nil {
		return rule.Rule{}, fmt.Errorf("parse cron %q: %w", spec, err)
	}
	var r rule.Rule
	switch s := sched.(type) {
	case cron.ConstantDelaySchedule:
		r, err = fromDelay(s.Delay)
	case *cron.SpecSchedule:
		r, err = fromSpec(s)
	default:
		err = fmt.Errorf("%w: %T", ErrUnsupported, sched)
	}
	if err != nil {
		return rule.Rule{}, err
	}
	if err := r.Validate(); err != nil {
		return rule.Rule{}, err
	}
	return r, nil
}

func fromDelay(d time.Duration) (rule.Rule, error) {
	var r rule.Rule
	switch {
	case d >= time.Hour && d%time.Hour == 0:
		r = rule.New(rule.Hourly)
		r.Interval = mo.Some(int(d / time.Hour))
	case d >= time.Minute && d%time.Minute == 0:
		r = rule.New(rule.Minutely)
		r.Interval = mo.Some(int(d / time.Minute))
	case d >= time.Second:
		r = rule.New(rule.Secondly)
		r.Interval = mo.Some(int(d / time.Second))
	default:
		return r, fmt.Errorf("%w: delay %s", ErrUnsupported, d)
	}
	return r, nil
}

func fromSpec(s *cron.SpecSchedule) (rule.Rule, error) {
	var (
		domStar   = s.Dom&starBit != 0
		dowStar   = s.Dow&starBit != 0
		monthStar = s.Month&starBit != 0
		minutes   = bits(s.Minute, 0, 59)
		hours     = bits(s.Hour, 0, 23)
	)
	if !domStar && !dowStar {
		return rule.Rule{}, fmt.Errorf("%w: day-of-month and day-of-week both restricted", ErrUnsupported)
	}

	// "*/15 * * * *" and friends.
	if s.Hour&starBit != 0 && domStar && dowStar && monthStar {
		if step, ok := evenStep(minutes, 60); ok {
			r := rule.New(rule.Minutely)
			r.Interval = mo.Some(step)
			return r, nil
		}
	}
	if len(minutes) != 1 || len(hours) != 1 {
		return rule.Rule{}, fmt.Errorf("%w: more than one firing time per day", ErrUnsupported)
	}

	var r rule.Rule
	switch {
	case !domStar && !monthStar:
		r = rule.New(rule.Yearly)
		r.ByMonth = bits(s.Month, 1, 12)
		r.ByMonthDay = bits(s.Dom, 1, 31)
	case !domStar:
		r = rule.New(rule.Monthly)
		r.ByMonthDay = bits(s.Dom, 1, 31)
	case !dowStar && !monthStar:
		r = rule.New(rule.Yearly)
		r.ByMonth = bits(s.Month, 1, 12)
		r.ByDay = weekdays(s.Dow)
	case !dowStar:
		r = rule.New(rule.Weekly)
		r.ByDay = weekdays(s.Dow)
	case !monthStar:
		return rule.Rule{}, fmt.Errorf("%w: month restriction without a day", ErrUnsupported)
	default:
		r = rule.New(rule.Daily)
	}
	r.ByHour = mo.Some(hours[0])
	r.ByMinute = mo.Some(minutes[0])
	return r, nil
}

// bits lists the set positions of field between lo and hi.
func bits(field uint64, lo, hi int) []int {
	var out []int
	for i := lo; i <= hi; i++ {
		if field&(1<<uint(i)) != 0 {
			out = append(out, i)
		}
	}
	return out
}

// weekdays converts a cron day-of-week field (0 = Sunday) into Monday-first
// rule days.
func weekdays(field uint64) []rule.Day {
	var out []rule.Day
	for _, wd := range []time.Weekday{time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday, time.Saturday, time.Sunday} {
		if field&(1<<uint(wd)) != 0 {
			out = append(out, rule.Day{Weekday: rule.WeekdayOf(wd)})
		}
	}
	return out
}

// evenStep reports the step of vals when they start at 0 and are evenly
// spaced across size.
func evenStep(vals []int, size int) (int, bool) {
	if len(vals) == 0 || vals[0] != 0 {
		return 0, false
	}
	if len(vals) == 1 {
		return 0, false
	}
	step := vals[1] - vals[0]
	if size%step != 0 || len(vals) != size/step {
		return 0, false
	}
	for i, v := range vals {
		if v != i*step {
			return 0, false
		}
	}
	return step, true
}
