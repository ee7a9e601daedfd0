package rule

import (
	"errors"
	"fmt"
	"time"

	"github.com/samber/mo"
	"github.com/teambition/rrule-go"
)

// maxScan bounds how many raw instances Next will look at before giving up.
const maxScan = 100000

var rruleFreq = map[Frequency]rrule.Frequency{
	Secondly: rrule.SECONDLY,
	Minutely: rrule.MINUTELY,
	Hourly:   rrule.HOURLY,
	Daily:    rrule.DAILY,
	Weekly:   rrule.WEEKLY,
	Monthly:  rrule.MONTHLY,
	Yearly:   rrule.YEARLY,
}

var rruleDays = [...]rrule.Weekday{rrule.MO, rrule.TU, rrule.WE, rrule.TH, rrule.FR, rrule.SA, rrule.SU}

// Option converts the rule into rrule-go options. The rule's own DTSTART wins
// over anchor; a date-only DTSTART starts at midnight.
func (r Rule) Option(anchor time.Time) (rrule.ROption, error) {
	f, ok := rruleFreq[r.Frequency()]
	if !ok {
		return rrule.ROption{}, fmt.Errorf("%w: frequency %q", ErrInvalid, r.Frequency())
	}
	start := anchor
	if d, ok := r.Dtstart.Get(); ok {
		start = d.Time
	}
	opt := rrule.ROption{
		Freq:       f,
		Dtstart:    start,
		Interval:   r.Every(),
		Bymonthday: r.ByMonthDay,
		Bysetpos:   r.BySetPos,
		Byweekno:   r.ByWeekNo,
		Bymonth:    r.ByMonth,
		Byyearday:  r.ByYearDay,
		Count:      r.Count.OrElse(0),
	}
	for _, d := range r.ByDay {
		wd := rruleDays[d.Weekday]
		if d.N != 0 {
			wd = wd.Nth(d.N)
		}
		opt.Byweekday = append(opt.Byweekday, wd)
	}
	if h, ok := r.ByHour.Get(); ok {
		opt.Byhour = []int{h}
		opt.Byminute = []int{r.ByMinute.OrElse(0)}
		opt.Bysecond = []int{0}
	} else if m, ok := r.ByMinute.Get(); ok {
		opt.Byminute = []int{m}
		opt.Bysecond = []int{0}
	}
	if u, ok := r.Until.Get(); ok {
		opt.Until = u.Time
		if !u.Clock {
			opt.Until = u.Time.Add(24*time.Hour - time.Second)
		}
	}
	return opt, nil
}

// ToRRule builds an rrule-go rule anchored at anchor unless DTSTART is set.
func (r Rule) ToRRule(anchor time.Time) (*rrule.RRule, error) {
	opt, err := r.Option(anchor)
	if err != nil {
		return nil, err
	}
	return rrule.NewRRule(opt)
}

// FirstAfter returns the first instance at or after anchor, ignoring the
// rule's own DTSTART and bounds.
func (r Rule) FirstAfter(anchor time.Time) (time.Time, bool) {
	free := r
	free.Dtstart = mo.None[Stamp]()
	free.Count = mo.None[int]()
	free.Until = mo.None[Stamp]()
	rr, err := free.ToRRule(anchor)
	if err != nil {
		return time.Time{}, false
	}
	t := rr.After(anchor, true)
	return t, !t.IsZero()
}

// DayInstances lists the instances an hourly rule would have on day, counting
// from midnight.
func (r Rule) DayInstances(day time.Time) []time.Time {
	midnight := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	rr, err := rrule.NewRRule(rrule.ROption{
		Freq:     rrule.HOURLY,
		Interval: r.Every(),
		Dtstart:  midnight,
		Until:    midnight.Add(24*time.Hour - time.Second),
	})
	if err != nil {
		return nil
	}
	return rr.All()
}

// Next lists up to n instances at or after anchor with every exclusion
// applied.
func (r Rule) Next(anchor time.Time, n int) ([]time.Time, error) {
	if n <= 0 {
		return nil, errors.New("next: n must be positive")
	}
	rr, err := r.ToRRule(anchor)
	if err != nil {
		return nil, err
	}
	var set rrule.Set
	set.RRule(rr)
	for _, e := range r.ExDates {
		if !e.IsMonth() && e.Stamp.Clock {
			set.ExDate(e.Stamp.Time)
		}
	}
	var ex *rrule.RRule
	if r.ExRule != nil {
		if ex, err = r.ExRule.ToRRule(anchor); err != nil {
			return nil, fmt.Errorf("exrule: %w", err)
		}
	}

	out := make([]time.Time, 0, n)
	t, inc := anchor, true
	for i := 0; i < maxScan && len(out) < n; i++ {
		t = set.After(t, inc)
		inc = false
		if t.IsZero() {
			break
		}
		if r.excluded(t, ex) {
			continue
		}
		out = append(out, t)
	}
	return out, nil
}

func (r Rule) excluded(t time.Time, ex *rrule.RRule) bool {
	for _, e := range r.ExDates {
		switch {
		case e.IsMonth():
			if t.Month() == e.Month && t.Year() == e.Year {
				return true
			}
		case !e.Stamp.Clock:
			if sameDay(t, e.Stamp.Time) {
				return true
			}
		}
	}
	if ex != nil {
		hit := ex.After(t, true)
		return !hit.IsZero() && hit.Equal(t)
	}
	return false
}

func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.YearDay() == b.YearDay()
}
