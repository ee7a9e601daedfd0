// Package rule holds the recurrence rule model shared by the parser and the
// formatter, its validation, its RFC 5545 text form and its bridge to rrule-go.
//
// All times are naive wall-clock values: callers build them in time.UTC and
// only their calendar fields are meaningful.
package rule

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/samber/mo"
)

// ErrInvalid is returned by Validate for structurally broken rules.
var ErrInvalid = errors.New("invalid recurrence rule")

type Frequency string

const (
	Secondly Frequency = "SECONDLY"
	Minutely Frequency = "MINUTELY"
	Hourly   Frequency = "HOURLY"
	Daily    Frequency = "DAILY"
	Weekly   Frequency = "WEEKLY"
	Monthly  Frequency = "MONTHLY"
	Yearly   Frequency = "YEARLY"
)

func ParseFrequency(s string) (Frequency, bool) {
	switch f := Frequency(strings.ToUpper(strings.TrimSpace(s))); f {
	case Secondly, Minutely, Hourly, Daily, Weekly, Monthly, Yearly:
		return f, true
	}
	return "", false
}

// SubDaily reports whether instances of f fall several times a day.
func (f Frequency) SubDaily() bool {
	return f == Secondly || f == Minutely || f == Hourly
}

// Weekday counts from Monday, like RFC 5545 WKST=MO.
type Weekday int

const (
	MO Weekday = iota
	TU
	WE
	TH
	FR
	SA
	SU
)

var weekdayCodes = [...]string{"MO", "TU", "WE", "TH", "FR", "SA", "SU"}

func (w Weekday) Code() string {
	if w < MO || w > SU {
		return "??"
	}
	return weekdayCodes[w]
}

func ParseWeekday(code string) (Weekday, bool) {
	code = strings.ToUpper(code)
	for i, c := range weekdayCodes {
		if c == code {
			return Weekday(i), true
		}
	}
	return 0, false
}

// WeekdayOf converts a time.Weekday (Sunday first) into a Weekday.
func WeekdayOf(d time.Weekday) Weekday {
	return Weekday((int(d) + 6) % 7)
}

// Time converts back to the time package numbering.
func (w Weekday) Time() time.Weekday {
	return time.Weekday((int(w) + 1) % 7)
}

// Day is one BYDAY entry, optionally prefixed by a signed ordinal (1FR, -1FR).
type Day struct {
	N       int
	Weekday Weekday
}

func (d Day) String() string {
	if d.N == 0 {
		return d.Weekday.Code()
	}
	return strconv.Itoa(d.N) + d.Weekday.Code()
}

// ParseDay reads a BYDAY token such as "FR", "+1FR" or "-2MO".
func ParseDay(s string) (Day, bool) {
	s = strings.TrimSpace(s)
	if len(s) < 2 {
		return Day{}, false
	}
	wd, ok := ParseWeekday(s[len(s)-2:])
	if !ok {
		return Day{}, false
	}
	prefix := s[:len(s)-2]
	if prefix == "" {
		return Day{Weekday: wd}, true
	}
	n, err := strconv.Atoi(prefix)
	if err != nil || n == 0 {
		return Day{}, false
	}
	return Day{N: n, Weekday: wd}, true
}

// Stamp is a date, or a date with a clock time when Clock is set.
type Stamp struct {
	Time  time.Time
	Clock bool
}

func DateStamp(y int, m time.Month, d int) Stamp {
	return Stamp{Time: time.Date(y, m, d, 0, 0, 0, 0, time.UTC)}
}

func ClockStamp(t time.Time) Stamp {
	return Stamp{Time: t, Clock: true}
}

const (
	dateLayout     = "20060102"
	dateTimeLayout = "20060102T150405"
	monthLayout    = "200601"
)

func (s Stamp) String() string {
	if s.Clock {
		return s.Time.Format(dateTimeLayout)
	}
	return s.Time.Format(dateLayout)
}

// ParseStamp reads YYYYMMDD or YYYYMMDDTHHMMSS[Z].
func ParseStamp(v string) (Stamp, bool) {
	v = strings.TrimSuffix(strings.TrimSpace(v), "Z")
	if strings.Contains(v, "T") {
		t, err := time.ParseInLocation(dateTimeLayout, v, time.UTC)
		if err != nil {
			return Stamp{}, false
		}
		return ClockStamp(t), true
	}
	t, err := time.ParseInLocation(dateLayout, v, time.UTC)
	if err != nil {
		return Stamp{}, false
	}
	return Stamp{Time: t}, true
}

// ExDate is one exclusion entry: a date, a datetime, or a whole month when
// Month is non-zero.
type ExDate struct {
	Stamp Stamp
	Month time.Month
	Year  int
}

func MonthExclusion(m time.Month, year int) ExDate {
	return ExDate{Month: m, Year: year}
}

func (e ExDate) IsMonth() bool { return e.Month != 0 }

func (e ExDate) String() string {
	if e.IsMonth() {
		return fmt.Sprintf("%04d%02d", e.Year, int(e.Month))
	}
	return e.Stamp.String()
}

func ParseExDate(v string) (ExDate, bool) {
	v = strings.TrimSpace(v)
	if len(v) == len(monthLayout) {
		t, err := time.Parse(monthLayout, v)
		if err != nil {
			return ExDate{}, false
		}
		return MonthExclusion(t.Month(), t.Year()), true
	}
	s, ok := ParseStamp(v)
	if !ok {
		return ExDate{}, false
	}
	return ExDate{Stamp: s}, true
}

// Rule is a recurrence rule with explicit per-field optionality. Set-valued
// fields are unset when nil.
type Rule struct {
	Freq       mo.Option[Frequency]
	Interval   mo.Option[int]
	ByDay      []Day
	ByMonthDay []int
	BySetPos   []int
	ByWeekNo   []int
	ByMonth    []int
	ByYearDay  []int
	ByHour     mo.Option[int]
	ByMinute   mo.Option[int]
	Count      mo.Option[int]
	Until      mo.Option[Stamp]
	Dtstart    mo.Option[Stamp]
	ExDates    []ExDate
	ExRule     *Rule
}

// New returns a rule of the given frequency with the default interval.
func New(f Frequency) Rule {
	return Rule{Freq: mo.Some(f), Interval: mo.Some(1)}
}

func (r Rule) Frequency() Frequency {
	return r.Freq.OrEmpty()
}

func (r Rule) Every() int {
	return r.Interval.OrElse(1)
}

// Validate enforces the field invariants and fills the default interval.
func (r *Rule) Validate() error {
	if err := r.validate(true); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	return nil
}

func (r *Rule) validate(top bool) error {
	freq, ok := r.Freq.Get()
	if !ok {
		return errors.New("missing frequency")
	}
	if _, ok := ParseFrequency(string(freq)); !ok {
		return fmt.Errorf("unknown frequency %q", freq)
	}
	if !r.Interval.IsPresent() {
		r.Interval = mo.Some(1)
	}
	if r.Every() < 1 {
		return fmt.Errorf("interval %d", r.Every())
	}
	for _, d := range r.ByDay {
		if d.Weekday < MO || d.Weekday > SU {
			return fmt.Errorf("weekday %d", d.Weekday)
		}
		if d.N != 0 && freq != Monthly && freq != Yearly {
			return fmt.Errorf("ordinal weekday %s with %s", d, freq)
		}
		if abs(d.N) > 53 || (freq == Monthly && abs(d.N) > 5) {
			return fmt.Errorf("ordinal weekday %s out of range", d)
		}
	}
	if err := checkSet("bymonthday", r.ByMonthDay, 31, true); err != nil {
		return err
	}
	if err := checkSet("bysetpos", r.BySetPos, 366, true); err != nil {
		return err
	}
	if err := checkSet("byyearday", r.ByYearDay, 366, true); err != nil {
		return err
	}
	if err := checkSet("byweekno", r.ByWeekNo, 53, false); err != nil {
		return err
	}
	if err := checkSet("bymonth", r.ByMonth, 12, false); err != nil {
		return err
	}
	if len(r.BySetPos) > 0 && len(r.ByDay) == 0 {
		return errors.New("bysetpos without byday")
	}
	if (len(r.ByWeekNo) > 0 || len(r.ByYearDay) > 0) && freq != Yearly {
		return fmt.Errorf("byweekno/byyearday with %s", freq)
	}
	if h, ok := r.ByHour.Get(); ok && (h < 0 || h > 23) {
		return fmt.Errorf("byhour %d", h)
	}
	if m, ok := r.ByMinute.Get(); ok && (m < 0 || m > 59) {
		return fmt.Errorf("byminute %d", m)
	}
	if c, ok := r.Count.Get(); ok && c < 1 {
		return fmt.Errorf("count %d", c)
	}
	if r.Count.IsPresent() && r.Until.IsPresent() {
		return errors.New("count and until are mutually exclusive")
	}
	for _, e := range r.ExDates {
		if e.IsMonth() && (e.Month < time.January || e.Month > time.December) {
			return fmt.Errorf("exdate month %d", e.Month)
		}
	}
	if r.ExRule != nil {
		if !top {
			return errors.New("nested exception rule")
		}
		if len(r.ExRule.ExDates) > 0 {
			return errors.New("exception rule carries exclusions")
		}
		if err := r.ExRule.validate(false); err != nil {
			return fmt.Errorf("exrule: %w", err)
		}
	}
	return nil
}

func checkSet(name string, vals []int, limit int, signed bool) error {
	for _, v := range vals {
		switch {
		case v == 0 && signed:
			return fmt.Errorf("%s contains 0", name)
		case !signed && (v < 1 || v > limit):
			return fmt.Errorf("%s %d out of range", name, v)
		case abs(v) > limit:
			return fmt.Errorf("%s %d out of range", name, v)
		}
	}
	return nil
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
