package normalize

import (
	"fmt"
	"strings"
	"time"
)

type Kind int

const (
	Word    Kind = iota // canonical vocabulary word, see Token.Text
	Number              // cardinal in Value
	Ordinal             // signed position in Value: 1st=1, last=-1, 2nd to last=-2
	Weekday             // time.Weekday in Value
	Month               // 1..12 in Value
	Clock               // Hour/Minute/Second plus Meridiem
	Slash               // M/D[/Y] or Y-M-D literal in Month/Day/Year (Year 0 when absent)
	Count               // repetition count from "twice" or "3x"
)

type Meridiem int

const (
	NoMeridiem Meridiem = iota
	AM
	PM
)

// Token is one normalized unit of input.
type Token struct {
	Kind  Kind
	Text  string
	Value int

	// Plural marks weekday names written in the plural ("tuesdays").
	Plural bool

	Hour, Minute, Second int
	Meridiem             Meridiem

	Year, Day int
}

// Is reports whether t is the vocabulary word w.
func (t Token) Is(words ...string) bool {
	if t.Kind != Word {
		return false
	}
	for _, w := range words {
		if t.Text == w {
			return true
		}
	}
	return false
}

// Unit returns the canonical time unit named by t, if any. The ordinal
// "second" doubles as the unit.
func (t Token) Unit() (string, bool) {
	switch {
	case t.Kind == Ordinal && t.Text == "second":
		return "second", true
	case t.Is("second", "minute", "hour", "day", "week", "month", "year"):
		return t.Text, true
	}
	return "", false
}

func (t Token) Weekday() time.Weekday { return time.Weekday(t.Value) }

func (t Token) String() string {
	switch t.Kind {
	case Number:
		return fmt.Sprintf("#%d", t.Value)
	case Ordinal:
		return fmt.Sprintf("ord(%d)", t.Value)
	case Weekday:
		return time.Weekday(t.Value).String()
	case Month:
		return time.Month(t.Value).String()
	case Clock:
		return fmt.Sprintf("clock(%02d:%02d:%02d/%d)", t.Hour, t.Minute, t.Second, t.Meridiem)
	case Slash:
		return fmt.Sprintf("date(%d/%d/%d)", t.Month(), t.Day, t.Year)
	case Count:
		return fmt.Sprintf("x%d", t.Value)
	}
	return t.Text
}

// Month returns the month of a Slash or Month token.
func (t Token) Month() time.Month {
	return time.Month(t.Value)
}

// Join renders tokens for logging.
func Join(toks []Token) string {
	s := make([]string, len(toks))
	for i, t := range toks {
		s[i] = t.String()
	}
	return strings.Join(s, " ")
}
