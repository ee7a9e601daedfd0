// Package normalize turns free text into canonical tokens: it strips carrier
// phrases, folds case and punctuation, and maps abbreviations, synonyms,
// number words and clock notations onto a small vocabulary.
package normalize

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	clockRe   = regexp.MustCompile(`^(\d{1,2})(?::(\d{2}))?(?::(\d{2}))?(am|pm|a|p)$`)
	colonRe   = regexp.MustCompile(`^(\d{1,2}):(\d{2})(?::(\d{2}))?$`)
	slashRe   = regexp.MustCompile(`^(\d{1,2})/(\d{1,2})(?:/(\d{2}|\d{4}))?$`)
	isoRe     = regexp.MustCompile(`^(\d{4})-(\d{2})-(\d{2})$`)
	countRe   = regexp.MustCompile(`^(\d+)x$`)
	ordinalRe = regexp.MustCompile(`^(\d+)(?:st|nd|rd|th)$`)
	numberRe  = regexp.MustCompile(`^\d+$`)

	// wordHyphenRe splits "mon-fri" style ranges; digit hyphens are left to isoRe.
	wordHyphenRe = regexp.MustCompile(`([a-z])\s*-\s*([a-z])`)
	compoundRe   = regexp.MustCompile(`\b(twenty|thirty)[- ](first|second|third|fourth|fifth|sixth|seventh|eighth|ninth|one|two|three|four|five|six|seven|eight|nine)\b`)
	periodRe     = regexp.MustCompile(`\.(\s|$)`)
)

// Candidates returns the texts worth parsing for one input, best first.
// Carrier phrases are removed; a "remind me to <task>" prefix yields the
// suffixes of the remainder since the task length is unknown. A suffix is
// skipped when the task would end on a grammar word, so "move car twice
// weekly" never shrinks to "weekly".
func Candidates(text string) []string {
	s := fold(text)
	for changed := true; changed; {
		changed = false
		for _, p := range carrierPrefixes {
			if rest, ok := strings.CutPrefix(s, p+" "); ok {
				s, changed = strings.TrimSpace(rest), true
			}
		}
		for _, suf := range carrierSuffixes {
			if rest, ok := strings.CutSuffix(s, " "+suf); ok {
				s, changed = strings.TrimSpace(rest), true
			}
		}
	}
	rest, ok := strings.CutPrefix(s, reminderPrefix)
	if !ok {
		return []string{s}
	}
	words := strings.Fields(rest)
	out := make([]string, 0, len(words))
	for i := range words {
		if i > 0 && grammatical(words[i-1]) {
			continue
		}
		out = append(out, strings.Join(words[i:], " "))
	}
	return out
}

// connectives are the plain words the matchers give meaning to.
var connectives = []string{
	",", "and", "every", "other", "through", "until", "starting", "from", "for",
	"up", "to", "except", "at", "on", "in", "of", "the", "next", "this", "once",
	"weekend", "weekday", "times",
}

// grammatical reports whether w would be read as part of a date or rule.
func grammatical(w string) bool {
	for _, t := range classify(w) {
		if t.Kind != Word || t.Is(connectives...) {
			return true
		}
		if _, ok := t.Unit(); ok {
			return true
		}
	}
	return false
}

// fold lower-cases and strips punctuation that carries no meaning.
func fold(text string) string {
	s := strings.ToLower(strings.TrimSpace(text))
	s = strings.NewReplacer(
		"’", "'",
		"a.m.", "am",
		"p.m.", "pm",
		"o'clock", " oclock",
		"o clock", " oclock",
		",", " , ",
		";", " ",
		"!", " ",
		"?", " ",
		"(", " ",
		")", " ",
		"\"", " ",
	).Replace(s)
	s = periodRe.ReplaceAllString(s, " ")
	return strings.Join(strings.Fields(s), " ")
}

// Tokenize maps folded text onto tokens. Words outside the vocabulary are kept
// as Word tokens with their literal text so that matchers reject them.
func Tokenize(text string) []Token {
	s := fold(text)
	s = compoundRe.ReplaceAllStringFunc(s, func(m string) string {
		parts := compoundRe.FindStringSubmatch(m)
		tens := numberWords[parts[1]]
		if n, ok := ordinalWords[parts[2]]; ok {
			return strconv.Itoa(tens+n) + "th"
		}
		return strconv.Itoa(tens + numberWords[parts[2]])
	})
	s = wordHyphenRe.ReplaceAllString(s, "$1 - $2")
	s = strings.ReplaceAll(s, "'", "")

	var toks []Token
	for _, w := range strings.Fields(s) {
		toks = append(toks, classify(w)...)
	}
	return merge(toks)
}

func classify(w string) []Token {
	if canon, ok := synonyms[w]; ok {
		out := make([]Token, 0, len(canon))
		for _, c := range canon {
			out = append(out, Token{Kind: Word, Text: c})
		}
		return out
	}
	if n, ok := countWords[w]; ok {
		return []Token{{Kind: Count, Text: w, Value: n}}
	}
	if n, ok := ordinalWords[w]; ok {
		return []Token{{Kind: Ordinal, Text: w, Value: n}}
	}
	if n, ok := numberWords[w]; ok {
		return []Token{{Kind: Number, Text: w, Value: n}}
	}
	if d, ok := weekdayWords[w]; ok {
		return []Token{{Kind: Weekday, Text: w, Value: int(d)}}
	}
	if d, ok := weekdayWords[strings.TrimSuffix(w, "s")]; ok && len(w) > 6 {
		return []Token{{Kind: Weekday, Text: w, Value: int(d), Plural: true}}
	}
	if m, ok := monthWords[w]; ok {
		return []Token{{Kind: Month, Text: w, Value: int(m)}}
	}
	if m := clockRe.FindStringSubmatch(w); m != nil {
		return []Token{clockToken(w, m[1], m[2], m[3], m[4])}
	}
	if m := colonRe.FindStringSubmatch(w); m != nil {
		return []Token{clockToken(w, m[1], m[2], m[3], "")}
	}
	if m := slashRe.FindStringSubmatch(w); m != nil {
		return []Token{{Kind: Slash, Text: w, Value: atoi(m[1]), Day: atoi(m[2]), Year: fullYear(m[3])}}
	}
	if m := isoRe.FindStringSubmatch(w); m != nil {
		return []Token{{Kind: Slash, Text: w, Year: atoi(m[1]), Value: atoi(m[2]), Day: atoi(m[3])}}
	}
	if m := countRe.FindStringSubmatch(w); m != nil {
		return []Token{{Kind: Count, Text: w, Value: atoi(m[1])}}
	}
	if m := ordinalRe.FindStringSubmatch(w); m != nil {
		return []Token{{Kind: Ordinal, Text: w, Value: atoi(m[1])}}
	}
	if numberRe.MatchString(w) {
		return []Token{{Kind: Number, Text: w, Value: atoi(w)}}
	}
	return []Token{{Kind: Word, Text: w}}
}

func clockToken(text, h, m, sec, mer string) Token {
	t := Token{Kind: Clock, Text: text, Hour: atoi(h), Minute: atoi(m), Second: atoi(sec)}
	switch mer {
	case "am", "a":
		t.Meridiem = AM
	case "pm", "p":
		t.Meridiem = PM
	}
	return t
}

// merge joins multi-token constructs: "3 pm", "9 oclock", "2nd to the last",
// "noon" and "once a week". A comma between list items, or anywhere in an
// except clause, becomes "and"; other commas are dropped.
func merge(in []Token) []Token {
	out := make([]Token, 0, len(in))
	except := false
	for i := 0; i < len(in); i++ {
		t := in[i]
		if t.Is("except") {
			except = true
		}
		next := func(k int) Token {
			if i+k < len(in) {
				return in[i+k]
			}
			return Token{Kind: Word}
		}
		switch {
		case (t.Kind == Number || (t.Kind == Clock && t.Meridiem == NoMeridiem)) && next(1).Is("am", "pm"):
			c := t
			if t.Kind == Number {
				c = Token{Kind: Clock, Text: t.Text, Hour: t.Value}
			}
			c.Meridiem = AM
			if next(1).Text == "pm" {
				c.Meridiem = PM
			}
			out = append(out, c)
			i++
		case t.Kind == Number && next(1).Is("oclock"):
			out = append(out, Token{Kind: Clock, Text: "oclock", Hour: t.Value})
			i++
		case t.Is("noon"):
			out = append(out, Token{Kind: Clock, Text: "noon", Hour: 12, Meridiem: PM})
		case t.Is("midnight"):
			out = append(out, Token{Kind: Clock, Text: "midnight", Hour: 12, Meridiem: AM})
		case t.Kind == Ordinal && t.Value > 0 && next(1).Is("to") && next(2).Kind == Ordinal && next(2).Value == -1:
			out = append(out, Token{Kind: Ordinal, Text: t.Text, Value: -t.Value})
			i += 2
		case t.Kind == Ordinal && t.Value > 0 && next(1).Is("to") && next(2).Is("the") && next(3).Kind == Ordinal && next(3).Value == -1:
			out = append(out, Token{Kind: Ordinal, Text: t.Text, Value: -t.Value})
			i += 3
		case t.Is("once") && next(1).Is("a", "an", "per", "every"):
			out = append(out, Token{Kind: Word, Text: "every"})
			i++
		case t.Is(","):
			j := i + 1
			if next(1).Is("and") {
				j++
			}
			if len(out) > 0 && j < len(in) && listed(out[len(out)-1], in[j], except) {
				out = append(out, Token{Kind: Word, Text: "and"})
				i = j - 1
			}
		default:
			out = append(out, t)
		}
	}
	return out
}

// listed reports whether a comma between prev and next separates list items.
func listed(prev, next Token, except bool) bool {
	dayish := func(t Token) bool { return t.Kind == Weekday || t.Is("weekend", "weekday") }
	switch {
	case next.Kind == Number && next.Value >= 1000:
		// "march 3rd, 2001"
		return false
	case dayish(prev) && dayish(next):
		return true
	case prev.Kind == next.Kind:
		switch prev.Kind {
		case Ordinal, Number, Month, Slash:
			return true
		}
	}
	return except && !prev.Is("except", "and", "on", "in", "for") && !next.Is("starting", "from", "until", "for")
}

func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}

func fullYear(s string) int {
	switch len(s) {
	case 0:
		return 0
	case 2:
		return 2000 + atoi(s)
	}
	return atoi(s)
}
