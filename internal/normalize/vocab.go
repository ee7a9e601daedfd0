package normalize

import "time"

// synonyms maps an input word to its canonical token sequence.
var synonyms = map[string][]string{
	"each":        {"every"},
	"everyday":    {"every", "day"},
	"daily":       {"every", "day"},
	"nightly":     {"every", "day"},
	"weekly":      {"every", "week"},
	"fortnightly": {"every", "other", "week"},
	"monthly":     {"every", "month"},
	"yearly":      {"every", "year"},
	"annually":    {"every", "year"},
	"annual":      {"every", "year"},
	"hourly":      {"every", "hour"},

	"seconds": {"second"},
	"secs":    {"second"},
	"sec":     {"second"},
	"minutes": {"minute"},
	"mins":    {"minute"},
	"min":     {"minute"},
	"hours":   {"hour"},
	"hrs":     {"hour"},
	"hr":      {"hour"},
	"days":    {"day"},
	"weeks":   {"week"},
	"wks":     {"week"},
	"wk":      {"week"},
	"months":  {"month"},
	"years":   {"year"},
	"yrs":     {"year"},
	"yr":      {"year"},

	"weekends": {"weekend"},
	"weekdays": {"weekday"},

	"time":        {"times"},
	"occurrence":  {"times"},
	"occurrences": {"times"},
	"occurence":   {"times"},
	"occurences":  {"times"},

	"thru":      {"through"},
	"-":         {"through"},
	"till":      {"until"},
	"til":       {"until"},
	"untill":    {"until"},
	"starts":    {"starting"},
	"&":         {"and"},
	"instances": {"instance"},

	"beginning": {"start"},
	"begin":     {"start"},
	"ending":    {"end"},
}

var numberWords = map[string]int{
	"zero": 0, "one": 1, "two": 2, "three": 3, "four": 4, "five": 5, "six": 6,
	"seven": 7, "eight": 8, "nine": 9, "ten": 10, "eleven": 11, "twelve": 12,
	"thirteen": 13, "fourteen": 14, "fifteen": 15, "sixteen": 16, "seventeen": 17,
	"eighteen": 18, "nineteen": 19, "twenty": 20, "thirty": 30, "forty": 40,
	"fifty": 50, "sixty": 60, "ninety": 90,
}

var ordinalWords = map[string]int{
	"first": 1, "second": 2, "third": 3, "fourth": 4, "fifth": 5, "sixth": 6,
	"seventh": 7, "eighth": 8, "ninth": 9, "tenth": 10, "eleventh": 11,
	"twelfth": 12, "thirteenth": 13, "fourteenth": 14, "fifteenth": 15,
	"sixteenth": 16, "seventeenth": 17, "eighteenth": 18, "nineteenth": 19,
	"twentieth": 20, "thirtieth": 30, "last": -1,
}

var countWords = map[string]int{
	"twice":  2,
	"thrice": 3,
}

// weekdayWords holds singular names and abbreviations; plurals are derived
// from the full names.
var weekdayWords = map[string]time.Weekday{
	"monday": time.Monday, "mon": time.Monday,
	"tuesday": time.Tuesday, "tue": time.Tuesday, "tues": time.Tuesday,
	"wednesday": time.Wednesday, "wed": time.Wednesday, "weds": time.Wednesday,
	"thursday": time.Thursday, "thu": time.Thursday, "thur": time.Thursday, "thurs": time.Thursday,
	"friday": time.Friday, "fri": time.Friday,
	"saturday": time.Saturday, "sat": time.Saturday,
	"sunday": time.Sunday, "sun": time.Sunday,
}

var monthWords = map[string]time.Month{
	"january": time.January, "jan": time.January,
	"february": time.February, "feb": time.February,
	"march": time.March, "mar": time.March,
	"april": time.April, "apr": time.April,
	"may":  time.May,
	"june": time.June, "jun": time.June,
	"july": time.July, "jul": time.July,
	"august": time.August, "aug": time.August,
	"september": time.September, "sep": time.September, "sept": time.September,
	"october": time.October, "oct": time.October,
	"november": time.November, "nov": time.November,
	"december": time.December, "dec": time.December,
}

var carrierPrefixes = []string{
	"i'm available",
	"im available",
	"i am available",
	"i'm free",
	"im free",
}

var carrierSuffixes = []string{
	"would work best for me",
	"works best for me",
	"would work for me",
	"works for me",
}

const reminderPrefix = "remind me to "
