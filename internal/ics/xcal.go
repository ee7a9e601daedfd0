package ics

import (
	"strconv"
	"time"

	"github.com/beevik/etree"

	"recurrent/internal/rule"
)

const xcalNS = "urn:ietf:params:xml:ns:icalendar-2.0"

// ExportXCal renders r as an RFC 6321 xCal document, laid out like Export.
func ExportXCal(r rule.Rule, summary string, ref time.Time) (string, error) {
	ev := newVEvent(r, summary, ref)

	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="utf-8"`)
	root := doc.CreateElement("icalendar")
	root.CreateAttr("xmlns", xcalNS)
	vcal := root.CreateElement("vcalendar")
	calProps := vcal.CreateElement("properties")
	textProp(calProps, "prodid", productID)
	textProp(calProps, "version", "2.0")

	props := vcal.CreateElement("components").CreateElement("vevent").CreateElement("properties")
	textProp(props, "uid", ev.uid)
	textProp(props, "dtstamp", xcalStamp(rule.ClockStamp(time.Now().UTC()))+"Z")
	if ev.summary != "" {
		textProp(props, "summary", ev.summary)
	}
	stampProp(props, "dtstart", ev.start)
	recur(props.CreateElement("rrule"), ev.rule)
	for _, s := range ev.exdates {
		stampProp(props, "exdate", s)
	}
	if r.ExRule != nil {
		recur(props.CreateElement("exrule"), *r.ExRule)
	}

	doc.Indent(2)
	return doc.WriteToString()
}

func textProp(parent *etree.Element, name, value string) {
	parent.CreateElement(name).CreateElement("text").SetText(value)
}

func stampProp(parent *etree.Element, name string, s rule.Stamp) {
	kind := "date"
	if s.Clock {
		kind = "date-time"
	}
	parent.CreateElement(name).CreateElement(kind).SetText(xcalStamp(s))
}

func xcalStamp(s rule.Stamp) string {
	if s.Clock {
		return s.Time.Format("2006-01-02T15:04:05")
	}
	return s.Time.Format("2006-01-02")
}

// recur writes r's parts in the element order RFC 6321 gives for <recur>.
func recur(parent *etree.Element, r rule.Rule) {
	el := parent.CreateElement("recur")
	el.CreateElement("freq").SetText(string(r.Frequency()))
	if u, ok := r.Until.Get(); ok {
		el.CreateElement("until").SetText(xcalStamp(u))
	}
	if c, ok := r.Count.Get(); ok {
		el.CreateElement("count").SetText(strconv.Itoa(c))
	}
	el.CreateElement("interval").SetText(strconv.Itoa(r.Every()))
	if m, ok := r.ByMinute.Get(); ok {
		el.CreateElement("byminute").SetText(strconv.Itoa(m))
	}
	if h, ok := r.ByHour.Get(); ok {
		el.CreateElement("byhour").SetText(strconv.Itoa(h))
	}
	for _, d := range r.ByDay {
		el.CreateElement("byday").SetText(d.String())
	}
	ints(el, "bymonthday", r.ByMonthDay)
	ints(el, "byyearday", r.ByYearDay)
	ints(el, "byweekno", r.ByWeekNo)
	ints(el, "bymonth", r.ByMonth)
	ints(el, "bysetpos", r.BySetPos)
}

func ints(parent *etree.Element, name string, vals []int) {
	for _, v := range vals {
		parent.CreateElement(name).SetText(strconv.Itoa(v))
	}
}
