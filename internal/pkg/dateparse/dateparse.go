// Package dateparse turns loose user text into a calendar date.
package dateparse

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/olebedev/when"
	"github.com/olebedev/when/rules/common"
	"github.com/olebedev/when/rules/en"
)

var (
	isoPattern     = regexp.MustCompile(`\b(\d{4})-(\d{1,2})-(\d{1,2})\b`)
	numericPattern = regexp.MustCompile(`\b(\d{1,2})[/-](\d{1,2})[/-](\d{2,4})\b`)
	ordinalPattern = regexp.MustCompile(`(?i)\b(\d{1,2})(?:st|nd|rd|th)\b(?:\s+(?:of\s+)?([a-z]{3,9})\b)?`)
)

type relative struct {
	phrase *regexp.Regexp
	shift  func(time.Time) time.Time
}

// Longer phrases first so "next week" is not read as something shorter.
var relatives = []relative{
	{regexp.MustCompile(`(?i)\bnext week\b`), func(t time.Time) time.Time { return t.AddDate(0, 0, 7) }},
	{regexp.MustCompile(`(?i)\bnext month\b`), func(t time.Time) time.Time { return t.AddDate(0, 1, 0) }},
	{regexp.MustCompile(`(?i)\btomorrow\b`), func(t time.Time) time.Time { return t.AddDate(0, 0, 1) }},
	{regexp.MustCompile(`(?i)\byesterday\b`), func(t time.Time) time.Time { return t.AddDate(0, 0, -1) }},
	{regexp.MustCompile(`(?i)\btoday\b`), func(t time.Time) time.Time { return t }},
}

type Parser struct {
	w *when.Parser
}

func New() *Parser {
	w := when.New(nil)
	w.Add(en.All...)
	w.Add(common.All...)
	return &Parser{w: w}
}

// Parse resolves text relative to now and returns the date at midnight in now's location.
// Numeric layouts win over relative words, which win over phrase parsing.
func (p *Parser) Parse(text string, now time.Time) (time.Time, bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return time.Time{}, false
	}

	// A literal numeric date is final: an impossible one is not retried as a phrase.
	if d, matched, ok := parseNumeric(text, now.Location()); matched {
		return d, ok
	}

	for _, r := range relatives {
		if r.phrase.MatchString(text) {
			return midnight(r.shift(now)), true
		}
	}

	if d, ok := parseOrdinal(text, now); ok {
		return d, true
	}

	res, err := p.w.Parse(text, now)
	if err != nil || res == nil {
		return time.Time{}, false
	}
	// A bare clock time ("at 3pm") resolves onto today; that is not a date the user gave.
	d := midnight(res.Time.In(now.Location()))
	if d.Equal(midnight(now)) {
		return time.Time{}, false
	}
	return d, true
}

func parseNumeric(text string, loc *time.Location) (d time.Time, matched, ok bool) {
	if m := isoPattern.FindStringSubmatch(text); m != nil {
		d, ok = build(atoi(m[1]), atoi(m[2]), atoi(m[3]), loc)
		return d, true, ok
	}

	m := numericPattern.FindStringSubmatch(text)
	if m == nil {
		return time.Time{}, false, false
	}
	a, b, year := atoi(m[1]), atoi(m[2]), atoi(m[3])
	if len(m[3]) == 2 {
		year += 2000
	}
	if d, ok = build(year, a, b, loc); ok {
		return d, true, true
	}
	// Month-first failed, e.g. 25/12/2030.
	d, ok = build(year, b, a, loc)
	return d, true, ok
}

// parseOrdinal reads "the 5th" as the next 5th after today and "5th of April" as the next April 5th.
func parseOrdinal(text string, now time.Time) (time.Time, bool) {
	m := ordinalPattern.FindStringSubmatch(text)
	if m == nil {
		return time.Time{}, false
	}
	day := atoi(m[1])
	today := midnight(now)

	if month, ok := monthByName(m[2]); ok {
		for year := now.Year(); year <= now.Year()+4; year++ {
			if d, ok := build(year, int(month), day, now.Location()); ok && d.After(today) {
				return d, true
			}
		}
		return time.Time{}, false
	}

	// Months without the day are skipped, so "the 31st" in February lands in March.
	for i := 0; i < 12; i++ {
		first := time.Date(now.Year(), now.Month()+time.Month(i), 1, 0, 0, 0, 0, now.Location())
		if d, ok := build(first.Year(), int(first.Month()), day, now.Location()); ok && d.After(today) {
			return d, true
		}
	}
	return time.Time{}, false
}

func monthByName(word string) (time.Month, bool) {
	if len(word) < 3 {
		return 0, false
	}
	word = strings.ToLower(word)
	for m := time.January; m <= time.December; m++ {
		name := strings.ToLower(m.String())
		if word == name || word == name[:3] {
			return m, true
		}
	}
	return 0, false
}

func build(year, month, day int, loc *time.Location) (time.Time, bool) {
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return time.Time{}, false
	}
	d := time.Date(year, time.Month(month), day, 0, 0, 0, 0, loc)
	if d.Day() != day || int(d.Month()) != month {
		return time.Time{}, false
	}
	return d, true
}

func midnight(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}
