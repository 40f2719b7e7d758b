package extraction

import (
	"regexp"
	"strings"
	"time"

	"appointment-assistant/internal/domain/appointment"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

type Confidence int

const (
	// Low rules only fill an empty field.
	Low Confidence = iota
	// High rules may replace a value from an earlier turn.
	High
)

// DateParser resolves free text to a calendar date relative to now.
type DateParser interface {
	Parse(text string, now time.Time) (time.Time, bool)
}

type Rule struct {
	Name       string
	Field      appointment.Field
	Confidence Confidence
	Match      func(text string, now time.Time) (string, bool)
}

// Services is the known service vocabulary; earlier entries win when several appear.
var Services = []string{
	"haircut", "manicure", "pedicure", "massage", "facial",
	"consultation", "appointment", "checkup", "cleaning",
}

// DateWords are the relative date words recognised without a cue.
var DateWords = []string{"tomorrow", "today", "next week", "next month"}

var (
	nameCuePattern      = regexp.MustCompile(`(?i)\b(?:my name is|i am|name is|name -|name:)\s*([A-Za-z]+(?:\s+[A-Za-z]+)*)`)
	leadingWordsPattern = regexp.MustCompile(`^\s*([A-Za-z]+(?:\s+[A-Za-z]+)*)`)
	emailPattern        = regexp.MustCompile(`\b[\w.-]+@[\w.-]+\.\w+\b`)
	serviceCuePattern   = regexp.MustCompile(`(?i)(?:service is|i need|service -|service:|need a)\s+(.+?)(?:,|\.|$|\band\b|\bon\b|\bfor\b|\bat\b)`)
	articlePattern      = regexp.MustCompile(`(?i)^(?:a|an|the)\s+`)
	numericDatePattern  = regexp.MustCompile(`\b(\d{1,2}[/-]\d{1,2}[/-]\d{2,4})\b`)
	isoDatePattern      = regexp.MustCompile(`\b(\d{4}-\d{2}-\d{2})\b`)
	dateCuePattern      = regexp.MustCompile(`(?i)\b(?:date is|on|date -|date:|for)\s+(\S+(?:\s+\S+)*?)(?:,|\.|$)`)
)

// nameStops end a captured name: "Alice Smith and I need..." keeps "Alice Smith".
var nameStops = map[string]bool{
	"and": true, "email": true, "service": true, "date": true, "on": true, "for": true,
	"at": true, "i": true, "need": true, "my": true, "with": true, "from": true,
	"looking": true, "interested": true, "here": true, "just": true, "also": true, "not": true,
	"ready": true, "available": true, "free": true, "sure": true, "to": true, "a": true,
	"an": true, "the": true, "in": true, "so": true, "very": true, "glad": true, "happy": true,
}

// fallbackSkips are first words that mark a leading run as something other than a name.
var fallbackSkips = map[string]bool{
	"i": true, "hi": true, "hello": true, "hey": true, "yes": true, "no": true, "ok": true,
	"okay": true, "please": true, "book": true, "need": true, "my": true, "the": true,
	"a": true, "an": true, "on": true, "for": true, "can": true, "could": true, "what": true,
	"when": true, "thanks": true, "thank": true, "show": true, "staff": true, "passcode": true,
	"exit": true, "cancel": true, "date": true, "service": true, "email": true, "name": true,
	"today": true, "tomorrow": true, "next": true, "sure": true, "looking": true, "just": true,
	"also": true, "yeah": true, "yep": true, "well": true, "so": true, "actually": true,
	"great": true, "perfect": true, "fine": true, "good": true, "alright": true, "maybe": true,
	"how": true, "do": true, "does": true, "is": true, "it": true, "would": true, "like": true,
	"want": true, "let": true, "lets": true, "and": true, "but": true, "we": true, "you": true,
	"this": true, "that": true, "any": true, "at": true, "in": true, "by": true, "via": true,
}

// DefaultRules returns the extraction chain in priority order. Within a field the first match wins.
func DefaultRules(parser DateParser) []Rule {
	parseDate := func(text string, now time.Time) (string, bool) {
		d, ok := parser.Parse(text, now)
		if !ok {
			return "", false
		}
		return appointment.FormatDate(d), true
	}

	return []Rule{
		{Name: "name-cue", Field: appointment.FieldName, Confidence: High, Match: matchNameCue},
		{Name: "name-leading-words", Field: appointment.FieldName, Confidence: Low, Match: matchLeadingWords},
		{Name: "email", Field: appointment.FieldEmail, Confidence: High, Match: matchEmail},
		{Name: "service-cue", Field: appointment.FieldService, Confidence: High, Match: matchServiceCue},
		{Name: "service-vocabulary", Field: appointment.FieldService, Confidence: High, Match: matchServiceVocabulary},
		{
			Name: "date-numeric", Field: appointment.FieldDate, Confidence: High,
			Match: func(text string, now time.Time) (string, bool) {
				m := numericDatePattern.FindStringSubmatch(text)
				if m == nil {
					return "", false
				}
				return parseDate(m[1], now)
			},
		},
		{
			Name: "date-iso", Field: appointment.FieldDate, Confidence: High,
			Match: func(text string, _ time.Time) (string, bool) {
				m := isoDatePattern.FindStringSubmatch(text)
				if m == nil {
					return "", false
				}
				return m[1], true
			},
		},
		{
			Name: "date-cue", Field: appointment.FieldDate, Confidence: High,
			Match: func(text string, now time.Time) (string, bool) {
				m := dateCuePattern.FindStringSubmatch(text)
				if m == nil {
					return "", false
				}
				return parseDate(m[1], now)
			},
		},
		{
			Name: "date-vocabulary", Field: appointment.FieldDate, Confidence: High,
			Match: func(text string, now time.Time) (string, bool) {
				lower := strings.ToLower(text)
				for _, w := range DateWords {
					if strings.Contains(lower, w) {
						return parseDate(w, now)
					}
				}
				return "", false
			},
		},
	}
}

func matchNameCue(text string, _ time.Time) (string, bool) {
	m := nameCuePattern.FindStringSubmatch(text)
	if m == nil {
		return "", false
	}
	return normalizeName(m[1])
}

func matchLeadingWords(text string, _ time.Time) (string, bool) {
	loc := leadingWordsPattern.FindStringSubmatchIndex(text)
	if loc == nil {
		return "", false
	}
	// "alice@example.com" or "v2" is not a name.
	if end := loc[1]; end < len(text) && strings.ContainsRune("@._0123456789-", rune(text[end])) {
		return "", false
	}
	run := text[loc[2]:loc[3]]
	first := strings.ToLower(strings.Fields(run)[0])
	if fallbackSkips[first] || isService(first) {
		return "", false
	}
	return normalizeName(run)
}

func normalizeName(run string) (string, bool) {
	var kept []string
	for _, w := range strings.Fields(run) {
		if nameStops[strings.ToLower(w)] || isGerund(w) {
			break
		}
		kept = append(kept, w)
	}
	name := strings.Join(kept, " ")
	if len(name) < 2 {
		return "", false
	}
	// Casers keep state, so one per call.
	return cases.Title(language.English).String(name), true
}

// isGerund matches lowercase "-ing" words such as "calling" or "booking". Capitalised ones like "Sterling" stay.
func isGerund(word string) bool {
	return len(word) > 4 && strings.HasSuffix(word, "ing") && word == strings.ToLower(word)
}

func matchEmail(text string, _ time.Time) (string, bool) {
	m := emailPattern.FindString(text)
	return m, m != ""
}

func matchServiceCue(text string, _ time.Time) (string, bool) {
	m := serviceCuePattern.FindStringSubmatch(text)
	if m == nil {
		return "", false
	}
	service := strings.TrimSpace(articlePattern.ReplaceAllString(strings.TrimSpace(m[1]), ""))
	return service, service != ""
}

func matchServiceVocabulary(text string, _ time.Time) (string, bool) {
	lower := strings.ToLower(text)
	for _, s := range Services {
		if strings.Contains(lower, s) {
			return s, true
		}
	}
	return "", false
}

func isService(word string) bool {
	for _, s := range Services {
		if s == word {
			return true
		}
	}
	return false
}
