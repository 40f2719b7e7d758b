package queries

import (
	"regexp"
	"strings"
	"time"

	"appointment-assistant/internal/domain/appointment"
	"appointment-assistant/internal/domain/extraction"
)

var (
	nameFilterPattern    = regexp.MustCompile(`(?i)\bname\s*(?:is\b)?\s*([A-Za-z\s]+)`)
	forNamePattern       = regexp.MustCompile(`\bfor\s+([A-Z][a-z]+(?:\s+[A-Z][a-z]+)*)`)
	emailFilterPattern   = regexp.MustCompile(`\b[\w.-]+@[\w.-]+\.\w+\b`)
	serviceFilterPattern = regexp.MustCompile(`(?i)\b(haircut|manicure|pedicure|massage|facial|consultation|checkup|cleaning)\b`)
	dateFilterPattern    = regexp.MustCompile(`\b(\d{4}-\d{2}-\d{2}|\d{1,2}[/-]\d{1,2}[/-]\d{2,4})\b`)
	relativeDatePattern  = regexp.MustCompile(`(?i)\b(today|tomorrow|yesterday|next week)\b`)
	ticketFilterPattern  = regexp.MustCompile(`(?i)\bAPPT-\d+\b`)

	statusBuckets = []struct {
		pattern *regexp.Regexp
		status  appointment.Status
	}{
		{regexp.MustCompile(`(?i)\b(?:done|completed|finish|ended)\b`), appointment.StatusDone},
		{regexp.MustCompile(`(?i)\b(?:pending|upcoming|scheduled|future)\b`), appointment.StatusPending},
		{regexp.MustCompile(`(?i)\b(?:cancel|cancelled|canceled)\b`), appointment.StatusCancel},
	}

	incomeDatePattern    = regexp.MustCompile(`(?i)\b(?:date|on|for)\s+(.+?)(?:,|\.|$)`)
	incomeServicePattern = regexp.MustCompile(`(?i)\b(?:service|type)\s+(.+?)(?:,|\.|$)`)
	incomeRangePattern   = regexp.MustCompile(`(?i)\bbetween\s+(.+?)\s+and\s+(.+?)(?:,|\.|$)`)
)

// nameFilterStops end a name filter: "name John and service haircut" filters on "John".
var nameFilterStops = map[string]bool{
	"and": true, "on": true, "for": true, "with": true, "status": true, "service": true,
	"email": true, "date": true, "ticket": true, "appointments": true, "appointment": true,
}

type FilterParser struct {
	dates extraction.DateParser
}

func NewFilterParser(dates extraction.DateParser) *FilterParser {
	return &FilterParser{dates: dates}
}

// ParseSearch turns a staff lookup request into a conjunctive filter.
// "appointment" is the command noun here and never a service filter.
func (p *FilterParser) ParseSearch(text string, now time.Time) appointment.Filter {
	var f appointment.Filter

	if m := nameFilterPattern.FindStringSubmatch(text); m != nil {
		f.NameLike = cutAtStops(m[1])
	} else if m := forNamePattern.FindStringSubmatch(text); m != nil && !relativeDatePattern.MatchString(m[1]) {
		f.NameLike = cutAtStops(m[1])
	}

	f.EmailLike = emailFilterPattern.FindString(text)

	if m := serviceFilterPattern.FindStringSubmatch(text); m != nil {
		f.ServiceLike = strings.ToLower(m[1])
	}

	if m := dateFilterPattern.FindStringSubmatch(text); m != nil {
		if d, ok := p.dates.Parse(m[1], now); ok {
			f.Date = appointment.FormatDate(d)
		}
	} else if m := relativeDatePattern.FindStringSubmatch(text); m != nil {
		if d, ok := p.dates.Parse(m[1], now); ok {
			f.Date = appointment.FormatDate(d)
		}
	}

	for _, b := range statusBuckets {
		if b.pattern.MatchString(text) {
			f.Status = b.status
			break
		}
	}

	f.Ticket = strings.ToUpper(ticketFilterPattern.FindString(text))
	return f
}

// ParseIncome restricts to completed appointments. A "between X and Y" range replaces date and service filters.
func (p *FilterParser) ParseIncome(text string, now time.Time) appointment.Filter {
	f := appointment.Filter{Status: appointment.StatusDone}

	if m := incomeDatePattern.FindStringSubmatch(text); m != nil {
		if d, ok := p.dates.Parse(m[1], now); ok {
			f.Date = appointment.FormatDate(d)
		}
	}

	if m := incomeServicePattern.FindStringSubmatch(text); m != nil {
		f.ServiceLike = strings.TrimSpace(m[1])
	}

	if m := incomeRangePattern.FindStringSubmatch(text); m != nil {
		from, okFrom := p.dates.Parse(m[1], now)
		to, okTo := p.dates.Parse(m[2], now)
		if okFrom && okTo {
			f = appointment.Filter{
				Status:   appointment.StatusDone,
				DateFrom: appointment.FormatDate(from),
				DateTo:   appointment.FormatDate(to),
			}
		}
	}

	return f
}

func cutAtStops(run string) string {
	var kept []string
	for _, w := range strings.Fields(run) {
		if nameFilterStops[strings.ToLower(w)] {
			break
		}
		kept = append(kept, w)
	}
	return strings.Join(kept, " ")
}
