// Package extraction pulls booking fields out of free text with an ordered, deterministic rule chain.
package extraction

import (
	"time"

	"appointment-assistant/internal/domain/appointment"
)

type Change struct {
	Field appointment.Field
	Value string
}

type Result struct {
	Draft   appointment.Draft
	Changes []Change
	// Rejected is set when the turn named a date that is today or earlier. Draft is then the prior draft.
	Rejected     bool
	RejectedDate string
}

type Extractor struct {
	rules []Rule
}

func NewExtractor(rules []Rule) *Extractor {
	return &Extractor{rules: rules}
}

// Extract applies the rules to text on top of prior. A rejected date discards every field from the turn.
func (e *Extractor) Extract(text string, prior appointment.Draft, now time.Time) Result {
	next := prior

	for _, field := range appointment.Fields {
		for _, rule := range e.rules {
			if rule.Field != field {
				continue
			}
			value, ok := rule.Match(text, now)
			if !ok {
				continue
			}
			if field == appointment.FieldDate && !appointment.IsFutureDate(value, now) {
				return Result{Draft: prior, Rejected: true, RejectedDate: value}
			}
			if rule.Confidence == High || next.Get(field) == "" {
				next.Set(field, value)
			}
			break
		}
	}

	return Result{Draft: next, Changes: diff(prior, next)}
}

func diff(prior, next appointment.Draft) []Change {
	var changes []Change
	for _, f := range appointment.Fields {
		if v := next.Get(f); v != "" && v != prior.Get(f) {
			changes = append(changes, Change{Field: f, Value: v})
		}
	}
	return changes
}
