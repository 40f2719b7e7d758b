package llm

import (
	"context"

	"appointment-assistant/internal/usecase/shared"
)

// TemplateResponder answers with the deterministic summary the booking flow produced.
type TemplateResponder struct{}

func NewTemplateResponder() *TemplateResponder {
	return &TemplateResponder{}
}

func (TemplateResponder) Respond(_ context.Context, p shared.Prompt) (string, error) {
	return p.Summary, nil
}
