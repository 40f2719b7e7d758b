package llm

import (
	"strings"

	"appointment-assistant/internal/domain/appointment"
	"appointment-assistant/internal/usecase/shared"
)

const systemInstruction = `You are a friendly appointment booking assistant for a salon and clinic.
You help customers book by collecting four details: name, email, service and a future date.
The booking system has already processed the customer's latest message. The STATUS section tells you
what it understood and what is still missing. Never invent tickets, dates or prices and never claim a
booking was made unless STATUS says so. Ask for missing details one or two at a time.
Reply in at most three short sentences.`

// buildPrompt renders the conversation for a single-shot generation call.
func buildPrompt(p shared.Prompt) string {
	var b strings.Builder

	if len(p.History) > 0 {
		b.WriteString("HISTORY:\n")
		for _, t := range p.History {
			b.WriteString(string(t.Role))
			b.WriteString(": ")
			b.WriteString(t.Text)
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	b.WriteString("COLLECTED:\n")
	for _, f := range appointment.Fields {
		v := p.Draft.Get(f)
		if v == "" {
			v = "(missing)"
		}
		b.WriteString("- " + f.Label() + ": " + v + "\n")
	}

	b.WriteString("\nSTATUS:\n")
	b.WriteString(p.Summary)
	b.WriteString("\n\nMESSAGE:\n")
	b.WriteString(p.Message)
	b.WriteString("\n\nREPLY:")
	return b.String()
}
