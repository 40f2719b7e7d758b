package shared

import (
	"time"

	"appointment-assistant/internal/domain/appointment"
)

type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

type Turn struct {
	Role Role   `json:"role"`
	Text string `json:"text"`
}

// Session is the per-conversation state: one draft and one staff flag per session id.
type Session struct {
	ID        string            `json:"id"`
	Draft     appointment.Draft `json:"draft"`
	Staff     bool              `json:"staff"`
	History   []Turn            `json:"history,omitempty"`
	UpdatedAt time.Time         `json:"updated_at"`
}

func NewSession(id string, now time.Time) *Session {
	return &Session{ID: id, UpdatedAt: now}
}

// AppendHistory keeps at most limit turns, dropping the oldest.
func (s *Session) AppendHistory(role Role, text string, limit int) {
	s.History = append(s.History, Turn{Role: role, Text: text})
	if limit > 0 && len(s.History) > limit {
		s.History = append([]Turn(nil), s.History[len(s.History)-limit:]...)
	}
}

func (s *Session) ResetDraft() {
	s.Draft = appointment.Draft{}
}
