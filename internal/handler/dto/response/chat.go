package response

import (
	"appointment-assistant/internal/domain/appointment"
	"appointment-assistant/internal/usecase"
	"appointment-assistant/internal/usecase/shared"
)

type AppointmentInfo struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Service string `json:"service"`
	Date    string `json:"date"`
}

type ChatResponse struct {
	Reply           string          `json:"reply"`
	IsComplete      bool            `json:"isComplete"`
	AppointmentInfo AppointmentInfo `json:"appointmentInfo"`
	Staff           bool            `json:"staff"`
	Ticket          string          `json:"ticket,omitempty"`
}

type ResetResponse struct {
	Reply           string          `json:"reply"`
	AppointmentInfo AppointmentInfo `json:"appointmentInfo"`
}

type SessionResponse struct {
	SessionID       string          `json:"sessionId"`
	AppointmentInfo AppointmentInfo `json:"appointmentInfo"`
	Staff           bool            `json:"staff"`
	State           string          `json:"state"`
	Missing         []string        `json:"missing"`
}

func FromDraft(d appointment.Draft) AppointmentInfo {
	return AppointmentInfo{
		Name:    d.Name,
		Email:   d.Email,
		Service: d.Service,
		Date:    d.Date,
	}
}

func FromChatReply(r *usecase.ChatReply) *ChatResponse {
	return &ChatResponse{
		Reply:           r.Reply,
		IsComplete:      r.IsComplete,
		AppointmentInfo: FromDraft(r.AppointmentInfo),
		Staff:           r.Staff,
		Ticket:          r.Ticket,
	}
}

func FromSession(s *shared.Session) *SessionResponse {
	missing := make([]string, 0, len(appointment.Fields))
	for _, f := range s.Draft.Missing() {
		missing = append(missing, string(f))
	}
	return &SessionResponse{
		SessionID:       s.ID,
		AppointmentInfo: FromDraft(s.Draft),
		Staff:           s.Staff,
		State:           string(s.Draft.State()),
		Missing:         missing,
	}
}
