package response

import (
	"time"

	"appointment-assistant/internal/domain/appointment"
	"appointment-assistant/internal/usecase/commands"
	"appointment-assistant/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type AppointmentResponse struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Service      string    `json:"service"`
	Date         string    `json:"date"`
	TicketNumber string    `json:"ticketNumber"`
	Status       string    `json:"status"`
	Price        float64   `json:"price"`
	CreatedAt    time.Time `json:"createdAt"`
}

type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
	Count        int                   `json:"count"`
}

type IncomeResponse struct {
	Total   float64  `json:"total"`
	Count   int64    `json:"count"`
	Average *float64 `json:"average,omitempty"`
}

type CancelResponse struct {
	Ticket string `json:"ticket"`
	Name   string `json:"name"`
	Status string `json:"status"`
}

type StaffStatusResponse struct {
	Staff bool `json:"staff"`
}

func FromAppointmentViews(views []queries.AppointmentView) (*AppointmentListResponse, error) {
	items := make([]AppointmentResponse, 0, len(views))
	if err := copier.Copy(&items, &views); err != nil {
		return nil, err
	}
	return &AppointmentListResponse{Appointments: items, Count: len(items)}, nil
}

func FromIncomeReport(r *queries.IncomeReport) (*IncomeResponse, error) {
	var res IncomeResponse
	if err := copier.Copy(&res, r); err != nil {
		return nil, err
	}
	return &res, nil
}

func FromCancelResult(r *commands.CancelResult) *CancelResponse {
	return &CancelResponse{
		Ticket: r.Ticket,
		Name:   r.Name,
		Status: appointment.StatusCancel.String(),
	}
}
