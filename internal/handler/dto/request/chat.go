package request

type ChatRequest struct {
	Message string `json:"message" binding:"required,max=2000"`
}

type StaffLoginRequest struct {
	Passcode string `json:"passcode" binding:"required"`
}

type CancelAppointmentRequest struct {
	Ticket string `json:"ticket" binding:"required"`
}
