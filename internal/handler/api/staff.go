package api

import (
	"log/slog"
	"net/http"

	reqdto "appointment-assistant/internal/handler/dto/request"
	resdto "appointment-assistant/internal/handler/dto/response"
	"appointment-assistant/internal/handler/httperr"
	"appointment-assistant/internal/handler/middleware"
	"appointment-assistant/internal/usecase"

	"github.com/gin-gonic/gin"
)

type StaffHandler struct {
	assistant usecase.Assistant
}

func NewStaffHandler(assistant usecase.Assistant) *StaffHandler {
	return &StaffHandler{assistant: assistant}
}

// @Summary Staff login
// @Description Verifies the staff passcode and switches the session to staff mode
// @Tags staff
// @Accept json
// @Produce json
// @Param request body reqdto.StaffLoginRequest true "Passcode"
// @Success 200 {object} resdto.StaffStatusResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 429 {object} httperr.Response
// @Router /staff/login [post]
func (h *StaffHandler) Login(c *gin.Context) {
	var req reqdto.StaffLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithDetail(c, http.StatusBadRequest, httperr.CodeBadRequest, err, "Invalid request format", err.Error())
		return
	}

	if err := h.assistant.StaffLogin(c.Request.Context(), middleware.GetSessionID(c), req.Passcode); err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.StaffStatusResponse{Staff: true})
}

// @Summary Staff logout
// @Description Leaves staff mode and clears the draft
// @Tags staff
// @Produce json
// @Success 200 {object} resdto.StaffStatusResponse
// @Failure 409 {object} httperr.Response
// @Router /staff/logout [post]
func (h *StaffHandler) Logout(c *gin.Context) {
	if err := h.assistant.StaffLogout(c.Request.Context(), middleware.GetSessionID(c)); err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.StaffStatusResponse{Staff: false})
}

// @Summary Search appointments
// @Description Free-text appointment lookup, e.g. "pending haircut appointments for tomorrow"
// @Tags staff
// @Produce json
// @Param q query string false "Query text"
// @Success 200 {object} resdto.AppointmentListResponse
// @Failure 403 {object} httperr.Response
// @Router /staff/appointments [get]
func (h *StaffHandler) Appointments(c *gin.Context) {
	views, err := h.assistant.SearchAppointments(c.Request.Context(), middleware.GetSessionID(c), c.Query("q"))
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}

	res, err := resdto.FromAppointmentViews(views)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, httperr.CodeInternal, err, "Internal server error")
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Cancel an appointment
// @Description Sets the appointment status to cancel
// @Tags staff
// @Accept json
// @Produce json
// @Param request body reqdto.CancelAppointmentRequest true "Ticket"
// @Success 200 {object} resdto.CancelResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /staff/appointments/cancel [post]
func (h *StaffHandler) Cancel(c *gin.Context) {
	var req reqdto.CancelAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithDetail(c, http.StatusBadRequest, httperr.CodeBadRequest, err, "Invalid request format", err.Error())
		return
	}

	res, err := h.assistant.CancelAppointment(c.Request.Context(), middleware.GetSessionID(c), req.Ticket)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	slog.Info("Appointment cancelled", "ticket", res.Ticket, "session_id", middleware.GetSessionID(c))
	c.JSON(http.StatusOK, resdto.FromCancelResult(res))
}

// @Summary Income report
// @Description Totals over completed appointments, e.g. "between 2030-01-01 and 2030-01-31"
// @Tags staff
// @Produce json
// @Param q query string false "Query text"
// @Success 200 {object} resdto.IncomeResponse
// @Failure 403 {object} httperr.Response
// @Router /staff/income [get]
func (h *StaffHandler) Income(c *gin.Context) {
	report, err := h.assistant.Income(c.Request.Context(), middleware.GetSessionID(c), c.Query("q"))
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}

	res, err := resdto.FromIncomeReport(report)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, httperr.CodeInternal, err, "Internal server error")
		return
	}
	c.JSON(http.StatusOK, res)
}
