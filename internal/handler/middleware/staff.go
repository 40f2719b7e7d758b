package middleware

import (
	"log/slog"
	"net/http"

	"appointment-assistant/internal/handler/httperr"
	"appointment-assistant/internal/pkg/errs"
	"appointment-assistant/internal/usecase"

	"github.com/gin-gonic/gin"
)

type StaffMiddleware struct {
	assistant usecase.Assistant
}

func NewStaffMiddleware(assistant usecase.Assistant) *StaffMiddleware {
	return &StaffMiddleware{
		assistant: assistant,
	}
}

// RequireStaff must run after SessionMiddleware.
func (m *StaffMiddleware) RequireStaff() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := GetSessionID(c)
		if id == "" {
			httperr.AbortWithError(c, http.StatusInternalServerError, httperr.CodeInternal, errs.New("session middleware not installed"), "Internal server error")
			return
		}

		s, err := m.assistant.Session(c.Request.Context(), id)
		if err != nil {
			slog.Warn("Session lookup failed in staff middleware", "error", err.Error())
			httperr.AbortWithError(c, http.StatusInternalServerError, httperr.CodeInternal, err, "Internal server error")
			return
		}

		if !s.Staff {
			httperr.AbortWithError(c, http.StatusForbidden, httperr.CodeStaffOnly, errs.ErrStaffOnly, "Staff access required")
			return
		}

		c.Next()
	}
}
