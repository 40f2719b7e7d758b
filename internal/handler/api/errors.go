package api

import (
	"net/http"

	"appointment-assistant/internal/handler/httperr"
	"appointment-assistant/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

// abortWithUsecaseError maps usecase sentinels to statuses. Unknown errors become 500.
func abortWithUsecaseError(c *gin.Context, err error) {
	switch {
	case errs.Is(err, errs.ErrStaffOnly):
		httperr.AbortWithError(c, http.StatusForbidden, httperr.CodeStaffOnly, err, "Staff access required")
	case errs.Is(err, errs.ErrInvalidPasscode):
		httperr.AbortWithError(c, http.StatusUnauthorized, httperr.CodeInvalidPasscode, err, "Invalid passcode")
	case errs.Is(err, errs.ErrNoPasscode):
		httperr.AbortWithError(c, http.StatusBadRequest, httperr.CodeNoPasscode, err, "Passcode required")
	case errs.Is(err, errs.ErrTooManyAttempts):
		httperr.AbortWithError(c, http.StatusTooManyRequests, httperr.CodeRateLimited, err, "Too many passcode attempts")
	case errs.Is(err, errs.ErrNotStaff):
		httperr.AbortWithError(c, http.StatusConflict, httperr.CodeNotStaff, err, "Not in staff mode")
	case errs.Is(err, errs.ErrTicketRequired):
		httperr.AbortWithError(c, http.StatusBadRequest, httperr.CodeTicketRequired, err, "Valid ticket number required")
	case errs.Is(err, errs.ErrAppointmentNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, httperr.CodeNotFound, err, "Appointment not found")
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, httperr.CodeInternal, err, "Internal server error")
	}
}
