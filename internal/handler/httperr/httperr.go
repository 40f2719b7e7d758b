package httperr

import (
	"github.com/gin-gonic/gin"
)

// Code is a stable machine-readable error identifier for chat clients.
type Code string

const (
	CodeBadRequest      Code = "bad_request"
	CodeStaffOnly       Code = "staff_only"
	CodeInvalidPasscode Code = "invalid_passcode"
	CodeNoPasscode      Code = "passcode_required"
	CodeRateLimited     Code = "too_many_attempts"
	CodeNotStaff        Code = "not_staff"
	CodeTicketRequired  Code = "ticket_required"
	CodeNotFound        Code = "not_found"
	CodeInternal        Code = "internal"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Code    Code   `json:"code,omitempty"`
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

func NewResponse(status int, code Code, msg string) Response {
	resp := Response{Status: status}
	resp.Error.Code = code
	resp.Error.Message = msg
	return resp
}

// AbortWithError keeps err on the gin context so ErrorHandler can log the cause.
func AbortWithError(c *gin.Context, status int, code Code, err error, msg string) {
	AbortWithDetail(c, status, code, err, msg, nil)
}

func AbortWithDetail(c *gin.Context, status int, code Code, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := NewResponse(status, code, msg)
	resp.Detail = detail

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}
