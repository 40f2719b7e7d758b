package api

import (
	"net/http"

	reqdto "appointment-assistant/internal/handler/dto/request"
	resdto "appointment-assistant/internal/handler/dto/response"
	"appointment-assistant/internal/handler/httperr"
	"appointment-assistant/internal/handler/middleware"
	"appointment-assistant/internal/usecase"

	"github.com/gin-gonic/gin"
)

type ChatHandler struct {
	assistant usecase.Assistant
}

func NewChatHandler(assistant usecase.Assistant) *ChatHandler {
	return &ChatHandler{assistant: assistant}
}

// @Summary Send a chat message
// @Description Runs one conversation turn for the caller's session
// @Tags chat
// @Accept json
// @Produce json
// @Param X-Session-ID header string false "Session ID"
// @Param request body reqdto.ChatRequest true "Chat message"
// @Success 200 {object} resdto.ChatResponse
// @Failure 400 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /chat [post]
func (h *ChatHandler) Chat(c *gin.Context) {
	var req reqdto.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithDetail(c, http.StatusBadRequest, httperr.CodeBadRequest, err, "Invalid request format", err.Error())
		return
	}

	reply, err := h.assistant.Chat(c.Request.Context(), middleware.GetSessionID(c), req.Message)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromChatReply(reply))
}

// @Summary Reset the booking draft
// @Description Clears the collected appointment information and returns the greeting
// @Tags chat
// @Produce json
// @Param X-Session-ID header string false "Session ID"
// @Success 200 {object} resdto.ResetResponse
// @Failure 500 {object} httperr.Response
// @Router /reset [post]
func (h *ChatHandler) Reset(c *gin.Context) {
	reply, err := h.assistant.Reset(c.Request.Context(), middleware.GetSessionID(c))
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.ResetResponse{
		Reply:           reply.Reply,
		AppointmentInfo: resdto.FromDraft(reply.AppointmentInfo),
	})
}

// @Summary Get session state
// @Description Returns the current draft and staff flag
// @Tags chat
// @Produce json
// @Param X-Session-ID header string false "Session ID"
// @Success 200 {object} resdto.SessionResponse
// @Failure 500 {object} httperr.Response
// @Router /session [get]
func (h *ChatHandler) Session(c *gin.Context) {
	s, err := h.assistant.Session(c.Request.Context(), middleware.GetSessionID(c))
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromSession(s))
}
