package handler

import (
	"context"
	"errors"
	"net/http"

	"voiceorder-server/internal/agent/processor"
	"voiceorder-server/internal/apierrors"
	"voiceorder-server/internal/observability"

	"github.com/gin-gonic/gin"
)

const invalidInputMessage = "Please pass a valid 'input' string in the request body."

type Asker interface {
	Ask(ctx context.Context, input string) (string, error)
}

type Handler struct {
	processor Asker
	logger    *observability.Logger
}

func New(processor Asker, logger *observability.Logger) Handler {
	return Handler{
		processor: processor,
		logger:    logger,
	}
}

type TalkRequest struct {
	Input string `json:"input"`
}

type TalkResponse struct {
	Response string `json:"response"`
}

// HandleTalk handles POST /api/agent/talk
func (h *Handler) HandleTalk(c *gin.Context) {
	var req TalkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "INVALID_INPUT", invalidInputMessage)
		return
	}

	reply, err := h.processor.Ask(c.Request.Context(), req.Input)
	if err != nil {
		if errors.Is(err, processor.ErrEmptyInput) {
			apierrors.BadRequest(c, "INVALID_INPUT", invalidInputMessage)
			return
		}
		apierrors.InternalError(c, err)
		return
	}

	c.JSON(http.StatusOK, TalkResponse{Response: reply})
}
