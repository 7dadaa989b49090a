package handler

import (
	"context"
	"net/http"

	"voiceorder-server/internal/apierrors"
	"voiceorder-server/internal/observability"
	"voiceorder-server/internal/store"

	"github.com/gin-gonic/gin"
)

type MenuLister interface {
	ListMenu(ctx context.Context) ([]store.MenuItem, error)
}

type Handler struct {
	processor MenuLister
	logger    *observability.Logger
}

func New(processor MenuLister, logger *observability.Logger) Handler {
	return Handler{
		processor: processor,
		logger:    logger,
	}
}

// HandleListMenu handles GET /api/menu
func (h *Handler) HandleListMenu(c *gin.Context) {
	items, err := h.processor.ListMenu(c.Request.Context())
	if err != nil {
		apierrors.InternalError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}
