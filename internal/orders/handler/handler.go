package handler

//go:generate go run go.uber.org/mock/mockgen@latest -source=handler.go -destination=mocks_test.go -package=handler

import (
	"context"
	"errors"
	"net/http"

	"voiceorder-server/internal/apierrors"
	"voiceorder-server/internal/observability"
	"voiceorder-server/internal/orders/processor"
	"voiceorder-server/internal/store"

	"github.com/gin-gonic/gin"
)

type OrderProcessor interface {
	SaveOrder(ctx context.Context, req processor.SaveOrderRequest) (processor.SaveOrderResponse, error)
	GetOrder(ctx context.Context, id string) (store.Order, error)
}

type Handler struct {
	processor OrderProcessor
	logger    *observability.Logger
}

func New(processor OrderProcessor, logger *observability.Logger) Handler {
	return Handler{
		processor: processor,
		logger:    logger,
	}
}

// HandleSaveOrder handles POST /api/orders
func (h *Handler) HandleSaveOrder(c *gin.Context) {
	ctx := c.Request.Context()

	var req processor.SaveOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.ValidationError(c, err)
		return
	}

	resp, err := h.processor.SaveOrder(ctx, req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// HandleGetOrder handles GET /api/orders/:id
func (h *Handler) HandleGetOrder(c *gin.Context) {
	ctx := c.Request.Context()

	order, err := h.processor.GetOrder(ctx, c.Param("id"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, order)
}

func (h *Handler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, processor.ErrNoItems):
		apierrors.BadRequest(c, "INVALID_ORDER", "Invalid order format or missing items.")
	case errors.Is(err, processor.ErrOrderNotFound):
		apierrors.NotFound(c, "Order not found")
	default:
		apierrors.InternalError(c, err)
	}
}
