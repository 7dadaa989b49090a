package handler

//go:generate go run go.uber.org/mock/mockgen@latest -source=handler.go -destination=mocks_test.go -package=handler

import (
	"context"
	"io"
	"net/http"

	"voiceorder-server/internal/apierrors"
	"voiceorder-server/internal/observability"
	"voiceorder-server/internal/voicecall/events"
	"voiceorder-server/internal/voicecall/processor"

	"github.com/gin-gonic/gin"
)

const maxDeliveryBytes = 1 << 20

type EventProcessor interface {
	ProcessEvents(ctx context.Context, evts []events.Event) processor.Result
}

type Handler struct {
	processor EventProcessor
	logger    *observability.Logger
}

func New(processor EventProcessor, logger *observability.Logger) Handler {
	return Handler{
		processor: processor,
		logger:    logger,
	}
}

type validationResponse struct {
	ValidationResponse string `json:"validationResponse"`
}

// HandleCallEvents handles POST /api/voice/events
func (h *Handler) HandleCallEvents(c *gin.Context) {
	ctx := c.Request.Context()

	body, err := io.ReadAll(http.MaxBytesReader(c.Writer, c.Request.Body, maxDeliveryBytes))
	if err != nil {
		h.logger.WarnWithError(ctx, "failed to read event delivery", err)
		apierrors.BadRequest(c, "INVALID_DELIVERY", "Unable to read request body")
		return
	}

	delivery, err := events.Decode(body)
	if err != nil {
		h.logger.WarnWithError(ctx, "failed to decode event delivery", err)
		apierrors.BadRequest(c, "INVALID_DELIVERY", "Request body is not a valid event delivery")
		return
	}

	if delivery.IsValidation() {
		h.logger.Info(ctx, "answering event subscription validation")
		c.JSON(http.StatusOK, validationResponse{ValidationResponse: delivery.ValidationCode})
		return
	}

	res := h.processor.ProcessEvents(ctx, delivery.Events)
	h.logger.Metrics(ctx,
		observability.MetricField{Key: "events_received", Value: len(delivery.Events)},
		observability.MetricField{Key: "events_handled", Value: res.Handled},
		observability.MetricField{Key: "events_skipped", Value: res.Skipped},
		observability.MetricField{Key: "events_failed", Value: res.Failed},
	)
	c.Status(http.StatusOK)
}
