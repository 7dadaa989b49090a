package api

import (
	"context"
	"net/http"
	"time"

	"voiceorder-server/internal/apierrors"

	agentHandler "voiceorder-server/internal/agent/handler"
	menuHandler "voiceorder-server/internal/menu/handler"
	orderHandler "voiceorder-server/internal/orders/handler"
	voiceCallHandler "voiceorder-server/internal/voicecall/handler"

	"github.com/gin-gonic/gin"
)

// HealthChecker reports whether a backing dependency is reachable.
type HealthChecker interface {
	Ping(ctx context.Context) error
}

const healthTimeout = 2 * time.Second

type API struct {
	router           *gin.RouterGroup
	store            HealthChecker
	voiceCallHandler voiceCallHandler.Handler
	menuHandler      menuHandler.Handler
	orderHandler     orderHandler.Handler
	agentHandler     agentHandler.Handler
}

func New(
	router *gin.RouterGroup,
	store HealthChecker,
	voiceCallHandler voiceCallHandler.Handler,
	menuHandler menuHandler.Handler,
	orderHandler orderHandler.Handler,
	agentHandler agentHandler.Handler,
) API {
	return API{
		router:           router,
		store:            store,
		voiceCallHandler: voiceCallHandler,
		menuHandler:      menuHandler,
		orderHandler:     orderHandler,
		agentHandler:     agentHandler,
	}
}

func (a *API) RegisterRoutes() {
	a.Health()
	apiGroup := a.router.Group("/api")
	{
		apiGroup.POST("/voice/events", a.voiceCallHandler.HandleCallEvents)

		apiGroup.GET("/menu", a.menuHandler.HandleListMenu)

		ordersGroup := apiGroup.Group("/orders")
		ordersGroup.POST("", a.orderHandler.HandleSaveOrder)
		ordersGroup.GET("/:id", a.orderHandler.HandleGetOrder)

		apiGroup.POST("/agent/talk", a.agentHandler.HandleTalk)
	}
}

func (a *API) Health() {
	a.router.GET("/health", func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), healthTimeout)
		defer cancel()
		if err := a.store.Ping(ctx); err != nil {
			apierrors.Unavailable(c, "document store", err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "ok"})
	})
}
