package processor

//go:generate go run go.uber.org/mock/mockgen@latest -source=processor.go -destination=mocks_test.go -package=processor

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"voiceorder-server/internal/observability"
	"voiceorder-server/internal/store"

	"github.com/google/uuid"
)

var (
	ErrNoItems       = errors.New("order has no items")
	ErrOrderNotFound = errors.New("order not found")
)

type OrderStore interface {
	CreateOrder(ctx context.Context, order store.Order) (store.Order, error)
	GetOrderByID(ctx context.Context, id string) (store.Order, error)
}

// Notifier is told about every order after it is stored.
type Notifier interface {
	OrderCreated(ctx context.Context, order store.Order)
}

type SMSSender interface {
	SendSMS(ctx context.Context, to, body string) (string, error)
}

type EmailSender interface {
	SendEmail(ctx context.Context, to, subject, htmlContent string) (string, error)
}

type EventPublisher interface {
	Publish(ctx context.Context, eventType, key string, data interface{}) error
}

type OrderProcessor struct {
	store    OrderStore
	notifier Notifier
	logger   *observability.Logger
	now      func() time.Time
}

func New(store OrderStore, notifier Notifier, logger *observability.Logger) *OrderProcessor {
	return &OrderProcessor{
		store:    store,
		notifier: notifier,
		logger:   logger,
		now:      time.Now,
	}
}

type OrderItemRequest struct {
	ItemName string   `json:"itemName"`
	Toppings []string `json:"toppings"`
	Category string   `json:"category"`
	Size     string   `json:"size"`
	Price    float64  `json:"price" binding:"gte=0"`
	Quantity int      `json:"quantity" binding:"gte=0"`
}

// SaveOrderRequest is the order as submitted by the client. Any id or total the
// client sends is ignored.
type SaveOrderRequest struct {
	CustomerName string             `json:"customerName"`
	PhoneNumber  string             `json:"phoneNumber"`
	Email        string             `json:"email"`
	Address      string             `json:"address"`
	Items        []OrderItemRequest `json:"items" binding:"dive"`
}

type SaveOrderResponse struct {
	Message    string  `json:"message"`
	OrderID    string  `json:"orderId"`
	TotalPrice float64 `json:"totalPrice"`
}

// TotalPrice sums price times quantity over the items, rounded to cents.
func TotalPrice(items []store.OrderItem) float64 {
	var total float64
	for _, item := range items {
		total += item.Price * float64(item.Quantity)
	}
	return math.Round(total*100) / 100
}

func (p *OrderProcessor) SaveOrder(ctx context.Context, req SaveOrderRequest) (SaveOrderResponse, error) {
	if len(req.Items) == 0 {
		return SaveOrderResponse{}, ErrNoItems
	}

	items := make([]store.OrderItem, len(req.Items))
	for i, item := range req.Items {
		items[i] = store.OrderItem{
			ItemName: item.ItemName,
			Toppings: item.Toppings,
			Category: item.Category,
			Size:     item.Size,
			Price:    item.Price,
			Quantity: item.Quantity,
		}
	}

	order := store.Order{
		ID:           uuid.New().String(),
		CustomerName: req.CustomerName,
		PhoneNumber:  req.PhoneNumber,
		Email:        req.Email,
		Address:      req.Address,
		Items:        items,
		TotalPrice:   TotalPrice(items),
		CreatedAt:    p.now().UTC(),
	}
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "order_id", Value: order.ID},
		observability.Field{Key: "item_count", Value: len(items)},
	)

	saved, err := p.store.CreateOrder(ctx, order)
	if err != nil {
		p.logger.Error(ctx, "failed to save order", err)
		return SaveOrderResponse{}, fmt.Errorf("failed to save order: %w", err)
	}
	p.logger.Info(ctx, "order saved")

	if p.notifier != nil {
		p.notifier.OrderCreated(ctx, saved)
	}

	return SaveOrderResponse{
		Message:    "Order saved successfully",
		OrderID:    saved.ID,
		TotalPrice: saved.TotalPrice,
	}, nil
}

func (p *OrderProcessor) GetOrder(ctx context.Context, id string) (store.Order, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "order_id", Value: id})

	order, err := p.store.GetOrderByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.Order{}, ErrOrderNotFound
		}
		p.logger.Error(ctx, "failed to get order", err)
		return store.Order{}, fmt.Errorf("failed to get order: %w", err)
	}
	return order, nil
}
