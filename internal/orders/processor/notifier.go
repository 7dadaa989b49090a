package processor

import (
	"context"
	"fmt"
	"html"
	"strings"
	"time"

	"voiceorder-server/internal/observability"
	"voiceorder-server/internal/store"
)

const EventOrderCreated = "order.created"

// ConfirmationNotifier sends order confirmations over whichever channels are
// configured. Nil senders are skipped and failures are only logged.
type ConfirmationNotifier struct {
	sms     SMSSender
	email   EmailSender
	events  EventPublisher
	timeout time.Duration
	logger  *observability.Logger
}

func NewConfirmationNotifier(sms SMSSender, email EmailSender, events EventPublisher, timeout time.Duration, logger *observability.Logger) *ConfirmationNotifier {
	return &ConfirmationNotifier{
		sms:     sms,
		email:   email,
		events:  events,
		timeout: timeout,
		logger:  logger,
	}
}

func (n *ConfirmationNotifier) OrderCreated(ctx context.Context, order store.Order) {
	ctx = context.WithoutCancel(ctx)

	if n.sms != nil && order.PhoneNumber != "" {
		sctx, cancel := n.bounded(ctx)
		if _, err := n.sms.SendSMS(sctx, order.PhoneNumber, smsBody(order)); err != nil {
			n.logger.WarnWithError(ctx, "failed to send order sms", err)
		}
		cancel()
	}

	if n.email != nil && order.Email != "" {
		sctx, cancel := n.bounded(ctx)
		subject := fmt.Sprintf("Your order %s", shortID(order.ID))
		if _, err := n.email.SendEmail(sctx, order.Email, subject, emailBody(order)); err != nil {
			n.logger.WarnWithError(ctx, "failed to send order email", err)
		}
		cancel()
	}

	if n.events != nil {
		sctx, cancel := n.bounded(ctx)
		if err := n.events.Publish(sctx, EventOrderCreated, order.ID, order); err != nil {
			n.logger.WarnWithError(ctx, "failed to publish order event", err)
		}
		cancel()
	}
}

func (n *ConfirmationNotifier) bounded(ctx context.Context) (context.Context, context.CancelFunc) {
	if n.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, n.timeout)
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func smsBody(order store.Order) string {
	name := order.CustomerName
	if name == "" {
		name = "there"
	}
	return fmt.Sprintf("Hi %s, we received your order %s. Total: $%.2f. Thank you!", name, shortID(order.ID), order.TotalPrice)
}

func emailBody(order store.Order) string {
	var b strings.Builder
	b.WriteString("<h2>Thanks for your order")
	if order.CustomerName != "" {
		b.WriteString(", " + html.EscapeString(order.CustomerName))
	}
	b.WriteString("!</h2><ul>")
	for _, item := range order.Items {
		fmt.Fprintf(&b, "<li>%d x %s", item.Quantity, html.EscapeString(item.ItemName))
		if item.Size != "" {
			fmt.Fprintf(&b, " (%s)", html.EscapeString(item.Size))
		}
		if len(item.Toppings) > 0 {
			fmt.Fprintf(&b, " with %s", html.EscapeString(strings.Join(item.Toppings, ", ")))
		}
		fmt.Fprintf(&b, " - $%.2f</li>", item.Price*float64(item.Quantity))
	}
	fmt.Fprintf(&b, "</ul><p><strong>Total: $%.2f</strong></p>", order.TotalPrice)
	if order.Address != "" {
		fmt.Fprintf(&b, "<p>Delivering to %s</p>", html.EscapeString(order.Address))
	}
	return b.String()
}
