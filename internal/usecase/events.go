package usecase

import (
	"context"

	"github.com/bellj/connect-api-examples/internal/logging"
)

// Checkout lifecycle events, published to the events topic.
const (
	EventOrderCreated     = "checkout.order_created"
	EventFulfillmentSet   = "checkout.fulfillment_set"
	EventPaymentCompleted = "checkout.payment_completed"
)

type Event struct {
	Type        string `json:"type"`
	OrderID     string `json:"orderId"`
	LocationID  string `json:"locationId"`
	PaymentID   string `json:"paymentId,omitempty"`
	AmountMinor int64  `json:"amountMinor,omitempty"`
	Currency    string `json:"currency,omitempty"`
}

// publish sends an event best-effort: a nil publisher is a no-op and broker
// failures are logged, never returned to the checkout flow.
func publish(ctx context.Context, p EventPublisher, ev Event) {
	if p == nil {
		return
	}
	if err := p.Publish(ctx, ev); err != nil {
		logging.FromCtx(ctx).Warn("event publish failed", "type", ev.Type, "order_id", ev.OrderID, "err", err)
	}
}
