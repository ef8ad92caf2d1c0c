package usecase

import (
	"context"

	"github.com/bellj/connect-api-examples/internal/square"
)

// Ports over the external service, satisfied by *square.Client in production
// and by fakes in tests.

type OrdersAPI interface {
	CreateOrder(ctx context.Context, locationID string, req square.CreateOrderRequest) (*square.Order, error)
	BatchRetrieveOrders(ctx context.Context, locationID string, orderIDs []string) ([]square.Order, error)
	UpdateOrder(ctx context.Context, locationID, orderID string, req square.UpdateOrderRequest) (*square.Order, error)
}

type LocationsAPI interface {
	RetrieveLocation(ctx context.Context, locationID string) (*square.Location, error)
}

type PaymentsAPI interface {
	CreatePayment(ctx context.Context, req square.CreatePaymentRequest) (*square.Payment, error)
}

// LocationCache is optional; a nil cache means every read hits the API.
type LocationCache interface {
	Get(ctx context.Context, locationID string) (*square.Location, bool, error)
	Set(ctx context.Context, loc *square.Location) error
}

// EventPublisher is optional; publishing is best effort and never blocks
// the checkout flow on broker trouble.
type EventPublisher interface {
	Publish(ctx context.Context, ev Event) error
}
