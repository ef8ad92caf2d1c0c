package usecase

import (
	"context"

	"github.com/bellj/connect-api-examples/internal/square"
)

type PlaceOrderInput struct {
	CatalogObjectID string
	Quantity        string
	LocationID      string
}

type PlaceOrderOutput struct {
	OrderID    string
	LocationID string
}

// PlaceOrder creates a one-line-item order for the selected catalog item.
type PlaceOrder struct {
	orders OrdersAPI
	events EventPublisher
}

func NewPlaceOrder(orders OrdersAPI, events EventPublisher) *PlaceOrder {
	return &PlaceOrder{orders: orders, events: events}
}

func (uc *PlaceOrder) Execute(ctx context.Context, in PlaceOrderInput) (PlaceOrderOutput, error) {
	order, err := uc.orders.CreateOrder(ctx, in.LocationID, square.CreateOrderRequest{
		IdempotencyKey: square.NewIdempotencyKey(),
		Order: square.NewOrder{
			LineItems: []square.LineItem{
				{
					Quantity:        in.Quantity,
					CatalogObjectID: in.CatalogObjectID,
				},
			},
		},
	})
	if err != nil {
		return PlaceOrderOutput{}, err
	}

	publish(ctx, uc.events, Event{
		Type:       EventOrderCreated,
		OrderID:    order.ID,
		LocationID: in.LocationID,
	})

	return PlaceOrderOutput{OrderID: order.ID, LocationID: in.LocationID}, nil
}
