package usecase

import (
	"context"

	"github.com/bellj/connect-api-examples/internal/square"
)

type SetFulfillmentInput struct {
	OrderID         string
	LocationID      string
	FulfillmentType string // e.g. "PICKUP"
	RecipientName   string
	RecipientEmail  string
	RecipientPhone  string
	PickupAt        string // RFC 3339, as posted by the form
}

type SetFulfillmentOutput struct {
	OrderID    string
	LocationID string
}

// SetFulfillment records (or re-records) how the order will be picked up.
// The order is re-fetched first: the update needs its current version, and
// an existing fulfillment's uid so the service replaces it in place instead
// of appending a second one.
type SetFulfillment struct {
	orders OrdersAPI
	events EventPublisher
}

func NewSetFulfillment(orders OrdersAPI, events EventPublisher) *SetFulfillment {
	return &SetFulfillment{orders: orders, events: events}
}

func (uc *SetFulfillment) Execute(ctx context.Context, in SetFulfillmentInput) (SetFulfillmentOutput, error) {
	orders, err := uc.orders.BatchRetrieveOrders(ctx, in.LocationID, []string{in.OrderID})
	if err != nil {
		return SetFulfillmentOutput{}, err
	}
	if len(orders) == 0 {
		return SetFulfillmentOutput{}, ErrOrderNotFound
	}
	order := orders[0]

	fulfillment := square.Fulfillment{
		Type:  in.FulfillmentType,
		State: "PROPOSED",
		PickupDetails: &square.PickupDetails{
			Recipient: &square.FulfillmentRecipient{
				DisplayName:  in.RecipientName,
				EmailAddress: in.RecipientEmail,
				PhoneNumber:  in.RecipientPhone,
			},
			PickupAt: in.PickupAt,
		},
	}
	if len(order.Fulfillments) > 0 {
		// keep the uid so this is a replace, not an append
		fulfillment.UID = order.Fulfillments[0].UID
	}

	// The service rejects this when order.Version went stale between the
	// fetch above and now; the conflict passes through to the caller.
	updated, err := uc.orders.UpdateOrder(ctx, order.LocationID, order.ID, square.UpdateOrderRequest{
		Order: square.OrderUpdate{
			Fulfillments:   []square.Fulfillment{fulfillment},
			Version:        order.Version,
			IdempotencyKey: square.NewIdempotencyKey(),
		},
	})
	if err != nil {
		return SetFulfillmentOutput{}, err
	}

	publish(ctx, uc.events, Event{
		Type:       EventFulfillmentSet,
		OrderID:    updated.ID,
		LocationID: updated.LocationID,
	})

	return SetFulfillmentOutput{OrderID: updated.ID, LocationID: updated.LocationID}, nil
}
