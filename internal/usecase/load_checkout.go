package usecase

import (
	"context"
	"errors"

	"github.com/bellj/connect-api-examples/internal/logging"
	"github.com/bellj/connect-api-examples/internal/square"
)

// ErrOrderNotFound: batch-retrieve answered but didn't know the id. Pages
// must error on this instead of rendering blanks.
var ErrOrderNotFound = errors.New("order not found")

// CheckoutState is everything a checkout page needs: the authoritative
// order, its location, and the stage derived from the two.
type CheckoutState struct {
	Order    square.Order
	Location square.Location
	Stage    Stage
}

// LoadCheckout reconstructs checkout state from the external service. The
// flow keeps nothing server-side, so every page load starts here.
type LoadCheckout struct {
	orders OrdersAPI
	locs   LocationsAPI
	cache  LocationCache
}

func NewLoadCheckout(orders OrdersAPI, locs LocationsAPI, cache LocationCache) *LoadCheckout {
	return &LoadCheckout{orders: orders, locs: locs, cache: cache}
}

func (uc *LoadCheckout) Execute(ctx context.Context, orderID, locationID string) (*CheckoutState, error) {
	orders, err := uc.orders.BatchRetrieveOrders(ctx, locationID, []string{orderID})
	if err != nil {
		return nil, err
	}
	if len(orders) == 0 {
		return nil, ErrOrderNotFound
	}
	order := orders[0]

	loc, err := uc.location(ctx, locationID)
	if err != nil {
		return nil, err
	}

	return &CheckoutState{
		Order:    order,
		Location: *loc,
		Stage:    StageOf(&order),
	}, nil
}

// location reads through the optional cache. Locations are display-only in
// this flow, so a slightly stale one is fine.
func (uc *LoadCheckout) location(ctx context.Context, locationID string) (*square.Location, error) {
	if uc.cache != nil {
		if loc, ok, err := uc.cache.Get(ctx, locationID); err == nil && ok {
			return loc, nil
		}
	}

	loc, err := uc.locs.RetrieveLocation(ctx, locationID)
	if err != nil {
		return nil, err
	}

	if uc.cache != nil {
		if err := uc.cache.Set(ctx, loc); err != nil {
			logging.FromCtx(ctx).Warn("location cache write failed", "location_id", locationID, "err", err)
		}
	}
	return loc, nil
}
