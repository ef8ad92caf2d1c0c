package usecase_test

import (
	"context"
	"fmt"
	"net/http"

	"github.com/bellj/connect-api-examples/internal/square"
	"github.com/bellj/connect-api-examples/internal/usecase"
)

// fakeService mimics the external service's behavior closely enough for the
// flow's contracts: it stores orders, bumps versions on update, assigns
// fulfillment uids, and rejects stale-version updates.
type fakeService struct {
	orders        map[string]*square.Order
	payments      []square.CreatePaymentRequest
	orderKeys     []string
	updateKeys    []string
	location      square.Location
	locationCalls int
	nextOrder     int
	nextUID       int
	failUpdate    error
}

func newFakeService() *fakeService {
	return &fakeService{
		orders: map[string]*square.Order{},
		location: square.Location{
			ID:           "LOC1",
			BusinessName: "Coffee & Toffee",
		},
	}
}

func (f *fakeService) CreateOrder(_ context.Context, locationID string, req square.CreateOrderRequest) (*square.Order, error) {
	f.orderKeys = append(f.orderKeys, req.IdempotencyKey)
	f.nextOrder++
	order := &square.Order{
		ID:         fmt.Sprintf("ORDER-%d", f.nextOrder),
		LocationID: locationID,
		State:      "OPEN",
		Version:    1,
		LineItems:  req.Order.LineItems,
		TotalMoney: &square.Money{Amount: 500, Currency: "USD"},
		CreatedAt:  "2026-08-28T12:00:00Z",
	}
	f.orders[order.ID] = order
	cp := *order
	return &cp, nil
}

func (f *fakeService) BatchRetrieveOrders(_ context.Context, _ string, orderIDs []string) ([]square.Order, error) {
	var out []square.Order
	for _, id := range orderIDs {
		if o, ok := f.orders[id]; ok {
			out = append(out, *o)
		}
	}
	return out, nil
}

func (f *fakeService) UpdateOrder(_ context.Context, _, orderID string, req square.UpdateOrderRequest) (*square.Order, error) {
	if f.failUpdate != nil {
		return nil, f.failUpdate
	}
	order, ok := f.orders[orderID]
	if !ok {
		return nil, &square.APIError{StatusCode: http.StatusNotFound}
	}
	if req.Order.Version != order.Version {
		return nil, &square.APIError{
			StatusCode: http.StatusConflict,
			Errors:     []square.ErrorDetail{{Category: "INVALID_REQUEST_ERROR", Code: "VERSION_MISMATCH"}},
		}
	}
	f.updateKeys = append(f.updateKeys, req.Order.IdempotencyKey)

	fulfillments := make([]square.Fulfillment, len(req.Order.Fulfillments))
	copy(fulfillments, req.Order.Fulfillments)
	for i := range fulfillments {
		if fulfillments[i].UID == "" {
			f.nextUID++
			fulfillments[i].UID = fmt.Sprintf("FUL-%d", f.nextUID)
		}
	}
	order.Fulfillments = fulfillments
	order.Version++
	cp := *order
	return &cp, nil
}

func (f *fakeService) RetrieveLocation(_ context.Context, _ string) (*square.Location, error) {
	f.locationCalls++
	cp := f.location
	return &cp, nil
}

func (f *fakeService) CreatePayment(_ context.Context, req square.CreatePaymentRequest) (*square.Payment, error) {
	f.payments = append(f.payments, req)
	order := f.orders[req.OrderID]
	if order != nil {
		order.Tenders = append(order.Tenders, square.Tender{
			ID:          fmt.Sprintf("TENDER-%d", len(f.payments)),
			Type:        "CARD",
			AmountMoney: &req.AmountMoney,
		})
	}
	return &square.Payment{
		ID:          fmt.Sprintf("PAY-%d", len(f.payments)),
		Status:      "COMPLETED",
		OrderID:     req.OrderID,
		AmountMoney: &req.AmountMoney,
	}, nil
}

type fakeEvents struct {
	published []usecase.Event
	err       error
}

func (f *fakeEvents) Publish(_ context.Context, ev usecase.Event) error {
	if f.err != nil {
		return f.err
	}
	f.published = append(f.published, ev)
	return nil
}

type fakeCache struct {
	entries map[string]*square.Location
	hits    int
	sets    int
}

func newFakeCache() *fakeCache {
	return &fakeCache{entries: map[string]*square.Location{}}
}

func (f *fakeCache) Get(_ context.Context, locationID string) (*square.Location, bool, error) {
	if loc, ok := f.entries[locationID]; ok {
		f.hits++
		return loc, true, nil
	}
	return nil, false, nil
}

func (f *fakeCache) Set(_ context.Context, loc *square.Location) error {
	f.sets++
	f.entries[loc.ID] = loc
	return nil
}
