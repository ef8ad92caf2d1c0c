package square

import (
	"context"
	"net/http"
	"net/url"
)

type CreateOrderRequest struct {
	IdempotencyKey string   `json:"idempotency_key"`
	Order          NewOrder `json:"order"`
}

type NewOrder struct {
	LineItems []LineItem `json:"line_items"`
}

type UpdateOrderRequest struct {
	Order OrderUpdate `json:"order"`
}

// OrderUpdate carries the sparse update shape: the replacement fulfillment
// list, the version the caller read (optimistic concurrency) and a fresh
// idempotency key.
type OrderUpdate struct {
	Fulfillments   []Fulfillment `json:"fulfillments"`
	Version        int64         `json:"version"`
	IdempotencyKey string        `json:"idempotency_key"`
}

// CreateOrder creates an order under a location.
func (c *Client) CreateOrder(ctx context.Context, locationID string, req CreateOrderRequest) (*Order, error) {
	var resp struct {
		Order *Order `json:"order"`
	}
	path := "/v2/locations/" + url.PathEscape(locationID) + "/orders"
	if err := c.do(ctx, "create_order", http.MethodPost, path, req, &resp); err != nil {
		return nil, err
	}
	return resp.Order, nil
}

// BatchRetrieveOrders fetches orders by id. The checkout flow always asks
// for a single id; an id the service doesn't know is simply absent from the
// result, not an error.
func (c *Client) BatchRetrieveOrders(ctx context.Context, locationID string, orderIDs []string) ([]Order, error) {
	req := struct {
		OrderIDs []string `json:"order_ids"`
	}{OrderIDs: orderIDs}

	var resp struct {
		Orders []Order `json:"orders"`
	}
	path := "/v2/locations/" + url.PathEscape(locationID) + "/orders/batch-retrieve"
	if err := c.do(ctx, "batch_retrieve_orders", http.MethodPost, path, req, &resp); err != nil {
		return nil, err
	}
	return resp.Orders, nil
}

// UpdateOrder applies a sparse update. The service rejects the call when
// req.Order.Version is stale; that rejection surfaces as *APIError.
func (c *Client) UpdateOrder(ctx context.Context, locationID, orderID string, req UpdateOrderRequest) (*Order, error) {
	var resp struct {
		Order *Order `json:"order"`
	}
	path := "/v2/locations/" + url.PathEscape(locationID) + "/orders/" + url.PathEscape(orderID)
	if err := c.do(ctx, "update_order", http.MethodPut, path, req, &resp); err != nil {
		return nil, err
	}
	return resp.Order, nil
}
