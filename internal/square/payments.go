package square

import (
	"context"
	"net/http"
)

type CreatePaymentRequest struct {
	SourceID       string `json:"source_id"`
	IdempotencyKey string `json:"idempotency_key"`
	AmountMoney    Money  `json:"amount_money"`
	OrderID        string `json:"order_id"`
}

// CreatePayment charges a tokenized payment instrument against an order.
func (c *Client) CreatePayment(ctx context.Context, req CreatePaymentRequest) (*Payment, error) {
	var resp struct {
		Payment *Payment `json:"payment"`
	}
	if err := c.do(ctx, "create_payment", http.MethodPost, "/v2/payments", req, &resp); err != nil {
		return nil, err
	}
	return resp.Payment, nil
}
