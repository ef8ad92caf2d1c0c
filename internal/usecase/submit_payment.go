package usecase

import (
	"context"
	"errors"

	"github.com/bellj/connect-api-examples/internal/square"
)

var ErrOrderHasNoTotal = errors.New("order has no total amount")

type SubmitPaymentInput struct {
	OrderID    string
	LocationID string
	Nonce      string // single-use token for the payment instrument
}

type SubmitPaymentOutput struct {
	PaymentID  string
	OrderID    string
	LocationID string
}

// SubmitPayment charges the order's total. The amount is always re-read
// from the service, never taken from the form.
type SubmitPayment struct {
	orders   OrdersAPI
	payments PaymentsAPI
	events   EventPublisher
}

func NewSubmitPayment(orders OrdersAPI, payments PaymentsAPI, events EventPublisher) *SubmitPayment {
	return &SubmitPayment{orders: orders, payments: payments, events: events}
}

func (uc *SubmitPayment) Execute(ctx context.Context, in SubmitPaymentInput) (SubmitPaymentOutput, error) {
	orders, err := uc.orders.BatchRetrieveOrders(ctx, in.LocationID, []string{in.OrderID})
	if err != nil {
		return SubmitPaymentOutput{}, err
	}
	if len(orders) == 0 {
		return SubmitPaymentOutput{}, ErrOrderNotFound
	}
	order := orders[0]
	if order.TotalMoney == nil {
		return SubmitPaymentOutput{}, ErrOrderHasNoTotal
	}

	payment, err := uc.payments.CreatePayment(ctx, square.CreatePaymentRequest{
		SourceID:       in.Nonce,
		IdempotencyKey: square.NewPaymentIdempotencyKey(),
		AmountMoney:    *order.TotalMoney,
		OrderID:        order.ID,
	})
	if err != nil {
		return SubmitPaymentOutput{}, err
	}

	publish(ctx, uc.events, Event{
		Type:        EventPaymentCompleted,
		OrderID:     order.ID,
		LocationID:  order.LocationID,
		PaymentID:   payment.ID,
		AmountMinor: order.TotalMoney.Amount,
		Currency:    order.TotalMoney.Currency,
	})

	return SubmitPaymentOutput{
		PaymentID:  payment.ID,
		OrderID:    order.ID,
		LocationID: order.LocationID,
	}, nil
}
