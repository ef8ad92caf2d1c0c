package usecase_test

import (
	"context"
	"testing"

	"github.com/bellj/connect-api-examples/internal/usecase"
	"github.com/stretchr/testify/require"
)

func TestSubmitPayment(t *testing.T) {
	svc := newFakeService()
	orderID := placeOrder(t, svc)
	events := &fakeEvents{}
	uc := usecase.NewSubmitPayment(svc, svc, events)

	out, err := uc.Execute(context.Background(), usecase.SubmitPaymentInput{
		OrderID:    orderID,
		LocationID: "LOC1",
		Nonce:      "cnon:card-nonce",
	})
	require.NoError(t, err)
	require.Equal(t, "PAY-1", out.PaymentID)
	require.Equal(t, orderID, out.OrderID)

	require.Len(t, svc.payments, 1)
	p := svc.payments[0]
	require.Equal(t, "cnon:card-nonce", p.SourceID)
	require.Equal(t, orderID, p.OrderID)
	// amount comes from the order's authoritative total, never the form
	require.EqualValues(t, 500, p.AmountMoney.Amount)
	require.Equal(t, "USD", p.AmountMoney.Currency)
	require.Len(t, p.IdempotencyKey, 45)

	require.Len(t, events.published, 1)
	require.Equal(t, usecase.EventPaymentCompleted, events.published[0].Type)
	require.EqualValues(t, 500, events.published[0].AmountMinor)
}

func TestSubmitPayment_FreshIdempotencyKeys(t *testing.T) {
	svc := newFakeService()
	orderID := placeOrder(t, svc)
	uc := usecase.NewSubmitPayment(svc, svc, nil)

	in := usecase.SubmitPaymentInput{OrderID: orderID, LocationID: "LOC1", Nonce: "cnon:n"}
	_, err := uc.Execute(context.Background(), in)
	require.NoError(t, err)
	_, err = uc.Execute(context.Background(), in)
	require.NoError(t, err)

	require.Len(t, svc.payments, 2)
	require.NotEqual(t, svc.payments[0].IdempotencyKey, svc.payments[1].IdempotencyKey)
}

func TestSubmitPayment_UnknownOrder(t *testing.T) {
	svc := newFakeService()
	uc := usecase.NewSubmitPayment(svc, svc, nil)

	_, err := uc.Execute(context.Background(), usecase.SubmitPaymentInput{
		OrderID: "NO-SUCH-ORDER", LocationID: "LOC1", Nonce: "cnon:n",
	})
	require.ErrorIs(t, err, usecase.ErrOrderNotFound)
	require.Empty(t, svc.payments)
}

func TestSubmitPayment_OrderWithoutTotal(t *testing.T) {
	svc := newFakeService()
	orderID := placeOrder(t, svc)
	svc.orders[orderID].TotalMoney = nil
	uc := usecase.NewSubmitPayment(svc, svc, nil)

	_, err := uc.Execute(context.Background(), usecase.SubmitPaymentInput{
		OrderID: orderID, LocationID: "LOC1", Nonce: "cnon:n",
	})
	require.ErrorIs(t, err, usecase.ErrOrderHasNoTotal)
	require.Empty(t, svc.payments)
}
