package view

import (
	"testing"
	"time"

	"github.com/bellj/connect-api-examples/internal/square"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatMoney(t *testing.T) {
	tests := []struct {
		name string
		in   *square.Money
		want string
	}{
		{"nil", nil, ""},
		{"usd", &square.Money{Amount: 500, Currency: "USD"}, "$5.00"},
		{"usd cents", &square.Money{Amount: 1234, Currency: "USD"}, "$12.34"},
		{"eur", &square.Money{Amount: 999, Currency: "EUR"}, "€9.99"},
		{"gbp", &square.Money{Amount: 100, Currency: "GBP"}, "£1.00"},
		{"other currency", &square.Money{Amount: 2500, Currency: "JPY"}, "25.00 JPY"},
		{"negative", &square.Money{Amount: -150, Currency: "USD"}, "-$1.50"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatMoney(tt.in))
		})
	}
}

func TestNewOrderInfo(t *testing.T) {
	order := square.Order{
		ID:         "ORDER-1",
		LocationID: "LOC1",
		State:      "OPEN",
		CreatedAt:  "2026-08-28T12:00:00Z",
		LineItems: []square.LineItem{
			{Name: "Flat White", Quantity: "2", TotalMoney: &square.Money{Amount: 500, Currency: "USD"}},
		},
		TotalMoney: &square.Money{Amount: 500, Currency: "USD"},
		Fulfillments: []square.Fulfillment{
			{
				UID:  "FUL-1",
				Type: "PICKUP",
				PickupDetails: &square.PickupDetails{
					PickupAt: "2026-08-30T17:00:00Z",
					Recipient: &square.FulfillmentRecipient{
						DisplayName:  "Ada Lovelace",
						EmailAddress: "ada@example.com",
						PhoneNumber:  "+14155550100",
					},
				},
			},
		},
	}

	info := NewOrderInfo(order)
	assert.Equal(t, "ORDER-1", info.OrderID)
	assert.Equal(t, "$5.00", info.Total)
	assert.True(t, info.HasFulfillments)
	assert.Equal(t, "PICKUP", info.FulfillmentType)
	assert.Equal(t, "Ada Lovelace", info.RecipientName)
	assert.Equal(t, "Fri, Aug 28 2026 at 12:00 PM", info.CreatedAt)
	require.Len(t, info.LineItems, 1)
	assert.Equal(t, "Flat White", info.LineItems[0].Name)
}

func TestNewOrderInfo_NoFulfillment(t *testing.T) {
	info := NewOrderInfo(square.Order{ID: "ORDER-1"})
	assert.False(t, info.HasFulfillments)
	assert.Empty(t, info.RecipientName)
	assert.Empty(t, info.PickupAt)
}

func TestNewLocationInfo(t *testing.T) {
	info := NewLocationInfo(square.Location{
		ID:           "LOC1",
		BusinessName: "Coffee & Toffee",
		Address: &square.Address{
			AddressLine1: "1455 Market St",
			Locality:     "San Francisco",
			AdministrativeDistrictLevel1: "CA",
			PostalCode:   "94103",
		},
	})
	assert.Equal(t, "Coffee & Toffee", info.BusinessName)
	assert.Equal(t, "1455 Market St", info.AddressLine)
	assert.Equal(t, "San Francisco, CA 94103", info.CityLine)
}

func TestNewLocationInfo_FallsBackToName(t *testing.T) {
	info := NewLocationInfo(square.Location{ID: "LOC1", Name: "Main Street"})
	assert.Equal(t, "Main Street", info.BusinessName)
	assert.Empty(t, info.AddressLine)
}

func TestPickupTimesOptions(t *testing.T) {
	now := func() time.Time {
		return time.Date(2026, 8, 28, 9, 30, 0, 0, time.UTC)
	}
	opts := NewPickupTimesAt(now).Options()

	// four days, three slots each
	require.Len(t, opts, 12)
	assert.Equal(t, "2026-08-29T11:00:00Z", opts[0].Value)
	assert.Equal(t, "Sat, Aug 29 at 11:00 AM", opts[0].Label)
	assert.Equal(t, "2026-09-01T17:00:00Z", opts[len(opts)-1].Value)

	// all values parse and are in the future
	for _, o := range opts {
		ts, err := time.Parse(time.RFC3339, o.Value)
		require.NoError(t, err)
		assert.True(t, ts.After(now()))
	}
}
