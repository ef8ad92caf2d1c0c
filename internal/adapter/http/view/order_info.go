package view

import (
	"time"

	"github.com/bellj/connect-api-examples/internal/square"
)

type LineItemInfo struct {
	Name     string
	Quantity string
	Total    string
}

// OrderInfo projects an order into the fields the checkout pages render.
type OrderInfo struct {
	OrderID         string
	LocationID      string
	CreatedAt       string
	State           string
	LineItems       []LineItemInfo
	Total           string
	HasFulfillments bool
	FulfillmentType string
	RecipientName   string
	RecipientEmail  string
	RecipientPhone  string
	PickupAt        string
}

func NewOrderInfo(o square.Order) OrderInfo {
	info := OrderInfo{
		OrderID:         o.ID,
		LocationID:      o.LocationID,
		CreatedAt:       formatTimestamp(o.CreatedAt),
		State:           o.State,
		Total:           FormatMoney(o.TotalMoney),
		HasFulfillments: len(o.Fulfillments) > 0,
	}

	for _, li := range o.LineItems {
		info.LineItems = append(info.LineItems, LineItemInfo{
			Name:     li.Name,
			Quantity: li.Quantity,
			Total:    FormatMoney(li.TotalMoney),
		})
	}

	if info.HasFulfillments {
		f := o.Fulfillments[0]
		info.FulfillmentType = f.Type
		if pd := f.PickupDetails; pd != nil {
			info.PickupAt = formatTimestamp(pd.PickupAt)
			if r := pd.Recipient; r != nil {
				info.RecipientName = r.DisplayName
				info.RecipientEmail = r.EmailAddress
				info.RecipientPhone = r.PhoneNumber
			}
		}
	}
	return info
}

func formatTimestamp(ts string) string {
	t, err := time.Parse(time.RFC3339, ts)
	if err != nil {
		return ts // show the raw value rather than nothing
	}
	return t.Format("Mon, Jan 2 2006 at 3:04 PM")
}
