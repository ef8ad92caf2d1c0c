package square

// Wire types for the slice of the Connect v2 API this service consumes.
// Field names follow the API's snake_case JSON.

type Money struct {
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
}

type LineItem struct {
	UID             string `json:"uid,omitempty"`
	Name            string `json:"name,omitempty"`
	Quantity        string `json:"quantity"`
	CatalogObjectID string `json:"catalog_object_id,omitempty"`
	BasePriceMoney  *Money `json:"base_price_money,omitempty"`
	TotalMoney      *Money `json:"total_money,omitempty"`
}

type FulfillmentRecipient struct {
	DisplayName  string `json:"display_name,omitempty"`
	EmailAddress string `json:"email_address,omitempty"`
	PhoneNumber  string `json:"phone_number,omitempty"`
}

type PickupDetails struct {
	Recipient *FulfillmentRecipient `json:"recipient,omitempty"`
	PickupAt  string                `json:"pickup_at,omitempty"`
}

type Fulfillment struct {
	// UID empty on create; carrying an existing uid makes the service
	// replace that fulfillment instead of appending a new one.
	UID           string         `json:"uid,omitempty"`
	Type          string         `json:"type,omitempty"`
	State         string         `json:"state,omitempty"`
	PickupDetails *PickupDetails `json:"pickup_details,omitempty"`
}

type Tender struct {
	ID          string `json:"id,omitempty"`
	Type        string `json:"type,omitempty"`
	AmountMoney *Money `json:"amount_money,omitempty"`
}

type Order struct {
	ID            string        `json:"id,omitempty"`
	LocationID    string        `json:"location_id,omitempty"`
	State         string        `json:"state,omitempty"`
	Version       int64         `json:"version,omitempty"`
	LineItems     []LineItem    `json:"line_items,omitempty"`
	Fulfillments  []Fulfillment `json:"fulfillments,omitempty"`
	Tenders       []Tender      `json:"tenders,omitempty"`
	TotalMoney    *Money        `json:"total_money,omitempty"`
	TotalTaxMoney *Money        `json:"total_tax_money,omitempty"`
	CreatedAt     string        `json:"created_at,omitempty"`
}

type Address struct {
	AddressLine1                 string `json:"address_line_1,omitempty"`
	AddressLine2                 string `json:"address_line_2,omitempty"`
	Locality                     string `json:"locality,omitempty"`
	AdministrativeDistrictLevel1 string `json:"administrative_district_level_1,omitempty"`
	PostalCode                   string `json:"postal_code,omitempty"`
	Country                      string `json:"country,omitempty"`
}

type Location struct {
	ID           string   `json:"id"`
	Name         string   `json:"name,omitempty"`
	BusinessName string   `json:"business_name,omitempty"`
	Address      *Address `json:"address,omitempty"`
	Timezone     string   `json:"timezone,omitempty"`
	Status       string   `json:"status,omitempty"`
}

type Payment struct {
	ID          string `json:"id"`
	Status      string `json:"status,omitempty"`
	OrderID     string `json:"order_id,omitempty"`
	AmountMoney *Money `json:"amount_money,omitempty"`
	SourceType  string `json:"source_type,omitempty"`
	CreatedAt   string `json:"created_at,omitempty"`
}
