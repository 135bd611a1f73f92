package order

import "time"

type OrderDB struct {
	GlobalID       string
	OrderNumber    int64
	Type           string
	Items          []byte
	SubtotalCents  int64
	ShippingCents  int64
	DiscountCents  int64
	TotalCents     int64
	PaymentMethod  string
	FirstName      string
	LastName       string
	Phone          string
	Street         string
	City           string
	State          string
	PostalCode     string
	Latitude       *float64
	Longitude      *float64
	DeliveryStatus string
	CourierID      *int64
	OrderDate      time.Time
	UpdatedAt      time.Time
}

// ItemDB - элемент jsonb-колонки items.
type ItemDB struct {
	Name           string `json:"name"`
	Quantity       int32  `json:"quantity"`
	UnitPriceCents int64  `json:"unit_price_cents"`
}
