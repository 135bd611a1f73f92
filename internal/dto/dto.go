// Package dto содержит JSON-модели внешнего HTTP API.
package dto

import "time"

type OrderItem struct {
	Name           string `json:"name"`
	Quantity       int32  `json:"quantity"`
	UnitPriceCents int64  `json:"unit_price_cents"`
}

type Address struct {
	FirstName  string   `json:"first_name"`
	LastName   string   `json:"last_name"`
	Phone      string   `json:"phone"`
	Street     string   `json:"street"`
	City       string   `json:"city"`
	State      string   `json:"state"`
	PostalCode string   `json:"postal_code"`
	Latitude   *float64 `json:"latitude,omitempty"`
	Longitude  *float64 `json:"longitude,omitempty"`
}

type Delivery struct {
	OrderID        string      `json:"order_id"`
	OrderNumber    int64       `json:"order_number"`
	Type           string      `json:"type"`
	Items          []OrderItem `json:"items"`
	SubtotalCents  int64       `json:"subtotal_cents"`
	ShippingCents  int64       `json:"shipping_cents"`
	DiscountCents  int64       `json:"discount_cents"`
	TotalCents     int64       `json:"total_cents"`
	PaymentMethod  string      `json:"payment_method"`
	Address        Address     `json:"shipping_address"`
	DeliveryStatus string      `json:"delivery_status"`
	CourierID      *int64      `json:"courier_id,omitempty"`
	OrderDate      time.Time   `json:"order_date"`
	UpdatedAt      time.Time   `json:"updated_at"`
}

type DeliveryListResponse struct {
	Items         []Delivery `json:"items"`
	Page          int        `json:"page"`
	PageSize      int        `json:"page_size"`
	TotalMatching int64      `json:"total_matching"`
	TotalPages    int        `json:"total_pages"`
}

type DeliveryAssignRequest struct {
	CourierID int64 `json:"courier_id"`
}

type DeliveryStatusRequest struct {
	Status string `json:"status"`
}

type VerifyPaymentRequest struct {
	CashConfirmed  *bool   `json:"cash_confirmed,omitempty"`
	EnteredOrderID *string `json:"entered_order_id,omitempty"`
}

type PaymentReferenceResponse struct {
	Reference string `json:"reference"`
}

type PingResponse struct {
	Message *string `json:"message,omitempty"`
}
