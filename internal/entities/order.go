package entities

import "time"

type Order struct {
	ID              int64
	GlobalID        string
	Type            DeliveryType
	Items           []OrderItem
	SubtotalCents   int64
	ShippingCents   int64
	DiscountCents   int64
	TotalCents      int64
	PaymentMethod   PaymentMethodType
	ShippingAddress Address
	DeliveryStatus  DeliveryStatusType
	CourierID       *int64
	OrderDate       time.Time
	UpdatedAt       time.Time
}

type OrderItem struct {
	Name           string
	Quantity       int32
	UnitPriceCents int64
}

type Address struct {
	FirstName  string
	LastName   string
	Phone      string
	Street     string
	City       string
	State      string
	PostalCode string
	Latitude   *float64
	Longitude  *float64
}

// HasCoordinates сообщает, заполнена ли пара координат целиком.
func (a Address) HasCoordinates() bool {
	return a.Latitude != nil && a.Longitude != nil
}

type Coordinates struct {
	Latitude  float64
	Longitude float64
}

type DeliveryType string

const (
	DeliveryOrder  DeliveryType = "order"
	DeliveryRefund DeliveryType = "refund"
)

func (t DeliveryType) String() string {
	return string(t)
}

type PaymentMethodType string

const (
	PaymentCashOnDelivery PaymentMethodType = "cash_on_delivery"
	PaymentPrepaid        PaymentMethodType = "prepaid"
)

func (t PaymentMethodType) String() string {
	return string(t)
}

type DeliveryStatusType string

const (
	DeliveryPending        DeliveryStatusType = "pending"
	DeliveryAssigned       DeliveryStatusType = "assigned"
	DeliveryOutForDelivery DeliveryStatusType = "out_for_delivery"
	DeliveryDelivered      DeliveryStatusType = "delivered"
	DeliveryCancelled      DeliveryStatusType = "cancelled"
)

func (s DeliveryStatusType) String() string {
	return string(s)
}

// IsTerminal: из delivered и cancelled переходов нет.
func (s DeliveryStatusType) IsTerminal() bool {
	return s == DeliveryDelivered || s == DeliveryCancelled
}

type OrderModify struct {
	GlobalID       *string
	DeliveryStatus *DeliveryStatusType
	CourierID      *int64
	Latitude       *float64
	Longitude      *float64
}
