package order_placed

import (
	"time"

	"fulfillment/internal/entities"
)

// placedEvent - контракт топика order.placed со стороны магазина.
type placedEvent struct {
	GlobalID      string        `json:"global_id"`
	OrderNumber   int64         `json:"order_number"`
	Type          string        `json:"type"`
	Items         []placedItem  `json:"items"`
	SubtotalCents int64         `json:"subtotal_cents"`
	ShippingCents int64         `json:"shipping_cents"`
	DiscountCents int64         `json:"discount_cents"`
	TotalCents    int64         `json:"total_cents"`
	PaymentMethod string        `json:"payment_method"`
	Address       placedAddress `json:"shipping_address"`
	OrderDate     time.Time     `json:"order_date"`
}

type placedItem struct {
	Name           string `json:"name"`
	Quantity       int32  `json:"quantity"`
	UnitPriceCents int64  `json:"unit_price_cents"`
}

type placedAddress struct {
	FirstName  string   `json:"first_name"`
	LastName   string   `json:"last_name"`
	Phone      string   `json:"phone"`
	Street     string   `json:"street"`
	City       string   `json:"city"`
	State      string   `json:"state"`
	PostalCode string   `json:"postal_code"`
	Latitude   *float64 `json:"latitude"`
	Longitude  *float64 `json:"longitude"`
}

func (e placedEvent) toOrder() entities.Order {
	items := make([]entities.OrderItem, 0, len(e.Items))
	for _, item := range e.Items {
		items = append(items, entities.OrderItem{
			Name:           item.Name,
			Quantity:       item.Quantity,
			UnitPriceCents: item.UnitPriceCents,
		})
	}

	return entities.Order{
		ID:            e.OrderNumber,
		GlobalID:      e.GlobalID,
		Type:          entities.DeliveryType(e.Type),
		Items:         items,
		SubtotalCents: e.SubtotalCents,
		ShippingCents: e.ShippingCents,
		DiscountCents: e.DiscountCents,
		TotalCents:    e.TotalCents,
		PaymentMethod: entities.PaymentMethodType(e.PaymentMethod),
		ShippingAddress: entities.Address{
			FirstName:  e.Address.FirstName,
			LastName:   e.Address.LastName,
			Phone:      e.Address.Phone,
			Street:     e.Address.Street,
			City:       e.Address.City,
			State:      e.Address.State,
			PostalCode: e.Address.PostalCode,
			Latitude:   e.Address.Latitude,
			Longitude:  e.Address.Longitude,
		},
		OrderDate: e.OrderDate,
	}
}
