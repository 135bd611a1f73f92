package dto

import "fulfillment/internal/entities"

func FromOrder(order *entities.Order) Delivery {
	items := make([]OrderItem, len(order.Items))
	for i, item := range order.Items {
		items[i] = OrderItem{
			Name:           item.Name,
			Quantity:       item.Quantity,
			UnitPriceCents: item.UnitPriceCents,
		}
	}

	return Delivery{
		OrderID:       order.GlobalID,
		OrderNumber:   order.ID,
		Type:          order.Type.String(),
		Items:         items,
		SubtotalCents: order.SubtotalCents,
		ShippingCents: order.ShippingCents,
		DiscountCents: order.DiscountCents,
		TotalCents:    order.TotalCents,
		PaymentMethod: order.PaymentMethod.String(),
		Address: Address{
			FirstName:  order.ShippingAddress.FirstName,
			LastName:   order.ShippingAddress.LastName,
			Phone:      order.ShippingAddress.Phone,
			Street:     order.ShippingAddress.Street,
			City:       order.ShippingAddress.City,
			State:      order.ShippingAddress.State,
			PostalCode: order.ShippingAddress.PostalCode,
			Latitude:   order.ShippingAddress.Latitude,
			Longitude:  order.ShippingAddress.Longitude,
		},
		DeliveryStatus: order.DeliveryStatus.String(),
		CourierID:      order.CourierID,
		OrderDate:      order.OrderDate,
		UpdatedAt:      order.UpdatedAt,
	}
}

func FromOrders(orders []entities.Order) []Delivery {
	deliveries := make([]Delivery, len(orders))
	for i := range orders {
		deliveries[i] = FromOrder(&orders[i])
	}
	return deliveries
}
