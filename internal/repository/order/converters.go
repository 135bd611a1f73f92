package order

import (
	"encoding/json"
	"fmt"

	"fulfillment/internal/entities"
)

func ToDomain(o *OrderDB) (*entities.Order, error) {
	if o == nil {
		return nil, nil
	}

	var itemsDB []ItemDB
	if len(o.Items) > 0 {
		if err := json.Unmarshal(o.Items, &itemsDB); err != nil {
			return nil, fmt.Errorf("decode order items: %w", err)
		}
	}

	items := make([]entities.OrderItem, len(itemsDB))
	for i, itemDB := range itemsDB {
		items[i] = entities.OrderItem{
			Name:           itemDB.Name,
			Quantity:       itemDB.Quantity,
			UnitPriceCents: itemDB.UnitPriceCents,
		}
	}

	return &entities.Order{
		ID:            o.OrderNumber,
		GlobalID:      o.GlobalID,
		Type:          entities.DeliveryType(o.Type),
		Items:         items,
		SubtotalCents: o.SubtotalCents,
		ShippingCents: o.ShippingCents,
		DiscountCents: o.DiscountCents,
		TotalCents:    o.TotalCents,
		PaymentMethod: entities.PaymentMethodType(o.PaymentMethod),
		ShippingAddress: entities.Address{
			FirstName:  o.FirstName,
			LastName:   o.LastName,
			Phone:      o.Phone,
			Street:     o.Street,
			City:       o.City,
			State:      o.State,
			PostalCode: o.PostalCode,
			Latitude:   o.Latitude,
			Longitude:  o.Longitude,
		},
		DeliveryStatus: entities.DeliveryStatusType(o.DeliveryStatus),
		CourierID:      o.CourierID,
		OrderDate:      o.OrderDate,
		UpdatedAt:      o.UpdatedAt,
	}, nil
}

func FromDomain(order *entities.Order) (*OrderDB, error) {
	if order == nil {
		return nil, nil
	}

	itemsDB := make([]ItemDB, len(order.Items))
	for i, item := range order.Items {
		itemsDB[i] = ItemDB{
			Name:           item.Name,
			Quantity:       item.Quantity,
			UnitPriceCents: item.UnitPriceCents,
		}
	}

	items, err := json.Marshal(itemsDB)
	if err != nil {
		return nil, fmt.Errorf("encode order items: %w", err)
	}

	return &OrderDB{
		GlobalID:       order.GlobalID,
		OrderNumber:    order.ID,
		Type:           order.Type.String(),
		Items:          items,
		SubtotalCents:  order.SubtotalCents,
		ShippingCents:  order.ShippingCents,
		DiscountCents:  order.DiscountCents,
		TotalCents:     order.TotalCents,
		PaymentMethod:  order.PaymentMethod.String(),
		FirstName:      order.ShippingAddress.FirstName,
		LastName:       order.ShippingAddress.LastName,
		Phone:          order.ShippingAddress.Phone,
		Street:         order.ShippingAddress.Street,
		City:           order.ShippingAddress.City,
		State:          order.ShippingAddress.State,
		PostalCode:     order.ShippingAddress.PostalCode,
		Latitude:       order.ShippingAddress.Latitude,
		Longitude:      order.ShippingAddress.Longitude,
		DeliveryStatus: order.DeliveryStatus.String(),
		CourierID:      order.CourierID,
		OrderDate:      order.OrderDate,
		UpdatedAt:      order.UpdatedAt,
	}, nil
}

func ToDomainList(ordersDB []OrderDB) ([]entities.Order, error) {
	result := make([]entities.Order, 0, len(ordersDB))
	for i := range ordersDB {
		orderDomain, err := ToDomain(&ordersDB[i])
		if err != nil {
			return nil, err
		}
		result = append(result, *orderDomain)
	}
	return result, nil
}
