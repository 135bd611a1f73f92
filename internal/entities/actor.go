package entities

type Capability string

const (
	CapabilityAdmin   Capability = "admin"
	CapabilityCourier Capability = "courier"
)

func (c Capability) String() string {
	return string(c)
}

// Actor передается явным параметром в каждую операцию,
// никакого ambient-состояния сессии в ядре нет.
type Actor struct {
	ID           int64
	Capabilities []Capability
}

func (a Actor) Has(c Capability) bool {
	for _, have := range a.Capabilities {
		if have == c {
			return true
		}
	}
	return false
}

// IsBoundCourier: курьер авторизован на курьерские ребра
// только для заказа, к которому он привязан.
func (a Actor) IsBoundCourier(order *Order) bool {
	return a.Has(CapabilityCourier) && order.CourierID != nil && *order.CourierID == a.ID
}
