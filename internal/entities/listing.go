package entities

const (
	FilterAll = "all"

	DefaultPageSize = 10
)

type DeliveryFilter struct {
	Status string // all | pending | assigned | out_for_delivery | delivered | cancelled
	Type   string // all | order | refund
	Search string // OR по номеру заказа, имени/фамилии клиента и улице
}

// ListScope - фильтр, уже ограниченный правами актора.
// CourierID != nil означает "только доставки этого курьера".
type ListScope struct {
	CourierID *int64
	Filter    DeliveryFilter
	Limit     uint64
	Offset    uint64
}

type DeliveryPage struct {
	Items         []Order
	Page          int
	PageSize      int
	TotalMatching int64
	TotalPages    int
}
