package entities

import "time"

// PaymentVerification - эфемерная запись-доказательство, живет только
// внутри запроса, который переводит заказ в delivered. Не персистится.
type PaymentVerification struct {
	Method     PaymentMethodType
	Verified   bool
	VerifiedAt time.Time
}

// PaymentProof - payload курьера для верификации оплаты.
type PaymentProof struct {
	CashConfirmed  bool
	EnteredOrderID *string
}
