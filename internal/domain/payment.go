package domain

type PaymentType string

const (
	PaymentTypeAdvance  PaymentType = "Advance"
	PaymentTypeSecurity PaymentType = "Security"
	PaymentTypeFinal    PaymentType = "Final"
	PaymentTypeOther    PaymentType = "Other"
	PaymentTypeRefund   PaymentType = "Refund"
)

type PaymentMethod string

const (
	PaymentMethodCash         PaymentMethod = "Cash"
	PaymentMethodBankTransfer PaymentMethod = "Bank Transfer"
	PaymentMethodCreditCard   PaymentMethod = "Credit Card"
	PaymentMethodCheck        PaymentMethod = "Check"
)

// PaymentStatus is derived per reservation, never stored.
type PaymentStatus string

const (
	PaymentStatusUnpaid   PaymentStatus = "Unpaid"
	PaymentStatusPartial  PaymentStatus = "Partial"
	PaymentStatusPaid     PaymentStatus = "Paid"
	PaymentStatusRefunded PaymentStatus = "Refunded"
)

type Payment struct {
	ID            int32         `json:"id"`
	ReservationID int32         `json:"reservationId"`
	ClientID      int32         `json:"clientId"`
	Amount        float64       `json:"amount"`
	PaymentDate   string        `json:"paymentDate"` // yyyy-mm-dd
	PaymentMethod PaymentMethod `json:"paymentMethod"`
	Type          PaymentType   `json:"type"`
	Notes         string        `json:"notes"`
	CreatedOn     string        `json:"created_on"`
	UpdatedOn     string        `json:"updated_on"`
}
