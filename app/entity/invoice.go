package entity

import "time"

const (
	InvoiceStatusPending   = "pending"
	InvoiceStatusPaid      = "paid"
	InvoiceStatusFailed    = "failed"
	InvoiceStatusCancelled = "cancelled"
)

const (
	PaymentMethodManual       = "manual"
	PaymentMethodPayfast      = "payfast"
	PaymentMethodBankTransfer = "bank_transfer"
	PaymentMethodCash         = "cash"
)

// Invoice is one billing event for a vendor. Rows are immutable once created
// except for the status/paid_at transition driven by payment recording.
type Invoice struct {
	ID                string
	VendorID          string
	InvoiceNumber     string
	Amount            float64
	Tier              string
	BillingPeriod     string
	Status            string
	PaymentMethod     *string
	ExternalPaymentID *string
	BillingEmail      *string
	BillingName       *string
	BillingPhone      *string
	CreatedAt         time.Time
	PaidAt            *time.Time
	DueDate           *time.Time
}

func IsPaymentMethod(method string) bool {
	switch method {
	case PaymentMethodManual, PaymentMethodPayfast, PaymentMethodBankTransfer, PaymentMethodCash:
		return true
	default:
		return false
	}
}
