package dto

type VendorSubscriptionResponse struct {
	VendorResponse

	DaysUntilExpiry *int32   `json:"days_until_expiry,omitempty"`
	ExpiryBucket    string   `json:"expiry_bucket"`
	TotalInvoices   *int64   `json:"total_invoices,omitempty"`
	TotalPaid       *float64 `json:"total_paid,omitempty"`
	Needs5DayRemind *bool    `json:"needs_5day_reminder,omitempty"`
	Needs1DayRemind *bool    `json:"needs_1day_reminder,omitempty"`
}

type LedgerSummaryResponse struct {
	TotalVendors  int     `json:"total_vendors"`
	ActiveVendors int     `json:"active_vendors"`
	ExpiringSoon  int     `json:"expiring_soon"`
	TotalRevenue  float64 `json:"total_revenue"`
}

type SubscriptionLedgerResponse struct {
	Subscriptions []VendorSubscriptionResponse `json:"subscriptions"`
	Summary       LedgerSummaryResponse        `json:"summary"`
	Degraded      bool                         `json:"degraded"`
}

type InvoiceResponse struct {
	ID                string  `json:"id"`
	VendorID          string  `json:"vendor_id"`
	InvoiceNumber     string  `json:"invoice_number"`
	Amount            float64 `json:"amount"`
	Tier              string  `json:"tier"`
	BillingPeriod     string  `json:"billing_period"`
	Status            string  `json:"status"`
	PaymentMethod     *string `json:"payment_method,omitempty"`
	ExternalPaymentID *string `json:"external_payment_id,omitempty"`
	BillingEmail      *string `json:"billing_email,omitempty"`
	BillingName       *string `json:"billing_name,omitempty"`
	BillingPhone      *string `json:"billing_phone,omitempty"`
	CreatedAt         string  `json:"created_at"`
	PaidAt            *string `json:"paid_at,omitempty"`
	DueDate           *string `json:"due_date,omitempty"`
}

type ListInvoicesResponse struct {
	Invoices []InvoiceResponse `json:"invoices"`
}
