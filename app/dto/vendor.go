package dto

type VendorResponse struct {
	ID                    string   `json:"id"`
	UserID                string   `json:"user_id"`
	ApplicationID         *string  `json:"application_id,omitempty"`
	Name                  string   `json:"name"`
	Description           *string  `json:"description,omitempty"`
	Email                 *string  `json:"email,omitempty"`
	Location              *string  `json:"location,omitempty"`
	SubscriptionTier      *string  `json:"subscription_tier,omitempty"`
	SubscriptionStatus    *string  `json:"subscription_status,omitempty"`
	SubscriptionStartedAt *string  `json:"subscription_started_at,omitempty"`
	SubscriptionExpiresAt *string  `json:"subscription_expires_at,omitempty"`
	BillingPeriod         *string  `json:"billing_period,omitempty"`
	BillingEmail          *string  `json:"billing_email,omitempty"`
	BillingName           *string  `json:"billing_name,omitempty"`
	BillingPhone          *string  `json:"billing_phone,omitempty"`
	NextPaymentDue        *string  `json:"next_payment_due,omitempty"`
	LastPaymentAt         *string  `json:"last_payment_at,omitempty"`
	Reminder5DaySent      bool     `json:"reminder_5day_sent"`
	Reminder1DaySent      bool     `json:"reminder_1day_sent"`
	AdditionalPhotos      []string `json:"additional_photos"`
	CreatedAt             string   `json:"created_at"`
}

type ListVendorsResponse struct {
	Vendors []VendorResponse `json:"vendors"`
}
