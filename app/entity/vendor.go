package entity

import "time"

const (
	SubscriptionStatusActive    = "active"
	SubscriptionStatusInactive  = "inactive"
	SubscriptionStatusCancelled = "cancelled"
	SubscriptionStatusExpired   = "expired"
)

const (
	BillingPeriodMonthly = "monthly"
	BillingPeriodYearly  = "yearly"
)

const (
	TierBasic      = "basic"
	TierPremium    = "premium"
	TierEnterprise = "enterprise"
)

// Vendor is one approved business. ApplicationID is the idempotence key back
// to the application that spawned it; the store enforces its uniqueness.
type Vendor struct {
	ID                    string
	UserID                string
	ApplicationID         *string
	Name                  string
	Description           *string
	Email                 *string
	Location              *string
	SubscriptionTier      *string
	SubscriptionStatus    *string
	SubscriptionStartedAt *time.Time
	SubscriptionExpiresAt *time.Time
	BillingPeriod         *string
	BillingEmail          *string
	BillingName           *string
	BillingPhone          *string
	NextPaymentDue        *time.Time
	LastPaymentAt         *time.Time
	Reminder5DaySent      bool
	Reminder1DaySent      bool
	AdditionalPhotos      []string
	CreatedAt             time.Time
}

func IsSubscriptionStatus(status string) bool {
	switch status {
	case SubscriptionStatusActive,
		SubscriptionStatusInactive,
		SubscriptionStatusCancelled,
		SubscriptionStatusExpired:
		return true
	default:
		return false
	}
}

func IsBillingPeriod(period string) bool {
	return period == BillingPeriodMonthly || period == BillingPeriodYearly
}

func IsSubscriptionTier(tier string) bool {
	switch tier {
	case TierBasic, TierPremium, TierEnterprise:
		return true
	default:
		return false
	}
}
