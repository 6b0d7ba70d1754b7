package entity

// VendorSubscription is the ledger projection of a vendor returned by the
// admin_vendor_subscriptions() store procedure. The derived fields are nil
// when the row came from the plain vendors fallback read.
type VendorSubscription struct {
	Vendor

	DaysUntilExpiry *int32
	TotalInvoices   *int64
	TotalPaid       *float64
	Needs5DayRemind *bool
	Needs1DayRemind *bool
}

type ExpiryBucket string

const (
	ExpiryBucketNone    ExpiryBucket = "none"
	ExpiryBucketExpired ExpiryBucket = "expired"
	ExpiryBucketUrgent  ExpiryBucket = "urgent"
	ExpiryBucketSoon    ExpiryBucket = "soon"
	ExpiryBucketHealthy ExpiryBucket = "healthy"
)

// BucketForDays maps a days-until-expiry countdown onto the display bucket
// used by the dashboard. nil means the countdown is unknown (fallback read).
func BucketForDays(days *int32) ExpiryBucket {
	switch {
	case days == nil:
		return ExpiryBucketNone
	case *days < 0:
		return ExpiryBucketExpired
	case *days <= 1:
		return ExpiryBucketUrgent
	case *days <= 5:
		return ExpiryBucketSoon
	default:
		return ExpiryBucketHealthy
	}
}
