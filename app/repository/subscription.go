package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/vibeventz/ms-go-vendor-admin/app/entity"
)

// SubscriptionRepository fronts the store's admin_* procedures. Their
// internals (invoice numbering, payment bookkeeping, COALESCE update rules)
// live server-side; this layer only speaks their call contracts.
type SubscriptionRepository struct {
	db DBTX
}

func NewSubscriptionRepository(db DBTX) *SubscriptionRepository {
	return &SubscriptionRepository{db: db}
}

// UpdateSubscriptionParams carries the optional overrides for
// admin_update_vendor_subscription. nil fields leave the stored value
// unchanged.
type UpdateSubscriptionParams struct {
	Tier          *string
	Status        *string
	ExpiresAt     *time.Time
	BillingPeriod *string
	BillingEmail  *string
	BillingName   *string
	BillingPhone  *string
}

// RecordPaymentParams carries the arguments of admin_record_payment.
type RecordPaymentParams struct {
	Amount        float64
	PaymentMethod string
	BillingEmail  *string
	BillingName   *string
	BillingPhone  *string
}

func (r *SubscriptionRepository) ListVendorSubscriptions(ctx context.Context) ([]*entity.VendorSubscription, error) {
	query := `
		SELECT id, user_id, application_id, name, description, email, location,
		       subscription_tier, subscription_status, subscription_started_at, subscription_expires_at,
		       billing_period, billing_email, billing_name, billing_phone,
		       next_payment_due, last_payment_at, reminder_5day_sent, reminder_1day_sent,
		       additional_photos, created_at,
		       days_until_expiry, total_invoices, total_paid,
		       needs_5day_reminder, needs_1day_reminder
		FROM admin_vendor_subscriptions()
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]*entity.VendorSubscription, 0)
	for rows.Next() {
		item := &entity.VendorSubscription{}
		if err := scanVendorSubscription(rows, item); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}

func (r *SubscriptionRepository) UpdateVendorSubscription(ctx context.Context, vendorID string, params UpdateSubscriptionParams) error {
	query := `
		SELECT admin_update_vendor_subscription($1, $2, $3, $4, $5, $6, $7, $8)
	`

	var ok bool
	err := r.db.QueryRowContext(ctx, query,
		vendorID,
		nullableStringValue(params.Tier),
		nullableStringValue(params.Status),
		nullableTimeValue(params.ExpiresAt),
		nullableStringValue(params.BillingPeriod),
		nullableStringValue(params.BillingEmail),
		nullableStringValue(params.BillingName),
		nullableStringValue(params.BillingPhone),
	).Scan(&ok)
	if err != nil {
		return err
	}
	if !ok {
		return ErrVendorNotFound
	}

	return nil
}

func (r *SubscriptionRepository) RecordPayment(ctx context.Context, vendorID string, params RecordPaymentParams) error {
	query := `
		SELECT admin_record_payment($1, $2, $3, $4, $5, $6)
	`

	var ok bool
	err := r.db.QueryRowContext(ctx, query,
		vendorID,
		params.Amount,
		params.PaymentMethod,
		nullableStringValue(params.BillingEmail),
		nullableStringValue(params.BillingName),
		nullableStringValue(params.BillingPhone),
	).Scan(&ok)
	if err != nil {
		return err
	}
	if !ok {
		return ErrVendorNotFound
	}

	return nil
}

func scanVendorSubscription(scanner rowScanner, item *entity.VendorSubscription) error {
	var applicationID, description, email, location sql.NullString
	var tier, status, billingPeriod sql.NullString
	var billingEmail, billingName, billingPhone sql.NullString
	var startedAt, expiresAt, nextPaymentDue, lastPaymentAt sql.NullTime
	var photos []byte
	var daysUntilExpiry sql.NullInt32
	var totalInvoices sql.NullInt64
	var totalPaid sql.NullFloat64
	var needs5Day, needs1Day sql.NullBool

	err := scanner.Scan(
		&item.ID,
		&item.UserID,
		&applicationID,
		&item.Name,
		&description,
		&email,
		&location,
		&tier,
		&status,
		&startedAt,
		&expiresAt,
		&billingPeriod,
		&billingEmail,
		&billingName,
		&billingPhone,
		&nextPaymentDue,
		&lastPaymentAt,
		&item.Reminder5DaySent,
		&item.Reminder1DaySent,
		&photos,
		&item.CreatedAt,
		&daysUntilExpiry,
		&totalInvoices,
		&totalPaid,
		&needs5Day,
		&needs1Day,
	)
	if err != nil {
		return err
	}

	if err := jsonColumn(photos, &item.AdditionalPhotos); err != nil {
		return err
	}

	item.ApplicationID = stringPtr(applicationID)
	item.Description = stringPtr(description)
	item.Email = stringPtr(email)
	item.Location = stringPtr(location)
	item.SubscriptionTier = stringPtr(tier)
	item.SubscriptionStatus = stringPtr(status)
	item.SubscriptionStartedAt = timePtr(startedAt)
	item.SubscriptionExpiresAt = timePtr(expiresAt)
	item.BillingPeriod = stringPtr(billingPeriod)
	item.BillingEmail = stringPtr(billingEmail)
	item.BillingName = stringPtr(billingName)
	item.BillingPhone = stringPtr(billingPhone)
	item.NextPaymentDue = timePtr(nextPaymentDue)
	item.LastPaymentAt = timePtr(lastPaymentAt)

	if daysUntilExpiry.Valid {
		v := daysUntilExpiry.Int32
		item.DaysUntilExpiry = &v
	}
	if totalInvoices.Valid {
		v := totalInvoices.Int64
		item.TotalInvoices = &v
	}
	if totalPaid.Valid {
		v := totalPaid.Float64
		item.TotalPaid = &v
	}
	if needs5Day.Valid {
		v := needs5Day.Bool
		item.Needs5DayRemind = &v
	}
	if needs1Day.Valid {
		v := needs1Day.Bool
		item.Needs1DayRemind = &v
	}

	return nil
}
