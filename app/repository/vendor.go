package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/vibeventz/ms-go-vendor-admin/app/entity"
)

var (
	ErrVendorNotFound      = errors.New("vendor not found")
	ErrVendorAlreadyExists = errors.New("vendor already exists for application")
)

const vendorColumns = `id, user_id, application_id, name, description, email, location,
       subscription_tier, subscription_status, subscription_started_at, subscription_expires_at,
       billing_period, billing_email, billing_name, billing_phone,
       next_payment_due, last_payment_at, reminder_5day_sent, reminder_1day_sent,
       additional_photos, created_at`

type VendorRepository struct {
	db DBTX
}

func NewVendorRepository(db DBTX) *VendorRepository {
	return &VendorRepository{db: db}
}

// Create inserts a vendor row derived from an approved application. The store
// holds a unique constraint on application_id; a second insert for the same
// application maps to ErrVendorAlreadyExists.
func (r *VendorRepository) Create(ctx context.Context, vendor *entity.Vendor) error {
	photos, err := jsonValue(vendor.AdditionalPhotos)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO vendors (
			user_id, application_id, name, description, email, location,
			subscription_tier, subscription_status, additional_photos
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at
	`

	err = r.db.QueryRowContext(ctx, query,
		vendor.UserID,
		nullableStringValue(vendor.ApplicationID),
		vendor.Name,
		nullableStringValue(vendor.Description),
		nullableStringValue(vendor.Email),
		nullableStringValue(vendor.Location),
		nullableStringValue(vendor.SubscriptionTier),
		nullableStringValue(vendor.SubscriptionStatus),
		photos,
	).Scan(&vendor.ID, &vendor.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrVendorAlreadyExists
		}
		return err
	}

	return nil
}

func (r *VendorRepository) List(ctx context.Context) ([]*entity.Vendor, error) {
	query := `
		SELECT ` + vendorColumns + `
		FROM vendors
		ORDER BY created_at DESC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]*entity.Vendor, 0)
	for rows.Next() {
		item := &entity.Vendor{}
		if err := scanVendor(rows, item); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}

func (r *VendorRepository) FindByID(ctx context.Context, id string) (*entity.Vendor, error) {
	query := `
		SELECT ` + vendorColumns + `
		FROM vendors
		WHERE id = $1
	`

	item := &entity.Vendor{}
	if err := scanVendor(r.db.QueryRowContext(ctx, query, id), item); err == sql.ErrNoRows {
		return nil, nil
	} else if err != nil {
		return nil, err
	}

	return item, nil
}

func (r *VendorRepository) UpdateSubscriptionStatus(ctx context.Context, id, status string) error {
	query := `UPDATE vendors SET subscription_status = $1 WHERE id = $2`

	result, err := r.db.ExecContext(ctx, query, status, id)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrVendorNotFound
	}

	return nil
}

// MarkExpired flips active vendors whose expiry date has passed to expired
// and returns how many rows changed.
func (r *VendorRepository) MarkExpired(ctx context.Context, now time.Time) (int64, error) {
	query := `
		UPDATE vendors
		SET subscription_status = $1
		WHERE subscription_status = $2
		  AND subscription_expires_at IS NOT NULL
		  AND subscription_expires_at < $3
	`

	result, err := r.db.ExecContext(ctx, query, entity.SubscriptionStatusExpired, entity.SubscriptionStatusActive, now)
	if err != nil {
		return 0, err
	}

	return result.RowsAffected()
}

func (r *VendorRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM vendors`).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

func (r *VendorRepository) CountCreatedSince(ctx context.Context, since time.Time) (int64, error) {
	var count int64
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM vendors WHERE created_at >= $1`, since).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

func scanVendor(scanner rowScanner, item *entity.Vendor) error {
	var applicationID, description, email, location sql.NullString
	var tier, status, billingPeriod sql.NullString
	var billingEmail, billingName, billingPhone sql.NullString
	var startedAt, expiresAt, nextPaymentDue, lastPaymentAt sql.NullTime
	var photos []byte

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

	return nil
}
