package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/vibeventz/ms-go-vendor-admin/app/entity"
)

var ErrVendorProvisionFailed = errors.New("vendor provision failed")

// ProvisioningRepository runs the approval write and the derived vendor
// insert as one store transaction, so an application can never end up
// approved without its vendor row.
type ProvisioningRepository struct {
	db *sql.DB
}

func NewProvisioningRepository(db *sql.DB) *ProvisioningRepository {
	return &ProvisioningRepository{db: db}
}

// ApproveAndProvision marks the application approved and inserts the derived
// vendor. The vendor insert is keyed on application_id; re-approving an
// already provisioned application updates the review fields and reports
// created=false. Any failure rolls back both writes.
func (r *ProvisioningRepository) ApproveAndProvision(ctx context.Context, applicationID, adminNotes, reviewedBy string, reviewedAt time.Time, vendor *entity.Vendor) (created bool, err error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return false, err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	updateQuery := `
		UPDATE subscriber_applications
		SET status = $1, admin_notes = $2, reviewed_by = $3, reviewed_at = $4, updated_at = $5
		WHERE id = $6
	`

	result, err := tx.ExecContext(ctx, updateQuery,
		entity.ApplicationStatusApproved,
		adminNotes,
		reviewedBy,
		reviewedAt,
		time.Now().UTC(),
		applicationID,
	)
	if err != nil {
		return false, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	if affected == 0 {
		err = ErrApplicationNotFound
		return false, err
	}

	photos, err := jsonValue(vendor.AdditionalPhotos)
	if err != nil {
		return false, err
	}

	insertQuery := `
		INSERT INTO vendors (
			user_id, application_id, name, description, email, location,
			subscription_tier, subscription_status, additional_photos
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (application_id) DO NOTHING
		RETURNING id, created_at
	`

	err = tx.QueryRowContext(ctx, insertQuery,
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
	switch {
	case err == sql.ErrNoRows:
		// Vendor was provisioned by an earlier approval.
		created = false
		err = nil
	case err != nil:
		return false, fmt.Errorf("%w: %v", ErrVendorProvisionFailed, err)
	default:
		created = true
	}

	if err = tx.Commit(); err != nil {
		return false, err
	}

	return created, nil
}
