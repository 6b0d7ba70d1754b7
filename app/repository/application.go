package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/vibeventz/ms-go-vendor-admin/app/entity"
)

var ErrApplicationNotFound = errors.New("application not found")

const applicationColumns = `id, user_id, portfolio_type, company_details, service_categories,
       coverage_provinces, coverage_cities, business_description,
       portfolio_images, portfolio_videos, business_documents,
       subscription_tier, terms_accepted, privacy_accepted, marketing_consent,
       status, admin_notes, reviewed_by, reviewed_at, created_at, updated_at`

type ApplicationRepository struct {
	db DBTX
}

func NewApplicationRepository(db DBTX) *ApplicationRepository {
	return &ApplicationRepository{db: db}
}

func (r *ApplicationRepository) List(ctx context.Context, status string) ([]*entity.Application, error) {
	query := `
		SELECT ` + applicationColumns + `
		FROM subscriber_applications
	`

	args := make([]interface{}, 0, 1)
	if strings.TrimSpace(status) != "" {
		query += " WHERE status = $1"
		args = append(args, status)
	}
	query += " ORDER BY created_at DESC"

	return r.listByQuery(ctx, query, args...)
}

func (r *ApplicationRepository) ListRecent(ctx context.Context, limit int) ([]*entity.Application, error) {
	query := `
		SELECT ` + applicationColumns + `
		FROM subscriber_applications
		ORDER BY created_at DESC
		LIMIT $1
	`

	return r.listByQuery(ctx, query, limit)
}

// ListApprovedWithoutVendor returns approved applications that never got a
// vendor row, i.e. leftovers of the old non-transactional approval path.
func (r *ApplicationRepository) ListApprovedWithoutVendor(ctx context.Context) ([]*entity.Application, error) {
	query := `
		SELECT ` + applicationColumns + `
		FROM subscriber_applications a
		WHERE a.status = $1
		  AND NOT EXISTS (SELECT 1 FROM vendors v WHERE v.application_id = a.id)
		ORDER BY a.created_at ASC
	`

	return r.listByQuery(ctx, query, entity.ApplicationStatusApproved)
}

func (r *ApplicationRepository) FindByID(ctx context.Context, id string) (*entity.Application, error) {
	query := `
		SELECT ` + applicationColumns + `
		FROM subscriber_applications
		WHERE id = $1
	`

	item := &entity.Application{}
	if err := scanApplication(
		r.db.QueryRowContext(ctx, query, id),
		item,
	); err == sql.ErrNoRows {
		return nil, nil
	} else if err != nil {
		return nil, err
	}

	return item, nil
}

// UpdateReview writes the review outcome onto an application. reviewedBy and
// reviewedAt are nil for transitions back into pending/under_review.
func (r *ApplicationRepository) UpdateReview(ctx context.Context, id, status, adminNotes string, reviewedBy *string, reviewedAt *time.Time) error {
	query := `
		UPDATE subscriber_applications
		SET status = $1, admin_notes = $2, reviewed_by = $3, reviewed_at = $4, updated_at = $5
		WHERE id = $6
	`

	result, err := r.db.ExecContext(ctx, query,
		status,
		adminNotes,
		nullableStringValue(reviewedBy),
		nullableTimeValue(reviewedAt),
		time.Now().UTC(),
		id,
	)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrApplicationNotFound
	}

	return nil
}

func (r *ApplicationRepository) Count(ctx context.Context) (int64, error) {
	return r.countByQuery(ctx, `SELECT COUNT(*) FROM subscriber_applications`)
}

func (r *ApplicationRepository) CountByStatus(ctx context.Context, status string) (int64, error) {
	return r.countByQuery(ctx, `SELECT COUNT(*) FROM subscriber_applications WHERE status = $1`, status)
}

func (r *ApplicationRepository) CountCreatedSince(ctx context.Context, since time.Time) (int64, error) {
	return r.countByQuery(ctx, `SELECT COUNT(*) FROM subscriber_applications WHERE created_at >= $1`, since)
}

func (r *ApplicationRepository) listByQuery(ctx context.Context, query string, args ...interface{}) ([]*entity.Application, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]*entity.Application, 0)
	for rows.Next() {
		item := &entity.Application{}
		if err := scanApplication(rows, item); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}

func (r *ApplicationRepository) countByQuery(ctx context.Context, query string, args ...interface{}) (int64, error) {
	var count int64
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

func scanApplication(scanner rowScanner, item *entity.Application) error {
	var companyDetails []byte
	var serviceCategories []byte
	var coverageProvinces []byte
	var coverageCities []byte
	var portfolioImages []byte
	var portfolioVideos []byte
	var businessDocuments []byte
	var portfolioType sql.NullString
	var businessDescription sql.NullString
	var subscriptionTier sql.NullString
	var adminNotes sql.NullString
	var reviewedBy sql.NullString
	var reviewedAt sql.NullTime

	err := scanner.Scan(
		&item.ID,
		&item.UserID,
		&portfolioType,
		&companyDetails,
		&serviceCategories,
		&coverageProvinces,
		&coverageCities,
		&businessDescription,
		&portfolioImages,
		&portfolioVideos,
		&businessDocuments,
		&subscriptionTier,
		&item.TermsAccepted,
		&item.PrivacyAccepted,
		&item.MarketingConsent,
		&item.Status,
		&adminNotes,
		&reviewedBy,
		&reviewedAt,
		&item.CreatedAt,
		&item.UpdatedAt,
	)
	if err != nil {
		return err
	}

	if err := jsonColumn(companyDetails, &item.CompanyDetails); err != nil {
		return err
	}
	if err := jsonColumn(serviceCategories, &item.ServiceCategories); err != nil {
		return err
	}
	if err := jsonColumn(coverageProvinces, &item.CoverageProvinces); err != nil {
		return err
	}
	if err := jsonColumn(coverageCities, &item.CoverageCities); err != nil {
		return err
	}
	if err := jsonColumn(portfolioImages, &item.PortfolioImages); err != nil {
		return err
	}
	if err := jsonColumn(portfolioVideos, &item.PortfolioVideos); err != nil {
		return err
	}
	if err := jsonColumn(businessDocuments, &item.BusinessDocuments); err != nil {
		return err
	}

	item.PortfolioType = portfolioType.String
	item.BusinessDescription = businessDescription.String
	item.SubscriptionTier = subscriptionTier.String
	item.AdminNotes = stringPtr(adminNotes)
	item.ReviewedBy = stringPtr(reviewedBy)
	item.ReviewedAt = timePtr(reviewedAt)

	return nil
}
