package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vibeventz/ms-go-vendor-admin/app/auth"
	"github.com/vibeventz/ms-go-vendor-admin/app/entity"
	"github.com/vibeventz/ms-go-vendor-admin/app/factory"
	"github.com/vibeventz/ms-go-vendor-admin/app/repository"
)

type applicationRepository interface {
	List(ctx context.Context, status string) ([]*entity.Application, error)
	ListRecent(ctx context.Context, limit int) ([]*entity.Application, error)
	ListApprovedWithoutVendor(ctx context.Context) ([]*entity.Application, error)
	FindByID(ctx context.Context, id string) (*entity.Application, error)
	UpdateReview(ctx context.Context, id, status, adminNotes string, reviewedBy *string, reviewedAt *time.Time) error
}

type provisioningRepository interface {
	ApproveAndProvision(ctx context.Context, applicationID, adminNotes, reviewedBy string, reviewedAt time.Time, vendor *entity.Vendor) (bool, error)
}

type vendorWriter interface {
	Create(ctx context.Context, vendor *entity.Vendor) error
}

// ReviewResult reports the outcome of a review decision. Vendor is non-nil
// only when the decision was an approval; VendorCreated distinguishes a fresh
// provision from a re-approval of an already provisioned application.
type ReviewResult struct {
	Application   *entity.Application
	Vendor        *entity.Vendor
	VendorCreated bool
}

type ReviewService struct {
	applicationRepo  applicationRepository
	provisioningRepo provisioningRepository
	vendorRepo       vendorWriter
	logger           logrus.FieldLogger
}

func NewReviewService(
	applicationRepo applicationRepository,
	provisioningRepo provisioningRepository,
	vendorRepo vendorWriter,
) *ReviewService {
	return &ReviewService{
		applicationRepo:  applicationRepo,
		provisioningRepo: provisioningRepo,
		vendorRepo:       vendorRepo,
		logger:           factory.NewModuleLogger("review-service"),
	}
}

func (s *ReviewService) ListApplications(ctx context.Context, status string) ([]*entity.Application, error) {
	status = strings.TrimSpace(status)
	if status != "" && !entity.IsApplicationStatus(status) {
		return nil, ErrInvalidStatus
	}

	return s.applicationRepo.List(ctx, status)
}

func (s *ReviewService) GetApplication(ctx context.Context, id string) (*entity.Application, error) {
	app, err := s.applicationRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if app == nil {
		return nil, ErrApplicationNotFound
	}
	return app, nil
}

// ReviewApplication applies an admin decision to an application. Approval
// additionally derives and inserts the vendor row in the same store
// transaction, so a failed derivation rolls the status write back instead of
// stranding an approved application without a vendor.
func (s *ReviewService) ReviewApplication(ctx context.Context, reviewer auth.Identity, applicationID, newStatus, notes string) (*ReviewResult, error) {
	if !entity.IsApplicationStatus(newStatus) {
		return nil, ErrInvalidStatus
	}

	app, err := s.applicationRepo.FindByID(ctx, applicationID)
	if err != nil {
		return nil, err
	}
	if app == nil {
		return nil, ErrApplicationNotFound
	}

	now := time.Now().UTC()
	result := &ReviewResult{Application: app}

	if newStatus == entity.ApplicationStatusApproved {
		vendor, err := vendorFromApplication(app)
		if err != nil {
			return nil, err
		}

		created, err := s.provisioningRepo.ApproveAndProvision(ctx, app.ID, notes, reviewer.UserID, now, vendor)
		if err != nil {
			if errors.Is(err, repository.ErrApplicationNotFound) {
				return nil, ErrApplicationNotFound
			}
			if errors.Is(err, repository.ErrVendorProvisionFailed) {
				return nil, fmt.Errorf("%w: %v", ErrVendorProvisioning, err)
			}
			return nil, err
		}

		app.Status = newStatus
		app.AdminNotes = &notes
		app.ReviewedBy = &reviewer.UserID
		app.ReviewedAt = &now
		result.Vendor = vendor
		result.VendorCreated = created
		if !created {
			s.logger.WithField("application_id", app.ID).Info("Re-approval skipped vendor creation")
		}
		return result, nil
	}

	var reviewedBy *string
	var reviewedAt *time.Time
	if entity.IsReviewDecision(newStatus) {
		reviewedBy = &reviewer.UserID
		reviewedAt = &now
	}

	if err := s.applicationRepo.UpdateReview(ctx, app.ID, newStatus, notes, reviewedBy, reviewedAt); err != nil {
		if errors.Is(err, repository.ErrApplicationNotFound) {
			return nil, ErrApplicationNotFound
		}
		return nil, err
	}

	app.Status = newStatus
	app.AdminNotes = &notes
	app.ReviewedBy = reviewedBy
	app.ReviewedAt = reviewedAt

	return result, nil
}

// RunVendorReconciliationBatch provisions vendors for approved applications
// that have none, healing rows left behind by the old two-step approval.
func (s *ReviewService) RunVendorReconciliationBatch(ctx context.Context) error {
	items, err := s.applicationRepo.ListApprovedWithoutVendor(ctx)
	if err != nil {
		return err
	}

	for _, app := range items {
		l := s.logger.WithField("application_id", app.ID)

		vendor, err := vendorFromApplication(app)
		if err != nil {
			l.WithError(err).Error("Cannot reconcile application")
			continue
		}

		if err := s.vendorRepo.Create(ctx, vendor); err != nil {
			if errors.Is(err, repository.ErrVendorAlreadyExists) {
				continue
			}
			l.WithError(err).Error("Vendor reconciliation insert failed")
			continue
		}

		l.WithField("vendor_id", vendor.ID).Info("Provisioned missing vendor")
	}

	return nil
}

// vendorFromApplication derives the vendor row created on approval. The name
// falls back from the trading name to the registered business name; an
// application carrying neither cannot be provisioned.
func vendorFromApplication(app *entity.Application) (*entity.Vendor, error) {
	name := app.CompanyDetails.DisplayName()
	if name == "" {
		return nil, fmt.Errorf("%w: application %s has no trading or registered business name", ErrVendorProvisioning, app.ID)
	}

	applicationID := app.ID
	status := entity.SubscriptionStatusActive
	vendor := &entity.Vendor{
		UserID:             app.UserID,
		ApplicationID:      &applicationID,
		Name:               name,
		SubscriptionStatus: &status,
		AdditionalPhotos:   app.PortfolioImages,
	}

	if v := strings.TrimSpace(app.BusinessDescription); v != "" {
		vendor.Description = &v
	}
	if v := strings.TrimSpace(app.CompanyDetails.Email); v != "" {
		vendor.Email = &v
	}
	if v := strings.TrimSpace(app.CompanyDetails.BusinessPhysicalAddress); v != "" {
		vendor.Location = &v
	}
	if v := strings.TrimSpace(app.SubscriptionTier); v != "" {
		vendor.SubscriptionTier = &v
	}

	return vendor, nil
}
