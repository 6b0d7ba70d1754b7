package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/vibeventz/ms-go-vendor-admin/app/auth"
	"github.com/vibeventz/ms-go-vendor-admin/app/entity"
	"github.com/vibeventz/ms-go-vendor-admin/app/repository"
)

type mockApplicationRepo struct {
	listFn                      func(ctx context.Context, status string) ([]*entity.Application, error)
	listRecentFn                func(ctx context.Context, limit int) ([]*entity.Application, error)
	listApprovedWithoutVendorFn func(ctx context.Context) ([]*entity.Application, error)
	findByIDFn                  func(ctx context.Context, id string) (*entity.Application, error)
	updateReviewFn              func(ctx context.Context, id, status, adminNotes string, reviewedBy *string, reviewedAt *time.Time) error
}

func (m *mockApplicationRepo) List(ctx context.Context, status string) ([]*entity.Application, error) {
	if m.listFn != nil {
		return m.listFn(ctx, status)
	}
	return nil, nil
}

func (m *mockApplicationRepo) ListRecent(ctx context.Context, limit int) ([]*entity.Application, error) {
	if m.listRecentFn != nil {
		return m.listRecentFn(ctx, limit)
	}
	return nil, nil
}

func (m *mockApplicationRepo) ListApprovedWithoutVendor(ctx context.Context) ([]*entity.Application, error) {
	if m.listApprovedWithoutVendorFn != nil {
		return m.listApprovedWithoutVendorFn(ctx)
	}
	return nil, nil
}

func (m *mockApplicationRepo) FindByID(ctx context.Context, id string) (*entity.Application, error) {
	if m.findByIDFn != nil {
		return m.findByIDFn(ctx, id)
	}
	return nil, nil
}

func (m *mockApplicationRepo) UpdateReview(ctx context.Context, id, status, adminNotes string, reviewedBy *string, reviewedAt *time.Time) error {
	if m.updateReviewFn != nil {
		return m.updateReviewFn(ctx, id, status, adminNotes, reviewedBy, reviewedAt)
	}
	return nil
}

type mockProvisioningRepo struct {
	approveFn   func(ctx context.Context, applicationID, adminNotes, reviewedBy string, reviewedAt time.Time, vendor *entity.Vendor) (bool, error)
	calledCount int
}

func (m *mockProvisioningRepo) ApproveAndProvision(ctx context.Context, applicationID, adminNotes, reviewedBy string, reviewedAt time.Time, vendor *entity.Vendor) (bool, error) {
	m.calledCount++
	if m.approveFn != nil {
		return m.approveFn(ctx, applicationID, adminNotes, reviewedBy, reviewedAt, vendor)
	}
	return true, nil
}

type mockVendorWriter struct {
	createFn    func(ctx context.Context, vendor *entity.Vendor) error
	calledCount int
}

func (m *mockVendorWriter) Create(ctx context.Context, vendor *entity.Vendor) error {
	m.calledCount++
	if m.createFn != nil {
		return m.createFn(ctx, vendor)
	}
	return nil
}

func testReviewer() auth.Identity {
	return auth.Identity{UserID: "admin-1", AuthUserID: "auth-1", Email: "admin@example.com", Role: entity.RoleAdmin}
}

func pendingApplication() *entity.Application {
	return &entity.Application{
		ID:     "app-1",
		UserID: "user-1",
		CompanyDetails: entity.CompanyDetails{
			TradingName:             "Sunset Catering",
			Email:                   "owner@sunset.example",
			BusinessPhysicalAddress: "12 Beach Rd",
		},
		BusinessDescription: "Event catering",
		PortfolioImages:     []string{"a.jpg"},
		SubscriptionTier:    entity.TierBasic,
		Status:              entity.ApplicationStatusPending,
	}
}

func TestListApplicationsRejectsInvalidStatus(t *testing.T) {
	listCalls := 0
	svc := NewReviewService(
		&mockApplicationRepo{listFn: func(_ context.Context, _ string) ([]*entity.Application, error) {
			listCalls++
			return nil, nil
		}},
		&mockProvisioningRepo{},
		&mockVendorWriter{},
	)

	_, err := svc.ListApplications(context.Background(), "archived")
	if !errors.Is(err, ErrInvalidStatus) {
		t.Fatalf("expected ErrInvalidStatus, got %v", err)
	}
	if listCalls != 0 {
		t.Fatalf("expected no store reads, got %d", listCalls)
	}
}

func TestGetApplicationNotFound(t *testing.T) {
	svc := NewReviewService(&mockApplicationRepo{}, &mockProvisioningRepo{}, &mockVendorWriter{})

	_, err := svc.GetApplication(context.Background(), "missing")
	if !errors.Is(err, ErrApplicationNotFound) {
		t.Fatalf("expected ErrApplicationNotFound, got %v", err)
	}
}

func TestReviewApplicationApprovalProvisionsVendor(t *testing.T) {
	app := pendingApplication()
	var gotVendor *entity.Vendor
	provisioning := &mockProvisioningRepo{
		approveFn: func(_ context.Context, applicationID, _, reviewedBy string, _ time.Time, vendor *entity.Vendor) (bool, error) {
			if applicationID != "app-1" {
				t.Fatalf("unexpected application id %q", applicationID)
			}
			if reviewedBy != "admin-1" {
				t.Fatalf("unexpected reviewer %q", reviewedBy)
			}
			gotVendor = vendor
			vendor.ID = "v-1"
			return true, nil
		},
	}

	svc := NewReviewService(
		&mockApplicationRepo{findByIDFn: func(_ context.Context, _ string) (*entity.Application, error) {
			return app, nil
		}},
		provisioning,
		&mockVendorWriter{},
	)

	result, err := svc.ReviewApplication(context.Background(), testReviewer(), "app-1", entity.ApplicationStatusApproved, "looks good")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !result.VendorCreated {
		t.Fatal("expected vendor to be created")
	}
	if result.Vendor == nil || result.Vendor.ID != "v-1" {
		t.Fatalf("expected provisioned vendor, got %+v", result.Vendor)
	}
	if gotVendor.Name != "Sunset Catering" {
		t.Fatalf("expected derived name, got %q", gotVendor.Name)
	}
	if gotVendor.ApplicationID == nil || *gotVendor.ApplicationID != "app-1" {
		t.Fatal("expected application id on derived vendor")
	}
	if gotVendor.SubscriptionStatus == nil || *gotVendor.SubscriptionStatus != entity.SubscriptionStatusActive {
		t.Fatal("expected derived vendor to start active")
	}
	if result.Application.Status != entity.ApplicationStatusApproved {
		t.Fatalf("expected approved status, got %q", result.Application.Status)
	}
	if result.Application.ReviewedAt == nil || result.Application.ReviewedBy == nil {
		t.Fatal("expected review stamp on approval")
	}
}

func TestReviewApplicationDerivesNameFromRegisteredBusinessName(t *testing.T) {
	app := pendingApplication()
	app.CompanyDetails.TradingName = ""
	app.CompanyDetails.RegisteredBusinessName = "Sunset Catering (Pty) Ltd"

	var gotVendor *entity.Vendor
	provisioning := &mockProvisioningRepo{
		approveFn: func(_ context.Context, _, _, _ string, _ time.Time, vendor *entity.Vendor) (bool, error) {
			gotVendor = vendor
			return true, nil
		},
	}

	svc := NewReviewService(
		&mockApplicationRepo{findByIDFn: func(_ context.Context, _ string) (*entity.Application, error) {
			return app, nil
		}},
		provisioning,
		&mockVendorWriter{},
	)

	if _, err := svc.ReviewApplication(context.Background(), testReviewer(), "app-1", entity.ApplicationStatusApproved, ""); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if gotVendor.Name != "Sunset Catering (Pty) Ltd" {
		t.Fatalf("expected registered business name fallback, got %q", gotVendor.Name)
	}
}

func TestReviewApplicationApprovalFailsWithoutBusinessName(t *testing.T) {
	app := pendingApplication()
	app.CompanyDetails = entity.CompanyDetails{}

	provisioning := &mockProvisioningRepo{}
	svc := NewReviewService(
		&mockApplicationRepo{findByIDFn: func(_ context.Context, _ string) (*entity.Application, error) {
			return app, nil
		}},
		provisioning,
		&mockVendorWriter{},
	)

	_, err := svc.ReviewApplication(context.Background(), testReviewer(), "app-1", entity.ApplicationStatusApproved, "")
	if !errors.Is(err, ErrVendorProvisioning) {
		t.Fatalf("expected ErrVendorProvisioning, got %v", err)
	}
	if provisioning.calledCount != 0 {
		t.Fatalf("expected no store writes, got %d", provisioning.calledCount)
	}
}

func TestReviewApplicationReApprovalIsIdempotent(t *testing.T) {
	app := pendingApplication()
	app.Status = entity.ApplicationStatusApproved

	provisioning := &mockProvisioningRepo{
		approveFn: func(_ context.Context, _, _, _ string, _ time.Time, _ *entity.Vendor) (bool, error) {
			return false, nil
		},
	}

	svc := NewReviewService(
		&mockApplicationRepo{findByIDFn: func(_ context.Context, _ string) (*entity.Application, error) {
			return app, nil
		}},
		provisioning,
		&mockVendorWriter{},
	)

	result, err := svc.ReviewApplication(context.Background(), testReviewer(), "app-1", entity.ApplicationStatusApproved, "")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if result.VendorCreated {
		t.Fatal("expected re-approval to skip vendor creation")
	}
}

func TestReviewApplicationRejectionStampsReviewer(t *testing.T) {
	app := pendingApplication()
	var gotReviewedBy *string
	var gotReviewedAt *time.Time

	svc := NewReviewService(
		&mockApplicationRepo{
			findByIDFn: func(_ context.Context, _ string) (*entity.Application, error) {
				return app, nil
			},
			updateReviewFn: func(_ context.Context, _, status, _ string, reviewedBy *string, reviewedAt *time.Time) error {
				if status != entity.ApplicationStatusRejected {
					t.Fatalf("unexpected status %q", status)
				}
				gotReviewedBy = reviewedBy
				gotReviewedAt = reviewedAt
				return nil
			},
		},
		&mockProvisioningRepo{},
		&mockVendorWriter{},
	)

	if _, err := svc.ReviewApplication(context.Background(), testReviewer(), "app-1", entity.ApplicationStatusRejected, "incomplete docs"); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if gotReviewedBy == nil || *gotReviewedBy != "admin-1" {
		t.Fatal("expected reviewer stamp on rejection")
	}
	if gotReviewedAt == nil {
		t.Fatal("expected reviewed_at stamp on rejection")
	}
}

func TestReviewApplicationBackToUnderReviewClearsStamp(t *testing.T) {
	app := pendingApplication()
	var gotReviewedBy *string
	var gotReviewedAt *time.Time

	svc := NewReviewService(
		&mockApplicationRepo{
			findByIDFn: func(_ context.Context, _ string) (*entity.Application, error) {
				return app, nil
			},
			updateReviewFn: func(_ context.Context, _, _, _ string, reviewedBy *string, reviewedAt *time.Time) error {
				gotReviewedBy = reviewedBy
				gotReviewedAt = reviewedAt
				return nil
			},
		},
		&mockProvisioningRepo{},
		&mockVendorWriter{},
	)

	if _, err := svc.ReviewApplication(context.Background(), testReviewer(), "app-1", entity.ApplicationStatusUnderReview, ""); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if gotReviewedBy != nil || gotReviewedAt != nil {
		t.Fatal("expected no review stamp for under_review")
	}
}

func TestReviewApplicationNotFound(t *testing.T) {
	svc := NewReviewService(&mockApplicationRepo{}, &mockProvisioningRepo{}, &mockVendorWriter{})

	_, err := svc.ReviewApplication(context.Background(), testReviewer(), "missing", entity.ApplicationStatusApproved, "")
	if !errors.Is(err, ErrApplicationNotFound) {
		t.Fatalf("expected ErrApplicationNotFound, got %v", err)
	}
}

func TestVendorReconciliationBatchSkipsExisting(t *testing.T) {
	appWithVendor := pendingApplication()
	appWithVendor.ID = "app-existing"
	appBroken := pendingApplication()
	appBroken.ID = "app-broken"
	appBroken.CompanyDetails = entity.CompanyDetails{}
	appFresh := pendingApplication()
	appFresh.ID = "app-fresh"

	var createdFor []string
	writer := &mockVendorWriter{createFn: func(_ context.Context, vendor *entity.Vendor) error {
		if vendor.ApplicationID != nil && *vendor.ApplicationID == "app-existing" {
			return repository.ErrVendorAlreadyExists
		}
		createdFor = append(createdFor, *vendor.ApplicationID)
		return nil
	}}

	svc := NewReviewService(
		&mockApplicationRepo{listApprovedWithoutVendorFn: func(_ context.Context) ([]*entity.Application, error) {
			return []*entity.Application{appWithVendor, appBroken, appFresh}, nil
		}},
		&mockProvisioningRepo{},
		writer,
	)

	if err := svc.RunVendorReconciliationBatch(context.Background()); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(createdFor) != 1 || createdFor[0] != "app-fresh" {
		t.Fatalf("expected only app-fresh provisioned, got %v", createdFor)
	}
}
