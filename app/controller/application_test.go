package controller

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/vibeventz/ms-go-vendor-admin/app/auth"
	"github.com/vibeventz/ms-go-vendor-admin/app/entity"
	"github.com/vibeventz/ms-go-vendor-admin/app/service"
)

const testApplicationID = "9b2f8c64-1f4a-4c62-9d5a-0d5d8c2f4e7a"

type mockReviewService struct {
	listFn   func(ctx context.Context, status string) ([]*entity.Application, error)
	getFn    func(ctx context.Context, id string) (*entity.Application, error)
	reviewFn func(ctx context.Context, reviewer auth.Identity, applicationID, newStatus, notes string) (*service.ReviewResult, error)
}

func (m *mockReviewService) ListApplications(ctx context.Context, status string) ([]*entity.Application, error) {
	if m.listFn != nil {
		return m.listFn(ctx, status)
	}
	return nil, nil
}

func (m *mockReviewService) GetApplication(ctx context.Context, id string) (*entity.Application, error) {
	if m.getFn != nil {
		return m.getFn(ctx, id)
	}
	return nil, nil
}

func (m *mockReviewService) ReviewApplication(ctx context.Context, reviewer auth.Identity, applicationID, newStatus, notes string) (*service.ReviewResult, error) {
	if m.reviewFn != nil {
		return m.reviewFn(ctx, reviewer, applicationID, newStatus, notes)
	}
	return nil, nil
}

func reviewContext(t *testing.T, body string, withIdentity bool) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/applications/"+testApplicationID+"/review", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	ctx := e.NewContext(req, rec)
	ctx.SetParamNames("id")
	ctx.SetParamValues(testApplicationID)

	if withIdentity {
		ctx.Set("identity", auth.Identity{UserID: "admin-1", Role: entity.RoleAdmin})
	}

	return ctx, rec
}

func TestReviewApplicationApproval(t *testing.T) {
	var gotReviewer auth.Identity
	c := NewApplicationController(&mockReviewService{
		reviewFn: func(_ context.Context, reviewer auth.Identity, applicationID, newStatus, notes string) (*service.ReviewResult, error) {
			gotReviewer = reviewer
			if applicationID != testApplicationID || newStatus != entity.ApplicationStatusApproved {
				t.Fatalf("unexpected args %q %q", applicationID, newStatus)
			}
			return &service.ReviewResult{
				Application:   &entity.Application{ID: applicationID, Status: newStatus},
				Vendor:        &entity.Vendor{ID: "v-1", Name: "Sunset Catering"},
				VendorCreated: true,
			}, nil
		},
	})

	ctx, rec := reviewContext(t, `{"status":"approved","notes":"ok"}`, true)
	if err := c.ReviewApplication(ctx); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if gotReviewer.UserID != "admin-1" {
		t.Fatalf("expected request identity passed through, got %+v", gotReviewer)
	}

	var payload map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
		t.Fatalf("invalid response json: %v", err)
	}
	if payload["vendor_created"] != true {
		t.Fatalf("expected vendor_created true, got %v", payload["vendor_created"])
	}
	if payload["vendor"] == nil {
		t.Fatal("expected vendor in response")
	}
}

func TestReviewApplicationWithoutIdentity(t *testing.T) {
	c := NewApplicationController(&mockReviewService{})

	ctx, rec := reviewContext(t, `{"status":"approved"}`, false)
	if err := c.ReviewApplication(ctx); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestReviewApplicationInvalidStatus(t *testing.T) {
	c := NewApplicationController(&mockReviewService{})

	ctx, rec := reviewContext(t, `{"status":"archived"}`, true)
	if err := c.ReviewApplication(ctx); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestReviewApplicationNotFound(t *testing.T) {
	c := NewApplicationController(&mockReviewService{
		reviewFn: func(_ context.Context, _ auth.Identity, _, _, _ string) (*service.ReviewResult, error) {
			return nil, service.ErrApplicationNotFound
		},
	})

	ctx, rec := reviewContext(t, `{"status":"approved"}`, true)
	if err := c.ReviewApplication(ctx); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestReviewApplicationProvisioningFailure(t *testing.T) {
	c := NewApplicationController(&mockReviewService{
		reviewFn: func(_ context.Context, _ auth.Identity, _, _, _ string) (*service.ReviewResult, error) {
			return nil, service.ErrVendorProvisioning
		},
	})

	ctx, rec := reviewContext(t, `{"status":"approved"}`, true)
	if err := c.ReviewApplication(ctx); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", rec.Code)
	}
}

func TestListApplicationsFiltersByStatus(t *testing.T) {
	c := NewApplicationController(&mockReviewService{
		listFn: func(_ context.Context, status string) ([]*entity.Application, error) {
			if status != entity.ApplicationStatusPending {
				t.Fatalf("expected pending filter, got %q", status)
			}
			return []*entity.Application{{ID: "app-1", Status: status}}, nil
		},
	})

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/applications?status=pending", nil)
	rec := httptest.NewRecorder()
	ctx := e.NewContext(req, rec)

	if err := c.ListApplications(ctx); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"app-1"`) {
		t.Fatalf("expected application in body, got %s", rec.Body.String())
	}
}

func TestGetApplicationNotFound(t *testing.T) {
	c := NewApplicationController(&mockReviewService{
		getFn: func(_ context.Context, _ string) (*entity.Application, error) {
			return nil, service.ErrApplicationNotFound
		},
	})

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/applications/"+testApplicationID, nil)
	rec := httptest.NewRecorder()
	ctx := e.NewContext(req, rec)
	ctx.SetParamNames("id")
	ctx.SetParamValues(testApplicationID)

	if err := c.GetApplication(ctx); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}
