package types

import (
	"errors"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/vibeventz/ms-go-vendor-admin/app/entity"
)

type UpdateVendorSubscriptionRequest struct {
	ID            string  `param:"id"`
	Tier          *string `json:"tier"`
	Status        *string `json:"status"`
	ExpiresAt     *string `json:"expires_at"`
	BillingPeriod *string `json:"billing_period"`
	BillingEmail  *string `json:"billing_email"`
	BillingName   *string `json:"billing_name"`
	BillingPhone  *string `json:"billing_phone"`
}

func NewUpdateVendorSubscriptionRequestFromContext(ctx echo.Context) (*UpdateVendorSubscriptionRequest, error) {
	var body UpdateVendorSubscriptionRequest
	if err := ctx.Bind(&body); err != nil {
		return nil, err
	}
	body.ID = strings.TrimSpace(ctx.Param("id"))
	return &body, nil
}

func (r *UpdateVendorSubscriptionRequest) Validate() error {
	if err := validateID(r.ID, "vendor id"); err != nil {
		return err
	}
	if r.Tier == nil && r.Status == nil && r.ExpiresAt == nil && r.BillingPeriod == nil &&
		r.BillingEmail == nil && r.BillingName == nil && r.BillingPhone == nil {
		return errors.New("at least one field is required")
	}
	if r.Tier != nil && !entity.IsSubscriptionTier(*r.Tier) {
		return errors.New("tier must be one of basic, premium, enterprise")
	}
	if r.Status != nil && !entity.IsSubscriptionStatus(*r.Status) {
		return errors.New("status must be one of active, inactive, cancelled, expired")
	}
	if r.BillingPeriod != nil && !entity.IsBillingPeriod(*r.BillingPeriod) {
		return errors.New("billing_period must be monthly or yearly")
	}
	if r.ExpiresAt != nil {
		if _, err := time.Parse(time.RFC3339, *r.ExpiresAt); err != nil {
			return errors.New("expires_at must be RFC3339")
		}
	}
	return nil
}

// ExpiresAtTime returns the parsed expires_at override, or nil when absent.
// Validate must have passed first.
func (r *UpdateVendorSubscriptionRequest) ExpiresAtTime() *time.Time {
	if r.ExpiresAt == nil {
		return nil
	}
	t, err := time.Parse(time.RFC3339, *r.ExpiresAt)
	if err != nil {
		return nil
	}
	return &t
}

type RecordPaymentRequest struct {
	ID            string  `param:"id"`
	Amount        float64 `json:"amount"`
	PaymentMethod string  `json:"payment_method"`
	BillingEmail  *string `json:"billing_email"`
	BillingName   *string `json:"billing_name"`
	BillingPhone  *string `json:"billing_phone"`
}

func NewRecordPaymentRequestFromContext(ctx echo.Context) (*RecordPaymentRequest, error) {
	var body RecordPaymentRequest
	if err := ctx.Bind(&body); err != nil {
		return nil, err
	}
	body.ID = strings.TrimSpace(ctx.Param("id"))
	body.PaymentMethod = strings.TrimSpace(body.PaymentMethod)
	return &body, nil
}

func (r *RecordPaymentRequest) Validate() error {
	if err := validateID(r.ID, "vendor id"); err != nil {
		return err
	}
	if r.Amount <= 0 {
		return errors.New("amount must be greater than zero")
	}
	if r.PaymentMethod != "" && !entity.IsPaymentMethod(r.PaymentMethod) {
		return errors.New("payment_method must be one of manual, payfast, bank_transfer, cash")
	}
	return nil
}

type ListVendorInvoicesRequest struct {
	ID string
}

func NewListVendorInvoicesRequestFromContext(ctx echo.Context) (*ListVendorInvoicesRequest, error) {
	return &ListVendorInvoicesRequest{ID: strings.TrimSpace(ctx.Param("id"))}, nil
}

func (r *ListVendorInvoicesRequest) Validate() error {
	return validateID(r.ID, "vendor id")
}
