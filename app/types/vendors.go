package types

import (
	"errors"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/vibeventz/ms-go-vendor-admin/app/entity"
)

type UpdateVendorStatusRequest struct {
	ID     string `param:"id"`
	Status string `json:"status"`
}

func NewUpdateVendorStatusRequestFromContext(ctx echo.Context) (*UpdateVendorStatusRequest, error) {
	var body UpdateVendorStatusRequest
	if err := ctx.Bind(&body); err != nil {
		return nil, err
	}
	body.ID = strings.TrimSpace(ctx.Param("id"))
	body.Status = strings.TrimSpace(body.Status)
	return &body, nil
}

func (r *UpdateVendorStatusRequest) Validate() error {
	if err := validateID(r.ID, "vendor id"); err != nil {
		return err
	}
	if !entity.IsSubscriptionStatus(r.Status) {
		return errors.New("status must be one of active, inactive, cancelled, expired")
	}
	return nil
}
