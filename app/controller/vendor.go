package controller

import (
	"context"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
	"github.com/vibeventz/ms-go-vendor-admin/app/dto"
	"github.com/vibeventz/ms-go-vendor-admin/app/entity"
	"github.com/vibeventz/ms-go-vendor-admin/app/factory"
	"github.com/vibeventz/ms-go-vendor-admin/app/mapper"
	"github.com/vibeventz/ms-go-vendor-admin/app/service"
	"github.com/vibeventz/ms-go-vendor-admin/app/types"
)

type vendorService interface {
	ListVendors(ctx context.Context) ([]*entity.Vendor, error)
	UpdateVendorStatus(ctx context.Context, id, status string) error
}

type VendorController struct {
	vendorService vendorService
	logger        logrus.FieldLogger
}

func NewVendorController(vendorService vendorService) *VendorController {
	return &VendorController{
		vendorService: vendorService,
		logger:        factory.NewModuleLogger("vendors-controller"),
	}
}

func (c *VendorController) ListVendors(ctx echo.Context) error {
	items, err := c.vendorService.ListVendors(ctx.Request().Context())
	if err != nil {
		c.logger.WithError(err).Error("List vendors failed")
		return writeError(ctx, http.StatusInternalServerError, "internal server error")
	}

	return ctx.JSON(http.StatusOK, &dto.ListVendorsResponse{
		Vendors: mapper.VendorsToResponse(items),
	})
}

func (c *VendorController) UpdateVendorStatus(ctx echo.Context) error {
	req, err := types.NewUpdateVendorStatusRequestFromContext(ctx)
	if err != nil {
		return writeError(ctx, http.StatusBadRequest, "invalid request body")
	}
	if err := req.Validate(); err != nil {
		return writeError(ctx, http.StatusBadRequest, err.Error())
	}

	if err := c.vendorService.UpdateVendorStatus(ctx.Request().Context(), req.ID, req.Status); err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidStatus):
			return writeError(ctx, http.StatusBadRequest, err.Error())
		case errors.Is(err, service.ErrVendorNotFound):
			return writeError(ctx, http.StatusNotFound, "vendor not found")
		default:
			c.logger.WithError(err).Error("Update vendor status failed")
			return writeError(ctx, http.StatusInternalServerError, "internal server error")
		}
	}

	return ctx.JSON(http.StatusOK, &dto.MessageResponse{Message: "Vendor status updated"})
}
