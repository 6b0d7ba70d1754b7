package controller

import (
	"context"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
	"github.com/vibeventz/ms-go-vendor-admin/app/auth"
	"github.com/vibeventz/ms-go-vendor-admin/app/dto"
	"github.com/vibeventz/ms-go-vendor-admin/app/entity"
	"github.com/vibeventz/ms-go-vendor-admin/app/factory"
	"github.com/vibeventz/ms-go-vendor-admin/app/mapper"
	"github.com/vibeventz/ms-go-vendor-admin/app/middleware"
	"github.com/vibeventz/ms-go-vendor-admin/app/service"
	"github.com/vibeventz/ms-go-vendor-admin/app/types"
)

type reviewService interface {
	ListApplications(ctx context.Context, status string) ([]*entity.Application, error)
	GetApplication(ctx context.Context, id string) (*entity.Application, error)
	ReviewApplication(ctx context.Context, reviewer auth.Identity, applicationID, newStatus, notes string) (*service.ReviewResult, error)
}

type ApplicationController struct {
	reviewService reviewService
	logger        logrus.FieldLogger
}

func NewApplicationController(reviewService reviewService) *ApplicationController {
	return &ApplicationController{
		reviewService: reviewService,
		logger:        factory.NewModuleLogger("applications-controller"),
	}
}

func (c *ApplicationController) ListApplications(ctx echo.Context) error {
	req, err := types.NewListApplicationsRequestFromContext(ctx)
	if err != nil {
		return writeError(ctx, http.StatusBadRequest, "invalid query params")
	}
	if err := req.Validate(); err != nil {
		return writeError(ctx, http.StatusBadRequest, err.Error())
	}

	items, err := c.reviewService.ListApplications(ctx.Request().Context(), req.Status)
	if err != nil {
		if errors.Is(err, service.ErrInvalidStatus) {
			return writeError(ctx, http.StatusBadRequest, err.Error())
		}
		c.logger.WithError(err).Error("List applications failed")
		return writeError(ctx, http.StatusInternalServerError, "internal server error")
	}

	return ctx.JSON(http.StatusOK, &dto.ListApplicationsResponse{
		Applications: mapper.ApplicationsToResponse(items),
	})
}

func (c *ApplicationController) GetApplication(ctx echo.Context) error {
	req, err := types.NewGetApplicationRequestFromContext(ctx)
	if err != nil {
		return writeError(ctx, http.StatusBadRequest, "invalid request")
	}
	if err := req.Validate(); err != nil {
		return writeError(ctx, http.StatusBadRequest, err.Error())
	}

	item, err := c.reviewService.GetApplication(ctx.Request().Context(), req.ID)
	if err != nil {
		if errors.Is(err, service.ErrApplicationNotFound) {
			return writeError(ctx, http.StatusNotFound, "application not found")
		}
		c.logger.WithError(err).Error("Get application failed")
		return writeError(ctx, http.StatusInternalServerError, "internal server error")
	}

	return ctx.JSON(http.StatusOK, &dto.ApplicationEnvelopeResponse{
		Application: mapper.ApplicationToResponse(item),
	})
}

func (c *ApplicationController) ReviewApplication(ctx echo.Context) error {
	req, err := types.NewReviewApplicationRequestFromContext(ctx)
	if err != nil {
		return writeError(ctx, http.StatusBadRequest, "invalid request body")
	}
	if err := req.Validate(); err != nil {
		return writeError(ctx, http.StatusBadRequest, err.Error())
	}

	reviewer, ok := middleware.IdentityFromContext(ctx)
	if !ok {
		return writeError(ctx, http.StatusUnauthorized, "missing identity")
	}

	result, err := c.reviewService.ReviewApplication(ctx.Request().Context(), reviewer, req.ID, req.Status, req.Notes)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidStatus):
			return writeError(ctx, http.StatusBadRequest, err.Error())
		case errors.Is(err, service.ErrApplicationNotFound):
			return writeError(ctx, http.StatusNotFound, "application not found")
		case errors.Is(err, service.ErrVendorProvisioning):
			factory.LoggerWithContext(c.logger, ctx).WithError(err).Error("Vendor provisioning failed")
			return writeError(ctx, http.StatusUnprocessableEntity, "vendor provisioning failed")
		default:
			c.logger.WithError(err).Error("Review application failed")
			return writeError(ctx, http.StatusInternalServerError, "internal server error")
		}
	}

	response := &dto.ReviewOutcomeResponse{
		Message:       "Application reviewed",
		Application:   mapper.ApplicationToResponse(result.Application),
		VendorCreated: result.VendorCreated,
	}
	if result.Vendor != nil {
		vendor := mapper.VendorToResponse(result.Vendor)
		response.Vendor = &vendor
	}

	return ctx.JSON(http.StatusOK, response)
}
