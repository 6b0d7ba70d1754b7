package controller

import (
	"context"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
	"github.com/vibeventz/ms-go-vendor-admin/app/factory"
	"github.com/vibeventz/ms-go-vendor-admin/app/mapper"
	"github.com/vibeventz/ms-go-vendor-admin/app/service"
	"github.com/vibeventz/ms-go-vendor-admin/app/types"
)

type dashboardService interface {
	Stats(ctx context.Context) (*service.DashboardStats, error)
	Analytics(ctx context.Context, windowDays int) (*service.AnalyticsReport, error)
}

type DashboardController struct {
	dashboardService dashboardService
	logger           logrus.FieldLogger
}

func NewDashboardController(dashboardService dashboardService) *DashboardController {
	return &DashboardController{
		dashboardService: dashboardService,
		logger:           factory.NewModuleLogger("dashboard-controller"),
	}
}

func (c *DashboardController) Stats(ctx echo.Context) error {
	stats, err := c.dashboardService.Stats(ctx.Request().Context())
	if err != nil {
		c.logger.WithError(err).Error("Dashboard stats failed")
		return writeError(ctx, http.StatusInternalServerError, "internal server error")
	}

	response := mapper.DashboardStatsToResponse(stats)

	return ctx.JSON(http.StatusOK, &response)
}

func (c *DashboardController) Analytics(ctx echo.Context) error {
	req, err := types.NewAnalyticsRequestFromContext(ctx)
	if err != nil {
		return writeError(ctx, http.StatusBadRequest, "invalid query params")
	}
	if err := req.Validate(); err != nil {
		return writeError(ctx, http.StatusBadRequest, err.Error())
	}

	report, err := c.dashboardService.Analytics(ctx.Request().Context(), req.WindowDays)
	if err != nil {
		if errors.Is(err, service.ErrInvalidRequest) {
			return writeError(ctx, http.StatusBadRequest, err.Error())
		}
		c.logger.WithError(err).Error("Dashboard analytics failed")
		return writeError(ctx, http.StatusInternalServerError, "internal server error")
	}

	response := mapper.AnalyticsToResponse(report)

	return ctx.JSON(http.StatusOK, &response)
}
