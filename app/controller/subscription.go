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
	"github.com/vibeventz/ms-go-vendor-admin/app/repository"
	"github.com/vibeventz/ms-go-vendor-admin/app/service"
	"github.com/vibeventz/ms-go-vendor-admin/app/types"
)

type subscriptionService interface {
	ListVendorSubscriptions(ctx context.Context) (*service.SubscriptionLedger, error)
	UpdateVendorSubscription(ctx context.Context, vendorID string, params repository.UpdateSubscriptionParams) error
	RecordPayment(ctx context.Context, vendorID string, params repository.RecordPaymentParams) error
	ListVendorInvoices(ctx context.Context, vendorID string) ([]*entity.Invoice, error)
}

type SubscriptionController struct {
	subscriptionService subscriptionService
	logger              logrus.FieldLogger
}

func NewSubscriptionController(subscriptionService subscriptionService) *SubscriptionController {
	return &SubscriptionController{
		subscriptionService: subscriptionService,
		logger:              factory.NewModuleLogger("subscriptions-controller"),
	}
}

func (c *SubscriptionController) ListVendorSubscriptions(ctx echo.Context) error {
	ledger, err := c.subscriptionService.ListVendorSubscriptions(ctx.Request().Context())
	if err != nil {
		c.logger.WithError(err).Error("List vendor subscriptions failed")
		return writeError(ctx, http.StatusInternalServerError, "internal server error")
	}

	response := mapper.SubscriptionLedgerToResponse(ledger)

	return ctx.JSON(http.StatusOK, &response)
}

func (c *SubscriptionController) UpdateVendorSubscription(ctx echo.Context) error {
	req, err := types.NewUpdateVendorSubscriptionRequestFromContext(ctx)
	if err != nil {
		return writeError(ctx, http.StatusBadRequest, "invalid request body")
	}
	if err := req.Validate(); err != nil {
		return writeError(ctx, http.StatusBadRequest, err.Error())
	}

	params := repository.UpdateSubscriptionParams{
		Tier:          req.Tier,
		Status:        req.Status,
		ExpiresAt:     req.ExpiresAtTime(),
		BillingPeriod: req.BillingPeriod,
		BillingEmail:  req.BillingEmail,
		BillingName:   req.BillingName,
		BillingPhone:  req.BillingPhone,
	}

	if err := c.subscriptionService.UpdateVendorSubscription(ctx.Request().Context(), req.ID, params); err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidTier),
			errors.Is(err, service.ErrInvalidStatus),
			errors.Is(err, service.ErrInvalidBillingPeriod):
			return writeError(ctx, http.StatusBadRequest, err.Error())
		case errors.Is(err, service.ErrVendorNotFound):
			return writeError(ctx, http.StatusNotFound, "vendor not found")
		default:
			c.logger.WithError(err).Error("Update vendor subscription failed")
			return writeError(ctx, http.StatusInternalServerError, "internal server error")
		}
	}

	return ctx.JSON(http.StatusOK, &dto.MessageResponse{Message: "Subscription updated"})
}

func (c *SubscriptionController) RecordPayment(ctx echo.Context) error {
	req, err := types.NewRecordPaymentRequestFromContext(ctx)
	if err != nil {
		return writeError(ctx, http.StatusBadRequest, "invalid request body")
	}
	if err := req.Validate(); err != nil {
		return writeError(ctx, http.StatusBadRequest, err.Error())
	}

	params := repository.RecordPaymentParams{
		Amount:        req.Amount,
		PaymentMethod: req.PaymentMethod,
		BillingEmail:  req.BillingEmail,
		BillingName:   req.BillingName,
		BillingPhone:  req.BillingPhone,
	}

	if err := c.subscriptionService.RecordPayment(ctx.Request().Context(), req.ID, params); err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidAmount), errors.Is(err, service.ErrInvalidPaymentMethod):
			return writeError(ctx, http.StatusBadRequest, err.Error())
		case errors.Is(err, service.ErrVendorNotFound):
			return writeError(ctx, http.StatusNotFound, "vendor not found")
		default:
			c.logger.WithError(err).Error("Record payment failed")
			return writeError(ctx, http.StatusInternalServerError, "internal server error")
		}
	}

	return ctx.JSON(http.StatusOK, &dto.MessageResponse{Message: "Payment recorded"})
}

func (c *SubscriptionController) ListVendorInvoices(ctx echo.Context) error {
	req, err := types.NewListVendorInvoicesRequestFromContext(ctx)
	if err != nil {
		return writeError(ctx, http.StatusBadRequest, "invalid request")
	}
	if err := req.Validate(); err != nil {
		return writeError(ctx, http.StatusBadRequest, err.Error())
	}

	items, err := c.subscriptionService.ListVendorInvoices(ctx.Request().Context(), req.ID)
	if err != nil {
		c.logger.WithError(err).Error("List vendor invoices failed")
		return writeError(ctx, http.StatusInternalServerError, "internal server error")
	}

	return ctx.JSON(http.StatusOK, &dto.ListInvoicesResponse{
		Invoices: mapper.InvoicesToResponse(items),
	})
}
