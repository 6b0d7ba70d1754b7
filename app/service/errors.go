package service

import "errors"

var (
	ErrApplicationNotFound  = errors.New("application not found")
	ErrVendorNotFound       = errors.New("vendor not found")
	ErrUserNotFound         = errors.New("user not found")
	ErrInvalidStatus        = errors.New("invalid status")
	ErrInvalidTier          = errors.New("invalid subscription tier")
	ErrInvalidBillingPeriod = errors.New("invalid billing period")
	ErrInvalidRole          = errors.New("invalid role")
	ErrInvalidAmount        = errors.New("amount must be greater than zero")
	ErrInvalidPaymentMethod = errors.New("invalid payment method")
	ErrInvalidRequest       = errors.New("invalid request")
	ErrVendorProvisioning   = errors.New("vendor provisioning failed")
)
