package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vibeventz/ms-go-vendor-admin/app/entity"
	"github.com/vibeventz/ms-go-vendor-admin/app/factory"
	"github.com/vibeventz/ms-go-vendor-admin/app/repository"
)

type subscriptionRepository interface {
	ListVendorSubscriptions(ctx context.Context) ([]*entity.VendorSubscription, error)
	UpdateVendorSubscription(ctx context.Context, vendorID string, params repository.UpdateSubscriptionParams) error
	RecordPayment(ctx context.Context, vendorID string, params repository.RecordPaymentParams) error
}

type vendorReader interface {
	List(ctx context.Context) ([]*entity.Vendor, error)
	MarkExpired(ctx context.Context, now time.Time) (int64, error)
}

type invoiceRepository interface {
	ListByVendor(ctx context.Context, vendorID string) ([]*entity.Invoice, error)
}

// LedgerSummary aggregates the subscription ledger for the dashboard header.
type LedgerSummary struct {
	TotalVendors  int
	ActiveVendors int
	ExpiringSoon  int
	TotalRevenue  float64
}

// SubscriptionLedger is the admin view over all vendor subscriptions.
// Degraded is set when the store procedure was unavailable and the list was
// rebuilt from the plain vendors table, without derived billing figures.
type SubscriptionLedger struct {
	Subscriptions []*entity.VendorSubscription
	Summary       LedgerSummary
	Degraded      bool
}

type SubscriptionService struct {
	subscriptionRepo subscriptionRepository
	vendorRepo       vendorReader
	invoiceRepo      invoiceRepository
	logger           logrus.FieldLogger
}

func NewSubscriptionService(
	subscriptionRepo subscriptionRepository,
	vendorRepo vendorReader,
	invoiceRepo invoiceRepository,
) *SubscriptionService {
	return &SubscriptionService{
		subscriptionRepo: subscriptionRepo,
		vendorRepo:       vendorRepo,
		invoiceRepo:      invoiceRepo,
		logger:           factory.NewModuleLogger("subscription-service"),
	}
}

// ListVendorSubscriptions returns the ledger, preferring the store procedure
// with its derived expiry and billing figures and falling back to the plain
// vendors table when the procedure fails.
func (s *SubscriptionService) ListVendorSubscriptions(ctx context.Context) (*SubscriptionLedger, error) {
	items, err := s.subscriptionRepo.ListVendorSubscriptions(ctx)
	if err == nil {
		return &SubscriptionLedger{Subscriptions: items, Summary: summarize(items)}, nil
	}

	s.logger.WithError(err).Warn("Subscription procedure failed, falling back to vendors table")

	vendors, fallbackErr := s.vendorRepo.List(ctx)
	if fallbackErr != nil {
		return nil, err
	}

	items = make([]*entity.VendorSubscription, 0, len(vendors))
	for _, vendor := range vendors {
		items = append(items, &entity.VendorSubscription{Vendor: *vendor})
	}

	return &SubscriptionLedger{Subscriptions: items, Summary: summarize(items), Degraded: true}, nil
}

func (s *SubscriptionService) UpdateVendorSubscription(ctx context.Context, vendorID string, params repository.UpdateSubscriptionParams) error {
	if params.Tier != nil && !entity.IsSubscriptionTier(*params.Tier) {
		return ErrInvalidTier
	}
	if params.Status != nil && !entity.IsSubscriptionStatus(*params.Status) {
		return ErrInvalidStatus
	}
	if params.BillingPeriod != nil && !entity.IsBillingPeriod(*params.BillingPeriod) {
		return ErrInvalidBillingPeriod
	}

	if err := s.subscriptionRepo.UpdateVendorSubscription(ctx, vendorID, params); err != nil {
		if errors.Is(err, repository.ErrVendorNotFound) {
			return ErrVendorNotFound
		}
		return err
	}

	return nil
}

// RecordPayment registers a manual payment against a vendor. The amount is
// rejected before the store is touched; the procedure handles invoice
// numbering and period extension itself.
func (s *SubscriptionService) RecordPayment(ctx context.Context, vendorID string, params repository.RecordPaymentParams) error {
	if params.Amount <= 0 {
		return ErrInvalidAmount
	}

	params.PaymentMethod = strings.TrimSpace(params.PaymentMethod)
	if params.PaymentMethod == "" {
		params.PaymentMethod = entity.PaymentMethodManual
	}
	if !entity.IsPaymentMethod(params.PaymentMethod) {
		return ErrInvalidPaymentMethod
	}

	if err := s.subscriptionRepo.RecordPayment(ctx, vendorID, params); err != nil {
		if errors.Is(err, repository.ErrVendorNotFound) {
			return ErrVendorNotFound
		}
		return err
	}

	return nil
}

func (s *SubscriptionService) ListVendorInvoices(ctx context.Context, vendorID string) ([]*entity.Invoice, error) {
	return s.invoiceRepo.ListByVendor(ctx, vendorID)
}

// RunExpirationBatch flips vendors whose paid period lapsed to expired.
func (s *SubscriptionService) RunExpirationBatch(ctx context.Context) error {
	count, err := s.vendorRepo.MarkExpired(ctx, time.Now().UTC())
	if err != nil {
		return err
	}

	if count > 0 {
		s.logger.WithField("count", count).Info("Expired lapsed subscriptions")
	}

	return nil
}

func summarize(items []*entity.VendorSubscription) LedgerSummary {
	summary := LedgerSummary{TotalVendors: len(items)}

	for _, item := range items {
		if item.SubscriptionStatus != nil && *item.SubscriptionStatus == entity.SubscriptionStatusActive {
			summary.ActiveVendors++
		}
		switch entity.BucketForDays(item.DaysUntilExpiry) {
		case entity.ExpiryBucketUrgent, entity.ExpiryBucketSoon:
			summary.ExpiringSoon++
		}
		if item.TotalPaid != nil {
			summary.TotalRevenue += *item.TotalPaid
		}
	}

	return summary
}
