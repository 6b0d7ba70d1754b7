package mapper

import (
	"github.com/vibeventz/ms-go-vendor-admin/app/dto"
	"github.com/vibeventz/ms-go-vendor-admin/app/entity"
	"github.com/vibeventz/ms-go-vendor-admin/app/service"
)

func VendorSubscriptionToResponse(item *entity.VendorSubscription) dto.VendorSubscriptionResponse {
	return dto.VendorSubscriptionResponse{
		VendorResponse:  VendorToResponse(&item.Vendor),
		DaysUntilExpiry: item.DaysUntilExpiry,
		ExpiryBucket:    string(entity.BucketForDays(item.DaysUntilExpiry)),
		TotalInvoices:   item.TotalInvoices,
		TotalPaid:       item.TotalPaid,
		Needs5DayRemind: item.Needs5DayRemind,
		Needs1DayRemind: item.Needs1DayRemind,
	}
}

func SubscriptionLedgerToResponse(ledger *service.SubscriptionLedger) dto.SubscriptionLedgerResponse {
	subscriptions := make([]dto.VendorSubscriptionResponse, 0, len(ledger.Subscriptions))
	for _, item := range ledger.Subscriptions {
		subscriptions = append(subscriptions, VendorSubscriptionToResponse(item))
	}

	return dto.SubscriptionLedgerResponse{
		Subscriptions: subscriptions,
		Summary: dto.LedgerSummaryResponse{
			TotalVendors:  ledger.Summary.TotalVendors,
			ActiveVendors: ledger.Summary.ActiveVendors,
			ExpiringSoon:  ledger.Summary.ExpiringSoon,
			TotalRevenue:  ledger.Summary.TotalRevenue,
		},
		Degraded: ledger.Degraded,
	}
}

func InvoiceToResponse(item *entity.Invoice) dto.InvoiceResponse {
	return dto.InvoiceResponse{
		ID:                item.ID,
		VendorID:          item.VendorID,
		InvoiceNumber:     item.InvoiceNumber,
		Amount:            item.Amount,
		Tier:              item.Tier,
		BillingPeriod:     item.BillingPeriod,
		Status:            item.Status,
		PaymentMethod:     item.PaymentMethod,
		ExternalPaymentID: item.ExternalPaymentID,
		BillingEmail:      item.BillingEmail,
		BillingName:       item.BillingName,
		BillingPhone:      item.BillingPhone,
		CreatedAt:         formatTimeValue(item.CreatedAt),
		PaidAt:            formatTime(item.PaidAt),
		DueDate:           formatTime(item.DueDate),
	}
}

func InvoicesToResponse(items []*entity.Invoice) []dto.InvoiceResponse {
	result := make([]dto.InvoiceResponse, 0, len(items))
	for _, item := range items {
		result = append(result, InvoiceToResponse(item))
	}
	return result
}
