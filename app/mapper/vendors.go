package mapper

import (
	"github.com/vibeventz/ms-go-vendor-admin/app/dto"
	"github.com/vibeventz/ms-go-vendor-admin/app/entity"
)

func VendorToResponse(item *entity.Vendor) dto.VendorResponse {
	return dto.VendorResponse{
		ID:                    item.ID,
		UserID:                item.UserID,
		ApplicationID:         item.ApplicationID,
		Name:                  item.Name,
		Description:           item.Description,
		Email:                 item.Email,
		Location:              item.Location,
		SubscriptionTier:      item.SubscriptionTier,
		SubscriptionStatus:    item.SubscriptionStatus,
		SubscriptionStartedAt: formatTime(item.SubscriptionStartedAt),
		SubscriptionExpiresAt: formatTime(item.SubscriptionExpiresAt),
		BillingPeriod:         item.BillingPeriod,
		BillingEmail:          item.BillingEmail,
		BillingName:           item.BillingName,
		BillingPhone:          item.BillingPhone,
		NextPaymentDue:        formatTime(item.NextPaymentDue),
		LastPaymentAt:         formatTime(item.LastPaymentAt),
		Reminder5DaySent:      item.Reminder5DaySent,
		Reminder1DaySent:      item.Reminder1DaySent,
		AdditionalPhotos:      emptySlice(item.AdditionalPhotos),
		CreatedAt:             formatTimeValue(item.CreatedAt),
	}
}

func VendorsToResponse(items []*entity.Vendor) []dto.VendorResponse {
	result := make([]dto.VendorResponse, 0, len(items))
	for _, item := range items {
		result = append(result, VendorToResponse(item))
	}
	return result
}
