package mapper

import (
	"github.com/vibeventz/ms-go-vendor-admin/app/dto"
	"github.com/vibeventz/ms-go-vendor-admin/app/entity"
)

func ApplicationToResponse(item *entity.Application) dto.ApplicationResponse {
	return dto.ApplicationResponse{
		ID:            item.ID,
		UserID:        item.UserID,
		PortfolioType: item.PortfolioType,
		CompanyDetails: dto.CompanyDetailsResponse{
			TradingName:             item.CompanyDetails.TradingName,
			RegisteredBusinessName:  item.CompanyDetails.RegisteredBusinessName,
			OwnersName:              item.CompanyDetails.OwnersName,
			Email:                   item.CompanyDetails.Email,
			ContactPhoneNumber:      item.CompanyDetails.ContactPhoneNumber,
			BusinessPhysicalAddress: item.CompanyDetails.BusinessPhysicalAddress,
			CompanyRegNumber:        item.CompanyDetails.CompanyRegNumber,
			VATNumber:               item.CompanyDetails.VATNumber,
		},
		DisplayName:         item.CompanyDetails.DisplayName(),
		ServiceCategories:   emptySlice(item.ServiceCategories),
		CoverageProvinces:   emptySlice(item.CoverageProvinces),
		CoverageCities:      emptySlice(item.CoverageCities),
		BusinessDescription: item.BusinessDescription,
		PortfolioImages:     emptySlice(item.PortfolioImages),
		PortfolioVideos:     emptySlice(item.PortfolioVideos),
		BusinessDocuments:   emptySlice(item.BusinessDocuments),
		SubscriptionTier:    item.SubscriptionTier,
		TermsAccepted:       item.TermsAccepted,
		PrivacyAccepted:     item.PrivacyAccepted,
		MarketingConsent:    item.MarketingConsent,
		Status:              item.Status,
		AdminNotes:          item.AdminNotes,
		ReviewedBy:          item.ReviewedBy,
		ReviewedAt:          formatTime(item.ReviewedAt),
		CreatedAt:           formatTimeValue(item.CreatedAt),
		UpdatedAt:           formatTimeValue(item.UpdatedAt),
	}
}

func ApplicationsToResponse(items []*entity.Application) []dto.ApplicationResponse {
	result := make([]dto.ApplicationResponse, 0, len(items))
	for _, item := range items {
		result = append(result, ApplicationToResponse(item))
	}
	return result
}
