package entity

import (
	"strings"
	"time"
)

const (
	ApplicationStatusPending      = "pending"
	ApplicationStatusUnderReview  = "under_review"
	ApplicationStatusApproved     = "approved"
	ApplicationStatusRejected     = "rejected"
	ApplicationStatusNeedsChanges = "needs_changes"
)

const (
	PortfolioTypeVenue  = "venue"
	PortfolioTypeVendor = "vendor"
)

// CompanyDetails is the business profile submitted with an application.
// Every field is optional; the intake form does not enforce completeness.
type CompanyDetails struct {
	TradingName             string `json:"tradingName,omitempty"`
	RegisteredBusinessName  string `json:"registeredBusinessName,omitempty"`
	OwnersName              string `json:"ownersName,omitempty"`
	Email                   string `json:"email,omitempty"`
	ContactPhoneNumber      string `json:"contactPhoneNumber,omitempty"`
	BusinessPhysicalAddress string `json:"businessPhysicalAddress,omitempty"`
	CompanyRegNumber        string `json:"companyRegNumber,omitempty"`
	VATNumber               string `json:"vatNumber,omitempty"`
}

// DisplayName returns the trading name, falling back to the registered
// business name when the trading name is absent.
func (c CompanyDetails) DisplayName() string {
	if name := strings.TrimSpace(c.TradingName); name != "" {
		return name
	}
	return strings.TrimSpace(c.RegisteredBusinessName)
}

type Application struct {
	ID                  string
	UserID              string
	PortfolioType       string
	CompanyDetails      CompanyDetails
	ServiceCategories   []string
	CoverageProvinces   []string
	CoverageCities      []string
	BusinessDescription string
	PortfolioImages     []string
	PortfolioVideos     []string
	BusinessDocuments   []string
	SubscriptionTier    string
	TermsAccepted       bool
	PrivacyAccepted     bool
	MarketingConsent    bool
	Status              string
	AdminNotes          *string
	ReviewedBy          *string
	ReviewedAt          *time.Time
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

func IsApplicationStatus(status string) bool {
	switch status {
	case ApplicationStatusPending,
		ApplicationStatusUnderReview,
		ApplicationStatusApproved,
		ApplicationStatusRejected,
		ApplicationStatusNeedsChanges:
		return true
	default:
		return false
	}
}

// IsReviewDecision reports whether the status represents an admin decision,
// i.e. a transition out of pending/under_review that stamps reviewed_at.
func IsReviewDecision(status string) bool {
	switch status {
	case ApplicationStatusApproved, ApplicationStatusRejected, ApplicationStatusNeedsChanges:
		return true
	default:
		return false
	}
}
