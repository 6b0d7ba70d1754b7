package dto

type CompanyDetailsResponse struct {
	TradingName             string `json:"trading_name,omitempty"`
	RegisteredBusinessName  string `json:"registered_business_name,omitempty"`
	OwnersName              string `json:"owners_name,omitempty"`
	Email                   string `json:"email,omitempty"`
	ContactPhoneNumber      string `json:"contact_phone_number,omitempty"`
	BusinessPhysicalAddress string `json:"business_physical_address,omitempty"`
	CompanyRegNumber        string `json:"company_reg_number,omitempty"`
	VATNumber               string `json:"vat_number,omitempty"`
}

type ApplicationResponse struct {
	ID                  string                 `json:"id"`
	UserID              string                 `json:"user_id"`
	PortfolioType       string                 `json:"portfolio_type"`
	CompanyDetails      CompanyDetailsResponse `json:"company_details"`
	DisplayName         string                 `json:"display_name"`
	ServiceCategories   []string               `json:"service_categories"`
	CoverageProvinces   []string               `json:"coverage_provinces"`
	CoverageCities      []string               `json:"coverage_cities"`
	BusinessDescription string                 `json:"business_description,omitempty"`
	PortfolioImages     []string               `json:"portfolio_images"`
	PortfolioVideos     []string               `json:"portfolio_videos"`
	BusinessDocuments   []string               `json:"business_documents"`
	SubscriptionTier    string                 `json:"subscription_tier,omitempty"`
	TermsAccepted       bool                   `json:"terms_accepted"`
	PrivacyAccepted     bool                   `json:"privacy_accepted"`
	MarketingConsent    bool                   `json:"marketing_consent"`
	Status              string                 `json:"status"`
	AdminNotes          *string                `json:"admin_notes,omitempty"`
	ReviewedBy          *string                `json:"reviewed_by,omitempty"`
	ReviewedAt          *string                `json:"reviewed_at,omitempty"`
	CreatedAt           string                 `json:"created_at"`
	UpdatedAt           string                 `json:"updated_at"`
}

type ListApplicationsResponse struct {
	Applications []ApplicationResponse `json:"applications"`
}

type ApplicationEnvelopeResponse struct {
	Application ApplicationResponse `json:"application"`
}

type ReviewOutcomeResponse struct {
	Message       string              `json:"message"`
	Application   ApplicationResponse `json:"application"`
	Vendor        *VendorResponse     `json:"vendor,omitempty"`
	VendorCreated bool                `json:"vendor_created"`
}
