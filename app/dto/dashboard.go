package dto

type DashboardStatsResponse struct {
	PendingApplications int64                 `json:"pending_applications"`
	TotalVendors        int64                 `json:"total_vendors"`
	TotalUsers          int64                 `json:"total_users"`
	WeeklyApplications  int64                 `json:"weekly_applications"`
	RecentApplications  []ApplicationResponse `json:"recent_applications"`
}

type AnalyticsResponse struct {
	WindowDays           int              `json:"window_days"`
	TotalApplications    int64            `json:"total_applications"`
	ApplicationsByStatus map[string]int64 `json:"applications_by_status"`
	NewApplications      int64            `json:"new_applications"`
	TotalVendors         int64            `json:"total_vendors"`
	NewVendors           int64            `json:"new_vendors"`
	TotalUsers           int64            `json:"total_users"`
	NewUsers             int64            `json:"new_users"`
}
