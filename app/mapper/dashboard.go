package mapper

import (
	"github.com/vibeventz/ms-go-vendor-admin/app/dto"
	"github.com/vibeventz/ms-go-vendor-admin/app/service"
)

func DashboardStatsToResponse(stats *service.DashboardStats) dto.DashboardStatsResponse {
	return dto.DashboardStatsResponse{
		PendingApplications: stats.PendingApplications,
		TotalVendors:        stats.TotalVendors,
		TotalUsers:          stats.TotalUsers,
		WeeklyApplications:  stats.WeeklyApplications,
		RecentApplications:  ApplicationsToResponse(stats.RecentApplications),
	}
}

func AnalyticsToResponse(report *service.AnalyticsReport) dto.AnalyticsResponse {
	return dto.AnalyticsResponse{
		WindowDays:           report.WindowDays,
		TotalApplications:    report.TotalApplications,
		ApplicationsByStatus: report.ApplicationsByStatus,
		NewApplications:      report.NewApplications,
		TotalVendors:         report.TotalVendors,
		NewVendors:           report.NewVendors,
		TotalUsers:           report.TotalUsers,
		NewUsers:             report.NewUsers,
	}
}
