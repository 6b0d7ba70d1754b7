package service

import (
	"context"
	"time"

	"github.com/vibeventz/ms-go-vendor-admin/app/entity"
)

const recentApplicationsLimit = 5

type applicationCounter interface {
	ListRecent(ctx context.Context, limit int) ([]*entity.Application, error)
	Count(ctx context.Context) (int64, error)
	CountByStatus(ctx context.Context, status string) (int64, error)
	CountCreatedSince(ctx context.Context, since time.Time) (int64, error)
}

type vendorCounter interface {
	Count(ctx context.Context) (int64, error)
	CountCreatedSince(ctx context.Context, since time.Time) (int64, error)
}

type userCounter interface {
	Count(ctx context.Context) (int64, error)
	CountCreatedSince(ctx context.Context, since time.Time) (int64, error)
}

// DashboardStats is the landing-page headline block.
type DashboardStats struct {
	PendingApplications int64
	TotalVendors        int64
	TotalUsers          int64
	WeeklyApplications  int64
	RecentApplications  []*entity.Application
}

// AnalyticsReport breaks activity down over a caller-chosen window.
type AnalyticsReport struct {
	WindowDays           int
	TotalApplications    int64
	ApplicationsByStatus map[string]int64
	NewApplications      int64
	TotalVendors         int64
	NewVendors           int64
	TotalUsers           int64
	NewUsers             int64
}

type DashboardService struct {
	applicationRepo applicationCounter
	vendorRepo      vendorCounter
	userRepo        userCounter
}

func NewDashboardService(applicationRepo applicationCounter, vendorRepo vendorCounter, userRepo userCounter) *DashboardService {
	return &DashboardService{
		applicationRepo: applicationRepo,
		vendorRepo:      vendorRepo,
		userRepo:        userRepo,
	}
}

func (s *DashboardService) Stats(ctx context.Context) (*DashboardStats, error) {
	pending, err := s.applicationRepo.CountByStatus(ctx, entity.ApplicationStatusPending)
	if err != nil {
		return nil, err
	}

	vendors, err := s.vendorRepo.Count(ctx)
	if err != nil {
		return nil, err
	}

	users, err := s.userRepo.Count(ctx)
	if err != nil {
		return nil, err
	}

	weekAgo := time.Now().UTC().AddDate(0, 0, -7)
	weekly, err := s.applicationRepo.CountCreatedSince(ctx, weekAgo)
	if err != nil {
		return nil, err
	}

	recent, err := s.applicationRepo.ListRecent(ctx, recentApplicationsLimit)
	if err != nil {
		return nil, err
	}

	return &DashboardStats{
		PendingApplications: pending,
		TotalVendors:        vendors,
		TotalUsers:          users,
		WeeklyApplications:  weekly,
		RecentApplications:  recent,
	}, nil
}

func (s *DashboardService) Analytics(ctx context.Context, windowDays int) (*AnalyticsReport, error) {
	if windowDays <= 0 {
		return nil, ErrInvalidRequest
	}

	since := time.Now().UTC().AddDate(0, 0, -windowDays)
	report := &AnalyticsReport{
		WindowDays:           windowDays,
		ApplicationsByStatus: make(map[string]int64),
	}

	var err error
	if report.TotalApplications, err = s.applicationRepo.Count(ctx); err != nil {
		return nil, err
	}

	statuses := []string{
		entity.ApplicationStatusPending,
		entity.ApplicationStatusUnderReview,
		entity.ApplicationStatusApproved,
		entity.ApplicationStatusRejected,
		entity.ApplicationStatusNeedsChanges,
	}
	for _, status := range statuses {
		count, err := s.applicationRepo.CountByStatus(ctx, status)
		if err != nil {
			return nil, err
		}
		report.ApplicationsByStatus[status] = count
	}

	if report.NewApplications, err = s.applicationRepo.CountCreatedSince(ctx, since); err != nil {
		return nil, err
	}
	if report.TotalVendors, err = s.vendorRepo.Count(ctx); err != nil {
		return nil, err
	}
	if report.NewVendors, err = s.vendorRepo.CountCreatedSince(ctx, since); err != nil {
		return nil, err
	}
	if report.TotalUsers, err = s.userRepo.Count(ctx); err != nil {
		return nil, err
	}
	if report.NewUsers, err = s.userRepo.CountCreatedSince(ctx, since); err != nil {
		return nil, err
	}

	return report, nil
}
