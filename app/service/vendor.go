package service

import (
	"context"
	"errors"

	"github.com/vibeventz/ms-go-vendor-admin/app/entity"
	"github.com/vibeventz/ms-go-vendor-admin/app/repository"
)

type vendorRepository interface {
	List(ctx context.Context) ([]*entity.Vendor, error)
	FindByID(ctx context.Context, id string) (*entity.Vendor, error)
	UpdateSubscriptionStatus(ctx context.Context, id, status string) error
}

type VendorService struct {
	vendorRepo vendorRepository
}

func NewVendorService(vendorRepo vendorRepository) *VendorService {
	return &VendorService{vendorRepo: vendorRepo}
}

func (s *VendorService) ListVendors(ctx context.Context) ([]*entity.Vendor, error) {
	return s.vendorRepo.List(ctx)
}

func (s *VendorService) GetVendor(ctx context.Context, id string) (*entity.Vendor, error) {
	vendor, err := s.vendorRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if vendor == nil {
		return nil, ErrVendorNotFound
	}
	return vendor, nil
}

func (s *VendorService) UpdateVendorStatus(ctx context.Context, id, status string) error {
	if !entity.IsSubscriptionStatus(status) {
		return ErrInvalidStatus
	}

	if err := s.vendorRepo.UpdateSubscriptionStatus(ctx, id, status); err != nil {
		if errors.Is(err, repository.ErrVendorNotFound) {
			return ErrVendorNotFound
		}
		return err
	}

	return nil
}
