package service

import (
	"context"
	"errors"

	"github.com/vibeventz/ms-go-vendor-admin/app/entity"
	"github.com/vibeventz/ms-go-vendor-admin/app/repository"
)

type userRepository interface {
	List(ctx context.Context) ([]*entity.User, error)
	UpdateRole(ctx context.Context, id, role string) error
}

type UserService struct {
	userRepo userRepository
}

func NewUserService(userRepo userRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

func (s *UserService) ListUsers(ctx context.Context) ([]*entity.User, error) {
	return s.userRepo.List(ctx)
}

func (s *UserService) UpdateUserRole(ctx context.Context, id, role string) error {
	if !entity.IsRole(role) {
		return ErrInvalidRole
	}

	if err := s.userRepo.UpdateRole(ctx, id, role); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return ErrUserNotFound
		}
		return err
	}

	return nil
}
