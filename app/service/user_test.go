package service

import (
	"context"
	"errors"
	"testing"

	"github.com/vibeventz/ms-go-vendor-admin/app/entity"
	"github.com/vibeventz/ms-go-vendor-admin/app/repository"
)

type mockUserRepo struct {
	listFn       func(ctx context.Context) ([]*entity.User, error)
	updateRoleFn func(ctx context.Context, id, role string) error
	updateCalls  int
}

func (m *mockUserRepo) List(ctx context.Context) ([]*entity.User, error) {
	if m.listFn != nil {
		return m.listFn(ctx)
	}
	return nil, nil
}

func (m *mockUserRepo) UpdateRole(ctx context.Context, id, role string) error {
	m.updateCalls++
	if m.updateRoleFn != nil {
		return m.updateRoleFn(ctx, id, role)
	}
	return nil
}

func TestUpdateUserRoleRejectsUnknownRole(t *testing.T) {
	repo := &mockUserRepo{}
	svc := NewUserService(repo)

	err := svc.UpdateUserRole(context.Background(), "u-1", "superadmin")
	if !errors.Is(err, ErrInvalidRole) {
		t.Fatalf("expected ErrInvalidRole, got %v", err)
	}
	if repo.updateCalls != 0 {
		t.Fatalf("expected no store writes, got %d", repo.updateCalls)
	}
}

func TestUpdateUserRoleMapsNotFound(t *testing.T) {
	repo := &mockUserRepo{updateRoleFn: func(_ context.Context, _, _ string) error {
		return repository.ErrUserNotFound
	}}
	svc := NewUserService(repo)

	err := svc.UpdateUserRole(context.Background(), "missing", entity.RoleAdmin)
	if !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestUpdateUserRoleSuccess(t *testing.T) {
	var gotID, gotRole string
	repo := &mockUserRepo{updateRoleFn: func(_ context.Context, id, role string) error {
		gotID, gotRole = id, role
		return nil
	}}
	svc := NewUserService(repo)

	if err := svc.UpdateUserRole(context.Background(), "u-1", entity.RoleAdmin); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if gotID != "u-1" || gotRole != entity.RoleAdmin {
		t.Fatalf("unexpected args id=%q role=%q", gotID, gotRole)
	}
}
