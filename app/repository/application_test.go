package repository

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/vibeventz/ms-go-vendor-admin/app/entity"
)

func TestUpdateReviewNoRows(t *testing.T) {
	repo := NewApplicationRepository(&fakeDB{execFn: func(_ context.Context, _ string, _ ...interface{}) (sql.Result, error) {
		return fakeResult{rowsAffected: 0}, nil
	}})

	err := repo.UpdateReview(context.Background(), "missing-id", entity.ApplicationStatusRejected, "notes", nil, nil)
	if !errors.Is(err, ErrApplicationNotFound) {
		t.Fatalf("expected ErrApplicationNotFound, got %v", err)
	}
}

func TestUpdateReviewPassesReviewFields(t *testing.T) {
	var gotArgs []interface{}
	repo := NewApplicationRepository(&fakeDB{execFn: func(_ context.Context, _ string, args ...interface{}) (sql.Result, error) {
		gotArgs = args
		return fakeResult{rowsAffected: 1}, nil
	}})

	reviewedBy := "admin-1"
	reviewedAt := time.Now().UTC()
	err := repo.UpdateReview(context.Background(), "app-1", entity.ApplicationStatusApproved, "ok", &reviewedBy, &reviewedAt)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if gotArgs[0] != entity.ApplicationStatusApproved {
		t.Fatalf("expected status first, got %v", gotArgs[0])
	}
	if gotArgs[2] != "admin-1" {
		t.Fatalf("expected reviewed_by, got %v", gotArgs[2])
	}
}

func TestUpdateReviewClearsReviewFieldsForNonDecision(t *testing.T) {
	var gotArgs []interface{}
	repo := NewApplicationRepository(&fakeDB{execFn: func(_ context.Context, _ string, args ...interface{}) (sql.Result, error) {
		gotArgs = args
		return fakeResult{rowsAffected: 1}, nil
	}})

	err := repo.UpdateReview(context.Background(), "app-1", entity.ApplicationStatusUnderReview, "", nil, nil)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if gotArgs[2] != nil || gotArgs[3] != nil {
		t.Fatalf("expected nil review fields, got %v %v", gotArgs[2], gotArgs[3])
	}
}
