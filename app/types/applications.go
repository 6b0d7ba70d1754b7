package types

import (
	"errors"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/vibeventz/ms-go-vendor-admin/app/entity"
)

type ListApplicationsRequest struct {
	Status string
}

func NewListApplicationsRequestFromContext(ctx echo.Context) (*ListApplicationsRequest, error) {
	return &ListApplicationsRequest{
		Status: strings.TrimSpace(ctx.QueryParam("status")),
	}, nil
}

func (r *ListApplicationsRequest) Validate() error {
	if r.Status != "" && !entity.IsApplicationStatus(r.Status) {
		return errors.New("status must be one of pending, under_review, approved, rejected, needs_changes")
	}
	return nil
}

type GetApplicationRequest struct {
	ID string
}

func NewGetApplicationRequestFromContext(ctx echo.Context) (*GetApplicationRequest, error) {
	return &GetApplicationRequest{ID: strings.TrimSpace(ctx.Param("id"))}, nil
}

func (r *GetApplicationRequest) Validate() error {
	return validateID(r.ID, "application id")
}

type ReviewApplicationRequest struct {
	ID     string `param:"id"`
	Status string `json:"status"`
	Notes  string `json:"notes"`
}

func NewReviewApplicationRequestFromContext(ctx echo.Context) (*ReviewApplicationRequest, error) {
	var body ReviewApplicationRequest
	if err := ctx.Bind(&body); err != nil {
		return nil, err
	}
	body.ID = strings.TrimSpace(ctx.Param("id"))
	body.Status = strings.TrimSpace(body.Status)
	body.Notes = strings.TrimSpace(body.Notes)
	return &body, nil
}

func (r *ReviewApplicationRequest) Validate() error {
	if err := validateID(r.ID, "application id"); err != nil {
		return err
	}
	if !entity.IsApplicationStatus(r.Status) {
		return errors.New("status must be one of pending, under_review, approved, rejected, needs_changes")
	}
	return nil
}
