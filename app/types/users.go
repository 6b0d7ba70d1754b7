package types

import (
	"errors"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/vibeventz/ms-go-vendor-admin/app/entity"
)

type UpdateUserRoleRequest struct {
	ID   string `param:"id"`
	Role string `json:"role"`
}

func NewUpdateUserRoleRequestFromContext(ctx echo.Context) (*UpdateUserRoleRequest, error) {
	var body UpdateUserRoleRequest
	if err := ctx.Bind(&body); err != nil {
		return nil, err
	}
	body.ID = strings.TrimSpace(ctx.Param("id"))
	body.Role = strings.TrimSpace(body.Role)
	return &body, nil
}

func (r *UpdateUserRoleRequest) Validate() error {
	if err := validateID(r.ID, "user id"); err != nil {
		return err
	}
	if !entity.IsRole(r.Role) {
		return errors.New("role must be admin or user")
	}
	return nil
}
