package controller

import (
	"context"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
	"github.com/vibeventz/ms-go-vendor-admin/app/dto"
	"github.com/vibeventz/ms-go-vendor-admin/app/entity"
	"github.com/vibeventz/ms-go-vendor-admin/app/factory"
	"github.com/vibeventz/ms-go-vendor-admin/app/mapper"
	"github.com/vibeventz/ms-go-vendor-admin/app/service"
	"github.com/vibeventz/ms-go-vendor-admin/app/types"
)

type userService interface {
	ListUsers(ctx context.Context) ([]*entity.User, error)
	UpdateUserRole(ctx context.Context, id, role string) error
}

type UserController struct {
	userService userService
	logger      logrus.FieldLogger
}

func NewUserController(userService userService) *UserController {
	return &UserController{
		userService: userService,
		logger:      factory.NewModuleLogger("users-controller"),
	}
}

func (c *UserController) ListUsers(ctx echo.Context) error {
	items, err := c.userService.ListUsers(ctx.Request().Context())
	if err != nil {
		c.logger.WithError(err).Error("List users failed")
		return writeError(ctx, http.StatusInternalServerError, "internal server error")
	}

	return ctx.JSON(http.StatusOK, &dto.ListUsersResponse{
		Users: mapper.UsersToResponse(items),
	})
}

func (c *UserController) UpdateUserRole(ctx echo.Context) error {
	req, err := types.NewUpdateUserRoleRequestFromContext(ctx)
	if err != nil {
		return writeError(ctx, http.StatusBadRequest, "invalid request body")
	}
	if err := req.Validate(); err != nil {
		return writeError(ctx, http.StatusBadRequest, err.Error())
	}

	if err := c.userService.UpdateUserRole(ctx.Request().Context(), req.ID, req.Role); err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidRole):
			return writeError(ctx, http.StatusBadRequest, err.Error())
		case errors.Is(err, service.ErrUserNotFound):
			return writeError(ctx, http.StatusNotFound, "user not found")
		default:
			c.logger.WithError(err).Error("Update user role failed")
			return writeError(ctx, http.StatusInternalServerError, "internal server error")
		}
	}

	return ctx.JSON(http.StatusOK, &dto.MessageResponse{Message: "User role updated"})
}
