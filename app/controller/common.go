package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/vibeventz/ms-go-vendor-admin/app/dto"
)

func writeError(ctx echo.Context, statusCode int, message string) error {
	return ctx.JSON(statusCode, &dto.ErrorResponse{Error: message})
}

func Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, &dto.HealthResponse{Status: "ok"})
}
