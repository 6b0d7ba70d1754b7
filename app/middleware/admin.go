package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
	"github.com/vibeventz/ms-go-vendor-admin/app/auth"
	"github.com/vibeventz/ms-go-vendor-admin/app/dto"
	"github.com/vibeventz/ms-go-vendor-admin/app/factory"
)

const identityContextKey = "identity"

// RequireAdmin rejects requests whose bearer token does not resolve to an
// admin user. The resolved identity is stashed on the echo context for
// handlers that record who acted.
func RequireAdmin(authService *auth.Service) echo.MiddlewareFunc {
	logger := factory.NewModuleLogger("admin-middleware")

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			token := bearerToken(ctx.Request().Header.Get(echo.HeaderAuthorization))
			if token == "" {
				return ctx.JSON(http.StatusUnauthorized, &dto.ErrorResponse{Error: "missing bearer token"})
			}

			identity, err := authService.ResolveIdentity(ctx.Request().Context(), token)
			if err != nil {
				logger.WithError(err).Debug("Identity resolution failed")
				return ctx.JSON(http.StatusUnauthorized, &dto.ErrorResponse{Error: "invalid token"})
			}

			if !identity.IsAdmin() {
				logger.WithFields(logrus.Fields{
					"user_id": identity.UserID,
					"path":    ctx.Path(),
				}).Warn("Non-admin request rejected")
				return ctx.JSON(http.StatusForbidden, &dto.ErrorResponse{Error: "admin access required"})
			}

			ctx.Set(identityContextKey, identity)

			return next(ctx)
		}
	}
}

// IdentityFromContext returns the identity stashed by RequireAdmin.
func IdentityFromContext(ctx echo.Context) (auth.Identity, bool) {
	identity, ok := ctx.Get(identityContextKey).(auth.Identity)
	return identity, ok
}

func bearerToken(header string) string {
	const prefix = "Bearer "
	if len(header) > len(prefix) && strings.EqualFold(header[:len(prefix)], prefix) {
		return strings.TrimSpace(header[len(prefix):])
	}
	return ""
}
