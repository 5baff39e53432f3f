package middleware

import (
	"errors"

	apierrors "cdf-insights/internal/errors"
	"cdf-insights/internal/handlers"
	"cdf-insights/internal/models"
	"cdf-insights/internal/services"

	"github.com/labstack/echo/v4"
)

// Context keys set by RequireAuth
const (
	ContextKeySubject = "token_subject"
	ContextKeyRole    = "token_role"
	ContextKeyJTI     = "token_jti"
	ContextKeyIsAdmin = "is_admin"
)

// RequireAuth creates a middleware that requires a valid admin token
func RequireAuth(tokenService services.TokenServiceInterface) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return handlers.SendError(c, apierrors.AuthMissingToken)
			}

			token, err := tokenService.ExtractTokenFromHeader(authHeader)
			if err != nil {
				return handlers.SendError(c, apierrors.AuthInvalidTokenFormat)
			}

			claims, err := tokenService.ValidateToken(token)
			if err != nil {
				if errors.Is(err, services.ErrExpiredToken) {
					return handlers.SendError(c, apierrors.AuthExpiredToken)
				}
				if errors.Is(err, services.ErrSigningDisabled) {
					return handlers.SendError(c, apierrors.SystemConfigurationError,
						apierrors.WithDetails("Admin endpoints are disabled: ADMIN_TOKEN_SECRET is not set"))
				}
				return handlers.SendError(c, apierrors.AuthInvalidTokenFormat)
			}

			c.Set(ContextKeySubject, claims.Subject)
			c.Set(ContextKeyRole, claims.Role)
			c.Set(ContextKeyJTI, claims.ID)
			c.Set(ContextKeyIsAdmin, claims.IsAdmin())

			return next(c)
		}
	}
}

// RequireRole creates a middleware that requires a specific role
func RequireRole(requiredRoles ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, ok := c.Get(ContextKeyRole).(string)
			if !ok {
				return handlers.SendError(c, apierrors.AuthInvalidTokenFormat, apierrors.WithDetails("Role not found in token"))
			}

			for _, r := range requiredRoles {
				if role == r {
					return next(c)
				}
			}

			return handlers.SendError(c, apierrors.AuthInsufficientPermission)
		}
	}
}

// RequireAdmin is a convenience middleware that requires admin role
func RequireAdmin() echo.MiddlewareFunc {
	return RequireRole(models.RoleAdmin)
}
