package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/rbacdash/rbac-api/internal/api/metrics"
	"github.com/rbacdash/rbac-api/internal/core/ports"
)

// permissionDenied is the 403 body for a failed permission check. It names
// the required permission alongside the caller's own roles and resolved
// permissions so denials are debuggable from the client side.
type permissionDenied struct {
	Success            bool     `json:"success"`
	Message            string   `json:"message"`
	RequiredPermission string   `json:"required_permission"`
	UserRoles          []string `json:"user_roles"`
	UserPermissions    []string `json:"user_permissions"`
}

type roleDenied struct {
	Success       bool     `json:"success"`
	Message       string   `json:"message"`
	RequiredRoles []string `json:"required_roles"`
	UserRoles     []string `json:"user_roles"`
}

// RequirePermission allows the request through when the required permission
// is in the effective set resolved from the user's current roles. The
// decision is pure: it never mutates identity or logs activity, and a
// denial short-circuits before the handler runs.
func RequirePermission(resolver ports.PermissionResolver, permission string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user, ok := CurrentUser(c)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
			}

			perms := resolver.Resolve(c.Request().Context(), user.Roles)
			for _, p := range perms {
				if p == permission {
					return next(c)
				}
			}

			metrics.AuthzDenialsTotal.WithLabelValues("permission").Inc()
			return c.JSON(http.StatusForbidden, permissionDenied{
				Success:            false,
				Message:            "access denied, required permission: " + permission,
				RequiredPermission: permission,
				UserRoles:          user.Roles,
				UserPermissions:    perms,
			})
		}
	}
}

// RequireRole allows the request through when the user holds any of the
// given roles (logical OR).
func RequireRole(roles ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user, ok := CurrentUser(c)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
			}

			if user.HasAnyRole(roles...) {
				return next(c)
			}

			metrics.AuthzDenialsTotal.WithLabelValues("role").Inc()
			return c.JSON(http.StatusForbidden, roleDenied{
				Success:       false,
				Message:       "access denied, required role: " + strings.Join(roles, " or "),
				RequiredRoles: roles,
				UserRoles:     user.Roles,
			})
		}
	}
}
