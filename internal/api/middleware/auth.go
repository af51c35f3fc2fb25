package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/rbacdash/rbac-api/internal/api/metrics"
	"github.com/rbacdash/rbac-api/internal/core/domain"
	"github.com/rbacdash/rbac-api/internal/core/ports"
)

const userContextKey = "auth_user"

// CurrentUser returns the identity attached by Authenticate.
func CurrentUser(c echo.Context) (*domain.User, bool) {
	user, ok := c.Get(userContextKey).(*domain.User)
	return user, ok
}

// SetUser attaches an identity directly. Intended for tests.
func SetUser(c echo.Context, user *domain.User) {
	c.Set(userContextKey, user)
}

// Authenticate verifies the bearer token and re-fetches the user record by
// id from the credential store. Decisions downstream always see the current
// stored roles, not the snapshot embedded in the token, so role changes and
// deletions take effect on the next request.
func Authenticate(tokens ports.TokenService, users ports.UserRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				metrics.AuthFailuresTotal.WithLabelValues("missing_token").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "no token provided, please login first")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				metrics.AuthFailuresTotal.WithLabelValues("malformed_header").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			claims, err := tokens.Verify(parts[1])
			if err != nil {
				if errors.Is(err, domain.ErrTokenExpired) {
					metrics.AuthFailuresTotal.WithLabelValues("expired").Inc()
					return echo.NewHTTPError(http.StatusUnauthorized, "token expired, please login again")
				}
				metrics.AuthFailuresTotal.WithLabelValues("invalid").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			user, err := users.FindByID(c.Request().Context(), claims.UserID)
			if err != nil {
				if errors.Is(err, domain.ErrUserNotFound) {
					metrics.AuthFailuresTotal.WithLabelValues("user_gone").Inc()
					return echo.NewHTTPError(http.StatusUnauthorized, "user no longer exists")
				}
				return fmt.Errorf("authenticate: fetch user: %w", err)
			}

			c.Set(userContextKey, user)
			return next(c)
		}
	}
}
