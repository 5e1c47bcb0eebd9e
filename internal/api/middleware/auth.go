package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/qwadratic/notes-api/internal/api/handler"
	"github.com/qwadratic/notes-api/internal/core/domain"
	"github.com/qwadratic/notes-api/internal/core/ports"
)

// Auth resolves the bearer token to a user and injects it into the context.
// Missing header, malformed header, invalid/expired token, and unknown
// subject all produce the same 401 so callers cannot probe which one failed.
func Auth(authService ports.AuthService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "unauthorized")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "unauthorized")
			}

			user, err := authService.Authenticate(c.Request().Context(), parts[1])
			if err != nil {
				if errors.Is(err, domain.ErrUnauthorized) {
					return echo.NewHTTPError(http.StatusUnauthorized, "unauthorized")
				}
				// Transient user-directory failure: surface as such, not as 401.
				return err
			}

			c.Set(handler.UserContextKey, user)
			return next(c)
		}
	}
}
