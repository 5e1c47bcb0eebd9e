package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/qwadratic/notes-api/internal/core/domain"
)

// UserContextKey is where the auth middleware stores the resolved user.
const UserContextKey = "auth_user"

// ctxUser extracts the authenticated user injected by the auth middleware.
// Its presence proves the middleware ran; a handler reached without it is a
// wiring bug and fails closed with 401.
func ctxUser(c echo.Context) (*domain.User, error) {
	user, ok := c.Get(UserContextKey).(*domain.User)
	if !ok || user == nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	return user, nil
}
