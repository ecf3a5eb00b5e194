package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/inkwell-labs/notes-api/internal/api/middleware"
	"github.com/inkwell-labs/notes-api/internal/core/domain"
)

// principal extracts the authenticated user injected by the Auth middleware.
// A missing principal means the route was wired without the middleware; fail
// closed with 401 rather than proceed unauthenticated.
func principal(c echo.Context) (*domain.User, error) {
	user, _ := c.Get(middleware.PrincipalKey).(*domain.User)
	if user == nil || user.ID == "" {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "not authorized")
	}
	return user, nil
}
