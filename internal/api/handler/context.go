package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/timekeeper/inventory-system/internal/api/middleware"
)

// ctxIdentity extracts the identity injected by the Auth middleware and
// fast-fails with 401 when it is absent. Absence means the route was wired
// without the middleware; rejecting is safer than proceeding anonymously.
func ctxIdentity(c echo.Context) (middleware.Identity, error) {
	identity, ok := middleware.IdentityFrom(c)
	if !ok {
		return middleware.Identity{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return identity, nil
}
