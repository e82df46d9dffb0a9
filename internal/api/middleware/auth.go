package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/timekeeper/inventory-system/internal/core/domain"
	"github.com/timekeeper/inventory-system/internal/pkg/token"
)

// Context keys set by Auth and read by RBAC and the handlers.
const (
	ctxUserID = "user_id"
	ctxEmail  = "email"
	ctxRole   = "role"
)

// TokenVerifier validates a bearer token and returns its claims.
type TokenVerifier interface {
	Verify(tokenString string) (*token.Claims, error)
}

// Identity is the request-scoped authenticated identity decoded from a
// verified token. It lives only for the duration of the request.
type Identity struct {
	UserID string
	Email  string
	Role   domain.Role
}

// Auth validates the bearer token and injects the identity into the request
// context. It establishes identity only; role checks belong to RBAC.
func Auth(verifier TokenVerifier) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "no token provided")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "no token provided")
			}

			claims, err := verifier.Verify(parts[1])
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid or expired token")
			}

			c.Set(ctxUserID, claims.UserID)
			c.Set(ctxEmail, claims.Email)
			c.Set(ctxRole, claims.Role)

			return next(c)
		}
	}
}

// IdentityFrom extracts the identity injected by Auth. ok is false when the
// middleware has not run for this request.
func IdentityFrom(c echo.Context) (Identity, bool) {
	userID, _ := c.Get(ctxUserID).(string)
	email, _ := c.Get(ctxEmail).(string)
	role, _ := c.Get(ctxRole).(domain.Role)
	if userID == "" || role == "" {
		return Identity{}, false
	}
	return Identity{UserID: userID, Email: email, Role: role}, true
}
