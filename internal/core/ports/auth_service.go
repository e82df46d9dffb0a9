package ports

import (
	"context"

	"github.com/timekeeper/inventory-system/internal/core/domain"
	"github.com/timekeeper/inventory-system/internal/pkg/token"
)

// RegisterInput carries a registration request. Role defaults to MANAGER
// when empty.
type RegisterInput struct {
	Email    string
	Password string
	Name     string
	Role     domain.Role
}

// AuthResult pairs a freshly issued bearer token with the account it
// identifies.
type AuthResult struct {
	Token string       `json:"token"`
	User  *domain.User `json:"user"`
}

// AuthService implements registration, login and token verification.
type AuthService interface {
	Register(ctx context.Context, in RegisterInput) (*AuthResult, error)
	Login(ctx context.Context, email, password string) (*AuthResult, error)
	VerifyToken(tokenString string) (*token.Claims, error)
	Me(ctx context.Context, userID string) (*domain.User, error)
}
