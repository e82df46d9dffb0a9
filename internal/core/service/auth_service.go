package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/timekeeper/inventory-system/internal/core/domain"
	"github.com/timekeeper/inventory-system/internal/core/ports"
	"github.com/timekeeper/inventory-system/internal/pkg/password"
	"github.com/timekeeper/inventory-system/internal/pkg/token"
)

// AuthService implements registration, login and token verification on top
// of a user repository and a token issuer.
type AuthService struct {
	repo   ports.UserRepository
	issuer *token.Issuer
}

func NewAuthService(repo ports.UserRepository, issuer *token.Issuer) *AuthService {
	return &AuthService{repo: repo, issuer: issuer}
}

// Register creates an account, hashes the password and issues a token.
// The email pre-check is advisory only: two concurrent registrations can both
// pass it, so the repository's unique-index violation is treated as the same
// ErrUserExists failure.
func (s *AuthService) Register(ctx context.Context, in ports.RegisterInput) (*ports.AuthResult, error) {
	email := strings.TrimSpace(in.Email)
	if email == "" || in.Password == "" {
		return nil, fmt.Errorf("%w: email and password are required", domain.ErrInvalidInput)
	}

	role := in.Role
	if role == "" {
		role = domain.RoleManager
	}
	if !role.Valid() {
		return nil, fmt.Errorf("%w: role must be ADMIN or MANAGER", domain.ErrInvalidInput)
	}

	existing, err := s.repo.FindByEmail(ctx, email)
	if err != nil && !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrUserExists
	}

	hash, err := password.Hash(in.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	now := time.Now().UTC()
	created, err := s.repo.Create(ctx, &domain.User{
		Email:        email,
		Name:         strings.TrimSpace(in.Name),
		PasswordHash: hash,
		Role:         role,
		Status:       domain.StatusActive,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		return nil, err
	}

	signed, err := s.issuer.Issue(created.ID, created.Email, created.Role)
	if err != nil {
		return nil, err
	}
	return &ports.AuthResult{Token: signed, User: created}, nil
}

// Login authenticates by email and password. An unknown email and a wrong
// password return the identical ErrInvalidCredentials so callers cannot
// probe which addresses are registered. Account status is not checked here:
// an INACTIVE account still logs in, a test pins that behaviour.
func (s *AuthService) Login(ctx context.Context, email, pass string) (*ports.AuthResult, error) {
	if email == "" || pass == "" {
		return nil, domain.ErrInvalidCredentials
	}

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if !password.Verify(pass, user.PasswordHash) {
		return nil, domain.ErrInvalidCredentials
	}

	signed, err := s.issuer.Issue(user.ID, user.Email, user.Role)
	if err != nil {
		return nil, err
	}
	return &ports.AuthResult{Token: signed, User: user}, nil
}

// VerifyToken validates a bearer token and returns its claims.
func (s *AuthService) VerifyToken(tokenString string) (*token.Claims, error) {
	return s.issuer.Verify(tokenString)
}

// Me fetches the account behind an authenticated identity.
func (s *AuthService) Me(ctx context.Context, userID string) (*domain.User, error) {
	return s.repo.FindByID(ctx, userID)
}
