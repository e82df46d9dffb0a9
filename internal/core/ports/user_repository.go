package ports

import (
	"context"

	"github.com/timekeeper/inventory-system/internal/core/domain"
)

// UserPatch carries the optional fields of a user update. Nil fields are
// left untouched.
type UserPatch struct {
	Name   *string
	Email  *string
	Role   *domain.Role
	Status *domain.UserStatus
}

// UserRepository defines the persistence contract for user accounts.
// Create must surface the storage layer's unique-email violation as
// domain.ErrUserExists; the service's pre-check alone cannot close the
// check-then-insert race.
type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindAll(ctx context.Context) ([]domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	Update(ctx context.Context, id string, patch UserPatch) (*domain.User, error)
	Delete(ctx context.Context, id string) error
	CountByStatus(ctx context.Context, status domain.UserStatus) (int64, error)
}
