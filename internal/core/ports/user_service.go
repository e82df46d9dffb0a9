package ports

import (
	"context"

	"github.com/timekeeper/inventory-system/internal/core/domain"
)

// UserService exposes account administration. Role and status changes are
// admin-only; the role gate lives in the middleware chain, self-deletion is
// rejected here.
type UserService interface {
	List(ctx context.Context) ([]domain.User, error)
	Get(ctx context.Context, id string) (*domain.User, error)
	Update(ctx context.Context, id string, patch UserPatch) (*domain.User, error)
	UpdateRole(ctx context.Context, id string, role domain.Role) (*domain.User, error)
	UpdateStatus(ctx context.Context, id string, status domain.UserStatus) (*domain.User, error)
	Delete(ctx context.Context, actorID, id string) error
}
