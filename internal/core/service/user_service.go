package service

import (
	"context"
	"fmt"

	"github.com/timekeeper/inventory-system/internal/core/domain"
	"github.com/timekeeper/inventory-system/internal/core/ports"
)

// UserService implements account administration over the user repository.
type UserService struct {
	repo ports.UserRepository
}

func NewUserService(repo ports.UserRepository) *UserService {
	return &UserService{repo: repo}
}

func (s *UserService) List(ctx context.Context) ([]domain.User, error) {
	return s.repo.FindAll(ctx)
}

func (s *UserService) Get(ctx context.Context, id string) (*domain.User, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *UserService) Update(ctx context.Context, id string, patch ports.UserPatch) (*domain.User, error) {
	if patch.Role != nil && !patch.Role.Valid() {
		return nil, fmt.Errorf("%w: role must be ADMIN or MANAGER", domain.ErrInvalidInput)
	}
	if patch.Status != nil && !patch.Status.Valid() {
		return nil, fmt.Errorf("%w: status must be ACTIVE or INACTIVE", domain.ErrInvalidInput)
	}
	return s.repo.Update(ctx, id, patch)
}

func (s *UserService) UpdateRole(ctx context.Context, id string, role domain.Role) (*domain.User, error) {
	if !role.Valid() {
		return nil, fmt.Errorf("%w: role must be ADMIN or MANAGER", domain.ErrInvalidInput)
	}
	return s.repo.Update(ctx, id, ports.UserPatch{Role: &role})
}

func (s *UserService) UpdateStatus(ctx context.Context, id string, status domain.UserStatus) (*domain.User, error) {
	if !status.Valid() {
		return nil, fmt.Errorf("%w: status must be ACTIVE or INACTIVE", domain.ErrInvalidInput)
	}
	return s.repo.Update(ctx, id, ports.UserPatch{Status: &status})
}

// Delete removes an account. Deleting the acting account itself is refused.
func (s *UserService) Delete(ctx context.Context, actorID, id string) error {
	if actorID == id {
		return domain.ErrSelfDeletion
	}
	return s.repo.Delete(ctx, id)
}
