package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/timekeeper/inventory-system/internal/core/domain"
	"github.com/timekeeper/inventory-system/internal/core/ports"
	"github.com/timekeeper/inventory-system/internal/pkg/password"
	"github.com/timekeeper/inventory-system/internal/pkg/token"
)

type stubUserRepo struct {
	users map[string]*domain.User // keyed by email
	seq   int
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	if u, ok := r.users[email]; ok {
		return cloneUser(u), nil
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindAll(_ context.Context) ([]domain.User, error) {
	out := make([]domain.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, *u)
	}
	return out, nil
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	// Mirrors the storage layer's unique index on email.
	if _, exists := r.users[user.Email]; exists {
		return nil, domain.ErrUserExists
	}
	copy := cloneUser(user)
	r.seq++
	copy.ID = fmt.Sprintf("user_%d", r.seq)
	r.users[copy.Email] = cloneUser(copy)
	return copy, nil
}

func (r *stubUserRepo) Update(_ context.Context, id string, patch ports.UserPatch) (*domain.User, error) {
	for _, u := range r.users {
		if u.ID != id {
			continue
		}
		if patch.Name != nil {
			u.Name = *patch.Name
		}
		if patch.Email != nil {
			delete(r.users, u.Email)
			u.Email = *patch.Email
			r.users[u.Email] = u
		}
		if patch.Role != nil {
			u.Role = *patch.Role
		}
		if patch.Status != nil {
			u.Status = *patch.Status
		}
		return cloneUser(u), nil
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) Delete(_ context.Context, id string) error {
	for email, u := range r.users {
		if u.ID == id {
			delete(r.users, email)
			return nil
		}
	}
	return domain.ErrUserNotFound
}

func (r *stubUserRepo) CountByStatus(_ context.Context, status domain.UserStatus) (int64, error) {
	var n int64
	for _, u := range r.users {
		if u.Status == status {
			n++
		}
	}
	return n, nil
}

func newTestAuthService(repo ports.UserRepository) *AuthService {
	return NewAuthService(repo, token.NewIssuer("secret", time.Hour, nil))
}

func TestAuthService_Register_Success(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestAuthService(repo)

	res, err := svc.Register(context.Background(), ports.RegisterInput{
		Email:    "a@x.com",
		Password: "secret123",
		Name:     "Alice",
	})
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if res.Token == "" {
		t.Fatalf("expected token, got empty")
	}
	if res.User.PasswordHash == "secret123" {
		t.Fatalf("expected password to be hashed")
	}
	if !password.Verify("secret123", res.User.PasswordHash) {
		t.Fatalf("stored hash does not match password")
	}
	if res.User.Role != domain.RoleManager {
		t.Fatalf("expected role to default to MANAGER, got %s", res.User.Role)
	}
	if res.User.Status != domain.StatusActive {
		t.Fatalf("expected new account to be ACTIVE, got %s", res.User.Status)
	}
}

func TestAuthService_Register_MissingFields(t *testing.T) {
	svc := newTestAuthService(newStubUserRepo())

	if _, err := svc.Register(context.Background(), ports.RegisterInput{Password: "p"}); !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for missing email, got %v", err)
	}
	if _, err := svc.Register(context.Background(), ports.RegisterInput{Email: "a@x.com"}); !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for missing password, got %v", err)
	}
	if _, err := svc.Register(context.Background(), ports.RegisterInput{Email: "a@x.com", Password: "p", Role: "SUPERUSER"}); !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for unknown role, got %v", err)
	}
}

func TestAuthService_Register_Duplicate(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestAuthService(repo)

	if _, err := svc.Register(context.Background(), ports.RegisterInput{Email: "a@x.com", Password: "p1"}); err != nil {
		t.Fatalf("first register failed: %v", err)
	}
	if _, err := svc.Register(context.Background(), ports.RegisterInput{Email: "a@x.com", Password: "p2"}); !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
}

// The pre-check cannot see a user inserted between the lookup and the write.
// The repository's unique-constraint signal must still surface as
// ErrUserExists so concurrent registrations yield exactly one success.
func TestAuthService_Register_RaceBackstop(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestAuthService(racePrecheckRepo{repo})

	if _, err := svc.Register(context.Background(), ports.RegisterInput{Email: "a@x.com", Password: "p"}); err != nil {
		t.Fatalf("seed register failed: %v", err)
	}
	if _, err := svc.Register(context.Background(), ports.RegisterInput{Email: "a@x.com", Password: "p"}); !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists from insert backstop, got %v", err)
	}
}

// racePrecheckRepo simulates the lost pre-check: FindByEmail always reports
// the email as free, so only the Create-side unique constraint can catch the
// duplicate.
type racePrecheckRepo struct {
	*stubUserRepo
}

func (r racePrecheckRepo) FindByEmail(context.Context, string) (*domain.User, error) {
	return nil, domain.ErrUserNotFound
}

func TestAuthService_Login_Success(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestAuthService(repo)

	if _, err := svc.Register(context.Background(), ports.RegisterInput{Email: "a@x.com", Password: "secret123", Role: domain.RoleAdmin}); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	res, err := svc.Login(context.Background(), "a@x.com", "secret123")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if res.Token == "" {
		t.Fatalf("expected token, got empty")
	}

	claims, err := svc.VerifyToken(res.Token)
	if err != nil {
		t.Fatalf("issued token failed verification: %v", err)
	}
	if claims.Email != "a@x.com" {
		t.Fatalf("unexpected email claim: %q", claims.Email)
	}
	if claims.Role != domain.RoleAdmin {
		t.Fatalf("unexpected role claim: %q", claims.Role)
	}
	if claims.UserID != res.User.ID {
		t.Fatalf("user id claim %q does not match user %q", claims.UserID, res.User.ID)
	}
}

// Wrong password and unknown email must be indistinguishable to the caller.
func TestAuthService_Login_IndistinguishableFailures(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestAuthService(repo)

	if _, err := svc.Register(context.Background(), ports.RegisterInput{Email: "a@x.com", Password: "goodpass"}); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	_, errWrongPass := svc.Login(context.Background(), "a@x.com", "badpass")
	_, errNoUser := svc.Login(context.Background(), "ghost@x.com", "whatever")

	if !errors.Is(errWrongPass, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for wrong password, got %v", errWrongPass)
	}
	if !errors.Is(errNoUser, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for unknown email, got %v", errNoUser)
	}
	if errWrongPass.Error() != errNoUser.Error() {
		t.Fatalf("failure messages differ: %q vs %q", errWrongPass, errNoUser)
	}
}

// An INACTIVE account can still log in. Login does not gate on status; this
// test pins that behaviour so a future status gate is a deliberate change.
func TestAuthService_Login_InactiveAccountStillAllowed(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestAuthService(repo)

	res, err := svc.Register(context.Background(), ports.RegisterInput{Email: "a@x.com", Password: "secret123"})
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	inactive := domain.StatusInactive
	if _, err := repo.Update(context.Background(), res.User.ID, ports.UserPatch{Status: &inactive}); err != nil {
		t.Fatalf("deactivate failed: %v", err)
	}

	if _, err := svc.Login(context.Background(), "a@x.com", "secret123"); err != nil {
		t.Fatalf("expected inactive account to log in, got %v", err)
	}
}

func TestAuthService_VerifyToken_Invalid(t *testing.T) {
	svc := newTestAuthService(newStubUserRepo())

	if _, err := svc.VerifyToken("not-a-token"); !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestAuthService_Me(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestAuthService(repo)

	res, err := svc.Register(context.Background(), ports.RegisterInput{Email: "a@x.com", Password: "secret123", Name: "Alice"})
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	user, err := svc.Me(context.Background(), res.User.ID)
	if err != nil {
		t.Fatalf("Me failed: %v", err)
	}
	if user.Email != "a@x.com" || user.Name != "Alice" {
		t.Fatalf("unexpected user: %+v", user)
	}

	if _, err := svc.Me(context.Background(), "missing"); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}
