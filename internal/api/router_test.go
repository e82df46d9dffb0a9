package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"

	"github.com/timekeeper/inventory-system/internal/api/handler"
	"github.com/timekeeper/inventory-system/internal/core/domain"
	"github.com/timekeeper/inventory-system/internal/core/ports"
	"github.com/timekeeper/inventory-system/internal/core/service"
	"github.com/timekeeper/inventory-system/internal/pkg/token"
)

// memUserRepo is an in-memory UserRepository with the same unique-email
// semantics as the Mongo implementation.
type memUserRepo struct {
	users map[string]*domain.User
	seq   int
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: make(map[string]*domain.User)}
}

func (r *memUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	if u, ok := r.users[email]; ok {
		clone := *u
		return &clone, nil
	}
	return nil, domain.ErrUserNotFound
}

func (r *memUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			clone := *u
			return &clone, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *memUserRepo) FindAll(_ context.Context) ([]domain.User, error) {
	out := make([]domain.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, *u)
	}
	return out, nil
}

func (r *memUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	if _, exists := r.users[user.Email]; exists {
		return nil, domain.ErrUserExists
	}
	clone := *user
	r.seq++
	clone.ID = fmt.Sprintf("user_%d", r.seq)
	r.users[clone.Email] = &clone
	out := clone
	return &out, nil
}

func (r *memUserRepo) Update(_ context.Context, id string, patch ports.UserPatch) (*domain.User, error) {
	for _, u := range r.users {
		if u.ID != id {
			continue
		}
		if patch.Name != nil {
			u.Name = *patch.Name
		}
		if patch.Role != nil {
			u.Role = *patch.Role
		}
		if patch.Status != nil {
			u.Status = *patch.Status
		}
		clone := *u
		return &clone, nil
	}
	return nil, domain.ErrUserNotFound
}

func (r *memUserRepo) Delete(_ context.Context, id string) error {
	for email, u := range r.users {
		if u.ID == id {
			delete(r.users, email)
			return nil
		}
	}
	return domain.ErrUserNotFound
}

func (r *memUserRepo) CountByStatus(_ context.Context, status domain.UserStatus) (int64, error) {
	var n int64
	for _, u := range r.users {
		if u.Status == status {
			n++
		}
	}
	return n, nil
}

func newTestRouter(t *testing.T) (*echo.Echo, *memUserRepo) {
	t.Helper()
	repo := newMemUserRepo()
	issuer := token.NewIssuer("test-secret", time.Hour, nil)
	authSvc := service.NewAuthService(repo, issuer)
	userSvc := service.NewUserService(repo)

	e := NewRouter(Deps{
		AuthHandler:      handler.NewAuthHandler(authSvc),
		UserHandler:      handler.NewUserHandler(userSvc),
		ProductHandler:   handler.NewProductHandler(nil),
		CategoryHandler:  handler.NewCategoryHandler(nil),
		BrandHandler:     handler.NewBrandHandler(nil),
		DashboardHandler: handler.NewDashboardHandler(nil),
		TokenVerifier:    issuer,
		Logger:           zerolog.Nop(),
		Metrics:          prometheus.NewRegistry(),
	})
	return e, repo
}

func doJSON(e *echo.Echo, method, path, body, bearer string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json %q: %v", rec.Body.String(), err)
	}
	return resp
}

// Full walk through the auth surface: register, login, role gate, duplicate.
func TestRouter_AuthFlow(t *testing.T) {
	e, _ := newTestRouter(t)

	// Register a MANAGER.
	rec := doJSON(e, http.MethodPost, "/api/auth/register",
		`{"email":"a@x.com","password":"secret123","role":"MANAGER"}`, "")
	if rec.Code != http.StatusCreated {
		t.Fatalf("register: expected 201, got %d (%s)", rec.Code, rec.Body.String())
	}
	resp := decodeEnvelope(t, rec)
	if resp["success"] != true {
		t.Fatalf("expected success envelope, got %v", resp)
	}
	data := resp["data"].(map[string]any)
	user := data["user"].(map[string]any)
	if user["role"] != "MANAGER" {
		t.Fatalf("expected MANAGER role, got %v", user["role"])
	}
	if _, leaked := user["passwordHash"]; leaked {
		t.Fatalf("password hash leaked in response")
	}
	if _, leaked := user["password_hash"]; leaked {
		t.Fatalf("password hash leaked in response")
	}

	// Login with the same credentials.
	rec = doJSON(e, http.MethodPost, "/api/auth/login",
		`{"email":"a@x.com","password":"secret123"}`, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("login: expected 200, got %d (%s)", rec.Code, rec.Body.String())
	}
	resp = decodeEnvelope(t, rec)
	tok := resp["data"].(map[string]any)["token"].(string)
	if tok == "" {
		t.Fatalf("expected token in login response")
	}

	claims, err := token.NewIssuer("test-secret", time.Hour, nil).Verify(tok)
	if err != nil {
		t.Fatalf("issued token did not verify: %v", err)
	}
	if claims.Email != "a@x.com" || claims.Role != domain.RoleManager {
		t.Fatalf("unexpected claims: %+v", claims)
	}

	// A MANAGER token on an ADMIN-only route is rejected.
	rec = doJSON(e, http.MethodDelete, "/api/users/someone", "", tok)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for manager on admin route, got %d", rec.Code)
	}

	// Registering the same email again conflicts.
	rec = doJSON(e, http.MethodPost, "/api/auth/register",
		`{"email":"a@x.com","password":"other456"}`, "")
	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409 for duplicate email, got %d", rec.Code)
	}
	resp = decodeEnvelope(t, rec)
	if resp["success"] != false {
		t.Fatalf("expected failure envelope, got %v", resp)
	}
}

func TestRouter_Register_MissingFields(t *testing.T) {
	e, _ := newTestRouter(t)

	for _, body := range []string{
		`{"password":"secret123"}`,
		`{"email":"a@x.com"}`,
		`{"email":"not-an-email","password":"secret123"}`,
	} {
		rec := doJSON(e, http.MethodPost, "/api/auth/register", body, "")
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400 for %s, got %d", body, rec.Code)
		}
	}
}

func TestRouter_Login_BadCredentials(t *testing.T) {
	e, _ := newTestRouter(t)

	rec := doJSON(e, http.MethodPost, "/api/auth/register",
		`{"email":"a@x.com","password":"secret123"}`, "")
	if rec.Code != http.StatusCreated {
		t.Fatalf("register failed: %d", rec.Code)
	}

	wrongPass := doJSON(e, http.MethodPost, "/api/auth/login",
		`{"email":"a@x.com","password":"wrong-pass"}`, "")
	noUser := doJSON(e, http.MethodPost, "/api/auth/login",
		`{"email":"ghost@x.com","password":"whatever1"}`, "")

	if wrongPass.Code != http.StatusUnauthorized || noUser.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401/401, got %d/%d", wrongPass.Code, noUser.Code)
	}
	// Identical body for both failure modes.
	if wrongPass.Body.String() != noUser.Body.String() {
		t.Fatalf("credential failures must be indistinguishable: %q vs %q",
			wrongPass.Body.String(), noUser.Body.String())
	}
}

func TestRouter_ProtectedRoutes(t *testing.T) {
	e, _ := newTestRouter(t)

	// No header.
	rec := doJSON(e, http.MethodGet, "/api/users", "", "")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", rec.Code)
	}

	// Garbage token.
	rec = doJSON(e, http.MethodGet, "/api/users", "", "garbage")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 with garbage token, got %d", rec.Code)
	}

	// Valid ADMIN token reaches the handler.
	rec = doJSON(e, http.MethodPost, "/api/auth/register",
		`{"email":"admin@x.com","password":"secret123","role":"ADMIN"}`, "")
	if rec.Code != http.StatusCreated {
		t.Fatalf("register failed: %d", rec.Code)
	}
	tok := decodeEnvelope(t, rec)["data"].(map[string]any)["token"].(string)

	rec = doJSON(e, http.MethodGet, "/api/users", "", tok)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 for admin list users, got %d (%s)", rec.Code, rec.Body.String())
	}
}

func TestRouter_Me(t *testing.T) {
	e, _ := newTestRouter(t)

	rec := doJSON(e, http.MethodPost, "/api/auth/register",
		`{"email":"a@x.com","password":"secret123","name":"Alice"}`, "")
	if rec.Code != http.StatusCreated {
		t.Fatalf("register failed: %d", rec.Code)
	}
	tok := decodeEnvelope(t, rec)["data"].(map[string]any)["token"].(string)

	rec = doJSON(e, http.MethodGet, "/api/auth/me", "", tok)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d (%s)", rec.Code, rec.Body.String())
	}
	user := decodeEnvelope(t, rec)["data"].(map[string]any)
	if user["email"] != "a@x.com" || user["name"] != "Alice" {
		t.Fatalf("unexpected user payload: %+v", user)
	}

	rec = doJSON(e, http.MethodGet, "/api/auth/me", "", "")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", rec.Code)
	}
}

// Expired tokens are rejected at the middleware with 401.
func TestRouter_ExpiredToken(t *testing.T) {
	e, _ := newTestRouter(t)

	past := func() time.Time { return time.Now().Add(-2 * time.Hour) }
	stale := token.NewIssuer("test-secret", time.Hour, past)
	tok, err := stale.Issue("u1", "a@x.com", domain.RoleAdmin)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	rec := doJSON(e, http.MethodGet, "/api/users", "", tok)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for expired token, got %d", rec.Code)
	}
}
