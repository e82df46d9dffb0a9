package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/timekeeper/inventory-system/internal/core/domain"
	"github.com/timekeeper/inventory-system/internal/core/ports"
	"github.com/timekeeper/inventory-system/internal/pkg/token"
)

type stubAuthService struct {
	registerFn func(ctx context.Context, in ports.RegisterInput) (*ports.AuthResult, error)
	loginFn    func(ctx context.Context, email, password string) (*ports.AuthResult, error)
	meFn       func(ctx context.Context, userID string) (*domain.User, error)
}

func (s *stubAuthService) Register(ctx context.Context, in ports.RegisterInput) (*ports.AuthResult, error) {
	return s.registerFn(ctx, in)
}

func (s *stubAuthService) Login(ctx context.Context, email, password string) (*ports.AuthResult, error) {
	return s.loginFn(ctx, email, password)
}

func (s *stubAuthService) VerifyToken(string) (*token.Claims, error) {
	return nil, domain.ErrInvalidToken
}

func (s *stubAuthService) Me(ctx context.Context, userID string) (*domain.User, error) {
	return s.meFn(ctx, userID)
}

func newEcho() *echo.Echo {
	e := echo.New()
	e.Validator = NewValidator()
	return e
}

func TestAuthHandler_Register_Success(t *testing.T) {
	e := newEcho()
	stub := &stubAuthService{
		registerFn: func(_ context.Context, in ports.RegisterInput) (*ports.AuthResult, error) {
			if in.Email != "alice@x.com" || in.Role != domain.RoleManager {
				t.Fatalf("unexpected input: %+v", in)
			}
			return &ports.AuthResult{
				Token: "token123",
				User:  &domain.User{ID: "u1", Email: in.Email, Role: in.Role, PasswordHash: "$2a$10$secret"},
			}, nil
		},
	}
	h := NewAuthHandler(stub)

	body := strings.NewReader(`{"email":"alice@x.com","password":"secret123","role":"MANAGER"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Register(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["success"] != true {
		t.Fatalf("expected success envelope, got %v", resp)
	}
	user := resp["data"].(map[string]any)["user"].(map[string]any)
	if user["email"] != "alice@x.com" {
		t.Fatalf("unexpected user payload: %+v", user)
	}
	// The hash never crosses the JSON boundary.
	raw := rec.Body.String()
	if strings.Contains(raw, "$2a$10$secret") {
		t.Fatalf("password hash leaked: %s", raw)
	}
}

func TestAuthHandler_Register_ServiceError(t *testing.T) {
	e := newEcho()
	stub := &stubAuthService{
		registerFn: func(context.Context, ports.RegisterInput) (*ports.AuthResult, error) {
			return nil, domain.ErrUserExists
		},
	}
	h := NewAuthHandler(stub)

	body := strings.NewReader(`{"email":"alice@x.com","password":"secret123"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	c := e.NewContext(req, httptest.NewRecorder())

	// The domain error propagates to the central error handler untouched.
	if err := h.Register(c); err != domain.ErrUserExists {
		t.Fatalf("expected ErrUserExists passthrough, got %v", err)
	}
}

func TestAuthHandler_Register_ValidationFailure(t *testing.T) {
	e := newEcho()
	stub := &stubAuthService{
		registerFn: func(context.Context, ports.RegisterInput) (*ports.AuthResult, error) {
			t.Fatalf("service should not be called")
			return nil, nil
		},
	}
	h := NewAuthHandler(stub)

	for _, body := range []string{
		`{"password":"secret123"}`,
		`{"email":"alice@x.com","password":"short"}`,
		`{"email":"alice@x.com","password":"secret123","role":"ROOT"}`,
	} {
		req := httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		c := e.NewContext(req, httptest.NewRecorder())

		err := h.Register(c)
		he, ok := err.(*echo.HTTPError)
		if !ok || he.Code != http.StatusBadRequest {
			t.Fatalf("expected 400 for %s, got %v", body, err)
		}
	}
}

func TestAuthHandler_Me_NoIdentity(t *testing.T) {
	e := newEcho()
	h := NewAuthHandler(&stubAuthService{})

	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	c := e.NewContext(req, httptest.NewRecorder())

	err := h.Me(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without identity, got %v", err)
	}
}
