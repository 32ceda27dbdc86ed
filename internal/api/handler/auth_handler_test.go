package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/nexus-inventory/inventory-system/internal/core/domain"
	"github.com/nexus-inventory/inventory-system/internal/core/ports"
)

type stubAuthService struct {
	loginFn    func(ctx context.Context, username, password string) (*ports.LoginResult, error)
	registerFn func(ctx context.Context, input ports.RegisterInput) (*domain.User, error)
	requestFn  func(ctx context.Context, email string) (*ports.RequestResetResult, error)
	confirmFn  func(ctx context.Context, input ports.ConfirmResetInput) error
	recoverFn  func(ctx context.Context, answer string) (*ports.RecoveredCredentials, error)
}

func (s *stubAuthService) Login(ctx context.Context, username, password string) (*ports.LoginResult, error) {
	return s.loginFn(ctx, username, password)
}

func (s *stubAuthService) Register(ctx context.Context, input ports.RegisterInput) (*domain.User, error) {
	return s.registerFn(ctx, input)
}

func (s *stubAuthService) RequestPasswordReset(ctx context.Context, email string) (*ports.RequestResetResult, error) {
	return s.requestFn(ctx, email)
}

func (s *stubAuthService) ConfirmPasswordReset(ctx context.Context, input ports.ConfirmResetInput) error {
	return s.confirmFn(ctx, input)
}

func (s *stubAuthService) RecoverAdminCredentials(ctx context.Context, answer string) (*ports.RecoveredCredentials, error) {
	return s.recoverFn(ctx, answer)
}

func newTestContext(t *testing.T, method, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestAuthHandler_Login_Success(t *testing.T) {
	stub := &stubAuthService{
		loginFn: func(_ context.Context, username, password string) (*ports.LoginResult, error) {
			if username != "warehouse1" || password != "Password-123!" {
				t.Fatalf("unexpected args: %s %s", username, password)
			}
			return &ports.LoginResult{
				Token: "signed-token",
				User:  &domain.User{ID: "u1", Username: username, Role: domain.RoleUser},
			}, nil
		},
	}
	h := NewAuthHandler(stub)

	c, rec := newTestContext(t, http.MethodPost, "/auth/login",
		`{"username":"warehouse1","password":"Password-123!"}`)
	if err := h.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["token"] != "signed-token" {
		t.Fatalf("unexpected token: %v", resp["token"])
	}
	user, ok := resp["user"].(map[string]any)
	if !ok || user["username"] != "warehouse1" {
		t.Fatalf("unexpected user payload: %+v", resp["user"])
	}
	if _, leaked := user["password"]; leaked {
		t.Fatalf("password must not be serialized")
	}
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	stub := &stubAuthService{
		loginFn: func(context.Context, string, string) (*ports.LoginResult, error) {
			return nil, domain.ErrInvalidCredentials
		},
	}
	h := NewAuthHandler(stub)

	c, _ := newTestContext(t, http.MethodPost, "/auth/login",
		`{"username":"warehouse1","password":"wrong-password"}`)
	err := h.Login(c)
	// The sentinel bubbles up for the central error handler to map to 401.
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthHandler_Login_MissingFields(t *testing.T) {
	stub := &stubAuthService{
		loginFn: func(context.Context, string, string) (*ports.LoginResult, error) {
			t.Fatalf("service should not be called")
			return nil, nil
		},
	}
	h := NewAuthHandler(stub)

	c, _ := newTestContext(t, http.MethodPost, "/auth/login", `{"username":"warehouse1"}`)
	err := h.Login(c)
	var httpErr *echo.HTTPError
	if !errors.As(err, &httpErr) || httpErr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestAuthHandler_Register_Success(t *testing.T) {
	stub := &stubAuthService{
		registerFn: func(_ context.Context, input ports.RegisterInput) (*domain.User, error) {
			return &domain.User{
				ID:       "u1",
				Username: input.Username,
				Email:    input.Email,
				FullName: input.FullName,
				Role:     domain.RoleUser,
			}, nil
		},
	}
	h := NewAuthHandler(stub)

	c, rec := newTestContext(t, http.MethodPost, "/auth/register",
		`{"username":"warehouse9","email":"w9@example.com","password":"Password-123!","full_name":"Warehouse Nine"}`)
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
	if resp["role"] != "USER" {
		t.Fatalf("unexpected role: %v", resp["role"])
	}
}

func TestAuthHandler_RequestPasswordReset(t *testing.T) {
	stub := &stubAuthService{
		requestFn: func(_ context.Context, email string) (*ports.RequestResetResult, error) {
			if email != "w1@example.com" {
				t.Fatalf("unexpected email %q", email)
			}
			return &ports.RequestResetResult{Code: "123456", ExpiresIn: 600}, nil
		},
	}
	h := NewAuthHandler(stub)

	c, rec := newTestContext(t, http.MethodPost, "/auth/password-reset/request",
		`{"email":"w1@example.com"}`)
	if err := h.RequestPasswordReset(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"code":"123456"`) {
		t.Fatalf("code missing from response: %s", rec.Body.String())
	}
}

func TestAuthHandler_RecoverAdmin_Forbidden(t *testing.T) {
	stub := &stubAuthService{
		recoverFn: func(context.Context, string) (*ports.RecoveredCredentials, error) {
			return nil, domain.ErrForbidden
		},
	}
	h := NewAuthHandler(stub)

	c, _ := newTestContext(t, http.MethodPost, "/auth/recover-admin", `{"answer":"wrong"}`)
	if err := h.RecoverAdminCredentials(c); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}
