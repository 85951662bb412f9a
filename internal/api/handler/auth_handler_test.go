package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/gamevault/review-system/internal/api/middleware"
	"github.com/gamevault/review-system/internal/core/domain"
)

type stubAuthService struct {
	registerFn func(ctx context.Context, username, password, role string) (*domain.Account, error)
	loginFn    func(ctx context.Context, username, password, role string) (string, *domain.Account, error)
	profileFn  func(ctx context.Context, id string) (*domain.Account, error)
}

func (s *stubAuthService) Register(ctx context.Context, username, password, role string) (*domain.Account, error) {
	return s.registerFn(ctx, username, password, role)
}

func (s *stubAuthService) Login(ctx context.Context, username, password, role string) (string, *domain.Account, error) {
	return s.loginFn(ctx, username, password, role)
}

func (s *stubAuthService) Profile(ctx context.Context, id string) (*domain.Account, error) {
	return s.profileFn(ctx, id)
}

func newAuthContext(e *echo.Echo, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestAuthHandler_Register_Success(t *testing.T) {
	e := echo.New()
	stub := &stubAuthService{
		registerFn: func(ctx context.Context, username, password, role string) (*domain.Account, error) {
			if username != "alice" || password != "pw123456" || role != "user" {
				t.Fatalf("unexpected args: %s %s %s", username, password, role)
			}
			return &domain.Account{ID: "acc_1", Username: username, Role: role}, nil
		},
	}
	h := NewAuthHandler(stub)

	c, rec := newAuthContext(e, http.MethodPost, "/api/register/user", `{"username":"alice","password":"pw123456"}`)
	c.SetParamNames("role")
	c.SetParamValues("user")

	if err := h.Register(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["message"] != "user registered" {
		t.Fatalf("unexpected message: %q", resp["message"])
	}
}

func TestAuthHandler_Register_InvalidPayload(t *testing.T) {
	e := echo.New()
	stub := &stubAuthService{
		registerFn: func(ctx context.Context, username, password, role string) (*domain.Account, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	h := NewAuthHandler(stub)

	c, rec := newAuthContext(e, http.MethodPost, "/api/register/user", "not-json")
	c.SetParamNames("role")
	c.SetParamValues("user")

	if err := h.Register(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestAuthHandler_Login_Success(t *testing.T) {
	e := echo.New()
	stub := &stubAuthService{
		loginFn: func(ctx context.Context, username, password, role string) (string, *domain.Account, error) {
			if username != "alice" || password != "pw123456" || role != "admin" {
				t.Fatalf("unexpected args: %s %s %s", username, password, role)
			}
			return "token123", &domain.Account{ID: "acc_1", Username: username, Role: role}, nil
		},
	}
	h := NewAuthHandler(stub)

	c, rec := newAuthContext(e, http.MethodPost, "/api/login/admin", `{"username":"alice","password":"pw123456"}`)
	c.SetParamNames("role")
	c.SetParamValues("admin")

	if err := h.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["token"] != "token123" || resp["role"] != "admin" {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestAuthHandler_Me(t *testing.T) {
	e := echo.New()
	stub := &stubAuthService{
		profileFn: func(ctx context.Context, id string) (*domain.Account, error) {
			if id != "acc_1" {
				t.Fatalf("unexpected id: %s", id)
			}
			return &domain.Account{ID: id, Username: "alice", Role: "user"}, nil
		},
	}
	h := NewAuthHandler(stub)

	c, rec := newAuthContext(e, http.MethodGet, "/api/me", "")
	c.Set(middleware.CtxUserID, "acc_1")
	c.Set(middleware.CtxUsername, "alice")
	c.Set(middleware.CtxRole, "user")

	if err := h.Me(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	user := resp["user"]
	if user["username"] != "alice" || user["role"] != "user" {
		t.Fatalf("unexpected user payload: %+v", user)
	}
	if _, leaked := user["password_hash"]; leaked {
		t.Fatalf("password hash leaked in response")
	}
}

func TestAuthHandler_Me_NoClaims(t *testing.T) {
	e := echo.New()
	h := NewAuthHandler(&stubAuthService{})

	c, rec := newAuthContext(e, http.MethodGet, "/api/me", "")
	if err := h.Me(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}
