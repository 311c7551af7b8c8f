package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/PrandiF/gevp-back/internal/core/domain"
	"github.com/PrandiF/gevp-back/internal/core/ports"
)

type stubAuthService struct {
	loginFn  func(ctx context.Context, username, password string) (*ports.SessionToken, *domain.User, error)
	listFn   func(ctx context.Context) ([]*domain.User, error)
	deleteFn func(ctx context.Context, id string) error
}

func (s *stubAuthService) Login(ctx context.Context, username, password string) (*ports.SessionToken, *domain.User, error) {
	return s.loginFn(ctx, username, password)
}

func (s *stubAuthService) Verify(string) (*ports.TokenClaims, error) {
	return nil, domain.ErrInvalidCredentials
}

func (s *stubAuthService) ListUsers(ctx context.Context) ([]*domain.User, error) {
	return s.listFn(ctx)
}

func (s *stubAuthService) DeleteUser(ctx context.Context, id string) error {
	return s.deleteFn(ctx, id)
}

func newTestContext(t *testing.T, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestAuthHandler_Login_Success(t *testing.T) {
	expires := time.Now().Add(time.Hour).Truncate(time.Second)
	stub := &stubAuthService{
		loginFn: func(_ context.Context, username, password string) (*ports.SessionToken, *domain.User, error) {
			if username != "gevp" || password != "secret" {
				t.Fatalf("unexpected credentials: %s %s", username, password)
			}
			token := &ports.SessionToken{Value: "signed-token", Expires: expires}
			return token, &domain.User{ID: "u1", Username: "gevp", Role: domain.RoleMember}, nil
		},
	}
	handler := NewAuthHandler(stub)

	c, rec := newTestContext(t, http.MethodPost, "/api/usuario/login", `{"username":"gevp","password":"secret"}`)
	if err := handler.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp loginResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if resp.Token != "signed-token" || resp.User.Username != "gevp" {
		t.Fatalf("unexpected response: %+v", resp)
	}

	cookies := rec.Result().Cookies()
	if len(cookies) != 1 {
		t.Fatalf("expected 1 cookie, got %d", len(cookies))
	}
	cookie := cookies[0]
	if cookie.Name != TokenCookie || cookie.Value != "signed-token" {
		t.Fatalf("unexpected cookie: %s=%s", cookie.Name, cookie.Value)
	}
	if !cookie.HttpOnly || !cookie.Secure || cookie.SameSite != http.SameSiteNoneMode || cookie.Path != "/" {
		t.Fatalf("unexpected cookie attributes: %+v", cookie)
	}
}

func TestAuthHandler_Login_WrongPassword(t *testing.T) {
	stub := &stubAuthService{
		loginFn: func(context.Context, string, string) (*ports.SessionToken, *domain.User, error) {
			return nil, nil, domain.ErrInvalidCredentials
		},
	}
	handler := NewAuthHandler(stub)

	c, rec := newTestContext(t, http.MethodPost, "/api/usuario/login", `{"username":"gevp","password":"nope"}`)
	if err := handler.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAuthHandler_Login_UnknownUser(t *testing.T) {
	stub := &stubAuthService{
		loginFn: func(context.Context, string, string) (*ports.SessionToken, *domain.User, error) {
			return nil, nil, domain.ErrUserNotFound
		},
	}
	handler := NewAuthHandler(stub)

	c, rec := newTestContext(t, http.MethodPost, "/api/usuario/login", `{"username":"ghost","password":"x"}`)
	if err := handler.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestAuthHandler_Login_MissingFields(t *testing.T) {
	handler := NewAuthHandler(&stubAuthService{
		loginFn: func(context.Context, string, string) (*ports.SessionToken, *domain.User, error) {
			t.Fatalf("service must not be called on invalid payload")
			return nil, nil, nil
		},
	})

	c, _ := newTestContext(t, http.MethodPost, "/api/usuario/login", `{"username":"gevp"}`)
	err := handler.Login(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestAuthHandler_Logout_ClearsCookie(t *testing.T) {
	handler := NewAuthHandler(&stubAuthService{})

	c, rec := newTestContext(t, http.MethodPost, "/api/usuario/logout", "")
	if err := handler.Logout(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	cookies := rec.Result().Cookies()
	if len(cookies) != 1 {
		t.Fatalf("expected 1 cookie, got %d", len(cookies))
	}
	cookie := cookies[0]
	if cookie.Name != TokenCookie || cookie.Value != "" || cookie.MaxAge != -1 {
		t.Fatalf("expected expired empty cookie, got %+v", cookie)
	}
}

func TestAuthHandler_ListUsers(t *testing.T) {
	stub := &stubAuthService{
		listFn: func(context.Context) ([]*domain.User, error) {
			return []*domain.User{
				{ID: "u1", Username: "gevp", Role: domain.RoleMember},
				{ID: "u2", Username: "departamento fisico", Role: domain.RoleStaff},
			}, nil
		},
	}
	handler := NewAuthHandler(stub)

	c, rec := newTestContext(t, http.MethodGet, "/api/usuario", "")
	if err := handler.ListUsers(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var users []*domain.User
	if err := json.Unmarshal(rec.Body.Bytes(), &users); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if len(users) != 2 {
		t.Fatalf("expected 2 users, got %d", len(users))
	}
	// Password hashes must never appear in responses.
	if strings.Contains(rec.Body.String(), "password") {
		t.Fatalf("response leaks password material: %s", rec.Body.String())
	}
}

func TestAuthHandler_DeleteUser_NotFound(t *testing.T) {
	stub := &stubAuthService{
		deleteFn: func(_ context.Context, id string) error {
			return domain.ErrUserNotFound
		},
	}
	handler := NewAuthHandler(stub)

	c, _ := newTestContext(t, http.MethodDelete, "/api/usuario/u9", "")
	c.SetParamNames("id")
	c.SetParamValues("u9")

	err := handler.DeleteUser(c)
	if err == nil {
		t.Fatalf("expected error to propagate to the error handler")
	}
}
