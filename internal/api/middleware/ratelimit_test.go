package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

type stubLimiter struct {
	allowed    bool
	retryAfter int
	err        error
}

func (s *stubLimiter) Allow(context.Context, string) (bool, int, error) {
	return s.allowed, s.retryAfter, s.err
}

func TestLoginThrottle_Allowed(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/usuario/login", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	handler := LoginThrottle(&stubLimiter{allowed: true}, zerolog.Nop())(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next not called")
	}
}

func TestLoginThrottle_Limited(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/usuario/login", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := LoginThrottle(&stubLimiter{allowed: false, retryAfter: 42}, zerolog.Nop())(func(c echo.Context) error {
		t.Fatalf("next must not be called")
		return nil
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429, got %d", rec.Code)
	}
	if got := rec.Header().Get("Retry-After"); got != "42" {
		t.Fatalf("expected Retry-After 42, got %q", got)
	}
}

func TestLoginThrottle_FailsOpen(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/usuario/login", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	handler := LoginThrottle(&stubLimiter{err: errors.New("redis down")}, zerolog.Nop())(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("throttle must fail open when the store errors")
	}
}
