package middleware

import (
	"context"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

// LoginLimiter is the slice of the Redis throttle store the middleware needs.
type LoginLimiter interface {
	// Allow reports whether another attempt from key is permitted, and when
	// not, how many seconds remain in the current window.
	Allow(ctx context.Context, key string) (bool, int, error)
}

// LoginThrottle limits login attempts per client IP using a fixed window in
// Redis. On a Redis failure the request passes through: losing throttling is
// preferable to losing logins.
func LoginThrottle(limiter LoginLimiter, log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			allowed, retryAfter, err := limiter.Allow(c.Request().Context(), c.RealIP())
			if err != nil {
				log.Warn().Err(err).Msg("login throttle unavailable, allowing request")
				return next(c)
			}

			if !allowed {
				c.Response().Header().Set("Retry-After", strconv.Itoa(retryAfter))
				return c.JSON(http.StatusTooManyRequests, map[string]string{
					"error": "too many login attempts",
				})
			}
			return next(c)
		}
	}
}
