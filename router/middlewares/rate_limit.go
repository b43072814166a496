package middlewares

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/traPtitech/jazzicon/router/extension/herror"
)

// RateLimiter IPアドレスごとのリクエストレート制限ミドルウェア
func RateLimiter(limit rate.Limit, burst int, logger *zap.Logger) echo.MiddlewareFunc {
	return middleware.RateLimiterWithConfig(middleware.RateLimiterConfig{
		Store: middleware.NewRateLimiterMemoryStoreWithConfig(middleware.RateLimiterMemoryStoreConfig{
			Rate:      limit,
			Burst:     burst,
			ExpiresIn: 3 * time.Minute,
		}),
		IdentifierExtractor: func(c echo.Context) (string, error) {
			return c.RealIP(), nil
		},
		ErrorHandler: func(_ echo.Context, err error) error {
			return herror.InternalServerError(err)
		},
		DenyHandler: func(c echo.Context, identifier string, _ error) error {
			logger.Warn("Exceeded rate limit.",
				zap.String("path", c.Path()),
				zap.String("ip", identifier),
			)
			return herror.HTTPError(http.StatusTooManyRequests, "rate limit exceeded")
		},
	})
}
