package middlewares

import (
	"github.com/labstack/echo/v4"

	"github.com/traPtitech/jazzicon/router/consts"
	"github.com/traPtitech/jazzicon/router/extension"
)

// RequestID リクエストIDを生成するミドルウェア
func RequestID() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			rid := extension.GetRequestID(c)
			c.Set(consts.KeyRequestID, rid)
			c.Response().Header().Set(echo.HeaderXRequestID, rid)
			return next(c)
		}
	}
}
