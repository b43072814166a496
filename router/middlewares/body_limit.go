package middlewares

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
)

// RequestBodyLimit リクエストボディの大きさをkb KBまでに制限するミドルウェア
//
// Content-Lengthが上限を超えるリクエストは読まずに413を返す。
// Content-Lengthが無いchunkedリクエストは読み出し時に上限で打ち切られる。
func RequestBodyLimit(kb int64) echo.MiddlewareFunc {
	limit := kb << 10
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if limit <= 0 {
				return next(c)
			}
			req := c.Request()
			if req.ContentLength > limit {
				return echo.NewHTTPError(http.StatusRequestEntityTooLarge, fmt.Sprintf("the request must be smaller than %dKB", kb))
			}
			req.Body = http.MaxBytesReader(c.Response(), req.Body, limit)
			return next(c)
		}
	}
}
