package extension

import (
	"github.com/gofrs/uuid"
	"github.com/labstack/echo/v4"

	"github.com/traPtitech/jazzicon/router/consts"
)

// GetRequestID リクエストIDを返します
//
// middlewares.RequestIDを通っていない場合はヘッダーの値か新しいIDを返します
func GetRequestID(c echo.Context) string {
	if rid, ok := c.Get(consts.KeyRequestID).(string); ok {
		return rid
	}
	if rid := c.Request().Header.Get(echo.HeaderXRequestID); len(rid) > 0 {
		return rid
	}
	return uuid.Must(uuid.NewV4()).String()
}
