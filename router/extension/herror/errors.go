package herror

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// NotFound 404エラーを返します
func NotFound(err ...interface{}) error {
	return HTTPError(http.StatusNotFound, err)
}

// BadRequest 400エラーを返します
func BadRequest(err ...interface{}) error {
	return HTTPError(http.StatusBadRequest, err)
}

// HTTPError 指定したステータスコードのエラーを返します
func HTTPError(code int, err interface{}) error {
	switch v := err.(type) {
	case []interface{}:
		if len(v) > 0 {
			return HTTPError(code, v[0])
		}
		return HTTPError(code, nil)
	case string:
		return echo.NewHTTPError(code, v)
	case error:
		return echo.NewHTTPError(code, v.Error()).SetInternal(v)
	case nil:
		return echo.NewHTTPError(code)
	default:
		return echo.NewHTTPError(code, v)
	}
}
