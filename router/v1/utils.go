package v1

import (
	vd "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/labstack/echo/v4"

	"github.com/traPtitech/jazzicon/router/extension/herror"
)

// bindAndValidate リクエストボディをバインドして検証します
func bindAndValidate(c echo.Context, i interface{}) error {
	if err := c.Bind(i); err != nil {
		return err
	}
	return validate(i)
}

// validate ozzo-validationで検証し、エラーをHTTPエラーに変換します
func validate(i interface{}) error {
	if err := vd.Validate(i); err != nil {
		if e, ok := err.(vd.InternalError); ok {
			return herror.InternalServerError(e.InternalError())
		}
		return herror.BadRequest(err)
	}
	return nil
}
