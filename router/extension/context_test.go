package extension

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gavv/httpexpect/v2"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/traPtitech/jazzicon/router/extension/herror"
)

func TestContext_JSON(t *testing.T) {
	t.Parallel()

	e := echo.New()
	e.HTTPErrorHandler = ErrorHandler(zap.NewNop())
	e.Use(Wrap())
	e.GET("/float", func(c echo.Context) error {
		return c.JSON(http.StatusOK, echo.Map{"scale": 2.0 / 3.0, "size": 200.0 / 3.0})
	})
	e.GET("/etag", func(c echo.Context) error {
		return ServeJSONWithETag(c, echo.Map{"scale": 2.0 / 3.0})
	})
	e.GET("/bad", func(c echo.Context) error {
		return herror.BadRequest("bad value")
	})
	e.GET("/internal", func(c echo.Context) error {
		return herror.InternalServerError(errors.New("failure"))
	})
	server := httptest.NewServer(e)
	t.Cleanup(server.Close)

	exp := func(t *testing.T) *httpexpect.Expect {
		t.Helper()
		return httpexpect.WithConfig(httpexpect.Config{
			BaseURL:  server.URL,
			Reporter: httpexpect.NewAssertReporter(t),
			Client: &http.Client{
				Timeout: time.Second * 30,
			},
		})
	}

	t.Run("full precision floats", func(t *testing.T) {
		t.Parallel()
		res := exp(t).GET("/float").
			Expect().
			Status(http.StatusOK)
		res.Header(echo.HeaderContentType).IsEqual(echo.MIMEApplicationJSONCharsetUTF8)
		body := res.Body()
		body.Contains(`"scale":0.6666666666666666`)
		body.Contains(`"size":66.66666666666667`)
	})

	t.Run("full precision floats with etag", func(t *testing.T) {
		t.Parallel()
		exp(t).GET("/etag").
			Expect().
			Status(http.StatusOK).
			Body().
			IsEqual(`{"scale":0.6666666666666666}`)
	})

	t.Run("error body", func(t *testing.T) {
		t.Parallel()
		exp(t).GET("/bad").
			Expect().
			Status(http.StatusBadRequest).
			JSON().Object().
			HasValue("message", "bad value")
	})

	t.Run("internal error body", func(t *testing.T) {
		t.Parallel()
		exp(t).GET("/internal").
			Expect().
			Status(http.StatusInternalServerError).
			JSON().Object().
			HasValue("message", http.StatusText(http.StatusInternalServerError))
	})
}
