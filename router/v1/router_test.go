package v1

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gavv/httpexpect/v2"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/traPtitech/jazzicon/router/extension"
	"github.com/traPtitech/jazzicon/service/icon"
)

var testConfig = Config{
	Version:       "v0.0.0-test",
	Revision:      "deadbeef",
	MaxDiameter:   4096,
	MaxShapeCount: 64,
	MaxColors:     64,

	MaxRequestBodyKB: 64,
}

func setup(t *testing.T, config Config) *httptest.Server {
	t.Helper()

	svc, err := icon.NewService(icon.Config{
		CacheSize: 100,
		CacheTTL:  time.Minute,
	}, zap.NewNop())
	require.NoError(t, err)
	return setupWithService(t, config, svc)
}

func setupWithService(t *testing.T, config Config, svc icon.Service) *httptest.Server {
	t.Helper()

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = extension.ErrorHandler(zap.NewNop())
	e.Binder = &extension.Binder{}
	e.Use(extension.Wrap())

	h := &Handlers{
		Icon:   svc,
		Logger: zap.NewNop(),
		Config: config,
	}
	h.Setup(e.Group("/api"))

	server := httptest.NewServer(e)
	t.Cleanup(server.Close)
	return server
}

func makeExp(t *testing.T, server *httptest.Server) *httpexpect.Expect {
	t.Helper()
	return httpexpect.WithConfig(httpexpect.Config{
		BaseURL:  server.URL,
		Reporter: httpexpect.NewAssertReporter(t),
		Printers: []httpexpect.Printer{
			httpexpect.NewCurlPrinter(t),
			httpexpect.NewDebugPrinter(t, true),
		},
	})
}
