package router

import (
	"net/http"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"github.com/traPtitech/jazzicon/router/consts"
	"github.com/traPtitech/jazzicon/router/extension"
	"github.com/traPtitech/jazzicon/router/middlewares"
	v1 "github.com/traPtitech/jazzicon/router/v1"
	"github.com/traPtitech/jazzicon/service/icon"
)

// Setup APIサーバーのルーティングを設定したechoを返します
func Setup(svc icon.Service, logger *zap.Logger, config *Config) *echo.Echo {
	logger = logger.Named("router")
	e := newEcho(logger, config)

	api := e.Group("/api")
	api.GET("/metrics", echoprometheus.NewHandler())
	api.GET("/ping", func(c echo.Context) error { return c.String(http.StatusOK, http.StatusText(http.StatusOK)) })

	h := &v1.Handlers{
		Icon:   svc,
		Logger: logger.Named("v1"),
		Config: v1.Config{
			Version:          config.Version,
			Revision:         config.Revision,
			RateLimit:        config.RateLimit,
			RateBurst:        config.RateBurst,
			MaxDiameter:      config.MaxDiameter,
			MaxShapeCount:    config.MaxShapeCount,
			MaxColors:        config.MaxColors,
			MaxRequestBodyKB: config.MaxRequestBodyKB,
		},
	}
	h.Setup(api)

	return e
}

func newEcho(logger *zap.Logger, config *Config) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = extension.ErrorHandler(logger)
	e.Binder = &extension.Binder{}

	// ミドルウェア設定
	e.Use(middlewares.ServerVersion(config.Version))
	e.Use(middlewares.RequestID())
	if config.AccessLogging {
		e.Use(middlewares.AccessLogging(logger.Named("access_log"), config.Development))
	}
	e.Use(middlewares.Recovery(logger))
	if config.Gzipped {
		e.Use(middlewares.Gzip())
	}
	e.Use(extension.Wrap())
	e.Use(middlewares.RequestCounter())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		ExposeHeaders: []string{consts.HeaderVersion, consts.HeaderETag, echo.HeaderXRequestID},
		AllowHeaders:  []string{echo.HeaderContentType, consts.HeaderIfNoneMatch},
		MaxAge:        3600,
	}))
	e.Use(echoprometheus.NewMiddleware("jazzicon"))

	return e
}
