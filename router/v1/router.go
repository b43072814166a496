package v1

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/traPtitech/jazzicon/router/middlewares"
	"github.com/traPtitech/jazzicon/service/icon"
)

type Handlers struct {
	Icon   icon.Service
	Logger *zap.Logger

	Config
}

type Config struct {
	Version  string
	Revision string

	// RateLimit アイコン生成APIのIPアドレスごとの秒間リクエスト数上限 0の場合は無制限
	RateLimit rate.Limit
	// RateBurst アイコン生成APIのバースト許容数
	RateBurst int
	// MaxDiameter リクエスト可能な最大直径
	MaxDiameter float64
	// MaxShapeCount リクエスト可能な最大図形数
	MaxShapeCount int
	// MaxColors リクエスト可能な最大色数
	MaxColors int
	// MaxRequestBodyKB POSTリクエストボディの上限(KB) 0の場合は無制限
	MaxRequestBodyKB int64
}

// Setup APIルーティングを行います
func (h *Handlers) Setup(e *echo.Group) {
	api := e.Group("/v1")
	{
		api.GET("/version", h.GetVersion)
		api.GET("/colors", h.GetDefaultColors)

		var limiters []echo.MiddlewareFunc
		if h.RateLimit > 0 {
			limiters = append(limiters, middlewares.RateLimiter(h.RateLimit, h.RateBurst, h.Logger.Named("rate_limit")))
		}
		apiIcon := api.Group("/icon", limiters...)
		{
			apiIcon.GET("", h.GetIcon)
			apiIcon.POST("", h.PostIcon, middlewares.RequestBodyLimit(h.MaxRequestBodyKB))
			apiIcon.GET("/:address", h.GetIconByAddress)
		}
	}
}
