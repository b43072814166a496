package cmd

import (
	"time"

	"github.com/spf13/viper"
	"golang.org/x/time/rate"

	"github.com/traPtitech/jazzicon/jazzicon"
	"github.com/traPtitech/jazzicon/router"
	"github.com/traPtitech/jazzicon/service/icon"
)

// Config 設定
type Config struct {
	// DevMode 開発モードかどうか (default: false)
	DevMode bool `mapstructure:"dev" yaml:"dev"`
	// Pprof pprofを有効にするかどうか (default: false)
	Pprof bool `mapstructure:"pprof" yaml:"pprof"`
	// LogLevel ログレベル 空の場合は開発モードでdebug、それ以外でinfo (default: "")
	LogLevel string `mapstructure:"logLevel" yaml:"logLevel"`

	// Port サーバーポート番号 (default: 3000)
	Port int `mapstructure:"port" yaml:"port"`
	// Gzip レスポンスのGZIP圧縮を有効にするかどうか (default: true)
	Gzip bool `mapstructure:"gzip" yaml:"gzip"`
	// ShutdownTimeout サーバーシャットダウン時のタイムアウト秒数 (default: 10)
	ShutdownTimeout int `mapstructure:"shutdownTimeout" yaml:"shutdownTimeout"`

	// AccessLog HTTPアクセスログ設定
	AccessLog struct {
		// Enabled 有効かどうか (default: true)
		Enabled bool `mapstructure:"enabled" yaml:"enabled"`
	} `mapstructure:"accessLog" yaml:"accessLog"`

	// RateLimit アイコン生成APIのレート制限設定
	RateLimit struct {
		// RPS IPアドレスごとの秒間リクエスト数上限. 0は無制限 (default: 0)
		RPS float64 `mapstructure:"rps" yaml:"rps"`
		// Burst バースト許容数 (default: 20)
		Burst int `mapstructure:"burst" yaml:"burst"`
	} `mapstructure:"rateLimit" yaml:"rateLimit"`

	// Icon アイコン生成設定
	Icon struct {
		// DefaultDiameter 直径未指定時の直径 (default: 100)
		DefaultDiameter float64 `mapstructure:"defaultDiameter" yaml:"defaultDiameter"`
		// DefaultShapeCount 図形数未指定時の図形数 (default: 4)
		DefaultShapeCount int `mapstructure:"defaultShapeCount" yaml:"defaultShapeCount"`
		// Colors パレット未指定時のカラーパレット (default: jazzicon標準パレット)
		Colors []string `mapstructure:"colors" yaml:"colors"`
		// MaxDiameter リクエスト可能な最大直径 (default: 4096)
		MaxDiameter float64 `mapstructure:"maxDiameter" yaml:"maxDiameter"`
		// MaxShapeCount リクエスト可能な最大図形数 (default: 64)
		MaxShapeCount int `mapstructure:"maxShapeCount" yaml:"maxShapeCount"`
		// MaxColors リクエスト可能な最大色数 (default: 64)
		MaxColors int `mapstructure:"maxColors" yaml:"maxColors"`
		// MaxRequestBodyKB POSTリクエストボディの上限KB数. 0は無制限 (default: 64)
		MaxRequestBodyKB int64 `mapstructure:"maxRequestBodyKB" yaml:"maxRequestBodyKB"`
	} `mapstructure:"icon" yaml:"icon"`

	// Cache 生成済みアイコンキャッシュ設定
	Cache struct {
		// Size キャッシュする最大アイコン数 (default: 10000)
		Size int `mapstructure:"size" yaml:"size"`
		// TTL キャッシュ有効秒数 (default: 3600)
		TTL int `mapstructure:"ttl" yaml:"ttl"`
	} `mapstructure:"cache" yaml:"cache"`
}

func init() {
	viper.SetDefault("dev", false)
	viper.SetDefault("pprof", false)
	viper.SetDefault("logLevel", "")
	viper.SetDefault("port", 3000)
	viper.SetDefault("gzip", true)
	viper.SetDefault("shutdownTimeout", 10)
	viper.SetDefault("accessLog.enabled", true)
	viper.SetDefault("rateLimit.rps", 0)
	viper.SetDefault("rateLimit.burst", 20)
	viper.SetDefault("icon.defaultDiameter", jazzicon.DefaultDiameter)
	viper.SetDefault("icon.defaultShapeCount", jazzicon.DefaultShapeCount)
	viper.SetDefault("icon.colors", jazzicon.DefaultColors())
	viper.SetDefault("icon.maxDiameter", 4096)
	viper.SetDefault("icon.maxShapeCount", 64)
	viper.SetDefault("icon.maxColors", 64)
	viper.SetDefault("icon.maxRequestBodyKB", 64)
	viper.SetDefault("cache.size", 10000)
	viper.SetDefault("cache.ttl", 3600)
}

func provideRouterConfig(c *Config) *router.Config {
	return &router.Config{
		Development:      c.DevMode,
		Version:          Version,
		Revision:         Revision,
		AccessLogging:    c.AccessLog.Enabled,
		Gzipped:          c.Gzip,
		RateLimit:        rate.Limit(c.RateLimit.RPS),
		RateBurst:        c.RateLimit.Burst,
		MaxDiameter:      c.Icon.MaxDiameter,
		MaxShapeCount:    c.Icon.MaxShapeCount,
		MaxColors:        c.Icon.MaxColors,
		MaxRequestBodyKB: c.Icon.MaxRequestBodyKB,
	}
}

func provideIconServiceConfig(c *Config) icon.Config {
	return icon.Config{
		DefaultDiameter:   c.Icon.DefaultDiameter,
		DefaultShapeCount: c.Icon.DefaultShapeCount,
		Colors:            c.Icon.Colors,
		CacheSize:         c.Cache.Size,
		CacheTTL:          time.Duration(c.Cache.TTL) * time.Second,
	}
}

// iconDefaults CLIでの生成に用いるデフォルトオプション
func (c *Config) iconDefaults() jazzicon.Options {
	return jazzicon.Options{
		Diameter:   c.Icon.DefaultDiameter,
		ShapeCount: c.Icon.DefaultShapeCount,
		Colors:     c.Icon.Colors,
	}
}
