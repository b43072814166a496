package router

import (
	"golang.org/x/time/rate"
)

// Config APIサーバー設定
type Config struct {
	// Development 開発モードかどうか
	Development bool
	// Version サーバーバージョン
	Version string
	// Revision サーバーリビジョン
	Revision string
	// AccessLogging アクセスログを記録するかどうか
	AccessLogging bool
	// Gzipped レスポンスをGzip圧縮するかどうか
	Gzipped bool
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
	// MaxRequestBodyKB POSTリクエストボディの上限(KB)
	MaxRequestBodyKB int64
}
