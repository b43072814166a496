package icon

import "time"

type Config struct {
	// DefaultDiameter 直径未指定時の直径
	DefaultDiameter float64
	// DefaultShapeCount 図形数未指定時の図形数
	DefaultShapeCount int
	// Colors パレット未指定時のカラーパレット
	// 空の場合はjazzicon.DefaultColors()
	Colors []string
	// CacheSize キャッシュする最大アイコン数
	CacheSize int
	// CacheTTL キャッシュ有効期間
	CacheTTL time.Duration
}
