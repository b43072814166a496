package icon

import (
	"context"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/motoki317/sc"
	"go.uber.org/zap"

	"github.com/traPtitech/jazzicon/jazzicon"
)

type cacheKey struct {
	seed       uint32
	diameter   float64
	shapeCount int
	// colors encodePaletteで符号化したカラーパレット
	colors string
}

type serviceImpl struct {
	c     Config
	l     *zap.Logger
	cache *sc.Cache[cacheKey, *jazzicon.IconSpec]
}

// NewService キャッシュ付きのアイコン生成サービスを生成します
func NewService(c Config, logger *zap.Logger) (Service, error) {
	if c.CacheSize <= 0 {
		return nil, fmt.Errorf("cache size must be positive: %d", c.CacheSize)
	}
	if c.CacheTTL <= 0 {
		return nil, fmt.Errorf("cache ttl must be positive: %v", c.CacheTTL)
	}
	if len(c.Colors) == 0 {
		c.Colors = jazzicon.DefaultColors()
	}

	s := &serviceImpl{
		c: c,
		l: logger.Named("icon"),
	}
	cache, err := sc.New(s.generate, c.CacheTTL, c.CacheTTL*2, sc.WithLRUBackend(c.CacheSize))
	if err != nil {
		return nil, err
	}
	s.cache = cache
	return s, nil
}

func (s *serviceImpl) Generate(ctx context.Context, opts jazzicon.Options) (*jazzicon.IconSpec, error) {
	iconRequestsCounter.Inc()

	key, err := s.key(opts)
	if err != nil {
		iconErrorsCounter.Inc()
		return nil, err
	}
	spec, err := s.cache.Get(ctx, key)
	if err != nil {
		iconErrorsCounter.Inc()
		return nil, err
	}
	// キャッシュされた値を呼び出し側に変更させない
	return spec.Clone(), nil
}

func (s *serviceImpl) DefaultColors() []string {
	return slices.Clone(s.c.Colors)
}

func (s *serviceImpl) key(opts jazzicon.Options) (cacheKey, error) {
	if opts.Diameter == 0 && s.c.DefaultDiameter > 0 {
		opts.Diameter = s.c.DefaultDiameter
	}
	if opts.ShapeCount == 0 && s.c.DefaultShapeCount > 0 {
		opts.ShapeCount = s.c.DefaultShapeCount
	}
	if len(opts.Colors) == 0 {
		opts.Colors = s.c.Colors
	}

	r, err := opts.Resolve()
	if err != nil {
		return cacheKey{}, err
	}
	if err := r.Validate(); err != nil {
		return cacheKey{}, err
	}

	return cacheKey{
		seed:       r.Seed,
		diameter:   r.Diameter,
		shapeCount: r.ShapeCount,
		colors:     encodePalette(r.Colors),
	}, nil
}

func (s *serviceImpl) generate(_ context.Context, key cacheKey) (*jazzicon.IconSpec, error) {
	iconGenerationsCounter.Inc()
	palette, err := decodePalette(key.colors)
	if err != nil {
		return nil, err
	}
	spec, err := jazzicon.Generate(int64(key.seed), key.diameter, key.shapeCount, palette)
	if err != nil {
		return nil, err
	}
	s.l.Debug("icon generated",
		zap.Uint32("seed", key.seed),
		zap.Float64("diameter", key.diameter),
		zap.Int("shapeCount", key.shapeCount),
	)
	return spec, nil
}

// encodePalette カラーパレットを"長さ:色"の連結に符号化します
//
// 色にどんな文字が含まれていても元のパレットに復元できる
func encodePalette(colors []string) string {
	var b strings.Builder
	for _, c := range colors {
		b.WriteString(strconv.Itoa(len(c)))
		b.WriteByte(':')
		b.WriteString(c)
	}
	return b.String()
}

// decodePalette encodePaletteで符号化したカラーパレットを復元します
func decodePalette(s string) ([]string, error) {
	var colors []string
	for len(s) > 0 {
		i := strings.IndexByte(s, ':')
		if i < 0 {
			return nil, fmt.Errorf("malformed palette key: %q", s)
		}
		n, err := strconv.Atoi(s[:i])
		if err != nil || n < 0 || len(s) < i+1+n {
			return nil, fmt.Errorf("malformed palette key: %q", s)
		}
		colors = append(colors, s[i+1:i+1+n])
		s = s[i+1+n:]
	}
	return colors, nil
}
