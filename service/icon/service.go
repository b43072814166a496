//go:generate mockgen -source=$GOFILE -destination=mock_$GOPACKAGE/mock_$GOFILE

package icon

import (
	"context"

	"github.com/traPtitech/jazzicon/jazzicon"
)

// Service アイコン生成サービス
type Service interface {
	// Generate オプションに従ってアイコンを生成します
	//
	// 引数が不正な場合、jazzicon.ErrInvalidArgumentを返します
	Generate(ctx context.Context, opts jazzicon.Options) (*jazzicon.IconSpec, error)
	// DefaultColors デフォルトのカラーパレットを返します
	DefaultColors() []string
}
