package jazzicon

import "slices"

var defaultColors = []string{
	"#01888c", // teal
	"#fc7500", // bright orange
	"#034f5d", // dark teal
	"#f73f01", // orange-red
	"#fc1960", // magenta
	"#c7144c", // raspberry
	"#f3c100", // goldenrod
	"#1598f2", // lightning blue
	"#2465e1", // sail blue
	"#f19e02", // gold
}

const (
	// DefaultDiameter デフォルトの直径
	DefaultDiameter = 100
	// DefaultShapeCount デフォルトの図形数
	DefaultShapeCount = 4
)

// DefaultColors デフォルトのカラーパレットのコピーを返します
func DefaultColors() []string {
	return slices.Clone(defaultColors)
}
