package validator

import (
	"errors"
	"regexp"

	vd "github.com/go-ozzo/ozzo-validation/v4"
)

const (
	// MaxAddressLength アドレスの最大文字数
	MaxAddressLength = 256
)

var hexColorRegex = regexp.MustCompile(`^#([0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// AddressRule アドレスバリデーションルール
var AddressRule = []vd.Rule{
	vd.RuneLength(1, MaxAddressLength),
}

// IsHexColor "#rgb"または"#rrggbb"形式の色である
var IsHexColor = vd.Match(hexColorRegex).Error("must be a hex color (#rgb or #rrggbb)")

// ColorsRule カラーパレットバリデーションルール
func ColorsRule(maxColors int) []vd.Rule {
	return []vd.Rule{
		vd.NilOrNotEmpty,
		vd.Length(1, maxColors),
		vd.Each(vd.Required, IsHexColor),
	}
}

// IsPositive 正の数である
//
// vd.Minは0を空値として扱い検証しないため、0も拒否するルールとして用意しています
var IsPositive = vd.By(func(value interface{}) error {
	v, isNil := vd.Indirect(value)
	if isNil {
		return nil
	}
	switch n := v.(type) {
	case float64:
		if n > 0 {
			return nil
		}
	case int:
		if n > 0 {
			return nil
		}
	}
	return errors.New("must be a positive number")
})

// DiameterRule 直径バリデーションルール
func DiameterRule(maxDiameter float64) []vd.Rule {
	return []vd.Rule{
		IsPositive,
		vd.Max(maxDiameter),
	}
}

// ShapeCountRule 図形数バリデーションルール
func ShapeCountRule(maxShapeCount int) []vd.Rule {
	return []vd.Rule{
		IsPositive,
		vd.Max(maxShapeCount),
	}
}
