package cmd

import (
	vd "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/traPtitech/jazzicon/jazzicon"
	"github.com/traPtitech/jazzicon/utils/validator"
)

// requestLimits CLIから受け付けるオプションの上限
type requestLimits struct {
	MaxDiameter   float64
	MaxShapeCount int
	MaxColors     int
}

func (c *Config) requestLimits() requestLimits {
	return requestLimits{
		MaxDiameter:   c.Icon.MaxDiameter,
		MaxShapeCount: c.Icon.MaxShapeCount,
		MaxColors:     c.Icon.MaxColors,
	}
}

// validateOptions CLIから与えられたオプションを検証します
//
// 0値は設定のデフォルト値で補われるため許容します
func validateOptions(o jazzicon.Options, l requestLimits) error {
	return vd.ValidateStruct(&o,
		vd.Field(&o.Address,
			vd.When(o.Seed == nil, vd.Required.Error("seed or address is required")),
			vd.RuneLength(0, validator.MaxAddressLength),
		),
		vd.Field(&o.Diameter, vd.Min(0.0), vd.Max(l.MaxDiameter)),
		vd.Field(&o.ShapeCount, vd.Min(0), vd.Max(l.MaxShapeCount)),
		vd.Field(&o.Colors, vd.Length(0, l.MaxColors), vd.Each(vd.Required, validator.IsHexColor)),
	)
}
