package jazzicon

import "fmt"

// Options アイコン生成オプション
//
// SeedとAddressの両方が指定された場合はSeedが優先されます。
// 0値のDiameter, ShapeCount, 空のColorsはデフォルト値で補われます。
type Options struct {
	// Seed シード
	Seed *int64 `json:"seed,omitempty" yaml:"seed,omitempty"`
	// Address シードを導出するアドレス文字列
	Address string `json:"address,omitempty" yaml:"address,omitempty"`
	// Diameter 直径 (default: 100)
	Diameter float64 `json:"diameter,omitempty" yaml:"diameter,omitempty"`
	// ShapeCount 図形数 (default: 4)
	ShapeCount int `json:"shapeCount,omitempty" yaml:"shapeCount,omitempty"`
	// Colors カラーパレット (default: DefaultColors())
	Colors []string `json:"colors,omitempty" yaml:"colors,omitempty"`
}

// Resolved デフォルト値を適用し、シードを確定させたオプション
type Resolved struct {
	Seed       uint32
	Diameter   float64
	ShapeCount int
	Colors     []string
}

// WithSeed Seedを設定したOptionsを返します
func (o Options) WithSeed(seed int64) Options {
	o.Seed = &seed
	return o
}

// Resolve デフォルト値を適用し、シードを確定させます
func (o Options) Resolve() (Resolved, error) {
	var seed uint32
	switch {
	case o.Seed != nil:
		seed = uint32(*o.Seed)
	case len(o.Address) > 0:
		s, err := SeedFromAddress(o.Address)
		if err != nil {
			return Resolved{}, err
		}
		seed = s
	default:
		return Resolved{}, fmt.Errorf("%w: seed or address is required", ErrInvalidArgument)
	}

	res := Resolved{
		Seed:       seed,
		Diameter:   o.Diameter,
		ShapeCount: o.ShapeCount,
		Colors:     o.Colors,
	}
	if res.Diameter == 0 {
		res.Diameter = DefaultDiameter
	}
	if res.ShapeCount == 0 {
		res.ShapeCount = DefaultShapeCount
	}
	if len(res.Colors) == 0 {
		res.Colors = DefaultColors()
	}
	return res, nil
}

// Generate オプションからアイコンを生成します
func (o Options) Generate() (*IconSpec, error) {
	r, err := o.Resolve()
	if err != nil {
		return nil, err
	}
	return r.Generate()
}

// Validate 生成できる値かどうかを検証します
func (r Resolved) Validate() error {
	return Validate(r.Diameter, r.ShapeCount, r.Colors)
}

// Generate アイコンを生成します
func (r Resolved) Generate() (*IconSpec, error) {
	return Generate(int64(r.Seed), r.Diameter, r.ShapeCount, r.Colors)
}
