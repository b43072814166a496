package jazzicon

import (
	"fmt"
	"math"
	"slices"
)

// ShapeKindRect 塗りつぶし矩形
const ShapeKindRect = "rect"

// Shape アイコンを構成する図形
type Shape struct {
	// Kind 図形の種類 (常にrect)
	Kind string `json:"kind" yaml:"kind"`
	// Fill 塗りつぶし色
	Fill string `json:"fill" yaml:"fill"`
	// Rotation 回転角度(度) [0, 360)
	Rotation float64 `json:"rotation" yaml:"rotation"`
	// TranslateX アイコン中心からのX方向の平行移動量
	TranslateX float64 `json:"translateX" yaml:"translateX"`
	// TranslateY アイコン中心からのY方向の平行移動量
	TranslateY float64 `json:"translateY" yaml:"translateY"`
	// Scale 直径に対する大きさの比 (0, 1]
	Scale float64 `json:"scale" yaml:"scale"`
	// Size 一辺の長さ
	Size float64 `json:"size" yaml:"size"`
}

// IconSpec 生成されたアイコンの描画情報
//
// 生成後に変更しないこと
type IconSpec struct {
	// Diameter 直径
	Diameter float64 `json:"diameter" yaml:"diameter"`
	// Background 背景色
	Background string `json:"background" yaml:"background"`
	// Shapes 描画順の図形
	Shapes []Shape `json:"shapes" yaml:"shapes"`
}

// Clone ディープコピーを返します
func (s *IconSpec) Clone() *IconSpec {
	return &IconSpec{
		Diameter:   s.Diameter,
		Background: s.Background,
		Shapes:     slices.Clone(s.Shapes),
	}
}

// Generate シード・直径・図形数・カラーパレットからアイコンを生成します
//
// 同じ引数に対しては常に同じ結果を返します。paletteは変更されません。
func Generate(seed int64, diameter float64, shapeCount int, palette []string) (*IconSpec, error) {
	if err := Validate(diameter, shapeCount, palette); err != nil {
		return nil, err
	}

	r := NewRand(uint32(seed))

	colors := slices.Clone(palette)
	r.Shuffle(colors)

	background := colors[0]
	fills := colors[1:]
	if len(fills) == 0 {
		fills = colors
	}

	radius := diameter / 2
	step := radius / float64(shapeCount)
	shapes := make([]Shape, shapeCount)
	for i := range shapes {
		first := r.Float64()
		angle := float64(2*math.Pi*first)
		velocity := float64(step*r.Float64()) + float64(float64(i)*step)
		second := r.Float64()

		scale := float64(shapeCount-i) / float64(shapeCount)
		shapes[i] = Shape{
			Kind:       ShapeKindRect,
			Fill:       fills[i%len(fills)],
			Rotation:   round4(math.Mod(float64(first*360)+float64(second*180), 360)),
			TranslateX: round4(float64(math.Cos(angle) * velocity)),
			TranslateY: round4(float64(math.Sin(angle) * velocity)),
			Scale:      scale,
			Size:       float64(diameter * scale),
		}
	}

	return &IconSpec{
		Diameter:   diameter,
		Background: background,
		Shapes:     shapes,
	}, nil
}

// Validate Generateの引数を検証します
func Validate(diameter float64, shapeCount int, palette []string) error {
	if diameter <= 0 || math.IsNaN(diameter) || math.IsInf(diameter, 0) {
		return fmt.Errorf("%w: diameter must be a positive number, got %v", ErrInvalidArgument, diameter)
	}
	if shapeCount <= 0 {
		return fmt.Errorf("%w: shapeCount must be positive, got %d", ErrInvalidArgument, shapeCount)
	}
	if len(palette) == 0 {
		return fmt.Errorf("%w: palette must not be empty", ErrInvalidArgument)
	}
	return nil
}

// round4 小数第4位に丸める (0.5は0から遠い方へ)
func round4(x float64) float64 {
	return math.Round(float64(x*1e4)) / 1e4
}
