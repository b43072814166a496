package jazzicon

const (
	lcgMultiplier = 1664525
	lcgIncrement  = 1013904223
	// 2^32
	uint32Range = 1 << 32
)

// Rand シード付き32bit線形合同法乱数生成器
//
// 1回のアイコン生成ごとに生成し、ゴルーチン間で共有しないこと
type Rand struct {
	state uint32
}

// NewRand seedで初期化したRandを返します
func NewRand(seed uint32) *Rand {
	return &Rand{state: seed}
}

// Uint32 状態を1つ進めて返します
func (r *Rand) Uint32() uint32 {
	r.state = r.state*lcgMultiplier + lcgIncrement
	return r.state
}

// Float64 [0, 1)の値を返します
func (r *Rand) Float64() float64 {
	return float64(r.Uint32()) / uint32Range
}

// Intn [0, n)の値を返します。n <= 0の場合は乱数を消費せず0を返します
func (r *Rand) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(r.Float64() * float64(n))
}

// Shuffle Fisher-Yatesでsを並び替えます
func (r *Rand) Shuffle(s []string) {
	for i := len(s) - 1; i > 0; i-- {
		j := r.Intn(i + 1)
		s[i], s[j] = s[j], s[i]
	}
}
