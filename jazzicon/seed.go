package jazzicon

import (
	"fmt"
	"hash/fnv"
	"strconv"
	"strings"
)

const walletSeedDigits = 8

// SeedFromAddress アドレス文字列からシードを導出します
//
// "0x"で始まり続く8文字が16進数の場合はその8文字をuint32として解釈します。
// それ以外の場合は小文字化したアドレスのFNV-1a(32bit)ハッシュを使用します。
func SeedFromAddress(address string) (uint32, error) {
	if len(address) == 0 {
		return 0, fmt.Errorf("%w: address is empty", ErrInvalidArgument)
	}

	if s, ok := walletSeed(address); ok {
		return s, nil
	}

	h := fnv.New32a()
	_, _ = h.Write([]byte(strings.ToLower(address)))
	return h.Sum32(), nil
}

func walletSeed(address string) (uint32, bool) {
	if len(address) < 2+walletSeedDigits {
		return 0, false
	}
	if address[0] != '0' || (address[1] != 'x' && address[1] != 'X') {
		return 0, false
	}
	v, err := strconv.ParseUint(address[2:2+walletSeedDigits], 16, 32)
	if err != nil {
		return 0, false
	}
	return uint32(v), true
}
