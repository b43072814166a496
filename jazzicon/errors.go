package jazzicon

import "errors"

// ErrInvalidArgument 引数が不正です
var ErrInvalidArgument = errors.New("invalid argument")

// IsInvalidArgument errがErrInvalidArgumentかどうか
func IsInvalidArgument(err error) bool {
	return errors.Is(err, ErrInvalidArgument)
}
