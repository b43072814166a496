package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New ロガーを生成します
//
// 本番モードではCloud Logging形式の構造化ログを出力します
func New(c Config) (*zap.Logger, error) {
	zc, err := c.zapConfig()
	if err != nil {
		return nil, err
	}
	if c.Development {
		return zc.Build()
	}
	return zc.Build(zap.WrapCore(func(zc zapcore.Core) zapcore.Core {
		return wrapCore(zc, c.ServiceName, c.ServiceVersion)
	}))
}
