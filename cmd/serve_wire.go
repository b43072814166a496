//go:build wireinject
// +build wireinject

package cmd

import (
	"github.com/google/wire"
	"go.uber.org/zap"

	"github.com/traPtitech/jazzicon/router"
	"github.com/traPtitech/jazzicon/service/icon"
)

func newServer(c *Config, logger *zap.Logger) (*Server, error) {
	wire.Build(
		icon.NewService,
		router.Setup,
		provideIconServiceConfig,
		provideRouterConfig,
		wire.Struct(new(Server), "*"),
	)
	return nil, nil
}
