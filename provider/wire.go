//go:build wireinject
// +build wireinject

package provider

import (
	"e-learning-server/biz/infrastructure/config"

	"github.com/google/wire"
)

func NewProvider(c *config.Config) (*Provider, error) {
	panic(wire.Build(
		wire.Struct(new(Provider), "*"),
		AllProvider,
	))
}
