package di

import (
	"go.uber.org/fx"

	"github.com/polkiloo/webshop/internal/adapter/customerfeed"
	"github.com/polkiloo/webshop/internal/app"
	"github.com/polkiloo/webshop/internal/config"
	"github.com/polkiloo/webshop/internal/logger"
	"github.com/polkiloo/webshop/internal/server/http/router"
	"github.com/polkiloo/webshop/internal/storage/postgres"
	"github.com/polkiloo/webshop/internal/usecase"
)

func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		postgres.Module,
		customerfeed.Module,
		usecase.Module,
		fx.Provide(func(client customerfeed.Client) usecase.CustomerFeed { return client }),
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
