package router

import (
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/fx"

	"github.com/polkiloo/webshop/internal/server/http/middleware"
)

// Module registers HTTP router construction for fx runtime.
var Module = fx.Options(
	fx.Provide(
		prometheus.NewRegistry,
		func(reg *prometheus.Registry) prometheus.Registerer { return reg },
		func(reg *prometheus.Registry) prometheus.Gatherer { return reg },
		middleware.NewMetrics,
	),
	fx.Provide(Setup),
)
