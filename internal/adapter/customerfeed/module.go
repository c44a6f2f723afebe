package customerfeed

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/polkiloo/webshop/internal/config"
)

// Module exposes the customer feed client to the fx graph.
var Module = fx.Provide(newClient)

type clientParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

func newClient(p clientParams) (Client, error) {
	return NewHTTPClient(p.Config.CustomerFeedURL, p.Logger)
}
