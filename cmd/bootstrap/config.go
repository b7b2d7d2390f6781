package bootstrap

import (
	"labforge/internal/domain/catalog"
	"labforge/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
		NewSupportedCurrencies,
	),
)

func NewSupportedCurrencies(cfg config.Config) (catalog.SupportedCurrencies, error) {
	return catalog.NewSupportedCurrencies(cfg.Checkout.NormalizedCurrencies())
}
