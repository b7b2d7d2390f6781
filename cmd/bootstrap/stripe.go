package bootstrap

import (
	"labforge/internal/infra/stripe"
	"labforge/internal/pkg/config"
	"labforge/internal/usecase/commands"

	"go.uber.org/fx"
)

var StripeModule = fx.Module("stripe",
	fx.Provide(
		fx.Annotate(
			NewCheckoutGateway,
			fx.As(new(commands.CheckoutGateway)),
		),
		fx.Annotate(
			NewWebhookVerifier,
			fx.As(new(commands.WebhookVerifier)),
		),
	),
)

func NewCheckoutGateway(cfg config.Config) *stripe.Gateway {
	return stripe.NewGateway(cfg.Stripe)
}

func NewWebhookVerifier(cfg config.Config) *stripe.WebhookVerifier {
	return stripe.NewWebhookVerifier(cfg.Stripe)
}
