package bootstrap

import (
	"legalbook/internal/infra/payment"
	"legalbook/internal/pkg/config"
	"legalbook/internal/usecase/commands"

	"go.uber.org/fx"
)

var PaymentModule = fx.Module("payment",
	fx.Provide(
		fx.Annotate(
			NewStripeGateway,
			fx.As(new(commands.PaymentGateway)),
			fx.As(new(commands.WebhookVerifier)),
		),
	),
)

func NewStripeGateway(cfg config.Config) *payment.StripeGateway {
	return payment.NewStripeGateway(cfg.Stripe)
}
