package components

import (
	"legalbook/internal/pkg/clock"
	"legalbook/internal/pkg/config"
	"legalbook/internal/usecase/commands"
	"legalbook/internal/usecase/queries"
	"legalbook/internal/usecase/shared"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseCommandsModule,
	usecaseQueriesModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAppointmentCommands,
		commands.NewCartCommands,
		func(uow shared.UnitOfWork, gateway commands.PaymentGateway, cfg config.Config) commands.CheckoutCommands {
			return commands.NewCheckoutCommands(uow, gateway, cfg.Stripe.Currency)
		},
		commands.NewSettlementCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewCatalogQueries,
		queries.NewCartQueries,
		queries.NewOrderQueries,
	),
)
