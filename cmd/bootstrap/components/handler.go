package components

import (
	"legalbook/internal/handler"
	"legalbook/internal/handler/api"
	"legalbook/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewCatalogHandler,
		api.NewAppointmentHandler,
		api.NewCartHandler,
		api.NewOrderHandler,
		api.NewWebhookHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
