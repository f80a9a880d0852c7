package components

import (
	"car-rental-core/internal/handler"
	"car-rental-core/internal/handler/api"
	"car-rental-core/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewOfferHandler,
		api.NewRentalHandler,
		api.NewWorkerHandler,
		handler.NewHandlers,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
