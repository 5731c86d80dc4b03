package components

import (
	"barber-booking/internal/handler"
	"barber-booking/internal/handler/api"
	"barber-booking/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewAppointmentHandler,
		api.NewAvailabilityHandler,
		api.NewBreakHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(
		handler.NewRouter,
	),
)
