package components

import (
	"log/slog"

	"barber-booking/internal/notify"
	"barber-booking/internal/pkg/config"
	"barber-booking/internal/usecase"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	fx.Provide(
		NewLinkBuilder,
		NewStatusSubscribers,
		usecase.NewBookingUseCase,
		usecase.NewStatusUseCase,
		usecase.NewAvailabilityUseCase,
		usecase.NewBreakUseCase,
		usecase.NewAuthUseCase,
		usecase.NewTokenValidator,
	),
)

func NewLinkBuilder(cfg config.Config) *notify.LinkBuilder {
	return notify.NewLinkBuilder(cfg.Shop)
}

func NewStatusSubscribers(calendar usecase.CalendarService, logger *slog.Logger) []usecase.StatusSubscriber {
	return []usecase.StatusSubscriber{
		usecase.NewCalendarSyncSubscriber(calendar, logger),
	}
}
