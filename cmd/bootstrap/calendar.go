package bootstrap

import (
	"context"
	"log/slog"

	"barber-booking/internal/infra/calendar"
	"barber-booking/internal/pkg/config"
	"barber-booking/internal/usecase"

	"go.uber.org/fx"
)

var CalendarModule = fx.Module("calendar",
	fx.Provide(
		NewCalendarService,
	),
)

// NewCalendarService wires the Google Calendar client when configured.
// Misconfiguration degrades to the disabled implementation: the booking
// service must come up even when the calendar cannot.
func NewCalendarService(cfg config.Config, logger *slog.Logger) usecase.CalendarService {
	if !cfg.Calendar.Enabled {
		return usecase.DisabledCalendar{}
	}

	client, err := calendar.NewGoogleClient(context.Background(), cfg.Calendar, cfg.Shop)
	if err != nil {
		logger.Error("google calendar disabled: client setup failed", "error", err.Error())
		return usecase.DisabledCalendar{}
	}
	logger.Info("google calendar sync enabled", "calendar_id", cfg.Calendar.CalendarID)
	return client
}
