package bootstrap

import (
	"context"
	"log/slog"
	"time"

	"barber-booking/internal/notify"
	"barber-booking/internal/pkg/clock"
	"barber-booking/internal/pkg/config"
	"barber-booking/internal/reminder"

	"go.uber.org/fx"
)

var ReminderModule = fx.Module("reminder",
	fx.Invoke(
		RegisterReminderSweeper,
	),
)

func RegisterReminderSweeper(
	lc fx.Lifecycle,
	cfg config.Config,
	appointments reminder.AppointmentSource,
	links *notify.LinkBuilder,
	clk clock.Clock,
	logger *slog.Logger,
) {
	if !cfg.Reminder.Enabled {
		return
	}

	loc, err := time.LoadLocation(cfg.Shop.TimeZone)
	if err != nil {
		panic("invalid SHOP_TIMEZONE: " + err.Error())
	}

	sweeper := reminder.NewSweeper(appointments, links, clk, loc, reminder.Config{
		Interval: cfg.Reminder.Interval,
		Window:   cfg.Reminder.Window,
	}, logger)

	sweepCtx, cancel := context.WithCancel(context.Background())
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			logger.Info("reminder sweeper started",
				"interval", cfg.Reminder.Interval,
				"window", cfg.Reminder.Window,
			)
			go sweeper.Run(sweepCtx)
			return nil
		},
		OnStop: func(_ context.Context) error {
			cancel()
			return nil
		},
	})
}
