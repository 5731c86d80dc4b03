package components

import (
	repo_impl "barber-booking/internal/infra/repository"
	"barber-booking/internal/pkg/clock"
	"barber-booking/internal/reminder"
	"barber-booking/internal/usecase"

	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		clock.NewRealClock,
		fx.Annotate(
			repo_impl.NewAppointmentRepository,
			fx.As(new(usecase.AppointmentRepository)),
			fx.As(new(reminder.AppointmentSource)),
		),
		fx.Annotate(
			repo_impl.NewBreakRepository,
			fx.As(new(usecase.BreakRepository)),
		),
	),
)
