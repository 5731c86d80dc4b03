package bootstrap

import (
	"barber-booking/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	StoreModule,
	AuthModule,
	CalendarModule,
	components.RepositoryModule,
	components.UseCaseModule,
	components.HandlerModule,
	ReminderModule,
)
