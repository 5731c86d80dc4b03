package bootstrap

import (
	"barber-booking/internal/domain/appointment"
	"barber-booking/internal/domain/schedule"
	"barber-booking/internal/infra/jsonstore"
	"barber-booking/internal/pkg/config"

	"go.uber.org/fx"
)

var StoreModule = fx.Module("store",
	fx.Provide(
		NewAppointmentCollection,
		NewBreakCollection,
	),
)

func NewAppointmentCollection(cfg config.Config) (*jsonstore.Collection[appointment.Appointment], error) {
	return jsonstore.NewCollection[appointment.Appointment](cfg.Store.AppointmentsPath())
}

func NewBreakCollection(cfg config.Config) (*jsonstore.Collection[schedule.Break], error) {
	return jsonstore.NewCollection[schedule.Break](cfg.Store.BreaksPath())
}
