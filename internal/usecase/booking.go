package usecase

import (
	"context"
	"log/slog"

	"barber-booking/internal/domain/appointment"
	"barber-booking/internal/notify"
	"barber-booking/internal/pkg/errs"
)

type BookingUseCase interface {
	Create(ctx context.Context, draft appointment.Draft) (*appointment.Appointment, error)
	Get(ctx context.Context, id string) (*appointment.Appointment, error)
	List(ctx context.Context) ([]appointment.Appointment, error)
	Delete(ctx context.Context, id string) error
}

type bookingUseCaseImpl struct {
	appointments AppointmentRepository
	links        *notify.LinkBuilder
	logger       *slog.Logger
}

func NewBookingUseCase(appointments AppointmentRepository, links *notify.LinkBuilder, logger *slog.Logger) BookingUseCase {
	return &bookingUseCaseImpl{
		appointments: appointments,
		links:        links,
		logger:       logger,
	}
}

// Create validates the draft and persists it as pending. The owner's
// WhatsApp deep link is logged for the operator; link generation never
// affects the booking result.
func (u *bookingUseCaseImpl) Create(ctx context.Context, draft appointment.Draft) (*appointment.Appointment, error) {
	if err := draft.Validate(); err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	created, err := u.appointments.Create(ctx, draft)
	if err != nil {
		return nil, err
	}

	u.logger.Info("new appointment created",
		"id", created.ID,
		"date", created.Date,
		"time", created.Time,
		"owner_whatsapp_link", u.links.OwnerNewBooking(created),
	)
	return created, nil
}

func (u *bookingUseCaseImpl) Get(ctx context.Context, id string) (*appointment.Appointment, error) {
	return u.appointments.FindByID(ctx, id)
}

func (u *bookingUseCaseImpl) List(ctx context.Context) ([]appointment.Appointment, error) {
	return u.appointments.List(ctx)
}

func (u *bookingUseCaseImpl) Delete(ctx context.Context, id string) error {
	return u.appointments.Delete(ctx, id)
}
