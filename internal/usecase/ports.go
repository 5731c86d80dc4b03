package usecase

import (
	"context"

	"barber-booking/internal/domain/appointment"
	"barber-booking/internal/domain/schedule"
)

// AppointmentRepository is the write/read port over the appointments
// collection. Implementations must serialize mutations (single logical
// writer) and perform the slot conflict check inside Create.
type AppointmentRepository interface {
	Create(ctx context.Context, draft appointment.Draft) (*appointment.Appointment, error)
	FindByID(ctx context.Context, id string) (*appointment.Appointment, error)
	List(ctx context.Context) ([]appointment.Appointment, error)
	ListByDate(ctx context.Context, date string) ([]appointment.Appointment, error)
	Delete(ctx context.Context, id string) error
	UpdateStatus(ctx context.Context, id string, status appointment.Status) (*appointment.Appointment, error)
	MarkReminderSent(ctx context.Context, id string) error
	ListApproved(ctx context.Context) ([]appointment.Appointment, error)
}

type BreakRepository interface {
	List(ctx context.Context) ([]schedule.Break, error)
	ListByDate(ctx context.Context, date string) ([]schedule.Break, error)
	Insert(ctx context.Context, b *schedule.Break) error
	Remove(ctx context.Context, id string) error
}

// CalendarService is the external calendar port. Both operations are
// best-effort from the caller's point of view.
type CalendarService interface {
	InsertEvent(ctx context.Context, appt *appointment.Appointment) error
	BusySlots(ctx context.Context, date string) ([]string, error)
}

// DisabledCalendar satisfies CalendarService when no calendar is configured.
type DisabledCalendar struct{}

func (DisabledCalendar) InsertEvent(context.Context, *appointment.Appointment) error {
	return nil
}

func (DisabledCalendar) BusySlots(context.Context, string) ([]string, error) {
	return nil, nil
}
