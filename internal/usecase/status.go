package usecase

import (
	"context"
	"log/slog"

	"barber-booking/internal/domain/appointment"
	"barber-booking/internal/notify"
	"barber-booking/internal/pkg/errs"
)

// StatusChanged is emitted after a status transition has been persisted.
// Subscribers run best-effort: their failures are logged and never surface
// to the admin request that triggered the transition.
type StatusChanged struct {
	Appointment *appointment.Appointment
	From        appointment.Status
	To          appointment.Status
}

type StatusSubscriber interface {
	HandleStatusChanged(ctx context.Context, ev StatusChanged)
}

// StatusResult carries the updated record plus the WhatsApp deep link the
// transition generated, if any, for the admin dashboard to open.
type StatusResult struct {
	Appointment  *appointment.Appointment
	WhatsAppLink string
}

type StatusUseCase interface {
	Set(ctx context.Context, id string, rawStatus string) (*StatusResult, error)
}

type statusUseCaseImpl struct {
	appointments AppointmentRepository
	links        *notify.LinkBuilder
	subscribers  []StatusSubscriber
	logger       *slog.Logger
}

func NewStatusUseCase(appointments AppointmentRepository, links *notify.LinkBuilder, subscribers []StatusSubscriber, logger *slog.Logger) StatusUseCase {
	return &statusUseCaseImpl{
		appointments: appointments,
		links:        links,
		subscribers:  subscribers,
		logger:       logger,
	}
}

// Set validates and applies a status transition. The persisted status change
// is the source of truth; notification and calendar side effects happen
// after the write and cannot roll it back. A same-status write is a no-op
// that still stamps updatedAt and triggers no side effects.
func (u *statusUseCaseImpl) Set(ctx context.Context, id string, rawStatus string) (*StatusResult, error) {
	target, err := appointment.ParseStatus(rawStatus)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidStatus)
	}

	current, err := u.appointments.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	from := current.Status.Normalized()

	if !from.CanTransitionTo(target) {
		return nil, errs.ErrTransitionNotPermitted
	}

	updated, err := u.appointments.UpdateStatus(ctx, id, target)
	if err != nil {
		return nil, err
	}

	result := &StatusResult{Appointment: updated}
	if from == target {
		return result, nil
	}

	result.WhatsAppLink = u.linkFor(from, target, updated)

	ev := StatusChanged{Appointment: updated, From: from, To: target}
	for _, sub := range u.subscribers {
		sub.HandleStatusChanged(ctx, ev)
	}
	return result, nil
}

func (u *statusUseCaseImpl) linkFor(from, to appointment.Status, appt *appointment.Appointment) string {
	switch {
	case to == appointment.StatusApproved:
		return u.links.ClientConfirmation(appt)
	case from == appointment.StatusApproved && to == appointment.StatusPending:
		return u.links.ClientUnapproval(appt)
	case to == appointment.StatusCancelled:
		return u.links.ClientCancellation(appt)
	default:
		return ""
	}
}

// calendarSyncSubscriber mirrors approvals into the external calendar.
type calendarSyncSubscriber struct {
	calendar CalendarService
	logger   *slog.Logger
}

func NewCalendarSyncSubscriber(calendar CalendarService, logger *slog.Logger) StatusSubscriber {
	return &calendarSyncSubscriber{calendar: calendar, logger: logger}
}

func (s *calendarSyncSubscriber) HandleStatusChanged(ctx context.Context, ev StatusChanged) {
	if ev.To != appointment.StatusApproved {
		return
	}
	if err := s.calendar.InsertEvent(ctx, ev.Appointment); err != nil {
		s.logger.Error("calendar sync failed",
			"appointment_id", ev.Appointment.ID,
			"error", err.Error(),
		)
	}
}
