package usecase

import (
	"context"
	"log/slog"

	"barber-booking/internal/domain/schedule"
	"barber-booking/internal/pkg/errs"
)

// Availability is the resolved free/busy view of one date. Slot order
// follows the catalog throughout.
type Availability struct {
	Date         string
	Available    []string
	Booked       []string
	CalendarBusy []string
}

type AvailabilityUseCase interface {
	Resolve(ctx context.Context, date string) (*Availability, error)
}

type availabilityUseCaseImpl struct {
	appointments AppointmentRepository
	breaks       BreakRepository
	calendar     CalendarService
	logger       *slog.Logger
}

func NewAvailabilityUseCase(appointments AppointmentRepository, breaks BreakRepository, calendar CalendarService, logger *slog.Logger) AvailabilityUseCase {
	return &availabilityUseCaseImpl{
		appointments: appointments,
		breaks:       breaks,
		calendar:     calendar,
		logger:       logger,
	}
}

// Resolve subtracts booked slots, break times and external busy times from
// the slot catalog. The external lookup is best-effort: on failure its
// contribution is empty and availability still resolves. Performs no writes;
// safe to call concurrently.
func (u *availabilityUseCaseImpl) Resolve(ctx context.Context, date string) (*Availability, error) {
	if _, err := schedule.ParseDate(date); err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidDate)
	}

	appts, err := u.appointments.ListByDate(ctx, date)
	if err != nil {
		return nil, err
	}
	breaks, err := u.breaks.ListByDate(ctx, date)
	if err != nil {
		return nil, err
	}

	occupied := make(map[string]bool, len(schedule.SlotCatalog))
	for i := range appts {
		if appts[i].OccupiesSlot() {
			occupied[appts[i].Time] = true
		}
	}
	for i := range breaks {
		for _, t := range breaks[i].Times {
			occupied[t] = true
		}
	}

	busySet := make(map[string]bool)
	busy, err := u.calendar.BusySlots(ctx, date)
	if err != nil {
		u.logger.Warn("calendar busy lookup failed, resolving without it",
			"date", date,
			"error", err.Error(),
		)
	} else {
		for _, t := range busy {
			busySet[t] = true
		}
	}

	result := &Availability{
		Date:         date,
		Available:    []string{},
		Booked:       []string{},
		CalendarBusy: []string{},
	}
	for _, slot := range schedule.SlotCatalog {
		switch {
		case occupied[slot]:
			result.Booked = append(result.Booked, slot)
		case busySet[slot]:
			result.CalendarBusy = append(result.CalendarBusy, slot)
		default:
			result.Available = append(result.Available, slot)
		}
	}
	return result, nil
}
