package repository

import (
	"context"
	"strconv"
	"time"

	"barber-booking/internal/domain/appointment"
	"barber-booking/internal/infra/jsonstore"
	"barber-booking/internal/pkg/clock"
	"barber-booking/internal/pkg/errs"
)

// AppointmentRepository owns the appointments collection. The conflict check
// runs inside the store mutation, so two concurrent bookings for the same
// slot can never both land.
type AppointmentRepository struct {
	col   *jsonstore.Collection[appointment.Appointment]
	clock clock.Clock
}

func NewAppointmentRepository(col *jsonstore.Collection[appointment.Appointment], clk clock.Clock) *AppointmentRepository {
	return &AppointmentRepository{col: col, clock: clk}
}

// Create persists a validated draft as a pending appointment. Fails with
// ErrSlotTaken when a non-cancelled appointment already holds the slot.
func (r *AppointmentRepository) Create(_ context.Context, draft appointment.Draft) (*appointment.Appointment, error) {
	var created appointment.Appointment

	_, err := r.col.Mutate(func(records []appointment.Appointment) ([]appointment.Appointment, error) {
		for i := range records {
			if records[i].Date == draft.Date && records[i].Time == draft.Time && records[i].OccupiesSlot() {
				return nil, errs.ErrSlotTaken
			}
		}

		now := r.clock.Now()
		created = appointment.Appointment{
			ID:        nextID(records, now),
			Name:      draft.Name,
			Phone:     draft.Phone,
			Service:   draft.Service,
			Date:      draft.Date,
			Time:      draft.Time,
			Notes:     draft.Notes,
			Status:    appointment.StatusPending,
			CreatedAt: now,
		}
		return append(records, created), nil
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func (r *AppointmentRepository) FindByID(_ context.Context, id string) (*appointment.Appointment, error) {
	records, err := r.col.Load()
	if err != nil {
		return nil, err
	}
	for i := range records {
		if records[i].ID == id {
			return &records[i], nil
		}
	}
	return nil, errs.ErrAppointmentNotFound
}

func (r *AppointmentRepository) List(_ context.Context) ([]appointment.Appointment, error) {
	return r.col.Load()
}

// ListByDate returns every appointment on the given date, any status.
func (r *AppointmentRepository) ListByDate(_ context.Context, date string) ([]appointment.Appointment, error) {
	records, err := r.col.Load()
	if err != nil {
		return nil, err
	}
	var out []appointment.Appointment
	for i := range records {
		if records[i].Date == date {
			out = append(out, records[i])
		}
	}
	return out, nil
}

func (r *AppointmentRepository) Delete(_ context.Context, id string) error {
	_, err := r.col.Mutate(func(records []appointment.Appointment) ([]appointment.Appointment, error) {
		for i := range records {
			if records[i].ID == id {
				return append(records[:i], records[i+1:]...), nil
			}
		}
		return nil, errs.ErrAppointmentNotFound
	})
	return err
}

// UpdateStatus writes the new status and stamps UpdatedAt, including for a
// same-status no-op write. Transition legality is the caller's concern.
func (r *AppointmentRepository) UpdateStatus(_ context.Context, id string, status appointment.Status) (*appointment.Appointment, error) {
	var updated appointment.Appointment

	_, err := r.col.Mutate(func(records []appointment.Appointment) ([]appointment.Appointment, error) {
		for i := range records {
			if records[i].ID == id {
				records[i].Status = status
				records[i].UpdatedAt = r.clock.Now()
				updated = records[i]
				return records, nil
			}
		}
		return nil, errs.ErrAppointmentNotFound
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// MarkReminderSent flips the once-only reminder guard.
func (r *AppointmentRepository) MarkReminderSent(_ context.Context, id string) error {
	_, err := r.col.Mutate(func(records []appointment.Appointment) ([]appointment.Appointment, error) {
		for i := range records {
			if records[i].ID == id {
				records[i].ReminderSent = true
				return records, nil
			}
		}
		return nil, errs.ErrAppointmentNotFound
	})
	return err
}

// ListApproved returns approved appointments that have not been reminded yet.
func (r *AppointmentRepository) ListApproved(_ context.Context) ([]appointment.Appointment, error) {
	records, err := r.col.Load()
	if err != nil {
		return nil, err
	}
	var out []appointment.Appointment
	for i := range records {
		if records[i].Status.Normalized() == appointment.StatusApproved && !records[i].ReminderSent {
			out = append(out, records[i])
		}
	}
	return out, nil
}

// nextID derives a unique id from the creation instant, matching the
// historical id format (millisecond timestamp as a decimal string).
func nextID(records []appointment.Appointment, now time.Time) string {
	taken := make(map[string]bool, len(records))
	for i := range records {
		taken[records[i].ID] = true
	}

	ms := now.UnixMilli()
	id := strconv.FormatInt(ms, 10)
	for taken[id] {
		ms++
		id = strconv.FormatInt(ms, 10)
	}
	return id
}
