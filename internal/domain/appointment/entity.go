package appointment

import (
	"errors"
	"strings"
	"time"

	"barber-booking/internal/domain/schedule"
)

var (
	ErrNameRequired   = errors.New("name is required")
	ErrPhoneRequired  = errors.New("phone is required")
	ErrInvalidPhone   = errors.New("phone must contain digits")
	ErrUnknownService = errors.New("unknown service code")
)

// Appointment is the stored booking record. Date and Time stay in the wire
// form the booking form submits (YYYY-MM-DD and a catalog slot); CreatedAt
// and UpdatedAt are stamped by the store, never by callers.
type Appointment struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Phone        string    `json:"phone"`
	Service      string    `json:"service"`
	Date         string    `json:"date"`
	Time         string    `json:"time"`
	Notes        string    `json:"notes,omitempty"`
	Status       Status    `json:"status,omitempty"`
	ReminderSent bool      `json:"reminderSent,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt,omitempty"`
}

// Draft is a booking submission before the store assigns id, status and
// timestamps.
type Draft struct {
	Name    string
	Phone   string
	Service string
	Date    string
	Time    string
	Notes   string
}

func (d Draft) Validate() error {
	if strings.TrimSpace(d.Name) == "" {
		return ErrNameRequired
	}
	phone := strings.TrimSpace(d.Phone)
	if phone == "" {
		return ErrPhoneRequired
	}
	if !hasDigit(phone) {
		return ErrInvalidPhone
	}
	if !schedule.IsValidService(d.Service) {
		return ErrUnknownService
	}
	if _, err := schedule.ParseDate(d.Date); err != nil {
		return err
	}
	if !schedule.IsValidSlot(d.Time) {
		return schedule.ErrInvalidSlot
	}
	return nil
}

func hasDigit(s string) bool {
	for _, r := range s {
		if r >= '0' && r <= '9' {
			return true
		}
	}
	return false
}

// StartAt resolves the appointment's wall-clock start in loc.
func (a *Appointment) StartAt(loc *time.Location) (time.Time, error) {
	return schedule.StartAt(a.Date, a.Time, loc)
}

// OccupiesSlot reports whether this record holds its date+time pair against
// new bookings. Cancelled appointments free the slot for rebooking.
func (a *Appointment) OccupiesSlot() bool {
	return a.Status.OccupiesSlot()
}
