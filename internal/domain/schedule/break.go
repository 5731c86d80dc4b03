package schedule

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrNoTimes = errors.New("break requires at least one time")

// Break is an admin-declared set of blocked slots on a single date. Breaks
// are an unavailability source independent of appointments: they are never
// conflict-checked against bookings, and declaring a break over an already
// booked slot is accepted behavior.
type Break struct {
	ID        string    `json:"id"`
	Date      string    `json:"date"`
	Times     []string  `json:"times"`
	CreatedAt time.Time `json:"createdAt"`
}

// NewBreak validates the date and slot set and assigns an id. Duplicate and
// unknown times are dropped; order follows the slot catalog.
func NewBreak(date string, times []string, now time.Time) (*Break, error) {
	if _, err := ParseDate(date); err != nil {
		return nil, err
	}
	if len(times) == 0 {
		return nil, ErrNoTimes
	}

	requested := make(map[string]bool, len(times))
	for _, t := range times {
		if !IsValidSlot(t) {
			return nil, ErrInvalidSlot
		}
		requested[t] = true
	}

	normalized := make([]string, 0, len(requested))
	for _, s := range SlotCatalog {
		if requested[s] {
			normalized = append(normalized, s)
		}
	}

	return &Break{
		ID:        uuid.NewString(),
		Date:      date,
		Times:     normalized,
		CreatedAt: now,
	}, nil
}

// Covers reports whether the break blocks the given slot on the given date.
func (b *Break) Covers(date, slot string) bool {
	if b.Date != date {
		return false
	}
	for _, t := range b.Times {
		if t == slot {
			return true
		}
	}
	return false
}
