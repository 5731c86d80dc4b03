package appointment

import "errors"

var ErrInvalidStatus = errors.New("invalid appointment status")

type Status string

const (
	StatusPending   Status = "pending"
	StatusApproved  Status = "approved"
	StatusCancelled Status = "cancelled"
)

// ParseStatus accepts the closed status set. The empty string is not a valid
// target for a transition even though stored records may omit the field.
func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusPending, StatusApproved, StatusCancelled:
		return Status(s), nil
	default:
		return "", ErrInvalidStatus
	}
}

// Normalized maps the zero value to pending: records written before the
// status field existed carry no status at all.
func (s Status) Normalized() Status {
	if s == "" {
		return StatusPending
	}
	return s
}

// OccupiesSlot reports whether an appointment in this status holds its
// date+time pair against new bookings.
func (s Status) OccupiesSlot() bool {
	switch s.Normalized() {
	case StatusPending, StatusApproved:
		return true
	default:
		return false
	}
}

// CanTransitionTo encodes the transition table: pending and approved move
// freely between each other and into cancelled; cancelled is terminal.
// A same-status write is always permitted (idempotent no-op).
func (s Status) CanTransitionTo(target Status) bool {
	from := s.Normalized()
	if from == target {
		return true
	}
	return from != StatusCancelled
}

func (s Status) String() string {
	return string(s.Normalized())
}
