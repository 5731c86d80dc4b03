package response

import (
	"time"

	"barber-booking/internal/domain/schedule"
)

type BreakResponse struct {
	ID        string    `json:"id"`
	Date      string    `json:"date"`
	Times     []string  `json:"times"`
	CreatedAt time.Time `json:"createdAt"`
}

func FromBreak(b *schedule.Break) *BreakResponse {
	return &BreakResponse{
		ID:        b.ID,
		Date:      b.Date,
		Times:     b.Times,
		CreatedAt: b.CreatedAt,
	}
}

func FromBreaks(breaks []schedule.Break) []*BreakResponse {
	out := make([]*BreakResponse, len(breaks))
	for i := range breaks {
		out[i] = FromBreak(&breaks[i])
	}
	return out
}
