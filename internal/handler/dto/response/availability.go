package response

import "barber-booking/internal/usecase"

type AvailabilityResponse struct {
	Date              string   `json:"date"`
	AvailableSlots    []string `json:"availableSlots"`
	BookedSlots       []string `json:"bookedSlots"`
	CalendarBusySlots []string `json:"calendarBusySlots"`
}

func FromAvailability(a *usecase.Availability) *AvailabilityResponse {
	return &AvailabilityResponse{
		Date:              a.Date,
		AvailableSlots:    a.Available,
		BookedSlots:       a.Booked,
		CalendarBusySlots: a.CalendarBusy,
	}
}
