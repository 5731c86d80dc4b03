package request

import (
	"strings"

	"barber-booking/internal/domain/appointment"
)

type CreateAppointmentRequest struct {
	Name    string `json:"name" binding:"required"`
	Phone   string `json:"phone" binding:"required"`
	Service string `json:"service" binding:"required"`
	Date    string `json:"date" binding:"required"`
	Time    string `json:"time" binding:"required"`
	Notes   string `json:"notes,omitempty"`
}

func (r CreateAppointmentRequest) ToDraft() appointment.Draft {
	return appointment.Draft{
		Name:    strings.TrimSpace(r.Name),
		Phone:   strings.TrimSpace(r.Phone),
		Service: r.Service,
		Date:    r.Date,
		Time:    r.Time,
		Notes:   strings.TrimSpace(r.Notes),
	}
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
