package response

import (
	"time"

	"barber-booking/internal/domain/appointment"
)

type AppointmentResponse struct {
	ID           string     `json:"id"`
	Name         string     `json:"name"`
	Phone        string     `json:"phone"`
	Service      string     `json:"service"`
	Date         string     `json:"date"`
	Time         string     `json:"time"`
	Notes        string     `json:"notes,omitempty"`
	Status       string     `json:"status"`
	ReminderSent bool       `json:"reminderSent"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    *time.Time `json:"updatedAt,omitempty"`
}

type StatusUpdateResponse struct {
	Appointment  *AppointmentResponse `json:"appointment"`
	WhatsAppLink string               `json:"whatsappLink,omitempty"`
}

func FromAppointment(a *appointment.Appointment) *AppointmentResponse {
	resp := &AppointmentResponse{
		ID:           a.ID,
		Name:         a.Name,
		Phone:        a.Phone,
		Service:      a.Service,
		Date:         a.Date,
		Time:         a.Time,
		Notes:        a.Notes,
		Status:       a.Status.String(),
		ReminderSent: a.ReminderSent,
		CreatedAt:    a.CreatedAt,
	}
	if !a.UpdatedAt.IsZero() {
		t := a.UpdatedAt
		resp.UpdatedAt = &t
	}
	return resp
}

func FromAppointments(appts []appointment.Appointment) []*AppointmentResponse {
	out := make([]*AppointmentResponse, len(appts))
	for i := range appts {
		out[i] = FromAppointment(&appts[i])
	}
	return out
}
