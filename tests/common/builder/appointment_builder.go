//go:build unit

package builder

import (
	"time"

	"barber-booking/internal/domain/appointment"
	reqdto "barber-booking/internal/handler/dto/request"

	"github.com/jinzhu/copier"
)

type AppointmentBuilder struct {
	ID        string
	Name      string
	Phone     string
	Service   string
	Date      string
	Time      string
	Notes     string
	Status    appointment.Status
	CreatedAt time.Time
}

func NewAppointmentBuilder() *AppointmentBuilder {
	return &AppointmentBuilder{
		ID:        "1741600000000",
		Name:      "Dana",
		Phone:     "0501234567",
		Service:   "haircut-women",
		Date:      "2025-03-10",
		Time:      "11:00",
		Status:    appointment.StatusPending,
		CreatedAt: time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC),
	}
}

// Build methods
func (b *AppointmentBuilder) BuildEntity() *appointment.Appointment {
	var appt appointment.Appointment
	_ = copier.Copy(&appt, b)
	return &appt
}

func (b *AppointmentBuilder) BuildCreateRequestDTO() reqdto.CreateAppointmentRequest {
	return reqdto.CreateAppointmentRequest{
		Name:    b.Name,
		Phone:   b.Phone,
		Service: b.Service,
		Date:    b.Date,
		Time:    b.Time,
		Notes:   b.Notes,
	}
}

func (b *AppointmentBuilder) BuildDraft() appointment.Draft {
	return b.BuildCreateRequestDTO().ToDraft()
}

// Fluent builder methods
func (b *AppointmentBuilder) WithID(id string) *AppointmentBuilder {
	b.ID = id
	return b
}

func (b *AppointmentBuilder) WithName(name string) *AppointmentBuilder {
	b.Name = name
	return b
}

func (b *AppointmentBuilder) WithPhone(phone string) *AppointmentBuilder {
	b.Phone = phone
	return b
}

func (b *AppointmentBuilder) WithService(service string) *AppointmentBuilder {
	b.Service = service
	return b
}

func (b *AppointmentBuilder) WithDate(date string) *AppointmentBuilder {
	b.Date = date
	return b
}

func (b *AppointmentBuilder) WithTime(slot string) *AppointmentBuilder {
	b.Time = slot
	return b
}

func (b *AppointmentBuilder) WithNotes(notes string) *AppointmentBuilder {
	b.Notes = notes
	return b
}

func (b *AppointmentBuilder) WithStatus(status appointment.Status) *AppointmentBuilder {
	b.Status = status
	return b
}

func (b *AppointmentBuilder) AsApproved() *AppointmentBuilder {
	b.Status = appointment.StatusApproved
	return b
}

func (b *AppointmentBuilder) AsCancelled() *AppointmentBuilder {
	b.Status = appointment.StatusCancelled
	return b
}
