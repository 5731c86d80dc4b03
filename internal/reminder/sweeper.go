// Package reminder runs the periodic sweep that fires a once-only WhatsApp
// reminder before each approved appointment. Scheduling is coarse: the sweep
// tolerates being skipped or delayed by a few minutes.
package reminder

import (
	"context"
	"log/slog"
	"time"

	"barber-booking/internal/domain/appointment"
	"barber-booking/internal/notify"
	"barber-booking/internal/pkg/clock"
)

// AppointmentSource is the slice of the appointment store the sweeper needs.
type AppointmentSource interface {
	ListApproved(ctx context.Context) ([]appointment.Appointment, error)
	MarkReminderSent(ctx context.Context, id string) error
}

type Sweeper struct {
	appointments AppointmentSource
	links        *notify.LinkBuilder
	clock        clock.Clock
	loc          *time.Location
	interval     time.Duration
	window       time.Duration
	logger       *slog.Logger
}

type Config struct {
	Interval time.Duration
	Window   time.Duration
}

func NewSweeper(appointments AppointmentSource, links *notify.LinkBuilder, clk clock.Clock, loc *time.Location, cfg Config, logger *slog.Logger) *Sweeper {
	if cfg.Interval <= 0 {
		cfg.Interval = time.Minute
	}
	if cfg.Window <= 0 {
		cfg.Window = 30 * time.Minute
	}
	return &Sweeper{
		appointments: appointments,
		links:        links,
		clock:        clk,
		loc:          loc,
		interval:     cfg.Interval,
		window:       cfg.Window,
		logger:       logger,
	}
}

func (s *Sweeper) Run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := s.Sweep(ctx); err != nil {
				s.logger.Error("reminder sweep failed", "error", err.Error())
			}
		}
	}
}

// Sweep fires a reminder for every approved appointment whose start falls
// inside the window. The reminderSent flag makes the sweep idempotent per
// appointment no matter how many cycles observe it inside the window.
func (s *Sweeper) Sweep(ctx context.Context) error {
	appts, err := s.appointments.ListApproved(ctx)
	if err != nil {
		return err
	}

	now := s.clock.Now()
	for i := range appts {
		appt := &appts[i]
		start, err := appt.StartAt(s.loc)
		if err != nil {
			s.logger.Warn("skipping appointment with unresolvable start",
				"appointment_id", appt.ID, "error", err.Error())
			continue
		}

		if now.Before(start.Add(-s.window)) || !now.Before(start) {
			continue
		}

		s.logger.Info("appointment reminder due",
			"appointment_id", appt.ID,
			"time", appt.Time,
			"whatsapp_link", s.links.ClientReminder(appt),
		)
		if err := s.appointments.MarkReminderSent(ctx, appt.ID); err != nil {
			s.logger.Error("failed to mark reminder sent",
				"appointment_id", appt.ID, "error", err.Error())
		}
	}
	return nil
}
