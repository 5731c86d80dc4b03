// Package calendar mirrors confirmed bookings into the owner's Google
// Calendar and feeds external busy times into availability resolution. All
// calls are best-effort: the booking flow never fails because the calendar
// is unreachable.
package calendar

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	gcal "google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"

	"barber-booking/internal/domain/appointment"
	"barber-booking/internal/domain/schedule"
	"barber-booking/internal/pkg/config"
	"barber-booking/internal/pkg/errs"
)

type GoogleClient struct {
	svc        *gcal.Service
	calendarID string
	timeout    time.Duration
	loc        *time.Location
}

func NewGoogleClient(ctx context.Context, cfg config.CalendarConfig, shop config.ShopConfig) (*GoogleClient, error) {
	if cfg.ClientID == "" || cfg.ClientSecret == "" || cfg.RefreshToken == "" {
		return nil, errs.New("google calendar credentials not configured")
	}

	loc, err := time.LoadLocation(shop.TimeZone)
	if err != nil {
		return nil, errs.Wrap(err, "invalid shop timezone")
	}

	oauthCfg := &oauth2.Config{
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		Endpoint:     google.Endpoint,
		Scopes:       []string{gcal.CalendarScope},
	}
	ts := oauthCfg.TokenSource(ctx, &oauth2.Token{RefreshToken: cfg.RefreshToken})

	svc, err := gcal.NewService(ctx, option.WithTokenSource(ts))
	if err != nil {
		return nil, errs.Wrap(err, "failed to build calendar service")
	}

	return &GoogleClient{
		svc:        svc,
		calendarID: cfg.CalendarID,
		timeout:    cfg.Timeout,
		loc:        loc,
	}, nil
}

// InsertEvent creates a one-slot event for an approved appointment.
func (c *GoogleClient) InsertEvent(ctx context.Context, appt *appointment.Appointment) error {
	start, err := appt.StartAt(c.loc)
	if err != nil {
		return errs.Wrap(err, "cannot resolve appointment start")
	}
	end := start.Add(schedule.SlotDuration)

	event := &gcal.Event{
		Summary: fmt.Sprintf("תספורת: %s", appt.Name),
		Description: fmt.Sprintf("שם: %s\nטלפון: %s\nשירות: %s\nהערות: %s",
			appt.Name, appt.Phone, schedule.ServiceName(appt.Service), notesOrNone(appt.Notes)),
		Start: &gcal.EventDateTime{DateTime: start.Format(time.RFC3339), TimeZone: c.loc.String()},
		End:   &gcal.EventDateTime{DateTime: end.Format(time.RFC3339), TimeZone: c.loc.String()},
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	_, err = c.svc.Events.Insert(c.calendarID, event).Context(ctx).Do()
	if err != nil {
		return errs.Mark(errs.Wrap(err, "calendar event insert failed"), errs.ErrCalendarUnavailable)
	}
	return nil
}

// BusySlots returns catalog slots that overlap a busy interval on the given
// date according to the calendar's free/busy view.
func (c *GoogleClient) BusySlots(ctx context.Context, date string) ([]string, error) {
	day, err := time.ParseInLocation(schedule.DateLayout, date, c.loc)
	if err != nil {
		return nil, errs.Wrap(err, "malformed date")
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	resp, err := c.svc.Freebusy.Query(&gcal.FreeBusyRequest{
		TimeMin: day.Format(time.RFC3339),
		TimeMax: day.AddDate(0, 0, 1).Format(time.RFC3339),
		Items:   []*gcal.FreeBusyRequestItem{{Id: c.calendarID}},
	}).Context(ctx).Do()
	if err != nil {
		return nil, errs.Mark(errs.Wrap(err, "freebusy query failed"), errs.ErrCalendarUnavailable)
	}

	cal, ok := resp.Calendars[c.calendarID]
	if !ok {
		return nil, nil
	}

	var busy []string
	for _, slot := range schedule.SlotCatalog {
		slotStart, err := schedule.StartAt(date, slot, c.loc)
		if err != nil {
			continue
		}
		slotEnd := slotStart.Add(schedule.SlotDuration)
		if overlapsAny(slotStart, slotEnd, cal.Busy) {
			busy = append(busy, slot)
		}
	}
	return busy, nil
}

func overlapsAny(start, end time.Time, periods []*gcal.TimePeriod) bool {
	for _, p := range periods {
		bStart, err1 := time.Parse(time.RFC3339, p.Start)
		bEnd, err2 := time.Parse(time.RFC3339, p.End)
		if err1 != nil || err2 != nil {
			continue
		}
		// Half-open intervals: [start,end) overlaps [bStart,bEnd) iff start < bEnd && bStart < end.
		if start.Before(bEnd) && bStart.Before(end) {
			return true
		}
	}
	return false
}

func notesOrNone(notes string) string {
	if notes == "" {
		return "אין"
	}
	return notes
}
