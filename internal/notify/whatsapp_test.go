//go:build unit

package notify_test

import (
	"net/url"
	"strings"
	"testing"

	"barber-booking/internal/domain/appointment"
	"barber-booking/internal/notify"
	"barber-booking/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeMSISDN(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{name: "local leading zero", in: "0501234567", want: "972501234567"},
		{name: "dashes stripped", in: "050-123-4567", want: "972501234567"},
		{name: "already international", in: "972501234567", want: "972501234567"},
		{name: "international with plus", in: "+972501234567", want: "972501234567"},
		{name: "bare number gets prefix", in: "501234567", want: "972501234567"},
		{name: "spaces stripped", in: "050 123 4567", want: "972501234567"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, notify.NormalizeMSISDN(tc.in))
		})
	}
}

func TestFormatDateHebrew(t *testing.T) {
	// 2025-03-10 is a Monday.
	assert.Equal(t, "יום שני, 10/3/2025", notify.FormatDateHebrew("2025-03-10"))

	// Unparseable input passes through untouched.
	assert.Equal(t, "garbage", notify.FormatDateHebrew("garbage"))
}

func TestLinkBuilder(t *testing.T) {
	shop := config.NewTestConfig().Shop
	b := notify.NewLinkBuilder(shop)

	appt := &appointment.Appointment{
		ID:      "1",
		Name:    "Dana",
		Phone:   "0501234567",
		Service: "haircut-women",
		Date:    "2025-03-10",
		Time:    "11:00",
	}

	t.Run("owner link targets the owner phone", func(t *testing.T) {
		link := b.OwnerNewBooking(appt)
		assert.True(t, strings.HasPrefix(link, "https://wa.me/"+shop.OwnerPhone+"?text="), link)

		text := decodeText(t, link)
		assert.Contains(t, text, "Dana")
		assert.Contains(t, text, "0501234567")
		assert.Contains(t, text, "תספורת נשים")
	})

	t.Run("client links target the normalized client phone", func(t *testing.T) {
		for name, link := range map[string]string{
			"confirmation": b.ClientConfirmation(appt),
			"unapproval":   b.ClientUnapproval(appt),
			"cancellation": b.ClientCancellation(appt),
			"reminder":     b.ClientReminder(appt),
		} {
			assert.True(t, strings.HasPrefix(link, "https://wa.me/972501234567?text="), name)
		}
	})

	t.Run("confirmation carries date, time and shop details", func(t *testing.T) {
		text := decodeText(t, b.ClientConfirmation(appt))
		assert.Contains(t, text, "11:00")
		assert.Contains(t, text, "10/3/2025")
		assert.Contains(t, text, shop.Name)
		assert.Contains(t, text, shop.Address)
	})

	t.Run("owner link shows empty notes placeholder", func(t *testing.T) {
		text := decodeText(t, b.OwnerNewBooking(appt))
		assert.Contains(t, text, "ללא")

		withNotes := *appt
		withNotes.Notes = "בבקשה בלי מכונה"
		text = decodeText(t, b.OwnerNewBooking(&withNotes))
		assert.Contains(t, text, "בבקשה בלי מכונה")
	})
}

func decodeText(t *testing.T, link string) string {
	t.Helper()
	u, err := url.Parse(link)
	require.NoError(t, err)
	return u.Query().Get("text")
}
