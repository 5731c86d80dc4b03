// Package notify builds WhatsApp deep links for the shop's notification
// flows. A deep link pre-fills recipient and message text; a human operator
// opens it, so nothing here performs network calls.
package notify

import (
	"fmt"
	"net/url"
	"strings"

	"barber-booking/internal/domain/appointment"
	"barber-booking/internal/domain/schedule"
	"barber-booking/internal/pkg/config"
)

type LinkBuilder struct {
	shop config.ShopConfig
}

func NewLinkBuilder(shop config.ShopConfig) *LinkBuilder {
	return &LinkBuilder{shop: shop}
}

// OwnerNewBooking notifies the owner about a fresh booking request.
func (b *LinkBuilder) OwnerNewBooking(appt *appointment.Appointment) string {
	msg := fmt.Sprintf(`🎉 *תור חדש ב%s!*

👤 *שם:* %s
📞 *טלפון:* %s
💇 *שירות:* %s
📅 *תאריך:* %s
🕐 *שעה:* %s
📝 *הערות:* %s`,
		b.shop.Name,
		appt.Name,
		appt.Phone,
		schedule.ServiceName(appt.Service),
		appt.Date,
		appt.Time,
		notesOrNone(appt.Notes),
	)
	return deepLink(b.shop.OwnerPhone, msg)
}

// ClientConfirmation is sent when the admin approves an appointment.
func (b *LinkBuilder) ClientConfirmation(appt *appointment.Appointment) string {
	msg := fmt.Sprintf(`✅ *התור שלך אושר!*

שלום %s! 👋

התור שלך ב%s אושר בהצלחה!

📅 *תאריך:* %s
🕐 *שעה:* %s
💇 *שירות:* %s

📍 *כתובת:* %s
📞 *טלפון:* %s

⏰ תקבל תזכורת חצי שעה לפני התור.

נתראה בקרוב! 💈`,
		appt.Name,
		b.shop.Name,
		FormatDateHebrew(appt.Date),
		appt.Time,
		schedule.ServiceName(appt.Service),
		b.shop.Address,
		b.shop.Phone,
	)
	return deepLink(NormalizeMSISDN(appt.Phone), msg)
}

// ClientUnapproval is sent when an approved appointment goes back to pending.
func (b *LinkBuilder) ClientUnapproval(appt *appointment.Appointment) string {
	msg := fmt.Sprintf(`⚠️ *עדכון לגבי התור שלך*

שלום %s,

התור שלך ב%s בוטל מאישור.

📅 *תאריך:* %s
🕐 *שעה:* %s

ייתכן שנצטרך לשנות את המועד. נחזור אליך בהקדם!

📞 *לשאלות:* %s

סליחה על אי הנוחות 🙏`,
		appt.Name,
		b.shop.Name,
		FormatDateHebrew(appt.Date),
		appt.Time,
		b.shop.Phone,
	)
	return deepLink(NormalizeMSISDN(appt.Phone), msg)
}

// ClientCancellation is sent when an appointment is cancelled.
func (b *LinkBuilder) ClientCancellation(appt *appointment.Appointment) string {
	msg := fmt.Sprintf(`❌ *התור שלך בוטל*

שלום %s,

התור שלך ב%s בוטל.

📅 *תאריך:* %s
🕐 *שעה:* %s

ניתן לקבוע תור חדש בכל עת דרך האתר.

📞 *לשאלות:* %s`,
		appt.Name,
		b.shop.Name,
		FormatDateHebrew(appt.Date),
		appt.Time,
		b.shop.Phone,
	)
	return deepLink(NormalizeMSISDN(appt.Phone), msg)
}

// ClientReminder fires shortly before the appointment start.
func (b *LinkBuilder) ClientReminder(appt *appointment.Appointment) string {
	msg := fmt.Sprintf(`⏰ *תזכורת לתור!*

שלום %s! 👋

מזכירים לך שיש לך תור ב%s *בעוד חצי שעה!*

🕐 *שעה:* %s
💇 *שירות:* %s

📍 *כתובת:* %s
📞 *טלפון:* %s

אנחנו מחכים לך! 💈`,
		appt.Name,
		b.shop.Name,
		appt.Time,
		schedule.ServiceName(appt.Service),
		b.shop.Address,
		b.shop.Phone,
	)
	return deepLink(NormalizeMSISDN(appt.Phone), msg)
}

// NormalizeMSISDN turns a locally formatted Israeli number into the
// international form wa.me expects: digits only, leading 0 replaced by 972.
func NormalizeMSISDN(phone string) string {
	var digits strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	n := digits.String()

	switch {
	case strings.HasPrefix(n, "0"):
		return "972" + n[1:]
	case strings.HasPrefix(n, "972"):
		return n
	default:
		return "972" + n
	}
}

var hebrewDays = [...]string{"ראשון", "שני", "שלישי", "רביעי", "חמישי", "שישי", "שבת"}

// FormatDateHebrew renders an ISO date as "יום <day>, d/m/yyyy".
func FormatDateHebrew(date string) string {
	d, err := schedule.ParseDate(date)
	if err != nil {
		return date
	}
	return fmt.Sprintf("יום %s, %d/%d/%d", hebrewDays[int(d.Weekday())], d.Day(), int(d.Month()), d.Year())
}

func deepLink(msisdn, text string) string {
	return fmt.Sprintf("https://wa.me/%s?text=%s", msisdn, url.QueryEscape(text))
}

func notesOrNone(notes string) string {
	if notes == "" {
		return "ללא"
	}
	return notes
}
