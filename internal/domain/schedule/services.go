package schedule

// Offered services, keyed by the codes the booking form submits.
// Display names are Hebrew, matching the shop's public site.
var services = map[string]string{
	"haircut-men":   "תספורת גברים",
	"haircut-women": "תספורת נשים",
	"haircut-kids":  "תספורת ילדים",
	"coloring":      "צביעת שיער",
	"straightening": "החלקת שיער",
	"event-styling": "תסרוקות אירועים",
}

func IsValidService(code string) bool {
	_, ok := services[code]
	return ok
}

// ServiceName returns the display name for a service code, falling back to
// the code itself for records predating the closed catalog.
func ServiceName(code string) string {
	if name, ok := services[code]; ok {
		return name
	}
	return code
}
