package schedule

import (
	"errors"
	"time"
)

var (
	ErrInvalidDate = errors.New("date must be YYYY-MM-DD")
	ErrInvalidSlot = errors.New("time is not a bookable slot")
)

const DateLayout = "2006-01-02"

// SlotCatalog is the fixed ordered set of bookable hours. It is shared by
// booking validation and availability computation and is constant for the
// whole system, not per-date.
var SlotCatalog = []string{
	"09:00", "10:00", "11:00", "12:00", "13:00", "14:00",
	"15:00", "16:00", "17:00", "18:00", "19:00",
}

// SlotDuration is the length of one catalog slot.
const SlotDuration = time.Hour

func IsValidSlot(t string) bool {
	for _, s := range SlotCatalog {
		if s == t {
			return true
		}
	}
	return false
}

func ParseDate(s string) (time.Time, error) {
	d, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return d, nil
}

// StartAt resolves a date + catalog slot to a wall-clock instant in loc.
func StartAt(date, slot string, loc *time.Location) (time.Time, error) {
	if _, err := ParseDate(date); err != nil {
		return time.Time{}, err
	}
	if !IsValidSlot(slot) {
		return time.Time{}, ErrInvalidSlot
	}
	t, err := time.ParseInLocation(DateLayout+" 15:04", date+" "+slot, loc)
	if err != nil {
		return time.Time{}, ErrInvalidSlot
	}
	return t, nil
}
