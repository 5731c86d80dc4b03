//go:build unit

package schedule_test

import (
	"testing"
	"time"

	"barber-booking/internal/domain/schedule"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlotCatalog(t *testing.T) {
	require.Len(t, schedule.SlotCatalog, 11)
	assert.Equal(t, "09:00", schedule.SlotCatalog[0])
	assert.Equal(t, "19:00", schedule.SlotCatalog[len(schedule.SlotCatalog)-1])
}

func TestIsValidSlot(t *testing.T) {
	for _, s := range schedule.SlotCatalog {
		assert.True(t, schedule.IsValidSlot(s), s)
	}

	assert.False(t, schedule.IsValidSlot("08:00"))
	assert.False(t, schedule.IsValidSlot("20:00"))
	assert.False(t, schedule.IsValidSlot("09:30"))
	assert.False(t, schedule.IsValidSlot("9:00"))
	assert.False(t, schedule.IsValidSlot(""))
}

func TestParseDate(t *testing.T) {
	d, err := schedule.ParseDate("2025-03-10")
	require.NoError(t, err)
	assert.Equal(t, 2025, d.Year())

	for _, bad := range []string{"", "10-03-2025", "2025/03/10", "2025-3-10", "not-a-date"} {
		_, err := schedule.ParseDate(bad)
		assert.ErrorIs(t, err, schedule.ErrInvalidDate, bad)
	}
}

func TestStartAt(t *testing.T) {
	loc, err := time.LoadLocation("Asia/Jerusalem")
	require.NoError(t, err)

	start, err := schedule.StartAt("2025-03-10", "14:00", loc)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 3, 10, 14, 0, 0, 0, loc), start)

	_, err = schedule.StartAt("2025-03-10", "14:30", loc)
	assert.ErrorIs(t, err, schedule.ErrInvalidSlot)

	_, err = schedule.StartAt("bad-date", "14:00", loc)
	assert.ErrorIs(t, err, schedule.ErrInvalidDate)
}
