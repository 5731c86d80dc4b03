//go:build unit

package repository_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"barber-booking/internal/domain/appointment"
	"barber-booking/internal/infra/jsonstore"
	"barber-booking/internal/infra/repository"
	"barber-booking/internal/pkg/clock"
	"barber-booking/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var baseTime = time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

func newAppointmentRepo(t *testing.T) (*repository.AppointmentRepository, *clock.MockClock) {
	t.Helper()
	col, err := jsonstore.NewCollection[appointment.Appointment](filepath.Join(t.TempDir(), "appointments.json"))
	require.NoError(t, err)
	clk := clock.NewMockClock(baseTime)
	return repository.NewAppointmentRepository(col, clk), clk
}

func draft(date, slot string) appointment.Draft {
	return appointment.Draft{
		Name:    "Dana",
		Phone:   "0501234567",
		Service: "haircut-women",
		Date:    date,
		Time:    slot,
	}
}

func TestAppointmentCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("persists a pending appointment", func(t *testing.T) {
		repo, _ := newAppointmentRepo(t)

		created, err := repo.Create(ctx, draft("2025-03-10", "11:00"))
		require.NoError(t, err)

		assert.NotEmpty(t, created.ID)
		assert.Equal(t, appointment.StatusPending, created.Status)
		assert.Equal(t, baseTime, created.CreatedAt)
		assert.False(t, created.ReminderSent)

		found, err := repo.FindByID(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, created.ID, found.ID)
	})

	t.Run("rejects a second booking for the same slot", func(t *testing.T) {
		repo, clk := newAppointmentRepo(t)

		_, err := repo.Create(ctx, draft("2025-03-10", "11:00"))
		require.NoError(t, err)

		clk.Add(time.Minute)
		_, err = repo.Create(ctx, draft("2025-03-10", "11:00"))
		assert.ErrorIs(t, err, errs.ErrSlotTaken)

		records, err := repo.List(ctx)
		require.NoError(t, err)
		assert.Len(t, records, 1)
	})

	t.Run("same slot on another date is free", func(t *testing.T) {
		repo, _ := newAppointmentRepo(t)

		_, err := repo.Create(ctx, draft("2025-03-10", "11:00"))
		require.NoError(t, err)
		_, err = repo.Create(ctx, draft("2025-03-11", "11:00"))
		assert.NoError(t, err)
	})

	t.Run("cancelled appointment frees the slot", func(t *testing.T) {
		repo, clk := newAppointmentRepo(t)

		first, err := repo.Create(ctx, draft("2025-03-10", "11:00"))
		require.NoError(t, err)
		_, err = repo.UpdateStatus(ctx, first.ID, appointment.StatusCancelled)
		require.NoError(t, err)

		clk.Add(time.Minute)
		second, err := repo.Create(ctx, draft("2025-03-10", "11:00"))
		require.NoError(t, err)
		assert.NotEqual(t, first.ID, second.ID)
	})

	t.Run("ids stay unique when the clock does not move", func(t *testing.T) {
		repo, _ := newAppointmentRepo(t)

		a, err := repo.Create(ctx, draft("2025-03-10", "11:00"))
		require.NoError(t, err)
		b, err := repo.Create(ctx, draft("2025-03-10", "12:00"))
		require.NoError(t, err)
		assert.NotEqual(t, a.ID, b.ID)
	})
}

func TestAppointmentDelete(t *testing.T) {
	ctx := context.Background()
	repo, _ := newAppointmentRepo(t)

	created, err := repo.Create(ctx, draft("2025-03-10", "11:00"))
	require.NoError(t, err)

	require.NoError(t, repo.Delete(ctx, created.ID))

	_, err = repo.FindByID(ctx, created.ID)
	assert.ErrorIs(t, err, errs.ErrAppointmentNotFound)

	err = repo.Delete(ctx, "missing")
	assert.ErrorIs(t, err, errs.ErrAppointmentNotFound)
}

func TestAppointmentUpdateStatus(t *testing.T) {
	ctx := context.Background()
	repo, clk := newAppointmentRepo(t)

	created, err := repo.Create(ctx, draft("2025-03-10", "11:00"))
	require.NoError(t, err)
	assert.True(t, created.UpdatedAt.IsZero())

	clk.Add(time.Hour)
	updated, err := repo.UpdateStatus(ctx, created.ID, appointment.StatusApproved)
	require.NoError(t, err)
	assert.Equal(t, appointment.StatusApproved, updated.Status)
	assert.Equal(t, baseTime.Add(time.Hour), updated.UpdatedAt)

	// Same-status write still stamps UpdatedAt.
	clk.Add(time.Hour)
	again, err := repo.UpdateStatus(ctx, created.ID, appointment.StatusApproved)
	require.NoError(t, err)
	assert.Equal(t, baseTime.Add(2*time.Hour), again.UpdatedAt)

	_, err = repo.UpdateStatus(ctx, "missing", appointment.StatusApproved)
	assert.ErrorIs(t, err, errs.ErrAppointmentNotFound)
}

func TestListApprovedAndMarkReminderSent(t *testing.T) {
	ctx := context.Background()
	repo, _ := newAppointmentRepo(t)

	pending, err := repo.Create(ctx, draft("2025-03-10", "11:00"))
	require.NoError(t, err)
	approved, err := repo.Create(ctx, draft("2025-03-10", "12:00"))
	require.NoError(t, err)
	_, err = repo.UpdateStatus(ctx, approved.ID, appointment.StatusApproved)
	require.NoError(t, err)

	due, err := repo.ListApproved(ctx)
	require.NoError(t, err)
	require.Len(t, due, 1)
	assert.Equal(t, approved.ID, due[0].ID)
	assert.NotEqual(t, pending.ID, due[0].ID)

	require.NoError(t, repo.MarkReminderSent(ctx, approved.ID))

	due, err = repo.ListApproved(ctx)
	require.NoError(t, err)
	assert.Empty(t, due)

	err = repo.MarkReminderSent(ctx, "missing")
	assert.ErrorIs(t, err, errs.ErrAppointmentNotFound)
}

func TestListByDate(t *testing.T) {
	ctx := context.Background()
	repo, _ := newAppointmentRepo(t)

	_, err := repo.Create(ctx, draft("2025-03-10", "11:00"))
	require.NoError(t, err)
	cancelled, err := repo.Create(ctx, draft("2025-03-10", "12:00"))
	require.NoError(t, err)
	_, err = repo.UpdateStatus(ctx, cancelled.ID, appointment.StatusCancelled)
	require.NoError(t, err)
	_, err = repo.Create(ctx, draft("2025-03-11", "11:00"))
	require.NoError(t, err)

	// Any status counts, filtering is the caller's concern.
	byDate, err := repo.ListByDate(ctx, "2025-03-10")
	require.NoError(t, err)
	assert.Len(t, byDate, 2)
}
