package repository

import (
	"context"

	"barber-booking/internal/domain/schedule"
	"barber-booking/internal/infra/jsonstore"
	"barber-booking/internal/pkg/errs"
)

// BreakRepository owns the breaks collection. Breaks are never
// conflict-checked against appointments.
type BreakRepository struct {
	col *jsonstore.Collection[schedule.Break]
}

func NewBreakRepository(col *jsonstore.Collection[schedule.Break]) *BreakRepository {
	return &BreakRepository{col: col}
}

func (r *BreakRepository) List(_ context.Context) ([]schedule.Break, error) {
	return r.col.Load()
}

func (r *BreakRepository) ListByDate(_ context.Context, date string) ([]schedule.Break, error) {
	records, err := r.col.Load()
	if err != nil {
		return nil, err
	}
	var out []schedule.Break
	for i := range records {
		if records[i].Date == date {
			out = append(out, records[i])
		}
	}
	return out, nil
}

func (r *BreakRepository) Insert(_ context.Context, b *schedule.Break) error {
	_, err := r.col.Mutate(func(records []schedule.Break) ([]schedule.Break, error) {
		return append(records, *b), nil
	})
	return err
}

func (r *BreakRepository) Remove(_ context.Context, id string) error {
	_, err := r.col.Mutate(func(records []schedule.Break) ([]schedule.Break, error) {
		for i := range records {
			if records[i].ID == id {
				return append(records[:i], records[i+1:]...), nil
			}
		}
		return nil, errs.ErrBreakNotFound
	})
	return err
}
