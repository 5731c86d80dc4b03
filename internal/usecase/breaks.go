package usecase

import (
	"context"

	"barber-booking/internal/domain/schedule"
	"barber-booking/internal/pkg/clock"
	"barber-booking/internal/pkg/errs"
)

type BreakUseCase interface {
	List(ctx context.Context) ([]schedule.Break, error)
	Add(ctx context.Context, date string, times []string) (*schedule.Break, error)
	Remove(ctx context.Context, id string) error
}

type breakUseCaseImpl struct {
	breaks BreakRepository
	clock  clock.Clock
}

func NewBreakUseCase(breaks BreakRepository, clk clock.Clock) BreakUseCase {
	return &breakUseCaseImpl{breaks: breaks, clock: clk}
}

func (u *breakUseCaseImpl) List(ctx context.Context) ([]schedule.Break, error) {
	return u.breaks.List(ctx)
}

// Add declares blocked slots on a date. No conflict validation against
// existing appointments: an admin overriding availability is accepted
// behavior.
func (u *breakUseCaseImpl) Add(ctx context.Context, date string, times []string) (*schedule.Break, error) {
	b, err := schedule.NewBreak(date, times, u.clock.Now())
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}
	if err := u.breaks.Insert(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

func (u *breakUseCaseImpl) Remove(ctx context.Context, id string) error {
	return u.breaks.Remove(ctx, id)
}
