package queries

import (
	"context"

	"shootbook/internal/domain/schedule"
	"shootbook/internal/pkg/clock"
	"shootbook/internal/pkg/errs"
)

type AvailabilityQueries interface {
	// AvailableTimes reports the bookable state of every defined time label
	// on the given date. Taken wins over TooSoon.
	AvailableTimes(ctx context.Context, date string) (map[string]schedule.AvailabilityState, error)
}

type availabilityQueriesImpl struct {
	store  ReservationReadStore
	policy *schedule.Policy
	clock  clock.Clock
}

func NewAvailabilityQueries(store ReservationReadStore, policy *schedule.Policy, clk clock.Clock) AvailabilityQueries {
	return &availabilityQueriesImpl{
		store:  store,
		policy: policy,
		clock:  clk,
	}
}

func (a *availabilityQueriesImpl) AvailableTimes(ctx context.Context, date string) (map[string]schedule.AvailabilityState, error) {
	canonical, err := a.policy.ParseDate(date)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrValidation)
	}

	taken, err := a.store.TakenTimes(ctx, canonical)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrStorageFailure)
	}

	now := a.clock.Now()
	states := make(map[string]schedule.AvailabilityState, len(a.policy.DayTimes()))
	for _, label := range a.policy.DayTimes() {
		switch {
		case taken[label]:
			states[label] = schedule.StateTaken
		case a.policy.IsTooSoon(now, canonical, label):
			states[label] = schedule.StateTooSoon
		default:
			states[label] = schedule.StateOpen
		}
	}
	return states, nil
}
