package commands

import (
	"context"

	"shootbook/internal/domain/reservation"
	"shootbook/internal/domain/schedule"
	"shootbook/internal/infra"
	"shootbook/internal/pkg/clock"
	"shootbook/internal/pkg/errs"
)

type BookingCommands interface {
	// Reserve re-validates availability at call time and writes through the
	// ledger. It fails with errs.ErrSlotUnavailable when the slot is taken
	// or inside a policy window, and errs.ErrSlotConflict when a concurrent
	// append won the slot at the storage layer. Callers treat both as
	// "pick another slot".
	Reserve(ctx context.Context, draft Draft) (*reservation.Reservation, error)
}

type bookingCommandsImpl struct {
	ledger LedgerRepository
	policy *schedule.Policy
	clock  clock.Clock
}

func NewBookingCommands(ledger LedgerRepository, policy *schedule.Policy, clk clock.Clock) BookingCommands {
	return &bookingCommandsImpl{
		ledger: ledger,
		policy: policy,
		clock:  clk,
	}
}

func (b *bookingCommandsImpl) Reserve(ctx context.Context, draft Draft) (*reservation.Reservation, error) {
	now := b.clock.Now()
	date := draft.Slot.Date()
	label := draft.Slot.TimeLabel()

	// The gap between a user viewing the grid and confirming is unbounded,
	// so availability must be re-checked here, not just at display time.
	taken, err := b.ledger.IsSlotTaken(ctx, date, label)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrStorageFailure)
	}
	if taken {
		return nil, errs.ErrSlotUnavailable
	}
	if b.policy.IsTooSoon(now, date, label) {
		return nil, errs.ErrSlotUnavailable
	}
	if b.policy.IsTooFar(now, date) {
		return nil, errs.ErrDateTooFar
	}

	res, err := reservation.NewReservation(draft.Slot, draft.ShootType, draft.Phone, draft.Requester, now)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrValidation)
	}

	id, err := b.ledger.Create(ctx, res)
	if err != nil {
		if infra.IsKind(err, infra.KindConflict) {
			return nil, errs.Mark(err, errs.ErrSlotConflict)
		}
		return nil, errs.Mark(err, errs.ErrStorageFailure)
	}

	// Read-after-write so the returned record carries the assigned id.
	created, err := b.ledger.FindByID(ctx, id)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrStorageFailure)
	}
	return created, nil
}
