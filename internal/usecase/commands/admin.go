package commands

import (
	"context"
	"fmt"
	"log/slog"

	"shootbook/internal/domain/reservation"
	"shootbook/internal/infra"
	"shootbook/internal/pkg/clock"
	"shootbook/internal/pkg/errs"
	"shootbook/internal/transport"
)

type AdminCommands interface {
	ListActive(ctx context.Context, callerID int64) ([]*reservation.Reservation, error)
	MarkDone(ctx context.Context, callerID int64, id int64) error
	// MarkCancelled frees the slot and notifies the owning requester.
	MarkCancelled(ctx context.Context, callerID int64, id int64) error
	// SelfCancel is the requester-initiated variant; it fails with
	// errs.ErrForbidden unless the reservation belongs to requesterID.
	SelfCancel(ctx context.Context, requesterID int64, id int64) error
}

type adminCommandsImpl struct {
	ledger    LedgerRepository
	messenger transport.Messenger
	notifier  transport.AdminNotifier
	clock     clock.Clock
	adminID   int64
	logger    *slog.Logger
}

func NewAdminCommands(
	ledger LedgerRepository,
	messenger transport.Messenger,
	notifier transport.AdminNotifier,
	clk clock.Clock,
	adminID int64,
	logger *slog.Logger,
) AdminCommands {
	return &adminCommandsImpl{
		ledger:    ledger,
		messenger: messenger,
		notifier:  notifier,
		clock:     clk,
		adminID:   adminID,
		logger:    logger,
	}
}

func (a *adminCommandsImpl) ListActive(ctx context.Context, callerID int64) ([]*reservation.Reservation, error) {
	if callerID != a.adminID {
		return nil, errs.ErrForbidden
	}
	out, err := a.ledger.ListActive(ctx)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrStorageFailure)
	}
	return out, nil
}

func (a *adminCommandsImpl) MarkDone(ctx context.Context, callerID int64, id int64) error {
	if callerID != a.adminID {
		return errs.ErrForbidden
	}
	_, err := a.transition(ctx, id, reservation.StatusDone)
	return err
}

func (a *adminCommandsImpl) MarkCancelled(ctx context.Context, callerID int64, id int64) error {
	if callerID != a.adminID {
		return errs.ErrForbidden
	}
	res, err := a.transition(ctx, id, reservation.StatusCancelled)
	if err != nil {
		return err
	}

	text := fmt.Sprintf("Your photo session on %s was cancelled by the photographer.", res.Slot())
	if err := a.messenger.SendText(ctx, res.Requester().ID(), text); err != nil {
		a.logger.Warn("failed to notify requester about cancellation",
			"reservation_id", id, "requester_id", res.Requester().ID(), "error", err)
	}
	return nil
}

func (a *adminCommandsImpl) SelfCancel(ctx context.Context, requesterID int64, id int64) error {
	res, err := a.ledger.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.Mark(err, errs.ErrReservationNotFound)
		}
		return errs.Mark(err, errs.ErrStorageFailure)
	}
	if !res.IsOwnedBy(requesterID) {
		return errs.ErrForbidden
	}

	if _, err := a.transition(ctx, id, reservation.StatusCancelled); err != nil {
		return err
	}

	text := fmt.Sprintf("Booking #%d cancelled by %s: %s, %s",
		id, res.Requester().Name(), res.ShootType(), res.Slot())
	if err := a.notifier.NotifyAdmin(ctx, text); err != nil {
		a.logger.Warn("failed to notify admin about self-cancel",
			"reservation_id", id, "error", err)
	}
	return nil
}

// transition validates the lifecycle rule against the current record, then
// applies a conditional update so a concurrent transition loses cleanly.
func (a *adminCommandsImpl) transition(ctx context.Context, id int64, next reservation.Status) (*reservation.Reservation, error) {
	res, err := a.ledger.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrReservationNotFound)
		}
		return nil, errs.Mark(err, errs.ErrStorageFailure)
	}

	now := a.clock.Now()
	if err := res.TransitionTo(next, now); err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidTransition)
	}

	if err := a.ledger.UpdateStatus(ctx, id, next, now); err != nil {
		switch {
		case infra.IsKind(err, infra.KindNotFound):
			return nil, errs.Mark(err, errs.ErrReservationNotFound)
		case infra.IsKind(err, infra.KindStale):
			return nil, errs.Mark(err, errs.ErrInvalidTransition)
		default:
			return nil, errs.Mark(err, errs.ErrStorageFailure)
		}
	}
	return res, nil
}
