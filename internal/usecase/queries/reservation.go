package queries

import (
	"context"

	"shootbook/internal/domain/reservation"
	"shootbook/internal/infra"
	"shootbook/internal/pkg/errs"
)

// ReservationReadStore is the read-side port over the ledger. Reads are not
// linearizable with concurrent writes but never skip a committed one.
type ReservationReadStore interface {
	FindByID(ctx context.Context, id int64) (*reservation.Reservation, error)
	ListActive(ctx context.Context) ([]*reservation.Reservation, error)
	ListActiveByRequester(ctx context.Context, requesterID int64) ([]*reservation.Reservation, error)
	TakenTimes(ctx context.Context, date string) (map[string]bool, error)
}

type ReservationQueries interface {
	GetByID(ctx context.Context, id int64) (*reservation.Reservation, error)
	ListActive(ctx context.Context) ([]*reservation.Reservation, error)
	ListByRequester(ctx context.Context, requesterID int64) ([]*reservation.Reservation, error)
}

type reservationQueriesImpl struct {
	store ReservationReadStore
}

func NewReservationQueries(store ReservationReadStore) ReservationQueries {
	return &reservationQueriesImpl{store: store}
}

func (q *reservationQueriesImpl) GetByID(ctx context.Context, id int64) (*reservation.Reservation, error) {
	res, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrReservationNotFound)
		}
		return nil, errs.Mark(err, errs.ErrStorageFailure)
	}
	return res, nil
}

func (q *reservationQueriesImpl) ListActive(ctx context.Context) ([]*reservation.Reservation, error) {
	out, err := q.store.ListActive(ctx)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrStorageFailure)
	}
	return out, nil
}

func (q *reservationQueriesImpl) ListByRequester(ctx context.Context, requesterID int64) ([]*reservation.Reservation, error) {
	out, err := q.store.ListActiveByRequester(ctx, requesterID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrStorageFailure)
	}
	return out, nil
}
