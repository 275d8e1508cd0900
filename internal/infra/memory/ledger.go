package memory

import (
	"context"
	"sync"
	"time"

	"shootbook/internal/domain/reservation"
	"shootbook/internal/infra"
)

type slotKey struct {
	date      string
	timeLabel string
}

// Ledger is an embedded single-writer reservation store. Every mutation is
// serialized under one mutex, so the conflict check and the insert are
// atomic with respect to each other.
type Ledger struct {
	mu         sync.RWMutex
	nextID     int64
	order      []int64
	byID       map[int64]*reservation.Reservation
	activeSlot map[slotKey]int64
}

func NewLedger() *Ledger {
	return &Ledger{
		nextID:     1,
		byID:       make(map[int64]*reservation.Reservation),
		activeSlot: make(map[slotKey]int64),
	}
}

func (l *Ledger) Create(ctx context.Context, res *reservation.Reservation) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, infra.WrapRepoErr("context cancelled", err)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	key := slotKey{date: res.Slot().Date(), timeLabel: res.Slot().TimeLabel()}
	if _, taken := l.activeSlot[key]; taken {
		return 0, infra.WrapRepoErr("slot already reserved", nil, infra.KindConflict)
	}

	id := l.nextID
	l.nextID++

	stored := reservation.Reconstruct(
		id, res.Slot(), res.ShootType(), res.Phone(), res.Requester(),
		res.Status(), res.CreatedAt(), res.UpdatedAt(),
	)
	l.byID[id] = stored
	l.order = append(l.order, id)
	l.activeSlot[key] = id
	return id, nil
}

func (l *Ledger) FindByID(ctx context.Context, id int64) (*reservation.Reservation, error) {
	if err := ctx.Err(); err != nil {
		return nil, infra.WrapRepoErr("context cancelled", err)
	}

	l.mu.RLock()
	defer l.mu.RUnlock()

	res, ok := l.byID[id]
	if !ok {
		return nil, infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound)
	}
	return copyOf(res), nil
}

func (l *Ledger) ListActive(ctx context.Context) ([]*reservation.Reservation, error) {
	return l.listWhere(ctx, func(r *reservation.Reservation) bool {
		return r.IsActive()
	})
}

func (l *Ledger) ListActiveByRequester(ctx context.Context, requesterID int64) ([]*reservation.Reservation, error) {
	return l.listWhere(ctx, func(r *reservation.Reservation) bool {
		return r.IsActive() && r.IsOwnedBy(requesterID)
	})
}

func (l *Ledger) UpdateStatus(ctx context.Context, id int64, next reservation.Status, now time.Time) error {
	if err := ctx.Err(); err != nil {
		return infra.WrapRepoErr("context cancelled", err)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	res, ok := l.byID[id]
	if !ok {
		return infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound)
	}
	if !res.IsActive() {
		return infra.WrapRepoErr("reservation no longer active", nil, infra.KindStale)
	}
	if err := res.TransitionTo(next, now); err != nil {
		return infra.WrapRepoErr("transition rejected", err, infra.KindStale)
	}
	delete(l.activeSlot, slotKey{date: res.Slot().Date(), timeLabel: res.Slot().TimeLabel()})
	return nil
}

func (l *Ledger) IsSlotTaken(ctx context.Context, date, timeLabel string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, infra.WrapRepoErr("context cancelled", err)
	}

	l.mu.RLock()
	defer l.mu.RUnlock()

	_, taken := l.activeSlot[slotKey{date: date, timeLabel: timeLabel}]
	return taken, nil
}

func (l *Ledger) TakenTimes(ctx context.Context, date string) (map[string]bool, error) {
	if err := ctx.Err(); err != nil {
		return nil, infra.WrapRepoErr("context cancelled", err)
	}

	l.mu.RLock()
	defer l.mu.RUnlock()

	taken := make(map[string]bool)
	for key := range l.activeSlot {
		if key.date == date {
			taken[key.timeLabel] = true
		}
	}
	return taken, nil
}

func (l *Ledger) listWhere(ctx context.Context, keep func(*reservation.Reservation) bool) ([]*reservation.Reservation, error) {
	if err := ctx.Err(); err != nil {
		return nil, infra.WrapRepoErr("context cancelled", err)
	}

	l.mu.RLock()
	defer l.mu.RUnlock()

	var out []*reservation.Reservation
	for _, id := range l.order {
		if res := l.byID[id]; keep(res) {
			out = append(out, copyOf(res))
		}
	}
	return out, nil
}

// copyOf detaches the returned record so callers never mutate stored state.
func copyOf(res *reservation.Reservation) *reservation.Reservation {
	return reservation.Reconstruct(
		res.ID(), res.Slot(), res.ShootType(), res.Phone(), res.Requester(),
		res.Status(), res.CreatedAt(), res.UpdatedAt(),
	)
}
