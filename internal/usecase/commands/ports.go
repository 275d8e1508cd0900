package commands

import (
	"context"
	"time"

	"shootbook/internal/domain/reservation"
)

// LedgerRepository is the write-side port over the reservation ledger.
// Implementations must make Create's conflict check and insert atomic with
// respect to other mutations.
type LedgerRepository interface {
	Create(ctx context.Context, res *reservation.Reservation) (int64, error)
	FindByID(ctx context.Context, id int64) (*reservation.Reservation, error)
	ListActive(ctx context.Context) ([]*reservation.Reservation, error)
	UpdateStatus(ctx context.Context, id int64, next reservation.Status, now time.Time) error
	IsSlotTaken(ctx context.Context, date, timeLabel string) (bool, error)
}

// Draft carries the fields a completed booking conversation collected.
type Draft struct {
	Slot      reservation.Slot
	ShootType reservation.ShootType
	Phone     reservation.Phone
	Requester reservation.Requester
}
