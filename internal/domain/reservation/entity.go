package reservation

import (
	"errors"
	"time"
)

var (
	ErrInvalidDate       = errors.New("invalid date")
	ErrInvalidTimeLabel  = errors.New("invalid time label")
	ErrEmptyShootType    = errors.New("shoot type must not be empty")
	ErrInvalidPhone      = errors.New("invalid phone number")
	ErrInvalidRequester  = errors.New("invalid requester identity")
	ErrInvalidStatus     = errors.New("invalid reservation status")
	ErrInvalidTransition = errors.New("invalid status transition")
)

type Reservation struct {
	id        int64
	slot      Slot
	shootType ShootType
	phone     Phone
	requester Requester
	status    Status
	createdAt time.Time
	updatedAt time.Time
}

// NewReservation builds a not-yet-persisted record. The identifier stays
// zero until the ledger assigns one on append.
func NewReservation(
	slot Slot,
	shootType ShootType,
	phone Phone,
	requester Requester,
	now time.Time,
) (*Reservation, error) {
	if slot.IsZero() {
		return nil, ErrInvalidDate
	}
	return &Reservation{
		slot:      slot,
		shootType: shootType,
		phone:     phone,
		requester: requester,
		status:    StatusNew,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func Reconstruct(
	id int64,
	slot Slot,
	shootType ShootType,
	phone Phone,
	requester Requester,
	status Status,
	createdAt, updatedAt time.Time,
) *Reservation {
	return &Reservation{
		id:        id,
		slot:      slot,
		shootType: shootType,
		phone:     phone,
		requester: requester,
		status:    status,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

// TransitionTo moves the record along the New -> {Done, Cancelled} lifecycle.
func (r *Reservation) TransitionTo(next Status, now time.Time) error {
	if !next.IsValid() {
		return ErrInvalidStatus
	}
	if !r.status.CanTransitionTo(next) {
		return ErrInvalidTransition
	}
	r.status = next
	r.updatedAt = now
	return nil
}

func (r *Reservation) IsActive() bool {
	return r.status == StatusNew
}

func (r *Reservation) IsOwnedBy(requesterID int64) bool {
	return r.requester.ID() == requesterID
}

func (r *Reservation) ID() int64            { return r.id }
func (r *Reservation) Slot() Slot           { return r.slot }
func (r *Reservation) ShootType() ShootType { return r.shootType }
func (r *Reservation) Phone() Phone         { return r.phone }
func (r *Reservation) Requester() Requester { return r.requester }
func (r *Reservation) Status() Status       { return r.status }
func (r *Reservation) CreatedAt() time.Time { return r.createdAt }
func (r *Reservation) UpdatedAt() time.Time { return r.updatedAt }
