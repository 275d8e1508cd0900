//go:build unit || e2e

package builder

import (
	"time"

	"shootbook/internal/domain/reservation"
	"shootbook/internal/usecase/commands"
)

type ReservationBuilder struct {
	ID              int64
	Date            string
	TimeLabel       string
	ShootType       string
	Phone           string
	RequesterID     int64
	RequesterName   string
	RequesterHandle string
	Status          reservation.Status
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func NewReservationBuilder() *ReservationBuilder {
	now := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	return &ReservationBuilder{
		ID:              1,
		Date:            "01.06.2025",
		TimeLabel:       "14:00",
		ShootType:       "Wedding",
		Phone:           "+79990000000",
		RequesterID:     100,
		RequesterName:   "Alice",
		RequesterHandle: "alice",
		Status:          reservation.StatusNew,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

func (b *ReservationBuilder) With(mutate func(*ReservationBuilder)) *ReservationBuilder {
	mutate(b)
	return b
}

func (b *ReservationBuilder) BuildDraft() (commands.Draft, error) {
	slot, err := reservation.NewSlot(b.Date, b.TimeLabel)
	if err != nil {
		return commands.Draft{}, err
	}
	shootType, err := reservation.NewShootType(b.ShootType)
	if err != nil {
		return commands.Draft{}, err
	}
	phone, err := reservation.NewPhone(b.Phone)
	if err != nil {
		return commands.Draft{}, err
	}
	requester, err := reservation.NewRequester(b.RequesterID, b.RequesterName, b.RequesterHandle)
	if err != nil {
		return commands.Draft{}, err
	}
	return commands.Draft{
		Slot:      slot,
		ShootType: shootType,
		Phone:     phone,
		Requester: requester,
	}, nil
}

func (b *ReservationBuilder) BuildDomain() (*reservation.Reservation, error) {
	draft, err := b.BuildDraft()
	if err != nil {
		return nil, err
	}
	rec, err := reservation.NewReservation(draft.Slot, draft.ShootType, draft.Phone, draft.Requester, b.CreatedAt)
	if err != nil {
		return nil, err
	}
	if b.Status != reservation.StatusNew {
		if err := rec.TransitionTo(b.Status, b.UpdatedAt); err != nil {
			return nil, err
		}
	}
	return rec, nil
}
