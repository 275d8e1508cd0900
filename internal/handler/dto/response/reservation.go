package response

import (
	"time"

	"shootbook/internal/domain/reservation"
)

type ReservationResponse struct {
	ID        int64     `json:"id"`
	Date      string    `json:"date"`
	Time      string    `json:"time"`
	ShootType string    `json:"shoot_type"`
	Phone     string    `json:"phone"`
	Name      string    `json:"name"`
	Handle    string    `json:"handle,omitempty"`
	Requester int64     `json:"requester_id"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func FromReservation(res *reservation.Reservation) ReservationResponse {
	return ReservationResponse{
		ID:        res.ID(),
		Date:      res.Slot().Date(),
		Time:      res.Slot().TimeLabel(),
		ShootType: res.ShootType().String(),
		Phone:     res.Phone().String(),
		Name:      res.Requester().Name(),
		Handle:    res.Requester().Handle(),
		Requester: res.Requester().ID(),
		Status:    res.Status().String(),
		CreatedAt: res.CreatedAt(),
		UpdatedAt: res.UpdatedAt(),
	}
}

func FromReservations(list []*reservation.Reservation) []ReservationResponse {
	out := make([]ReservationResponse, len(list))
	for i, res := range list {
		out[i] = FromReservation(res)
	}
	return out
}

type AvailabilityResponse struct {
	Date  string            `json:"date"`
	Times map[string]string `json:"times"`
}
