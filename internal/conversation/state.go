package conversation

import (
	"shootbook/internal/domain/reservation"

	"github.com/google/uuid"
)

type Step int

const (
	StepShootType Step = iota + 1
	StepDate
	StepTime
	StepPhone
	StepConfirm
)

func (s Step) String() string {
	switch s {
	case StepShootType:
		return "awaiting_shoot_type"
	case StepDate:
		return "awaiting_date"
	case StepTime:
		return "awaiting_time"
	case StepPhone:
		return "awaiting_phone"
	case StepConfirm:
		return "awaiting_confirmation"
	default:
		return "unknown"
	}
}

// State is the per-requester conversation state: the current step plus the
// reservation fields collected so far. It lives only in memory and is
// discarded on completion, cancellation, or abandonment.
type State struct {
	SessionID uuid.UUID
	Step      Step
	Requester reservation.Requester
	ShootType reservation.ShootType
	Date      string
	TimeLabel string
	Phone     reservation.Phone
}

func newState(requester reservation.Requester) *State {
	return &State{
		SessionID: uuid.New(),
		Step:      StepShootType,
		Requester: requester,
	}
}
