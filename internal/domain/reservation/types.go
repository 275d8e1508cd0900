package reservation

type Status string

const (
	StatusNew       Status = "new"
	StatusDone      Status = "done"
	StatusCancelled Status = "cancelled"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusNew, StatusDone, StatusCancelled:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether no further transition may leave this status.
func (s Status) IsTerminal() bool {
	return s == StatusDone || s == StatusCancelled
}

// CanTransitionTo enforces the reservation lifecycle: New is the only
// non-terminal status, and it may only move to Done or Cancelled.
func (s Status) CanTransitionTo(next Status) bool {
	return s == StatusNew && next.IsTerminal()
}
