package schedule

import (
	"errors"
	"time"

	"shootbook/internal/domain/reservation"
)

type AvailabilityState string

const (
	StateOpen    AvailabilityState = "open"
	StateTaken   AvailabilityState = "taken"
	StateTooSoon AvailabilityState = "too_soon"
)

var (
	ErrNoDayTimes      = errors.New("at least one daily time label is required")
	ErrBadTimeLabel    = errors.New("malformed time label")
	ErrUnknownTimeZone = errors.New("unknown time zone")
)

// Policy is the single authority for the booking windows: how close to now
// a slot may start and how far ahead a date may be booked. It is pure given
// an externally supplied "now".
type Policy struct {
	location    *time.Location
	leadTime    time.Duration
	horizonDays int
	dayTimes    []string
}

func NewPolicy(timeZone string, leadTime time.Duration, horizonDays int, dayTimes []string) (*Policy, error) {
	loc, err := time.LoadLocation(timeZone)
	if err != nil {
		return nil, ErrUnknownTimeZone
	}
	if len(dayTimes) == 0 {
		return nil, ErrNoDayTimes
	}
	labels := make([]string, len(dayTimes))
	for i, l := range dayTimes {
		t, err := time.Parse(reservation.TimeLayout, l)
		if err != nil {
			return nil, ErrBadTimeLabel
		}
		labels[i] = t.Format(reservation.TimeLayout)
	}
	if horizonDays < 1 {
		horizonDays = 1
	}
	return &Policy{
		location:    loc,
		leadTime:    leadTime,
		horizonDays: horizonDays,
		dayTimes:    labels,
	}, nil
}

func (p *Policy) Location() *time.Location {
	return p.location
}

// DayTimes returns the enumerable daily slot labels in display order.
func (p *Policy) DayTimes() []string {
	out := make([]string, len(p.dayTimes))
	copy(out, p.dayTimes)
	return out
}

func (p *Policy) HasTime(label string) bool {
	for _, l := range p.dayTimes {
		if l == label {
			return true
		}
	}
	return false
}

// ParseDate validates free-form date input and returns it in canonical
// dd.mm.yyyy form.
func (p *Policy) ParseDate(input string) (string, error) {
	d, err := time.ParseInLocation(reservation.DateInputLayout, input, p.location)
	if err != nil {
		return "", reservation.ErrInvalidDate
	}
	return d.Format(reservation.DateLayout), nil
}

// SlotStart resolves a slot to its starting instant in the policy location.
func (p *Policy) SlotStart(date, timeLabel string) (time.Time, error) {
	slot, err := reservation.NewSlot(date, timeLabel)
	if err != nil {
		return time.Time{}, err
	}
	return slot.StartIn(p.location)
}

// IsTooSoon reports whether the slot starts at or before now plus the lead
// time. Slots in the past are always too soon. Malformed slots are treated
// as too soon rather than bookable.
func (p *Policy) IsTooSoon(now time.Time, date, timeLabel string) bool {
	start, err := p.SlotStart(date, timeLabel)
	if err != nil {
		return true
	}
	return !start.After(now.Add(p.leadTime))
}

// IsTooFar reports whether the date lies beyond the booking horizon.
func (p *Policy) IsTooFar(now time.Time, date string) bool {
	day, err := time.ParseInLocation(reservation.DateLayout, date, p.location)
	if err != nil {
		return true
	}
	limit := now.In(p.location).AddDate(0, 0, p.horizonDays)
	return day.After(limit)
}
