package reservation

import (
	"strings"
	"time"
	"unicode"
)

const (
	DateLayout = "02.01.2006"
	TimeLayout = "15:04"

	// DateInputLayout accepts unpadded day and month so free-form user
	// input like "1.6.2025" parses; storage always uses DateLayout.
	DateInputLayout = "2.1.2006"
)

// Slot is a (calendar day, time label) pair eligible for exactly one
// active reservation.
type Slot struct {
	date      string
	timeLabel string
}

func NewSlot(date, timeLabel string) (Slot, error) {
	d, err := time.Parse(DateInputLayout, date)
	if err != nil {
		return Slot{}, ErrInvalidDate
	}
	if _, err := time.Parse(TimeLayout, timeLabel); err != nil {
		return Slot{}, ErrInvalidTimeLabel
	}
	// Re-format so "1.6.2025" and "01.06.2025" collapse to one key.
	return Slot{date: d.Format(DateLayout), timeLabel: timeLabel}, nil
}

func (s Slot) Date() string {
	return s.date
}

func (s Slot) TimeLabel() string {
	return s.timeLabel
}

// StartIn resolves the slot to its starting instant in the given location.
func (s Slot) StartIn(loc *time.Location) (time.Time, error) {
	return time.ParseInLocation(DateLayout+" "+TimeLayout, s.date+" "+s.timeLabel, loc)
}

func (s Slot) String() string {
	return s.date + " " + s.timeLabel
}

func (s Slot) IsZero() bool {
	return s.date == "" && s.timeLabel == ""
}

type ShootType struct {
	value string
}

func NewShootType(value string) (ShootType, error) {
	v := strings.TrimSpace(value)
	if v == "" {
		return ShootType{}, ErrEmptyShootType
	}
	if len(v) > 100 {
		return ShootType{}, ErrEmptyShootType
	}
	return ShootType{value: v}, nil
}

func (t ShootType) String() string {
	return t.value
}

type Phone struct {
	value string
}

// NewPhone normalizes a phone payload to "+<digits>" and rejects anything
// that does not look like a dialable number.
func NewPhone(value string) (Phone, error) {
	var b strings.Builder
	for _, r := range strings.TrimSpace(value) {
		switch {
		case unicode.IsDigit(r):
			b.WriteRune(r)
		case r == '+' && b.Len() == 0:
		case r == ' ' || r == '-' || r == '(' || r == ')':
		default:
			return Phone{}, ErrInvalidPhone
		}
	}
	digits := b.String()
	if len(digits) < 10 || len(digits) > 15 {
		return Phone{}, ErrInvalidPhone
	}
	return Phone{value: "+" + digits}, nil
}

func (p Phone) String() string {
	return p.value
}

// Requester identifies the booking user on the chat platform.
type Requester struct {
	id     int64
	name   string
	handle string
}

func NewRequester(id int64, name, handle string) (Requester, error) {
	if id <= 0 {
		return Requester{}, ErrInvalidRequester
	}
	name = strings.TrimSpace(name)
	if name == "" {
		name = "unknown"
	}
	return Requester{id: id, name: name, handle: strings.TrimPrefix(handle, "@")}, nil
}

func (r Requester) ID() int64 {
	return r.id
}

func (r Requester) Name() string {
	return r.name
}

// Handle is the optional platform username, without the "@" prefix.
func (r Requester) Handle() string {
	return r.handle
}
