//go:build unit

package schedule_test

import (
	"testing"
	"time"

	"shootbook/internal/domain/reservation"
	"shootbook/internal/domain/schedule"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestPolicy(t *testing.T) *schedule.Policy {
	t.Helper()
	p, err := schedule.NewPolicy("Europe/Moscow", time.Hour, 180, []string{
		"10:00", "11:00", "12:00", "13:00", "14:00",
		"15:00", "16:00", "17:00", "18:00", "19:00",
	})
	require.NoError(t, err)
	return p
}

func mskTime(t *testing.T, year int, month time.Month, day, hour, minute int) time.Time {
	t.Helper()
	loc, err := time.LoadLocation("Europe/Moscow")
	require.NoError(t, err)
	return time.Date(year, month, day, hour, minute, 0, 0, loc)
}

func TestNewPolicy(t *testing.T) {
	t.Run("unknown time zone", func(t *testing.T) {
		_, err := schedule.NewPolicy("Mars/Olympus", time.Hour, 180, []string{"10:00"})
		require.ErrorIs(t, err, schedule.ErrUnknownTimeZone)
	})

	t.Run("requires at least one label", func(t *testing.T) {
		_, err := schedule.NewPolicy("Europe/Moscow", time.Hour, 180, nil)
		require.ErrorIs(t, err, schedule.ErrNoDayTimes)
	})

	t.Run("malformed label", func(t *testing.T) {
		_, err := schedule.NewPolicy("Europe/Moscow", time.Hour, 180, []string{"10:00", "25:99"})
		require.ErrorIs(t, err, schedule.ErrBadTimeLabel)
	})

	t.Run("labels normalize to HH:MM", func(t *testing.T) {
		p, err := schedule.NewPolicy("Europe/Moscow", time.Hour, 180, []string{"9:00", "10:30"})
		require.NoError(t, err)
		assert.Empty(t, cmp.Diff([]string{"09:00", "10:30"}, p.DayTimes()))
	})
}

func TestPolicyDayTimes(t *testing.T) {
	p := newTestPolicy(t)

	got := p.DayTimes()
	got[0] = "tampered"
	assert.Equal(t, "10:00", p.DayTimes()[0])

	assert.True(t, p.HasTime("14:00"))
	assert.False(t, p.HasTime("14:30"))
	assert.False(t, p.HasTime(""))
}

func TestPolicyParseDate(t *testing.T) {
	p := newTestPolicy(t)

	got, err := p.ParseDate("1.6.2025")
	require.NoError(t, err)
	assert.Equal(t, "01.06.2025", got)

	_, err = p.ParseDate("2025-06-01")
	require.ErrorIs(t, err, reservation.ErrInvalidDate)

	_, err = p.ParseDate("next friday")
	require.ErrorIs(t, err, reservation.ErrInvalidDate)
}

func TestPolicySlotStart(t *testing.T) {
	p := newTestPolicy(t)

	got, err := p.SlotStart("1.6.2025", "14:00")
	require.NoError(t, err)
	assert.True(t, got.Equal(mskTime(t, 2025, time.June, 1, 14, 0)))

	_, err = p.SlotStart("01.06.2025", "25:99")
	require.ErrorIs(t, err, reservation.ErrInvalidTimeLabel)
}

func TestPolicyIsTooSoon(t *testing.T) {
	p := newTestPolicy(t)
	now := mskTime(t, 2025, time.June, 1, 9, 0)

	cases := []struct {
		name      string
		date      string
		timeLabel string
		want      bool
	}{
		{name: "inside lead window", date: "01.06.2025", timeLabel: "09:30", want: true},
		{name: "exactly at lead boundary", date: "01.06.2025", timeLabel: "10:00", want: true},
		{name: "one minute past boundary", date: "01.06.2025", timeLabel: "10:01", want: false},
		{name: "later same day", date: "01.06.2025", timeLabel: "11:00", want: false},
		{name: "slot already in the past", date: "01.06.2025", timeLabel: "08:00", want: true},
		{name: "previous day", date: "31.05.2025", timeLabel: "19:00", want: true},
		{name: "next day morning", date: "02.06.2025", timeLabel: "10:00", want: false},
		{name: "malformed date counts as too soon", date: "garbage", timeLabel: "10:00", want: true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, p.IsTooSoon(now, c.date, c.timeLabel))
		})
	}
}

func TestPolicyIsTooFar(t *testing.T) {
	p := newTestPolicy(t)
	now := mskTime(t, 2025, time.June, 1, 9, 0)

	cases := []struct {
		name string
		date string
		want bool
	}{
		{name: "tomorrow", date: "02.06.2025", want: false},
		{name: "at horizon", date: "28.11.2025", want: false},
		{name: "past horizon", date: "29.11.2025", want: true},
		{name: "a year out", date: "01.06.2026", want: true},
		{name: "malformed date counts as too far", date: "junk", want: true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, p.IsTooFar(now, c.date))
		})
	}
}
