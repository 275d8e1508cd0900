//go:build unit

package commands_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"shootbook/internal/domain/reservation"
	"shootbook/internal/domain/schedule"
	"shootbook/internal/infra/memory"
	"shootbook/internal/pkg/clock"
	"shootbook/internal/pkg/errs"
	"shootbook/internal/usecase/commands"
	"shootbook/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPolicy(t *testing.T) *schedule.Policy {
	t.Helper()
	p, err := schedule.NewPolicy("Europe/Moscow", time.Hour, 180, []string{
		"10:00", "11:00", "12:00", "13:00", "14:00",
		"15:00", "16:00", "17:00", "18:00", "19:00",
	})
	require.NoError(t, err)
	return p
}

func testClock(t *testing.T, p *schedule.Policy) *clock.MockClock {
	t.Helper()
	return clock.NewMockClock(time.Date(2025, 6, 1, 9, 0, 0, 0, p.Location()))
}

func mustDraft(t *testing.T, mutate func(*builder.ReservationBuilder)) commands.Draft {
	t.Helper()
	b := builder.NewReservationBuilder()
	if mutate != nil {
		b.With(mutate)
	}
	draft, err := b.BuildDraft()
	require.NoError(t, err)
	return draft
}

func TestBookingCommandsReserve(t *testing.T) {
	ctx := context.Background()

	t.Run("success assigns an id and returns the stored record", func(t *testing.T) {
		policy := testPolicy(t)
		ledger := memory.NewLedger()
		booking := commands.NewBookingCommands(ledger, policy, testClock(t, policy))

		created, err := booking.Reserve(ctx, mustDraft(t, nil))
		require.NoError(t, err)

		assert.Equal(t, int64(1), created.ID())
		assert.Equal(t, reservation.StatusNew, created.Status())
		assert.Equal(t, "01.06.2025", created.Slot().Date())
		assert.Equal(t, "14:00", created.Slot().TimeLabel())

		stored, err := ledger.FindByID(ctx, created.ID())
		require.NoError(t, err)
		assert.Equal(t, created.Slot(), stored.Slot())
	})

	t.Run("taken slot", func(t *testing.T) {
		policy := testPolicy(t)
		ledger := memory.NewLedger()
		booking := commands.NewBookingCommands(ledger, policy, testClock(t, policy))

		_, err := booking.Reserve(ctx, mustDraft(t, nil))
		require.NoError(t, err)

		_, err = booking.Reserve(ctx, mustDraft(t, func(b *builder.ReservationBuilder) {
			b.RequesterID = 200
		}))
		require.ErrorIs(t, err, errs.ErrSlotUnavailable)
	})

	t.Run("slot inside lead window", func(t *testing.T) {
		policy := testPolicy(t)
		ledger := memory.NewLedger()
		booking := commands.NewBookingCommands(ledger, policy, testClock(t, policy))

		_, err := booking.Reserve(ctx, mustDraft(t, func(b *builder.ReservationBuilder) {
			b.TimeLabel = "10:00"
		}))
		require.ErrorIs(t, err, errs.ErrSlotUnavailable)
	})

	t.Run("date beyond horizon", func(t *testing.T) {
		policy := testPolicy(t)
		ledger := memory.NewLedger()
		booking := commands.NewBookingCommands(ledger, policy, testClock(t, policy))

		_, err := booking.Reserve(ctx, mustDraft(t, func(b *builder.ReservationBuilder) {
			b.Date = "01.06.2026"
		}))
		require.ErrorIs(t, err, errs.ErrDateTooFar)
	})

	t.Run("clock advance closes a previously open slot", func(t *testing.T) {
		policy := testPolicy(t)
		ledger := memory.NewLedger()
		clk := testClock(t, policy)
		booking := commands.NewBookingCommands(ledger, policy, clk)

		clk.Advance(6 * time.Hour)
		_, err := booking.Reserve(ctx, mustDraft(t, nil))
		require.ErrorIs(t, err, errs.ErrSlotUnavailable)
	})
}

func TestBookingCommandsReserveConcurrent(t *testing.T) {
	const callers = 10

	ctx := context.Background()
	policy := testPolicy(t)
	ledger := memory.NewLedger()
	booking := commands.NewBookingCommands(ledger, policy, testClock(t, policy))

	drafts := make([]commands.Draft, 0, callers)
	for i := 0; i < callers; i++ {
		drafts = append(drafts, mustDraft(t, func(b *builder.ReservationBuilder) {
			b.RequesterID = int64(i + 1)
		}))
	}

	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		successes int
		rejected  int
	)

	start := make(chan struct{})
	for _, draft := range drafts {
		wg.Add(1)
		go func(d commands.Draft) {
			defer wg.Done()
			<-start
			_, err := booking.Reserve(ctx, d)

			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				successes++
			case errors.Is(err, errs.ErrSlotUnavailable) || errors.Is(err, errs.ErrSlotConflict):
				rejected++
			}
		}(draft)
	}
	close(start)
	wg.Wait()

	assert.Equal(t, 1, successes)
	assert.Equal(t, callers-1, rejected)

	active, err := ledger.ListActive(ctx)
	require.NoError(t, err)
	assert.Len(t, active, 1)
}
