//go:build unit

package commands_test

import (
	"context"
	"log/slog"
	"testing"

	"shootbook/internal/domain/schedule"
	"shootbook/internal/infra/memory"
	"shootbook/internal/pkg/errs"
	"shootbook/internal/usecase/commands"
	"shootbook/tests/common/builder"
	transportmock "shootbook/tests/mock/transport"

	"go.uber.org/mock/gomock"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const adminID int64 = 900

type adminFixture struct {
	admin     commands.AdminCommands
	booking   commands.BookingCommands
	policy    *schedule.Policy
	messenger *transportmock.MockMessenger
	notifier  *transportmock.MockAdminNotifier
}

func newAdminFixture(t *testing.T) *adminFixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	policy := testPolicy(t)
	clk := testClock(t, policy)
	ledger := memory.NewLedger()
	messenger := transportmock.NewMockMessenger(ctrl)
	notifier := transportmock.NewMockAdminNotifier(ctrl)

	logger := slog.New(slog.DiscardHandler)

	return &adminFixture{
		admin:     commands.NewAdminCommands(ledger, messenger, notifier, clk, adminID, logger),
		booking:   commands.NewBookingCommands(ledger, policy, clk),
		policy:    policy,
		messenger: messenger,
		notifier:  notifier,
	}
}

func (f *adminFixture) reserve(t *testing.T, mutate func(*builder.ReservationBuilder)) int64 {
	t.Helper()
	created, err := f.booking.Reserve(context.Background(), mustDraft(t, mutate))
	require.NoError(t, err)
	return created.ID()
}

func TestAdminCommandsListActive(t *testing.T) {
	ctx := context.Background()

	t.Run("forbidden for non-admin", func(t *testing.T) {
		f := newAdminFixture(t)
		_, err := f.admin.ListActive(ctx, 100)
		require.ErrorIs(t, err, errs.ErrForbidden)
	})

	t.Run("returns records in append order", func(t *testing.T) {
		f := newAdminFixture(t)
		first := f.reserve(t, nil)
		second := f.reserve(t, func(b *builder.ReservationBuilder) {
			b.RequesterID = 200
			b.TimeLabel = "15:00"
		})

		out, err := f.admin.ListActive(ctx, adminID)
		require.NoError(t, err)
		require.Len(t, out, 2)
		assert.Equal(t, first, out[0].ID())
		assert.Equal(t, second, out[1].ID())
	})
}

func TestAdminCommandsMarkDone(t *testing.T) {
	ctx := context.Background()

	t.Run("forbidden for non-admin", func(t *testing.T) {
		f := newAdminFixture(t)
		id := f.reserve(t, nil)

		require.ErrorIs(t, f.admin.MarkDone(ctx, 100, id), errs.ErrForbidden)
	})

	t.Run("closes the record", func(t *testing.T) {
		f := newAdminFixture(t)
		id := f.reserve(t, nil)

		require.NoError(t, f.admin.MarkDone(ctx, adminID, id))

		out, err := f.admin.ListActive(ctx, adminID)
		require.NoError(t, err)
		assert.Empty(t, out)
	})

	t.Run("second transition is rejected", func(t *testing.T) {
		f := newAdminFixture(t)
		id := f.reserve(t, nil)

		require.NoError(t, f.admin.MarkDone(ctx, adminID, id))
		require.ErrorIs(t, f.admin.MarkDone(ctx, adminID, id), errs.ErrInvalidTransition)
	})

	t.Run("unknown id", func(t *testing.T) {
		f := newAdminFixture(t)
		require.ErrorIs(t, f.admin.MarkDone(ctx, adminID, 42), errs.ErrReservationNotFound)
	})
}

func TestAdminCommandsMarkCancelled(t *testing.T) {
	ctx := context.Background()

	t.Run("notifies the requester and frees the slot", func(t *testing.T) {
		f := newAdminFixture(t)
		id := f.reserve(t, nil)

		f.messenger.EXPECT().
			SendText(gomock.Any(), int64(100), gomock.Any()).
			Return(nil).
			Times(1)

		require.NoError(t, f.admin.MarkCancelled(ctx, adminID, id))

		rebooked, err := f.booking.Reserve(ctx, mustDraft(t, func(b *builder.ReservationBuilder) {
			b.RequesterID = 200
		}))
		require.NoError(t, err)
		assert.Equal(t, "14:00", rebooked.Slot().TimeLabel())
	})

	t.Run("notification failure does not fail the cancel", func(t *testing.T) {
		f := newAdminFixture(t)
		id := f.reserve(t, nil)

		f.messenger.EXPECT().
			SendText(gomock.Any(), int64(100), gomock.Any()).
			Return(errs.New("chat unreachable")).
			Times(1)

		require.NoError(t, f.admin.MarkCancelled(ctx, adminID, id))

		out, err := f.admin.ListActive(ctx, adminID)
		require.NoError(t, err)
		assert.Empty(t, out)
	})

	t.Run("cancelling a done record is rejected", func(t *testing.T) {
		f := newAdminFixture(t)
		id := f.reserve(t, nil)

		require.NoError(t, f.admin.MarkDone(ctx, adminID, id))
		require.ErrorIs(t, f.admin.MarkCancelled(ctx, adminID, id), errs.ErrInvalidTransition)
	})
}

func TestAdminCommandsSelfCancel(t *testing.T) {
	ctx := context.Background()

	t.Run("owner cancels and the admin hears about it", func(t *testing.T) {
		f := newAdminFixture(t)
		id := f.reserve(t, nil)

		f.notifier.EXPECT().
			NotifyAdmin(gomock.Any(), gomock.Any()).
			Return(nil).
			Times(1)

		require.NoError(t, f.admin.SelfCancel(ctx, 100, id))

		out, err := f.admin.ListActive(ctx, adminID)
		require.NoError(t, err)
		assert.Empty(t, out)
	})

	t.Run("non-owner is forbidden", func(t *testing.T) {
		f := newAdminFixture(t)
		id := f.reserve(t, nil)

		require.ErrorIs(t, f.admin.SelfCancel(ctx, 200, id), errs.ErrForbidden)

		out, err := f.admin.ListActive(ctx, adminID)
		require.NoError(t, err)
		assert.Len(t, out, 1)
	})

	t.Run("unknown id", func(t *testing.T) {
		f := newAdminFixture(t)
		require.ErrorIs(t, f.admin.SelfCancel(ctx, 100, 42), errs.ErrReservationNotFound)
	})
}
