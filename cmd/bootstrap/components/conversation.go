package components

import (
	"context"
	"log/slog"

	"shootbook/internal/conversation"
	"shootbook/internal/domain/schedule"
	"shootbook/internal/pkg/clock"
	"shootbook/internal/pkg/config"
	"shootbook/internal/transport"
	"shootbook/internal/usecase/commands"
	"shootbook/internal/usecase/queries"

	"go.uber.org/fx"
)

var ConversationModule = fx.Module("conversation",
	fx.Provide(
		conversation.NewStore,
		NewMachine,
		conversation.NewDispatcher,
	),
	fx.Invoke(startDispatcher),
)

func NewMachine(
	sessions *conversation.Store,
	booking commands.BookingCommands,
	admin commands.AdminCommands,
	availability queries.AvailabilityQueries,
	reservations queries.ReservationQueries,
	policy *schedule.Policy,
	clk clock.Clock,
	cfg config.Config,
	messenger transport.Messenger,
	notifier transport.AdminNotifier,
	logger *slog.Logger,
) *conversation.Machine {
	return conversation.NewMachine(
		sessions, booking, admin, availability, reservations,
		policy, clk, cfg.Booking.ShootTypes, messenger, notifier,
		cfg.Bot.AdminID, logger,
	)
}

func startDispatcher(lc fx.Lifecycle, d *conversation.Dispatcher, logger *slog.Logger) {
	runCtx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			logger.Info("starting update dispatcher")
			go func() {
				defer close(done)
				d.Run(runCtx)
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			cancel()
			select {
			case <-done:
				return nil
			case <-ctx.Done():
				return ctx.Err()
			}
		},
	})
}
