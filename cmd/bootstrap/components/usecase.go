package components

import (
	"log/slog"

	"shootbook/internal/domain/schedule"
	"shootbook/internal/pkg/clock"
	"shootbook/internal/pkg/config"
	"shootbook/internal/transport"
	"shootbook/internal/usecase/commands"
	"shootbook/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	fx.Provide(
		NewPolicy,
		NewClock,
		commands.NewBookingCommands,
		NewAdminCommands,
		queries.NewReservationQueries,
		queries.NewAvailabilityQueries,
	),
)

func NewPolicy(cfg config.Config) (*schedule.Policy, error) {
	return schedule.NewPolicy(
		cfg.Booking.TimeZone,
		cfg.Booking.LeadTime,
		cfg.Booking.HorizonDays,
		cfg.Booking.DayTimes,
	)
}

func NewClock(policy *schedule.Policy) clock.Clock {
	return clock.NewRealClock(policy.Location())
}

func NewAdminCommands(
	ledger commands.LedgerRepository,
	messenger transport.Messenger,
	notifier transport.AdminNotifier,
	clk clock.Clock,
	cfg config.Config,
	logger *slog.Logger,
) commands.AdminCommands {
	return commands.NewAdminCommands(ledger, messenger, notifier, clk, cfg.Bot.AdminID, logger)
}
