package components

import (
	"shootbook/internal/handler"
	"shootbook/internal/handler/api"
	"shootbook/internal/handler/middleware"
	"shootbook/internal/pkg/config"
	"shootbook/internal/usecase/commands"
	"shootbook/internal/usecase/queries"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		NewReservationHandler,
		middleware.NewAdminAuth,
	),
	fx.Invoke(handler.NewRouter),
)

func NewReservationHandler(
	admin commands.AdminCommands,
	reservations queries.ReservationQueries,
	availability queries.AvailabilityQueries,
	cfg config.Config,
) *api.ReservationHandler {
	return api.NewReservationHandler(admin, reservations, availability, cfg.Bot.AdminID)
}
