package bootstrap

import (
	"shootbook/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	components.RepositoryModule,
	components.TransportModule,
	components.UseCaseModule,
	components.ConversationModule,
	components.HandlerModule,
)
