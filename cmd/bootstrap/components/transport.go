package components

import (
	"shootbook/internal/transport"

	"go.uber.org/fx"
)

const updateBuffer = 64

// The concrete chat client is wired by the deployment; out of the box the
// app runs with the channel source and logging collaborators.
var TransportModule = fx.Module("transport",
	fx.Provide(
		func() *transport.ChannelSource {
			return transport.NewChannelSource(updateBuffer)
		},
		func(s *transport.ChannelSource) transport.UpdateSource {
			return s
		},
		fx.Annotate(
			transport.NewLogMessenger,
			fx.As(new(transport.Messenger)),
		),
		fx.Annotate(
			transport.NewLogNotifier,
			fx.As(new(transport.AdminNotifier)),
		),
	),
)
