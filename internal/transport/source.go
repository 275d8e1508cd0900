package transport

import "context"

// ChannelSource bridges any chat SDK callback into the core: the embedding
// transport pushes updates in, the dispatcher consumes them.
type ChannelSource struct {
	ch chan Update
}

func NewChannelSource(buffer int) *ChannelSource {
	if buffer < 0 {
		buffer = 0
	}
	return &ChannelSource{ch: make(chan Update, buffer)}
}

func (s *ChannelSource) Push(ctx context.Context, u Update) error {
	select {
	case s.ch <- u:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *ChannelSource) Updates(_ context.Context) <-chan Update {
	return s.ch
}

// Close releases the stream; the dispatcher drains and stops.
func (s *ChannelSource) Close() {
	close(s.ch)
}
