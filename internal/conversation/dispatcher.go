package conversation

import (
	"context"
	"log/slog"
	"sync"

	"shootbook/internal/transport"
)

const laneBuffer = 16

// Dispatcher fans inbound updates out to per-requester lanes: events for
// different requesters run concurrently, events for the same requester run
// to completion in arrival order.
type Dispatcher struct {
	machine *Machine
	source  transport.UpdateSource
	logger  *slog.Logger

	mu    sync.Mutex
	lanes map[int64]chan transport.Update
	wg    sync.WaitGroup
}

func NewDispatcher(machine *Machine, source transport.UpdateSource, logger *slog.Logger) *Dispatcher {
	return &Dispatcher{
		machine: machine,
		source:  source,
		logger:  logger,
		lanes:   make(map[int64]chan transport.Update),
	}
}

// Run consumes the update stream until the context is cancelled or the
// source closes, then drains every lane.
func (d *Dispatcher) Run(ctx context.Context) {
	updates := d.source.Updates(ctx)
	for {
		select {
		case <-ctx.Done():
			d.shutdown()
			return
		case u, ok := <-updates:
			if !ok {
				d.shutdown()
				return
			}
			select {
			case d.lane(ctx, u.RequesterID) <- u:
			case <-ctx.Done():
				d.shutdown()
				return
			}
		}
	}
}

func (d *Dispatcher) lane(ctx context.Context, requesterID int64) chan transport.Update {
	d.mu.Lock()
	defer d.mu.Unlock()

	if ch, ok := d.lanes[requesterID]; ok {
		return ch
	}

	ch := make(chan transport.Update, laneBuffer)
	d.lanes[requesterID] = ch
	d.wg.Add(1)
	go func() {
		defer d.wg.Done()
		for u := range ch {
			if err := d.machine.Handle(ctx, u); err != nil {
				d.logger.Error("update handling failed",
					"requester_id", u.RequesterID, "error", err)
			}
		}
	}()
	return ch
}

func (d *Dispatcher) shutdown() {
	d.mu.Lock()
	for id, ch := range d.lanes {
		close(ch)
		delete(d.lanes, id)
	}
	d.mu.Unlock()
	d.wg.Wait()
}
