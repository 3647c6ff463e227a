package notifier

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"guidely/internal/domain/notification"
)

const sendTimeout = 10 * time.Second

type job struct {
	ctx context.Context
	ev  notification.Event
}

// Dispatcher decouples booking commands from delivery. Notify never blocks:
// when the buffer is full the event is dropped with a warning.
type Dispatcher struct {
	sink  Sink
	queue chan job
	wg    sync.WaitGroup

	mu     sync.RWMutex
	closed bool
}

func NewDispatcher(sink Sink, size int) *Dispatcher {
	if size <= 0 {
		size = 1
	}
	return &Dispatcher{sink: sink, queue: make(chan job, size)}
}

func (d *Dispatcher) Start() {
	d.wg.Add(1)
	go d.run()
}

func (d *Dispatcher) Notify(ctx context.Context, ev notification.Event) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	if d.closed {
		slog.Warn("notification dropped after shutdown", "event_id", ev.ID, "kind", ev.Kind)
		return
	}

	select {
	case d.queue <- job{ctx: context.WithoutCancel(ctx), ev: ev}:
	default:
		slog.Warn("notification queue full, event dropped",
			"event_id", ev.ID,
			"kind", ev.Kind,
			"booking_id", ev.BookingID)
	}
}

// Stop refuses new events and waits for queued ones until ctx expires.
func (d *Dispatcher) Stop(ctx context.Context) error {
	d.mu.Lock()
	if !d.closed {
		d.closed = true
		close(d.queue)
	}
	d.mu.Unlock()

	done := make(chan struct{})
	go func() {
		d.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (d *Dispatcher) run() {
	defer d.wg.Done()
	for j := range d.queue {
		d.deliver(j)
	}
}

func (d *Dispatcher) deliver(j job) {
	ctx, cancel := context.WithTimeout(j.ctx, sendTimeout)
	defer cancel()

	if err := d.sink.Send(ctx, j.ev); err != nil {
		slog.Warn("notification delivery failed",
			"event_id", j.ev.ID,
			"kind", j.ev.Kind,
			"booking_id", j.ev.BookingID,
			"recipient_id", j.ev.RecipientID,
			"error", err)
	}
}
