package memstore

import (
	"context"
	"sync"

	"guidely/internal/domain/notification"
	"guidely/internal/domain/payment"
	"guidely/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrPaymentDown = errs.New("payment store unavailable")

type PaymentRecord struct {
	BookingID   uuid.UUID
	AmountCents int64
	Status      payment.Status
}

// Payments records payment writes and can be told to fail.
type Payments struct {
	mu       sync.Mutex
	failures int
	calls    int
	records  map[uuid.UUID]PaymentRecord
}

func NewPayments() *Payments {
	return &Payments{records: map[uuid.UUID]PaymentRecord{}}
}

// FailNext makes the next n calls fail.
func (p *Payments) FailNext(n int) {
	p.mu.Lock()
	p.failures = n
	p.mu.Unlock()
}

func (p *Payments) RecordPayment(_ context.Context, bookingID uuid.UUID, amountCents int64, status payment.Status) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.calls++
	if p.failures > 0 {
		p.failures--
		return ErrPaymentDown
	}
	p.records[bookingID] = PaymentRecord{BookingID: bookingID, AmountCents: amountCents, Status: status}
	return nil
}

func (p *Payments) Record(bookingID uuid.UUID) (PaymentRecord, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	r, ok := p.records[bookingID]
	return r, ok
}

func (p *Payments) Calls() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.calls
}

// RetryQueue is a FIFO payment retry queue.
type RetryQueue struct {
	mu    sync.Mutex
	items []payment.Request
}

func (q *RetryQueue) Enqueue(_ context.Context, req payment.Request) error {
	q.mu.Lock()
	q.items = append(q.items, req)
	q.mu.Unlock()
	return nil
}

func (q *RetryQueue) Dequeue(_ context.Context, max int) ([]payment.Request, error) {
	q.mu.Lock()
	defer q.mu.Unlock()
	n := min(max, len(q.items))
	out := append([]payment.Request(nil), q.items[:n]...)
	q.items = q.items[n:]
	return out, nil
}

func (q *RetryQueue) Items() []payment.Request {
	q.mu.Lock()
	defer q.mu.Unlock()
	return append([]payment.Request(nil), q.items...)
}

// Notifier collects delivered events.
type Notifier struct {
	mu     sync.Mutex
	events []notification.Event
}

func (n *Notifier) Notify(_ context.Context, ev notification.Event) {
	n.mu.Lock()
	n.events = append(n.events, ev)
	n.mu.Unlock()
}

func (n *Notifier) Events() []notification.Event {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]notification.Event(nil), n.events...)
}

func (n *Notifier) Kinds() []notification.Kind {
	n.mu.Lock()
	defer n.mu.Unlock()
	out := make([]notification.Kind, 0, len(n.events))
	for _, ev := range n.events {
		out = append(out, ev.Kind)
	}
	return out
}
