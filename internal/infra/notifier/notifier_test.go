package notifier

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"guidely/internal/domain/notification"
	"guidely/internal/domain/user"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/gomail.v2"
)

type recordingSink struct {
	mu     sync.Mutex
	events []notification.Event
	block  chan struct{}
	fail   map[uuid.UUID]bool
}

func (s *recordingSink) Send(ctx context.Context, ev notification.Event) error {
	if s.block != nil {
		<-s.block
	}
	if ctx.Err() != nil {
		return ctx.Err()
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.fail[ev.ID] {
		return errors.New("sink down")
	}
	s.events = append(s.events, ev)
	return nil
}

func (s *recordingSink) ids() []uuid.UUID {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]uuid.UUID, 0, len(s.events))
	for _, ev := range s.events {
		out = append(out, ev.ID)
	}
	return out
}

func newEvent(kind notification.Kind) notification.Event {
	return notification.Event{
		ID:             uuid.New(),
		Kind:           kind,
		BookingID:      uuid.New(),
		RecipientID:    uuid.New(),
		ServiceName:    "Career review",
		Status:         "confirmed",
		ScheduledStart: time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC),
		OccurredAt:     time.Date(2026, 2, 27, 12, 0, 0, 0, time.UTC),
	}
}

func TestDispatcher_DeliversInOrderAndDrainsOnStop(t *testing.T) {
	sink := &recordingSink{fail: map[uuid.UUID]bool{}}
	d := NewDispatcher(sink, 8)
	d.Start()

	first, second, third := newEvent(notification.KindCreated), newEvent(notification.KindConfirmed), newEvent(notification.KindCompleted)
	sink.fail[second.ID] = true

	ctx, cancel := context.WithCancel(context.Background())
	d.Notify(ctx, first)
	d.Notify(ctx, second)
	cancel()
	d.Notify(ctx, third)

	require.NoError(t, d.Stop(context.Background()))
	assert.Equal(t, []uuid.UUID{first.ID, third.ID}, sink.ids(), "a failed send must not block later events")
}

func TestDispatcher_DropsWhenFull(t *testing.T) {
	sink := &recordingSink{block: make(chan struct{})}
	d := NewDispatcher(sink, 1)
	d.Start()

	for range 5 {
		d.Notify(context.Background(), newEvent(notification.KindCreated))
	}
	close(sink.block)
	require.NoError(t, d.Stop(context.Background()))

	// one in flight plus one buffered
	assert.LessOrEqual(t, len(sink.ids()), 2)
	assert.NotEmpty(t, sink.ids())
}

func TestDispatcher_NotifyAfterStopIsDropped(t *testing.T) {
	sink := &recordingSink{}
	d := NewDispatcher(sink, 4)
	d.Start()
	require.NoError(t, d.Stop(context.Background()))

	assert.NotPanics(t, func() { d.Notify(context.Background(), newEvent(notification.KindCreated)) })
	assert.Empty(t, sink.ids())
}

type fakeContacts map[uuid.UUID]user.Contact

func (f fakeContacts) FindContact(_ context.Context, id uuid.UUID) (user.Contact, error) {
	c, ok := f[id]
	if !ok {
		return user.Contact{}, errors.New("no such user")
	}
	return c, nil
}

type fakeDialer struct {
	sent []*gomail.Message
	err  error
}

func (f *fakeDialer) DialAndSend(m ...*gomail.Message) error {
	f.sent = append(f.sent, m...)
	return f.err
}

func TestSMTPSink(t *testing.T) {
	ev := newEvent(notification.KindConfirmed)
	dialer := &fakeDialer{}
	sink := &SMTPSink{
		dialer:   dialer,
		from:     "no-reply@guidely.test",
		contacts: fakeContacts{ev.RecipientID: {ID: ev.RecipientID, Email: "ada@example.com", Name: "Ada"}},
	}

	require.NoError(t, sink.Send(context.Background(), ev))

	require.Len(t, dialer.sent, 1)
	m := dialer.sent[0]
	assert.Equal(t, []string{"no-reply@guidely.test"}, m.GetHeader("From"))
	assert.Equal(t, []string{`"Ada" <ada@example.com>`}, m.GetHeader("To"))
	assert.Equal(t, []string{"Booking confirmed: Career review"}, m.GetHeader("Subject"))
}

func TestSMTPSink_UnknownRecipient(t *testing.T) {
	dialer := &fakeDialer{}
	sink := &SMTPSink{dialer: dialer, contacts: fakeContacts{}}

	err := sink.Send(context.Background(), newEvent(notification.KindCreated))

	assert.Error(t, err)
	assert.Empty(t, dialer.sent)
}

type fakeWriter struct {
	msgs []kafka.Message
}

func (f *fakeWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	f.msgs = append(f.msgs, msgs...)
	return nil
}

func (f *fakeWriter) Close() error { return nil }

func TestKafkaSink_KeysByBooking(t *testing.T) {
	w := &fakeWriter{}
	sink := &KafkaSink{writer: w}
	ev := newEvent(notification.KindRescheduled)

	require.NoError(t, sink.Send(context.Background(), ev))

	require.Len(t, w.msgs, 1)
	assert.Equal(t, ev.BookingID.String(), string(w.msgs[0].Key))

	var decoded notification.Event
	require.NoError(t, json.Unmarshal(w.msgs[0].Value, &decoded))
	assert.Equal(t, ev.ID, decoded.ID)
	assert.Equal(t, notification.KindRescheduled, decoded.Kind)
}
