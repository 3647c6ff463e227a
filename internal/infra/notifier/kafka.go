package notifier

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"guidely/internal/domain/notification"
	"guidely/internal/pkg/config"
	"guidely/internal/pkg/errs"

	"github.com/segmentio/kafka-go"
)

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaSink publishes one JSON event per message keyed by booking id, so
// every event of a booking lands on the same partition in order.
type KafkaSink struct {
	writer messageWriter
}

func NewKafkaSink(cfg config.NotifierConfig) *KafkaSink {
	return &KafkaSink{writer: &kafka.Writer{
		Addr:         kafka.TCP(cfg.KafkaBrokers...),
		Topic:        cfg.KafkaTopic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireAll,
		MaxAttempts:  3,
		BatchTimeout: 50 * time.Millisecond,
		Logger:       kafka.LoggerFunc(func(string, ...any) {}),
		ErrorLogger: kafka.LoggerFunc(func(msg string, args ...any) {
			slog.Error("kafka writer", "detail", msg, "args", args)
		}),
	}}
}

func (s *KafkaSink) Send(ctx context.Context, ev notification.Event) error {
	payload, err := json.Marshal(ev)
	if err != nil {
		return errs.Wrap(err, "encode event")
	}
	msg := kafka.Message{
		Key:   []byte(ev.BookingID.String()),
		Value: payload,
		Headers: []kafka.Header{
			{Key: "kind", Value: []byte(ev.Kind)},
			{Key: "event_id", Value: []byte(ev.ID.String())},
		},
		Time: ev.OccurredAt,
	}
	if err := s.writer.WriteMessages(ctx, msg); err != nil {
		return errs.Wrapf(err, "publish %s", ev.Kind)
	}
	return nil
}

func (s *KafkaSink) Close() error {
	return s.writer.Close()
}
