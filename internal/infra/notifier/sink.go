// Package notifier delivers booking events to people and downstream systems.
package notifier

import (
	"context"
	"log/slog"

	"guidely/internal/domain/notification"
)

// Sink delivers one event. Errors are reported to the dispatcher, which logs
// them; they never reach the booking commands.
type Sink interface {
	Send(ctx context.Context, ev notification.Event) error
}

type LogSink struct {
	logger *slog.Logger
}

func NewLogSink(logger *slog.Logger) *LogSink {
	return &LogSink{logger: logger}
}

func (s *LogSink) Send(ctx context.Context, ev notification.Event) error {
	s.logger.InfoContext(ctx, "booking notification",
		"event_id", ev.ID,
		"kind", ev.Kind,
		"booking_id", ev.BookingID,
		"recipient_id", ev.RecipientID,
		"status", ev.Status,
		"scheduled_start", ev.ScheduledStart)
	return nil
}
