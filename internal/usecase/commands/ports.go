package commands

import (
	"context"

	"guidely/internal/domain/notification"
	"guidely/internal/domain/payment"

	"github.com/google/uuid"
)

// Notifier delivers booking events. Delivery is best effort and never
// reports back to the caller.
type Notifier interface {
	Notify(ctx context.Context, ev notification.Event)
}

type PaymentRecorder interface {
	RecordPayment(ctx context.Context, bookingID uuid.UUID, amountCents int64, status payment.Status) error
}

// PaymentRetryQueue holds payment records whose first write failed.
type PaymentRetryQueue interface {
	Enqueue(ctx context.Context, req payment.Request) error
	Dequeue(ctx context.Context, max int) ([]payment.Request, error)
}
