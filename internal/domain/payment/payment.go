package payment

import (
	"time"

	"guidely/internal/domain/booking"

	"github.com/google/uuid"
)

type Status string

const (
	StatusPending Status = "pending"
	StatusFree    Status = "free"
)

// Request is one payment record owed for a completed booking. Attempts
// counts failed deliveries to the payment store.
type Request struct {
	BookingID   uuid.UUID `json:"booking_id"`
	AmountCents int64     `json:"amount_cents"`
	Status      Status    `json:"status"`
	RequestedAt time.Time `json:"requested_at"`
	Attempts    int       `json:"attempts"`
}

func ForBooking(b *booking.Booking, now time.Time) Request {
	status := StatusPending
	if b.Service().IsFree() {
		status = StatusFree
	}
	return Request{
		BookingID:   b.ID(),
		AmountCents: b.Service().PriceCents,
		Status:      status,
		RequestedAt: now,
	}
}
