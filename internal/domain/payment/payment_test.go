package payment_test

import (
	"testing"
	"time"

	"guidely/internal/domain/payment"
	"guidely/tests/common/builder"

	"github.com/stretchr/testify/assert"
)

func TestForBooking(t *testing.T) {
	now := time.Date(2026, 3, 2, 11, 0, 0, 0, time.UTC)

	t.Run("paid session is pending", func(t *testing.T) {
		b := builder.NewBookingBuilder().WithPrice(4500).BuildDomain()

		req := payment.ForBooking(b, now)

		assert.Equal(t, b.ID(), req.BookingID)
		assert.Equal(t, int64(4500), req.AmountCents)
		assert.Equal(t, payment.StatusPending, req.Status)
		assert.Equal(t, now, req.RequestedAt)
		assert.Zero(t, req.Attempts)
	})

	t.Run("free session is free", func(t *testing.T) {
		b := builder.NewBookingBuilder().WithPrice(0).BuildDomain()

		req := payment.ForBooking(b, now)

		assert.Equal(t, payment.StatusFree, req.Status)
		assert.Zero(t, req.AmountCents)
	})
}
