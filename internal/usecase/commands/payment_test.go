package commands_test

import (
	"testing"
	"time"

	"guidely/internal/domain/payment"
	"guidely/internal/usecase/commands"
	"guidely/tests/common/memstore"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaymentRetry(t *testing.T) {
	newReq := func(attempts int) payment.Request {
		return payment.Request{
			BookingID:   uuid.New(),
			AmountCents: 4500,
			Status:      payment.StatusPending,
			RequestedAt: time.Date(2026, 3, 2, 11, 0, 0, 0, time.UTC),
			Attempts:    attempts,
		}
	}

	testCases := []struct {
		name         string
		queued       []payment.Request
		failNext     int
		batch        int
		expected     commands.PaymentRetryResult
		leftInQueue  int
		wantAttempts int
	}{
		{
			name:     "success: records every queued payment",
			queued:   []payment.Request{newReq(1), newReq(2)},
			batch:    10,
			expected: commands.PaymentRetryResult{Attempted: 2, Recorded: 2},
		},
		{
			name:         "failure: requeues with attempt count",
			queued:       []payment.Request{newReq(1)},
			failNext:     1,
			batch:        10,
			expected:     commands.PaymentRetryResult{Attempted: 1, Requeued: 1},
			leftInQueue:  1,
			wantAttempts: 2,
		},
		{
			name:     "failure: drops after max attempts",
			queued:   []payment.Request{newReq(commands.MaxPaymentAttempts - 1)},
			failNext: 1,
			batch:    10,
			expected: commands.PaymentRetryResult{Attempted: 1, Dropped: 1},
		},
		{
			name:        "success: honours batch size",
			queued:      []payment.Request{newReq(1), newReq(1), newReq(1)},
			batch:       2,
			expected:    commands.PaymentRetryResult{Attempted: 2, Recorded: 2},
			leftInQueue: 1,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			payments := memstore.NewPayments()
			queue := &memstore.RetryQueue{}
			for _, r := range tc.queued {
				require.NoError(t, queue.Enqueue(t.Context(), r))
			}
			payments.FailNext(tc.failNext)

			res, err := commands.NewPaymentUseCase(payments, queue).RetryPending(t.Context(), tc.batch)

			require.NoError(t, err)
			assert.Equal(t, tc.expected, res)
			left := queue.Items()
			assert.Len(t, left, tc.leftInQueue)
			if tc.wantAttempts > 0 {
				assert.Equal(t, tc.wantAttempts, left[0].Attempts)
			}
		})
	}
}

func TestPaymentRetry_AfterFailedCompletion(t *testing.T) {
	f := newFixture(t)
	id := f.inProgress(t)
	f.payments.FailNext(1)

	_, err := f.bookings.Complete(t.Context(), f.guide, commands.CompleteBookingInput{BookingID: id})
	require.NoError(t, err)

	res, err := f.paymentsUC.RetryPending(t.Context(), 10)
	require.NoError(t, err)

	assert.Equal(t, 1, res.Recorded)
	rec, ok := f.payments.Record(id)
	require.True(t, ok)
	assert.Equal(t, int64(4500), rec.AmountCents)
}
