//go:build e2e

package paymentqueue_test

import (
	"context"
	"testing"
	"time"

	"guidely/internal/domain/payment"
	"guidely/internal/infra/paymentqueue"
	"guidely/tests/common/redistest"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedisQueue_FIFO(t *testing.T) {
	ctx := context.Background()
	client := redistest.NewClient(t)
	q := paymentqueue.NewRedisQueue(client, "test")
	now := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)

	reqs := []payment.Request{
		{BookingID: uuid.New(), AmountCents: 4500, Status: payment.StatusPending, RequestedAt: now, Attempts: 1},
		{BookingID: uuid.New(), AmountCents: 0, Status: payment.StatusFree, RequestedAt: now, Attempts: 2},
		{BookingID: uuid.New(), AmountCents: 9000, Status: payment.StatusPending, RequestedAt: now, Attempts: 1},
	}
	for _, r := range reqs {
		require.NoError(t, q.Enqueue(ctx, r))
	}

	got, err := q.Dequeue(ctx, 2)
	require.NoError(t, err)
	if diff := cmp.Diff(reqs[:2], got); diff != "" {
		t.Errorf("first batch mismatch (-want +got):\n%s", diff)
	}

	n, err := q.Len(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	got, err = q.Dequeue(ctx, 10)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, reqs[2].BookingID, got[0].BookingID)

	got, err = q.Dequeue(ctx, 10)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestRedisQueue_SkipsUndecodableEntries(t *testing.T) {
	ctx := context.Background()
	client := redistest.NewClient(t)
	q := paymentqueue.NewRedisQueue(client, "test")

	require.NoError(t, client.RPush(ctx, "test:payments:retry", "not-json").Err())
	require.NoError(t, q.Enqueue(ctx, payment.Request{BookingID: uuid.New(), Status: payment.StatusFree}))

	got, err := q.Dequeue(ctx, 5)

	require.NoError(t, err)
	assert.Len(t, got, 1)
}
