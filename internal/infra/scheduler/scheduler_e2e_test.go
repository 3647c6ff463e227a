//go:build e2e

package scheduler

import (
	"context"
	"testing"
	"time"

	"guidely/internal/infra/redislock"
	"guidely/tests/common/redistest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGuarded_RunsOnceAcrossReplicas(t *testing.T) {
	client := redistest.NewClient(t)
	locker := redislock.NewLocker(client, "guidely-test")

	sweeper := &fakeSweeper{}
	a, err := New(testSweeperConfig(), sweeper, &fakePayments{}, locker)
	require.NoError(t, err)
	b, err := New(testSweeperConfig(), sweeper, &fakePayments{}, locker)
	require.NoError(t, err)

	// replica b tries while a is still inside the job
	a.guarded("sweeper", func(ctx context.Context) {
		b.guarded("sweeper", b.runSweep)
		a.runSweep(ctx)
	})
	assert.Equal(t, 1, sweeper.calls)

	// the lease is released afterwards
	b.guarded("sweeper", b.runSweep)
	assert.Equal(t, 2, sweeper.calls)

	ttl, err := client.TTL(t.Context(), "guidely-test:lock:sweeper").Result()
	require.NoError(t, err)
	assert.Equal(t, time.Duration(-2), ttl)
}
