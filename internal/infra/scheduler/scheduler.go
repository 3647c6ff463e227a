// Package scheduler runs the background jobs: the status sweep and the
// payment retry drain. Each run is guarded by a Redis lease so only one
// replica works at a time.
package scheduler

import (
	"context"
	"log/slog"
	"time"

	"guidely/internal/infra/redislock"
	"guidely/internal/pkg/config"
	"guidely/internal/usecase/commands"

	"github.com/robfig/cron/v3"
)

const jobTimeout = 2 * time.Minute

// Locker hands out named leases.
type Locker interface {
	TryAcquire(ctx context.Context, name string, ttl time.Duration) (*redislock.Lease, error)
}

type Scheduler struct {
	cron     *cron.Cron
	sweeper  commands.SweepCommands
	payments commands.PaymentCommands
	locker   Locker
	cfg      config.SweeperConfig
}

func New(cfg config.SweeperConfig, sweeper commands.SweepCommands, payments commands.PaymentCommands, locker Locker) (*Scheduler, error) {
	s := &Scheduler{
		cron: cron.New(cron.WithChain(
			cron.SkipIfStillRunning(cron.DiscardLogger),
			cron.Recover(cron.DefaultLogger),
		)),
		sweeper:  sweeper,
		payments: payments,
		locker:   locker,
		cfg:      cfg,
	}

	if _, err := s.cron.AddFunc(cfg.Schedule, func() { s.guarded("sweeper", s.runSweep) }); err != nil {
		return nil, err
	}
	if _, err := s.cron.AddFunc(cfg.PaymentRetrySchedule, func() { s.guarded("payment-retry", s.runPaymentRetry) }); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Scheduler) Start() {
	s.cron.Start()
	slog.Info("scheduler started",
		"sweep_schedule", s.cfg.Schedule,
		"payment_retry_schedule", s.cfg.PaymentRetrySchedule)
}

// Stop waits for running jobs until ctx expires.
func (s *Scheduler) Stop(ctx context.Context) error {
	done := s.cron.Stop()
	select {
	case <-done.Done():
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *Scheduler) guarded(name string, job func(ctx context.Context)) {
	ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
	defer cancel()

	lease, err := s.locker.TryAcquire(ctx, name, s.cfg.LockTTL)
	if err != nil {
		slog.Error("scheduler lock failed", "job", name, "error", err)
		return
	}
	if lease == nil {
		slog.Debug("scheduler job held by another replica", "job", name)
		return
	}
	defer func() {
		if err := lease.Release(context.WithoutCancel(ctx)); err != nil {
			slog.Warn("scheduler lock release failed", "job", name, "error", err)
		}
	}()

	job(ctx)
}

func (s *Scheduler) runSweep(ctx context.Context) {
	started := time.Now()
	res, err := s.sweeper.Sweep(ctx)
	if err != nil {
		slog.Error("status sweep failed", "error", err)
		return
	}
	if res.Changed() > 0 {
		slog.Info("status sweep",
			"scanned", res.Scanned,
			"completed", res.Completed,
			"no_show", res.NoShow,
			"expired", res.Expired,
			"skipped", res.Skipped,
			"elapsed_ms", time.Since(started).Milliseconds())
	}
}

func (s *Scheduler) runPaymentRetry(ctx context.Context) {
	res, err := s.payments.RetryPending(ctx, s.cfg.PaymentRetryBatch)
	if err != nil {
		slog.Error("payment retry failed", "error", err)
		return
	}
	if res.Attempted > 0 {
		slog.Info("payment retry",
			"attempted", res.Attempted,
			"recorded", res.Recorded,
			"requeued", res.Requeued,
			"dropped", res.Dropped)
	}
}
