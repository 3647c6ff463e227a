package bootstrap

import (
	"context"
	"log/slog"

	"guidely/internal/infra/scheduler"
	"guidely/internal/pkg/config"
	"guidely/internal/usecase/commands"

	"go.uber.org/fx"
)

var SchedulerModule = fx.Module("scheduler",
	fx.Invoke(StartScheduler),
)

func StartScheduler(
	lc fx.Lifecycle,
	cfg config.Config,
	sweeper commands.SweepCommands,
	payments commands.PaymentCommands,
	locker scheduler.Locker,
	logger *slog.Logger,
) error {
	if !cfg.Sweeper.Enabled {
		logger.Info("status sweeper disabled")
		return nil
	}

	s, err := scheduler.New(cfg.Sweeper, sweeper, payments, locker)
	if err != nil {
		return err
	}

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			s.Start()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return s.Stop(ctx)
		},
	})
	return nil
}
