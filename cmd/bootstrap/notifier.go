package bootstrap

import (
	"context"
	"log/slog"

	"guidely/internal/infra/notifier"
	"guidely/internal/infra/readstore"
	"guidely/internal/pkg/config"
	"guidely/internal/pkg/errs"
	"guidely/internal/usecase/commands"

	"go.uber.org/fx"
)

var NotifierModule = fx.Module("notifier",
	fx.Provide(
		NewNotificationSink,
		fx.Annotate(
			NewNotificationDispatcher,
			fx.As(new(commands.Notifier)),
		),
	),
)

func NewNotificationSink(lc fx.Lifecycle, cfg config.Config, contacts *readstore.UserReadStore, logger *slog.Logger) (notifier.Sink, error) {
	switch cfg.Notifier.Driver {
	case "", "log":
		return notifier.NewLogSink(logger), nil
	case "smtp":
		return notifier.NewSMTPSink(cfg.Notifier, contacts), nil
	case "kafka":
		sink := notifier.NewKafkaSink(cfg.Notifier)
		lc.Append(fx.Hook{
			OnStop: func(_ context.Context) error {
				return sink.Close()
			},
		})
		return sink, nil
	default:
		return nil, errs.Newf("unknown NOTIFIER_DRIVER %q", cfg.Notifier.Driver)
	}
}

func NewNotificationDispatcher(lc fx.Lifecycle, cfg config.Config, sink notifier.Sink) *notifier.Dispatcher {
	d := notifier.NewDispatcher(sink, cfg.Notifier.QueueSize)
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			d.Start()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return d.Stop(ctx)
		},
	})
	return d
}
