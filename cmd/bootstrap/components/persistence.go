package components

import (
	"guidely/internal/infra/paymentqueue"
	"guidely/internal/infra/pgquery"
	"guidely/internal/infra/readstore"
	"guidely/internal/infra/redislock"
	"guidely/internal/infra/repository"
	"guidely/internal/infra/scheduler"
	"guidely/internal/infra/uow"
	"guidely/internal/pkg/clock"
	"guidely/internal/pkg/config"
	"guidely/internal/usecase/commands"
	"guidely/internal/usecase/queries"
	"guidely/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	repositoryModule,
	redisModule,
)

var baseOption = fx.Provide(
	NewSQLQueries,
	NewDBTX,
	clock.NewRealClock,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		// Booking
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.BookingReadQueries)),
		),
		fx.Annotate(
			readstore.NewBookingReadStore,
			fx.As(new(queries.BookingReadStore)),
		),
		// Service
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.ServiceReadQueries)),
		),
		fx.Annotate(
			readstore.NewServiceReadStore,
			fx.As(new(queries.ServiceReadStore)),
		),
		// Rating stats
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.RatingStatsReadQueries)),
		),
		fx.Annotate(
			readstore.NewRatingStatsReadStore,
			fx.As(new(queries.RatingStatsReadStore)),
		),
		// User; the concrete store also resolves mail recipients
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.UserReadQueries)),
		),
		readstore.NewUserReadStore,
		func(s *readstore.UserReadStore) queries.UserReadStore { return s },
	),
)

var repositoryModule = fx.Module("persistence/repository",
	fx.Provide(
		// UnitOfWork
		fx.Annotate(
			uow.NewPostgresUoW,
			fx.As(new(shared.UnitOfWork)),
		),
		// Payment
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(repository.PaymentWriteQueries)),
		),
		fx.Annotate(
			repository.NewPaymentRecorder,
			fx.As(new(commands.PaymentRecorder)),
		),
	),
)

var redisModule = fx.Module("persistence/redis",
	fx.Provide(
		fx.Annotate(
			NewPaymentRetryQueue,
			fx.As(new(commands.PaymentRetryQueue)),
		),
		fx.Annotate(
			NewLocker,
			fx.As(new(scheduler.Locker)),
		),
	),
)

func NewSQLQueries(_ *pgxpool.Pool) *pgquery.Queries {
	return pgquery.New()
}

func NewDBTX(pool *pgxpool.Pool) pgquery.DBTX {
	return pool
}

func NewPaymentRetryQueue(client *redis.Client, cfg config.Config) *paymentqueue.RedisQueue {
	return paymentqueue.NewRedisQueue(client, cfg.Redis.Prefix)
}

func NewLocker(client *redis.Client, cfg config.Config) *redislock.Locker {
	return redislock.NewLocker(client, cfg.Redis.Prefix)
}
