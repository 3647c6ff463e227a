package bootstrap

import (
	"guidely/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	DBModule,
	RedisModule,
	JWTModule,
	components.PersistenceModule,
	NotifierModule,
	components.UseCaseModule,
	components.HandlerModule,
	SchedulerModule,
)
