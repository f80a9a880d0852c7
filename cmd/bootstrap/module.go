package bootstrap

import (
	"time"

	"car-rental-core/cmd/bootstrap/components"

	"go.uber.org/fx"
)

const connectTimeout = 10 * time.Second

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	DBModule,
	JWTModule,
	EmailModule,
	components.PersistenceModule,
	components.UseCaseModule,
	components.HandlerModule,
	SchedulerModule,
)
