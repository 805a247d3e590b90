package bootstrap

import (
	"restaurant-booking/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	DBModule,
	JWTModule,
	NotifierModule,
	components.RepositoryModule,
	components.UseCaseModule,
	components.HandlerModule,
	SchedulerModule,
)
