package bootstrap

import (
	"flyerboard/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	DBModule,
	JWTModule,
	QuotaModule,
	components.RepositoryModule,
	components.UseCaseModule,
	components.HandlerModule,
)
