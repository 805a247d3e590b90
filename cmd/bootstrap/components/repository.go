package components

import (
	"restaurant-booking/internal/infra/docstore"
	"restaurant-booking/internal/usecase/shared"

	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		docstore.NewUnitOfWork,
		func(u *docstore.UnitOfWork) shared.UnitOfWork { return u },
	),
	fx.Invoke(registerConfigSeed),
)

func registerConfigSeed(lc fx.Lifecycle, uow *docstore.UnitOfWork) {
	lc.Append(fx.Hook{OnStart: uow.SeedDefaults})
}
