package components

import (
	"flyerboard/internal/infra/readstore"
	repo_impl "flyerboard/internal/infra/repository"
	"flyerboard/internal/usecase/commands"
	"flyerboard/internal/usecase/queries"

	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		fx.Annotate(
			repo_impl.NewFlyerRepository,
			fx.As(new(commands.FlyerRepository)),
		),
		fx.Annotate(
			repo_impl.NewProfileRepository,
			fx.As(new(commands.ProfileRepository)),
		),
		fx.Annotate(
			repo_impl.NewModerationRepository,
			fx.As(new(commands.ModerationRepository)),
		),
		// Read-side stores for queries
		fx.Annotate(
			readstore.NewFlyerReadStore,
			fx.As(new(queries.FlyerReadStore)),
		),
		fx.Annotate(
			readstore.NewProfileReadStore,
			fx.As(new(queries.ProfileReadStore)),
		),
	),
)
