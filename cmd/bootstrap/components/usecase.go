package components

import (
	"time"

	"flyerboard/internal/pkg/clock"
	"flyerboard/internal/pkg/config"
	"flyerboard/internal/usecase/commands"
	"flyerboard/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	fx.Provide(
		clock.NewRealClock,
		NewFlyerQueries,
		NewFlyerCommands,
	),
)

func NewFlyerQueries(
	store queries.FlyerReadStore,
	profileStore queries.ProfileReadStore,
	clk clock.Clock,
	loc *time.Location,
	cfg config.Config,
) queries.FlyerQueries {
	return queries.NewFlyerQueries(store, profileStore, clk, loc, cfg.Quota.WeeklyFlyers)
}

func NewFlyerCommands(
	flyerRepo commands.FlyerRepository,
	profileRepo commands.ProfileRepository,
	moderationRepo commands.ModerationRepository,
	flyerQueries queries.FlyerQueries,
	pool *pgxpool.Pool,
	clk clock.Clock,
	loc *time.Location,
	cfg config.Config,
) commands.FlyerCommands {
	return commands.NewFlyerCommands(
		flyerRepo, profileRepo, moderationRepo, flyerQueries,
		pool, clk, loc, cfg.Quota.WeeklyFlyers,
	)
}
