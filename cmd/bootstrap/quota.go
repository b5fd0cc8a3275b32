package bootstrap

import (
	"time"

	"flyerboard/internal/pkg/config"

	"go.uber.org/fx"
)

var QuotaModule = fx.Module("quota",
	fx.Provide(
		NewQuotaLocation,
	),
)

// NewQuotaLocation resolves the configured quota timezone once at startup.
// A bad zone name is a deployment error, so it fails the whole app.
func NewQuotaLocation(cfg config.Config) (*time.Location, error) {
	return cfg.Quota.Location()
}
