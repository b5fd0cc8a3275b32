package components

import (
	"flyerboard/internal/handler"
	"flyerboard/internal/handler/api"
	"flyerboard/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewFlyerHandler,
		api.NewUserHandler,
		api.NewCategoryHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
