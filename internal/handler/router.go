package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"flyerboard/internal/handler/api"
	"flyerboard/internal/handler/middleware"
	"flyerboard/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	flyerHandler *api.FlyerHandler,
	userHandler *api.UserHandler,
	categoryHandler *api.CategoryHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, flyerHandler, userHandler, categoryHandler, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	flyerHandler *api.FlyerHandler,
	userHandler *api.UserHandler,
	categoryHandler *api.CategoryHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	engine.GET("/health", healthCheck)
	engine.GET("/metrics", gin.WrapH(promhttp.Handler()))

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		apiGroup.GET("/categories", categoryHandler.ListCategories)

		flyers := apiGroup.Group("/flyers")
		{
			addRoutes(flyers, []route{
				{Method: http.MethodGet, Path: "/trending", Handler: flyerHandler.Trending},
				{Method: http.MethodGet, Path: "/categories/:category", Handler: flyerHandler.ListByCategory},
				{Method: http.MethodGet, Path: "/:id", Handler: flyerHandler.GetFlyer},
				{Method: http.MethodPost, Path: "/:id/views", Handler: flyerHandler.RecordView},
				{Method: http.MethodPost, Path: "/:id/reactions", Handler: flyerHandler.AddReaction},
			})

			authRequired := flyers.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodPost, Path: "", Handler: flyerHandler.PostFlyer},
				{Method: http.MethodPost, Path: "/:id/report", Handler: flyerHandler.ReportFlyer},
			})
		}

		users := apiGroup.Group("/users")
		{
			me := users.Group("/me")
			me.Use(authMiddleware.RequireAuth())
			addRoutes(me, []route{
				{Method: http.MethodGet, Path: "/flyers", Handler: userHandler.ListMyFlyers},
				{Method: http.MethodGet, Path: "/stats", Handler: userHandler.MyStats},
			})

			addRoutes(users, []route{
				{Method: http.MethodGet, Path: "/:id/flyers", Handler: userHandler.ListUserFlyers},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
