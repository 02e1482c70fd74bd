package handler

import (
	"net/http"

	"shareit/internal/handler/api"
	"shareit/internal/handler/middleware"
	"shareit/internal/pkg/config"
	"shareit/internal/pkg/metrics"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
}

type Handlers struct {
	Booking *api.BookingHandler
	Comment *api.CommentHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *middleware.Logger, h Handlers) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, cfg, h)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger) {
	// Recovery is outermost so panics in any later middleware are caught.
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(logger.LoggingMiddleware())
	engine.Use(middleware.Metrics())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, cfg config.Config, h Handlers) {
	engine.GET("/health", healthCheck)
	engine.GET("/metrics", gin.WrapH(metrics.Handler()))

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	identified := []gin.HandlerFunc{middleware.RequireSharerUser(), middleware.RateLimit(cfg.RateLimit)}

	bookings := engine.Group("/bookings", identified...)
	addRoutes(bookings, []route{
		{Method: http.MethodPost, Path: "", Handler: h.Booking.Create},
		{Method: http.MethodGet, Path: "", Handler: h.Booking.ListForBooker},
		{Method: http.MethodGet, Path: "/owner", Handler: h.Booking.ListForOwner},
		{Method: http.MethodGet, Path: "/:bookingId", Handler: h.Booking.Get},
		{Method: http.MethodPatch, Path: "/:bookingId", Handler: h.Booking.Decide},
	})

	items := engine.Group("/items", identified...)
	addRoutes(items, []route{
		{Method: http.MethodPost, Path: "/:itemId/comment", Handler: h.Comment.Create},
	})
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		g.Handle(r.Method, r.Path, r.Handler)
	}
}
