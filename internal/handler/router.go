package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"shootbook/internal/handler/api"
	"shootbook/internal/handler/middleware"
	"shootbook/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
}

func NewRouter(engine *gin.Engine, cfg config.Config, reservationHandler *api.ReservationHandler, adminAuth *middleware.AdminAuth) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, reservationHandler, adminAuth)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, reservationHandler *api.ReservationHandler, adminAuth *middleware.AdminAuth) {
	engine.GET("/health", healthCheck)

	apiGroup := engine.Group("/api")
	apiGroup.Use(adminAuth.RequireAdmin())
	{
		addRoutes(apiGroup, []route{
			{Method: http.MethodGet, Path: "/reservations", Handler: reservationHandler.ListActive},
			{Method: http.MethodGet, Path: "/reservations/:id", Handler: reservationHandler.GetReservation},
			{Method: http.MethodPost, Path: "/reservations/:id/done", Handler: reservationHandler.MarkDone},
			{Method: http.MethodPost, Path: "/reservations/:id/cancel", Handler: reservationHandler.MarkCancelled},
			{Method: http.MethodGet, Path: "/availability/:date", Handler: reservationHandler.Availability},
		})
	}
}

func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, r.Handler)
		case http.MethodPost:
			g.POST(r.Path, r.Handler)
		case http.MethodPut:
			g.PUT(r.Path, r.Handler)
		case http.MethodDelete:
			g.DELETE(r.Path, r.Handler)
		default:
			g.Any(r.Path, r.Handler)
		}
	}
}
