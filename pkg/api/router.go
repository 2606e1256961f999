package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/urmzd/smartapp/pkg/api/handlers"
	"github.com/urmzd/smartapp/pkg/controller"
)

// Router holds the Gin engine and dependencies
type Router struct {
	engine     *gin.Engine
	controller *controller.Controller
}

// NewRouter creates a new API router
func NewRouter(controller *controller.Controller) *Router {
	gin.SetMode(gin.ReleaseMode)

	engine := gin.New()
	SetupMiddleware(engine)

	router := &Router{
		engine:     engine,
		controller: controller,
	}

	router.setupRoutes()

	return router
}

// setupRoutes configures all API routes
func (r *Router) setupRoutes() {
	// Swagger UI
	r.engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	r.engine.GET("/docs", func(c *gin.Context) {
		c.Redirect(http.StatusMovedPermanently, "/swagger/index.html")
	})

	// Health check at root
	healthHandler := handlers.NewHealthHandler(r.controller)
	r.engine.GET("/health", healthHandler.Health)

	// API v1 routes
	v1 := r.engine.Group("/api/v1")
	{
		// Health
		v1.GET("/health", healthHandler.Health)

		devicesHandler := handlers.NewDevicesHandler(r.controller)
		controlHandler := handlers.NewControlHandler(r.controller)

		v1.GET("/status", devicesHandler.AllStatus)

		// Dashboard shortcuts for the default devices
		shortcutsHandler := handlers.NewShortcutsHandler(r.controller)
		v1.POST("/toggle_speaker", shortcutsHandler.ToggleSpeaker)
		v1.POST("/toggle_light", shortcutsHandler.ToggleLight)
		v1.POST("/toggle_curtains", shortcutsHandler.ToggleCurtains)
		v1.POST("/set_volume", shortcutsHandler.SetVolume)
		v1.POST("/set_brightness", shortcutsHandler.SetBrightness)
		v1.POST("/set_curtains_position", shortcutsHandler.SetCurtainsPosition)

		// Devices
		devices := v1.Group("/devices")
		{
			devices.GET("", devicesHandler.ListDevices)
			devices.GET("/:id", devicesHandler.GetDevice)
			devices.GET("/:id/status", devicesHandler.GetStatus)

			// Device control
			devices.POST("/:id/actions/:action", controlHandler.PerformAction)
			devices.POST("/:id/toggle", controlHandler.Toggle)
		}
	}
}

// Handler exposes the engine as an http.Handler
func (r *Router) Handler() http.Handler {
	return r.engine
}

// Run serves on addr until ctx is cancelled, then shuts down gracefully
func (r *Router) Run(ctx context.Context, addr string) error {
	server := &http.Server{
		Addr:         addr,
		Handler:      r.engine,
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	log.Info().Msg("Shutting down API server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}
