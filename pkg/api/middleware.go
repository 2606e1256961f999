package api

import (
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// SetupMiddleware configures the middleware stack for the Gin router
func SetupMiddleware(r *gin.Engine) {
	// Recovery middleware
	r.Use(gin.Recovery())

	// Request logging middleware
	r.Use(RequestLogger())

	// CORS middleware; the dashboard may be served from another origin
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))
}

// RequestLogger returns a Gin middleware that logs each request with the
// device and action it targeted, if any
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		// Process request
		c.Next()

		// Log after request
		statusCode := c.Writer.Status()
		path := c.Request.URL.Path

		var event *zerolog.Event
		switch {
		case statusCode >= 500:
			event = log.Error()
		case statusCode >= 400:
			event = log.Warn()
		case strings.HasPrefix(path, "/swagger/"):
			event = log.Debug()
		default:
			event = log.Info()
		}

		if id := c.Param("id"); id != "" {
			event = event.Str("device_id", id)
		}
		if action := c.Param("action"); action != "" {
			event = event.Str("action", action)
		}

		event.
			Str("method", c.Request.Method).
			Str("path", path).
			Int("status", statusCode).
			Dur("latency", time.Since(start)).
			Str("client_ip", c.ClientIP()).
			Msg("request")
	}
}
