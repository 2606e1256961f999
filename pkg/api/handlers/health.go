package handlers

import (
	"net/http"
	"time"

	"github.com/carlmjohnson/versioninfo"
	"github.com/gin-gonic/gin"
	"github.com/urmzd/smartapp/pkg/api/types"
	"github.com/urmzd/smartapp/pkg/controller"
)

// HealthHandler handles health check endpoints
type HealthHandler struct {
	controller *controller.Controller
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(controller *controller.Controller) *HealthHandler {
	return &HealthHandler{controller: controller}
}

// Health handles GET /health
// @Summary      Health check
// @Description  Reports how many registered devices answer their status endpoint
// @Tags         health
// @Produce      json
// @Success      200  {object}  types.HealthResponse  "All devices reachable"
// @Failure      503  {object}  types.HealthResponse  "One or more devices unreachable"
// @Router       /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	registered := len(h.controller.Devices())
	reachable := len(h.controller.AllStatus(c.Request.Context()))

	status := "healthy"
	httpStatus := http.StatusOK

	if reachable < registered {
		status = "degraded"
		httpStatus = http.StatusServiceUnavailable
	}

	c.JSON(httpStatus, types.HealthResponse{
		Status:    status,
		Version:   versioninfo.Short(),
		Devices:   registered,
		Reachable: reachable,
		Timestamp: time.Now(),
	})
}
