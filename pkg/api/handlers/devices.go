package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/urmzd/smartapp/pkg/api/types"
	"github.com/urmzd/smartapp/pkg/controller"
	"github.com/urmzd/smartapp/pkg/device"
)

// DevicesHandler handles device listing and status endpoints
type DevicesHandler struct {
	controller *controller.Controller
}

// NewDevicesHandler creates a new devices handler
func NewDevicesHandler(controller *controller.Controller) *DevicesHandler {
	return &DevicesHandler{controller: controller}
}

// ListDevices handles GET /devices
// @Summary      List all devices
// @Description  Returns every registered device with its status when reachable
// @Tags         devices
// @Produce      json
// @Success      200  {object}  types.ListDevicesResponse
// @Router       /devices [get]
func (h *DevicesHandler) ListDevices(c *gin.Context) {
	ctx := c.Request.Context()

	devices := h.controller.Devices()
	result := make([]types.DeviceInfo, 0, len(devices))
	for _, d := range devices {
		info := deviceInfo(d)

		// Unreachable devices are listed without status
		if status, ok := h.controller.Status(ctx, d.ID()); ok {
			info.Online = true
			info.Status = status
		}

		result = append(result, info)
	}

	c.JSON(http.StatusOK, types.ListDevicesResponse{
		Devices: result,
		Count:   len(result),
	})
}

// GetDevice handles GET /devices/:id
// @Summary      Get device details
// @Description  Returns one registered device with its status when reachable
// @Tags         devices
// @Produce      json
// @Param        id   path      string  true  "Device ID"
// @Success      200  {object}  types.DeviceResponse
// @Failure      404  {object}  types.ErrorResponse  "Device not found"
// @Router       /devices/{id} [get]
func (h *DevicesHandler) GetDevice(c *gin.Context) {
	d, ok := h.controller.Facade().Device(c.Param("id"))
	if !ok {
		notFound(c)
		return
	}

	info := deviceInfo(d)
	if status, ok := h.controller.Status(c.Request.Context(), d.ID()); ok {
		info.Online = true
		info.Status = status
	}

	c.JSON(http.StatusOK, types.DeviceResponse{
		Device: info,
	})
}

// GetStatus handles GET /devices/:id/status
// @Summary      Get device status
// @Description  Returns the status payload reported by the device
// @Tags         devices
// @Produce      json
// @Param        id   path      string  true  "Device ID"
// @Success      200  {object}  types.StatusResponse
// @Failure      404  {object}  types.ErrorResponse  "Device not found"
// @Failure      502  {object}  types.ErrorResponse  "Device unreachable"
// @Router       /devices/{id}/status [get]
func (h *DevicesHandler) GetStatus(c *gin.Context) {
	id := c.Param("id")

	if _, ok := h.controller.Facade().Device(id); !ok {
		notFound(c)
		return
	}

	status, ok := h.controller.Status(c.Request.Context(), id)
	if !ok {
		c.JSON(http.StatusBadGateway, types.ErrorResponse{
			Error:   "device_unavailable",
			Message: "Device did not report its status",
		})
		return
	}

	c.JSON(http.StatusOK, types.StatusResponse{
		DeviceID:  id,
		Status:    status,
		Timestamp: time.Now(),
	})
}

// AllStatus handles GET /status
// @Summary      Get all statuses
// @Description  Returns the status of every reachable device; unreachable devices are omitted
// @Tags         devices
// @Produce      json
// @Success      200  {object}  types.AllStatusResponse
// @Router       /status [get]
func (h *DevicesHandler) AllStatus(c *gin.Context) {
	c.JSON(http.StatusOK, allStatus(c.Request.Context(), h.controller))
}

func deviceInfo(d device.Device) types.DeviceInfo {
	return types.DeviceInfo{
		ID:   d.ID(),
		Kind: string(d.Kind()),
		Host: d.Host(),
		Port: d.Port(),
	}
}

func notFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, types.ErrorResponse{
		Error:   "not_found",
		Message: "Device not found",
	})
}
