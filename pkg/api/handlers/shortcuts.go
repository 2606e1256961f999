package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/urmzd/smartapp/pkg/api/types"
	"github.com/urmzd/smartapp/pkg/controller"
)

// ShortcutsHandler serves the one-click dashboard endpoints for the
// default speaker, light and curtains. Each responds with the refreshed
// status of every device.
type ShortcutsHandler struct {
	controller *controller.Controller
}

// NewShortcutsHandler creates a new shortcuts handler
func NewShortcutsHandler(controller *controller.Controller) *ShortcutsHandler {
	return &ShortcutsHandler{controller: controller}
}

// ToggleSpeaker handles POST /toggle_speaker
// @Summary      Toggle the speaker
// @Tags         shortcuts
// @Produce      json
// @Success      200  {object}  types.AllStatusResponse
// @Failure      502  {object}  types.ErrorResponse  "Speaker unreachable or rejected the action"
// @Router       /toggle_speaker [post]
func (h *ShortcutsHandler) ToggleSpeaker(c *gin.Context) {
	h.respond(c, h.controller.ToggleSpeaker(c.Request.Context()))
}

// ToggleLight handles POST /toggle_light
// @Summary      Toggle the light
// @Tags         shortcuts
// @Produce      json
// @Success      200  {object}  types.AllStatusResponse
// @Failure      502  {object}  types.ErrorResponse  "Light unreachable or rejected the action"
// @Router       /toggle_light [post]
func (h *ShortcutsHandler) ToggleLight(c *gin.Context) {
	h.respond(c, h.controller.ToggleLight(c.Request.Context()))
}

// ToggleCurtains handles POST /toggle_curtains
// @Summary      Open or close the curtains
// @Tags         shortcuts
// @Produce      json
// @Success      200  {object}  types.AllStatusResponse
// @Failure      502  {object}  types.ErrorResponse  "Curtains unreachable or rejected the action"
// @Router       /toggle_curtains [post]
func (h *ShortcutsHandler) ToggleCurtains(c *gin.Context) {
	h.respond(c, h.controller.ToggleCurtains(c.Request.Context()))
}

// SetVolume handles POST /set_volume
// @Summary      Set the speaker volume
// @Tags         shortcuts
// @Accept       json,x-www-form-urlencoded
// @Produce      json
// @Param        request  body      types.VolumeRequest  true  "Volume"
// @Success      200      {object}  types.AllStatusResponse
// @Failure      400      {object}  types.ErrorResponse
// @Failure      502      {object}  types.ErrorResponse
// @Router       /set_volume [post]
func (h *ShortcutsHandler) SetVolume(c *gin.Context) {
	var req types.VolumeRequest
	if !bind(c, &req) {
		return
	}
	h.respond(c, h.controller.SetSpeakerVolume(c.Request.Context(), *req.Volume))
}

// SetBrightness handles POST /set_brightness
// @Summary      Set the light brightness
// @Tags         shortcuts
// @Accept       json,x-www-form-urlencoded
// @Produce      json
// @Param        request  body      types.BrightnessRequest  true  "Brightness"
// @Success      200      {object}  types.AllStatusResponse
// @Failure      400      {object}  types.ErrorResponse
// @Failure      502      {object}  types.ErrorResponse
// @Router       /set_brightness [post]
func (h *ShortcutsHandler) SetBrightness(c *gin.Context) {
	var req types.BrightnessRequest
	if !bind(c, &req) {
		return
	}
	h.respond(c, h.controller.SetLightBrightness(c.Request.Context(), *req.Brightness))
}

// SetCurtainsPosition handles POST /set_curtains_position
// @Summary      Move the curtains
// @Tags         shortcuts
// @Accept       json,x-www-form-urlencoded
// @Produce      json
// @Param        request  body      types.PositionRequest  true  "Position"
// @Success      200      {object}  types.AllStatusResponse
// @Failure      400      {object}  types.ErrorResponse
// @Failure      502      {object}  types.ErrorResponse
// @Router       /set_curtains_position [post]
func (h *ShortcutsHandler) SetCurtainsPosition(c *gin.Context) {
	var req types.PositionRequest
	if !bind(c, &req) {
		return
	}
	h.respond(c, h.controller.SetCurtainsPosition(c.Request.Context(), *req.Position))
}

func bind(c *gin.Context, req any) bool {
	if err := c.ShouldBind(req); err != nil {
		c.JSON(http.StatusBadRequest, types.ErrorResponse{
			Error:   "invalid_request",
			Message: err.Error(),
		})
		return false
	}
	return true
}

func (h *ShortcutsHandler) respond(c *gin.Context, ok bool) {
	if !ok {
		c.JSON(http.StatusBadGateway, types.ErrorResponse{
			Error:   "device_error",
			Message: "Device rejected the action or is unreachable",
		})
		return
	}
	c.JSON(http.StatusOK, allStatus(c.Request.Context(), h.controller))
}

func allStatus(ctx context.Context, ctrl *controller.Controller) types.AllStatusResponse {
	all := ctrl.AllStatus(ctx)

	statuses := make([]map[string]any, 0, len(all))
	for _, s := range all {
		statuses = append(statuses, s)
	}
	return types.AllStatusResponse{
		Statuses: statuses,
		Count:    len(statuses),
	}
}
