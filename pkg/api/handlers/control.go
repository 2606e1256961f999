package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/urmzd/smartapp/pkg/api/types"
	"github.com/urmzd/smartapp/pkg/controller"
	"github.com/urmzd/smartapp/pkg/device"
	"github.com/urmzd/smartapp/pkg/facade"
)

// ControlHandler handles device action endpoints
type ControlHandler struct {
	controller *controller.Controller
}

// NewControlHandler creates a new control handler
func NewControlHandler(controller *controller.Controller) *ControlHandler {
	return &ControlHandler{controller: controller}
}

// PerformAction handles POST /devices/:id/actions/:action
// @Summary      Perform a device action
// @Description  Dispatches power, set_volume, set_brightness or position to the device. Parameters are passed as a JSON object (state, level or value).
// @Tags         control
// @Accept       json
// @Produce      json
// @Param        id       path      string  true   "Device ID"
// @Param        action   path      string  true   "Action name"  Enums(power, set_volume, set_brightness, position)
// @Param        request  body      object  false  "Action parameters"
// @Success      200      {object}  types.ActionResponse
// @Failure      400      {object}  types.ErrorResponse  "Unknown action, action not supported by the device, or invalid parameters"
// @Failure      404      {object}  types.ErrorResponse  "Device not found"
// @Failure      502      {object}  types.ErrorResponse  "Device rejected the action or is unreachable"
// @Router       /devices/{id}/actions/{action} [post]
func (h *ControlHandler) PerformAction(c *gin.Context) {
	id := c.Param("id")
	name := c.Param("action")

	params, err := decodeParams(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, types.ErrorResponse{
			Error:   "invalid_request",
			Message: "Request body must be a JSON object",
		})
		return
	}

	// Rejections are reported here; PerformAction alone only says false
	if err := h.controller.Facade().CheckDeviceAction(id, name, params); err != nil {
		if errors.Is(err, device.ErrNotFound) {
			notFound(c)
			return
		}
		code := "validation_error"
		switch {
		case errors.Is(err, facade.ErrUnknownAction):
			code = "unknown_action"
		case errors.Is(err, device.ErrUnsupported):
			code = "unsupported_action"
		}
		c.JSON(http.StatusBadRequest, types.ErrorResponse{
			Error:   code,
			Message: err.Error(),
		})
		return
	}

	if !h.controller.PerformAction(c.Request.Context(), id, name, params) {
		c.JSON(http.StatusBadGateway, types.ErrorResponse{
			Error:   "device_error",
			Message: "Device rejected the action or is unreachable",
		})
		return
	}

	c.JSON(http.StatusOK, types.ActionResponse{
		DeviceID:  id,
		Action:    name,
		Success:   true,
		Timestamp: time.Now(),
	})
}

// Toggle handles POST /devices/:id/toggle
// @Summary      Toggle device power
// @Description  Reads the device status and switches it on/off (open/close for curtains). Absent is_on/is_open counts as off.
// @Tags         control
// @Produce      json
// @Param        id   path      string  true  "Device ID"
// @Success      200  {object}  types.ActionResponse
// @Failure      404  {object}  types.ErrorResponse  "Device not found"
// @Failure      502  {object}  types.ErrorResponse  "Device unreachable or rejected the action"
// @Router       /devices/{id}/toggle [post]
func (h *ControlHandler) Toggle(c *gin.Context) {
	id := c.Param("id")

	if _, ok := h.controller.Facade().Device(id); !ok {
		notFound(c)
		return
	}

	if !h.controller.Toggle(c.Request.Context(), id) {
		c.JSON(http.StatusBadGateway, types.ErrorResponse{
			Error:   "device_error",
			Message: "Device could not be toggled",
		})
		return
	}

	c.JSON(http.StatusOK, types.ActionResponse{
		DeviceID:  id,
		Action:    "toggle",
		Success:   true,
		Timestamp: time.Now(),
	})
}

// decodeParams reads an optional JSON object body. Numbers are kept as
// json.Number so integer parameters survive intact.
func decodeParams(body io.Reader) (device.Params, error) {
	if body == nil {
		return device.Params{}, nil
	}

	dec := json.NewDecoder(body)
	dec.UseNumber()

	var params device.Params
	if err := dec.Decode(&params); err != nil {
		if errors.Is(err, io.EOF) {
			return device.Params{}, nil
		}
		return nil, err
	}
	// A single object only
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, errors.New("unexpected data after JSON object")
	}
	if params == nil {
		params = device.Params{}
	}
	return params, nil
}
