package types

import "time"

// --- Response DTOs ---

// ErrorResponse represents an API error
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// HealthResponse is returned from GET /health
type HealthResponse struct {
	Status    string    `json:"status"`
	Version   string    `json:"version"`
	Devices   int       `json:"devices"`
	Reachable int       `json:"reachable"`
	Timestamp time.Time `json:"timestamp"`
}

// DeviceInfo describes a registered device and, when reachable, its status
type DeviceInfo struct {
	ID     string         `json:"id"`
	Kind   string         `json:"kind"`
	Host   string         `json:"host"`
	Port   int            `json:"port"`
	Online bool           `json:"online"`
	Status map[string]any `json:"status,omitempty"`
}

// ListDevicesResponse is returned from GET /devices
type ListDevicesResponse struct {
	Devices []DeviceInfo `json:"devices"`
	Count   int          `json:"count"`
}

// DeviceResponse is returned from GET /devices/:id
type DeviceResponse struct {
	Device DeviceInfo `json:"device"`
}

// StatusResponse is returned from GET /devices/:id/status
type StatusResponse struct {
	DeviceID  string         `json:"device_id"`
	Status    map[string]any `json:"status"`
	Timestamp time.Time      `json:"timestamp"`
}

// AllStatusResponse is returned from GET /status
type AllStatusResponse struct {
	Statuses []map[string]any `json:"statuses"`
	Count    int              `json:"count"`
}

// ActionResponse is returned from POST /devices/:id/actions/:action and POST /devices/:id/toggle
type ActionResponse struct {
	DeviceID  string    `json:"device_id"`
	Action    string    `json:"action"`
	Success   bool      `json:"success"`
	Timestamp time.Time `json:"timestamp"`
}

// VolumeRequest is the body of POST /set_volume
type VolumeRequest struct {
	Volume *int `json:"volume" form:"volume" binding:"required"`
}

// BrightnessRequest is the body of POST /set_brightness
type BrightnessRequest struct {
	Brightness *int `json:"brightness" form:"brightness" binding:"required"`
}

// PositionRequest is the body of POST /set_curtains_position
type PositionRequest struct {
	Position *int `json:"position" form:"position" binding:"required"`
}
