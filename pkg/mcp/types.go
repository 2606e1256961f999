package mcp

import (
	"github.com/urmzd/smartapp/pkg/device"
)

// GetHealthOutput is the output for the get_health tool
type GetHealthOutput struct {
	Status    string `json:"status" jsonschema:"description=healthy when every device is reachable, degraded otherwise"`
	Version   string `json:"version" jsonschema:"description=Service version"`
	Devices   int    `json:"devices" jsonschema:"description=Registered devices"`
	Reachable int    `json:"reachable" jsonschema:"description=Devices that reported their status"`
	Timestamp string `json:"timestamp" jsonschema:"description=ISO8601 timestamp"`
}

// ListDevicesOutput is the output for the list_devices tool
type ListDevicesOutput struct {
	Devices []DeviceInfo `json:"devices" jsonschema:"description=Registered devices in registration order"`
	Count   int          `json:"count" jsonschema:"description=Total number of devices"`
}

// DeviceInfo represents a device in tool outputs
type DeviceInfo struct {
	ID     string         `json:"id" jsonschema:"description=Device identifier"`
	Kind   string         `json:"kind" jsonschema:"description=Device kind (speaker/light/curtains)"`
	Host   string         `json:"host" jsonschema:"description=Microservice host"`
	Port   int            `json:"port" jsonschema:"description=Microservice port"`
	Online bool           `json:"online" jsonschema:"description=Whether the device answered its status endpoint"`
	Status map[string]any `json:"status,omitempty" jsonschema:"description=Status payload reported by the device"`
}

// GetDeviceStatusOutput is the output for the get_device_status tool
type GetDeviceStatusOutput struct {
	DeviceID string         `json:"device_id" jsonschema:"description=Device identifier"`
	Status   map[string]any `json:"status" jsonschema:"description=Status payload reported by the device"`
}

// GetAllStatusOutput is the output for the get_all_status tool
type GetAllStatusOutput struct {
	Statuses []map[string]any `json:"statuses" jsonschema:"description=Status payloads in registration order"`
	Count    int              `json:"count" jsonschema:"description=Number of reachable devices"`
}

// ActionOutput is the output for the action tools
type ActionOutput struct {
	DeviceID string         `json:"device_id" jsonschema:"description=Device identifier"`
	Action   string         `json:"action" jsonschema:"description=Action performed"`
	Success  bool           `json:"success" jsonschema:"description=Whether the device accepted the action"`
	Params   map[string]any `json:"params,omitempty" jsonschema:"description=Parameters sent with the action"`
}

// DeviceToInfo converts a device.Device to DeviceInfo
func DeviceToInfo(d device.Device) DeviceInfo {
	return DeviceInfo{
		ID:   d.ID(),
		Kind: string(d.Kind()),
		Host: d.Host(),
		Port: d.Port(),
	}
}
