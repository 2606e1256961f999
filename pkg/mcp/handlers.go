package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/carlmjohnson/versioninfo"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/urmzd/smartapp/pkg/device"
)

func (s *Server) handleGetHealth(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	registered := len(s.controller.Devices())
	reachable := len(s.controller.AllStatus(ctx))

	status := "healthy"
	if reachable < registered {
		status = "degraded"
	}

	out := GetHealthOutput{
		Status:    status,
		Version:   versioninfo.Short(),
		Devices:   registered,
		Reachable: reachable,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}

	return mcp.NewToolResultText(formatJSON(out)), nil
}

func (s *Server) handleListDevices(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	devices := s.controller.Devices()

	infos := make([]DeviceInfo, 0, len(devices))
	for _, d := range devices {
		info := DeviceToInfo(d)
		if status, ok := s.controller.Status(ctx, d.ID()); ok {
			info.Online = true
			info.Status = status
		}
		infos = append(infos, info)
	}

	out := ListDevicesOutput{
		Devices: infos,
		Count:   len(infos),
	}

	return mcp.NewToolResultText(formatJSON(out)), nil
}

func (s *Server) handleGetDeviceStatus(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := requiredString(request, "id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	if _, ok := s.controller.Facade().Device(id); !ok {
		return mcp.NewToolResultError(fmt.Sprintf("device not found: %s", id)), nil
	}

	status, ok := s.controller.Status(ctx, id)
	if !ok {
		return mcp.NewToolResultError(fmt.Sprintf("device %s did not report its status", id)), nil
	}

	out := GetDeviceStatusOutput{
		DeviceID: id,
		Status:   status,
	}
	return mcp.NewToolResultText(formatJSON(out)), nil
}

func (s *Server) handleGetAllStatus(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	all := s.controller.AllStatus(ctx)

	statuses := make([]map[string]any, 0, len(all))
	for _, st := range all {
		statuses = append(statuses, st)
	}

	out := GetAllStatusOutput{
		Statuses: statuses,
		Count:    len(statuses),
	}
	return mcp.NewToolResultText(formatJSON(out)), nil
}

func (s *Server) handlePerformAction(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := requiredString(request, "id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	name, err := requiredString(request, "action")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	params := device.Params{}
	if raw, ok := request.GetArguments()["params"]; ok && raw != nil {
		m, ok := raw.(map[string]any)
		if !ok {
			return mcp.NewToolResultError(`parameter "params" must be an object`), nil
		}
		params = device.Params(m)
	}

	// Report rejections precisely; PerformAction alone only says false
	if err := s.controller.Facade().CheckDeviceAction(id, name, params); err != nil {
		if errors.Is(err, device.ErrNotFound) {
			return mcp.NewToolResultError(fmt.Sprintf("device not found: %s", id)), nil
		}
		return mcp.NewToolResultError(fmt.Sprintf("invalid action: %s", err)), nil
	}

	if !s.controller.PerformAction(ctx, id, name, params) {
		return mcp.NewToolResultError(fmt.Sprintf("device %s rejected %s or is unreachable", id, name)), nil
	}

	out := ActionOutput{
		DeviceID: id,
		Action:   name,
		Success:  true,
		Params:   params,
	}
	return mcp.NewToolResultText(formatJSON(out)), nil
}

func (s *Server) handleToggleDevice(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := requiredString(request, "id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	if _, ok := s.controller.Facade().Device(id); !ok {
		return mcp.NewToolResultError(fmt.Sprintf("device not found: %s", id)), nil
	}

	if !s.controller.Toggle(ctx, id) {
		return mcp.NewToolResultError(fmt.Sprintf("failed to toggle device %s", id)), nil
	}

	out := ActionOutput{
		DeviceID: id,
		Action:   "toggle",
		Success:  true,
	}
	return mcp.NewToolResultText(formatJSON(out)), nil
}

func (s *Server) handleToggleSpeaker(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return s.toggleDefault(device.DefaultSpeakerID, s.controller.ToggleSpeaker(ctx))
}

func (s *Server) handleToggleLight(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return s.toggleDefault(device.DefaultLightID, s.controller.ToggleLight(ctx))
}

func (s *Server) handleToggleCurtains(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return s.toggleDefault(device.DefaultCurtainsID, s.controller.ToggleCurtains(ctx))
}

func (s *Server) toggleDefault(id string, ok bool) (*mcp.CallToolResult, error) {
	if !ok {
		return mcp.NewToolResultError(fmt.Sprintf("failed to toggle device %s", id)), nil
	}

	out := ActionOutput{
		DeviceID: id,
		Action:   "toggle",
		Success:  true,
	}
	return mcp.NewToolResultText(formatJSON(out)), nil
}

func (s *Server) handleSetSpeakerVolume(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return s.setLevel(request, device.DefaultSpeakerID, device.ActionSetVolume, device.ParamLevel,
		func(level int) bool { return s.controller.SetSpeakerVolume(ctx, level) })
}

func (s *Server) handleSetLightBrightness(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return s.setLevel(request, device.DefaultLightID, device.ActionSetBrightness, device.ParamLevel,
		func(level int) bool { return s.controller.SetLightBrightness(ctx, level) })
}

func (s *Server) handleSetCurtainsPosition(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return s.setLevel(request, device.DefaultCurtainsID, device.ActionPosition, device.ParamValue,
		func(value int) bool { return s.controller.SetCurtainsPosition(ctx, value) })
}

// setLevel reads the integer argument key and applies it with set.
func (s *Server) setLevel(request mcp.CallToolRequest, id, action, key string, set func(int) bool) (*mcp.CallToolResult, error) {
	v, err := requiredInt(request, key)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	if !set(v) {
		return mcp.NewToolResultError(fmt.Sprintf("device %s rejected %s or is unreachable", id, action)), nil
	}

	out := ActionOutput{
		DeviceID: id,
		Action:   action,
		Success:  true,
		Params:   map[string]any{key: v},
	}
	return mcp.NewToolResultText(formatJSON(out)), nil
}

// --- helpers ---

func requiredString(request mcp.CallToolRequest, key string) (string, error) {
	args := request.GetArguments()
	v, ok := args[key]
	if !ok || v == nil {
		return "", fmt.Errorf("required parameter %q is missing", key)
	}
	s, ok := v.(string)
	if !ok || s == "" {
		return "", fmt.Errorf("parameter %q must be a non-empty string", key)
	}
	return s, nil
}

func requiredInt(request mcp.CallToolRequest, key string) (int, error) {
	args := request.GetArguments()
	if v, ok := args[key]; !ok || v == nil {
		return 0, fmt.Errorf("required parameter %q is missing", key)
	}
	n, ok := device.Params(args).Int(key)
	if !ok {
		return 0, fmt.Errorf("parameter %q must be an integer", key)
	}
	return n, nil
}

func formatJSON(v any) string {
	b, err := encodeJSON(v)
	if err != nil {
		return fmt.Sprintf(`{"error":"failed to marshal response: %s"}`, err)
	}
	return string(b)
}

func encodeJSON(v any) ([]byte, error) {
	return json.MarshalIndent(v, "", "  ")
}
