package mcp

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urmzd/smartapp/pkg/action"
	"github.com/urmzd/smartapp/pkg/config"
	"github.com/urmzd/smartapp/pkg/controller"
	"github.com/urmzd/smartapp/pkg/device/schema"
	"github.com/urmzd/smartapp/pkg/facade"
	"github.com/urmzd/smartapp/pkg/transport/transporttest"
)

func newTestServer(t *testing.T, rec *transporttest.Recorder) *Server {
	t.Helper()
	f := facade.New(action.NewTable(zerolog.Nop()), facade.WithValidator(schema.NewValidator()))
	ctrl := controller.New(f, zerolog.Nop())
	require.NoError(t, ctrl.RegisterDevices(config.DefaultDevices(), rec))
	return NewServer(ctrl)
}

func callRequest(name string, args map[string]any) mcp.CallToolRequest {
	var req mcp.CallToolRequest
	req.Params.Name = name
	req.Params.Arguments = args
	return req
}

func resultText(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()
	require.NotNil(t, result)
	require.NotEmpty(t, result.Content)
	text, ok := result.Content[0].(mcp.TextContent)
	require.True(t, ok)
	return text.Text
}

func decodeResult[T any](t *testing.T, result *mcp.CallToolResult) T {
	t.Helper()
	require.False(t, result.IsError, resultText(t, result))
	var v T
	require.NoError(t, json.Unmarshal([]byte(resultText(t, result)), &v))
	return v
}

func TestGetHealth(t *testing.T) {
	rec := transporttest.NewRecorder().Fail("http://127.0.0.1:8003/status", transporttest.ErrTimeout)
	s := newTestServer(t, rec)

	result, err := s.handleGetHealth(context.Background(), callRequest("get_health", nil))
	require.NoError(t, err)

	out := decodeResult[GetHealthOutput](t, result)
	assert.Equal(t, "degraded", out.Status)
	assert.Equal(t, 3, out.Devices)
	assert.Equal(t, 2, out.Reachable)
}

func TestListDevices(t *testing.T) {
	rec := transporttest.NewRecorder().Respond("http://127.0.0.1:8002/status", http.StatusOK, `{"is_on":true}`)
	s := newTestServer(t, rec)

	result, err := s.handleListDevices(context.Background(), callRequest("list_devices", nil))
	require.NoError(t, err)

	out := decodeResult[ListDevicesOutput](t, result)
	require.Equal(t, 3, out.Count)
	assert.Equal(t, []string{"speaker_001", "light_001", "curtains_001"},
		[]string{out.Devices[0].ID, out.Devices[1].ID, out.Devices[2].ID})
	assert.Equal(t, "light", out.Devices[1].Kind)
	assert.Equal(t, true, out.Devices[1].Status["is_on"])
}

func TestGetDeviceStatus(t *testing.T) {
	rec := transporttest.NewRecorder().
		Respond("http://127.0.0.1:8001/status", http.StatusOK, `{"volume":30}`).
		Respond("http://127.0.0.1:8002/status", http.StatusServiceUnavailable, "")
	s := newTestServer(t, rec)
	ctx := context.Background()

	result, err := s.handleGetDeviceStatus(ctx, callRequest("get_device_status", map[string]any{"id": "speaker_001"}))
	require.NoError(t, err)
	out := decodeResult[GetDeviceStatusOutput](t, result)
	assert.Equal(t, float64(30), out.Status["volume"])

	tests := []struct {
		name string
		args map[string]any
	}{
		{"missing id", map[string]any{}},
		{"unknown device", map[string]any{"id": "missing_id"}},
		{"unavailable", map[string]any{"id": "light_001"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := s.handleGetDeviceStatus(ctx, callRequest("get_device_status", tt.args))
			require.NoError(t, err)
			assert.True(t, result.IsError)
		})
	}
}

func TestGetAllStatus(t *testing.T) {
	rec := transporttest.NewRecorder().Fail("http://127.0.0.1:8001/status", transporttest.ErrTimeout)
	s := newTestServer(t, rec)

	result, err := s.handleGetAllStatus(context.Background(), callRequest("get_all_status", nil))
	require.NoError(t, err)

	out := decodeResult[GetAllStatusOutput](t, result)
	assert.Equal(t, 2, out.Count)
}

func TestPerformAction(t *testing.T) {
	rec := transporttest.NewRecorder()
	s := newTestServer(t, rec)

	result, err := s.handlePerformAction(context.Background(), callRequest("perform_action", map[string]any{
		"id":     "curtains_001",
		"action": "position",
		"params": map[string]any{"value": float64(40)},
	}))
	require.NoError(t, err)

	out := decodeResult[ActionOutput](t, result)
	assert.True(t, out.Success)
	assert.Equal(t, []transporttest.Call{
		{Method: http.MethodPost, URL: "http://127.0.0.1:8003/position/40"},
	}, rec.Calls())
}

func TestPerformAction_Rejected(t *testing.T) {
	rec := transporttest.NewRecorder()
	s := newTestServer(t, rec)
	ctx := context.Background()

	tests := []struct {
		name string
		args map[string]any
	}{
		{"missing action", map[string]any{"id": "light_001"}},
		{"unknown device", map[string]any{"id": "missing_id", "action": "power", "params": map[string]any{"state": "on"}}},
		{"unknown action", map[string]any{"id": "light_001", "action": "dance"}},
		{"params not object", map[string]any{"id": "light_001", "action": "power", "params": "on"}},
		{"invalid params", map[string]any{"id": "light_001", "action": "power", "params": map[string]any{"state": "dim"}}},
		{"missing params", map[string]any{"id": "speaker_001", "action": "set_volume"}},
		{"foreign action", map[string]any{"id": "speaker_001", "action": "set_brightness", "params": map[string]any{"level": float64(5)}}},
		{"level out of range", map[string]any{"id": "speaker_001", "action": "set_volume", "params": map[string]any{"level": 1e20}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := s.handlePerformAction(ctx, callRequest("perform_action", tt.args))
			require.NoError(t, err)
			assert.True(t, result.IsError)
		})
	}

	assert.Zero(t, rec.Count())
}

func TestToggleDevice(t *testing.T) {
	rec := transporttest.NewRecorder().Respond("http://127.0.0.1:8001/status", http.StatusOK, `{"is_on":false}`)
	s := newTestServer(t, rec)

	result, err := s.handleToggleDevice(context.Background(), callRequest("toggle_device", map[string]any{"id": "speaker_001"}))
	require.NoError(t, err)
	assert.False(t, result.IsError)

	calls := rec.Calls()
	require.Len(t, calls, 2)
	assert.Equal(t, "http://127.0.0.1:8001/power/on", calls[1].URL)
}

func TestToggleDefaultTools(t *testing.T) {
	rec := transporttest.NewRecorder().
		Respond("http://127.0.0.1:8001/status", http.StatusOK, `{"is_on":true}`).
		Respond("http://127.0.0.1:8002/status", http.StatusOK, `{"is_on":false}`).
		Respond("http://127.0.0.1:8003/status", http.StatusOK, `{"is_open":false}`)
	s := newTestServer(t, rec)
	ctx := context.Background()

	for _, handle := range []func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error){
		s.handleToggleSpeaker, s.handleToggleLight, s.handleToggleCurtains,
	} {
		result, err := handle(ctx, callRequest("toggle", nil))
		require.NoError(t, err)
		assert.False(t, result.IsError, resultText(t, result))
	}

	var posts []string
	for _, call := range rec.Calls() {
		if call.Method == http.MethodPost {
			posts = append(posts, call.URL)
		}
	}
	assert.Equal(t, []string{
		"http://127.0.0.1:8001/power/off",
		"http://127.0.0.1:8002/power/on",
		"http://127.0.0.1:8003/power/open",
	}, posts)
}

func TestToggleDefaultTools_Unreachable(t *testing.T) {
	rec := transporttest.NewRecorder().Fail("http://127.0.0.1:8002/status", transporttest.ErrTimeout)
	s := newTestServer(t, rec)

	result, err := s.handleToggleLight(context.Background(), callRequest("toggle_light", nil))
	require.NoError(t, err)
	assert.True(t, result.IsError)
	assert.Contains(t, resultText(t, result), "light_001")
}

func TestSetLevelTools(t *testing.T) {
	rec := transporttest.NewRecorder()
	s := newTestServer(t, rec)
	ctx := context.Background()

	_, err := s.handleSetSpeakerVolume(ctx, callRequest("set_speaker_volume", map[string]any{"level": float64(15)}))
	require.NoError(t, err)
	_, err = s.handleSetLightBrightness(ctx, callRequest("set_light_brightness", map[string]any{"level": float64(80)}))
	require.NoError(t, err)
	_, err = s.handleSetCurtainsPosition(ctx, callRequest("set_curtains_position", map[string]any{"value": float64(0)}))
	require.NoError(t, err)

	assert.Equal(t, []transporttest.Call{
		{Method: http.MethodPost, URL: "http://127.0.0.1:8001/set_volume/15"},
		{Method: http.MethodPost, URL: "http://127.0.0.1:8002/set_brightness/80"},
		{Method: http.MethodPost, URL: "http://127.0.0.1:8003/position/0"},
	}, rec.Calls())
}

func TestSetLevelTools_InvalidArgs(t *testing.T) {
	rec := transporttest.NewRecorder()
	s := newTestServer(t, rec)
	ctx := context.Background()

	result, err := s.handleSetSpeakerVolume(ctx, callRequest("set_speaker_volume", map[string]any{}))
	require.NoError(t, err)
	assert.True(t, result.IsError)

	result, err = s.handleSetLightBrightness(ctx, callRequest("set_light_brightness", map[string]any{"level": 12.5}))
	require.NoError(t, err)
	assert.True(t, result.IsError)

	result, err = s.handleSetSpeakerVolume(ctx, callRequest("set_speaker_volume", map[string]any{"level": 1e20}))
	require.NoError(t, err)
	assert.True(t, result.IsError)

	assert.Zero(t, rec.Count())
}

func TestSetLevelTools_DeviceRejects(t *testing.T) {
	rec := transporttest.NewRecorder().Respond("http://127.0.0.1:8003/position/50", http.StatusBadRequest, "")
	s := newTestServer(t, rec)

	result, err := s.handleSetCurtainsPosition(context.Background(), callRequest("set_curtains_position", map[string]any{"value": 50}))
	require.NoError(t, err)
	assert.True(t, result.IsError)
	assert.Contains(t, resultText(t, result), "curtains_001")
}
