package action

import (
	"context"
	"net/http"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urmzd/smartapp/pkg/device"
	"github.com/urmzd/smartapp/pkg/device/schema"
	"github.com/urmzd/smartapp/pkg/transport/transporttest"
)

func TestTable_PowerIssuesOnePost(t *testing.T) {
	rec := transporttest.NewRecorder()
	tbl := NewTable(zerolog.Nop())

	power, ok := tbl.Lookup("power")
	require.True(t, ok)

	speaker := device.NewSpeaker("speaker_001", "127.0.0.1", 8001, rec)
	assert.True(t, power(context.Background(), speaker, device.Params{"state": "on"}))
	assert.Equal(t, []transporttest.Call{
		{Method: http.MethodPost, URL: "http://127.0.0.1:8001/power/on"},
	}, rec.Calls())
}

func TestTable_Paths(t *testing.T) {
	rec := transporttest.NewRecorder()

	tests := []struct {
		name   string
		device device.Device
		params device.Params
		url    string
	}{
		{"set_volume", device.NewSpeaker("s", "127.0.0.1", 8001, rec), device.Params{"level": 75}, "http://127.0.0.1:8001/set_volume/75"},
		{"set_brightness", device.NewLight("l", "127.0.0.1", 8002, rec), device.Params{"level": float64(40)}, "http://127.0.0.1:8002/set_brightness/40"},
		{"position", device.NewCurtains("c", "127.0.0.1", 8003, rec), device.Params{"value": "30"}, "http://127.0.0.1:8003/position/30"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec.Reset()
			strategy, ok := NewTable(zerolog.Nop()).Lookup(tt.name)
			require.True(t, ok)

			assert.True(t, strategy(context.Background(), tt.device, tt.params))
			require.Len(t, rec.Calls(), 1)
			assert.Equal(t, tt.url, rec.Calls()[0].URL)
		})
	}
}

func TestTable_CurtainsPowerUsesOpenClose(t *testing.T) {
	rec := transporttest.NewRecorder()
	power, _ := NewTable(zerolog.Nop()).Lookup("power")
	curtains := device.NewCurtains("curtains_001", "127.0.0.1", 8003, rec)
	ctx := context.Background()

	assert.True(t, power(ctx, curtains, device.Params{"state": "on"}))
	assert.True(t, power(ctx, curtains, device.Params{"state": "off"}))
	assert.Equal(t, []transporttest.Call{
		{Method: http.MethodPost, URL: "http://127.0.0.1:8003/power/open"},
		{Method: http.MethodPost, URL: "http://127.0.0.1:8003/power/close"},
	}, rec.Calls())
}

func TestTable_ForeignActionMakesNoCall(t *testing.T) {
	rec := transporttest.NewRecorder()
	tbl := NewTable(zerolog.Nop())
	ctx := context.Background()

	brightness, _ := tbl.Lookup("set_brightness")
	assert.False(t, brightness(ctx, device.NewSpeaker("s", "127.0.0.1", 8001, rec), device.Params{"level": 5}))

	position, _ := tbl.Lookup("position")
	assert.False(t, position(ctx, device.NewLight("l", "127.0.0.1", 8002, rec), device.Params{"value": 3}))

	assert.Zero(t, rec.Count())
}

func TestTable_FailuresAreFalse(t *testing.T) {
	rec := transporttest.NewRecorder().
		Respond("http://127.0.0.1:8002/power/off", http.StatusInternalServerError, "").
		Fail("http://127.0.0.1:8002/set_brightness/10", transporttest.ErrTimeout)
	tbl := NewTable(zerolog.Nop())
	ctx := context.Background()
	light := device.NewLight("light_001", "127.0.0.1", 8002, rec)

	power, _ := tbl.Lookup("power")
	assert.False(t, power(ctx, light, device.Params{"state": "off"}))

	brightness, _ := tbl.Lookup("set_brightness")
	assert.False(t, brightness(ctx, light, device.Params{"level": 10}))

	assert.Equal(t, 2, rec.Count())
}

func TestTable_MissingParamMakesNoCall(t *testing.T) {
	rec := transporttest.NewRecorder()
	tbl := NewTable(zerolog.Nop())
	speaker := device.NewSpeaker("speaker_001", "127.0.0.1", 8001, rec)

	for _, name := range tbl.Names() {
		strategy, ok := tbl.Lookup(string(name))
		require.True(t, ok)
		assert.False(t, strategy(context.Background(), speaker, nil), name)
	}
	assert.Zero(t, rec.Count())
}

func TestTable_Params(t *testing.T) {
	tbl := NewTable(zerolog.Nop())

	got, err := tbl.Params("set_volume", device.Params{"level": float64(20), "extra": true})
	require.NoError(t, err)
	assert.Equal(t, device.Params{"level": 20}, got)

	_, err = tbl.Params("set_volume", device.Params{"level": 1e20})
	assert.ErrorIs(t, err, device.ErrInvalidParams)

	_, err = tbl.Params("power", device.Params{"state": 1})
	assert.ErrorIs(t, err, device.ErrInvalidParams)

	_, err = tbl.Params("dance", nil)
	assert.ErrorIs(t, err, device.ErrUnsupported)
}

func TestTable_UnknownAction(t *testing.T) {
	_, ok := NewTable(zerolog.Nop()).Lookup("unsupported_action")
	assert.False(t, ok)
	assert.Nil(t, ParamSchema("unsupported_action"))
}

func TestParamSchemas_Compile(t *testing.T) {
	v := schema.NewValidator()
	tbl := NewTable(zerolog.Nop())

	valid := map[Name]device.Params{
		Power:         {"state": "close"},
		SetVolume:     {"level": 10},
		SetBrightness: {"level": 99},
		Position:      {"value": 0},
	}
	for _, name := range tbl.Names() {
		require.NotNil(t, ParamSchema(name), name)
		assert.NoError(t, v.Validate(ParamSchema(name), valid[name]), name)
		assert.Error(t, v.Validate(ParamSchema(name), device.Params{}), name)
	}
}
