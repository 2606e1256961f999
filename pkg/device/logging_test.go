package device

import (
	"bytes"
	"context"
	"net/http"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urmzd/smartapp/pkg/transport/transporttest"
)

func TestLogging_ForwardsIdentity(t *testing.T) {
	inner := NewCurtains("curtains_001", "10.0.0.9", 9003, transporttest.NewRecorder())
	d := WithLogging(inner, zerolog.Nop())

	assert.Equal(t, "curtains_001", d.ID())
	assert.Equal(t, "10.0.0.9", d.Host())
	assert.Equal(t, 9003, d.Port())
	assert.Equal(t, KindCurtains, d.Kind())
	assert.Same(t, inner, d.Unwrap())
}

func TestLogging_PassesResultsThrough(t *testing.T) {
	rec := transporttest.NewRecorder().
		Respond("http://127.0.0.1:8001/status", http.StatusOK, `{"is_on":false,"level":3}`).
		Respond("http://127.0.0.1:8001/power/on", http.StatusBadRequest, "")

	var buf bytes.Buffer
	logger := zerolog.New(&buf).Level(zerolog.DebugLevel)
	d := WithLogging(NewSpeaker("speaker_001", "127.0.0.1", 8001, rec), logger)
	ctx := context.Background()

	status, err := d.Status(ctx)
	require.NoError(t, err)
	assert.Equal(t, Status{"is_on": false, "level": float64(3)}, status)

	ok, err := d.PerformAction(ctx, ActionPower, Params{ParamState: "on"})
	assert.NoError(t, err)
	assert.False(t, ok)

	out := buf.String()
	assert.Contains(t, out, `"device_id":"speaker_001"`)
	assert.Contains(t, out, "Getting device status")
	assert.Contains(t, out, "Performing action")
	assert.Contains(t, out, `"result":false`)
	assert.Equal(t, 2, rec.Count())
}

func TestLogging_PreservesErrors(t *testing.T) {
	rec := transporttest.NewRecorder().
		Fail("http://127.0.0.1:8002/status", transporttest.ErrTimeout)

	var buf bytes.Buffer
	d := WithLogging(NewLight("light_001", "127.0.0.1", 8002, rec), zerolog.New(&buf).Level(zerolog.WarnLevel))
	ctx := context.Background()

	status, err := d.Status(ctx)
	assert.Nil(t, status)
	assert.ErrorIs(t, err, ErrUnreachable)

	ok, err := d.PerformAction(ctx, ActionPosition, Params{ParamValue: 1})
	assert.False(t, ok)
	assert.ErrorIs(t, err, ErrUnsupported)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Len(t, lines, 2)
	for _, line := range lines {
		assert.Contains(t, line, `"level":"warn"`)
	}
}
