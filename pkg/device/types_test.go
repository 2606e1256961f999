package device

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseKind(t *testing.T) {
	for name, want := range map[string]Kind{
		"speaker":        KindSpeaker,
		"smart_speaker":  KindSpeaker,
		"Light":          KindLight,
		"smart_light":    KindLight,
		" curtains ":     KindCurtains,
		"smart_curtains": KindCurtains,
	} {
		got, err := ParseKind(name)
		require.NoError(t, err, name)
		assert.Equal(t, want, got, name)
	}

	_, err := ParseKind("unknown_device")
	assert.ErrorIs(t, err, ErrUnknownKind)
	assert.Contains(t, err.Error(), "unknown device type")
	assert.Contains(t, err.Error(), "[speaker light curtains]")
}

func TestKind_Supports(t *testing.T) {
	for _, kind := range Kinds {
		assert.True(t, kind.Supports(ActionPower), kind)
	}
	assert.True(t, KindSpeaker.Supports(ActionSetVolume))
	assert.False(t, KindSpeaker.Supports(ActionSetBrightness))
	assert.True(t, KindLight.Supports(ActionSetBrightness))
	assert.False(t, KindLight.Supports(ActionPosition))
	assert.True(t, KindCurtains.Supports(ActionPosition))
	assert.False(t, KindCurtains.Supports(ActionSetVolume))
	assert.False(t, Kind("fan").Supports(ActionPower))
}

func TestStatus_IsOn(t *testing.T) {
	assert.True(t, Status{"is_on": true}.IsOn())
	assert.False(t, Status{"is_on": false}.IsOn())
	assert.True(t, Status{"is_open": true}.IsOn())
	assert.False(t, Status{"is_on": false, "is_open": true}.IsOn())
	assert.False(t, Status{}.IsOn())
	assert.False(t, Status{"is_on": "yes"}.IsOn())
	assert.False(t, Status(nil).IsOn())
}

func TestParams_Int(t *testing.T) {
	p := Params{
		"int":    42,
		"int64":  int64(7),
		"float":  float64(30),
		"frac":   1.5,
		"number": json.Number("12"),
		"expnum": json.Number("1e2"),
		"string": " 9 ",
		"bad":    "x",
		"nil":    nil,
		"huge":   1e20,
		"tiny":   -1e20,
		"bignum": json.Number("1e20"),
		"edge":   float64(1 << 63),
	}

	for key, want := range map[string]int{"int": 42, "int64": 7, "float": 30, "number": 12, "expnum": 100, "string": 9} {
		got, ok := p.Int(key)
		assert.True(t, ok, key)
		assert.Equal(t, want, got, key)
	}
	for _, key := range []string{"frac", "bad", "nil", "missing", "huge", "tiny", "bignum", "edge"} {
		_, ok := p.Int(key)
		assert.False(t, ok, key)
	}
}

func TestParams_String(t *testing.T) {
	p := Params{"state": "on", "empty": "", "num": 1}

	s, ok := p.String("state")
	assert.True(t, ok)
	assert.Equal(t, "on", s)

	_, ok = p.String("empty")
	assert.False(t, ok)
	_, ok = p.String("num")
	assert.False(t, ok)
}

func TestKind_PowerWords(t *testing.T) {
	on, off := KindCurtains.PowerWords()
	assert.Equal(t, "open", on)
	assert.Equal(t, "close", off)

	on, off = KindLight.PowerWords()
	assert.Equal(t, "on", on)
	assert.Equal(t, "off", off)
}
