package device

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"
)

// Device is the capability contract shared by every device kind.
// Host and Port locate the device's HTTP microservice; they are not
// checked for reachability at registration time.
type Device interface {
	// ID returns the unique device identifier
	ID() string

	// Host returns the device microservice host
	Host() string

	// Port returns the device microservice port
	Port() int

	// Kind returns which variant this device is
	Kind() Kind

	// Status queries the device's /status endpoint. Failures are returned
	// as errors; no default payload is substituted.
	Status(ctx context.Context) (Status, error)

	// PerformAction translates action into the device's own vocabulary
	// and issues it. Unsupported actions fail with ErrUnsupported.
	PerformAction(ctx context.Context, action string, params Params) (bool, error)
}

// Kind identifies a device variant.
type Kind string

// Device kinds
const (
	KindSpeaker  Kind = "speaker"
	KindLight    Kind = "light"
	KindCurtains Kind = "curtains"
)

// Kinds lists every supported kind.
var Kinds = []Kind{KindSpeaker, KindLight, KindCurtains}

// ParseKind maps a configuration name to a Kind. The legacy factory names
// (smart_speaker, smart_light, smart_curtains) are accepted too.
func ParseKind(name string) (Kind, error) {
	switch strings.TrimPrefix(strings.ToLower(strings.TrimSpace(name)), "smart_") {
	case "speaker":
		return KindSpeaker, nil
	case "light":
		return KindLight, nil
	case "curtains":
		return KindCurtains, nil
	default:
		return "", fmt.Errorf("%w: %q (want one of %v)", ErrUnknownKind, name, Kinds)
	}
}

// Actions returns the actions the kind's microservice accepts.
func (k Kind) Actions() []string {
	switch k {
	case KindSpeaker:
		return []string{ActionPower, ActionSetVolume}
	case KindLight:
		return []string{ActionPower, ActionSetBrightness}
	case KindCurtains:
		return []string{ActionPower, ActionPosition}
	default:
		return nil
	}
}

// Supports reports whether the kind accepts action.
func (k Kind) Supports(action string) bool {
	return slices.Contains(k.Actions(), action)
}

// DefaultPort returns the port a kind's microservice listens on by default.
func (k Kind) DefaultPort() int {
	switch k {
	case KindSpeaker:
		return 8001
	case KindLight:
		return 8002
	case KindCurtains:
		return 8003
	default:
		return 0
	}
}

// PowerWords returns the on and off words of the kind's power vocabulary.
func (k Kind) PowerWords() (on, off string) {
	if k == KindCurtains {
		return "open", "close"
	}
	return "on", "off"
}

// Default registrations
const (
	DefaultHost       = "127.0.0.1"
	DefaultSpeakerID  = "speaker_001"
	DefaultLightID    = "light_001"
	DefaultCurtainsID = "curtains_001"
)

// Status is the device-defined payload returned by /status.
// No schema is enforced; read fields defensively.
type Status map[string]any

// Bool reads a boolean field. ok is false when the key is absent or is
// not a boolean.
func (s Status) Bool(key string) (value bool, ok bool) {
	v, present := s[key]
	if !present {
		return false, false
	}
	b, isBool := v.(bool)
	return b, isBool
}

// IsOn reports the power state: is_on if present, else is_open, else false.
// A device exposing neither field is treated as off/closed.
func (s Status) IsOn() bool {
	if on, ok := s.Bool("is_on"); ok {
		return on
	}
	if open, ok := s.Bool("is_open"); ok {
		return open
	}
	return false
}

// Params carries loosely typed action parameters.
type Params map[string]any

// String reads a string parameter.
func (p Params) String(key string) (string, bool) {
	v, ok := p[key]
	if !ok || v == nil {
		return "", false
	}
	s, ok := v.(string)
	if !ok || s == "" {
		return "", false
	}
	return s, true
}

// Int reads an integer parameter. Go integers, integral floats,
// json.Number and numeric strings are accepted. Values that do not fit
// in an int are rejected.
func (p Params) Int(key string) (int, bool) {
	v, ok := p[key]
	if !ok || v == nil {
		return 0, false
	}
	switch n := v.(type) {
	case int:
		return n, true
	case int32:
		return int(n), true
	case int64:
		return int(n), true
	case float64:
		// float64(math.MinInt) is exact; its negation is one past MaxInt
		if n != math.Trunc(n) || n < float64(math.MinInt) || n >= -float64(math.MinInt) {
			return 0, false
		}
		return int(n), true
	case float32:
		return Params{key: float64(n)}.Int(key)
	case json.Number:
		if i, err := strconv.Atoi(n.String()); err == nil {
			return i, true
		}
		f, err := n.Float64()
		if err != nil {
			return 0, false
		}
		return Params{key: f}.Int(key)
	case string:
		i, err := strconv.Atoi(strings.TrimSpace(n))
		if err != nil {
			return 0, false
		}
		return i, true
	default:
		return 0, false
	}
}

// Action names understood by the device microservices. Each doubles as
// the first path segment of its POST endpoint.
const (
	ActionPower         = "power"
	ActionSetVolume     = "set_volume"
	ActionSetBrightness = "set_brightness"
	ActionPosition      = "position"
)

// Action parameter keys
const (
	ParamState = "state"
	ParamLevel = "level"
	ParamValue = "value"
)
