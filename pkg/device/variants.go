package device

import (
	"context"
	"fmt"

	"github.com/urmzd/smartapp/pkg/transport"
)

// Speaker speaks power (on/off) and set_volume.
type Speaker struct{ base }

// NewSpeaker creates a speaker reachable at host:port.
func NewSpeaker(id, host string, port int, t transport.Transport) *Speaker {
	return &Speaker{base{id: id, host: host, port: port, transport: t}}
}

// Kind implements Device.
func (s *Speaker) Kind() Kind { return KindSpeaker }

// PerformAction implements Device.
func (s *Speaker) PerformAction(ctx context.Context, action string, params Params) (bool, error) {
	switch action {
	case ActionPower:
		state, err := powerState(KindSpeaker, params)
		if err != nil {
			return false, err
		}
		return s.post(ctx, ActionPower, state)
	case ActionSetVolume:
		return s.postLevel(ctx, ActionSetVolume, ParamLevel, params)
	default:
		return false, unsupported(KindSpeaker, action)
	}
}

// Light speaks power (on/off) and set_brightness.
type Light struct{ base }

// NewLight creates a light reachable at host:port.
func NewLight(id, host string, port int, t transport.Transport) *Light {
	return &Light{base{id: id, host: host, port: port, transport: t}}
}

// Kind implements Device.
func (l *Light) Kind() Kind { return KindLight }

// PerformAction implements Device.
func (l *Light) PerformAction(ctx context.Context, action string, params Params) (bool, error) {
	switch action {
	case ActionPower:
		state, err := powerState(KindLight, params)
		if err != nil {
			return false, err
		}
		return l.post(ctx, ActionPower, state)
	case ActionSetBrightness:
		return l.postLevel(ctx, ActionSetBrightness, ParamLevel, params)
	default:
		return false, unsupported(KindLight, action)
	}
}

// Curtains speak power (open/close) and position.
type Curtains struct{ base }

// NewCurtains creates curtains reachable at host:port.
func NewCurtains(id, host string, port int, t transport.Transport) *Curtains {
	return &Curtains{base{id: id, host: host, port: port, transport: t}}
}

// Kind implements Device.
func (c *Curtains) Kind() Kind { return KindCurtains }

// PerformAction implements Device. The abstract on/off power states are
// translated to open/close.
func (c *Curtains) PerformAction(ctx context.Context, action string, params Params) (bool, error) {
	switch action {
	case ActionPower:
		state, err := powerState(KindCurtains, params)
		if err != nil {
			return false, err
		}
		return c.post(ctx, ActionPower, state)
	case ActionPosition:
		return c.postLevel(ctx, ActionPosition, ParamValue, params)
	default:
		return false, unsupported(KindCurtains, action)
	}
}

// powerState maps the state parameter onto the kind's power vocabulary.
func powerState(kind Kind, params Params) (string, error) {
	state, ok := params.String(ParamState)
	if !ok {
		return "", fmt.Errorf("%w: power requires %q", ErrInvalidParams, ParamState)
	}

	on, off := kind.PowerWords()
	switch state {
	case on, "on", "open":
		return on, nil
	case off, "off", "close":
		return off, nil
	default:
		return "", fmt.Errorf("%w: %s power state %q", ErrInvalidParams, kind, state)
	}
}

// New builds the variant for kind. A zero port selects the kind's default.
func New(kind Kind, id, host string, port int, t transport.Transport) (Device, error) {
	if host == "" {
		host = DefaultHost
	}
	if port == 0 {
		port = kind.DefaultPort()
	}

	switch kind {
	case KindSpeaker:
		return NewSpeaker(id, host, port, t), nil
	case KindLight:
		return NewLight(id, host, port, t), nil
	case KindCurtains:
		return NewCurtains(id, host, port, t), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
}
