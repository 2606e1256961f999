// Package action maps action names to the handlers that dispatch them to
// a registered device.
package action

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/urmzd/smartapp/pkg/device"
)

// Name is an action name. It doubles as the endpoint path segment.
type Name string

// Supported actions
const (
	Power         Name = device.ActionPower
	SetVolume     Name = device.ActionSetVolume
	SetBrightness Name = device.ActionSetBrightness
	Position      Name = device.ActionPosition
)

// Strategy issues one action against d and reports success.
// Ordinary transport failures are reported as false, never as panics.
type Strategy func(ctx context.Context, d device.Device, params device.Params) bool

// param describes the single parameter an action carries.
type param struct {
	key     string
	integer bool
}

// Table is the immutable action-name to Strategy mapping.
type Table struct {
	params     map[Name]param
	strategies map[Name]Strategy
	logger     zerolog.Logger
}

// NewTable builds the table.
func NewTable(logger zerolog.Logger) *Table {
	tbl := &Table{
		params: map[Name]param{
			Power:         {key: device.ParamState},
			SetVolume:     {key: device.ParamLevel, integer: true},
			SetBrightness: {key: device.ParamLevel, integer: true},
			Position:      {key: device.ParamValue, integer: true},
		},
		logger: logger.With().Str("component", "action").Logger(),
	}
	tbl.strategies = make(map[Name]Strategy, len(tbl.params))
	for name := range tbl.params {
		tbl.strategies[name] = tbl.dispatch(name)
	}
	return tbl
}

// Lookup returns the strategy for name. ok is false for unsupported actions.
func (t *Table) Lookup(name string) (Strategy, bool) {
	s, ok := t.strategies[Name(name)]
	return s, ok
}

// Names lists the supported actions in a stable order.
func (t *Table) Names() []Name {
	return []Name{Power, SetVolume, SetBrightness, Position}
}

// Params extracts the parameter name carries from params. Integer
// parameters are normalised to int. Errors wrap device.ErrInvalidParams,
// or device.ErrUnsupported for unknown actions.
func (t *Table) Params(name string, params device.Params) (device.Params, error) {
	p, ok := t.params[Name(name)]
	if !ok {
		return nil, fmt.Errorf("%w: %q", device.ErrUnsupported, name)
	}

	if p.integer {
		n, ok := params.Int(p.key)
		if !ok {
			return nil, fmt.Errorf("%w: %s requires integer %q", device.ErrInvalidParams, name, p.key)
		}
		return device.Params{p.key: n}, nil
	}

	s, ok := params.String(p.key)
	if !ok {
		return nil, fmt.Errorf("%w: %s requires %q", device.ErrInvalidParams, name, p.key)
	}
	return device.Params{p.key: s}, nil
}

// dispatch hands the extracted parameter to the device, which issues
// exactly one POST in its own vocabulary.
func (t *Table) dispatch(name Name) Strategy {
	return func(ctx context.Context, d device.Device, params device.Params) bool {
		args, err := t.Params(string(name), params)
		if err != nil {
			t.logger.Warn().Err(err).Str("device_id", d.ID()).Str("action", string(name)).Msg("Invalid action parameters")
			return false
		}

		ok, err := d.PerformAction(ctx, string(name), args)
		if err != nil {
			t.logger.Error().Err(err).Str("device_id", d.ID()).Str("action", string(name)).Msg("Action failed")
			return false
		}
		if !ok {
			t.logger.Warn().Str("device_id", d.ID()).Str("action", string(name)).Msg("Device rejected action")
		}
		return ok
	}
}

var paramSchemas = map[Name]json.RawMessage{
	Power: json.RawMessage(`{
		"type": "object",
		"properties": {"state": {"type": "string", "enum": ["on", "off", "open", "close"]}},
		"required": ["state"]
	}`),
	SetVolume: json.RawMessage(`{
		"type": "object",
		"properties": {"level": {"type": "integer"}},
		"required": ["level"]
	}`),
	SetBrightness: json.RawMessage(`{
		"type": "object",
		"properties": {"level": {"type": "integer"}},
		"required": ["level"]
	}`),
	Position: json.RawMessage(`{
		"type": "object",
		"properties": {"value": {"type": "integer"}},
		"required": ["value"]
	}`),
}

// ParamSchema returns the JSON Schema of name's parameters, or nil for
// unsupported actions.
func ParamSchema(name Name) json.RawMessage {
	return paramSchemas[name]
}
