// Package facade owns the device registry and routes status and action
// requests to the devices. Transport failures never escape it: they are
// logged and reported as a missing status or a false result.
package facade

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/rs/zerolog"
	"github.com/urmzd/smartapp/pkg/action"
	"github.com/urmzd/smartapp/pkg/device"
	"github.com/urmzd/smartapp/pkg/device/schema"
	"golang.org/x/sync/errgroup"
)

// ErrUnknownAction indicates the action name has no strategy.
var ErrUnknownAction = errors.New("unknown action")

// DefaultConcurrency bounds the status calls GetAllStatus runs at once.
const DefaultConcurrency = 4

// Facade is the registry of devices plus the action strategy table.
// All methods are safe for concurrent use.
type Facade struct {
	mu      sync.RWMutex
	devices map[string]device.Device
	order   []string

	actions     *action.Table
	validator   *schema.Validator
	logger      zerolog.Logger
	concurrency int
}

// Option configures a Facade.
type Option func(*Facade)

// WithLogger sets the logger used for absorbed failures.
func WithLogger(logger zerolog.Logger) Option {
	return func(f *Facade) {
		f.logger = logger
	}
}

// WithValidator enables schema validation of action parameters.
func WithValidator(v *schema.Validator) Option {
	return func(f *Facade) {
		f.validator = v
	}
}

// WithConcurrency bounds concurrent status calls in GetAllStatus.
// n <= 1 makes aggregation sequential.
func WithConcurrency(n int) Option {
	return func(f *Facade) {
		if n < 1 {
			n = 1
		}
		f.concurrency = n
	}
}

// New creates an empty Facade dispatching actions through actions.
func New(actions *action.Table, opts ...Option) *Facade {
	f := &Facade{
		devices:     make(map[string]device.Device),
		actions:     actions,
		logger:      zerolog.Nop(),
		concurrency: DefaultConcurrency,
	}
	for _, opt := range opts {
		opt(f)
	}
	f.logger = f.logger.With().Str("component", "facade").Logger()
	return f
}

// RegisterDevice stores d under its id and returns the id. Registering an
// id again replaces the previous device but keeps its position.
func (f *Facade) RegisterDevice(d device.Device) string {
	id := d.ID()

	f.mu.Lock()
	defer f.mu.Unlock()

	if _, exists := f.devices[id]; !exists {
		f.order = append(f.order, id)
	} else {
		f.logger.Debug().Str("device_id", id).Msg("Replacing registered device")
	}
	f.devices[id] = d
	return id
}

// Device returns the device registered under id.
func (f *Facade) Device(id string) (device.Device, bool) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	d, ok := f.devices[id]
	return d, ok
}

// Devices returns the registered devices in registration order.
func (f *Facade) Devices() []device.Device {
	f.mu.RLock()
	defer f.mu.RUnlock()
	out := make([]device.Device, 0, len(f.order))
	for _, id := range f.order {
		out = append(out, f.devices[id])
	}
	return out
}

// Len returns the number of registered devices.
func (f *Facade) Len() int {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return len(f.order)
}

// Actions returns the supported action names.
func (f *Facade) Actions() []action.Name {
	return f.actions.Names()
}

// GetDeviceStatus returns the device's status payload. ok is false when
// id is unknown or the device could not report its status.
func (f *Facade) GetDeviceStatus(ctx context.Context, id string) (device.Status, bool) {
	d, ok := f.Device(id)
	if !ok {
		return nil, false
	}

	status, err := d.Status(ctx)
	if err != nil {
		f.logger.Error().Err(err).Str("device_id", id).Msg("Error getting status")
		return nil, false
	}
	return status, true
}

// CheckAction reports whether name is a supported action and params
// satisfy its schema. It makes no network calls.
func (f *Facade) CheckAction(name string, params device.Params) error {
	if _, ok := f.actions.Lookup(name); !ok {
		return fmt.Errorf("%w: %q", ErrUnknownAction, name)
	}
	if f.validator != nil {
		if err := f.validator.Validate(action.ParamSchema(action.Name(name)), params); err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
	}
	if _, err := f.actions.Params(name, params); err != nil {
		return err
	}
	return nil
}

// CheckDeviceAction runs CheckAction and also requires id to be
// registered and its kind to accept name. It makes no network calls.
func (f *Facade) CheckDeviceAction(id, name string, params device.Params) error {
	_, err := f.checkDeviceAction(id, name, params)
	return err
}

func (f *Facade) checkDeviceAction(id, name string, params device.Params) (device.Device, error) {
	d, ok := f.Device(id)
	if !ok {
		return nil, fmt.Errorf("%w: %q", device.ErrNotFound, id)
	}
	if err := f.CheckAction(name, params); err != nil {
		return nil, err
	}
	if !d.Kind().Supports(name) {
		return nil, fmt.Errorf("%w: %s does not support %q", device.ErrUnsupported, d.Kind(), name)
	}
	return d, nil
}

// PerformDeviceAction dispatches name to the device registered under id.
// Unknown ids, unknown or unsupported actions and rejected parameters
// return false without touching the network; otherwise the strategy's
// result is returned as is.
func (f *Facade) PerformDeviceAction(ctx context.Context, id, name string, params device.Params) bool {
	d, err := f.checkDeviceAction(id, name, params)
	if err != nil {
		f.logger.Warn().Err(err).Str("device_id", id).Str("action", name).Msg("Action rejected")
		return false
	}

	strategy, _ := f.actions.Lookup(name)
	return strategy(ctx, d, params)
}

// GetAllStatus collects the status of every device in registration
// order. Devices whose status is unavailable or empty are left out.
func (f *Facade) GetAllStatus(ctx context.Context) []device.Status {
	ids := f.ids()
	results := make([]device.Status, len(ids))

	var g errgroup.Group
	g.SetLimit(f.concurrency)
	for i, id := range ids {
		g.Go(func() error {
			if status, ok := f.GetDeviceStatus(ctx, id); ok {
				results[i] = status
			}
			return nil
		})
	}
	_ = g.Wait()

	out := make([]device.Status, 0, len(results))
	for _, status := range results {
		if len(status) > 0 {
			out = append(out, status)
		}
	}
	return out
}

func (f *Facade) ids() []string {
	f.mu.RLock()
	defer f.mu.RUnlock()
	ids := make([]string, len(f.order))
	copy(ids, f.order)
	return ids
}
