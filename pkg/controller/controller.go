// Package controller is the application layer on top of the facade: it
// registers the configured devices and offers the toggle and set-level
// operations the user-facing surfaces call.
package controller

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/urmzd/smartapp/pkg/action"
	"github.com/urmzd/smartapp/pkg/config"
	"github.com/urmzd/smartapp/pkg/device"
	"github.com/urmzd/smartapp/pkg/device/schema"
	"github.com/urmzd/smartapp/pkg/facade"
	"github.com/urmzd/smartapp/pkg/transport"
)

// Controller is constructed once by the entry point and passed to every
// surface that needs it.
type Controller struct {
	facade    *facade.Facade
	logger    zerolog.Logger
	deviceLog zerolog.Logger
}

// New creates a controller over f.
func New(f *facade.Facade, logger zerolog.Logger) *Controller {
	return &Controller{
		facade:    f,
		logger:    logger.With().Str("component", "controller").Logger(),
		deviceLog: logger.With().Str("component", "device").Logger(),
	}
}

// FromConfig wires the transport, action table, validating facade and
// configured devices into a ready controller.
func FromConfig(cfg *config.Config, logger zerolog.Logger) (*Controller, error) {
	t := transport.NewHTTPTransport(cfg.Transport.Timeout)

	f := facade.New(
		action.NewTable(logger),
		facade.WithLogger(logger),
		facade.WithValidator(schema.NewValidator()),
		facade.WithConcurrency(cfg.Status.Concurrency),
	)

	c := New(f, logger)
	if err := c.RegisterDevices(cfg.Devices, t); err != nil {
		return nil, err
	}
	return c, nil
}

// Facade returns the underlying facade.
func (c *Controller) Facade() *facade.Facade {
	return c.facade
}

// RegisterDevices builds each configured device, wraps it in the logging
// decorator and registers it.
func (c *Controller) RegisterDevices(specs []config.DeviceConfig, t transport.Transport) error {
	for _, spec := range specs {
		kind, err := device.ParseKind(spec.Kind)
		if err != nil {
			return fmt.Errorf("device %q: %w", spec.ID, err)
		}
		d, err := device.New(kind, spec.ID, spec.Host, spec.Port, t)
		if err != nil {
			return fmt.Errorf("device %q: %w", spec.ID, err)
		}
		c.RegisterDevice(device.WithLogging(d, c.deviceLog))
	}
	c.logger.Info().Int("count", c.facade.Len()).Msg("Devices registered")
	return nil
}

// RegisterDevice registers d and returns its id.
func (c *Controller) RegisterDevice(d device.Device) string {
	id := c.facade.RegisterDevice(d)
	c.logger.Debug().Str("device_id", id).Str("kind", string(d.Kind())).Str("host", d.Host()).Int("port", d.Port()).Msg("Device registered")
	return id
}

// Devices returns the registered devices in registration order.
func (c *Controller) Devices() []device.Device {
	return c.facade.Devices()
}

// Status returns the status of one device.
func (c *Controller) Status(ctx context.Context, id string) (device.Status, bool) {
	return c.facade.GetDeviceStatus(ctx, id)
}

// AllStatus returns the status of every reachable device.
func (c *Controller) AllStatus(ctx context.Context) []device.Status {
	return c.facade.GetAllStatus(ctx)
}

// PerformAction dispatches an arbitrary action.
func (c *Controller) PerformAction(ctx context.Context, id, action string, params device.Params) bool {
	return c.facade.PerformDeviceAction(ctx, id, action, params)
}

// Toggle flips the power state of the device registered under id. The
// current state is is_on, else is_open, else off. Nothing is sent when
// the status cannot be read or is empty.
func (c *Controller) Toggle(ctx context.Context, id string) bool {
	d, ok := c.facade.Device(id)
	if !ok {
		return false
	}

	status, ok := c.facade.GetDeviceStatus(ctx, id)
	if !ok || len(status) == 0 {
		c.logger.Warn().Str("device_id", id).Msg("Toggle skipped, status unavailable")
		return false
	}

	on, off := d.Kind().PowerWords()
	next := on
	if status.IsOn() {
		next = off
	}
	return c.facade.PerformDeviceAction(ctx, id, device.ActionPower, device.Params{device.ParamState: next})
}

// ToggleSpeaker toggles the default speaker.
func (c *Controller) ToggleSpeaker(ctx context.Context) bool {
	return c.Toggle(ctx, device.DefaultSpeakerID)
}

// ToggleLight toggles the default light.
func (c *Controller) ToggleLight(ctx context.Context) bool {
	return c.Toggle(ctx, device.DefaultLightID)
}

// ToggleCurtains opens or closes the default curtains.
func (c *Controller) ToggleCurtains(ctx context.Context) bool {
	return c.Toggle(ctx, device.DefaultCurtainsID)
}

// SetSpeakerVolume sets the default speaker's volume.
func (c *Controller) SetSpeakerVolume(ctx context.Context, level int) bool {
	return c.facade.PerformDeviceAction(ctx, device.DefaultSpeakerID, device.ActionSetVolume, device.Params{device.ParamLevel: level})
}

// SetLightBrightness sets the default light's brightness.
func (c *Controller) SetLightBrightness(ctx context.Context, level int) bool {
	return c.facade.PerformDeviceAction(ctx, device.DefaultLightID, device.ActionSetBrightness, device.Params{device.ParamLevel: level})
}

// SetCurtainsPosition moves the default curtains.
func (c *Controller) SetCurtainsPosition(ctx context.Context, value int) bool {
	return c.facade.PerformDeviceAction(ctx, device.DefaultCurtainsID, device.ActionPosition, device.Params{device.ParamValue: value})
}
