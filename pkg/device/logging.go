package device

import (
	"context"
	"time"

	"github.com/rs/zerolog"
)

// Logging wraps a Device and logs every capability call. Identity,
// results and errors of the inner device pass through unchanged.
type Logging struct {
	inner  Device
	logger zerolog.Logger
}

// WithLogging decorates d.
func WithLogging(d Device, logger zerolog.Logger) *Logging {
	return &Logging{
		inner:  d,
		logger: logger.With().Str("device_id", d.ID()).Str("kind", string(d.Kind())).Logger(),
	}
}

// Unwrap returns the decorated device.
func (l *Logging) Unwrap() Device { return l.inner }

func (l *Logging) ID() string   { return l.inner.ID() }
func (l *Logging) Host() string { return l.inner.Host() }
func (l *Logging) Port() int    { return l.inner.Port() }
func (l *Logging) Kind() Kind   { return l.inner.Kind() }

// Status implements Device.
func (l *Logging) Status(ctx context.Context) (Status, error) {
	l.logger.Debug().Msg("Getting device status")
	start := time.Now()

	status, err := l.inner.Status(ctx)

	if err != nil {
		l.logger.Warn().Err(err).Dur("latency", time.Since(start)).Msg("Device status failed")
	} else {
		l.logger.Debug().Int("fields", len(status)).Dur("latency", time.Since(start)).Msg("Device status received")
	}
	return status, err
}

// PerformAction implements Device.
func (l *Logging) PerformAction(ctx context.Context, action string, params Params) (bool, error) {
	l.logger.Debug().Str("action", action).Interface("params", params).Msg("Performing action")
	start := time.Now()

	ok, err := l.inner.PerformAction(ctx, action, params)

	event := l.logger.Info()
	if err != nil {
		event = l.logger.Warn().Err(err)
	}
	event.Str("action", action).Bool("result", ok).Dur("latency", time.Since(start)).Msg("Action result")
	return ok, err
}
