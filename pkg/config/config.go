package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"
	"github.com/urmzd/smartapp/pkg/device"
	"github.com/urmzd/smartapp/pkg/facade"
	"github.com/urmzd/smartapp/pkg/transport"
)

// EnvPrefix prefixes every environment override (SMARTAPP_API_PORT, ...).
const EnvPrefix = "smartapp"

// Config is the complete runtime configuration.
type Config struct {
	Log       LogConfig       `mapstructure:"log"`
	API       APIConfig       `mapstructure:"api"`
	Transport TransportConfig `mapstructure:"transport"`
	Status    StatusConfig    `mapstructure:"status"`
	Devices   []DeviceConfig  `mapstructure:"devices"`
}

// LogConfig selects log verbosity and output format.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// APIConfig is the REST listener.
type APIConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
}

// TransportConfig bounds device round trips.
type TransportConfig struct {
	Timeout time.Duration `mapstructure:"timeout"`
}

// StatusConfig tunes status aggregation.
type StatusConfig struct {
	Concurrency int `mapstructure:"concurrency"`
}

// DeviceConfig statically registers one device.
type DeviceConfig struct {
	ID   string `mapstructure:"id"`
	Kind string `mapstructure:"kind"`
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
}

// DefaultDevices are registered when the configuration names none.
func DefaultDevices() []DeviceConfig {
	return []DeviceConfig{
		{ID: device.DefaultSpeakerID, Kind: string(device.KindSpeaker), Host: device.DefaultHost, Port: device.KindSpeaker.DefaultPort()},
		{ID: device.DefaultLightID, Kind: string(device.KindLight), Host: device.DefaultHost, Port: device.KindLight.DefaultPort()},
		{ID: device.DefaultCurtainsID, Kind: string(device.KindCurtains), Host: device.DefaultHost, Port: device.KindCurtains.DefaultPort()},
	}
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
	v.SetDefault("api.host", "127.0.0.1")
	v.SetDefault("api.port", 8000)
	v.SetDefault("transport.timeout", transport.DefaultTimeout)
	v.SetDefault("status.concurrency", facade.DefaultConcurrency)
}

// Load reads configuration from defaults, an optional .env file, the
// optional YAML file at path and SMARTAPP_* environment variables, in
// increasing precedence.
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path == "" {
		path = v.GetString("config")
	}
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if len(cfg.Devices) == 0 {
		cfg.Devices = DefaultDevices()
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the configuration for values no component can use.
func (c *Config) Validate() error {
	if _, err := zerolog.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("invalid log level %q: %w", c.Log.Level, err)
	}
	if c.API.Port <= 0 || c.API.Port > 65535 {
		return fmt.Errorf("invalid api port %d", c.API.Port)
	}
	if c.Transport.Timeout <= 0 {
		return fmt.Errorf("invalid transport timeout %s", c.Transport.Timeout)
	}

	for i, d := range c.Devices {
		if d.ID == "" {
			return fmt.Errorf("device %d: id is required", i)
		}
		if _, err := device.ParseKind(d.Kind); err != nil {
			return fmt.Errorf("device %q: %w", d.ID, err)
		}
		if d.Port < 0 || d.Port > 65535 {
			return fmt.Errorf("device %q: invalid port %d", d.ID, d.Port)
		}
	}
	return nil
}

// APIAddress returns the REST listen address.
func (c *Config) APIAddress() string {
	return net.JoinHostPort(c.API.Host, strconv.Itoa(c.API.Port))
}

// LogLevel returns the parsed log level.
func (c *Config) LogLevel() zerolog.Level {
	level, err := zerolog.ParseLevel(c.Log.Level)
	if err != nil {
		return zerolog.InfoLevel
	}
	return level
}
