package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/urmzd/smartapp/pkg/api"
	"github.com/urmzd/smartapp/pkg/config"
	"github.com/urmzd/smartapp/pkg/controller"

	_ "github.com/urmzd/smartapp/docs"
)

// @title           SmartApp API
// @version         1.0
// @description     REST API for controlling smart speaker, light and curtains microservices

// @host      localhost:8000
// @BasePath  /api/v1
// @schemes   http

func main() {
	configPath := flag.String("config", "", "Path to config file (default: $SMARTAPP_CONFIG)")
	flag.Parse()

	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	zerolog.SetGlobalLevel(cfg.LogLevel())
	if cfg.Log.Format == "json" {
		log.Logger = zerolog.New(os.Stderr).With().Timestamp().Logger()
	}

	log.Info().
		Str("api_address", cfg.APIAddress()).
		Dur("timeout", cfg.Transport.Timeout).
		Int("devices", len(cfg.Devices)).
		Msg("Configuration loaded")

	ctrl, err := controller.FromConfig(cfg, log.Logger)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to register devices")
	}

	router := api.NewRouter(ctrl)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	addr := cfg.APIAddress()
	log.Info().Str("address", addr).Msg("Starting API server")

	if err := router.Run(ctx, addr); err != nil {
		log.Fatal().Err(err).Msg("Server failed")
	}
}
