package main

import (
	"flag"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/urmzd/smartapp/pkg/config"
	"github.com/urmzd/smartapp/pkg/controller"
	smartmcp "github.com/urmzd/smartapp/pkg/mcp"
)

func main() {
	// Logging must go to stderr, stdout is the MCP transport
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	configPath := flag.String("config", "", "Path to config file (default: $SMARTAPP_CONFIG)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	zerolog.SetGlobalLevel(cfg.LogLevel())
	if cfg.Log.Format == "json" {
		log.Logger = zerolog.New(os.Stderr).With().Timestamp().Logger()
	}

	ctrl, err := controller.FromConfig(cfg, log.Logger)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to register devices")
	}

	log.Info().Int("devices", len(ctrl.Devices())).Msg("Starting MCP server on stdio")

	s := smartmcp.NewServer(ctrl)
	if err := s.ServeStdio(); err != nil {
		log.Fatal().Err(err).Msg("MCP server failed")
	}
}
