package main

import (
	"errors"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/pflag"

	"beyondthesea/internal/config"
	"beyondthesea/internal/game"
)

func main() {
	log := zerolog.New(zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
	}).With().Timestamp().Logger()

	settings, err := config.Load(os.Args[1:])
	if errors.Is(err, pflag.ErrHelp) {
		return
	}
	if err != nil {
		log.Error().Err(err).Msg("loading config")
		os.Exit(2)
	}
	log = log.Level(settings.LogLevel)

	ev := log.Info().
		Str("loglevel", settings.LogLevel.String()).
		Uint64("seed", settings.Ocean.Seed)
	if settings.ConfigFile != "" {
		ev = ev.Str("config", settings.ConfigFile)
	}
	ev.Msg("starting")

	if err := game.Run(settings, log); err != nil {
		log.Error().Err(err).Msg("game exited")
		os.Exit(1)
	}
}
