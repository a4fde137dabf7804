package main

import (
	"errors"
	"net/http"
	"os"

	"github.com/Awais2931/Diabetes-Model/internal/classifier"
	"github.com/Awais2931/Diabetes-Model/internal/config"
	"github.com/Awais2931/Diabetes-Model/internal/evaluate"
	"github.com/Awais2931/Diabetes-Model/internal/server"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Config load failed")
	}

	lvl, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr}).Level(lvl)

	// The classifier is loaded once and shared read-only for the process
	// lifetime. No model, no service.
	clf, err := classifier.Load(cfg.ModelPath)
	if err != nil {
		log.Fatal().Err(err).Msg("Model load failed")
	}

	ev, err := evaluate.New()
	if err != nil {
		log.Fatal().Err(err).Msg("Reference tables are incomplete")
	}

	srv := server.New(cfg, clf, ev)
	log.Info().Str("addr", cfg.ListenAddr).Msg("Listening")
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal().Err(err).Msg("Server stopped")
	}
}
