package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/internal/config"
	"github.com/robalobadob/wordle/internal/httpserver"
	"github.com/robalobadob/wordle/internal/store"
	"github.com/robalobadob/wordle/internal/words"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	setupLogging(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	list, fellBack := words.LoadOrFallback(ctx, cfg.WordsSource)
	log.Info().Int("words", list.Len()).Bool("fallback", fellBack).Msg("word list loaded")

	st, err := openStore(cfg, list)
	if err != nil {
		log.Fatal().Err(err).Str("store", cfg.Store).Msg("failed to open store")
	}
	defer st.Close()

	srv := httpserver.New(st, list, httpserver.Options{
		SessionSecret:  cfg.SessionSecret,
		DailySalt:      cfg.DailySalt,
		ClientOrigin:   cfg.ClientOrigin,
		RequestTimeout: cfg.RequestTimeout,
		SecureCookies:  cfg.Production,
	})
	log.Info().Str("port", cfg.Port).Str("store", cfg.Store).Msg("starting go-server")
	if err := srv.Run(ctx, ":"+cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}

func setupLogging(cfg config.Config) {
	if lvl, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}
	if cfg.LogFormat == "console" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}
}

func openStore(cfg config.Config, list words.List) (store.Store, error) {
	if cfg.Store == config.StoreSQLite {
		return store.OpenSQLite(cfg.DBPath, list)
	}
	return store.NewMemoryStore(), nil
}
