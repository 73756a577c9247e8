package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/spellingbee/internal/config"
	"github.com/robalobadob/spellingbee/internal/httpserver"
	"github.com/robalobadob/spellingbee/internal/puzzle"
	"github.com/robalobadob/spellingbee/internal/session"
	"github.com/robalobadob/spellingbee/internal/store"
	"github.com/robalobadob/spellingbee/internal/words"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}
	if lvl, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}

	dicts, err := words.Load(words.Options{
		StandardFile: cfg.WordsDictFile,
		KidsFile:     cfg.WordsKidsFile,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load word lists")
	}

	st, err := openStore(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open store")
	}
	defer st.Close()

	gen := puzzle.NewGenerator(dicts, cfg.Policy(), cfg.GenerateMaxAttempts)
	sess := session.New(gen, st, session.Options{
		Timeout:   cfg.GenerateTimeout,
		DailySalt: cfg.DailySalt,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := sess.Restore(ctx); err != nil {
		log.Warn().Err(err).Msg("could not restore saved game")
	}

	srv := httpserver.New(sess, dicts, httpserver.Options{
		ClientOrigin:   cfg.ClientOrigin,
		RequestTimeout: cfg.GenerateTimeout + 5*time.Second,
	})
	hs := &http.Server{Addr: cfg.Addr, Handler: srv.Handler()}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = hs.Shutdown(shutdownCtx)
	}()

	log.Info().Str("addr", cfg.Addr).Str("store", cfg.Store).Msg("starting spellingbee")
	if err := hs.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal().Err(err).Msg("server exited")
	}

	sess.Flush()
	log.Info().Msg("stopped")
}

func openStore(cfg config.Config) (store.Store, error) {
	if cfg.Store == config.StoreMemory {
		return store.NewMemoryStore(), nil
	}
	return store.OpenSQLite(cfg.DBPath)
}
