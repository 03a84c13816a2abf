package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"log/slog"

	"github.com/WorldDarkMarket/telegram-bot-admin/internal/api"
	"github.com/WorldDarkMarket/telegram-bot-admin/internal/buildinfo"
	"github.com/WorldDarkMarket/telegram-bot-admin/internal/config"
	"github.com/WorldDarkMarket/telegram-bot-admin/internal/database"
	"github.com/WorldDarkMarket/telegram-bot-admin/internal/logger"
	"github.com/WorldDarkMarket/telegram-bot-admin/internal/store"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("catalogd: %v", err)
	}
}

func run() error {
	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "catalogd.yaml"
	}

	log.Printf("loading config: %s", cfgPath)
	cfg, err := config.LoadServer(cfgPath)
	if err != nil {
		return err
	}

	if err := logger.Init(cfg.Logging); err != nil {
		return err
	}
	defer func() {
		if err := logger.Shutdown(); err != nil {
			log.Printf("logger shutdown error: %v", err)
		}
	}()

	dbCfg := database.FromConfig(cfg.Database)
	if err := database.RunMigrations(dbCfg); err != nil {
		return err
	}
	db, err := database.Connect(dbCfg)
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	srv := &http.Server{
		Addr:              cfg.Listen,
		Handler:           api.New(store.New(db)).Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	errCh := make(chan error, 1)
	go func() {
		logger.API.Info("listening",
			slog.String("event", "api.listen"),
			slog.String("addr", cfg.Listen),
			slog.String("build", buildinfo.Short()),
		)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.API.Info("shutting down...",
		slog.String("event", "shutdown"),
	)
	shutCtx, shutCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutCancel()
	if err := srv.Shutdown(shutCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
