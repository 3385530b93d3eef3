package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"pet-care-planner/internal/adapters/storage/postgres"
	"pet-care-planner/internal/fixtures"
	"pet-care-planner/internal/platform/config"
	"pet-care-planner/internal/platform/logger"
	"pet-care-planner/internal/router"
)

// @title Pet Care Planner API
// @version 1.0
// @description Agenda diaria de cuidados de mascotas: paseos, comidas y medicación, con detección de conflictos por mascota.
// @BasePath /
func main() {
	if err := run(); err != nil {
		os.Exit(1)
	}
}

// run levanta el server hasta SIGINT/SIGTERM. Los defers (pool de Postgres,
// señales) corren antes de que main decida el código de salida.
func run() error {
	cfg := config.Load()

	log := logger.New(logger.Options{
		Level:  logger.ParseLevel(cfg.Log.Level),
		Format: logger.ParseFormat(cfg.Log.Format),
		App:    cfg.Log.App,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	opts := router.Options{
		Logger:        log,
		ConflictLimit: cfg.ConflictMax,
	}

	// Postgres solo para el journal de conflictos; sin DSN todo queda en memoria.
	if cfg.DBDSN != "" {
		db, err := postgres.Open(ctx, cfg.DBDSN, postgres.PoolOptions{
			MaxOpenConns: cfg.DBMaxConns,
			PingTimeout:  cfg.DBPingWait,
		})
		if err != nil {
			log.Error("postgres unavailable, conflict journal in memory", map[string]any{"error": err.Error()})
		} else {
			defer db.Close()
			opts.DB = db
		}
	}

	if cfg.Household != "" {
		h, err := fixtures.LoadFile(cfg.Household, time.Now())
		if err != nil {
			log.Error("household file ignored", map[string]any{"path": cfg.Household, "error": err.Error()})
		} else {
			opts.Household = &h
			logSeed(log, h)
		}
	}

	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      router.NewRouter(opts),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	log.Info("starting server", map[string]any{"addr": cfg.Addr()})
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Error("server error", map[string]any{"error": err.Error()})
		return err
	}
	log.Info("server stopped", nil)
	return nil
}

func logSeed(log logger.Logger, h fixtures.Household) {
	n := 0
	for _, p := range h.Owner.Pets() {
		n += len(p.Tasks())
	}
	log.Info("household loaded", map[string]any{
		"owner":        h.Owner.Name,
		"pets":         len(h.Owner.Pets()),
		"tasks":        n,
		"last_task_id": h.LastTaskID,
	})
}
