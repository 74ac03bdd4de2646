package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/IgnacioAlcaraz/inmobiliaria/internal/config"
	"github.com/IgnacioAlcaraz/inmobiliaria/internal/infra"
	"github.com/IgnacioAlcaraz/inmobiliaria/internal/repository"
	"github.com/IgnacioAlcaraz/inmobiliaria/internal/router"
	"github.com/IgnacioAlcaraz/inmobiliaria/internal/worker"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	// Structured logger — dev: pretty, prod: JSON
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	db, err := infra.NewDatabase(cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to postgres")
	}

	rdb, err := infra.NewRedis(cfg.RedisURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to redis")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Reminder pipeline: hourly sweep enqueues due follow-ups, BRPOP pool
	// mails them. Wired here (composition root) so the pool has full access
	// to infrastructure dependencies.
	mailer := infra.NewMailer(cfg)
	dispatcher := worker.NewDispatcher(rdb)
	worker.StartWorkerPool(ctx, rdb, worker.NewRecordatorioWorker(mailer), cfg.WorkerPoolSize)
	worker.StartSweepCron(ctx, worker.SweepCronConfig{
		Contactos:  repository.NewContactoRepository(db),
		Profiles:   repository.NewProfileRepository(db),
		Dispatcher: dispatcher,
		RDB:        rdb,
	})

	n8n := infra.NewN8NClient(cfg)
	r := router.New(cfg, db, rdb, n8n)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown on SIGINT / SIGTERM
	go func() {
		log.Info().Msgf("inmobiliaria backend listening on :%d", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server…")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("forced shutdown")
	}
	log.Info().Msg("server exited")
}
