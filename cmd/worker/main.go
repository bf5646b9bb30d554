package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/DevITJAX/FlowOps/internal/config"
	"github.com/DevITJAX/FlowOps/internal/db"
	"github.com/DevITJAX/FlowOps/internal/mail"
	"github.com/DevITJAX/FlowOps/internal/realtime"
	"github.com/DevITJAX/FlowOps/internal/worker"
	worker_handler "github.com/DevITJAX/FlowOps/internal/worker/handlers"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	cfg := config.LoadConfig()

	dbPool := db.ConnectPool(cfg.DATABASE.Postgres.DSN)
	redisPool, err := db.RedisPool(cfg.DATABASE.Redis.Addr, cfg.DATABASE.Redis.Password, 0)
	if err != nil {
		log.Fatal().Err(err).Msg("Fehler beim Initialisieren des Redis-Pools")
	}

	mailer := mail.NewMailer(cfg)
	publisher := realtime.NewRedisPublisher(redisPool)
	handler := worker_handler.NewWorkerHandler(dbPool, cfg, mailer, publisher)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)

	errChan := make(chan error, 1)
	go func() {
		log.Info().Msg("Starte Worker-Server...")
		if err := worker.RunWorker(ctx, redisPool, handler); err != nil {
			errChan <- err
		}
	}()

	select {
	case sig := <-sigChan:
		log.Info().Str("signal", sig.String()).Msg("Shutdown-Signal empfangen")
		cancel()
		dbPool.Close()
		redisPool.Close()
		log.Info().Msg("Worker-Shutdown abgeschlossen")
	case err := <-errChan:
		log.Fatal().Err(err).Msg("Worker abgestürzt")
	}
}
