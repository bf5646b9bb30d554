package main

// Package main ist der Einstiegspunkt des FlowOps-API-Servers.
// Es lädt die Konfiguration, initialisiert Postgres- und Redis-Pools,
// den Paseto-Tokenmaker und den Echtzeit-Hub, setzt die Fiber-API mit
// Middleware und Routern auf und startet den HTTP-Server.

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/DevITJAX/FlowOps/internal/config"
	"github.com/DevITJAX/FlowOps/internal/db"
	"github.com/DevITJAX/FlowOps/internal/i18n"
	"github.com/DevITJAX/FlowOps/internal/middleware"
	"github.com/DevITJAX/FlowOps/internal/realtime"
	"github.com/DevITJAX/FlowOps/internal/routers"
	"github.com/DevITJAX/FlowOps/internal/utils"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	i18nSvc := i18n.NewInitI18nService()
	cfg := config.LoadConfig()

	dbPool := db.ConnectPool(cfg.DATABASE.Postgres.DSN)
	redisPool, err := db.RedisPool(cfg.DATABASE.Redis.Addr, cfg.DATABASE.Redis.Password, 0)
	if err != nil {
		log.Fatal().Err(err).Msg("Fehler beim Initialisieren des Redis-Pools")
	}

	paseto, err := utils.NewPasetoMaker(cfg.APP_SECRET.Paseto.HexKey)
	if err != nil {
		log.Fatal().Err(err).Msg("Fehler beim Initialisieren des Paseto-Makers")
	}

	// Echtzeit-Hub liest die Events, die die Use-Cases über Redis publizieren.
	hubCtx, stopHub := context.WithCancel(context.Background())
	hub := realtime.NewHub(redisPool)
	go hub.Run(hubCtx)

	app := fiber.New(fiber.Config{
		ErrorHandler: middleware.ErrorHandlerMiddleware(i18nSvc),
	})
	app.Use(middleware.RequestIDMiddleware())
	app.Use(middleware.AcceptLanguageMiddleware())
	app.Use(middleware.LoggerMiddleware())

	routers.SetupRoutes(app, dbPool, redisPool, i18nSvc, paseto, cfg, hub)

	go func() {
		log.Info().Msgf("Starte %s auf Port %s", cfg.APP.Name, cfg.APP.Port)
		if err := app.Listen(fmt.Sprintf(":%s", cfg.APP.Port)); err != nil {
			if err == http.ErrServerClosed {
				log.Info().Msg("Server ordnungsgemäß herunterfahren.")
			} else {
				log.Fatal().Err(err).Msgf("Der Server konnte nicht gestartet werden, %v", err)
			}
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	<-ctx.Done()
	stop()
	log.Warn().Msg("Shutdown-Signal empfangen... Vorbereitung zum Herunterfahren.")

	stopHub()

	if redisPool != nil {
		redisPool.Close()
		log.Info().Msg("Redis-Pool erfolgreich geschlossen.")
	}

	if dbPool != nil {
		dbPool.Close()
		log.Info().Msg("DB-Pool erfolgreich geschlossen.")
	}

	if err := app.Shutdown(); err != nil {
		log.Error().Err(err).Msgf("Beim Herunterfahren ist ein Fehler aufgetreten: %v", err)
	}
	log.Info().Msg("Server ordnungsgemäß herunterfahren.")
}
