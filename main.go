package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"

	"dtuportal_backend/internals/configs"
	database "dtuportal_backend/internals/databases"
	"dtuportal_backend/internals/logger"
	"dtuportal_backend/internals/metrics"
	"dtuportal_backend/internals/server"
)

func main() {
	cfg, err := configs.LoadEnv()
	if err != nil {
		log.Fatal().Err(err).Msg("load config")
	}
	logger.Init(cfg.LogLevel, cfg.LogFormat)

	m := metrics.New()

	// DB connect + pool + warm-up
	db, err := database.ConnectDB(cfg, m)
	if err != nil {
		log.Fatal().Err(err).Msg("connect database")
	}
	if sqlDB, err := db.DB(); err == nil {
		if err := m.RegisterDBStats(sqlDB, "dtuportal"); err != nil {
			log.Warn().Err(err).Msg("register pool metrics")
		}
	}
	database.WarmUp(db)

	app := server.NewApp(cfg, db, m)

	go func() {
		log.Info().Str("addr", cfg.Addr()).Msg("server running")
		if err := app.Listen(cfg.Addr()); err != nil {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	// graceful shutdown, then close the pool
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := app.ShutdownWithContext(ctx); err != nil {
		log.Error().Err(err).Msg("shutdown")
	}
	if err := database.Close(db); err != nil {
		log.Error().Err(err).Msg("close database")
	}
}
