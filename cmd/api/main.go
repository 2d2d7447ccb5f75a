package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"AIGov_Community/internal/config"
	"AIGov_Community/internal/pkg"
	"AIGov_Community/internal/repository/sqlite"
	"AIGov_Community/internal/router"

	"github.com/rs/zerolog"
)

var logger = zerolog.New(os.Stdout).With().Timestamp().Logger()

func main() {
	cfg := config.Load()
	pkg.SetSecret(cfg.JWTSecret)

	db, err := sqlite.Open(cfg.DBPath)
	if err != nil {
		logger.Fatal().Err(err).Str("path", cfg.DBPath).Msg("open database")
	}
	if err := sqlite.AutoMigrate(db); err != nil {
		logger.Fatal().Err(err).Msg("migrate database")
	}
	if err := pkg.EnsureDir(cfg.UploadDir); err != nil {
		logger.Fatal().Err(err).Str("dir", cfg.UploadDir).Msg("create upload dir")
	}

	r := router.InitRouter(db, cfg)
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		logger.Info().Str("port", cfg.Port).Msg("server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info().Msg("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error().Err(err).Msg("shutdown")
	}
	if err := sqlite.Close(db); err != nil {
		logger.Error().Err(err).Msg("close database")
	}
}
