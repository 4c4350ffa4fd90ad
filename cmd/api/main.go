package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/dentaldesk/clinic-queue/internal/clinic"
	"github.com/dentaldesk/clinic-queue/internal/config"
	"github.com/dentaldesk/clinic-queue/internal/notify"
	"github.com/dentaldesk/clinic-queue/internal/routes"
	"github.com/dentaldesk/clinic-queue/internal/timezone"
)

func main() {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout}).With().Timestamp().Logger()

	cfg := config.Load()

	store, err := clinic.Open(
		cfg.SnapshotPath,
		cfg.Seed,
		clinic.WithLogger(logger),
		clinic.WithClock(func() time.Time { return timezone.NowIn(cfg.ClinicTZ) }),
	)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to open clinic store")
	}

	dispatcher := notify.NewDispatcher(store, logger)

	r := gin.Default()

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, store, dispatcher, cfg)

	srv := &http.Server{
		Addr:    cfg.Addr(),
		Handler: r,
	}

	go func() {
		logger.Info().Str("addr", cfg.Addr()).Msg("server running")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	// The snapshot is the only durability this store has, so shut down
	// cleanly on SIGINT/SIGTERM and save before exiting.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error().Err(err).Msg("server shutdown failed")
	}

	dispatcher.Close()

	if err := store.Save(cfg.SnapshotPath); err != nil {
		logger.Error().Err(err).Msg("failed to save snapshot")
	}
}
