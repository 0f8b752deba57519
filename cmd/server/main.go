package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"

	"github.com/nkngn/payment-router/internal/api"
	"github.com/nkngn/payment-router/internal/config"
	"github.com/nkngn/payment-router/internal/corridors"
	"github.com/nkngn/payment-router/internal/logger"
	"github.com/nkngn/payment-router/internal/metrics"
	"github.com/nkngn/payment-router/internal/route"
	"github.com/nkngn/payment-router/internal/router"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(logger.Config{Level: cfg.Logging.Level, Pretty: cfg.Logging.Pretty})
	logger.SetGlobalLogger(log)
	log.Info().Msg("Starting payment router")

	list, err := loadCorridors(cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load corridors")
	}

	m := metrics.New(log)
	r := router.New(list, log, router.WithMetrics(m))

	srv := api.New(api.Config{
		Log:            log,
		Router:         r,
		Metrics:        m,
		Addr:           cfg.Server.Addr,
		AllowedOrigins: cfg.Server.AllowedOrigins,
		ReadTimeout:    cfg.ReadTimeout(),
		WriteTimeout:   cfg.WriteTimeout(),
		IdleTimeout:    cfg.IdleTimeout(),
	})

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout())
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}
	log.Info().Msg("Server stopped")
}

// loadCorridors reads the configured corridors file, if any, followed by the
// inline corridors from the config file.
func loadCorridors(cfg *config.Config, log zerolog.Logger) ([]route.Corridor, error) {
	var list []route.Corridor
	if cfg.CorridorsFile != "" {
		fromFile, err := corridors.LoadFile(cfg.CorridorsFile)
		if err != nil {
			return nil, err
		}
		list = append(list, fromFile...)
	}
	list = append(list, cfg.Corridors...)
	if len(list) == 0 {
		log.Warn().Msg("No corridors configured")
	}
	return list, nil
}
