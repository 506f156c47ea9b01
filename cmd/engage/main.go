package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"

	"clinic-engagement-engine/pkg/announce"
	"clinic-engagement-engine/pkg/config"
	"clinic-engagement-engine/pkg/engine"
	"clinic-engagement-engine/pkg/metrics"
	redisClient "clinic-engagement-engine/pkg/redis"
	"clinic-engagement-engine/pkg/server"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Setup logger
	logger := logrus.New()
	if level, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
		logger.SetLevel(level)
	}
	logger.SetFormatter(&logrus.JSONFormatter{})

	logger.WithFields(logrus.Fields{
		"pod_id":        cfg.PodID,
		"announcements": cfg.AnnouncementsEnabled,
	}).Info("Starting engagement engine")

	// Initialize metrics
	metrics := metrics.NewMetrics(prometheus.DefaultRegisterer)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Discount announcements go to Redis only when enabled
	var announcer announce.Announcer = announce.Nop{}
	if cfg.AnnouncementsEnabled {
		redis, err := redisClient.NewClient(ctx, redisClient.DefaultConnectionConfig(cfg.RedisURL), logger)
		if err != nil {
			logger.WithError(err).Fatal("Failed to connect to Redis")
		}
		defer redis.Close()
		announcer = announce.NewStreamAnnouncer(redis.GetRedisClient(), cfg.AnnouncementStream, logger, metrics)
	}

	eng := engine.NewEngine(cfg, logger, metrics, engine.WithAnnouncer(announcer))
	httpServer := server.NewHTTPServer(eng, cfg, logger, metrics, prometheus.DefaultGatherer)

	go func() {
		logger.WithField("port", cfg.Port).Info("HTTP server listening")
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.WithError(err).Fatal("HTTP server failed")
		}
	}()

	// Wait for shutdown signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	<-sigCh
	logger.Info("Received shutdown signal")

	// Graceful shutdown
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.WithError(err).Error("Error during HTTP server shutdown")
	}
	if err := eng.Shutdown(shutdownCtx); err != nil {
		logger.WithError(err).Error("Error during engine shutdown")
	}

	logger.Info("Engagement engine shutdown complete")
}
