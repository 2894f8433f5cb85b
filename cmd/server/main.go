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

	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"

	config "github.com/avatarctic/hr-gateway/configs"
	"github.com/avatarctic/hr-gateway/internal/application/services"
	"github.com/avatarctic/hr-gateway/internal/core/ports"
	"github.com/avatarctic/hr-gateway/internal/infrastructure/apicache"
	"github.com/avatarctic/hr-gateway/internal/infrastructure/health"
	"github.com/avatarctic/hr-gateway/internal/infrastructure/hrapi"
	"github.com/avatarctic/hr-gateway/internal/infrastructure/httpserver"
	"github.com/avatarctic/hr-gateway/internal/infrastructure/redis"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	logger := newLogger(&cfg.Log)
	logger.Info("Starting HR gateway...")

	// Response cache shared by every service
	storeOpts := []apicache.Option{
		apicache.WithLogger(logger),
		apicache.WithMetrics(apicache.NewPrometheusMetrics(prometheus.DefaultRegisterer)),
	}
	if cfg.Cache.SingleFlight {
		storeOpts = append(storeOpts, apicache.WithSingleFlight())
	}
	store := apicache.NewStore(storeOpts...)

	hrClient := hrapi.NewClient(&hrapi.ClientConfig{
		BaseURL:      cfg.Upstream.BaseURL,
		Timeout:      cfg.Upstream.Timeout,
		RetryMax:     cfg.Upstream.RetryMax,
		RetryWaitMin: cfg.Upstream.RetryWaitMin,
		RetryWaitMax: cfg.Upstream.RetryWaitMax,
	}, logger)

	ttl := services.TTLPolicy{Short: cfg.Cache.ShortTTL, Medium: cfg.Cache.MediumTTL, Long: cfg.Cache.LongTTL}
	attendanceService := services.NewAttendanceService(hrClient, store, ttl, logger)
	leaveService := services.NewLeaveService(hrClient, store, ttl, logger)
	timeslipService := services.NewTimeslipService(hrClient, store, ttl, logger)
	messageService := services.NewMessageService(hrClient, store, ttl, logger)
	referenceService := services.NewReferenceService(hrClient, store, ttl)
	cacheService := services.NewCacheService(store, logger)
	authService := services.NewAuthService(cfg.JWT.Secret, cfg.JWT.Issuer, logger)

	hcSlice := []ports.HealthChecker{health.NewUpstreamHealthChecker(hrClient)}

	// Redis only backs the per-employee rate limit; without it requests are not limited.
	var rateLimiterService ports.RateLimiterService
	if cfg.Redis.Enabled {
		redisClient, err := redis.NewRedisClient(&cfg.Redis)
		if err != nil {
			logger.Fatal("Failed to connect to Redis:", err)
		}
		defer redisClient.Close()
		logger.Info("Connected to Redis successfully")

		rateLimiterService = services.NewRateLimiterService(redis.NewRateLimitRepository(redisClient), &services.RateLimiterConfig{
			RequestsPerMinute: cfg.RateLimit.DefaultRequestsPerMinute,
			BurstMultiplier:   cfg.RateLimit.BurstMultiplier,
			Window:            cfg.RateLimit.Window,
			KeyPrefix:         cfg.RateLimit.KeyPrefix,
		}, logger)
		hcSlice = append(hcSlice, health.NewRedisHealthChecker(redisClient))
	} else {
		logger.Warn("Redis disabled - rate limiting is off")
	}

	// Upstream message events invalidate cached conversations
	eventsCtx, stopEvents := context.WithCancel(context.Background())
	defer stopEvents()
	eventsDone := make(chan struct{})
	if cfg.Events.Enabled {
		listener := hrapi.NewEventListener(&hrapi.EventListenerConfig{
			URL:          cfg.Events.URL,
			Token:        cfg.Events.ServiceToken,
			ReconnectMin: cfg.Events.ReconnectMin,
			ReconnectMax: cfg.Events.ReconnectMax,
		}, messageService, logger)
		go func() {
			defer close(eventsDone)
			_ = listener.Run(eventsCtx)
		}()
	} else {
		close(eventsDone)
	}

	serverConfig := &httpserver.ServerConfig{
		Host:           cfg.Server.Host,
		Port:           cfg.Server.Port,
		ReadTimeout:    cfg.Server.ReadTimeout,
		WriteTimeout:   cfg.Server.WriteTimeout,
		IdleTimeout:    cfg.Server.IdleTimeout,
		TLSCertFile:    cfg.Server.TLSCertFile,
		TLSKeyFile:     cfg.Server.TLSKeyFile,
		AllowedOrigins: cfg.Server.AllowedOrigins,
		Environment:    cfg.Server.Environment,
	}

	deps := httpserver.ServerDeps{
		AttendanceService:  attendanceService,
		LeaveService:       leaveService,
		TimeslipService:    timeslipService,
		MessageService:     messageService,
		ReferenceService:   referenceService,
		CacheService:       cacheService,
		AuthService:        authService,
		RateLimiterService: rateLimiterService,
		HealthCheckers:     hcSlice,
	}

	server := httpserver.NewServer(serverConfig, logger, deps)

	go func() {
		if err := server.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Failed to start server:", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.WithError(err).Error("Server forced to shutdown")
	}
	stopEvents()
	select {
	case <-eventsDone:
	case <-ctx.Done():
		logger.Warn("Event listener did not stop in time")
	}

	logger.Info("Server exited")
}

func newLogger(cfg *config.LogConfig) *logrus.Logger {
	logger := logrus.New()
	if cfg.Format == "text" {
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	} else {
		logger.SetFormatter(&logrus.JSONFormatter{})
	}
	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		logger.SetLevel(logrus.InfoLevel)
	} else {
		logger.SetLevel(level)
	}
	return logger
}
