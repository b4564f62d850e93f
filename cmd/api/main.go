package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/garage-booking/internal/audit"
	"github.com/BruksfildServices01/garage-booking/internal/cache"
	"github.com/BruksfildServices01/garage-booking/internal/config"
	dbpkg "github.com/BruksfildServices01/garage-booking/internal/db"
	"github.com/BruksfildServices01/garage-booking/internal/domain/garage"
	"github.com/BruksfildServices01/garage-booking/internal/logger"
	"github.com/BruksfildServices01/garage-booking/internal/middleware"
	"github.com/BruksfildServices01/garage-booking/internal/mq"
	"github.com/BruksfildServices01/garage-booking/internal/notifier"
	"github.com/BruksfildServices01/garage-booking/internal/routes"
	"github.com/BruksfildServices01/garage-booking/internal/validators"
)

func main() {
	if err := run(); err != nil {
		slog.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	log := logger.Setup(cfg.LogLevel)

	if err := validators.Register(); err != nil {
		return err
	}

	db, err := dbpkg.NewDB(cfg)
	if err != nil {
		return err
	}
	if sqlDB, err := db.DB(); err == nil {
		defer sqlDB.Close()
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// --------------------------------------------------
	// Optional infrastructure
	// --------------------------------------------------
	var garageCache garage.Cache = cache.Noop{}
	if cfg.RedisAddr != "" {
		rdb, err := cache.Connect(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err != nil {
			return err
		}
		defer rdb.Close()
		garageCache = cache.NewGarageCache(rdb, cfg.GarageCacheTTL, log)
		log.Info("garage cache enabled", "addr", cfg.RedisAddr)
	}

	var publisher mq.EventPublisher = mq.Noop{}
	if cfg.RabbitURL != "" {
		p, err := mq.NewPublisher(cfg.RabbitURL, cfg.RabbitExchange)
		if err != nil {
			return err
		}
		defer p.Close()
		publisher = p
		log.Info("event publishing enabled", "exchange", cfg.RabbitExchange)
	}

	transport, err := notifier.NewTransport(cfg.Mail, log)
	if err != nil {
		return err
	}

	dispatcher := audit.NewDispatcher(audit.New(db), log)
	defer dispatcher.Close()

	limiter := middleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst)
	go limiter.Run(ctx.Done())

	// --------------------------------------------------
	// HTTP
	// --------------------------------------------------
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())

	routes.RegisterRoutes(r, routes.Deps{
		DB:        db,
		Config:    cfg,
		Log:       log,
		Cache:     garageCache,
		Publisher: publisher,
		Mail:      transport,
		Audit:     dispatcher,
		Limiter:   limiter,
	})

	server := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("server running", "addr", cfg.Addr())
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return err
		}
	case <-ctx.Done():
		log.Info("shutting down")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}
