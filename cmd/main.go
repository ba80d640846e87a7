// @title Jaguar Studio API
// @version 1.0
// @description Front-end server for the Shuttle-Jaguar image generation service.
// @BasePath /
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/kdduha/jaguar-studio/internal/cache"
	"github.com/kdduha/jaguar-studio/internal/config"
	"github.com/kdduha/jaguar-studio/internal/handler"
	"github.com/kdduha/jaguar-studio/internal/jaguar"
	"github.com/kdduha/jaguar-studio/internal/logger"
	"github.com/kdduha/jaguar-studio/internal/metrics"
	"github.com/kdduha/jaguar-studio/internal/page"
	"github.com/kdduha/jaguar-studio/internal/service"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	_ "github.com/kdduha/jaguar-studio/docs"
	httpSwagger "github.com/swaggo/http-swagger"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config error: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger error: %v\n", err)
		os.Exit(1)
	}

	client := jaguar.NewClient(log.With().Str("component", "jaguar").Logger(), cfg.Jaguar)
	shell := service.NewShell(log, client, cfg.Jaguar.BaseURL)

	if cfg.CacheEnable {
		redisCache := cache.NewRedisCache(
			cfg.RedisConfig.Addr,
			cfg.RedisConfig.Password,
			cfg.RedisConfig.DB,
			cfg.RedisConfig.TTL,
		)
		defer redisCache.Close()

		if err := redisCache.Ping(ctx); err != nil {
			log.Warn().Err(err).Str("addr", cfg.RedisConfig.Addr).Msg("redis is not reachable, model info will not be cached")
		} else {
			shell.SetCacheClient(redisCache)
			log.Info().Str("addr", cfg.RedisConfig.Addr).Msg("set redis as cache")
		}
	}

	h := handler.NewStudioHandler(log, shell, page.NewTemplator())

	r := chi.NewRouter()
	r.Use([]func(http.Handler) http.Handler{
		middleware.RequestID,
		middleware.Logger,
		middleware.Recoverer,
		middleware.Throttle(cfg.Server.ThrottleLimit),
		middleware.Timeout(cfg.Server.Timeout),
		metrics.Middleware,
	}...)

	h.Register(r)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))
	r.Handle("/metrics", promhttp.Handler())

	srv := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: r,
	}

	go func() {
		log.Info().Str("port", cfg.Server.Port).Bool("configured", shell.Configured()).Msg("server started")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("listen error")
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server forced to shutdown")
		return
	}
	log.Info().Msg("server stopped")
}
