package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"jobboard-api/internal/aggregate"
	"jobboard-api/internal/config"
	"jobboard-api/internal/domain"
	"jobboard-api/internal/httpapi"
	"jobboard-api/internal/provider/adzuna"
	"jobboard-api/internal/provider/reed"
	"jobboard-api/internal/provider/usajobs"
	"jobboard-api/internal/ratelimit"
)

func main() {
	// .env is a dev convenience; absence is fine.
	_ = godotenv.Load()

	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	cfgPath := os.Getenv("JOBBOARD_CONFIG")
	if cfgPath == "" {
		cfgPath = "config.yml"
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		logger.Fatal("config load failed", zap.String("path", cfgPath), zap.Error(err))
	}

	validation := config.Validate(cfg)
	for _, warn := range validation.Warnings {
		logger.Warn(warn)
	}
	if !validation.OK() {
		logger.Fatal("invalid configuration", zap.Strings("errors", validation.Errors))
	}

	// Fixed declaration order: this is also the combined-search merge order.
	providers := []domain.Provider{
		adzuna.New(adzuna.Config{
			AppID:  cfg.Providers.Adzuna.AppID,
			AppKey: cfg.Providers.Adzuna.AppKey,
		}),
		reed.New(reed.Config{APIKey: cfg.Providers.Reed.APIKey}),
		usajobs.New(usajobs.Config{APIKey: cfg.Providers.USAJobs.APIKey}),
	}

	gate := ratelimit.New(cfg.RateLimit.Requests, cfg.Window())
	go func() {
		t := time.NewTicker(cfg.Window())
		defer t.Stop()
		for range t.C {
			gate.Prune(10 * cfg.Window())
		}
	}()

	h := &httpapi.Handler{
		Searcher: aggregate.New(logger, providers...),
		Services: map[string]bool{
			"adzuna":  cfg.Providers.Adzuna.AppID != "" && cfg.Providers.Adzuna.AppKey != "",
			"reed":    cfg.Providers.Reed.APIKey != "",
			"usajobs": cfg.Providers.USAJobs.APIKey != "",
		},
		Logger: logger,
	}

	handler := httpapi.Chain(httpapi.Routes(h, providers),
		httpapi.Cors,
		httpapi.RequestID,
		httpapi.AccessLog(logger),
		httpapi.Recover(logger),
		httpapi.RateLimit(gate),
	)

	srv := httpapi.NewServer(cfg.Addr(), handler)

	go func() {
		logger.Info("api listening", zap.String("addr", cfg.Addr()))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server failed", zap.Error(err))
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh
	logger.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("shutdown error", zap.Error(err))
	}
}
