package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/vitrine/frontend/config"
	httpDelivery "github.com/vitrine/frontend/internal/delivery/http"
	"github.com/vitrine/frontend/internal/domain"
	"github.com/vitrine/frontend/internal/infrastructure/cache"
	"github.com/vitrine/frontend/internal/infrastructure/catalogapi"
	"github.com/vitrine/frontend/internal/logging"
	"github.com/vitrine/frontend/internal/usecase"
)

const version = "1.0.0"

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "vitrine",
		Short:         "Catalog browsing frontend",
		Long:          "vitrine serves the category tree, product search and navigation pages over the catalog API.",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(cmd.Context())
		},
	}
	root.AddCommand(newTreeCommand())
	return root
}

// app holds the wired services shared by the commands
type app struct {
	cfg     *config.Config
	catalog *usecase.CatalogService
	closers []io.Closer
}

func (a *app) Close() {
	for _, c := range a.closers {
		if err := c.Close(); err != nil {
			log.WithError(err).Warn("Failed to close resource")
		}
	}
}

// newApp loads configuration and wires the catalog service
func newApp(ctx context.Context) (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	logging.Init(cfg.Log.Level, cfg.Log.Format)

	a := &app{cfg: cfg}

	cacheRepo, err := newCache(ctx, cfg.Cache)
	if err != nil {
		return nil, err
	}
	if closer, ok := cacheRepo.(io.Closer); ok {
		a.closers = append(a.closers, closer)
	}

	client := catalogapi.NewClient(cfg.Catalog.BaseURL, catalogapi.ClientConfig{
		Timeout:           cfg.Catalog.Timeout,
		RetryCount:        cfg.Catalog.RetryCount,
		RequestsPerSecond: cfg.Catalog.RequestsPerSecond,
	})
	a.closers = append(a.closers, client)

	a.catalog = usecase.NewCatalogService(cacheRepo, client, usecase.CatalogServiceConfig{
		CacheTTL: cfg.Cache.TTL,
	})

	log.WithFields(log.Fields{
		"catalog":   cfg.Catalog.BaseURL,
		"cache":     cfg.Cache.Type,
		"cache_ttl": cfg.Cache.TTL.String(),
	}).Info("Catalog service configured")

	return a, nil
}

func newCache(ctx context.Context, cfg config.CacheConfig) (domain.CacheRepository, error) {
	if cfg.Type != "redis" {
		return cache.NewMemoryCache(), nil
	}

	redisCache, err := cache.NewRedisCache(cfg.RedisURL)
	if err != nil {
		return nil, err
	}

	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := redisCache.Ping(pingCtx); err != nil {
		_ = redisCache.Close()
		return nil, fmt.Errorf("redis cache unreachable: %w", err)
	}
	return redisCache, nil
}

func serve(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	a, err := newApp(ctx)
	if err != nil {
		return err
	}
	defer a.Close()

	cfg := a.cfg
	log.WithFields(log.Fields{
		"version":     version,
		"environment": cfg.Server.Environment,
		"port":        cfg.Server.Port,
	}).Info("Starting vitrine")

	handler := httpDelivery.NewHandler(a.catalog, httpDelivery.HandlerConfig{
		TransitionDelay: cfg.Navigation.TransitionDelay,
	})
	router := httpDelivery.SetupRouter(cfg, handler)

	server := &http.Server{
		Addr:              fmt.Sprintf(":%s", cfg.Server.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.WithField("addr", server.Addr).Info("Server listening")
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
	}

	log.Info("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}
