package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/studyhub/search-backend/internal/adapter/postgres"
	"github.com/studyhub/search-backend/internal/adapter/postgres/article"
	"github.com/studyhub/search-backend/internal/adapter/postgres/course"
	"github.com/studyhub/search-backend/internal/adapter/postgres/lesson"
	"github.com/studyhub/search-backend/internal/adapter/postgres/teacher"
	redisadapter "github.com/studyhub/search-backend/internal/adapter/redis"
	"github.com/studyhub/search-backend/internal/cache"
	"github.com/studyhub/search-backend/internal/config"
	"github.com/studyhub/search-backend/internal/ratelimit"
	"github.com/studyhub/search-backend/internal/service/search"
	"github.com/studyhub/search-backend/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, wires the
// storage adapters and the search service, and serves HTTP until ctx is
// cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to postgres: %w", err)
	}
	defer pool.Close()

	// Rate-limit counters and the suggestion cache live in Redis when an
	// address is configured, otherwise in process memory.
	var (
		limiterStore ratelimit.Store
		suggestCache cache.Cache
		cachePinger  rest.Pinger
	)
	if cfg.Redis.UseRedis() {
		client, err := redisadapter.NewClient(ctx, cfg.Redis)
		if err != nil {
			return fmt.Errorf("connect to redis: %w", err)
		}
		defer client.Close() //nolint:errcheck

		limiterStore = redisadapter.NewLimiterStore(client)
		suggestCache = redisadapter.NewCache(client)
		cachePinger = redisadapter.Pinger{Client: client}

		logger.Info("using redis stores", slog.String("addr", cfg.Redis.Addr))
	} else {
		memStore := ratelimit.NewMemoryStore(time.Minute)
		defer memStore.Stop()
		memCache := cache.NewMemory(cfg.Search.SuggestCacheTTL)
		defer memCache.Stop()

		limiterStore = memStore
		suggestCache = memCache

		logger.Info("using in-memory stores")
	}

	limiter := ratelimit.New(limiterStore, cfg.Search.SuggestRatePerMinute, time.Minute, logger)

	svc := search.NewService(
		logger,
		cfg.Search,
		course.New(pool),
		lesson.New(pool),
		article.New(pool),
		teacher.New(pool),
		suggestCache,
	)

	router := rest.NewRouter(
		logger,
		cfg.CORS,
		rest.NewSearchHandler(logger, svc),
		rest.NewHealthHandler(pool, cachePinger, BuildVersion()),
		limiter,
	)

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	logger.Info("http server listening", slog.String("addr", srv.Addr))

	select {
	case <-ctx.Done():
		logger.Info("shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("http server: %w", err)
	}
}
