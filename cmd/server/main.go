package main

import (
	"context"
	"errors"
	"fmt"
	stdhttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/vncsmyrnk/manifesto/internal/adapters/cache"
	"github.com/vncsmyrnk/manifesto/internal/adapters/handler/http"
	"github.com/vncsmyrnk/manifesto/internal/adapters/repository/sqlstore"
	"github.com/vncsmyrnk/manifesto/internal/config"
	"github.com/vncsmyrnk/manifesto/internal/core/ports"
	"github.com/vncsmyrnk/manifesto/internal/core/services"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	log, err := cfg.Logger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer log.Sync()

	if err := run(cfg, log); err != nil {
		log.Fatal("server stopped", zap.Error(err))
	}
}

func run(cfg *config.Config, log *zap.Logger) error {
	if err := cfg.RequireSecret(); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	store, err := sqlstore.Open(ctx, cfg.StoreDriver, cfg.DSN())
	if err != nil {
		return err
	}
	defer store.Close()

	if cfg.StoreDriver == sqlstore.SQLite.Name {
		// The embedded store has no separate operator step, so it is migrated on boot.
		applied, err := store.Migrate(ctx)
		if err != nil {
			return err
		}
		log.Info("schema migrated", zap.Strings("applied", applied))
	}

	var authors ports.AuthorDirectory = store.Repositories().Users
	if cfg.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr, Password: cfg.RedisPassword})
		defer rdb.Close()

		pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		if err := rdb.Ping(pingCtx).Err(); err != nil {
			log.Warn("redis unreachable, author lookups will hit the store until it recovers", zap.Error(err))
		}
		authors = cache.NewAuthorCache(rdb, authors, cfg.AuthorCacheTTL, log.Named("author_cache"))
	}

	opts := []services.Option{services.WithLogger(log)}
	composer := services.NewComposerService(store, opts...)

	handler := http.NewHandler(http.Handlers{
		Posts:      http.NewPostHandler(services.NewFeedService(store, authors, opts...), log),
		Debates:    http.NewDebateHandler(services.NewDebateService(store, authors, opts...), composer, log),
		Polls:      http.NewPollHandler(services.NewPollService(store, authors, opts...), composer, log),
		Petitions:  http.NewPetitionHandler(services.NewPetitionService(store, authors, opts...), composer, log),
		Users:      http.NewUserHandler(services.NewUserService(store, opts...), log),
		Government: http.NewGovernmentHandler(services.NewGovernmentService(store, opts...), log),
	}, http.RouterConfig{
		JWTSecret:   []byte(cfg.JWTSecret),
		CORSOrigins: cfg.CORSOrigins,
		Log:         log,
	})

	server := &stdhttp.Server{
		Addr:              "0.0.0.0:" + cfg.Port,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		log.Info("listening", zap.String("addr", server.Addr), zap.String("driver", cfg.StoreDriver))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, stdhttp.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		return err
	case <-ctx.Done():
	}

	log.Info("gracefully shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	return server.Shutdown(shutdownCtx)
}
