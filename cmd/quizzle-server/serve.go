package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/quizzle-app/quizzle/internal/auth"
	"github.com/quizzle-app/quizzle/internal/cache"
	"github.com/quizzle-app/quizzle/internal/config"
	"github.com/quizzle-app/quizzle/internal/database"
	"github.com/quizzle-app/quizzle/internal/quiz"
	"github.com/quizzle-app/quizzle/internal/server"
	"github.com/quizzle-app/quizzle/internal/store"
)

const shutdownTimeout = 10 * time.Second

func newServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the Quizzle API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return fmt.Errorf("loadConfig() > %w", err)
			}
			if !debugMode {
				gin.SetMode(gin.ReleaseMode)
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			db, err := database.Open(cfg.Database)
			if err != nil {
				return fmt.Errorf("database.Open() > %w", err)
			}
			defer func() {
				_ = db.Close()
			}()

			var quizStore store.Store = store.NewMySQLStore(db)
			if cfg.Redis.URL != "" {
				rdb, err := cache.NewRedisClient(ctx, cfg.Redis.URL)
				if err != nil {
					return fmt.Errorf("cache.NewRedisClient() > %w", err)
				}
				defer func() {
					_ = rdb.Close()
				}()
				quizStore = cache.NewQuestionCache(quizStore, rdb, time.Duration(cfg.Redis.TTLSeconds)*time.Second)
			}

			var tokens server.TokenParser
			if cfg.Server.JWTSecret != "" {
				manager, err := auth.NewTokenManager(cfg.Server.JWTSecret)
				if err != nil {
					return fmt.Errorf("auth.NewTokenManager() > %w", err)
				}
				tokens = manager
			} else {
				slog.Default().Warn("server.jwt_secret is not set, /get_user and /user_info reject every request")
			}

			httpServer, err := newHTTPServer(cfg, quizStore, tokens)
			if err != nil {
				return err
			}
			return serve(ctx, httpServer)
		},
	}
}

func newHTTPServer(cfg *config.Config, quizStore store.Store, tokens server.TokenParser) (*http.Server, error) {
	validator, err := quiz.NewValidator()
	if err != nil {
		return nil, fmt.Errorf("quiz.NewValidator() > %w", err)
	}
	handler := server.NewQuizHandler(quizStore, validator, tokens, cfg.Server.PreviewLimit)
	router, err := server.NewRouter(handler, cfg.Server)
	if err != nil {
		return nil, fmt.Errorf("server.NewRouter() > %w", err)
	}

	return &http.Server{
		Addr:              cfg.Server.Address,
		Handler:           h2c.NewHandler(router, &http2.Server{}),
		ReadHeaderTimeout: 10 * time.Second,
	}, nil
}

// serve runs httpServer until ctx is done, then drains in-flight requests.
func serve(ctx context.Context, httpServer *http.Server) error {
	errCh := make(chan error, 1)
	go func() {
		slog.Default().Info("starting server", "address", httpServer.Addr)
		errCh <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("httpServer.ListenAndServe() > %w", err)
	case <-ctx.Done():
	}

	slog.Default().Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("httpServer.Shutdown() > %w", err)
	}
	return nil
}
