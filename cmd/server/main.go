package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/sumanthd032/smartblog/internal/ai"
	"github.com/sumanthd032/smartblog/internal/auth"
	"github.com/sumanthd032/smartblog/internal/config"
	"github.com/sumanthd032/smartblog/internal/database"
	"github.com/sumanthd032/smartblog/internal/logging"
	"github.com/sumanthd032/smartblog/internal/render"
	"github.com/sumanthd032/smartblog/internal/repository"
	"github.com/sumanthd032/smartblog/internal/repository/memory"
	postgresrepo "github.com/sumanthd032/smartblog/internal/repository/postgres"
	"github.com/sumanthd032/smartblog/internal/service"
	"github.com/sumanthd032/smartblog/internal/transport/http/router"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	logger, err := logging.New(os.Stdout, cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Fatal().Err(err).Msg("server stopped")
	}
}

type repos struct {
	users    repository.UserRepository
	posts    repository.PostRepository
	comments repository.CommentRepository
}

func run(ctx context.Context, cfg *config.Config, logger zerolog.Logger) error {
	// Storage
	var r repos
	switch cfg.Storage {
	case config.StorageMemory:
		store := memory.NewStore()
		r = repos{users: store.Users(), posts: store.Posts(), comments: store.Comments()}
		logger.Warn().Msg("using in-memory storage; data is lost on exit")
	default:
		pool, err := database.Connect(ctx, cfg.DatabaseURL())
		if err != nil {
			return err
		}
		defer pool.Close()
		logger.Info().Str("host", cfg.DBHost).Str("db", cfg.DBName).Msg("connected to database")

		if err := database.Migrate(ctx, pool); err != nil {
			return err
		}

		r = repos{
			users:    postgresrepo.NewUserRepo(pool),
			posts:    postgresrepo.NewPostRepo(pool),
			comments: postgresrepo.NewCommentRepo(pool),
		}
	}

	// Auth
	if cfg.UsesDevSecret() {
		logger.Warn().Str("storage", cfg.Storage).Msg("JWT_SECRET not set; signing tokens with the public development secret")
	}
	hasher, err := auth.NewPasswordHasher(cfg.BcryptCost)
	if err != nil {
		return err
	}
	secret := []byte(cfg.JWTSecret)
	issuer := auth.NewTokenIssuer(secret, cfg.AccessTokenTTL)
	resolver := auth.NewResolver(auth.NewTokenValidator(secret), r.users)

	// AI assistant
	var writer *ai.Writer
	if cfg.GoogleAPIKey != "" {
		model, err := ai.NewGeminiModel(ctx, cfg.GoogleAPIKey, cfg.GeminiModel)
		if err != nil {
			return err
		}
		writer = ai.NewWriter(model)
	} else {
		logger.Warn().Msg("GOOGLE_API_KEY not set; AI endpoints disabled")
	}

	// Services
	handler := router.New(router.Deps{
		Logger:     logger,
		Resolver:   resolver,
		Auth:       service.NewAuthService(r.users, hasher, issuer),
		Users:      service.NewUserService(r.users),
		Posts:      service.NewPostService(r.posts, r.comments, render.NewMarkdown()),
		Comments:   service.NewCommentService(r.comments, r.posts),
		Assistant:  service.NewAssistantService(writer),
		CORSOrigin: cfg.CORSOrigin,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.ServerPort,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info().Str("addr", srv.Addr).Msg("starting server")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	logger.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return srv.Shutdown(shutdownCtx)
}
