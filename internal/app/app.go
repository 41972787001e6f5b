package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/daybook-backend/internal/adapter/postgres"
	"github.com/heartmarshall/daybook-backend/internal/adapter/postgres/authmethod"
	"github.com/heartmarshall/daybook-backend/internal/adapter/postgres/diary"
	"github.com/heartmarshall/daybook-backend/internal/adapter/postgres/note"
	"github.com/heartmarshall/daybook-backend/internal/adapter/postgres/notification"
	"github.com/heartmarshall/daybook-backend/internal/adapter/postgres/sleep"
	"github.com/heartmarshall/daybook-backend/internal/adapter/postgres/token"
	userrepo "github.com/heartmarshall/daybook-backend/internal/adapter/postgres/user"
	"github.com/heartmarshall/daybook-backend/internal/adapter/provider/google"
	"github.com/heartmarshall/daybook-backend/internal/adapter/storage/s3"
	"github.com/heartmarshall/daybook-backend/internal/auth"
	"github.com/heartmarshall/daybook-backend/internal/config"
	authsvc "github.com/heartmarshall/daybook-backend/internal/service/auth"
	"github.com/heartmarshall/daybook-backend/internal/service/journal"
	usersvc "github.com/heartmarshall/daybook-backend/internal/service/user"
	"github.com/heartmarshall/daybook-backend/internal/transport/middleware"
	"github.com/heartmarshall/daybook-backend/internal/transport/rest"
)

// Run is the server entry point. It loads configuration, connects to the
// database, wires services and serves HTTP until ctx is cancelled, then
// shuts down gracefully.
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
		return fmt.Errorf("app: %w", err)
	}
	defer pool.Close()

	srv, err := newServer(ctx, cfg, pool, logger)
	if err != nil {
		return err
	}
	return srv.run(ctx)
}

type server struct {
	cfg     *config.Config
	log     *slog.Logger
	http    *http.Server
	feed    *notification.Feed
	limiter *middleware.RateLimiter
}

func newServer(ctx context.Context, cfg *config.Config, pool *pgxpool.Pool, logger *slog.Logger) (*server, error) {
	// Repositories
	users := userrepo.New(pool)
	tokens := token.New(pool)
	authMethods := authmethod.New(pool)
	notes := note.New(pool)
	diaryEntries := diary.New(pool)
	sleepSchedules := sleep.New(pool)
	notifications := notification.New(pool)

	feed := notification.NewFeed(pool, notifications, logger, cfg.Notify.ReconnectInterval)

	// Services
	jwt := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)
	authService := authsvc.NewService(logger, users, tokens, authMethods,
		postgres.NewTxManager(pool), google.NewVerifier(cfg.Auth, logger), jwt, cfg.Auth)

	var userService *usersvc.Service
	if cfg.Storage.Enabled() {
		presigner, err := s3.NewPresigner(ctx, cfg.Storage)
		if err != nil {
			return nil, fmt.Errorf("app: %w", err)
		}
		userService = usersvc.NewService(logger, users, presigner)
	} else {
		logger.Info("avatar storage disabled")
		userService = usersvc.NewService(logger, users, nil)
	}

	journalService := journal.NewService(logger, notes, diaryEntries, sleepSchedules, notifications)

	// Transport
	limiter := middleware.NewRateLimiter(cfg.RateLimit.CleanupInterval)
	router := rest.NewRouter(rest.Handlers{
		Auth:    rest.NewAuthHandler(authService, logger),
		Profile: rest.NewProfileHandler(userService, logger),
		Journal: rest.NewJournalHandler(journalService, logger),
		Notifications: rest.NewNotificationHandler(journalService, feed,
			cfg.Notify.KeepAlive, cfg.Notify.ReconnectInterval, logger),
		Health:    rest.NewHealthHandler(pool, BuildVersion()),
		AuthLimit: limiter.Limit(cfg.RateLimit.AuthPerMinute),
	})

	handler := middleware.Chain(
		middleware.RequestID,
		middleware.Recovery(logger),
		middleware.Logger(logger),
		middleware.CORS(cfg.CORS),
		middleware.Auth(authService),
	)(router)

	return &server{
		cfg: cfg,
		log: logger,
		http: &http.Server{
			Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
			Handler:      handler,
			ReadTimeout:  cfg.Server.ReadTimeout,
			WriteTimeout: cfg.Server.WriteTimeout,
			IdleTimeout:  cfg.Server.IdleTimeout,
		},
		feed:    feed,
		limiter: limiter,
	}, nil
}

func (s *server) run(ctx context.Context) error {
	defer s.limiter.Stop()

	g, gctx := errgroup.WithContext(ctx)
	// Request contexts derive from gctx so open SSE streams end on shutdown.
	s.http.BaseContext = func(net.Listener) context.Context { return gctx }

	g.Go(func() error {
		return s.feed.Run(gctx)
	})

	g.Go(func() error {
		s.log.Info("http server listening", slog.String("addr", s.http.Addr))
		if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("app: http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		s.log.Info("shutting down", slog.Duration("timeout", s.cfg.Server.ShutdownTimeout))

		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.Server.ShutdownTimeout)
		defer cancel()
		if err := s.http.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("app: shutdown: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}
	s.log.Info("stopped")
	return nil
}
