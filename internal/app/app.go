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

	"github.com/Wikia/thanksmetoo/internal/adapter/limiter"
	"github.com/Wikia/thanksmetoo/internal/adapter/postgres"
	"github.com/Wikia/thanksmetoo/internal/adapter/postgres/logentry"
	"github.com/Wikia/thanksmetoo/internal/adapter/postgres/revision"
	"github.com/Wikia/thanksmetoo/internal/adapter/postgres/thankslog"
	"github.com/Wikia/thanksmetoo/internal/adapter/postgres/user"
	"github.com/Wikia/thanksmetoo/internal/adapter/session"
	"github.com/Wikia/thanksmetoo/internal/auth"
	"github.com/Wikia/thanksmetoo/internal/config"
	"github.com/Wikia/thanksmetoo/internal/hooks"
	"github.com/Wikia/thanksmetoo/internal/service/thanks"
	"github.com/Wikia/thanksmetoo/internal/site"
	"github.com/Wikia/thanksmetoo/internal/transport/middleware"
	"github.com/Wikia/thanksmetoo/internal/transport/rest"
)

// Run is the server entry point. It loads configuration, connects to the
// database, wires the thanks pipeline and serves HTTP until ctx is done.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)
	logger.InfoContext(ctx, "starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer pool.Close()

	// Cancelled only after the HTTP server has drained, so queued
	// notifications from the last requests are still delivered.
	notifyCtx, stopNotify := context.WithCancel(context.WithoutCancel(ctx))
	sender, closeSender, err := newNotifier(notifyCtx, logger, cfg.Notify)
	if err != nil {
		stopNotify()
		return err
	}
	defer func() {
		stopNotify()
		closeSender()
	}()

	handler, err := NewHandler(cfg, pool, sender, logger)
	if err != nil {
		return err
	}
	defer handler.Close()

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	return serve(ctx, logger, srv, cfg.Server)
}

// serve runs srv until ctx is cancelled, then shuts it down gracefully.
func serve(ctx context.Context, logger *slog.Logger, srv *http.Server, cfg config.ServerConfig) error {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.InfoContext(ctx, "http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), cfg.ShutdownTimeout)
		defer cancel()
		logger.InfoContext(shutdownCtx, "shutting down http server")
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

// Handler is the fully wired HTTP surface. Close stops its background
// janitors.
type Handler struct {
	http.Handler
	closers []func()
}

// Close releases the in-memory rate limiter and session store.
func (h *Handler) Close() {
	for _, c := range h.closers {
		c()
	}
}

// NewHandler wires repositories, the thanks pipeline, the hook registry and
// the middleware chain on top of pool. Notifications go to sender.
func NewHandler(cfg *config.Config, pool *pgxpool.Pool, sender Sender, logger *slog.Logger) (*Handler, error) {
	links, err := site.NewLinker(cfg.Site)
	if err != nil {
		return nil, fmt.Errorf("site linker: %w", err)
	}

	rateLimiter := limiter.New(cfg.Thanks.RateLimitPerMinute, cfg.Session.CleanupInterval)
	sessions := session.NewStore(cfg.Session.TTL, cfg.Session.CleanupInterval)

	users := user.New(pool)
	revisions := revision.New(pool)
	logEntries := logentry.New(pool)

	svc := thanks.NewService(logger, cfg.Thanks,
		users,
		rateLimiter,
		revisions,
		logEntries,
		thankslog.New(pool),
		sender,
		links,
		postgres.NewTxManager(pool),
	)

	registry := hooks.NewRegistry(hooks.NewThankLinkListener(cfg.Thanks, links))
	views := hooks.NewViewLoader(revisions, logEntries, users)
	jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)

	router := rest.NewRouter(rest.Handlers{
		Health: rest.NewHealthHandler(BuildVersion(), rest.Component{Name: "database", Ping: pool}),
		Thanks: rest.NewThanksHandler(svc, sessions, logger),
		Tools:  rest.NewToolsHandler(registry, views, svc, sessions, logger),
	}, cfg.Site.ThanksPath, middleware.Chain(
		middleware.RequestID,
		middleware.Recovery(logger),
		middleware.ClientIP,
		middleware.Session(cfg.Session),
		middleware.Auth(jwtManager),
		middleware.Logger(logger),
		middleware.CORS(cfg.CORS),
	))

	return &Handler{
		Handler: router,
		closers: []func(){rateLimiter.Stop, sessions.Stop},
	}, nil
}
