package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/c00p75/fitness-league-sub000/internal/config"
	"github.com/c00p75/fitness-league-sub000/internal/database"
	"github.com/c00p75/fitness-league-sub000/internal/identity"
	"github.com/c00p75/fitness-league-sub000/internal/logging"
	"github.com/c00p75/fitness-league-sub000/internal/metrics"
	"github.com/c00p75/fitness-league-sub000/internal/middleware"
	"github.com/c00p75/fitness-league-sub000/internal/repository/memstore"
	"github.com/c00p75/fitness-league-sub000/internal/routes"
	"github.com/c00p75/fitness-league-sub000/internal/services"
	livews "github.com/c00p75/fitness-league-sub000/internal/websocket"
)

const (
	// Leaves room for the multipart overhead around a 5MB avatar.
	bodyLimit       = 6 * 1024 * 1024
	shutdownTimeout = 10 * time.Second
)

func main() {
	if err := run(); err != nil {
		fatal := logging.New("error", "json", nil)
		fatal.Fatal().Err(err).Msg("Server stopped")
	}
}

func run() error {
	// 1. Load config
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}
	logger := logging.New(cfg.LogLevel, cfg.LogFormat, os.Stderr)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 2. Storage backend
	stores, closeStores, err := openStores(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer closeStores()

	// 3. Identity, storage and live events
	supabase := identity.NewSupabaseClient(identity.Config{
		URL:        cfg.SupabaseURL,
		AnonKey:    cfg.SupabaseAnonKey,
		ServiceKey: cfg.SupabaseServiceKey,
		JWTSecret:  cfg.SupabaseJWTSecret,
	})
	deps := routes.Dependencies{
		Config:   cfg,
		Stores:   stores,
		Verifier: supabase,
		Metrics:  metrics.New(),
		Logger:   logger,
	}
	if cfg.SupabaseURL != "" {
		deps.Identity = supabase
	} else {
		logger.Warn().Msg("SUPABASE_URL not set, sign-up and account deletion are disabled")
	}
	if cfg.StorageEnabled() {
		deps.Storage = services.NewSupabaseStorageService(cfg.SupabaseURL, cfg.SupabaseBucket, cfg.SupabaseServiceKey, nil)
	} else {
		logger.Warn().Msg("Storage not configured, avatar uploads are disabled")
	}

	hub := livews.NewHub(logging.Component(logger, "events"))
	go hub.Run(ctx)
	deps.Hub = hub

	// 4. Fiber
	app := fiber.New(fiber.Config{
		AppName:               logging.ServiceName,
		ReadTimeout:           cfg.ReadTimeout,
		WriteTimeout:          cfg.WriteTimeout,
		BodyLimit:             bodyLimit,
		DisableStartupMessage: true,
	})
	app.Use(requestid.New(requestid.Config{Generator: uuid.NewString}))
	app.Use(recover.New(recover.Config{EnableStackTrace: cfg.AppEnv == "development"}))
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORSAllowOrigins,
		AllowHeaders: strings.Join([]string{fiber.HeaderOrigin, fiber.HeaderContentType, fiber.HeaderAccept, fiber.HeaderAuthorization}, ","),
	}))
	app.Use(middleware.AccessLog(logging.Component(logger, "http")))
	app.Use(deps.Metrics.Inflight())

	router, err := routes.RegisterRoutes(app, deps)
	if err != nil {
		return err
	}
	logger.Info().
		Int("procedures", len(router.Procedures())).
		Str("store", cfg.StoreBackend).
		Bool("docs", cfg.DocsEnabled()).
		Msg("Routes registered")

	// 5. Serve until a signal arrives
	errCh := make(chan error, 1)
	go func() {
		logger.Info().Str("port", cfg.Port).Msg("Server starting")
		errCh <- app.Listen(":" + cfg.Port)
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info().Msg("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("Graceful shutdown failed")
		return err
	}
	return nil
}

func openStores(ctx context.Context, cfg *config.Config, logger zerolog.Logger) (services.Stores, func(), error) {
	if cfg.StoreBackend == config.StoreBackendMemory {
		logger.Warn().Msg("Using in-memory store, data is lost on restart")
		return routes.MemoryStores(memstore.New()), func() {}, nil
	}

	connectCtx, cancel := context.WithTimeout(ctx, 15*time.Second)
	defer cancel()
	pool, err := database.Connect(connectCtx, cfg.DBUrl, cfg.DBMaxConns)
	if err != nil {
		return services.Stores{}, nil, err
	}
	logger.Info().Int32("max_conns", pool.Config().MaxConns).Msg("Connected to database")
	return routes.PostgresStores(pool), pool.Close, nil
}
