package routes

import (
	"context"
	"fmt"
	"time"

	websocket "github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/c00p75/fitness-league-sub000/internal/catalog"
	"github.com/c00p75/fitness-league-sub000/internal/config"
	"github.com/c00p75/fitness-league-sub000/internal/handlers"
	"github.com/c00p75/fitness-league-sub000/internal/logging"
	"github.com/c00p75/fitness-league-sub000/internal/metrics"
	"github.com/c00p75/fitness-league-sub000/internal/middleware"
	"github.com/c00p75/fitness-league-sub000/internal/rpc"
	"github.com/c00p75/fitness-league-sub000/internal/services"
	livews "github.com/c00p75/fitness-league-sub000/internal/websocket"
)

const healthTimeout = 2 * time.Second

// Dependencies are the long-lived handles built in cmd/server. Identity,
// Storage, Hub and Metrics are optional.
type Dependencies struct {
	Config   *config.Config
	Stores   services.Stores
	Verifier middleware.TokenVerifier
	Identity services.IdentityProvider
	Storage  services.StorageService
	Catalog  *catalog.Catalog
	Hub      *livews.Hub
	Metrics  *metrics.Metrics
	Logger   zerolog.Logger
}

type appServices struct {
	auth       *services.AuthService
	goals      *services.GoalService
	onboarding *services.OnboardingService
	workouts   *services.WorkoutService
	catalog    *catalog.Catalog
}

func newServices(deps Dependencies) appServices {
	exercises := deps.Catalog
	if exercises == nil {
		exercises = catalog.New()
	}
	stores := deps.Stores
	return appServices{
		auth:       services.NewAuthService(stores.Profiles, stores.Accounts, deps.Identity, deps.Storage),
		goals:      services.NewGoalService(stores.Goals),
		onboarding: services.NewOnboardingService(stores.Onboarding),
		workouts:   services.NewWorkoutService(stores.Plans, stores.Sessions, exercises),
		catalog:    exercises,
	}
}

// NewRouter assembles every procedure namespace.
func NewRouter(deps Dependencies) *rpc.Router {
	return newRouter(newServices(deps))
}

func newRouter(svc appServices) *rpc.Router {
	return rpc.NewRouter(map[string]rpc.Namespace{
		"auth":       handlers.NewAuthHandler(svc.auth).Procedures(),
		"goals":      handlers.NewGoalsHandler(svc.goals).Procedures(),
		"onboarding": handlers.NewOnboardingHandler(svc.onboarding).Procedures(),
		"workouts":   handlers.NewWorkoutsHandler(svc.workouts).Procedures(),
		"exercises":  handlers.NewExercisesHandler(svc.catalog).Procedures(),
	})
}

func RegisterRoutes(app *fiber.App, deps Dependencies) (*rpc.Router, error) {
	cfg := deps.Config
	if cfg == nil {
		cfg = &config.Config{}
	}

	svc := newServices(deps)
	router := newRouter(svc)
	factory := middleware.NewContextFactory(deps.Verifier, logging.Component(deps.Logger, "rpc"))
	publish := func(userID, path string) {
		if deps.Hub != nil {
			deps.Hub.Publish(userID, path)
		}
	}

	app.Get("/health", healthHandler(deps.Stores.Ping))
	if deps.Metrics != nil {
		app.Get("/metrics", deps.Metrics.Handler())
	}
	if err := registerDocsRoutes(app, cfg, router); err != nil {
		return nil, err
	}

	api := app.Group("/api")
	if cfg.RateLimitEnabled() {
		limiter := middleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst)
		api.Use(limiter.Handler(factory.CallerKey))
	}

	opts := rpc.HTTPOptions{
		NewContext: factory.Create,
		OnMutation: func(rc *rpc.Context, path string) {
			publish(rc.Identity.UID, path)
		},
		Logger: logging.Component(deps.Logger, "rpc"),
	}
	if deps.Metrics != nil {
		opts.Observe = deps.Metrics.ObserveCall
	}
	trpc := rpc.NewHTTPHandler(router, opts)
	api.Get("/trpc/:path", trpc)
	api.Post("/trpc/:path", trpc)

	profileHandler := handlers.NewProfileHandler(svc.auth, publish)
	api.Post("/profile/avatar", factory.RequireIdentity(), profileHandler.UploadAvatar)

	if deps.Hub != nil {
		eventsHandler := handlers.NewEventsHandler(deps.Hub)
		api.Get("/events", factory.QueryToken(), factory.Middleware(), eventsHandler.Upgrade, websocket.New(eventsHandler.Stream))
	}

	return router, nil
}

func healthHandler(ping func(ctx context.Context) error) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if ping != nil {
			ctx, cancel := context.WithTimeout(c.UserContext(), healthTimeout)
			defer cancel()
			if err := ping(ctx); err != nil {
				return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
					"status": "unavailable",
					"error":  fmt.Sprintf("store: %v", err),
				})
			}
		}
		return c.JSON(fiber.Map{"status": "ok"})
	}
}
