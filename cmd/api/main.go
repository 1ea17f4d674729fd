package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/formula-api/internal/api/http"
	"github.com/spec-kit/formula-api/internal/api/http/handlers"
	"github.com/spec-kit/formula-api/internal/auth"
	"github.com/spec-kit/formula-api/internal/config"
	"github.com/spec-kit/formula-api/internal/events"
	"github.com/spec-kit/formula-api/internal/observability"
	"github.com/spec-kit/formula-api/internal/persistence"
	"github.com/spec-kit/formula-api/internal/repository"
	"github.com/spec-kit/formula-api/internal/service"
	"github.com/spec-kit/formula-api/internal/worker"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger, cfg.App)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Fatal("failed to connect postgres", zap.Error(err))
	}
	defer pg.Close()

	pool := pg.PoolHandle()
	if pool == nil {
		logger.Fatal("POSTGRES_DSN is required")
	}

	if cfg.Postgres.RunMigrations {
		if err := persistence.RunMigrations(ctx, pool, logger); err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	redis := persistence.NewRedis(ctx, cfg.Redis, logger)
	defer redis.Close()

	metrics := observability.NewMetrics("formula_api")
	dispatcher := events.NewInMemoryDispatcher()
	worker.StartAuditWorker(service.NewAuditService(dispatcher, logger, metrics))

	driverRepo := repository.NewDriverRepository(pool)
	tokens := auth.NewTokenManager(cfg.Auth.JWT)
	authService := service.NewAuthService(service.AuthDependencies{
		DriverRepo: driverRepo,
		Passwords:  auth.NewPasswordPolicy(cfg.Auth),
		Tokens:     tokens,
		Dispatcher: dispatcher,
		Logger:     logger,
	})
	if err := authService.ProvisionAdmin(ctx, cfg.Auth.BootstrapAdmin); err != nil {
		logger.Fatal("failed to provision admin", zap.Error(err))
	}

	resources := service.ResourceDependencies{
		CircuitRepo: repository.NewCircuitRepository(pool),
		RaceRepo:    repository.NewRaceRepository(pool),
		ResultRepo:  repository.NewResultRepository(pool),
		DriverRepo:  driverRepo,
		TeamRepo:    repository.NewTeamRepository(pool),
		CarRepo:     repository.NewCarRepository(pool),
		Cache:       persistence.NewListCache(redis.Client, cfg.Redis.CacheTTL()),
		Logger:      logger,
	}

	exposeStack := !cfg.App.IsProduction()
	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ErrorHandler: httptransport.ErrorHandler(logger, exposeStack),
	})
	httptransport.RegisterMiddlewares(app, logger, metrics, httptransport.MiddlewareConfig{
		Timeout:     cfg.App.RequestTimeout(),
		ExposeStack: exposeStack,
	})

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:   handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, cfg.App.Env, pg, redis),
		Sessions: handlers.NewSessionHandler(authService),
		Drivers:  handlers.NewDriversHandler(authService, service.NewDriverService(resources)),
		Circuits: handlers.NewCircuitsHandler(service.NewCircuitService(resources)),
		Races:    handlers.NewRacesHandler(service.NewRaceService(resources)),
		Results:  handlers.NewResultsHandler(service.NewResultService(resources)),
		Teams:    handlers.NewTeamsHandler(service.NewTeamService(resources)),
		Cars:     handlers.NewCarsHandler(service.NewCarService(resources)),
		Resolver: auth.NewSessionResolver(tokens),
		Delay:    auth.RandomDelay(cfg.Auth.MaxDelay()),
		Metrics:  metrics,
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	if err := app.ShutdownWithTimeout(shutdownTimeout); err != nil {
		logger.Error("shutdown", zap.Error(err))
	}
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
