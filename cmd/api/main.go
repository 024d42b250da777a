package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/ChrisRistoff/RecipeHub/internal/api/http"
	"github.com/ChrisRistoff/RecipeHub/internal/api/http/handlers"
	"github.com/ChrisRistoff/RecipeHub/internal/auth"
	"github.com/ChrisRistoff/RecipeHub/internal/config"
	"github.com/ChrisRistoff/RecipeHub/internal/events"
	"github.com/ChrisRistoff/RecipeHub/internal/observability"
	"github.com/ChrisRistoff/RecipeHub/internal/persistence"
	"github.com/ChrisRistoff/RecipeHub/internal/repository"
	"github.com/ChrisRistoff/RecipeHub/internal/seed"
	"github.com/ChrisRistoff/RecipeHub/internal/service"
	"github.com/ChrisRistoff/RecipeHub/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
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

	if cfg.Postgres.RunMigrations {
		if err := persistence.RunMigrations(ctx, pg.PoolHandle(), logger); err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	redis := persistence.NewRedis(cfg.Redis, logger)
	defer redis.Close()

	pool := pg.PoolHandle()
	userRepo := repository.NewUserRepository(pool)
	recipeRepo := repository.NewRecipeRepository(pool)
	commentRepo := repository.NewCommentRepository(pool)
	cuisineRepo := repository.NewCuisineRepository(pool)

	metrics := observability.NewMetrics()
	throttle := service.NewLoginThrottle(redis.Client, cfg.Auth)
	dispatcher := events.NewInMemoryDispatcher()

	authService := service.NewAuthService(*cfg, service.AuthDependencies{
		UserRepo:   userRepo,
		Throttle:   throttle,
		Dispatcher: dispatcher,
		Logger:     logger,
		Metrics:    metrics,
	})
	userService := service.NewUserService(userRepo)
	recipeService := service.NewRecipeService(service.RecipeDependencies{
		RecipeRepo:  recipeRepo,
		CuisineRepo: cuisineRepo,
		Dispatcher:  dispatcher,
	})
	commentService := service.NewCommentService(service.CommentDependencies{
		CommentRepo: commentRepo,
		RecipeRepo:  recipeRepo,
		Dispatcher:  dispatcher,
	})
	notificationService := service.NewNotificationService(dispatcher, logger, cfg.Notification)
	worker.StartNotificationWorker(notificationService)

	if cfg.Seed.Enabled {
		loader := seed.NewLoader(userRepo, cuisineRepo, logger, cfg.Auth.BcryptCost)
		if err := loader.Run(ctx, cfg.Seed); err != nil {
			logger.Fatal("failed to seed database", zap.Error(err))
		}
	}

	authMiddleware := auth.NewMiddleware(authService.TokenManager())

	app := fiber.New()
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:   handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, pg, redis),
		Users:    handlers.NewUsersHandler(authService, userService),
		Recipes:  handlers.NewRecipesHandler(recipeService),
		Comments: handlers.NewCommentsHandler(commentService),
		Auth:     authMiddleware,
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
