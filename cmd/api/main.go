package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/squad-service/internal/api/http"
	"github.com/spec-kit/squad-service/internal/api/http/handlers"
	"github.com/spec-kit/squad-service/internal/auth"
	"github.com/spec-kit/squad-service/internal/cache"
	"github.com/spec-kit/squad-service/internal/config"
	"github.com/spec-kit/squad-service/internal/events"
	"github.com/spec-kit/squad-service/internal/observability"
	"github.com/spec-kit/squad-service/internal/persistence"
	"github.com/spec-kit/squad-service/internal/repository"
	"github.com/spec-kit/squad-service/internal/service"
	"github.com/spec-kit/squad-service/internal/worker"
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
	squadRepo := repository.NewSquadRepository(pool)
	clubRepo := repository.NewClubRepository(pool)
	roleRepo := repository.NewRoleRepository(pool)
	memberRepo := repository.NewMemberRepository(pool)

	dispatcher := events.NewInMemoryDispatcher(logger)
	rosterCache := cache.NewRosterCache(redis.Client, logger)
	metrics := observability.NewMetrics()

	authService := service.NewAuthService(*cfg, userRepo, logger)
	userService := service.NewUserService(userRepo, cfg.Auth.BcryptCost)
	squadService := service.NewSquadService(squadRepo, dispatcher)
	clubService := service.NewClubService(clubRepo, dispatcher)
	roleService := service.NewRoleService(roleRepo, dispatcher)
	memberService := service.NewMemberService(service.MemberDependencies{
		MemberRepo: memberRepo,
		SquadRepo:  squadRepo,
		ClubRepo:   clubRepo,
		RoleRepo:   roleRepo,
		Dispatcher: dispatcher,
		Roster:     rosterCache,
	})
	notificationService := service.NewNotificationService(dispatcher, logger, cfg.Notification)
	worker.StartNotificationWorker(notificationService)

	if err := authService.EnsureAdmin(ctx); err != nil {
		logger.Fatal("failed to seed admin account", zap.Error(err))
	}

	authMiddleware := auth.NewAuthMiddleware(authService.TokenManager(), userRepo)

	app := fiber.New()
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:         handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, pg, redis, metrics),
		Auth:           handlers.NewAuthHandler(authService),
		Users:          handlers.NewUsersHandler(userService),
		Squads:         handlers.NewSquadsHandler(squadService, memberService),
		Clubs:          handlers.NewClubsHandler(clubService, memberService),
		Roles:          handlers.NewRolesHandler(roleService),
		Members:        handlers.NewMembersHandler(memberService),
		AuthMiddleware: authMiddleware,
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
