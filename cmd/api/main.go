package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	appauth "github.com/lucka79/objednavkyApl-sub002/internal/application/auth"
	"github.com/lucka79/objednavkyApl-sub002/internal/application/catalog"
	appcons "github.com/lucka79/objednavkyApl-sub002/internal/application/consumption"
	"github.com/lucka79/objednavkyApl-sub002/internal/application/report"
	"github.com/lucka79/objednavkyApl-sub002/internal/application/schedule"
	"github.com/lucka79/objednavkyApl-sub002/internal/infrastructure/postgres"
	httpRouter "github.com/lucka79/objednavkyApl-sub002/internal/interfaces/http"
	"github.com/lucka79/objednavkyApl-sub002/pkg/config"
	"github.com/lucka79/objednavkyApl-sub002/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("load configuration: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("starting application")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("PostgreSQL connection")
	}
	defer pool.Close()

	ingredientRepo := postgres.NewIngredientRepository(pool)
	recipeRepo := postgres.NewRecipeRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	orderRepo := postgres.NewOrderRepository(pool)
	productionRepo := postgres.NewProductionRepository(pool)
	consumptionRepo := postgres.NewConsumptionRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	orderStrategy := appcons.NewOrderDemandStrategy(orderRepo, productRepo, recipeRepo, log, nil)
	productionStrategy := appcons.NewProductionActualStrategy(productionRepo, recipeRepo, log, nil)
	calculator := appcons.NewCalculator(txRunner, log)
	orchestrator := appcons.NewRangeOrchestrator(calculator, log)

	catalogUC := catalog.NewUseCase(ingredientRepo, recipeRepo, productRepo)
	scheduleUC := schedule.NewUseCase(orderRepo, productionRepo)
	reportUC := report.NewUseCase(consumptionRepo, orchestrator, productionStrategy, log, nil)
	authUC := appauth.NewUseCase(userRepo, appauth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:             authUC,
		CatalogUC:          catalogUC,
		ScheduleUC:         scheduleUC,
		ReportUC:           reportUC,
		Calculator:         calculator,
		Orchestrator:       orchestrator,
		OrderStrategy:      orderStrategy,
		ProductionStrategy: productionStrategy,
		JWTSecret:          cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("HTTP server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutdown signal received, closing server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown")
	}

	log.Info().Msg("application stopped")
}
