package http

import (
	"github.com/gofiber/fiber/v2"

	appauth "github.com/lucka79/objednavkyApl-sub002/internal/application/auth"
	"github.com/lucka79/objednavkyApl-sub002/internal/application/catalog"
	appcons "github.com/lucka79/objednavkyApl-sub002/internal/application/consumption"
	"github.com/lucka79/objednavkyApl-sub002/internal/application/report"
	"github.com/lucka79/objednavkyApl-sub002/internal/application/schedule"
	"github.com/lucka79/objednavkyApl-sub002/internal/domain/entity"
)

// RouterDeps dependencies for the router.
type RouterDeps struct {
	AuthUC             *appauth.UseCase
	CatalogUC          *catalog.UseCase
	ScheduleUC         *schedule.UseCase
	ReportUC           *report.UseCase
	Calculator         *appcons.Calculator
	Orchestrator       *appcons.RangeOrchestrator
	OrderStrategy      appcons.Strategy
	ProductionStrategy appcons.Strategy
	JWTSecret          string
}

// Router registers the API routes.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (public)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Protected routes (Bearer token required)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Catalog reads
	catalogHandler := NewCatalogHandler(deps.CatalogUC)
	protected.Get("/ingredients", catalogHandler.ListIngredients)
	protected.Get("/recipes", catalogHandler.ListRecipes)
	protected.Get("/recipes/:id", catalogHandler.GetRecipe)
	protected.Get("/products", catalogHandler.ListProducts)
	protected.Get("/products/:id/parts", catalogHandler.GetProductParts)

	// Schedule reads
	scheduleHandler := NewScheduleHandler(deps.ScheduleUC)
	protected.Get("/orders", scheduleHandler.Orders)
	protected.Get("/productions", scheduleHandler.Productions)

	// Consumption: calculation triggers restricted to staff
	consGroup := protected.Group("/consumption")
	staffOnly := RequireRole(entity.RoleAdmin, entity.RoleBaker)
	consumptionHandler := NewConsumptionHandler(deps.Calculator, deps.Orchestrator, deps.OrderStrategy, deps.ProductionStrategy)
	consGroup.Post("/calculate", staffOnly, consumptionHandler.Calculate)
	consGroup.Post("/calculate-range", staffOnly, consumptionHandler.CalculateRange)

	// Consumption reads
	reportHandler := NewReportHandler(deps.ReportUC)
	consGroup.Get("/daily", reportHandler.Daily)
	consGroup.Get("/monthly", reportHandler.Monthly)
	consGroup.Get("/current-month", reportHandler.CurrentMonth)
	consGroup.Delete("/daily", staffOnly, reportHandler.DeleteDaily)
}
