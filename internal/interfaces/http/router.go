package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/spog-api/internal/application/auth"
	"github.com/tu-usuario/spog-api/internal/application/inventory"
	"github.com/tu-usuario/spog-api/internal/application/reports"
	"github.com/tu-usuario/spog-api/internal/application/usecase"
	"github.com/tu-usuario/spog-api/internal/domain/permission"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC        *auth.AuthUseCase
	ItemUC        *usecase.ItemUseCase
	UserUC        *usecase.UserUseCase
	ConsumptionUC *inventory.ConsumptionUseCase
	ReportUC      *reports.ReportUseCase
	JWTSecret     string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Items (protegido, permisos por operación)
	items := protected.Group("/items")
	itemHandler := NewItemHandler(deps.ItemUC)
	items.Get("/", RequirePermission(permission.ItemsRead), itemHandler.List)
	items.Post("/", RequirePermission(permission.ItemsWrite), itemHandler.Create)
	items.Get("/:id", RequirePermission(permission.ItemsRead), itemHandler.GetByID)
	items.Put("/:id", RequirePermission(permission.ItemsWrite), itemHandler.Update)
	items.Delete("/:id", RequirePermission(permission.ItemsWrite), itemHandler.Delete)

	// Consumos anidados bajo el ítem
	consumptionHandler := NewConsumptionHandler(deps.ConsumptionUC)
	items.Post("/:id/consumptions", RequirePermission(permission.ConsumptionsCreate), consumptionHandler.Register)
	items.Get("/:id/consumptions", RequirePermission(permission.ItemsRead), consumptionHandler.History)
	items.Get("/:id/max-consumption", RequirePermission(permission.ItemsRead), consumptionHandler.MaxConsumption)

	// Reports (protegido)
	reportsGroup := protected.Group("/reports", RequirePermission(permission.ReportsRead))
	reportHandler := NewReportHandler(deps.ReportUC)
	reportsGroup.Get("/inventory", reportHandler.Inventory)
	reportsGroup.Get("/inventory/pdf", reportHandler.InventoryPDF)
	reportsGroup.Get("/consumption", reportHandler.Consumption)

	// Users (protegido, solo administración)
	users := protected.Group("/users", RequirePermission(permission.UsersManage))
	userHandler := NewUserHandler(deps.UserUC)
	users.Post("/", userHandler.Create)
	users.Get("/", userHandler.List)
	users.Put("/:id/role", userHandler.UpdateRole)
	users.Put("/:id/status", userHandler.UpdateStatus)
}
