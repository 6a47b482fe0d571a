package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/securetrack/securetrack-api/internal/application/auth"
	"github.com/securetrack/securetrack-api/internal/application/usecase"
	"github.com/securetrack/securetrack-api/internal/infrastructure/heartbeat"
)

// RouterDeps dependências para o router.
type RouterDeps struct {
	CustomerUC  *usecase.CustomerUseCase
	BudgetUC    *usecase.BudgetUseCase
	EventUC     *usecase.EventUseCase
	DashboardUC *usecase.DashboardUseCase
	InsightsUC  *usecase.InsightsUseCase
	AddressUC   *usecase.AddressUseCase
	AuthUC      *auth.AuthUseCase
	Indicator   *heartbeat.Indicator
	JWTSecret   string
}

// Router registra as rotas da API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rotas protegidas (exigem Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Clientes e subrecursos (protegido)
	customers := protected.Group("/customers")
	customerHandler := NewCustomerHandler(deps.CustomerUC)
	customers.Post("/", customerHandler.Create)
	customers.Get("/", customerHandler.List)
	customers.Get("/:id", customerHandler.GetByID)
	customers.Put("/:id", customerHandler.Update)
	customers.Put("/:id/payment-status", customerHandler.SetPaymentStatus)
	customers.Post("/:id/notes", customerHandler.AddNote)
	customers.Delete("/:id/notes/:noteId", customerHandler.DeleteNote)
	customers.Post("/:id/equipments", customerHandler.AddEquipment)
	customers.Put("/:id/equipments/:equipmentId", customerHandler.UpdateEquipment)
	customers.Delete("/:id/equipments/:equipmentId", customerHandler.DeleteEquipment)
	customers.Post("/:id/services", customerHandler.AddService)
	customers.Post("/:id/services/:serviceId/approve", customerHandler.ApproveService)
	customers.Put("/:id/services/:serviceId/status", customerHandler.SetServiceStatus)
	customers.Delete("/:id/services/:serviceId", customerHandler.DeleteService)

	// Propostas comerciais (protegido)
	budgets := protected.Group("/budgets")
	budgetHandler := NewBudgetHandler(deps.BudgetUC)
	budgets.Post("/", budgetHandler.Create)
	budgets.Get("/", budgetHandler.List)
	budgets.Get("/:id", budgetHandler.GetByID)
	budgets.Put("/:id", budgetHandler.Update)
	budgets.Put("/:id/status", budgetHandler.SetStatus)
	budgets.Post("/:id/convert", budgetHandler.Convert)
	budgets.Get("/:id/whatsapp-link", budgetHandler.WhatsAppLink)
	budgets.Post("/:id/send-email", budgetHandler.SendEmail)
	budgets.Get("/:id/pdf", budgetHandler.ExportPDF)

	// Histórico de eventos (protegido)
	events := protected.Group("/events")
	eventHandler := NewEventHandler(deps.EventUC)
	events.Post("/", eventHandler.Append)
	events.Get("/", eventHandler.List)

	// Painel (protegido)
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	protected.Get("/dashboard/summary", dashboardHandler.Summary)
	protected.Get("/reports/warranty", dashboardHandler.WarrantyReport)
	protected.Get("/catalog/equipment", dashboardHandler.Catalog)

	// Insights de negócio (protegido)
	insightsHandler := NewInsightsHandler(deps.InsightsUC)
	protected.Get("/insights", insightsHandler.Generate)

	// Consulta de CEP (protegido)
	addressHandler := NewAddressHandler(deps.AddressUC)
	protected.Get("/cep/:cep", addressHandler.Lookup)

	// Indicador de sincronização (protegido)
	syncHandler := NewSyncHandler(deps.Indicator)
	protected.Get("/sync/status", syncHandler.Status)
}
