package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Vanshit011/nandan-bottling/internal/application/auth"
	"github.com/Vanshit011/nandan-bottling/internal/application/billing"
	appdelivery "github.com/Vanshit011/nandan-bottling/internal/application/delivery"
	"github.com/Vanshit011/nandan-bottling/internal/application/directory"
	"github.com/Vanshit011/nandan-bottling/internal/application/notify"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	CustomerUC  *directory.CustomerUseCase
	DeliveryUC  *appdelivery.UseCase
	Aggregator  *billing.Aggregator
	StatementUC *billing.StatementUseCase
	BillUC      *billing.BillUseCase
	SMSSender   notify.SMSSender
	JWTSecret   string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Customers (protegido)
	customers := protected.Group("/customers")
	customerHandler := NewCustomerHandler(deps.CustomerUC)
	customers.Post("/", customerHandler.Create)
	customers.Get("/", customerHandler.List)
	customers.Put("/:id", customerHandler.Update)
	customers.Delete("/:id", customerHandler.Delete)

	// Deliveries (protegido)
	deliveries := protected.Group("/deliveries")
	deliveryHandler := NewDeliveryHandler(deps.DeliveryUC)
	billingHandler := NewBillingHandler(deps.Aggregator, deps.StatementUC)
	// La ruta fija va antes que el CRUD con :id para que fiber no la capture.
	deliveries.Get("/month-on-month-summary", billingHandler.MonthSummary)
	deliveries.Post("/", deliveryHandler.Create)
	deliveries.Get("/", deliveryHandler.List)
	deliveries.Put("/:id", deliveryHandler.Update)
	deliveries.Delete("/:id", deliveryHandler.Delete)

	// Vista de facturación mensual y estado de cuenta (protegido)
	billingGroup := protected.Group("/billing")
	billingGroup.Get("/", billingHandler.BillingView)
	billingGroup.Get("/messages", billingHandler.SummaryMessages)
	billingGroup.Get("/statement/pdf", billingHandler.StatementPDF)

	// Bills manuales (protegido)
	bills := protected.Group("/bills")
	billHandler := NewBillHandler(deps.BillUC)
	bills.Post("/", billHandler.Create)
	bills.Get("/monthwise", billHandler.ListMonthwise)
	bills.Put("/:id", billHandler.Update)
	bills.Delete("/:id", billHandler.Delete)

	// SMS (protegido)
	smsHandler := NewSMSHandler(deps.SMSSender)
	protected.Post("/sms", smsHandler.Send)
}
