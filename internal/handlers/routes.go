package handlers

import (
	"dzpay/internal/middleware"
	"dzpay/internal/models"

	"github.com/gofiber/fiber/v2"
)

// SetupRoutes wires the payment API onto the fiber app.
func SetupRoutes(app *fiber.App, paymentHandler *PaymentHandler) {
	app.Get("/health", HealthCheck)
	app.Get("/", func(c *fiber.Ctx) error { return c.SendString("Welcome to the DZPay API!") })

	api := app.Group("/api")

	// Public payment routes
	api.Get("/payment-methods", paymentHandler.GetPaymentMethods)
	api.Post("/payments", paymentHandler.InitiatePayment)
	api.Get("/payments/:id", paymentHandler.GetTransaction)
	api.Post("/payments/:id/verify", paymentHandler.VerifyPayment)
	api.Get("/orders/:orderId/payments", paymentHandler.GetOrderTransactions)
	api.Post("/webhooks/:method", paymentHandler.HandleWebhook)

	// Admin routes
	admin := api.Group("/admin", middleware.AdminAuth)
	admin.Post("/payments/:id/confirm", middleware.HasPermission(models.PermissionPaymentConfirm), paymentHandler.ConfirmPayment)
	admin.Get("/payments/stats", middleware.HasPermission(models.PermissionReadAdmin), paymentHandler.GetStats)
	admin.Get("/payments/export", middleware.HasPermission(models.PermissionReadAdmin), paymentHandler.ExportTransactions)
	admin.Post("/payments/import", middleware.HasPermission(models.PermissionWriteAdmin), paymentHandler.ImportTransactions)
}
